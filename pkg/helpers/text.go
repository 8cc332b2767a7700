package helpers

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
)

const maxFilenameLength = 255

var (
	unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9_.\-]`)
	wordPattern         = regexp.MustCompile(`[\p{L}\p{N}_]+`)
	slugStrip           = regexp.MustCompile(`[^\p{L}\p{N}_\s\p{Z}-]`)
	slugCollapse        = regexp.MustCompile(`[\s\p{Z}-]+`)
)

var stopWords = map[string]struct{}{
	"the": {}, "and": {}, "or": {}, "but": {}, "in": {}, "on": {}, "at": {}, "to": {}, "for": {},
	"of": {}, "with": {}, "by": {}, "is": {}, "are": {}, "was": {}, "were": {}, "be": {}, "been": {},
	"have": {}, "has": {}, "had": {}, "do": {}, "does": {}, "did": {}, "will": {}, "would": {},
	"could": {}, "should": {}, "may": {}, "might": {}, "can": {}, "this": {}, "that": {},
	"these": {}, "those": {}, "a": {}, "an": {},
}

// GenerateVerificationToken returns a random v4 UUID string.
func GenerateVerificationToken() string {
	return uuid.NewString()
}

// SanitizeFilename makes filename safe for object storage keys.
func SanitizeFilename(filename string) string {
	out := unsafeFilenameChars.ReplaceAllString(filename, "_")
	if len(out) <= maxFilenameLength {
		return out
	}
	i := strings.LastIndexByte(out, '.')
	if i < 0 || len(out)-i >= maxFilenameLength {
		return out[:maxFilenameLength]
	}
	ext := out[i:]
	return out[:maxFilenameLength-len(ext)] + ext
}

// ExtractKeywords returns the distinct search keywords of text in order of first appearance.
func ExtractKeywords(text string, minLength int) []string {
	if text == "" {
		return []string{}
	}
	words := wordPattern.FindAllString(strings.ToLower(text), -1)
	seen := make(map[string]struct{}, len(words))
	out := make([]string, 0, len(words))
	for _, w := range words {
		if utf8.RuneCountInString(w) < minLength {
			continue
		}
		if _, stop := stopWords[w]; stop {
			continue
		}
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	return out
}

// GenerateSlug builds a URL friendly slug of at most maxLength characters.
func GenerateSlug(text string, maxLength int) string {
	slug := slugStrip.ReplaceAllString(strings.ToLower(text), "")
	slug = slugCollapse.ReplaceAllString(slug, "-")
	if r := []rune(slug); len(r) > maxLength {
		slug = strings.TrimRight(string(r[:maxLength]), "-")
	}
	return slug
}

// MaskEmail hides all but the first two characters of the local part.
func MaskEmail(email string) string {
	local, domain, found := strings.Cut(email, "@")
	if !found {
		return email
	}
	n := utf8.RuneCountInString(local)
	if n <= 2 {
		return email
	}
	r := []rune(local)
	return string(r[:2]) + strings.Repeat("*", n-2) + "@" + domain
}
