package helpers

import (
	"regexp"
	"strings"
)

var (
	emailPattern    = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	httpURLPattern  = regexp.MustCompile(`^https?://.+`)
	nonDigitPattern = regexp.MustCompile(`\D`)
)

// universityDomains are the academic suffixes accepted as a university email.
var universityDomains = []string{
	".edu", ".ac.uk", ".edu.pk", ".ac.in", ".edu.au",
	".ac.za", ".edu.sg", ".ac.nz", ".edu.my", ".ac.th",
}

var imageExtensions = []string{".jpg", ".jpeg", ".png", ".gif", ".webp", ".bmp"}

// IsValidEmail checks the local@domain.tld shape. No DNS or MX lookup is done.
func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// IsUniversityEmail reports whether email belongs to an academic domain.
func IsUniversityEmail(email string) bool {
	lower := strings.ToLower(email)
	for _, d := range universityDomains {
		if strings.HasSuffix(lower, d) {
			return true
		}
	}
	return false
}

// ValidateImageURL requires an http(s) URL ending in a known image extension.
func ValidateImageURL(url string) bool {
	if url == "" || !httpURLPattern.MatchString(url) {
		return false
	}
	lower := strings.ToLower(url)
	for _, ext := range imageExtensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}

// ValidatePhoneNumber accepts anything carrying 7 to 15 digits once separators are stripped.
func ValidatePhoneNumber(phone string) bool {
	if phone == "" {
		return false
	}
	digits := nonDigitPattern.ReplaceAllString(phone, "")
	return len(digits) >= 7 && len(digits) <= 15
}

// GetFileExtension returns the lowercased text after the last dot.
// ok is false when filename has no dot at all.
func GetFileExtension(filename string) (ext string, ok bool) {
	i := strings.LastIndexByte(filename, '.')
	if i < 0 {
		return "", false
	}
	return strings.ToLower(filename[i+1:]), true
}

// IsAllowedFileType matches the extension of filename against allowed.
// Entries may be given with or without the leading dot, in any case.
func IsAllowedFileType(filename string, allowed []string) bool {
	ext, ok := GetFileExtension(filename)
	if !ok {
		return false
	}
	for _, a := range allowed {
		if strings.TrimLeft(strings.ToLower(a), ".") == ext {
			return true
		}
	}
	return false
}
