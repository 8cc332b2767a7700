package helpers_test

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/oksasatya/campus-exchange/pkg/helpers"
)

var _ = Describe("Text helpers", func() {
	Describe("GenerateVerificationToken", func() {
		It("returns distinct v4 UUIDs", func() {
			a := helpers.GenerateVerificationToken()
			b := helpers.GenerateVerificationToken()
			Expect(a).NotTo(Equal(b))

			parsed, err := uuid.Parse(a)
			Expect(err).NotTo(HaveOccurred())
			Expect(parsed.Version()).To(Equal(uuid.Version(4)))
		})
	})

	Describe("SanitizeFilename", func() {
		It("replaces unsafe characters with underscores", func() {
			Expect(helpers.SanitizeFilename("my id (front).png")).To(Equal("my_id__front_.png"))
			Expect(helpers.SanitizeFilename("../../etc/passwd")).To(Equal(".._.._etc_passwd"))
		})

		It("keeps safe names untouched", func() {
			Expect(helpers.SanitizeFilename("scan-01_final.JPG")).To(Equal("scan-01_final.JPG"))
		})

		It("truncates long names but keeps the extension", func() {
			name := strings.Repeat("a", 300) + ".jpeg"
			out := helpers.SanitizeFilename(name)
			Expect(out).To(HaveLen(255))
			Expect(out).To(HaveSuffix(".jpeg"))
		})

		It("truncates plainly when there is no extension", func() {
			out := helpers.SanitizeFilename(strings.Repeat("b", 400))
			Expect(out).To(Equal(strings.Repeat("b", 255)))
		})

		It("is idempotent on its own output", func() {
			for _, name := range []string{
				"my id (front).png",
				"résumé.pdf",
				strings.Repeat("x y", 200) + ".png",
				strings.Repeat("z", 500),
			} {
				once := helpers.SanitizeFilename(name)
				Expect(helpers.SanitizeFilename(once)).To(Equal(once), name)
			}
		})
	})

	Describe("ExtractKeywords", func() {
		It("case-folds, drops stop words and deduplicates in order", func() {
			Expect(helpers.ExtractKeywords("The quick Quick fox", 3)).To(Equal([]string{"quick", "fox"}))
		})

		It("drops words shorter than the minimum length", func() {
			Expect(helpers.ExtractKeywords("an ox in a big barn", 3)).To(Equal([]string{"big", "barn"}))
		})

		It("counts characters rather than bytes", func() {
			Expect(helpers.ExtractKeywords("café über", 4)).To(Equal([]string{"café", "über"}))
		})

		It("returns an empty slice for empty input", func() {
			Expect(helpers.ExtractKeywords("", 3)).To(BeEmpty())
			Expect(helpers.ExtractKeywords("", 3)).NotTo(BeNil())
		})
	})

	Describe("GenerateSlug", func() {
		It("lowercases, strips punctuation and hyphenates", func() {
			slug := helpers.GenerateSlug("Hello, World! Café", 50)
			Expect(slug).To(Equal("hello-world-café"))
			Expect(slug).To(Equal(strings.ToLower(slug)))
			Expect(utf8.RuneCountInString(slug)).To(BeNumerically("<=", 50))
			Expect(slug).NotTo(HaveSuffix("-"))
		})

		It("collapses runs of whitespace and hyphens", func() {
			Expect(helpers.GenerateSlug("used  --  lab   coat", 50)).To(Equal("used-lab-coat"))
		})

		It("treats unicode spaces as separators", func() {
			Expect(helpers.GenerateSlug("lab\u00a0coat", 50)).To(Equal("lab-coat"))
			Expect(helpers.GenerateSlug("lab\u2003\u2003coat", 50)).To(Equal("lab-coat"))
		})

		It("never ends on a hyphen after truncation", func() {
			slug := helpers.GenerateSlug("calculus book for sale", 9)
			Expect(slug).To(Equal("calculus"))
		})
	})

	DescribeTable("MaskEmail",
		func(email, want string) {
			Expect(helpers.MaskEmail(email)).To(Equal(want))
		},
		Entry("short local part unchanged", "ab@x.com", "ab@x.com"),
		Entry("long local part masked", "abcdef@x.com", "ab****@x.com"),
		Entry("three characters", "abc@uni.edu", "ab*@uni.edu"),
		Entry("no at sign unchanged", "not-an-email", "not-an-email"),
		Entry("empty", "", ""),
	)
})
