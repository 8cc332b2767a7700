package helpers_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/oksasatya/campus-exchange/pkg/helpers"
)

var _ = Describe("Validation helpers", func() {
	DescribeTable("IsValidEmail",
		func(email string, valid bool) {
			Expect(helpers.IsValidEmail(email)).To(Equal(valid))
		},
		Entry("plain address", "student@uni.edu", true),
		Entry("plus tag and subdomain", "a.b+market@mail.lums.edu.pk", true),
		Entry("missing tld", "student@uni", false),
		Entry("one letter tld", "student@uni.c", false),
		Entry("no at sign", "student.uni.edu", false),
		Entry("empty", "", false),
	)

	DescribeTable("IsUniversityEmail",
		func(email string, want bool) {
			Expect(helpers.IsUniversityEmail(email)).To(Equal(want))
		},
		Entry("us .edu", "student@uni.edu", true),
		Entry("uk .ac.uk", "someone@ox.ac.uk", true),
		Entry("pakistan .edu.pk", "someone@lums.edu.pk", true),
		Entry("case insensitive", "Someone@MIT.EDU", true),
		Entry("gmail", "a@gmail.com", false),
		Entry("edu only as a label", "a@edu.com", false),
		Entry("empty", "", false),
	)

	DescribeTable("ValidateImageURL",
		func(url string, want bool) {
			Expect(helpers.ValidateImageURL(url)).To(Equal(want))
		},
		Entry("https png", "https://cdn.example.com/id.png", true),
		Entry("http jpeg upper case", "http://example.com/ID.JPEG", true),
		Entry("webp", "https://example.com/a.webp", true),
		Entry("pdf", "https://example.com/id.pdf", false),
		Entry("ftp scheme", "ftp://example.com/id.png", false),
		Entry("no scheme", "example.com/id.png", false),
		Entry("scheme only", "https://", false),
		Entry("empty", "", false),
	)

	DescribeTable("ValidatePhoneNumber",
		func(phone string, want bool) {
			Expect(helpers.ValidatePhoneNumber(phone)).To(Equal(want))
		},
		Entry("dashed ten digits", "123-456-7890", true),
		Entry("international format", "+92 (300) 123-4567", true),
		Entry("exactly seven digits", "1234567", true),
		Entry("exactly fifteen digits", "123456789012345", true),
		Entry("too short", "123", false),
		Entry("sixteen digits", "1234567890123456", false),
		Entry("no digits", "call me", false),
		Entry("empty", "", false),
	)

	Describe("GetFileExtension", func() {
		It("returns the lowercased text after the last dot", func() {
			ext, ok := helpers.GetFileExtension("scan.final.PNG")
			Expect(ok).To(BeTrue())
			Expect(ext).To(Equal("png"))
		})

		It("returns an empty extension for a trailing dot", func() {
			ext, ok := helpers.GetFileExtension("scan.")
			Expect(ok).To(BeTrue())
			Expect(ext).To(BeEmpty())
		})

		It("reports absence when there is no dot", func() {
			_, ok := helpers.GetFileExtension("README")
			Expect(ok).To(BeFalse())
		})

		It("gives the same answer when called twice", func() {
			first, ok1 := helpers.GetFileExtension("Photo.JPG")
			second, ok2 := helpers.GetFileExtension("Photo.JPG")
			Expect(first).To(Equal(second))
			Expect(ok1).To(Equal(ok2))
		})
	})

	DescribeTable("IsAllowedFileType",
		func(filename string, allowed []string, want bool) {
			Expect(helpers.IsAllowedFileType(filename, allowed)).To(Equal(want))
		},
		Entry("listed without dot", "id.png", []string{"png", "jpg"}, true),
		Entry("listed with dot and upper case", "id.jpg", []string{".JPG"}, true),
		Entry("filename upper case", "ID.PDF", []string{"pdf"}, true),
		Entry("not listed", "id.exe", []string{"png"}, false),
		Entry("no extension", "id", []string{"png"}, false),
		Entry("empty allow-list", "id.png", nil, false),
	)
})
