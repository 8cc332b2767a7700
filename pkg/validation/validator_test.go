package validation_test

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/go-playground/validator/v10"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/oksasatya/campus-exchange/pkg/validation"
)

type signup struct {
	Email    string  `json:"email" validate:"required,emailaddr"`
	Password string  `json:"password" validate:"required,strongpwd,maxbytes=72"`
	Phone    *string `json:"phone_number" validate:"omitempty,phone"`
	Avatar   *string `json:"avatar" validate:"omitempty,imageurl"`
}

func str(s string) *string { return &s }

var _ = Describe("Validator", func() {
	var v *validator.Validate

	BeforeEach(func() {
		v = validation.New()
	})

	It("accepts a valid payload", func() {
		err := v.Struct(signup{
			Email:    "student@uni.edu",
			Password: "Password123",
			Phone:    str("123-456-7890"),
			Avatar:   str("https://cdn.example.com/me.png"),
		})
		Expect(err).NotTo(HaveOccurred())
	})

	It("reports every offending field by its json name", func() {
		err := v.Struct(signup{
			Email:    "nope",
			Password: "password",
			Phone:    str("123"),
			Avatar:   str("https://cdn.example.com/me.pdf"),
		})
		Expect(err).To(HaveOccurred())

		details := validation.ToDetails(err)
		Expect(details).To(HaveKeyWithValue("email", "must be a valid email"))
		Expect(details).To(HaveKeyWithValue("password", "must be at least 8 characters with uppercase, lowercase and a number"))
		Expect(details).To(HaveKeyWithValue("phone_number", "must be a valid phone number (7-15 digits)"))
		Expect(details).To(HaveKey("avatar"))
	})

	DescribeTable("strong passwords",
		func(pwd string, ok bool) {
			err := v.Struct(signup{Email: "a@b.co", Password: pwd})
			if ok {
				Expect(err).NotTo(HaveOccurred())
			} else {
				Expect(err).To(HaveOccurred())
			}
		},
		Entry("mixed case with digit", "Abcdefg1", true),
		Entry("too short", "Abc1", false),
		Entry("no digit", "Abcdefgh", false),
		Entry("no upper case", "abcdefg1", false),
		Entry("no lower case", "ABCDEFG1", false),
		Entry("72 bytes", strings.Repeat("Aa1", 24), true),
		Entry("over 72 bytes", strings.Repeat("Aa1", 27), false),
		Entry("under 72 runes but over 72 bytes", "Aa1"+strings.Repeat("é", 40), false),
	)

	DescribeTable("email addresses",
		func(email string, ok bool) {
			err := v.Struct(signup{Email: email, Password: "Password123"})
			if ok {
				Expect(err).NotTo(HaveOccurred())
			} else {
				Expect(validation.ToDetails(err)).To(HaveKeyWithValue("email", "must be a valid email"))
			}
		},
		Entry("plain address", "student@uni.edu", true),
		Entry("plus tag", "student+books@uni.edu", true),
		Entry("apostrophe in local part", "o'brien@uni.edu", false),
		Entry("single letter tld", "student@uni.e", false),
	)

	It("names the byte limit", func() {
		err := v.Struct(signup{Email: "a@b.co", Password: strings.Repeat("Aa1", 27)})
		Expect(validation.ToDetails(err)).To(HaveKeyWithValue("password", "must be at most 72 bytes long"))
	})

	It("skips optional fields that are absent", func() {
		Expect(v.Struct(signup{Email: "a@b.co", Password: "Password123"})).To(Succeed())
	})
})

var _ = Describe("ToDetails", func() {
	It("returns nil for nil", func() {
		Expect(validation.ToDetails(nil)).To(BeNil())
	})

	It("explains an empty body", func() {
		Expect(validation.ToDetails(io.EOF)).To(HaveKeyWithValue("payload", "request body is required"))
	})

	It("explains malformed json", func() {
		var dst map[string]any
		err := json.Unmarshal([]byte("{"), &dst)
		Expect(validation.ToDetails(err)).To(HaveKeyWithValue("payload", "invalid json"))
	})

	It("names the field with the wrong type", func() {
		var dst struct {
			Bio string `json:"bio"`
		}
		err := json.Unmarshal([]byte(`{"bio": 42}`), &dst)
		Expect(validation.ToDetails(err)).To(HaveKeyWithValue("bio", "must be a string"))
	})
})
