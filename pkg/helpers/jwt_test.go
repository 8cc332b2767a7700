package helpers_test

import (
	"strings"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"golang.org/x/crypto/bcrypt"

	"github.com/oksasatya/campus-exchange/pkg/helpers"
)

var _ = Describe("JWTManager", func() {
	var jwt *helpers.JWTManager

	BeforeEach(func() {
		jwt = helpers.NewJWTManager("access-secret", "refresh-secret", 15*time.Minute, time.Hour)
	})

	It("round-trips the user and session ids of an access token", func() {
		token, exp, err := jwt.GenerateAccessToken("user-1", "session-1")
		Expect(err).NotTo(HaveOccurred())
		Expect(exp).To(BeTemporally("~", time.Now().Add(15*time.Minute), 5*time.Second))

		claims, err := jwt.ParseAccessToken(token)
		Expect(err).NotTo(HaveOccurred())
		Expect(claims.UserID).To(Equal("user-1"))
		Expect(claims.SessionID).To(Equal("session-1"))
		Expect(claims.Type).To(Equal(helpers.TokenTypeAccess))
	})

	It("does not accept a refresh token as an access token", func() {
		refresh, _, err := jwt.GenerateRefreshToken("user-1", "session-1")
		Expect(err).NotTo(HaveOccurred())

		_, err = jwt.ParseAccessToken(refresh)
		Expect(err).To(HaveOccurred())

		claims, err := jwt.ParseRefreshToken(refresh)
		Expect(err).NotTo(HaveOccurred())
		Expect(claims.Type).To(Equal(helpers.TokenTypeRefresh))
	})

	It("rejects tokens signed with another secret", func() {
		other := helpers.NewJWTManager("other", "other", time.Minute, time.Minute)
		token, _, err := other.GenerateAccessToken("user-1", "s")
		Expect(err).NotTo(HaveOccurred())

		_, err = jwt.ParseAccessToken(token)
		Expect(err).To(HaveOccurred())
	})

	It("rejects expired tokens", func() {
		expired := helpers.NewJWTManager("access-secret", "refresh-secret", -time.Minute, time.Hour)
		token, _, err := expired.GenerateAccessToken("user-1", "s")
		Expect(err).NotTo(HaveOccurred())

		_, err = jwt.ParseAccessToken(token)
		Expect(err).To(HaveOccurred())
	})

	It("rejects garbage", func() {
		_, err := jwt.ParseAccessToken("not.a.token")
		Expect(err).To(HaveOccurred())
	})
})

var _ = Describe("Passwords", func() {
	It("matches only the password it was made from", func() {
		hash, err := helpers.HashPassword("Password123")
		Expect(err).NotTo(HaveOccurred())
		Expect(hash).NotTo(Equal("Password123"))

		Expect(helpers.VerifyPassword(hash, "Password123")).To(BeTrue())
		Expect(helpers.VerifyPassword(hash, "password123")).To(BeFalse())
		Expect(helpers.VerifyPassword("", "Password123")).To(BeFalse())
	})

	It("refuses input bcrypt would truncate", func() {
		_, err := helpers.HashPassword(strings.Repeat("Aa1", 25))
		Expect(err).To(MatchError(helpers.ErrPasswordTooLong))
	})

	It("clamps the cost", func() {
		DeferCleanup(helpers.SetPasswordCost, helpers.PasswordCost)

		helpers.SetPasswordCost(1)
		Expect(helpers.PasswordCost).To(Equal(bcrypt.MinCost))
		helpers.SetPasswordCost(99)
		Expect(helpers.PasswordCost).To(Equal(bcrypt.MaxCost))
	})
})
