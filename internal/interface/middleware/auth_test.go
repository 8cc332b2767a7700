package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/oksasatya/campus-exchange/internal/application"
	"github.com/oksasatya/campus-exchange/internal/domain/entity"
	"github.com/oksasatya/campus-exchange/internal/interface/middleware"
	"github.com/oksasatya/campus-exchange/internal/testkit"
	"github.com/oksasatya/campus-exchange/pkg/helpers"
	"github.com/oksasatya/campus-exchange/pkg/response"
)

var _ = Describe("Auth", func() {
	var (
		engine *gin.Engine
		seen   []string
	)

	BeforeEach(func() {
		seen = nil
		resolver := middleware.ResolverFunc(func(_ context.Context, token string) (*entity.User, error) {
			seen = append(seen, token)
			switch token {
			case "good":
				return testkit.PrimaryUser(), nil
			case "inactive":
				return nil, application.ErrInactiveUser
			default:
				return nil, application.ErrInvalidCredentials
			}
		})
		engine = gin.New()
		engine.GET("/me", middleware.Auth(resolver), func(c *gin.Context) {
			u, ok := middleware.CurrentUser(c)
			Expect(ok).To(BeTrue())
			c.String(http.StatusOK, u.ID+"|"+c.GetString(middleware.CtxUserIDKey))
		})
	})

	serve := func(mods ...testkit.RequestModifier) *httptest.ResponseRecorder {
		return testkit.RequestFactory{Method: http.MethodGet, Target: "/me", Mods: mods}.Serve(engine)
	}

	It("accepts a bearer token", func() {
		rec := serve(testkit.WithBearer("good"))
		Expect(rec.Code).To(Equal(http.StatusOK))
		Expect(rec.Body.String()).To(Equal(testkit.PrimaryUserID + "|" + testkit.PrimaryUserID))
		Expect(seen).To(Equal([]string{"good"}))
	})

	It("falls back to the access token cookie", func() {
		rec := serve(func(r *http.Request) {
			r.AddCookie(&http.Cookie{Name: helpers.AccessCookie, Value: "good"})
		})
		Expect(rec.Code).To(Equal(http.StatusOK))
	})

	It("ignores non-bearer authorization schemes", func() {
		rec := serve(func(r *http.Request) { r.Header.Set("Authorization", "Basic Z29vZA==") })
		Expect(rec.Code).To(Equal(http.StatusUnauthorized))
		Expect(seen).To(BeEmpty())
	})

	DescribeTable("rejections",
		func(mod testkit.RequestModifier, message string) {
			rec := serve(mod)
			Expect(rec.Code).To(Equal(http.StatusUnauthorized))
			body := testkit.DecodeJSON[response.APIResponse[any]](rec.Body)
			Expect(body.Success).To(BeFalse())
			Expect(body.Message).To(Equal(message))
		},
		Entry("no token", testkit.RequestModifier(func(*http.Request) {}), "Not authenticated"),
		Entry("bad token", testkit.WithBearer("forged"), "Could not validate credentials"),
		Entry("deactivated account", testkit.WithBearer("inactive"), "Inactive user"),
	)
})
