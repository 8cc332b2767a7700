package handlers_test

import (
	"net/http"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/oksasatya/campus-exchange/internal/interface/middleware"
	"github.com/oksasatya/campus-exchange/internal/testkit"
)

var _ = Describe("Engine", func() {
	var app *testkit.App

	BeforeEach(func() {
		app = testkit.NewApp(testkit.PrimaryUser())
	})

	It("answers health checks with a request id", func() {
		rec := testkit.RequestFactory{Method: http.MethodGet, Target: "/healthz"}.Serve(app.Engine)
		Expect(rec.Code).To(Equal(http.StatusOK))

		body := testkit.DecodeJSON[testkit.Envelope[map[string]string]](rec.Body)
		Expect(body.Data).To(HaveKeyWithValue("status", "ok"))
		_, err := uuid.Parse(body.RequestID)
		Expect(err).NotTo(HaveOccurred())
		Expect(rec.Header().Get(middleware.RequestIDHeader)).To(Equal(body.RequestID))
	})

	It("exposes service counters", func() {
		login := testkit.RequestFactory{
			Method:  http.MethodPost,
			Target:  "/api/v1/auth/login",
			JSONObj: map[string]any{"email": testkit.PrimaryUser().Email, "password": testkit.Password},
		}.Serve(app.Engine)
		Expect(login.Code).To(Equal(http.StatusOK))

		rec := testkit.RequestFactory{Method: http.MethodGet, Target: "/api/debug/vars"}.Serve(app.Engine)
		Expect(rec.Code).To(Equal(http.StatusOK))
		vars := testkit.DecodeJSON[map[string]any](rec.Body)
		Expect(vars).To(HaveKeyWithValue("users_logins_total", BeNumerically(">=", 1)))
		Expect(vars).To(HaveKey("emails_enqueued_total"))
	})
})
