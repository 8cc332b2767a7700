package middleware_test

import (
	"net/http"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"

	"github.com/oksasatya/campus-exchange/internal/interface/middleware"
	"github.com/oksasatya/campus-exchange/internal/testkit"
)

var _ = Describe("AccessLog", func() {
	var (
		hook   *test.Hook
		engine *gin.Engine
	)

	BeforeEach(func() {
		var logger *logrus.Logger
		logger, hook = test.NewNullLogger()
		engine = gin.New()
		engine.Use(middleware.RequestID(), middleware.RealIP(), middleware.AccessLog(logger))
		engine.GET("/items/:id", func(c *gin.Context) { c.String(http.StatusOK, "ok") })
		engine.GET("/boom", func(c *gin.Context) { c.Status(http.StatusBadGateway) })
	})

	It("logs the route pattern rather than the raw path", func() {
		testkit.RequestFactory{Method: http.MethodGet, Target: "/items/42"}.Serve(engine)

		Expect(hook.Entries).To(HaveLen(1))
		entry := hook.LastEntry()
		Expect(entry.Level).To(Equal(logrus.InfoLevel))
		Expect(entry.Data).To(HaveKeyWithValue("route", "/items/:id"))
		Expect(entry.Data).To(HaveKeyWithValue("status", http.StatusOK))
		Expect(entry.Data["request_id"]).NotTo(BeEmpty())
	})

	It("raises the level for server errors", func() {
		testkit.RequestFactory{Method: http.MethodGet, Target: "/boom"}.Serve(engine)
		Expect(hook.LastEntry().Level).To(Equal(logrus.ErrorLevel))
	})

	It("warns on unmatched routes", func() {
		testkit.RequestFactory{Method: http.MethodGet, Target: "/nope"}.Serve(engine)
		Expect(hook.LastEntry().Level).To(Equal(logrus.WarnLevel))
		Expect(hook.LastEntry().Data).To(HaveKeyWithValue("route", "/nope"))
	})
})
