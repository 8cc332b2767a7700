package modules

import (
	"expvar"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/campus-exchange/internal/interface/middleware"
)

// DebugModule exposes expvar counters at /debug/vars.
type DebugModule struct {
	Limits Limits
}

func NewDebugModule(limits Limits) *DebugModule { return &DebugModule{Limits: limits} }

func (m *DebugModule) Register(rg *gin.RouterGroup) {
	rg.GET("/debug/vars", m.Limits.PerMinute(120, middleware.KeyByIP()), gin.WrapH(expvar.Handler()))
}
