package router

import "github.com/gin-gonic/gin"

// Module is a feature area that owns a set of routes under one group.
type Module interface {
	Register(rg *gin.RouterGroup)
}

type mount struct {
	group *gin.RouterGroup
	mod   Module
}

// Registry collects modules and mounts them under /api (infrastructure
// endpoints) or /api/v1 (versioned API).
type Registry struct {
	Engine      *gin.Engine
	API         *gin.RouterGroup
	V1          *gin.RouterGroup
	middlewares []gin.HandlerFunc
	mounts      []mount
}

func NewRegistry(engine *gin.Engine) *Registry {
	api := engine.Group("/api")
	return &Registry{Engine: engine, API: api, V1: api.Group("/v1")}
}

// Use adds middleware applied to every /api route.
func (r *Registry) Use(mw ...gin.HandlerFunc) {
	r.middlewares = append(r.middlewares, mw...)
}

// Add mounts mod under /api/v1.
func (r *Registry) Add(mod Module) {
	r.mounts = append(r.mounts, mount{group: r.V1, mod: mod})
}

// AddUnversioned mounts mod under /api.
func (r *Registry) AddUnversioned(mod Module) {
	r.mounts = append(r.mounts, mount{group: r.API, mod: mod})
}

func (r *Registry) RegisterAll() {
	if len(r.middlewares) > 0 {
		r.API.Use(r.middlewares...)
	}
	for _, m := range r.mounts {
		m.mod.Register(m.group)
	}
}
