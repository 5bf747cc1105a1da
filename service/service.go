// Package service is the container a numbername web service is built on.
//
// A Service holds the gin router and the dependencies its handlers need:
// configuration, a LogHarbour logger, metrics and any number of named
// dependencies. Handlers are registered with RegisterRoute and receive the
// Service alongside the gin context.
//
//	s := service.NewService(r).WithConfig(cs).WithLogHarbour(l).WithDependency("converter", c)
//	s.CreateGroup("/numbername").RegisterRoute(http.MethodGet, "/:number", getName)
package service

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/remiges-tech/logharbour/logharbour"
	"github.com/remiges-tech/numbername/config"
	"github.com/remiges-tech/numbername/metrics"
)

// Dependencies is a map to hold arbitrary dependencies.
type Dependencies map[string]any

// Service is the core struct for a web service, holding essential components and optional dependencies.
// Note: Assert the type of a dependency before using it because the value is of type any.
type Service struct {
	Config       config.Config
	Router       *gin.Engine
	LogHarbour   *logharbour.Logger
	Metrics      metrics.Metrics
	Dependencies Dependencies
}

// NewService constructs a new Service on the given router.
func NewService(r *gin.Engine) *Service {
	return &Service{
		Router: r,
	}
}

// WithConfig is a method to inject the configuration source into the Service.
func (s *Service) WithConfig(c config.Config) *Service {
	s.Config = c
	return s
}

// WithDependency is a method to inject an arbitrary dependency into the Service.
func (s *Service) WithDependency(key string, value any) *Service {
	if s.Dependencies == nil {
		s.Dependencies = make(Dependencies)
	}
	s.Dependencies[key] = value
	return s
}

// WithLogHarbour is a method to inject a logger dependency into the Service.
func (s *Service) WithLogHarbour(l *logharbour.Logger) *Service {
	s.LogHarbour = l
	return s
}

// WithMetrics is a method to inject the metrics system into the Service.
func (s *Service) WithMetrics(m metrics.Metrics) *Service {
	s.Metrics = m
	return s
}

// Dependency returns the dependency registered under key.
func (s *Service) Dependency(key string) (any, bool) {
	value, ok := s.Dependencies[key]
	return value, ok
}

// HandlerFunc is a function that handles a request.
// It takes a *gin.Context and a *Service as parameters.
type HandlerFunc func(*gin.Context, *Service)

// RegisterRoute allows for the registration of a single route directly on the service's engine.
func (s *Service) RegisterRoute(method, path string, handler HandlerFunc) {
	registerRoute(&s.Router.RouterGroup, method, path, func(c *gin.Context) {
		handler(c, s)
	})
}

// RouteGroup represents a group of routes.
type RouteGroup struct {
	Group   *gin.RouterGroup
	service *Service
}

// CreateGroup creates a new route group with the given path.
func (s *Service) CreateGroup(path string) *RouteGroup {
	return &RouteGroup{
		Group:   s.Router.Group(path),
		service: s,
	}
}

// RegisterRoute registers a single route on the route group.
func (g *RouteGroup) RegisterRoute(method, path string, handler HandlerFunc) {
	registerRoute(g.Group, method, path, func(c *gin.Context) {
		handler(c, g.service)
	})
}

func registerRoute(g *gin.RouterGroup, method, path string, handler gin.HandlerFunc) {
	switch method {
	case http.MethodGet:
		g.GET(path, handler)
	case http.MethodPost:
		g.POST(path, handler)
	case http.MethodPut:
		g.PUT(path, handler)
	case http.MethodDelete:
		g.DELETE(path, handler)
	default:
		log.Printf("Unsupported method: %s", method)
	}
}
