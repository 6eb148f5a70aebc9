package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/restaurant-table-reservation/internal/handler"
	"github.com/iliyamo/restaurant-table-reservation/internal/middleware"
)

// RegisterRoutes registers routes that do not require authentication
// on the provided Echo instance.  Currently it exposes only a health
// check, which load balancers and monitoring systems can poll to
// verify the service is up.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterAuth registers all authentication-related routes and
// applies the necessary middleware.  Unauthenticated operations live
// under /v1/auth, while protected endpoints live under /v1.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string) {
	// Registration and login do not require an existing session.
	g := e.Group("/v1/auth")
	g.POST("/register", a.Register)
	g.POST("/login", a.Login)

	// Everything under /v1 outside /v1/auth requires a valid access
	// token.  Both roles may inspect their own account.
	auth := e.Group("/v1")
	auth.Use(middleware.JWTAuth(jwtSecret))
	auth.Use(middleware.RequireRole("client", "manager"))
	auth.GET("/me", a.Me)
}

// RegisterManager registers the restaurant administration routes.
// Every route requires a valid access token carrying the manager
// role; the acting manager is always taken from the token, never
// from the request body.
func RegisterManager(e *echo.Echo, m *handler.ManagerHandler, jwtSecret string) {
	g := e.Group("/v1/manager")
	g.Use(middleware.JWTAuth(jwtSecret))
	g.Use(middleware.RequireRole("manager"))

	g.POST("/restaurants", m.CreateRestaurant)
	g.POST("/restaurants/:name/tables", m.CreateTable)
}

// RegisterClient registers the reservation routes.  Only clients may
// reserve; managers are rejected by the role middleware before the
// engine ever sees the request.
func RegisterClient(e *echo.Echo, cl *handler.ClientHandler, jwtSecret string) {
	g := e.Group("/v1/reservations")
	g.Use(middleware.JWTAuth(jwtSecret))
	g.Use(middleware.RequireRole("client"))

	g.POST("", cl.Reserve)
	g.GET("", cl.List)
	g.DELETE("/:number", cl.Cancel)
}

// RegisterPublic registers the unauthenticated browse endpoints:
// restaurant detail, search and available times.  These are the
// read-heavy routes, so the optional Redis response cache middleware
// is applied here and nowhere else.
func RegisterPublic(e *echo.Echo, p *handler.PublicHandler, cache echo.MiddlewareFunc) {
	g := e.Group("/v1")
	if cache != nil {
		g.Use(cache)
	}

	g.GET("/restaurants/:name", p.GetRestaurant)
	g.GET("/restaurants/:name/available-times", p.AvailableTimes)
	g.GET("/search/restaurants", p.SearchRestaurants)
}
