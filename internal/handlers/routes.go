package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// SetupRoutes configures all routes and returns the router
func SetupRoutes(ctx *Context) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	if ctx.Config.Debug {
		r.Use(middleware.Logger)
	}

	r.Get("/", ctx.HandleIndex)
	r.Get("/ws", ctx.HandleWS)
	r.Get("/qr.png", ctx.HandleQR)

	r.Route("/api", func(r chi.Router) {
		r.Get("/state", ctx.HandleState)
		r.Get("/health", ctx.HandleHealth)
	})

	fileServer := http.FileServer(http.Dir(ctx.Config.StaticDir))
	r.Handle("/static/*", http.StripPrefix("/static", fileServer))

	return r
}
