package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/nutrilens/nutrilens-be/internal/api/handlers"
	"github.com/nutrilens/nutrilens-be/internal/auth"
	"github.com/nutrilens/nutrilens-be/internal/monitoring"
	"github.com/nutrilens/nutrilens-be/internal/services"
	ws "github.com/nutrilens/nutrilens-be/internal/websocket"
)

// RouterDeps bundles everything the route tree needs.
type RouterDeps struct {
	Tokens     *auth.Manager
	Users      services.UserServiceProvider
	Products   services.ProductServiceProvider
	Blogs      services.BlogServiceProvider
	Chat       services.ChatServiceProvider
	Vision     handlers.TextDetector
	Hub        *ws.Hub
	Stats      *monitoring.StatUpdater
	CORSOrigin string
}

// NewRouter creates and configures a new Chi router.
func NewRouter(deps RouterDeps) *chi.Mux {
	r := chi.NewRouter()

	// Basic middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{deps.CORSOrigin},
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(deps.Users, deps.Tokens)
	productHandler := handlers.NewProductHandler(deps.Products)
	ocrHandler := handlers.NewOCRHandler(deps.Vision)
	chatHandler := handlers.NewChatHandler(deps.Chat)
	blogHandler := handlers.NewBlogHandler(deps.Blogs, deps.Hub)
	healthHandler := handlers.NewHealthHandler(deps.Stats)
	wsHandler := handlers.NewWebSocketHandler(deps.Hub, deps.Chat)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("Server is running..."))
	})

	r.Route("/users", func(r chi.Router) {
		r.Post("/signup", authHandler.Signup)
		r.Post("/signin", authHandler.Signin)
		r.Post("/logout", authHandler.Logout)
		r.With(deps.Tokens.Middleware()).Get("/me", authHandler.Me)
	})

	r.Route("/products", func(r chi.Router) {
		r.Post("/", productHandler.Create)
		r.Get("/count", productHandler.Count)
		r.Post("/search", productHandler.Search)
		r.Get("/nutrients", productHandler.GetNutrients)
		r.Post("/scan", ocrHandler.Scan)
		r.Route("/{id}", func(r chi.Router) {
			r.Patch("/", productHandler.Update)
			r.Delete("/", productHandler.Delete)
		})
	})

	r.Post("/ocr", ocrHandler.Scan)
	r.Post("/chat", chatHandler.Ask)

	r.Route("/blogs", func(r chi.Router) {
		r.Get("/", blogHandler.GetAll)
		r.Post("/generate", blogHandler.Generate)
		r.Post("/{id}/like", blogHandler.Like)
		r.Post("/{id}/comment", blogHandler.Comment)
	})

	r.Get("/ws", wsHandler.Serve)
	r.Get("/health", healthHandler.Get)

	return r
}
