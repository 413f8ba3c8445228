package rest

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	core_port "github.com/LallyDik/airtable-estate-flow/internal/core/port"
)

// Server — REST API сервер приложения.
type Server struct {
	httpServer *http.Server
	logger     core_port.LoggerPort
}

// NewServer собирает роутер: публичные маршруты сессии и группа
// маршрутов, требующих заголовок X-Broker-Email.
func NewServer(
	port string,
	allowedOrigins []string,
	sessionHandler *SessionHandler,
	propertyHandler *PropertyHandler,
	postHandler *PostHandler,
	uploadHandler *UploadHandler,
	baseLogger core_port.LoggerPort,
) *Server {
	r := chi.NewRouter()

	// Middleware
	r.Use(LoggerMiddleware(baseLogger))
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Broker-Email", "X-Trace-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Route("/api/v1", func(r chi.Router) {
		// Публичные маршруты сессии
		r.Post("/login", sessionHandler.Login)
		r.Get("/session", sessionHandler.GetSession)
		r.Post("/logout", sessionHandler.Logout)

		// Все остальное требует идентичности брокера
		r.Group(func(r chi.Router) {
			r.Use(BrokerMiddleware)

			r.Route("/properties", func(r chi.Router) {
				r.Get("/", propertyHandler.ListProperties)
				r.Post("/", propertyHandler.CreateProperty)
				r.Patch("/{propertyID}", propertyHandler.UpdateProperty)
				r.Delete("/{propertyID}", propertyHandler.DeleteProperty)
				r.Get("/{propertyID}/attachments", propertyHandler.ListAttachments)
			})

			r.Route("/posts", func(r chi.Router) {
				r.Get("/", postHandler.ListPosts)
				r.Post("/", postHandler.CreatePost)
				r.Get("/availability", postHandler.GetAvailability)
				r.Patch("/{postID}", postHandler.UpdatePost)
				r.Delete("/{postID}", postHandler.DeletePost)
			})

			r.Post("/uploads", uploadHandler.Upload)
		})
	})

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	return &Server{
		httpServer: srv,
		logger:     baseLogger,
	}
}

// Start запускает HTTP-сервер.
func (s *Server) Start() error {
	s.logger.Info("Starting REST API server", core_port.Fields{"address": s.httpServer.Addr})
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		s.logger.Error("Could not start server", err, nil)
		return fmt.Errorf("could not start server: %w", err)
	}
	return nil
}

// Stop корректно останавливает сервер.
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Stopping REST API server...", nil)
	return s.httpServer.Shutdown(ctx)
}
