package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"SiteModels/internal/config"
	"SiteModels/internal/middleware"
	"SiteModels/internal/service"
)

type Handler struct {
	Router chi.Router
}

// NewHandler разводящий для хендлеров
func NewHandler(
	authService *service.AuthService,
	userService *service.UserService,
	productService *service.ProductService,
	disclaimerService *service.DisclaimerService,
	videoService *service.TrainingVideoService,
	logger *zap.SugaredLogger,
	cfg *config.Config,
) *Handler {
	r := chi.NewRouter()

	r.Use(middleware.WithGzip)
	r.Use(middleware.WithLogging)
	r.Use(middleware.WithAuth(cfg.AuthSecret))

	// Handlers
	authHandler := NewAuthHandler(authService, logger)
	userHandler := NewUserHandler(userService, logger)
	productHandler := NewProductHandler(productService, logger)
	contentHandler := NewContentHandler(disclaimerService, videoService, logger)

	r.Route("/api/v1", func(r chi.Router) {
		// Auth
		r.Post("/auth/login", authHandler.Login)
		r.Post("/auth/refresh-token", authHandler.RefreshToken)
		r.With(middleware.RequireAuth).Post("/auth/change-password", authHandler.ChangePassword)

		// Current user
		r.With(middleware.RequireAuth).Get("/users/me", userHandler.Me)

		// Public catalog
		r.Get("/products", productHandler.List)
		r.Get("/products/{id}", productHandler.Get)
		r.Get("/disclaimers", contentHandler.ListDisclaimers)
		r.Get("/disclaimers/{id}", contentHandler.GetDisclaimer)
		r.Get("/training-videos", contentHandler.ListTrainingVideos)
		r.Get("/training-videos/{id}", contentHandler.GetTrainingVideo)

		// Admin-only management
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAdmin)

			r.Post("/users/create-admin", userHandler.CreateAdmin)
			r.Post("/users/create-buyer", userHandler.CreateBuyer)

			r.Get("/admins", userHandler.ListAdmins)
			r.Get("/admins/{id}", userHandler.GetAdmin)
			r.Patch("/admins/{id}", userHandler.UpdateAdmin)
			r.Delete("/admins/{id}", userHandler.DeleteAdmin)

			r.Get("/buyers", userHandler.ListBuyers)
			r.Get("/buyers/{id}", userHandler.GetBuyer)
			r.Patch("/buyers/{id}", userHandler.UpdateBuyer)
			r.Delete("/buyers/{id}", userHandler.DeleteBuyer)

			r.Post("/products/create-product", productHandler.Create)
			r.Get("/products/export", productHandler.Export)
			r.Patch("/products/{id}", productHandler.Update)
			r.Delete("/products/{id}", productHandler.Delete)

			r.Post("/disclaimers/create-disclaimer", contentHandler.CreateDisclaimer)
			r.Patch("/disclaimers/{id}", contentHandler.UpdateDisclaimer)
			r.Delete("/disclaimers/{id}", contentHandler.DeleteDisclaimer)

			r.Post("/training-videos/create-training-video", contentHandler.CreateTrainingVideo)
			r.Patch("/training-videos/{id}", contentHandler.UpdateTrainingVideo)
			r.Delete("/training-videos/{id}", contentHandler.DeleteTrainingVideo)
		})
	})

	// Статика для файлового хранилища (используется без S3).
	if cfg.UploadDir != "" {
		r.Handle("/assets/*", http.StripPrefix("/assets/", http.FileServer(http.Dir(cfg.UploadDir))))
	}

	return &Handler{Router: r}
}
