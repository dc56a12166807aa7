package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rensmac/portfolio-api/internal/api/handler"
	"github.com/rensmac/portfolio-api/internal/api/middleware"
	"github.com/rensmac/portfolio-api/internal/config"
	"github.com/rensmac/portfolio-api/internal/domain"
	"github.com/rensmac/portfolio-api/internal/repository/mongo"
	"github.com/rensmac/portfolio-api/internal/repository/redis"
	"github.com/rensmac/portfolio-api/internal/security"
	"github.com/rensmac/portfolio-api/internal/service"
	"github.com/rensmac/portfolio-api/internal/storage"
)

// NewRouter creates and configures the HTTP router
func NewRouter(cfg *config.Config, db *mongo.DB, redisClient *redis.Client, store storage.Store) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(cfg.Server.MiddlewareTimeout))

	// CORS: the frontend is the only allowed origin since auth rides on
	// credentialed cookies.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.CORS.FrontendOrigin},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Security components
	tokens := security.NewTokenManager(
		cfg.Auth.AccessSecret,
		cfg.Auth.RefreshSecret,
		cfg.Auth.AccessTokenTTL,
		cfg.Auth.RefreshTokenTTL,
	)

	// Repositories
	userRepo := mongo.NewUserRepository(db)
	aboutRepo := mongo.NewAboutRepository(db)
	projectRepo := mongo.NewProjectRepository(db)
	skillRepo := mongo.NewSkillRepository(db)
	skillCategoryRepo := mongo.NewSkillCategoryRepository(db)
	blogRepo := mongo.NewBlogRepository(db)

	// Services
	authService := service.NewAuthService(userRepo, tokens, cfg.Auth.BcryptCost)
	aboutService := service.NewAboutService(aboutRepo)
	projectService := service.NewProjectService(projectRepo, skillRepo)
	skillService := service.NewSkillService(skillRepo, skillCategoryRepo)
	blogService := service.NewBlogService(blogRepo)

	// Handlers
	authHandler := handler.NewAuthHandler(authService, tokens, cfg.Server.IsProduction())
	aboutHandler := handler.NewAboutHandler(aboutService, store)
	projectHandler := handler.NewProjectHandler(projectService, store)
	skillHandler := handler.NewSkillHandler(skillService)
	blogHandler := handler.NewBlogHandler(blogService, store)
	mediaHandler := handler.NewMediaHandler(store)

	// Middleware
	authMW := middleware.NewAuthMiddleware(tokens)
	requireOwner := authMW.RequireRole(domain.RoleOwner)

	loginLimiter := redis.NewRateLimiter(redisClient, cfg.RateLimit.Requests, cfg.RateLimit.Window)
	rateLimitMW := middleware.NewRateLimitMiddleware(loginLimiter)

	// Uploaded assets
	fileServer := http.StripPrefix("/uploads/", http.FileServer(http.Dir(cfg.Storage.UploadDir)))
	r.Get("/uploads/*", fileServer.ServeHTTP)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", handler.HealthCheck)
		r.Get("/ready", handler.ReadyCheck(db))

		r.Route("/user", func(r chi.Router) {
			r.With(rateLimitMW.Limit).Post("/login", authHandler.Login)
			r.Post("/refresh-token", authHandler.RefreshToken)
			r.Post("/logout", authHandler.Logout)

			// Registration mints OWNER accounts, so only an existing owner
			// may call it. The first account is seeded out of band.
			r.Group(func(r chi.Router) {
				r.Use(requireOwner)
				r.Post("/register", authHandler.Register)
				r.Patch("/change-password", authHandler.ChangePassword)
				r.Get("/me", authHandler.Me)
			})
		})

		r.Route("/about", func(r chi.Router) {
			r.Get("/", aboutHandler.Get)

			r.Group(func(r chi.Router) {
				r.Use(requireOwner)
				r.Post("/", aboutHandler.Create)
				r.Patch("/", aboutHandler.Update)
				r.Delete("/", aboutHandler.Delete)
			})
		})

		r.Route("/project", func(r chi.Router) {
			r.Get("/", projectHandler.List)
			r.Get("/{id}", projectHandler.Get)

			r.Group(func(r chi.Router) {
				r.Use(requireOwner)
				r.Post("/", projectHandler.Create)
				r.Patch("/{id}", projectHandler.Update)
				r.Delete("/{id}", projectHandler.Delete)
			})
		})

		r.Route("/skill", func(r chi.Router) {
			r.Get("/", skillHandler.List)

			r.Route("/category", func(r chi.Router) {
				r.Get("/", skillHandler.ListCategories)

				r.Group(func(r chi.Router) {
					r.Use(requireOwner)
					r.Post("/", skillHandler.CreateCategory)
					r.Patch("/{id}", skillHandler.UpdateCategory)
					r.Delete("/{id}", skillHandler.DeleteCategory)
				})
			})

			r.Get("/{id}", skillHandler.Get)

			r.Group(func(r chi.Router) {
				r.Use(requireOwner)
				r.Post("/", skillHandler.Create)
				r.Patch("/{id}", skillHandler.Update)
				r.Delete("/{id}", skillHandler.Delete)
			})
		})

		r.Route("/blog", func(r chi.Router) {
			// Public surface
			r.Get("/", blogHandler.ListPublished)
			r.Get("/{id}", blogHandler.GetPublished)
			r.With(rateLimitMW.Limit).Post("/{id}/comments", blogHandler.AddComment)
			r.Get("/{id}/comments", blogHandler.GetComments)

			// Owner surface
			r.Group(func(r chi.Router) {
				r.Use(requireOwner)
				r.Get("/admin", blogHandler.ListAdmin)
				r.Get("/admin/{id}", blogHandler.GetAdmin)
				r.Post("/", blogHandler.Create)
				r.Patch("/{id}", blogHandler.Update)
				r.Delete("/{id}", blogHandler.Delete)
				r.Patch("/comments/{commentId}", blogHandler.ModerateComment)
			})
		})

		r.With(requireOwner).Post("/media", mediaHandler.Upload)
	})

	return r
}
