package api

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/blogforge/blog-api/internal/api/handler"
	"github.com/blogforge/blog-api/internal/api/middleware"
	"github.com/blogforge/blog-api/internal/core/service"
	"github.com/blogforge/blog-api/internal/infrastructure/db/postgres"
	"github.com/blogforge/blog-api/internal/infrastructure/db/redis"
	"github.com/blogforge/blog-api/internal/infrastructure/http/handlers"
	"github.com/blogforge/blog-api/internal/pkg/config"
	"github.com/blogforge/blog-api/web"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(pool *pgxpool.Pool, rdb *goredis.Client, cfg *config.Config, log zerolog.Logger) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	renderer, err := NewRenderer()
	if err != nil {
		return nil, err
	}
	e.Renderer = renderer

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("blog"))

	// --- Dependencies ---
	postRepo := postgres.NewPostRepository(pool)
	postService := service.NewPostService(postRepo, log)
	postHandler := handler.NewPostHandler(postService)
	webHandler := handler.NewWebHandler(postService)

	userRepo := postgres.NewUserRepository(pool)
	limiter := redis.NewLoginLimiter(rdb, cfg.LoginMaxAttempts)
	authService := service.NewAuthService(userRepo, limiter, cfg.JWTSecret, cfg.TokenTTL, cfg.TokenOrg, log)
	authHandler := handler.NewAuthHandler(authService)

	// --- Auth ---
	e.POST("/authorize", authHandler.Authorize)

	// --- JSON API ---
	e.GET("/api/", postHandler.List)
	mutate := e.Group("/api")
	if cfg.AuthEnabled {
		mutate.Use(middleware.Auth(cfg.JWTSecret))
	}
	mutate.POST("/", postHandler.Create)
	mutate.PATCH("/:id", postHandler.Update)
	mutate.DELETE("/:id", postHandler.Delete)

	// --- HTML pages ---
	e.GET("/", webHandler.ListPage)
	e.GET("/new", webHandler.NewPage)
	e.GET("/:id", webHandler.EditPage)
	e.POST("/", webHandler.CreateForm)
	e.POST("/:id", webHandler.UpdateForm)
	e.POST("/delete/:id", webHandler.DeleteForm)
	e.StaticFS("/static", echo.MustSubFS(web.StaticFS, "static"))

	// --- Ops surface (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(pool, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e, nil
}
