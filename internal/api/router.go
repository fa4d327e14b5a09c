package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/scribbly/notes-api/internal/api/handler"
	"github.com/scribbly/notes-api/internal/api/middleware"
	"github.com/scribbly/notes-api/internal/core/service"
	"github.com/scribbly/notes-api/internal/infrastructure/config"
	mongodb "github.com/scribbly/notes-api/internal/infrastructure/db/mongo"
	redisdb "github.com/scribbly/notes-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("notes"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	noteRepo := mongodb.NewNoteRepository(db)
	throttle := redisdb.NewLoginThrottle(rdb, cfg.LoginRateLimit, cfg.LoginRateWindow)

	authService := service.NewAuthService(userRepo, throttle, cfg.JWTSecret, cfg.RegisterTokenTTL, cfg.LoginTokenTTL, log)
	noteService := service.NewNoteService(noteRepo, noteRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	noteHandler := handler.NewNoteHandler(noteService)
	authMiddleware := middleware.Auth(cfg.JWTSecret)

	// --- Public routes ---
	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "hello")
	})
	e.POST("/create-account", authHandler.CreateAccount)
	e.POST("/login", authHandler.Login)

	// --- Authenticated routes ---
	e.GET("/get-user", authHandler.GetUser, authMiddleware)
	e.POST("/add-note", noteHandler.AddNote, authMiddleware)
	e.PUT("/edit-note/:id", noteHandler.EditNote, authMiddleware)
	e.GET("/get-all", noteHandler.GetAllNotes, authMiddleware)
	e.DELETE("/delete-note/:id", noteHandler.DeleteNote, authMiddleware)
	e.PUT("/update-note-pinned/:id", noteHandler.UpdateNotePinned, authMiddleware)
	e.GET("/search-notes", noteHandler.SearchNotes, authMiddleware)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)             // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness)   // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
