package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "taskboard/docs"
	"taskboard/internal/config"
	"taskboard/internal/database"
	"taskboard/internal/handler"
	"taskboard/internal/logger"
	"taskboard/internal/middleware"
	"taskboard/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

type Server struct {
	Engine *gin.Engine
	DB     *database.Accessor
	Config *config.Config
}

func Init(cfg *config.Config) (*Server, error) {
	dsn, err := cfg.DSN()
	if err != nil {
		return nil, err
	}

	accessor := database.NewAccessor(dsn)
	db, err := accessor.DB()
	if err != nil {
		return nil, err
	}
	logger.Log.Info("✅ Connected to database", "db", cfg.DBName)

	if cfg.AutoMigrate {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		if err := database.Migrate(sqlDB); err != nil {
			return nil, err
		}
		logger.Log.Info("✅ Migrations applied")
	}

	return &Server{
		Engine: NewEngine(db, accessor),
		DB:     accessor,
		Config: cfg,
	}, nil
}

// NewEngine wires repositories and handlers onto a gin engine.
func NewEngine(db *gorm.DB, health handler.StatusChecker) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestLogger(), middleware.Recovery(), middleware.Metrics())

	// Initialize repositories
	boardRepo := repository.NewBoardRepository(db)
	listRepo := repository.NewListRepository(db)
	cardRepo := repository.NewCardRepository(db)

	// Initialize handlers
	boardHandler := handler.NewBoardHandler(boardRepo)
	listHandler := handler.NewListHandler(listRepo)
	cardHandler := handler.NewCardHandler(cardRepo)
	healthHandler := handler.NewHealthHandler(health)

	// Board routes
	r.GET("/boards", boardHandler.GetAll)
	r.POST("/boards", boardHandler.Create)
	r.GET("/boards/:id", boardHandler.GetByID)
	r.PATCH("/boards/:id", boardHandler.Rename)
	r.DELETE("/boards/:id", boardHandler.Delete)
	r.GET("/boards/:id/export", boardHandler.Export)

	// List routes
	r.GET("/boards/:id/lists", listHandler.GetByBoard)
	r.POST("/boards/:id/lists", listHandler.Create)
	r.GET("/lists/:id", listHandler.GetByID)
	r.PATCH("/lists/:id", listHandler.Rename)
	r.DELETE("/lists/:id", listHandler.Delete)

	// Card routes
	r.GET("/lists/:id/cards", cardHandler.GetByList)
	r.POST("/lists/:id/cards", cardHandler.Create)
	r.GET("/cards/:id", cardHandler.GetByID)
	r.PATCH("/cards/:id", cardHandler.Update)
	r.DELETE("/cards/:id", cardHandler.Delete)

	// Operations
	r.GET("/health/db", healthHandler.Database)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

func (s *Server) Run() {
	srv := &http.Server{
		Addr: ":" + s.Config.ServerPort,
		Handler: cors.Handler(cors.Options{
			AllowedOrigins: s.Config.CORSAllowedOrigins,
			AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type"},
			MaxAge:         300,
		})(s.Engine),
	}

	go func() {
		logger.Log.Info("🚀 Server running", "port", s.Config.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("❌ Failed to listen", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("❌ Server forced to shutdown", "error", err)
	}
	if err := s.DB.Close(); err != nil {
		logger.Log.Error("failed to close database", "error", err)
	}

	logger.Log.Info("✅ Server exited properly")
}
