package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	apphttp "microblog/internal/controller/http"
	"microblog/internal/model"
	"microblog/internal/repo/persistent"
	"microblog/internal/usecase"
	"microblog/pkg/config"
	"microblog/pkg/database"
	"microblog/pkg/logger"
	"microblog/pkg/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "microblog/docs" // Swagger docs
)

type App struct {
	cfg        *config.Config
	log        *logger.Logger
	db         *gorm.DB
	httpServer *http.Server
}

func NewApp(cfg *config.Config) (*App, error) {
	log := logger.New()

	db, err := database.New(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		return nil, err
	}

	// Create-if-missing schema
	if err := db.AutoMigrate(&model.UserModel{}, &model.PostModel{}, &model.LikeModel{}); err != nil {
		log.Error("Failed to migrate database: %v", err)
		return nil, err
	}

	if err := persistent.SeedDemoUsers(db); err != nil {
		log.Error("Failed to seed demo users: %v", err)
		return nil, err
	}

	return &App{
		cfg: cfg,
		log: log,
		db:  db,
	}, nil
}

func (a *App) Run() error {
	// Initialize repositories
	userRepo := persistent.NewUserRepository(a.db)
	postRepo := persistent.NewPostRepository(a.db)
	likeRepo := persistent.NewLikeRepository(a.db)

	// Initialize use cases
	authUseCase := usecase.NewAuthUseCase(userRepo, a.log)
	postUseCase := usecase.NewPostUseCase(postRepo, likeRepo, userRepo, a.log)
	likeUseCase := usecase.NewLikeUseCase(likeRepo, postRepo, a.log)

	// Initialize HTTP handlers
	authHandler := apphttp.NewAuthHandler(authUseCase, a.log)
	postHandler := apphttp.NewPostHandler(postUseCase, a.log)
	likeHandler := apphttp.NewLikeHandler(likeUseCase, a.log)

	// Setup router
	gin.SetMode(gin.ReleaseMode)
	r := gin.Default()

	// CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{a.cfg.CORSOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Swagger documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")
	{
		api.POST("/login", authHandler.Login)

		// Public routes; the caller is resolved when a token is present
		public := api.Group("")
		public.Use(middleware.OptionalAuth(authUseCase))
		{
			public.GET("/posts", postHandler.ListPosts)
			public.GET("/users/:username/posts", postHandler.ListUserPosts)
		}

		// Protected routes
		protected := api.Group("")
		protected.Use(middleware.RequireAuth(authUseCase))
		{
			protected.GET("/me", authHandler.Me)
			protected.POST("/posts", postHandler.CreatePost)
			protected.DELETE("/posts/:id", postHandler.DeletePost)
			protected.POST("/posts/:id/like", likeHandler.LikePost)
			protected.DELETE("/posts/:id/like", likeHandler.UnlikePost)
		}
	}

	// Create HTTP server
	a.httpServer = &http.Server{
		Addr:    ":" + a.cfg.ServerPort,
		Handler: r,
	}

	// Start server in a goroutine
	go func() {
		a.log.Info("Microblog server starting on port %s", a.cfg.ServerPort)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	return nil
}

func (a *App) Wait() {
	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	a.log.Info("Shutting down microblog server...")
}

func (a *App) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(a.cfg.ShutdownTimeout)*time.Second)
	defer cancel()

	// Close database connection
	sqlDB, err := a.db.DB()
	if err == nil {
		if err := sqlDB.Close(); err != nil {
			a.log.Error("Error closing database: %v", err)
		}
	}

	// Shutdown server
	if err := a.httpServer.Shutdown(ctx); err != nil {
		a.log.Error("Server forced to shutdown: %v", err)
		return err
	}

	a.log.Info("Microblog server exited")
	return nil
}
