package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	_ "github.com/lib/pq"
	httpSwagger "github.com/swaggo/http-swagger"

	"videohub/config"
	_ "videohub/docs"
	"videohub/internal/handler"
	"videohub/internal/repository"
	"videohub/internal/security"
	"videohub/internal/service"
)

// @title VideoHub
// @version 1.0
// @description REST API аутентификации и управления аккаунтом видеоплатформы

// @host localhost:8000

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.LoadConfig(configPath())
	if err != nil {
		log.Fatalf("Ошибка загрузки конфигурации: %v", err)
	}

	db, err := config.SetupDatabase(cfg.DatabaseConfig.DSN)
	if err != nil {
		log.Fatalf("Не удалось подключиться к БД: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Ошибка при закрытии БД: %v", err)
		}
	}()

	if err := db.RunMigrations(ctx); err != nil {
		log.Fatalf("Ошибка применения миграций: %v", err)
	}

	redisClient, err := config.SetupRedis(&cfg.RedisConfig)
	if err != nil {
		log.Fatalf("Ошибка подключения к Redis: %v", err)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Printf("Ошибка при закрытии Redis: %v", err)
		}
	}()

	s3Service, err := service.NewS3Service(ctx, &cfg.S3Config)
	if err != nil {
		log.Fatalf("Ошибка создания S3 сервиса: %v", err)
	}

	jwtService, err := security.NewJWTService(&cfg.JWT)
	if err != nil {
		log.Fatalf("Ошибка создания JWT сервиса: %v", err)
	}

	srv, router := config.SetupServer(cfg.ServerAddr)

	userRepo := repository.NewUserRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	cacheRepo := repository.NewCacheRepository(redisClient, config.MustDuration(cfg.RedisConfig.ProfileTTL))

	verifier := security.NewBcryptVerifier(cfg.Auth.BcryptCost)

	userService := service.NewUserService(db, userRepo, cacheRepo, s3Service, verifier, &cfg.Auth)
	authService := service.NewAuthenticationService(db, userRepo, sessionRepo, jwtService, verifier, &cfg.Auth)

	cookies := security.NewCookieManager(&cfg.Cookie)

	authHandler := handler.NewAuthenticationHandler(authService, cookies)
	userHandler := handler.NewUserHandler(userService)

	router.Get("/swagger/*", httpSwagger.WrapHandler)

	authMiddleware := security.JWTMiddleware(jwtService, userService)
	router.Route("/api/v1", func(r chi.Router) {
		setupAuthRoutes(r, authHandler, userHandler, authMiddleware)
		setupUserRoutes(r, userHandler, authMiddleware)
	})

	runServer(ctx, srv)
}

func configPath() string {
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		return path
	}
	return "config.yaml"
}

func setupAuthRoutes(r chi.Router, h *handler.AuthenticationHandler, uh *handler.UserHandler, authMiddleware func(http.Handler) http.Handler) {
	r.Route("/auth", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Post("/register", uh.RegisterUser)
			r.Post("/login", h.Login)
			r.Post("/renew-token", h.RenewToken)
		})
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware)
			r.Post("/logout", h.Logout)
		})
	})
}

func setupUserRoutes(r chi.Router, h *handler.UserHandler, authMiddleware func(http.Handler) http.Handler) {
	r.Route("/me", func(r chi.Router) {
		r.Use(authMiddleware)
		r.Get("/", h.GetCurrentUser)
		r.Patch("/", h.UpdateAccount)
		r.Post("/password", h.ChangePassword)
		r.Patch("/avatar", h.UpdateAvatar)
		r.Patch("/coverImage", h.UpdateCoverImage)
	})
}

func runServer(ctx context.Context, server *http.Server) {
	serverErrors := make(chan error, 1)
	go func() {
		log.Println("сервер запущен на " + server.Addr)
		serverErrors <- server.ListenAndServe()
	}()

	signalChannel := make(chan os.Signal, 1)
	signal.Notify(signalChannel, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("ошибка работы сервера: %v", err)
		}
	case sig := <-signalChannel:
		log.Printf("получен сигнал %v остановки работы сервера ", sig)
	}

	shutDownCtx, shutDownCancel := context.WithTimeout(ctx, 5*time.Second)
	defer shutDownCancel()

	if err := server.Shutdown(shutDownCtx); err != nil {
		log.Printf("ошибка при остановке сервера: %v", err)
	} else {
		log.Println("Сервер успешно остановлен")
	}
}
