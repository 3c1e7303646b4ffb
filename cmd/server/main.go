package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"microblog/internal/config"
	"microblog/internal/database"
	"microblog/internal/i18n"
	"microblog/internal/logging"
	"microblog/internal/mailer"
	postgresrepo "microblog/internal/repository/postgres"
	"microblog/internal/service"
	"microblog/internal/transport/http/handlers"
	"microblog/internal/transport/http/middleware"
)

func main() {
	log := logging.New()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Database
	pool, err := database.Connect(ctx, cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer pool.Close()
	if err := database.Bootstrap(ctx, pool); err != nil {
		log.Fatal(err)
	}
	log.Info("connected to database")

	// Mail workers + admin error notifications
	mail := mailer.New(cfg, log)
	mail.Start(ctx)
	log.AddHook(logging.NewMailHook(mail, cfg.Admins))

	catalog := i18n.New(cfg.Languages)

	// Repositories
	userRepo := postgresrepo.NewUserRepo(pool)
	postRepo := postgresrepo.NewPostRepo(pool)
	followRepo := postgresrepo.NewFollowRepo(pool)

	// Services
	authService := service.NewAuthService(userRepo, cfg.SecretKey)
	userService := service.NewUserService(userRepo, followRepo)
	followService := service.NewFollowService(followRepo, userRepo)
	postService := service.NewPostService(postRepo, cfg.PostsPerPage)
	translateService := service.NewTranslateService(cfg.TranslatorKey, catalog)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService, mail, catalog, log)
	postHandler := handlers.NewPostHandler(postService, catalog, log)
	userHandler := handlers.NewUserHandler(userService, postService, followService, catalog, log)
	followHandler := handlers.NewFollowHandler(followService, catalog, log)
	translateHandler := handlers.NewTranslateHandler(translateService)

	// Middleware
	auth := middleware.Auth(cfg.SecretKey, userRepo)
	anon := middleware.AnonymousOnly(cfg.SecretKey)

	// Routes
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status": "ok"}`))
	})

	// Anonymous only
	mux.Handle("POST /login", anon(http.HandlerFunc(authHandler.Login)))
	mux.Handle("POST /register", anon(http.HandlerFunc(authHandler.Register)))
	mux.Handle("POST /reset_password_request", anon(http.HandlerFunc(authHandler.ResetPasswordRequest)))
	mux.Handle("POST /reset_password/{token}", anon(http.HandlerFunc(authHandler.ResetPassword)))

	// Protected - feed and posts
	mux.Handle("GET /{$}", auth(http.HandlerFunc(postHandler.Home)))
	mux.Handle("POST /{$}", auth(http.HandlerFunc(postHandler.Create)))
	mux.Handle("GET /index", auth(http.HandlerFunc(postHandler.Home)))
	mux.Handle("POST /index", auth(http.HandlerFunc(postHandler.Create)))
	mux.Handle("GET /explore", auth(http.HandlerFunc(postHandler.Explore)))

	// Protected - session and profile
	mux.Handle("GET /logout", auth(http.HandlerFunc(authHandler.Logout)))
	mux.Handle("GET /user/{username}", auth(http.HandlerFunc(userHandler.Profile)))
	mux.Handle("GET /edit_profile", auth(http.HandlerFunc(userHandler.EditProfileView)))
	mux.Handle("PUT /edit_profile", auth(http.HandlerFunc(userHandler.EditProfile)))

	// Protected - social graph
	mux.Handle("POST /follow/{username}", auth(http.HandlerFunc(followHandler.Follow)))
	mux.Handle("POST /unfollow/{username}", auth(http.HandlerFunc(followHandler.Unfollow)))

	// Protected - translation proxy
	mux.Handle("POST /translate", auth(http.HandlerFunc(translateHandler.Translate)))

	handler := middleware.RequestLogger(log)(
		middleware.Recover(log)(
			middleware.Locale(catalog)(mux),
		),
	)

	server := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: handler,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.WithField("addr", cfg.Server.Addr).Info("starting server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		return server.Shutdown(context.Background())
	})

	if err := g.Wait(); err != nil {
		log.Fatal(err)
	}
	if err := mail.Wait(); err != nil {
		log.Fatal(err)
	}
	log.Info("server stopped")
}
