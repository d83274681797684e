package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"

	"github.com/guardapp/contacts-api/internal/config"
	"github.com/guardapp/contacts-api/internal/crypto"
	"github.com/guardapp/contacts-api/internal/db"
	"github.com/guardapp/contacts-api/internal/handlers"
	"github.com/guardapp/contacts-api/internal/middleware"
	"github.com/guardapp/contacts-api/internal/store"
	"github.com/guardapp/contacts-api/internal/token"
)

const tokenTTL = time.Hour

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	if err := godotenv.Load(); err != nil {
		log.Info("no .env file found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Error("config", "err", err)
		os.Exit(1)
	}

	dbConn, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Error("db connect", "err", err)
		os.Exit(1)
	}
	defer dbConn.Close()

	if err := db.Migrate(context.Background(), dbConn); err != nil {
		log.Error("db migrate", "err", err)
		os.Exit(1)
	}

	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		log.Error("upload dir", "err", err)
		os.Exit(1)
	}

	tokens := token.New([]byte(cfg.JWTSecret), tokenTTL)
	hasher := crypto.NewHasher()
	users := store.NewUsers(dbConn)
	contacts := store.NewContacts(dbConn)

	h := handlers.New(users, contacts, tokens, hasher, log)

	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.CORSOrigin},
		AllowedMethods:   []string{"GET", "HEAD", "PUT", "PATCH", "POST", "DELETE"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	// uploaded images are served straight back from disk
	r.Handle("/uploads/*", http.StripPrefix("/uploads/", http.FileServer(http.Dir(cfg.UploadDir))))

	r.Route("/app", func(r chi.Router) {
		// Public
		r.Get("/contact", h.Contacts.Find)
		r.Post("/user", h.Users.Create)
		r.Post("/login", h.Users.Login)

		// Protected
		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(tokens))

			r.Get("/contacts", h.Contacts.List)
			r.Delete("/contacts/{id}", h.Contacts.Delete)

			r.Group(func(r chi.Router) {
				r.Use(middleware.Upload(cfg.UploadDir))

				r.Post("/contacts", h.Contacts.Create)
				r.Patch("/contacts/{id}", h.Contacts.Update)
			})
		})
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		log.Info("listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("listen", "err", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit
	log.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("server forced to shutdown", "err", err)
		os.Exit(1)
	}

	log.Info("server exited")
}
