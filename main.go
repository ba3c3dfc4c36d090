package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"garment-studio/handlers/api/designs"
	"garment-studio/handlers/api/orders"
	"garment-studio/handlers/api/products"
	"garment-studio/handlers/auth"
	authMiddleware "garment-studio/middleware"
	"garment-studio/stores"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func setupRouter(store stores.Store) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.Logger)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "Content-Length", "X-CSRF-Token", "Origin", "Host", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))

	r.Route("/api", func(r chi.Router) {
		// The base product is public so the editor can price a blank
		// garment before the shopper logs in.
		r.Get("/custom-designs/base-product", products.HandleBaseProduct(store))

		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.AuthJWT)
			r.Route("/custom-designs", func(r chi.Router) {
				r.Get("/", designs.HandleList(store))
				r.Post("/", designs.HandleCreate(store, store))
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", designs.HandleGet(store))
					r.Put("/", designs.HandleUpdate(store))
					r.Delete("/", designs.HandleDelete(store))
				})
			})
			r.Route("/orders", func(r chi.Router) {
				r.Post("/", orders.HandleCreate(store))
				r.Get("/", orders.HandleList(store))
			})
		})
	})

	r.Route("/auth", func(r chi.Router) {
		r.Get("/login", auth.HandleLogin)
		r.Get("/callback", auth.HandleCallback)
	})

	return r
}

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found")
	}

	listenAddress := flag.String("listen", ":3002", "The address to listen on.")
	logLevel := flag.String("loglevel", "info", "The log level (debug, info, warn, error).")
	flag.Parse()

	level, err := logrus.ParseLevel(*logLevel)
	if err != nil {
		logrus.Fatalf("Invalid log level: %v", err)
	}
	logrus.SetLevel(level)
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	auth.InitAuth()
	store := stores.GetStore()

	r := setupRouter(store)

	srv := &http.Server{
		Addr:    *listenAddress,
		Handler: r,
	}

	logrus.WithField("addr", *listenAddress).Info("starting server")
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithField("event", "start server").Fatal(err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	<-stop

	logrus.Info("Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logrus.WithError(err).Error("graceful shutdown failed")
	}
}
