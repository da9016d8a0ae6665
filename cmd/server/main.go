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
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/remetra/backend/internal/auth"
	"github.com/remetra/backend/internal/config"
	"github.com/remetra/backend/internal/middleware"
	"github.com/remetra/backend/internal/shop"
	"github.com/remetra/backend/internal/store"
	"github.com/remetra/backend/internal/tracker"
)

func main() {
	cfg := config.Load()
	ctx := context.Background()

	// ── PostgreSQL ────────────────────────────────────────────
	pool, err := store.NewPool(ctx, cfg.DatabaseDSN)
	if err != nil {
		log.Fatalf("postgres connect: %v", err)
	}
	defer pool.Close()
	if err := store.Migrate(ctx, cfg.DatabaseDSN); err != nil {
		log.Fatalf("postgres migrate: %v", err)
	}

	// ── Redis (optional profile cache) ───────────────────────
	var cache *auth.AccountCache
	if cfg.RedisAddr != "" {
		rdb, err := store.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPassword)
		if err != nil {
			log.Fatalf("redis connect: %v", err)
		}
		defer rdb.Close()
		cache = auth.NewAccountCache(rdb)
	}

	// ── Auth ─────────────────────────────────────────────────
	codec := auth.NewTokenCodec(cfg.JWTSecret)
	authSvc := auth.NewService(store.NewUserStore(pool), codec, cache, cfg.AccessTTL)
	authHandler := auth.NewHandler(authSvc)

	// ── Tracker ──────────────────────────────────────────────
	trackerSvc := tracker.NewService(
		store.NewFoodStore(pool),
		store.NewSymptomStore(pool),
		store.NewSymptomLogStore(pool),
		store.NewFoodLogStore(pool),
	)
	trackerHandler := tracker.NewHandler(trackerSvc)

	// ── Shop example ─────────────────────────────────────────
	shopRepo := shop.NewMemoryRepository()
	if cfg.ShopSeed {
		if err := shopRepo.Seed(ctx); err != nil {
			log.Fatalf("shop seed: %v", err)
		}
	}
	shopHandler := shop.NewHandler(shop.NewService(shopRepo))

	// ── Router ───────────────────────────────────────────────
	r := chi.NewRouter()
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.RealIP)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Health check
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"message":"Remetra API","status":"running"}`))
	})
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"ok"}`))
	})

	// Auth routes (public)
	r.Route("/api/auth", func(r chi.Router) {
		r.Post("/register", authHandler.Register)
		r.Post("/login", authHandler.Login)
		r.Get("/me", authHandler.Me)
	})

	// Tracker routes (protected)
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth(authSvc))

		r.Route("/api/foods", func(r chi.Router) {
			r.Post("/", trackerHandler.CreateFood)
			r.Get("/", trackerHandler.ListFoods)
			r.Get("/{id}", trackerHandler.GetFood)
			r.Put("/{id}", trackerHandler.UpdateFood)
			r.Delete("/{id}", trackerHandler.DeleteFood)
		})

		r.Route("/api/symptoms", func(r chi.Router) {
			r.Post("/", trackerHandler.CreateSymptom)
			r.Get("/", trackerHandler.ListSymptoms)
			r.Get("/{id}", trackerHandler.GetSymptom)
			r.Put("/{id}", trackerHandler.UpdateSymptom)
			r.Delete("/{id}", trackerHandler.DeleteSymptom)
		})

		r.Route("/api/symptom-logs", func(r chi.Router) {
			r.Post("/", trackerHandler.CreateSymptomLog)
			r.Get("/", trackerHandler.ListSymptomLogs)
			r.Get("/{id}", trackerHandler.GetSymptomLog)
			r.Put("/{id}", trackerHandler.UpdateSymptomLog)
			r.Delete("/{id}", trackerHandler.DeleteSymptomLog)
		})

		r.Route("/api/food-logs", func(r chi.Router) {
			r.Post("/", trackerHandler.CreateFoodLog)
			r.Get("/", trackerHandler.ListFoodLogs)
			r.Get("/{id}", trackerHandler.GetFoodLog)
			r.Put("/{id}", trackerHandler.UpdateFoodLog)
			r.Delete("/{id}", trackerHandler.DeleteFoodLog)
		})
	})

	// Chocolate shop demo routes (public)
	r.Route("/api/chocolates", func(r chi.Router) {
		r.Post("/", shopHandler.CreateChocolate)
		r.Get("/", shopHandler.ListChocolates)
		r.Get("/{id}", shopHandler.GetChocolate)
		r.Post("/orders", shopHandler.CreateOrder)
		r.Get("/inventory/low-stock", shopHandler.LowStock)
	})

	// ── Server ───────────────────────────────────────────────
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		log.Printf("Backend listening on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down...")
	shutCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	srv.Shutdown(shutCtx)
}
