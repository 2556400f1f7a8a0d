package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"hits/batcher"
	"hits/cache"
	"hits/config"
	"hits/counter"
	"hits/handlers"
	middleware "hits/middlewares"
	"hits/pubsub"
	"hits/queue"

	sentryhttp "github.com/getsentry/sentry-go/http"

	"github.com/getsentry/sentry-go"
	"github.com/gorilla/mux"
)

func main() {
	cfg := config.Load()

	if cfg.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.SentryDSN,
			TracesSampleRate: 1.0,
		}); err != nil {
			fmt.Printf("Sentry initialization failed: %v\n", err)
		}
	}
	sentryHandler := sentryhttp.New(sentryhttp.Options{})
	defer sentry.Flush(2 * time.Second)

	// Counter store: hash-partitioned Postgres when DATABASE_URL is set,
	// otherwise SQLite with one table per partition.
	var store counter.Store
	var sink batcher.Sink
	if cfg.PostgresDSN != "" {
		pg, err := counter.NewPostgresStore(cfg.PostgresDSN)
		if err != nil {
			log.Fatalf("Failed to connect to Postgres: %v", err)
		}
		store, sink = pg, pg
	} else {
		if err := config.InitDB(cfg.SQLitePath); err != nil {
			log.Fatalf("Failed to initialize the database: %v", err)
		}
		lite := counter.NewSQLiteStore(config.DB)
		store, sink = lite, lite
	}
	defer store.Close()

	handlers.CounterStore = store
	handlers.Agg = counter.NewAggregator(store)

	// Redis backs the stats cache, the rate limiters and cross-instance hit
	// fan-out. Without it the service still counts; it just loses those
	// layers.
	redisStore, err := cache.NewRedisStore(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, cfg.StatsCacheTTL)
	if err != nil {
		log.Printf("Redis unavailable, falling back to in-process cache: %v", err)
		bigStore, err := cache.NewBigCacheStore(cfg.StatsCacheTTL)
		if err != nil {
			log.Fatalf("Failed to initialize cache: %v", err)
		}
		handlers.StatsCache = bigStore
	} else {
		handlers.StatsCache = redisStore
		middleware.RateLimitRedisStore = redisStore
		handlers.PS = pubsub.NewPubSub(redisStore)
		handlers.PS.Subscribe(pubsub.HitEventName, func(data map[string]interface{}) {
			if key, ok := data["key"].(string); ok {
				handlers.WSHub.Broadcast(key)
			}
		})
	}

	// Async ingest path for the tracking pixel.
	handlers.HitBatcher = batcher.NewTimeBatcher(sink, 2*time.Second)
	handlers.HitBatcher.Start()
	defer handlers.HitBatcher.Stop()

	queue.StartWorker()

	// Initialize the router
	r := mux.NewRouter()

	r.Use(middleware.LoggingMiddleware)
	r.Use(sentryHandler.Handle)
	r.Use(middleware.SentryTagMiddleware)
	r.Use(middleware.ResponseTimeMiddleware)

	r.Handle("/hits/{key}", middleware.APIRateLimitMiddleware(120)(http.HandlerFunc(handlers.HitsHandler))).Methods("GET")
	r.Handle("/badge/{key}", middleware.APIRateLimitMiddleware(120)(http.HandlerFunc(handlers.BadgeHandler))).Methods("GET")
	r.Handle("/svg/{key}", middleware.SlidingWindowMiddleware(120, time.Minute)(http.HandlerFunc(handlers.SVGBadgeHandler))).Methods("GET")
	r.HandleFunc("/stats/{key}", handlers.StatsHandler).Methods("GET")
	r.HandleFunc("/pixel/{key}", handlers.PixelHandler).Methods("GET")
	r.HandleFunc("/ws", handlers.WSHandler).Methods("GET")
	r.HandleFunc("/health", handlers.HealthHandler).Methods("GET")
	r.HandleFunc("/", handlers.InfoHandler).Methods("GET")

	// Start the server
	fmt.Printf("Server is running on http://localhost:%s\n", cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, r))
}
