package main

import (
	"expvar"
	"fmt"
	"log"
	"os"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"sydneyplanner/internal/auth"
	"sydneyplanner/internal/chat"
	"sydneyplanner/internal/db"
	"sydneyplanner/internal/places"
	"sydneyplanner/internal/ratelimiter"
	"sydneyplanner/internal/store"
	"sydneyplanner/internal/supabase"
)

// LoadRateLimiterConfig retrieves rate limiter settings from environment variables
func LoadRateLimiterConfig() ratelimiter.Config {
	defaultRequests := 200
	defaultEnabled := false

	requestsPerTimeFrame := defaultRequests
	if val, exists := os.LookupEnv("RATELIMITER_REQUESTS_COUNT"); exists {
		if parsedVal, err := strconv.Atoi(val); err == nil {
			requestsPerTimeFrame = parsedVal
		} else {
			fmt.Println("Invalid RATELIMITER_REQUESTS_COUNT, defaulting to", defaultRequests)
		}
	}

	enabled := defaultEnabled
	if val, exists := os.LookupEnv("RATE_LIMITER_ENABLED"); exists {
		if parsedVal, err := strconv.ParseBool(val); err == nil {
			enabled = parsedVal
		} else {
			fmt.Println("Invalid RATE_LIMITER_ENABLED, defaulting to", defaultEnabled)
		}
	}

	return ratelimiter.Config{
		RequestsPerTimeFrame: requestsPerTimeFrame,
		TimeFrame:            5 * time.Second,
		Enabled:              enabled,
	}
}

// NewLogger creates a new zap logger with color.
func NewLogger() (*zap.SugaredLogger, error) {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder

	consoleEncoder := zapcore.NewConsoleEncoder(encoderCfg)
	level := zapcore.InfoLevel

	core := zapcore.NewCore(consoleEncoder, zapcore.NewMultiWriteSyncer(zapcore.AddSync(os.Stdout)), level)

	logger := zap.New(core)

	return logger.Sugar(), nil
}

func envOr(key, fallback string) string {
	if val, exists := os.LookupEnv(key); exists && val != "" {
		return val
	}
	return fallback
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	maxOpenConns, err := strconv.Atoi(envOr("DB_MAX_OPEN_CONNS", "30"))
	if err != nil {
		log.Fatalf("Invalid value for DB_MAX_OPEN_CONNS: %v", err)
	}
	maxIdleConns, err := strconv.Atoi(envOr("DB_MAX_IDLE_CONNS", "30"))
	if err != nil {
		log.Fatalf("Invalid value for DB_MAX_IDLE_CONNS: %v", err)
	}

	cacheTTL, err := time.ParseDuration(envOr("PLACES_CACHE_TTL", "5m"))
	if err != nil {
		log.Fatalf("Invalid value for PLACES_CACHE_TTL: %v", err)
	}

	corsOrigins := []string{"https://*", "http://*"}
	if raw := os.Getenv("CORS_ALLOWED_ORIGINS"); raw != "" {
		corsOrigins = strings.Split(raw, ",")
	}

	cfg := config{
		addr:        envOr("ADDR", ":8080"),
		env:         envOr("ENV", "development"),
		corsOrigins: corsOrigins,
		db: dbConfig{
			addr:         os.Getenv("DB_ADDR"),
			maxOpenConns: maxOpenConns,
			maxIdleConns: maxIdleConns,
			maxIdleTime:  envOr("DB_MAX_IDLE_TIME", "15m"),
		},
		supabase: supabaseConfig{
			url:        os.Getenv("SUPABASE_URL"),
			serviceKey: os.Getenv("SUPABASE_SERVICE_KEY"),
			jwtSecret:  os.Getenv("SUPABASE_JWT_SECRET"),
			bucket:     envOr("SUPABASE_BUCKET", "venue-photos"),
		},
		foursquare: foursquareConfig{
			apiKey: os.Getenv("FOURSQUARE_API_KEY"),
		},
		ai: aiConfig{
			apiKey:  os.Getenv("AI_API_KEY"),
			baseURL: os.Getenv("AI_BASE_URL"),
			model:   os.Getenv("AI_MODEL"),
		},
		redis: redisConfig{
			addr:     os.Getenv("REDIS_ADDR"),
			password: os.Getenv("REDIS_PASSWORD"),
			cacheTTL: cacheTTL,
		},
		godEmail:    os.Getenv("GOD_MODE_EMAIL"),
		rateLimiter: LoadRateLimiterConfig(),
	}

	logger, err := NewLogger()
	if err != nil {
		fmt.Println("Error creating logger:", err)
		return
	}
	defer logger.Sync()

	// Database
	database, err := db.New(
		cfg.db.addr,
		cfg.db.maxOpenConns,
		cfg.db.maxIdleConns,
		cfg.db.maxIdleTime,
	)
	if err != nil {
		logger.Fatal(err)
	}
	defer database.Close()
	logger.Info("database connection pool established")

	storage := store.NewStorage(database)

	// Provider cache, optional
	placesOpts := []places.Option{}
	if cfg.redis.addr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.redis.addr,
			Password: cfg.redis.password,
		})
		placesOpts = append(placesOpts, places.WithCache(places.NewCache(rdb, cfg.redis.cacheTTL)))
		logger.Info("provider cache enabled")
	}

	placesClient := places.NewClient(cfg.foursquare.apiKey, placesOpts...)

	chatService := chat.NewService(cfg.ai.apiKey, cfg.ai.baseURL, cfg.ai.model, logger)

	objectStore := supabase.NewStorage(cfg.supabase.url, cfg.supabase.serviceKey, cfg.supabase.bucket)

	// Cloudinary, optional; avatar uploads are disabled without it
	var cld *cloudinary.Cloudinary
	if cloudinaryURL := os.Getenv("CLOUDINARY_URL"); cloudinaryURL != "" {
		cld, err = cloudinary.NewFromURL(cloudinaryURL)
		if err != nil {
			logger.Fatal(err)
		}
	}

	rateLimiter := ratelimiter.NewFixedWindowLimiter(
		cfg.rateLimiter.RequestsPerTimeFrame,
		cfg.rateLimiter.TimeFrame,
	)

	jwtAuthenticator := auth.NewJWTAuthenticator(cfg.supabase.jwtSecret, "authenticated")

	app := &application{
		config:        cfg,
		logger:        logger,
		store:         storage,
		authenticator: jwtAuthenticator,
		chat:          chatService,
		places:        placesClient,
		storage:       objectStore,
		cld:           cld,
		rateLimiter:   rateLimiter,
	}

	// Metrics collected at /debug/vars
	expvar.NewString("version").Set(version)
	expvar.Publish("database", expvar.Func(func() any {
		return database.Stats()
	}))
	expvar.Publish("goroutines", expvar.Func(func() any {
		return runtime.NumGoroutine()
	}))

	mux := app.mount()

	logger.Fatal(app.run(mux))
}
