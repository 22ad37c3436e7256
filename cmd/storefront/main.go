package main

import (
	"database/sql"
	"os"
	"strconv"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/Anjelho/lindilove/internal/catalog"
	"github.com/Anjelho/lindilove/internal/relay"
	"github.com/Anjelho/lindilove/internal/storefront"
	"github.com/Anjelho/lindilove/pkg/kit"
)

func main() {
	_ = godotenv.Load()

	service := "storefront"
	log := kit.NewLogger(service)
	defer func() { _ = log.Sync() }()

	port := getenv("PORT", "8080")
	sheetURL := getenv("SHEET_CSV_URL", "")
	mailTo := getenv("MAIL_TO", "lindilove.info@gmail.com")
	smtpAddr := getenv("SMTP_ADDR", "localhost:25")

	registry := prometheus.NewRegistry()

	cache, closeDB := buildCache(log)
	defer closeDB()

	loader := catalog.NewLoader(sheetURL, cache, log)
	loader.TTL = getenvDuration("CACHE_TTL", catalog.DefaultTTL, log)
	loader.Metrics = catalog.NewLoadMetrics(registry)

	s := &storefront.Server{
		Loader: loader,
		Relay: &relay.Server{
			To:     mailTo,
			Sender: &relay.SMTPSender{Addr: smtpAddr},
			Log:    log,
		},
		Limiter: kit.NewIPRateLimiter(
			getenvInt("SEND_RATE_LIMIT", 5, log),
			getenvInt("SEND_RATE_WINDOW_SECONDS", 60, log),
		),
		Log: log,
	}

	h := storefront.NewHandler(s, storefront.HTTPDeps{
		Log:            log,
		Service:        service,
		Registry:       registry,
		MetricsEnabled: getenv("METRICS_ENABLED", "") == "true",
		MetricsToken:   getenv("METRICS_TOKEN", ""),
	})

	if err := kit.RunHTTPServer(":"+port, h, log); err != nil {
		log.Fatal("http server stopped", zap.Error(err))
	}
}

// buildCache prefers the Postgres-backed session cache when DATABASE_URL is
// set and falls back to process memory otherwise.
func buildCache(log *zap.Logger) (catalog.Cache, func()) {
	dbURL := getenv("DATABASE_URL", "")
	if dbURL == "" {
		return catalog.NewMemCache(), func() {}
	}

	db, err := sql.Open("pgx", dbURL)
	if err != nil {
		log.Warn("postgres cache unavailable, using memory", zap.Error(err))
		return catalog.NewMemCache(), func() {}
	}

	return catalog.NewPostgresCache(db), func() { _ = db.Close() }
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getenvInt(k string, def int, log *zap.Logger) int {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Warn("invalid integer env, using default", zap.String("key", k), zap.String("value", v))
		return def
	}
	return n
}

func getenvDuration(k string, def time.Duration, log *zap.Logger) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Warn("invalid duration env, using default", zap.String("key", k), zap.String("value", v))
		return def
	}
	return d
}
