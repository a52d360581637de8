package router

import (
	"context"
	"net/http"

	"code.cloudfoundry.org/lager"
	"github.com/redis/go-redis/v9"

	"github.com/5w1tchy/pwmeter/internal/api/handlers"
	mw "github.com/5w1tchy/pwmeter/internal/api/middlewares"
	"github.com/5w1tchy/pwmeter/internal/config"
)

// Router builds the full handler, middlewares included. rdb may be nil, in
// which case rate limiting and the Redis health check are off.
func Router(cfg *config.Config, rdb *redis.Client, logger lager.Logger) http.Handler {
	mux := http.NewServeMux()

	page := handlers.Page(logger)
	mux.HandleFunc("GET /{$}", page)
	mux.HandleFunc("POST /{$}", page)

	var api http.Handler = http.HandlerFunc(handlers.Strength)
	var pinger handlers.Pinger
	if rdb != nil {
		tb := mw.NewRedisTokenBucket(rdb, cfg.RateLimitRPS, cfg.RateBurst, mw.PerIPKey("pwmeter:tb"), logger)
		api = tb.Middleware(api)
		pinger = handlers.PingerFunc(func(ctx context.Context) error {
			return rdb.Ping(ctx).Err()
		})
	}
	mux.Handle("POST /v1/strength", api)
	mux.Handle("OPTIONS /v1/strength", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	mux.HandleFunc("GET /healthz", handlers.Health(pinger))

	return mw.Chain(mux,
		mw.Recovery(logger),
		mw.RequestID,
		mw.AccessLog(logger),
		mw.ResponseTime,
		mw.SecurityHeaders(cfg.StrictSecurity),
		mw.CORS(cfg.AllowedOrigins, logger),
		mw.BodySizeLimit(cfg.MaxBodyBytes),
	)
}
