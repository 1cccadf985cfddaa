package ratelimit

import (
	"github.com/gin-gonic/gin"
	limiter "github.com/ulule/limiter/v3"
	mgin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	memorystore "github.com/ulule/limiter/v3/drivers/store/memory"

	"codeberg.org/skillsprint/webfront/internal/logger"
)

// returns a per-IP rate limiting middleware from a formatted rate like
// "10-M" (10 per minute). Used on the credential and lead-capture routes.
func Middleware(formatted string) gin.HandlerFunc {
	rate, err := limiter.NewRateFromFormatted(formatted)
	if err != nil {
		logger.Fatal("invalid rate limit format", "rate", formatted, "error", err)
	}

	store := memorystore.NewStore()

	return mgin.NewMiddleware(limiter.New(store, rate))
}
