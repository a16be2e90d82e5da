package middlewares

import (
	"fmt"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

type QuotaRule struct {
	Limit  int           // requests allowed per window
	Window time.Duration // window length, starting at the first request
	KeyFn  func(*gin.Context) string
	// Message is the 429 body; empty uses a generic one.
	Message string
}

// Quota counts requests per key in Redis and rejects with 429 once Limit is
// exceeded within Window. A nil client or a Redis error lets the request
// through.
func Quota(rdb *redis.Client, rule QuotaRule) gin.HandlerFunc {
	return func(c *gin.Context) {
		if rdb == nil {
			c.Next()
			return
		}
		key := rule.KeyFn(c)
		if key == "" {
			c.Next()
			return
		}
		ctx := c.Request.Context()

		var incr *redis.IntCmd
		var ttl *redis.DurationCmd
		_, err := rdb.Pipelined(ctx, func(p redis.Pipeliner) error {
			incr = p.Incr(ctx, key)
			ttl = p.TTL(ctx, key)
			return nil
		})
		if err != nil {
			c.Next()
			return
		}
		n := incr.Val()
		left := ttl.Val()
		// a key without expiry opens the window, including one whose
		// EXPIRE was lost after the first INCR
		if left < 0 {
			_ = rdb.Expire(ctx, key, rule.Window).Err()
			left = rule.Window
		}
		if int(n) > rule.Limit {
			msg := rule.Message
			if msg == "" {
				msg = "Usage quota exceeded. Please try again later."
			}
			c.Header("Retry-After", strconv.Itoa(int(math.Ceil(left.Seconds()))))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"message": msg,
			})
			return
		}
		c.Header("X-Quota-Used", fmt.Sprintf("%d/%d", n, rule.Limit))
		c.Next()
	}
}
