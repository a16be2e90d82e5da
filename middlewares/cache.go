package middlewares

import (
	"bytes"
	"context"
	"crypto/sha1"
	"encoding/gob"
	"encoding/hex"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"branchsite/utils"
)

const cacheHeader = "X-Cache"

type cachedBody struct {
	Status int
	Header map[string][]string
	Body   []byte
}

// sha1 keeps keys short no matter how long the query string is
func sha1Hex(s string) string {
	sum := sha1.Sum([]byte(s))
	return hex.EncodeToString(sum[:])
}

// CacheKeyFrom returns the Redis key for a cacheable request and its
// namespace label, or "" when the response must not be cached. Only the
// read-only catalog and testimonial routes qualify; carousel state, theme
// and health are per-moment or per-client.
func CacheKeyFrom(c *gin.Context) (string, string) {
	method := c.Request.Method
	path := c.FullPath() // route template, e.g. /events/:id
	rawq := c.Request.URL.RawQuery

	if method != http.MethodGet || path == "" {
		return "", ""
	}

	switch path {
	case "/events/:id":
		return utils.CacheEventsItem + sha1Hex("GET|/events/"+c.Param("id")), "item"
	case "/events", "/events/past", "/events/facets", "/events/calendar.ics":
		return utils.CacheEventsList + sha1Hex("GET|"+path+"|"+rawq), "list"
	case "/testimonials":
		return utils.CacheTestimonials + sha1Hex("GET|"+path), "testimonials"
	}
	return "", ""
}

// ResponseCache serves cached 2xx bodies from Redis and stores fresh ones
// for ttl. A nil client disables caching; Redis errors fall through to
// the handler.
func ResponseCache(rdb *redis.Client, ttl time.Duration, log logrus.FieldLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		key, _ := CacheKeyFrom(c)
		if rdb == nil || key == "" {
			c.Next()
			return
		}

		if b, err := rdb.Get(context.Background(), key).Bytes(); err == nil && len(b) > 0 {
			var hit cachedBody
			if err := gob.NewDecoder(bytes.NewReader(b)).Decode(&hit); err == nil {
				for k, vals := range hit.Header {
					for _, v := range vals {
						c.Writer.Header().Add(k, v)
					}
				}
				c.Writer.Header().Set(cacheHeader, "HIT")
				c.Status(hit.Status)
				_, _ = c.Writer.Write(hit.Body)
				c.Abort()
				return
			}
		}

		// capture the handler's output while it goes to the client
		buf := &bytes.Buffer{}
		bw := &bufferedWriter{ResponseWriter: c.Writer, buf: buf}
		c.Writer = bw
		c.Writer.Header().Set(cacheHeader, "MISS")

		c.Next()

		if bw.Status() >= 200 && bw.Status() < 300 {
			header := c.Writer.Header().Clone()
			header.Del(cacheHeader)
			item := cachedBody{
				Status: bw.Status(),
				Header: header,
				Body:   buf.Bytes(),
			}

			var o bytes.Buffer
			if err := gob.NewEncoder(&o).Encode(item); err == nil {
				if err := rdb.Set(context.Background(), key, o.Bytes(), ttl).Err(); err != nil && log != nil {
					log.WithError(err).WithField("key", key).Warn("response cache write failed")
				}
			}
		}
	}
}

type bufferedWriter struct {
	gin.ResponseWriter
	buf *bytes.Buffer
}

func (w *bufferedWriter) Write(b []byte) (int, error) {
	w.buf.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *bufferedWriter) WriteString(s string) (int, error) {
	w.buf.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}
