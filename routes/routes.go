// routes/routes.go
package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"branchsite/carousel"
	"branchsite/catalog"
	"branchsite/middlewares"
	"branchsite/models"
	"branchsite/newsletter"
	"branchsite/theme"
)

// Options carries everything the handlers need. Redis, ThemeStore and
// Metrics may be nil; the matching features then switch off.
type Options struct {
	Catalog      *catalog.Catalog
	Testimonials []models.Testimonial
	Featured     *carousel.Carousel[models.Testimonial]
	Newsletter   *newsletter.Service
	ThemeStore   theme.Store
	Redis        *redis.Client
	CacheTTL     time.Duration
	Metrics      *middlewares.Metrics
	Logger       logrus.FieldLogger
	CalendarName string
	// Members and FoundedYear feed /stats.
	Members     int
	FoundedYear int
}

// handler dependencies
type deps struct {
	catalog      *catalog.Catalog
	testimonials []models.Testimonial
	featured     *carousel.Carousel[models.Testimonial]
	newsletter   *newsletter.Service
	themes       theme.Store
	metrics      *middlewares.Metrics
	log          logrus.FieldLogger
	calName      string
	members      int
	founded      int
}

// RegisterRoutes mounts the API on server. The returned func stops the
// rate limiters' background sweeps.
func RegisterRoutes(server *gin.Engine, o Options) (stop func()) {
	log := o.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}
	calName := o.CalendarName
	if calName == "" {
		calName = "IEEE PACE Student Branch Events"
	}
	d := &deps{
		catalog:      o.Catalog,
		testimonials: o.Testimonials,
		featured:     o.Featured,
		newsletter:   o.Newsletter,
		themes:       o.ThemeStore,
		metrics:      o.Metrics,
		log:          log,
		calName:      calName,
		members:      o.Members,
		founded:      o.FoundedYear,
	}

	// ===== global: metrics, per-IP limit, response cache =====
	globalLimiter := middlewares.NewRateLimiter(middlewares.LimiterConfig{
		RPS:     20,
		Burst:   40,
		IdleTTL: 3 * time.Minute,
	})
	server.Use(o.Metrics.Middleware())
	server.Use(globalLimiter.Middleware(func(c *gin.Context) string {
		return "ip:" + c.ClientIP()
	}))
	server.Use(middlewares.ResponseCache(o.Redis, o.CacheTTL, log))

	// ===== newsletter: strict per-IP limit plus an hourly quota =====
	signupLimiter := middlewares.NewRateLimiter(middlewares.LimiterConfig{
		RPS:     0.5,
		Burst:   3,
		IdleTTL: 10 * time.Minute,
	})
	signupQuota := middlewares.Quota(o.Redis, middlewares.QuotaRule{
		Limit:  10,
		Window: time.Hour,
		KeyFn: func(c *gin.Context) string {
			return "quota:newsletter:" + c.ClientIP()
		},
		Message: "Too many signups from this address. Please try again later.",
	})

	server.GET("/events", d.getEvents)
	server.GET("/events/past", d.getPastEvents)
	server.GET("/events/facets", d.getFacets)
	server.GET("/events/calendar.ics", d.getCalendar)
	server.GET("/events/:id", d.getEvent)
	server.GET("/stats", d.getStats)

	server.GET("/testimonials", d.getTestimonials)
	carouselGroup := server.Group("/testimonials/carousel")
	carouselGroup.GET("", d.getCarousel)
	carouselGroup.POST("/next", d.carouselNext)
	carouselGroup.POST("/previous", d.carouselPrevious)
	carouselGroup.POST("/toggle", d.carouselToggle)
	carouselGroup.POST("/goto/:index", d.carouselGoTo)
	carouselGroup.POST("/touch", d.carouselTouch)

	server.POST("/newsletter",
		signupLimiter.Middleware(func(c *gin.Context) string { return "newsletter:" + c.ClientIP() }),
		signupQuota,
		d.subscribe,
	)
	server.DELETE("/newsletter", d.unsubscribe)

	server.GET("/theme", d.getTheme)
	server.PUT("/theme", d.putTheme)
	server.POST("/theme/toggle", d.toggleTheme)

	server.GET("/health", d.health)
	if o.Metrics != nil {
		server.GET("/metrics", o.Metrics.Handler())
	}

	return func() {
		globalLimiter.Stop()
		signupLimiter.Stop()
	}
}

/* -------------------- Health -------------------- */

// GET /health
func (d *deps) health(c *gin.Context) {
	body := gin.H{
		"status":       "ok",
		"events":       d.catalog.Len(),
		"testimonials": len(d.testimonials),
		"statusMode":   d.catalog.Mode().String(),
		"today":        d.catalog.Today(),
	}
	// a down subscriber store does not make the site unhealthy
	if n, err := d.newsletter.Count(c.Request.Context()); err != nil {
		d.log.WithError(err).Warn("subscriber count failed")
	} else {
		body["subscribers"] = n
	}
	c.JSON(http.StatusOK, body)
}
