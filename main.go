package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/sync/errgroup"

	"branchsite/carousel"
	"branchsite/catalog"
	"branchsite/config"
	"branchsite/db"
	"branchsite/jobs"
	"branchsite/logger"
	"branchsite/middlewares"
	"branchsite/models"
	"branchsite/newsletter"
	"branchsite/routes"
	"branchsite/theme"
	"branchsite/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("could not load config")
	}
	log := logger.New(cfg.Log.Level)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}

func run(ctx context.Context, cfg *config.Config, log *logrus.Logger) error {
	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	// Catalog: Mongo, else the YAML seed file, else the built-in seed
	events, testimonials, closeSource, err := loadContent(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeSource()

	events, warnings, err := models.Normalize(events)
	if err != nil {
		return err
	}
	for _, w := range warnings {
		log.Warn(w)
	}
	cat := catalog.New(events, catalog.WithLocation(loc), catalog.WithStatusMode(cfg.StatusMode()))
	log.WithFields(logrus.Fields{
		"events":       cat.Len(),
		"testimonials": len(testimonials),
		"statusMode":   cat.Mode().String(),
	}).Info("catalog loaded")

	// Subscribers: Postgres, else in memory
	subs := models.NewMemorySubscriberRepository()
	if cfg.Postgres.DSN != "" {
		sqldb, err := db.Open(ctx, cfg.Postgres.DSN)
		if err != nil {
			return err
		}
		defer sqldb.Close()
		subs = models.NewSQLSubscriberRepository(sqldb)
	} else {
		log.Warn("postgres.dsn not set, newsletter subscribers are kept in memory")
	}

	// Redis: response cache, quota, theme store
	var rdb *redis.Client
	var themes theme.Store
	if cfg.Redis.Addr != "" {
		rdb = redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr})
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.WithError(err).Warn("redis unreachable, cache and theme store disabled")
			_ = rdb.Close()
			rdb = nil
		} else {
			defer rdb.Close()
			themes = theme.NewRedisStore(rdb, 365*24*time.Hour)
		}
	}

	nlOpts := []newsletter.Option{newsletter.WithLogger(logger.Component(log, "newsletter"))}
	if cfg.Newsletter.Endpoint != "" {
		nlOpts = append(nlOpts,
			newsletter.WithForwarder(newsletter.NewHTTPForwarder(cfg.Newsletter.Endpoint, cfg.Newsletter.Timeout)),
			newsletter.WithForwardTimeout(cfg.Newsletter.Timeout))
	}
	if cfg.Newsletter.Secret != "" {
		nlOpts = append(nlOpts, newsletter.WithSecret(cfg.Newsletter.Secret, 0))
	}
	signups := newsletter.NewService(subs, nlOpts...)

	featured := carousel.New(testimonials,
		carousel.WithConfig(cfg.CarouselConfig()),
		carousel.WithLogger(logger.Component(log, "carousel")))
	defer featured.Close()

	metrics := middlewares.NewMetrics()

	gin.SetMode(gin.ReleaseMode)
	server := gin.New()
	server.Use(gin.LoggerWithWriter(log.WriterLevel(logrus.DebugLevel)), gin.Recovery())

	stopLimiters := routes.RegisterRoutes(server, routes.Options{
		Catalog:      cat,
		Testimonials: testimonials,
		Featured:     featured,
		Newsletter:   signups,
		ThemeStore:   themes,
		Redis:        rdb,
		CacheTTL:     cfg.Cache.TTL,
		Metrics:      metrics,
		Logger:       log,
		Members:      cfg.Site.Members,
		FoundedYear:  cfg.Site.FoundedYear,
	})
	defer stopLimiters()

	// statuses flip at midnight; drop cached lists then
	sched := jobs.NewScheduler(loc, logger.Component(log, "jobs"))
	if rdb != nil {
		if err := sched.AddCachePurge(jobs.Midnight, utils.NewCacheInvalidator(rdb), metrics.PurgeRun); err != nil {
			return err
		}
	}
	sched.Start()

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           server,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.WithField("addr", srv.Addr).Info("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		sched.Stop(shutdownCtx)
		err := srv.Shutdown(shutdownCtx)
		// deliveries are bounded by newsletter.timeout
		signups.Wait()
		return err
	})
	return g.Wait()
}

// loadContent returns events and testimonials from the configured source
// and a func that releases it.
func loadContent(ctx context.Context, cfg *config.Config, log logrus.FieldLogger) ([]models.Event, []models.Testimonial, func(), error) {
	noop := func() {}

	testimonials := models.SeedTestimonials()
	var source models.EventSource = models.StaticEventSource(models.SeedEvents())

	if cfg.Catalog.File != "" {
		sd, err := models.LoadSiteData(cfg.Catalog.File)
		if err != nil {
			return nil, nil, noop, err
		}
		if len(sd.Testimonials) > 0 {
			testimonials = sd.Testimonials
		}
		source = models.NewYAMLEventSource(cfg.Catalog.File)
		log.WithField("file", cfg.Catalog.File).Info("using catalog file")
	}

	closeFn := noop
	if cfg.Mongo.URI != "" {
		connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()
		mg, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.Mongo.URI))
		if err != nil {
			return nil, nil, noop, err
		}
		if err := mg.Ping(connectCtx, nil); err != nil {
			_ = mg.Disconnect(context.Background())
			return nil, nil, noop, err
		}
		closeFn = func() { _ = mg.Disconnect(context.Background()) }
		source = models.NewMongoEventSource(mg.Database(cfg.Mongo.Database).Collection(cfg.Mongo.Collection))
		log.WithField("collection", cfg.Mongo.Collection).Info("using mongo catalog")
	}

	events, err := source.LoadEvents(ctx)
	if err != nil {
		closeFn()
		return nil, nil, noop, err
	}
	return events, testimonials, closeFn, nil
}
