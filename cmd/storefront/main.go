package main

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"storefront/internal/adapter/catalog"
	adapthttp "storefront/internal/adapter/http"
	"storefront/internal/adapter/memory"
	"storefront/internal/adapter/postgres"
	"storefront/internal/adapter/redis"
	"storefront/internal/app"
	"storefront/internal/config"
	"storefront/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("config")
	}
	log := cfg.NewLogger()
	if log.GetLevel() < logrus.DebugLevel {
		gin.SetMode(gin.ReleaseMode)
	}

	products, err := catalog.Load(cfg.CatalogFile)
	if err != nil {
		log.WithError(err).Fatal("catalog load")
	}
	log.WithField("products", products.Len()).Info("catalog loaded")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, closer, err := openStore(ctx, cfg, log)
	if err != nil {
		log.WithError(err).WithField("store", cfg.Store).Fatal("slot store open")
	}
	defer func() { _ = closer.Close() }()

	carts := app.NewCartPersister(store, products, log)
	users := app.NewUserPersister(store, log)

	h := adapthttp.New(
		app.NewCatalogService(products),
		app.NewCartService(products, carts, log),
		app.NewAuthService(users, carts, cfg.AuthDelay, log),
		log,
	).WithSessionCookie(cfg.SessionCookie, cfg.SecureCookie).Handler()

	srv := &http.Server{
		Handler:           h,
		ReadHeaderTimeout: 10 * time.Second,
	}
	ln, err := net.Listen("tcp", cfg.Addr)
	if err != nil {
		log.WithError(err).Fatal("listen")
	}
	log.WithFields(logrus.Fields{"addr": cfg.Addr, "store": cfg.Store}).Info("listening")
	if err := serve(ctx, srv, ln, 10*time.Second); err != nil {
		log.WithError(err).Fatal("serve")
	}
	log.Info("server stopped")
}

// serve runs srv on ln until ctx is cancelled, then waits up to grace for
// in-flight requests to finish.
func serve(ctx context.Context, srv *http.Server, ln net.Listener, grace time.Duration) error {
	drained := make(chan error, 1)
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), grace)
		defer cancel()
		drained <- srv.Shutdown(shutdownCtx)
	}()

	if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return <-drained
}

func openStore(ctx context.Context, cfg *config.Config, log *logrus.Logger) (domain.SlotStore, io.Closer, error) {
	switch cfg.Store {
	case config.StorePostgres:
		db, err := postgres.Open(cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		if cfg.SlotTTL > 0 {
			go pruneSlots(ctx, db, cfg.SlotTTL, log)
		}
		return db, db, nil
	case config.StoreRedis:
		s, err := redis.Open(redis.Options{Addr: cfg.RedisAddr, DB: cfg.RedisDB, TTL: cfg.SlotTTL})
		if err != nil {
			return nil, nil, err
		}
		return s, s, nil
	default:
		return memory.New(), io.NopCloser(nil), nil
	}
}

// pruneSlots periodically deletes slots not written within ttl.
func pruneSlots(ctx context.Context, db *postgres.DB, ttl time.Duration, log *logrus.Logger) {
	interval := ttl / 4
	if interval < time.Minute {
		interval = time.Minute
	}
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			n, err := db.DeleteStale(ctx, time.Now().Add(-ttl))
			if err != nil {
				log.WithError(err).Warn("prune stale slots")
				continue
			}
			if n > 0 {
				log.WithField("deleted", n).Info("pruned stale slots")
			}
		}
	}
}
