package main

import (
	"context"
	"fmt"
	"time"

	"github.com/username/school-bells/internal/bells"
	"github.com/username/school-bells/internal/blobstore"
	"github.com/username/school-bells/internal/calendar"
	"github.com/username/school-bells/internal/config"
	"github.com/username/school-bells/internal/docstore"
	"github.com/username/school-bells/internal/publication"
	"github.com/username/school-bells/internal/schedule"
	"go.uber.org/zap"
)

const connectTimeout = 10 * time.Second

// application holds the components every command works with
type application struct {
	cfg      *config.Config
	location *time.Location
	clock    bells.Clock
	catalog  *schedule.Catalog
	docs     docstore.Store
	calendar *calendar.StoreCalendar
	manager  *bells.Manager
	closers  []func()
}

func setup(ctx context.Context) (*application, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	// Load config
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	location, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	app := &application{
		cfg:      cfg,
		location: location,
		clock:    bells.SystemClock{Location: location},
	}

	app.catalog, err = bells.LoadCatalog(cfg.Friday.Rule(), cfg.Catalog.File, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	app.docs, err = app.openDocStore(ctx)
	if err != nil {
		app.Close()
		return nil, err
	}

	app.calendar = calendar.NewStoreCalendar(
		app.docs,
		app.catalog,
		cfg.Calendar.KeyFormat,
		cfg.Calendar.GetCacheTTL(),
		logger,
	)

	var cal calendar.Calendar = app.calendar
	if cfg.Calendar.FallbackFile != "" {
		fallbackCal := calendar.NewFileCalendar(cfg.Calendar.FallbackFile, app.catalog, logger)
		compositeCal := calendar.NewCompositeCalendar(app.calendar, fallbackCal, logger)

		// Load fallback calendar
		if err := compositeCal.LoadFallback(); err != nil {
			logger.Warn("Failed to load fallback calendar, continuing with store only",
				zap.Error(err))
		}
		cal = compositeCal
	}

	app.manager = bells.NewManager(cal, app.clock, logger)
	return app, nil
}

func (app *application) openDocStore(ctx context.Context) (docstore.Store, error) {
	storeCfg := app.cfg.Store

	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	switch storeCfg.Type {
	case config.StoreRedis:
		logger.Info("Using redis document store", zap.String("addr", storeCfg.Redis.Addr))
		client, err := docstore.NewRedisClient(ctx, storeCfg.Redis.Addr, storeCfg.Redis.Password, storeCfg.Redis.DB)
		if err != nil {
			return nil, err
		}
		app.closers = append(app.closers, func() { _ = client.Close() })
		return docstore.NewRedisStore(client, storeCfg.Redis.Prefix, storeCfg.Redis.GetTTL(), logger), nil

	case config.StoreMongo:
		logger.Info("Using mongo document store", zap.String("database", storeCfg.Mongo.Database))
		client, err := docstore.NewMongoClient(ctx, storeCfg.Mongo.URI)
		if err != nil {
			return nil, err
		}
		app.closers = append(app.closers, func() {
			disconnectCtx, cancel := context.WithTimeout(context.Background(), connectTimeout)
			defer cancel()
			_ = client.Disconnect(disconnectCtx)
		})
		return docstore.NewMongoStore(client, storeCfg.Mongo.Database, storeCfg.Mongo.Collection, logger), nil

	default:
		logger.Info("Using file document store", zap.String("dir", storeCfg.Dir))
		return docstore.NewFileStore(storeCfg.Dir, logger), nil
	}
}

// publications opens the blob store and returns the publication service
func (app *application) publications() (*publication.Service, error) {
	blobCfg := app.cfg.Blob
	if blobCfg.Endpoint == "" {
		return nil, fmt.Errorf("blob.endpoint is not configured")
	}

	client, err := blobstore.NewMinioClient(blobCfg.Endpoint, blobCfg.AccessKey, blobCfg.SecretKey, blobCfg.UseSSL)
	if err != nil {
		return nil, err
	}

	blobs := blobstore.NewMinioStore(client, blobCfg.Bucket, logger)
	return publication.NewService(blobs, app.docs, logger), nil
}

// Close releases store connections and flushes the logger
func (app *application) Close() {
	for i := len(app.closers) - 1; i >= 0; i-- {
		app.closers[i]()
	}
	app.closers = nil
	_ = logger.Sync()
}
