package cli

import (
	"context"

	v1 "github.com/Xunop/e-verse/internal/api/v1"
	"github.com/Xunop/e-verse/internal/config"
	"github.com/Xunop/e-verse/internal/dictionary"
	"github.com/Xunop/e-verse/internal/log"
	"github.com/Xunop/e-verse/internal/provider"
	"github.com/Xunop/e-verse/internal/registry"
	"github.com/Xunop/e-verse/internal/resolver"
	"github.com/Xunop/e-verse/internal/search"
	"github.com/Xunop/e-verse/internal/state"
	"github.com/Xunop/e-verse/internal/storage"
	"github.com/Xunop/e-verse/internal/store"
	"github.com/Xunop/e-verse/internal/store/db"
	"github.com/Xunop/e-verse/internal/worker"
	"go.uber.org/zap"
)

// App wires every component for one process.
type App struct {
	Opts *config.Options

	// db and Store are nil when running on memory storage
	db    *db.DB
	Store *store.Store
	KV    store.KV

	Client     *provider.Client
	Net        *provider.Monitor
	Settings   *store.Settings
	Bookmarks  *store.Bookmarks
	Chapters   *store.ChapterStore
	Resolver   *resolver.Resolver
	Registry   *registry.Registry
	Search     *search.Gateway
	Dictionary *dictionary.Service
	Pool       *worker.DownloadPool
	Downloads  *worker.Manager
	State      *state.State
	Files      *storage.LocalStorage
}

func NewApp(ctx context.Context, opts *config.Options) *App {
	app := &App{Opts: opts}
	app.openStorage(ctx)

	app.Client = provider.NewClient(opts)
	app.Net = provider.NewMonitor(!opts.Offline)
	app.Settings = store.NewSettings(app.KV)
	app.Bookmarks = store.NewBookmarks(app.KV)
	app.Chapters = store.NewChapterStore(app.KV)
	app.Resolver = resolver.New(app.Client, app.Chapters, app.Net)
	app.Registry = registry.New(app.Client, app.Settings, app.Net, opts.Language)
	app.Search = search.NewGateway(app.Client, app.Net)
	app.Dictionary = dictionary.NewService(app.Client, app.Net, opts.Dictionary)
	app.Pool = worker.NewDownloadPool(app.Resolver, app.Chapters, opts.WorkerPoolSize)
	app.Downloads = worker.NewManager(app.Pool, app.Chapters, app.Resolver)
	app.Files = storage.NewLocalStorage(opts.Data)
	app.State = state.New(state.Deps{
		Chapters:     app.Resolver,
		Translations: app.Registry,
		Settings:     app.Settings,
		Bookmarks:    app.Bookmarks,
		Downloads:    app.Downloads,
	})
	return app
}

// openStorage opens the sqlite store. Any failure leaves the app on memory
// storage: reading keeps working, nothing survives the process.
func (a *App) openStorage(ctx context.Context) {
	a.KV = store.NewMemoryKV()
	if a.Opts.Storage == config.StorageMemory {
		return
	}

	d, err := db.NewDB(a.Opts.DSN)
	if err != nil {
		log.Warn("Persistent storage unavailable, using memory", zap.Error(err))
		return
	}
	if err := d.Migrate(ctx); err != nil {
		log.Warn("Database migration failed, using memory", zap.String("dsn", a.Opts.DSN), zap.Error(err))
		d.Close()
		return
	}
	a.db = d
	a.Store = store.NewStore(d.DB, a.Opts.CompressThreshold)
	a.KV = a.Store
}

func (a *App) Services() v1.Services {
	return v1.Services{
		Resolver:   a.Resolver,
		Registry:   a.Registry,
		Search:     a.Search,
		Bookmarks:  a.Bookmarks,
		Downloads:  a.Downloads,
		Dictionary: a.Dictionary,
	}
}

func (a *App) Close() error {
	a.Pool.Close()
	if a.db != nil {
		return a.db.Close()
	}
	return nil
}
