package registry // import "github.com/Xunop/e-verse/internal/registry"

import (
	"context"
	"sort"
	"sync"

	"github.com/Xunop/e-verse/internal/log"
	"github.com/Xunop/e-verse/internal/model"
	"github.com/Xunop/e-verse/internal/provider"
	"github.com/Xunop/e-verse/internal/store"
	"go.uber.org/zap"
)

type State int

const (
	// Cold means nothing has been loaded into memory yet.
	Cold State = iota
	Cached
	Refreshing
)

func (s State) String() string {
	switch s {
	case Cached:
		return "cached"
	case Refreshing:
		return "refreshing"
	default:
		return "cold"
	}
}

// CatalogSource fetches the remote translation catalog.
type CatalogSource interface {
	FetchCatalog(ctx context.Context) ([]provider.LanguageGroup, error)
}

// Registry resolves the list of available translations.
type Registry struct {
	source   CatalogSource
	settings *store.Settings
	net      provider.Connectivity
	language string

	mu          sync.Mutex
	cache       []model.Translation
	refreshing  bool
	subscribers []func([]model.Translation)
}

func New(source CatalogSource, settings *store.Settings, net provider.Connectivity, language string) *Registry {
	return &Registry{
		source:   source,
		settings: settings,
		net:      net,
		language: language,
	}
}

func (r *Registry) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	switch {
	case r.refreshing:
		return Refreshing
	case len(r.cache) > 0:
		return Cached
	default:
		return Cold
	}
}

// List never fails. It prefers the in-memory list, then the persisted one,
// then the bundled defaults.
func (r *Registry) List() []model.Translation {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.listLocked()
}

func (r *Registry) listLocked() []model.Translation {
	if len(r.cache) == 0 {
		if persisted := r.settings.CachedTranslations(); len(persisted) > 0 {
			r.cache = persisted
		}
	}
	if len(r.cache) > 0 {
		return append([]model.Translation(nil), r.cache...)
	}
	return append([]model.Translation(nil), model.DefaultTranslations...)
}

// Subscribe registers fn to be called with the new list after every
// successful refresh.
func (r *Registry) Subscribe(fn func([]model.Translation)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.subscribers = append(r.subscribers, fn)
}

// Refresh fetches the catalog and replaces the cached list when the result is
// non-empty. While a refresh is running, further calls return the current list
// immediately. The returned list is always usable; the error tells why it may
// be stale.
func (r *Registry) Refresh(ctx context.Context) ([]model.Translation, error) {
	r.mu.Lock()
	if r.refreshing {
		current := r.listLocked()
		r.mu.Unlock()
		return current, nil
	}
	if !r.net.Online() {
		current := r.listLocked()
		r.mu.Unlock()
		return current, provider.ErrOffline
	}
	r.refreshing = true
	r.mu.Unlock()

	fetched, err := r.fetch(ctx)

	r.mu.Lock()
	r.refreshing = false
	if err != nil || len(fetched) == 0 {
		current := r.listLocked()
		r.mu.Unlock()
		if err != nil {
			log.Warn("Translation refresh failed", zap.Error(err))
		}
		return current, err
	}
	r.cache = fetched
	subscribers := append([]func([]model.Translation){}, r.subscribers...)
	r.mu.Unlock()

	if err := r.settings.SetCachedTranslations(fetched); err != nil {
		log.Warn("Unable to persist translations", zap.Error(err))
	}
	for _, fn := range subscribers {
		fn(append([]model.Translation(nil), fetched...))
	}
	return append([]model.Translation(nil), fetched...), nil
}

func (r *Registry) fetch(ctx context.Context) ([]model.Translation, error) {
	groups, err := r.source.FetchCatalog(ctx)
	if err != nil {
		return nil, err
	}

	list := []model.Translation{}
	seen := map[string]bool{}
	for _, group := range groups {
		if group.Language != r.language {
			continue
		}
		for _, entry := range group.Translations {
			t := model.TranslationFromCatalog(entry, r.language)
			if !t.Usable() || seen[t.ID] {
				continue
			}
			seen[t.ID] = true
			list = append(list, t)
		}
	}
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].Abbreviation < list[j].Abbreviation
	})
	return list, nil
}

// Find returns the translation with the given id from the current list.
func (r *Registry) Find(id string) (model.Translation, bool) {
	for _, t := range r.List() {
		if t.ID == id {
			return t, true
		}
	}
	return model.Translation{}, false
}
