package state // import "github.com/Xunop/e-verse/internal/state"

import (
	"context"
	"sort"
	"sync"

	"github.com/Xunop/e-verse/internal/catalog"
	"github.com/Xunop/e-verse/internal/log"
	"github.com/Xunop/e-verse/internal/model"
	"github.com/Xunop/e-verse/internal/store"
	"github.com/Xunop/e-verse/internal/worker"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var ErrInvalidSelection = errors.New("invalid selection")

type Event int

const (
	EventVerses Event = iota
	EventLoading
	EventTranslations
	EventSelection
	EventSettings
	EventProgress
)

type ChapterLoader interface {
	LoadChapter(ctx context.Context, bookID string, chapter int, translationIDs []string) []model.Verse
}

type TranslationSource interface {
	List() []model.Translation
	Refresh(ctx context.Context) ([]model.Translation, error)
}

type Downloads interface {
	DownloadBook(ctx context.Context, translationID, bookID string) (worker.Report, error)
	IsBookDownloaded(bookID, translationID string) bool
	RemoveDownloadedBook(bookID, translationID string) error
}

type Deps struct {
	Chapters     ChapterLoader
	Translations TranslationSource
	Settings     *store.Settings
	Bookmarks    *store.Bookmarks
	Downloads    Downloads
}

// Snapshot is a copy of the reading state at one point in time.
type Snapshot struct {
	Book                 model.Book          `json:"book"`
	Chapter              int                 `json:"chapter"`
	SelectedTranslation  string              `json:"selected_translation"`
	SelectedTranslations []string            `json:"selected_translations"`
	TranslationsOrder    []string            `json:"translations_order"`
	SelectedVerses       []int               `json:"selected_verses"`
	FontSize             float64             `json:"font_size"`
	HighContrast         bool                `json:"high_contrast"`
	SepiaMode            bool                `json:"sepia_mode"`
	ThemeMode            model.ThemeMode     `json:"theme_mode"`
	Loading              bool                `json:"loading"`
	Verses               []model.Verse       `json:"verses"`
	Translations         []model.Translation `json:"translations"`
}

// State is the reader's session: what is selected, what is shown and how.
// Observers subscribe to change events instead of polling.
type State struct {
	deps Deps

	mu                   sync.Mutex
	bookIndex            int
	chapter              int
	selectedTranslation  string
	selectedTranslations []string
	order                []string
	selectedVerses       map[int]struct{}
	fontSize             float64
	highContrast         bool
	sepiaMode            bool
	themeMode            model.ThemeMode
	verses               []model.Verse
	loading              bool
	translations         []model.Translation
	// seq numbers chapter loads, only the newest may publish its verses
	seq uint64

	subMu       sync.Mutex
	subscribers map[int]func(Event)
	nextSub     int
}

// New restores the last session from the store.
func New(deps Deps) *State {
	s := &State{
		deps:                 deps,
		bookIndex:            catalog.DefaultBookIndex,
		chapter:              1,
		selectedTranslation:  model.DefaultTranslationID,
		selectedTranslations: []string{model.DefaultTranslationID},
		selectedVerses:       map[int]struct{}{},
		fontSize:             model.DefaultFontSize,
		themeMode:            model.DefaultThemeMode,
		verses:               []model.Verse{},
		subscribers:          map[int]func(Event){},
	}
	s.loadSettings()
	s.translations = deps.Translations.List()
	return s
}

func (s *State) loadSettings() {
	settings := s.deps.Settings
	if p, ok := s.deps.Bookmarks.LoadProgress(); ok {
		if idx, found := catalog.IndexOf(p.BookID); found {
			s.bookIndex = idx
		}
		if catalog.ValidChapter(catalog.Books[s.bookIndex], p.Chapter) {
			s.chapter = p.Chapter
		}
		if p.TranslationID != "" {
			s.selectedTranslation = p.TranslationID
			s.selectedTranslations = []string{p.TranslationID}
		}
	} else {
		id := settings.SelectedTranslation()
		s.selectedTranslation = id
		s.selectedTranslations = []string{id}
	}
	s.fontSize = settings.FontSize()
	s.highContrast = settings.HighContrast()
	s.sepiaMode = settings.SepiaMode()
	s.themeMode = settings.ThemeMode()
	s.order = settings.TranslationsOrder()
}

// Subscribe registers fn for change events and returns its cancel function.
func (s *State) Subscribe(fn func(Event)) func() {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	id := s.nextSub
	s.nextSub++
	s.subscribers[id] = fn
	return func() {
		s.subMu.Lock()
		defer s.subMu.Unlock()
		delete(s.subscribers, id)
	}
}

func (s *State) publish(events ...Event) {
	s.subMu.Lock()
	fns := make([]func(Event), 0, len(s.subscribers))
	for _, fn := range s.subscribers {
		fns = append(fns, fn)
	}
	s.subMu.Unlock()
	for _, e := range events {
		for _, fn := range fns {
			fn(e)
		}
	}
}

func (s *State) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{
		Book:                 catalog.Books[s.bookIndex],
		Chapter:              s.chapter,
		SelectedTranslation:  s.selectedTranslation,
		SelectedTranslations: append([]string(nil), s.selectedTranslations...),
		TranslationsOrder:    append([]string(nil), s.order...),
		SelectedVerses:       s.selectedVerseListLocked(),
		FontSize:             s.fontSize,
		HighContrast:         s.highContrast,
		SepiaMode:            s.sepiaMode,
		ThemeMode:            s.themeMode,
		Loading:              s.loading,
		Verses:               append([]model.Verse(nil), s.verses...),
		Translations:         append([]model.Translation(nil), s.translations...),
	}
}

func (s *State) selectedVerseListLocked() []int {
	list := make([]int, 0, len(s.selectedVerses))
	for n := range s.selectedVerses {
		list = append(list, n)
	}
	sort.Ints(list)
	return list
}

// LoadChapter loads the selected chapter in the selected translations. It
// reports false when a newer load started meanwhile and this result was dropped.
func (s *State) LoadChapter(ctx context.Context) bool {
	s.mu.Lock()
	s.seq++
	seq := s.seq
	s.loading = true
	bookID := catalog.Books[s.bookIndex].ID
	chapter := s.chapter
	ids := append([]string(nil), s.selectedTranslations...)
	s.mu.Unlock()
	s.publish(EventLoading)

	verses := s.deps.Chapters.LoadChapter(ctx, bookID, chapter, ids)

	s.mu.Lock()
	if seq != s.seq {
		s.mu.Unlock()
		log.Debug("Dropping stale chapter", zap.String("book", bookID), zap.Int("chapter", chapter))
		return false
	}
	s.verses = verses
	s.loading = false
	s.mu.Unlock()
	s.publish(EventVerses, EventLoading)
	return true
}

// SelectBook opens chapter 1 of the book at index.
func (s *State) SelectBook(ctx context.Context, index int) error {
	if index < 0 || index >= len(catalog.Books) {
		return errors.Wrapf(ErrInvalidSelection, "book index %d", index)
	}
	s.mu.Lock()
	s.bookIndex = index
	s.chapter = 1
	s.selectedVerses = map[int]struct{}{}
	s.mu.Unlock()
	s.afterNavigation(ctx)
	return nil
}

func (s *State) SelectChapter(ctx context.Context, chapter int) error {
	s.mu.Lock()
	if !catalog.ValidChapter(catalog.Books[s.bookIndex], chapter) {
		s.mu.Unlock()
		return errors.Wrapf(ErrInvalidSelection, "chapter %d", chapter)
	}
	s.chapter = chapter
	s.selectedVerses = map[int]struct{}{}
	s.mu.Unlock()
	s.afterNavigation(ctx)
	return nil
}

// NavigateToBookmark opens the bookmarked chapter with the verse selected.
// Unknown books are ignored.
func (s *State) NavigateToBookmark(ctx context.Context, bookID string, chapter, verse int) bool {
	idx, ok := catalog.IndexOf(bookID)
	if !ok {
		return false
	}
	s.mu.Lock()
	s.bookIndex = idx
	s.chapter = chapter
	s.selectedVerses = map[int]struct{}{verse: {}}
	s.mu.Unlock()
	s.afterNavigation(ctx)
	return true
}

// Open jumps to a chapter, optionally switching the displayed translations,
// and loads it once.
func (s *State) Open(ctx context.Context, bookID string, chapter int, translationIDs []string) error {
	book, err := catalog.Lookup(bookID)
	if err != nil {
		return err
	}
	if !catalog.ValidChapter(book, chapter) {
		return errors.Wrapf(ErrInvalidSelection, "chapter %d", chapter)
	}
	if len(translationIDs) > 0 {
		s.selectTranslations(translationIDs)
	}
	idx, _ := catalog.IndexOf(book.ID)
	s.mu.Lock()
	s.bookIndex = idx
	s.chapter = chapter
	s.selectedVerses = map[int]struct{}{}
	s.mu.Unlock()
	s.afterNavigation(ctx)
	return nil
}

func (s *State) afterNavigation(ctx context.Context) {
	s.publish(EventSelection)
	s.saveProgress()
	s.LoadChapter(ctx)
}

func (s *State) saveProgress() {
	s.mu.Lock()
	book := catalog.Books[s.bookIndex]
	p := model.ReadingProgress{
		BookID:        book.ID,
		BookName:      book.Name,
		Chapter:       s.chapter,
		TranslationID: s.selectedTranslation,
		FontSize:      s.fontSize,
	}
	s.mu.Unlock()

	if err := s.deps.Bookmarks.SaveProgress(p); err != nil {
		log.Warn("Unable to save reading progress", zap.Error(err))
		return
	}
	s.publish(EventProgress)
}
