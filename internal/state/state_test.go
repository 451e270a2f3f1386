package state

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/Xunop/e-verse/internal/catalog"
	"github.com/Xunop/e-verse/internal/model"
	"github.com/Xunop/e-verse/internal/store"
	"github.com/Xunop/e-verse/internal/worker"
)

type fakeLoader struct {
	mu    sync.Mutex
	calls []string
	// gate, when set, blocks loads of the given chapter until closed
	gate map[int]chan struct{}
}

func (f *fakeLoader) LoadChapter(ctx context.Context, bookID string, chapter int, ids []string) []model.Verse {
	f.mu.Lock()
	f.calls = append(f.calls, bookID)
	gate := f.gate[chapter]
	f.mu.Unlock()
	if gate != nil {
		<-gate
	}
	return []model.Verse{
		{Chapter: chapter, VerseNumber: 1, Text: bookID + " one"},
		{Chapter: chapter, VerseNumber: 2, Text: bookID + " two"},
		{Chapter: chapter, VerseNumber: 3, Text: bookID + " three"},
	}
}

type fakeTranslations struct{}

func (fakeTranslations) List() []model.Translation { return model.DefaultTranslations }

func (fakeTranslations) Refresh(ctx context.Context) ([]model.Translation, error) {
	return []model.Translation{{ID: "WEB", Name: "World English Bible", Abbreviation: "WEB"}}, nil
}

type fakeDownloads struct {
	downloaded map[string]bool
}

func (f *fakeDownloads) DownloadBook(ctx context.Context, tr, book string) (worker.Report, error) {
	f.downloaded[tr+"/"+book] = true
	return worker.Report{TranslationID: tr, BookID: book}, nil
}

func (f *fakeDownloads) IsBookDownloaded(book, tr string) bool { return f.downloaded[tr+"/"+book] }

func (f *fakeDownloads) RemoveDownloadedBook(book, tr string) error {
	delete(f.downloaded, tr+"/"+book)
	return nil
}

func newTestState(t *testing.T, kv store.KV) (*State, *fakeLoader) {
	t.Helper()
	loader := &fakeLoader{gate: map[int]chan struct{}{}}
	s := New(Deps{
		Chapters:     loader,
		Translations: fakeTranslations{},
		Settings:     store.NewSettings(kv),
		Bookmarks:    store.NewBookmarks(kv),
		Downloads:    &fakeDownloads{downloaded: map[string]bool{}},
	})
	return s, loader
}

func TestDefaults(t *testing.T) {
	s, _ := newTestState(t, store.NewMemoryKV())
	snap := s.Snapshot()
	if snap.Book.ID != "JHN" || snap.Chapter != 1 {
		t.Errorf("default location = %s %d", snap.Book.ID, snap.Chapter)
	}
	if snap.SelectedTranslation != model.DefaultTranslationID || len(snap.SelectedTranslations) != 1 {
		t.Errorf("default translation = %+v", snap.SelectedTranslations)
	}
	if snap.FontSize != model.DefaultFontSize || snap.ThemeMode != model.ThemeDark {
		t.Errorf("default settings = %v %v", snap.FontSize, snap.ThemeMode)
	}
	if len(snap.Translations) != len(model.DefaultTranslations) {
		t.Errorf("translations = %d", len(snap.Translations))
	}
}

func TestRestoreFromProgress(t *testing.T) {
	kv := store.NewMemoryKV()
	store.NewBookmarks(kv).SaveProgress(model.ReadingProgress{BookID: "PSA", Chapter: 23, TranslationID: "ESV"})
	settings := store.NewSettings(kv)
	settings.SetThemeMode(model.ThemeLight)
	settings.SetFontSize(20)

	s, _ := newTestState(t, kv)
	snap := s.Snapshot()
	if snap.Book.ID != "PSA" || snap.Chapter != 23 {
		t.Errorf("restored location = %s %d", snap.Book.ID, snap.Chapter)
	}
	if snap.SelectedTranslation != "ESV" || snap.SelectedTranslations[0] != "ESV" {
		t.Errorf("restored translation = %+v", snap.SelectedTranslations)
	}
	if snap.ThemeMode != model.ThemeLight || snap.FontSize != 20 {
		t.Errorf("restored settings = %v %v", snap.ThemeMode, snap.FontSize)
	}
}

func TestRestoreWithoutProgressUsesStoredTranslation(t *testing.T) {
	kv := store.NewMemoryKV()
	store.NewSettings(kv).SetSelectedTranslation("NIV")
	s, _ := newTestState(t, kv)
	if got := s.Snapshot().SelectedTranslations; len(got) != 1 || got[0] != "NIV" {
		t.Errorf("selected = %v", got)
	}
}

func TestSelectBookResetsAndSaves(t *testing.T) {
	kv := store.NewMemoryKV()
	s, _ := newTestState(t, kv)
	ctx := context.Background()

	if err := s.SelectChapter(ctx, 3); err != nil {
		t.Fatal(err)
	}
	s.ToggleVerse(2)
	idx, _ := catalog.IndexOf("ROM")
	if err := s.SelectBook(ctx, idx); err != nil {
		t.Fatal(err)
	}
	snap := s.Snapshot()
	if snap.Book.ID != "ROM" || snap.Chapter != 1 || len(snap.SelectedVerses) != 0 {
		t.Errorf("after SelectBook = %s %d %v", snap.Book.ID, snap.Chapter, snap.SelectedVerses)
	}
	if len(snap.Verses) != 3 || snap.Loading {
		t.Errorf("chapter not loaded: %+v", snap)
	}
	p, ok := store.NewBookmarks(kv).LoadProgress()
	if !ok || p.BookID != "ROM" || p.Chapter != 1 {
		t.Errorf("progress = %+v", p)
	}

	if err := s.SelectBook(ctx, len(catalog.Books)); err == nil {
		t.Error("out of range book should fail")
	}
	if err := s.SelectChapter(ctx, 99); err == nil {
		t.Error("out of range chapter should fail")
	}
}

func TestStaleChapterIsDropped(t *testing.T) {
	s, loader := newTestState(t, store.NewMemoryKV())
	ctx := context.Background()

	gate := make(chan struct{})
	loader.mu.Lock()
	loader.gate[1] = gate
	loader.mu.Unlock()

	result := make(chan bool)
	go func() { result <- s.LoadChapter(ctx) }()

	// wait until the slow load is in flight
	for {
		loader.mu.Lock()
		n := len(loader.calls)
		loader.mu.Unlock()
		if n == 1 {
			break
		}
		time.Sleep(time.Millisecond)
	}
	if err := s.SelectChapter(ctx, 2); err != nil {
		t.Fatal(err)
	}
	close(gate)

	if <-result {
		t.Error("older load should be dropped")
	}
	snap := s.Snapshot()
	if snap.Chapter != 2 || len(snap.Verses) == 0 || snap.Verses[0].Chapter != 2 {
		t.Errorf("verses should be from chapter 2: %+v", snap.Verses)
	}
}

func TestFontSizeClamped(t *testing.T) {
	kv := store.NewMemoryKV()
	s, _ := newTestState(t, kv)
	if got := s.SetFontSize(100); got != model.MaxFontSize {
		t.Errorf("SetFontSize(100) = %v", got)
	}
	if got := s.SetFontSize(1); got != model.MinFontSize {
		t.Errorf("SetFontSize(1) = %v", got)
	}
	if got := store.NewSettings(kv).FontSize(); got != model.MinFontSize {
		t.Errorf("stored font size = %v", got)
	}
}

func TestThemeAndSepia(t *testing.T) {
	s, _ := newTestState(t, store.NewMemoryKV())

	s.SetSepiaMode(true)
	if snap := s.Snapshot(); snap.ThemeMode != model.ThemeSepia || !snap.SepiaMode {
		t.Errorf("sepia on = %+v", snap)
	}
	s.SetThemeMode(model.ThemeLight)
	if snap := s.Snapshot(); snap.ThemeMode != model.ThemeLight || snap.SepiaMode {
		t.Errorf("light theme should clear sepia: %+v", snap)
	}
	s.SetThemeMode(model.ThemeSepia)
	if !s.Snapshot().SepiaMode {
		t.Error("sepia theme should set sepia")
	}
	s.SetThemeMode("neon")
	if s.Snapshot().ThemeMode != model.ThemeSepia {
		t.Error("invalid theme should be ignored")
	}
}

func TestSetSelectedTranslations(t *testing.T) {
	kv := store.NewMemoryKV()
	s, _ := newTestState(t, kv)
	ctx := context.Background()

	s.SetSelectedTranslations(ctx, nil)
	if got := s.Snapshot().SelectedTranslations; len(got) != 1 {
		t.Fatalf("empty list should be ignored: %v", got)
	}

	s.SetSelectedTranslations(ctx, []string{"KJV", "ESV", "NIV"})
	snap := s.Snapshot()
	if snap.SelectedTranslation != "KJV" {
		t.Errorf("primary should stay KJV, got %s", snap.SelectedTranslation)
	}
	s.SetTranslationsOrder([]string{"NIV", "KJV", "ESV"})

	s.SetSelectedTranslations(ctx, []string{"ESV", "NIV", "WEB"})
	snap = s.Snapshot()
	if snap.SelectedTranslation != "ESV" {
		t.Errorf("primary should move to ESV, got %s", snap.SelectedTranslation)
	}
	want := []string{"NIV", "ESV", "WEB"}
	if len(snap.TranslationsOrder) != len(want) {
		t.Fatalf("order = %v", snap.TranslationsOrder)
	}
	for i := range want {
		if snap.TranslationsOrder[i] != want[i] {
			t.Fatalf("order = %v, want %v", snap.TranslationsOrder, want)
		}
	}
	if got := store.NewSettings(kv).TranslationsOrder(); len(got) != 3 || got[0] != "NIV" {
		t.Errorf("stored order = %v", got)
	}
	if got := s.SelectedTranslationsInOrder(); got[0] != "NIV" || got[2] != "WEB" {
		t.Errorf("in order = %v", got)
	}
}

func TestToggleTranslationKeepsLast(t *testing.T) {
	s, _ := newTestState(t, store.NewMemoryKV())
	ctx := context.Background()

	s.ToggleTranslation(ctx, "KJV")
	if !s.IsTranslationSelected("KJV") {
		t.Fatal("last translation must not be removed")
	}
	s.ToggleTranslation(ctx, "ESV")
	if !s.IsTranslationSelected("ESV") {
		t.Fatal("ESV should be added")
	}
	s.ToggleTranslation(ctx, "KJV")
	if s.IsTranslationSelected("KJV") {
		t.Error("KJV should be removed")
	}
}

func TestVerseSelectionFilters(t *testing.T) {
	s, _ := newTestState(t, store.NewMemoryKV())
	s.LoadChapter(context.Background())

	if got := s.FilteredVerses(); len(got) != 3 {
		t.Fatalf("unfiltered = %d", len(got))
	}
	s.ToggleVerse(2)
	if got := s.FilteredVerses(); len(got) != 1 || got[0].VerseNumber != 2 {
		t.Errorf("filtered = %+v", got)
	}
	s.ToggleVerse(2)
	s.ToggleVerse(3)
	s.ClearVerseSelection()
	if got := s.FilteredVerses(); len(got) != 3 {
		t.Errorf("after clear = %d", len(got))
	}
}

func TestBookmarks(t *testing.T) {
	s, _ := newTestState(t, store.NewMemoryKV())
	ctx := context.Background()
	s.LoadChapter(ctx)

	bm, err := s.AddBookmark("note", 0)
	if err != nil {
		t.Fatal(err)
	}
	if bm.Verse != 1 || bm.BookID != "JHN" || bm.VerseText != "JHN one" {
		t.Errorf("bookmark = %+v", bm)
	}
	if len(s.Bookmarks()) != 1 {
		t.Fatal("bookmark not stored")
	}

	if s.NavigateToBookmark(ctx, "XYZ", 1, 1) {
		t.Error("unknown book should be ignored")
	}
	if !s.NavigateToBookmark(ctx, "GEN", 3, 2) {
		t.Fatal("navigate failed")
	}
	snap := s.Snapshot()
	if snap.Book.ID != "GEN" || snap.Chapter != 3 || len(snap.SelectedVerses) != 1 || snap.SelectedVerses[0] != 2 {
		t.Errorf("after navigate = %s %d %v", snap.Book.ID, snap.Chapter, snap.SelectedVerses)
	}

	if err := s.RemoveBookmark(bm.ID); err != nil {
		t.Fatal(err)
	}
	if len(s.Bookmarks()) != 0 {
		t.Error("bookmark not removed")
	}
}

func TestDownloadsUseCurrentSelection(t *testing.T) {
	s, _ := newTestState(t, store.NewMemoryKV())
	if s.IsBookDownloaded() {
		t.Fatal("nothing downloaded yet")
	}
	rep, err := s.DownloadCurrentBook(context.Background())
	if err != nil || rep.BookID != "JHN" || rep.TranslationID != "KJV" {
		t.Fatalf("report = %+v, %v", rep, err)
	}
	if !s.IsBookDownloaded() {
		t.Error("book should be downloaded")
	}
	if err := s.RemoveDownloadedBook(); err != nil || s.IsBookDownloaded() {
		t.Error("book should be removed")
	}
}

func TestSubscribe(t *testing.T) {
	s, _ := newTestState(t, store.NewMemoryKV())
	var mu sync.Mutex
	events := []Event{}
	cancel := s.Subscribe(func(e Event) {
		mu.Lock()
		events = append(events, e)
		mu.Unlock()
	})

	if _, err := s.RefreshTranslations(context.Background()); err != nil {
		t.Fatal(err)
	}
	if got := s.Snapshot().Translations; len(got) != 1 || got[0].ID != "WEB" {
		t.Errorf("translations = %+v", got)
	}
	cancel()
	s.SetHighContrast(true)

	mu.Lock()
	defer mu.Unlock()
	if len(events) != 1 || events[0] != EventTranslations {
		t.Errorf("events = %v", events)
	}
}

func TestOpenLoadsOnce(t *testing.T) {
	kv := store.NewMemoryKV()
	s, loader := newTestState(t, kv)
	ctx := context.Background()

	if err := s.Open(ctx, "PSA", 23, []string{"ESV", "KJV"}); err != nil {
		t.Fatal(err)
	}
	loader.mu.Lock()
	calls := len(loader.calls)
	loader.mu.Unlock()
	if calls != 1 {
		t.Errorf("loads = %d, want 1", calls)
	}
	snap := s.Snapshot()
	if snap.Book.ID != "PSA" || snap.Chapter != 23 || len(snap.SelectedTranslations) != 2 {
		t.Errorf("after Open = %+v", snap)
	}
	if p, _ := store.NewBookmarks(kv).LoadProgress(); p.BookID != "PSA" || p.Chapter != 23 {
		t.Errorf("progress = %+v", p)
	}

	if err := s.Open(ctx, "PSA", 151, nil); err == nil {
		t.Error("chapter 151 should fail")
	}
	if err := s.Open(ctx, "XYZ", 1, nil); err == nil {
		t.Error("unknown book should fail")
	}
}

func TestThemePersistsSepiaFlag(t *testing.T) {
	kv := store.NewMemoryKV()
	s, _ := newTestState(t, kv)
	s.SetThemeMode(model.ThemeSepia)

	restored, _ := newTestState(t, kv)
	if snap := restored.Snapshot(); !snap.SepiaMode || snap.ThemeMode != model.ThemeSepia {
		t.Errorf("restored = %v %v", snap.SepiaMode, snap.ThemeMode)
	}
}
