package worker

import (
	"context"
	"sync"
	"testing"

	"github.com/Xunop/e-verse/internal/catalog"
	"github.com/Xunop/e-verse/internal/model"
	"github.com/Xunop/e-verse/internal/provider"
	"github.com/Xunop/e-verse/internal/resolver"
	"github.com/Xunop/e-verse/internal/store"
	"github.com/pkg/errors"
)

type fakeText struct {
	mu       sync.Mutex
	failChap map[int]bool
	calls    int
}

func (f *fakeText) FetchChapter(ctx context.Context, tr string, book, chapter int) ([]provider.RawVerse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.failChap[chapter] {
		return nil, errors.New("upstream down")
	}
	return []provider.RawVerse{
		{Chapter: chapter, Verse: 1, Text: "first"},
		{Chapter: chapter, Verse: 2, Text: "second"},
	}, nil
}

type fixture struct {
	src      *fakeText
	net      *provider.Monitor
	kv       *store.MemoryKV
	chapters *store.ChapterStore
	resolver *resolver.Resolver
	pool     *DownloadPool
	manager  *Manager
}

func newFixture(t *testing.T) *fixture {
	f := &fixture{src: &fakeText{failChap: map[int]bool{}}, net: provider.NewMonitor(true), kv: store.NewMemoryKV()}
	f.chapters = store.NewChapterStore(f.kv)
	f.resolver = resolver.New(f.src, f.chapters, f.net)
	f.pool = NewDownloadPool(f.resolver, f.chapters, 3)
	t.Cleanup(f.pool.Close)
	f.manager = NewManager(f.pool, f.chapters, f.resolver)
	return f
}

func TestDownloadBookComplete(t *testing.T) {
	f := newFixture(t)

	report, err := f.manager.DownloadBook(context.Background(), "KJV", "RUT")
	if err != nil {
		t.Fatal(err)
	}
	if report.Total != 4 || report.Saved != 4 || !report.Complete() {
		t.Fatalf("report = %+v", report)
	}
	if !f.manager.IsBookDownloaded("RUT", "KJV") {
		t.Fatal("book should be downloaded")
	}
	if f.manager.IsBookDownloaded("RUT", "WEB") {
		t.Fatal("other translation is not downloaded")
	}

	// Downloaded chapters are readable offline after a restart.
	f.net.SetOnline(false)
	cold := resolver.New(f.src, store.NewChapterStore(f.kv), f.net)
	got := cold.LoadChapter(context.Background(), "RUT", 4, []string{"KJV"})
	if len(got) != 2 || got[1].Text != "second" {
		t.Fatalf("offline read = %+v", got)
	}
}

func TestDownloadBookPartial(t *testing.T) {
	f := newFixture(t)
	f.src.failChap[2] = true

	report, err := f.manager.DownloadBook(context.Background(), "KJV", "RUT")
	if err != nil {
		t.Fatal(err)
	}
	if report.Saved != 3 || report.Skipped != 1 || len(report.Missing) != 1 || report.Missing[0] != 2 {
		t.Fatalf("report = %+v", report)
	}
	if f.manager.IsBookDownloaded("RUT", "KJV") {
		t.Fatal("partial download must not count as downloaded")
	}

	// Removal clears a partial download too.
	if err := f.manager.RemoveDownloadedBook("RUT", "KJV"); err != nil {
		t.Fatal(err)
	}
	if len(f.chapters.Keys()) != 0 {
		t.Fatalf("markers left: %v", f.chapters.Keys())
	}
	if _, ok := f.kv.Get(model.ChapterKey{TranslationID: "KJV", BookID: "RUT", Chapter: 1}.BlobKey()); ok {
		t.Fatal("payload left behind")
	}
}

func TestRemoveDownloadedBook(t *testing.T) {
	f := newFixture(t)
	if _, err := f.manager.DownloadBook(context.Background(), "KJV", "JUD"); err != nil {
		t.Fatal(err)
	}
	if !f.manager.IsBookDownloaded("JUD", "KJV") {
		t.Fatal("book should be downloaded")
	}
	if err := f.manager.RemoveDownloadedBook("JUD", "KJV"); err != nil {
		t.Fatal(err)
	}
	if f.manager.IsBookDownloaded("JUD", "KJV") {
		t.Fatal("book still downloaded after removal")
	}

	// The memory cache was evicted as well, so an offline read finds nothing.
	f.net.SetOnline(false)
	if got := f.resolver.LoadChapter(context.Background(), "JUD", 1, []string{"KJV"}); len(got) != 0 {
		t.Fatalf("removed chapter still served: %v", got)
	}
}

func TestDownloadUnknownBook(t *testing.T) {
	f := newFixture(t)
	if _, err := f.manager.DownloadBook(context.Background(), "KJV", "XXX"); !errors.Is(err, catalog.ErrUnknownBook) {
		t.Fatalf("expected ErrUnknownBook, got %v", err)
	}
	if f.manager.IsBookDownloaded("XXX", "KJV") {
		t.Fatal("unknown book cannot be downloaded")
	}
	if err := f.manager.RemoveDownloadedBook("XXX", "KJV"); !errors.Is(err, catalog.ErrUnknownBook) {
		t.Fatalf("expected ErrUnknownBook, got %v", err)
	}
}

func TestDownloadOfflineSkipsEverything(t *testing.T) {
	f := newFixture(t)
	f.net.SetOnline(false)
	report, err := f.manager.DownloadBook(context.Background(), "KJV", "RUT")
	if err != nil {
		t.Fatal(err)
	}
	if report.Saved != 0 || report.Skipped != 4 {
		t.Fatalf("report = %+v", report)
	}
	if f.src.calls != 0 {
		t.Fatalf("no fetch expected offline")
	}
}

func TestDownloadCancelled(t *testing.T) {
	f := newFixture(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	report, err := f.manager.DownloadBook(ctx, "KJV", "PSA")
	if err != nil {
		t.Fatal(err)
	}
	if report.Saved+report.Skipped != 150 {
		t.Fatalf("every chapter must be accounted for: %+v", report)
	}
}

func TestDownloadedListing(t *testing.T) {
	f := newFixture(t)
	f.manager.DownloadBook(context.Background(), "KJV", "JUD")
	f.src.failChap[3] = true
	f.manager.DownloadBook(context.Background(), "KJV", "RUT")

	list := f.manager.Downloaded()
	if len(list) != 2 {
		t.Fatalf("list = %+v", list)
	}
	if list[0].BookID != "RUT" || list[0].Chapters != 3 || list[0].Complete {
		t.Errorf("first = %+v", list[0])
	}
	if list[1].BookID != "JUD" || !list[1].Complete {
		t.Errorf("second = %+v", list[1])
	}
}

func TestSplitChapterKey(t *testing.T) {
	tr, book, ok := splitChapterKey("NASB_1995_1CO_13")
	if !ok || tr != "NASB_1995" || book != "1CO" {
		t.Fatalf("got %q %q %v", tr, book, ok)
	}
	if _, _, ok := splitChapterKey("garbage"); ok {
		t.Fatal("garbage accepted")
	}
	if _, _, ok := splitChapterKey("KJV_GEN_x"); ok {
		t.Fatal("non numeric chapter accepted")
	}
}
