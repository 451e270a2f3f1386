package worker

import (
	"context"
	"sort"
	"strconv"
	"strings"

	"github.com/Xunop/e-verse/internal/catalog"
	"github.com/Xunop/e-verse/internal/log"
	"github.com/Xunop/e-verse/internal/model"
	"github.com/Xunop/e-verse/internal/store"
	"go.uber.org/zap"
)

// Report summarises one book download.
type Report struct {
	TranslationID string `json:"translation_id"`
	BookID        string `json:"book_id"`
	Total         int    `json:"total"`
	Saved         int    `json:"saved"`
	Skipped       int    `json:"skipped"`
	// Missing lists the chapters that could not be saved.
	Missing []int `json:"missing,omitempty"`
}

func (r Report) Complete() bool {
	return r.Saved == r.Total
}

// BookStatus describes the downloaded chapters of one book in one translation.
type BookStatus struct {
	TranslationID string `json:"translation_id"`
	BookID        string `json:"book_id"`
	Chapters      int    `json:"chapters"`
	Complete      bool   `json:"complete"`
}

// Invalidator evicts a book from the in-memory chapter cache.
type Invalidator interface {
	InvalidateBook(translationID, bookID string)
}

// Manager downloads whole books for offline reading.
type Manager struct {
	pool     WorkPool
	chapters *store.ChapterStore
	cache    Invalidator
}

func NewManager(pool WorkPool, chapters *store.ChapterStore, cache Invalidator) *Manager {
	return &Manager{pool: pool, chapters: chapters, cache: cache}
}

// DownloadBook fetches and persists every chapter of the book. It returns once
// every chapter has been attempted. Chapters that fail are skipped, nothing is
// retried or rolled back.
func (m *Manager) DownloadBook(ctx context.Context, translationID, bookID string) (Report, error) {
	book, err := catalog.Lookup(bookID)
	if err != nil {
		return Report{}, err
	}

	report := Report{TranslationID: translationID, BookID: book.ID, Total: book.TotalChapters}
	done := make(chan model.DownloadJob, book.TotalChapters)
	go func() {
		for ch := 1; ch <= book.TotalChapters; ch++ {
			m.pool.Push(ctx, model.DownloadJob{
				Key: model.ChapterKey{TranslationID: translationID, BookID: book.ID, Chapter: ch},
			}, done)
		}
	}()

	for i := 0; i < book.TotalChapters; i++ {
		job := <-done
		if job.Status == model.JobStatusDone {
			report.Saved++
			continue
		}
		report.Skipped++
		report.Missing = append(report.Missing, job.Key.Chapter)
	}
	sort.Ints(report.Missing)

	log.Info("Book download finished",
		zap.String("translation", translationID),
		zap.String("book", book.ID),
		zap.Int("saved", report.Saved),
		zap.Int("skipped", report.Skipped))
	return report, nil
}

// IsBookDownloaded is true only when every chapter of the book is stored.
func (m *Manager) IsBookDownloaded(bookID, translationID string) bool {
	book, err := catalog.Lookup(bookID)
	if err != nil {
		return false
	}
	for ch := 1; ch <= book.TotalChapters; ch++ {
		if !m.chapters.IsDownloaded(model.ChapterKey{TranslationID: translationID, BookID: book.ID, Chapter: ch}) {
			return false
		}
	}
	return true
}

// RemoveDownloadedBook clears every stored chapter of the book, complete or not.
func (m *Manager) RemoveDownloadedBook(bookID, translationID string) error {
	book, err := catalog.Lookup(bookID)
	if err != nil {
		return err
	}
	var firstErr error
	for ch := 1; ch <= book.TotalChapters; ch++ {
		key := model.ChapterKey{TranslationID: translationID, BookID: book.ID, Chapter: ch}
		if err := m.chapters.Remove(key); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	if m.cache != nil {
		m.cache.InvalidateBook(translationID, book.ID)
	}
	return firstErr
}

// Downloaded lists every book with at least one stored chapter.
func (m *Manager) Downloaded() []BookStatus {
	counts := map[[2]string]int{}
	for _, key := range m.chapters.Keys() {
		tr, book, ok := splitChapterKey(key)
		if !ok {
			continue
		}
		counts[[2]string{tr, book}]++
	}

	list := make([]BookStatus, 0, len(counts))
	for k, n := range counts {
		list = append(list, BookStatus{
			TranslationID: k[0],
			BookID:        k[1],
			Chapters:      n,
			Complete:      m.IsBookDownloaded(k[1], k[0]),
		})
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].TranslationID != list[j].TranslationID {
			return list[i].TranslationID < list[j].TranslationID
		}
		bi, _ := catalog.IndexOf(list[i].BookID)
		bj, _ := catalog.IndexOf(list[j].BookID)
		return bi < bj
	})
	return list
}

// splitChapterKey parses "<translation>_<book>_<chapter>" from the right, so
// translation ids may themselves contain underscores.
func splitChapterKey(key string) (string, string, bool) {
	last := strings.LastIndex(key, "_")
	if last < 0 {
		return "", "", false
	}
	if _, err := strconv.Atoi(key[last+1:]); err != nil {
		return "", "", false
	}
	rest := key[:last]
	mid := strings.LastIndex(rest, "_")
	if mid < 0 {
		return "", "", false
	}
	return rest[:mid], rest[mid+1:], true
}
