package state

import (
	"context"

	"github.com/Xunop/e-verse/internal/catalog"
	"github.com/Xunop/e-verse/internal/model"
	"github.com/Xunop/e-verse/internal/worker"
)

func (s *State) ToggleVerse(n int) {
	s.mu.Lock()
	if _, ok := s.selectedVerses[n]; ok {
		delete(s.selectedVerses, n)
	} else {
		s.selectedVerses[n] = struct{}{}
	}
	s.mu.Unlock()
	s.publish(EventSelection)
}

func (s *State) ClearVerseSelection() {
	s.mu.Lock()
	s.selectedVerses = map[int]struct{}{}
	s.mu.Unlock()
	s.publish(EventSelection)
}

// FilteredVerses is every loaded verse, or only the selected ones if any are.
func (s *State) FilteredVerses() []model.Verse {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.selectedVerses) == 0 {
		return append([]model.Verse(nil), s.verses...)
	}
	out := []model.Verse{}
	for _, v := range s.verses {
		if _, ok := s.selectedVerses[v.VerseNumber]; ok {
			out = append(out, v)
		}
	}
	return out
}

// AddBookmark bookmarks a verse of the current chapter, verse 1 when verse is 0.
func (s *State) AddBookmark(note string, verse int) (model.Bookmark, error) {
	if verse <= 0 {
		verse = 1
	}
	s.mu.Lock()
	book := catalog.Books[s.bookIndex]
	bm := model.Bookmark{
		BookID:   book.ID,
		BookName: book.Name,
		Chapter:  s.chapter,
		Verse:    verse,
		Note:     note,
	}
	for _, v := range s.verses {
		if v.VerseNumber == verse {
			bm.VerseText = v.Text
			break
		}
	}
	s.mu.Unlock()
	return s.deps.Bookmarks.Add(bm)
}

func (s *State) RemoveBookmark(id string) error {
	return s.deps.Bookmarks.Remove(id)
}

func (s *State) Bookmarks() []model.Bookmark {
	return s.deps.Bookmarks.List()
}

func (s *State) current() (string, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return catalog.Books[s.bookIndex].ID, s.selectedTranslation
}

func (s *State) DownloadCurrentBook(ctx context.Context) (worker.Report, error) {
	bookID, tr := s.current()
	return s.deps.Downloads.DownloadBook(ctx, tr, bookID)
}

func (s *State) RemoveDownloadedBook() error {
	bookID, tr := s.current()
	return s.deps.Downloads.RemoveDownloadedBook(bookID, tr)
}

func (s *State) IsBookDownloaded() bool {
	bookID, tr := s.current()
	return s.deps.Downloads.IsBookDownloaded(bookID, tr)
}
