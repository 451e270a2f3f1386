package storage

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
)

func TestSaveAndOpen(t *testing.T) {
	s := NewLocalStorage(t.TempDir())

	path, err := s.Save("bookmarks.json", func(w io.Writer) error {
		_, err := io.WriteString(w, `[{"id":"1"}]`)
		return err
	})
	if err != nil {
		t.Fatal(err)
	}
	if path != filepath.Join(s.Path, "bookmarks.json") {
		t.Errorf("path = %s", path)
	}

	rc, err := s.Open("bookmarks.json")
	if err != nil {
		t.Fatal(err)
	}
	defer rc.Close()
	b, _ := io.ReadAll(rc)
	if string(b) != `[{"id":"1"}]` {
		t.Errorf("content = %s", b)
	}
}

func TestFailedSaveKeepsPreviousFile(t *testing.T) {
	s := NewLocalStorage(t.TempDir())
	if _, err := s.Save("out.yaml", func(w io.Writer) error {
		_, err := io.WriteString(w, "old")
		return err
	}); err != nil {
		t.Fatal(err)
	}

	boom := errors.New("boom")
	_, err := s.Save("out.yaml", func(w io.Writer) error {
		io.WriteString(w, "partial")
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v", err)
	}
	b, _ := os.ReadFile(filepath.Join(s.Path, "out.yaml"))
	if string(b) != "old" {
		t.Errorf("content = %s", b)
	}
	entries, _ := os.ReadDir(s.Path)
	if len(entries) != 1 {
		t.Errorf("temp files left behind: %d entries", len(entries))
	}
}

func TestResolveKeepsExplicitPaths(t *testing.T) {
	s := NewLocalStorage("/data")
	if got := s.Resolve("a.json"); got != filepath.Join("/data", "exports", "a.json") {
		t.Errorf("bare name = %s", got)
	}
	explicit := filepath.Join("tmp", "a.json")
	if got := s.Resolve(explicit); got != explicit {
		t.Errorf("explicit = %s", got)
	}
}
