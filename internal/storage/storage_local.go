package storage // import "github.com/Xunop/e-verse/internal/storage"

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
	"os"
	"path/filepath"

	"github.com/Xunop/e-verse/internal/log"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const exportDirName = "exports"

// LocalStorage keeps export files below a directory of the data folder.
type LocalStorage struct {
	// Path to the storage directory
	Path string
}

func NewLocalStorage(dataDir string) *LocalStorage {
	return &LocalStorage{Path: filepath.Join(dataDir, exportDirName)}
}

// Resolve maps a bare file name into the storage directory. Paths with a
// directory component are returned unchanged.
func (s *LocalStorage) Resolve(name string) string {
	if filepath.Base(name) != name {
		return name
	}
	return filepath.Join(s.Path, name)
}

// Save streams write into name. The file only appears once fully written,
// a failed write leaves any previous file intact.
func (s *LocalStorage) Save(name string, write func(w io.Writer) error) (string, error) {
	target := s.Resolve(name)
	dir := filepath.Dir(target)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", errors.Wrapf(err, "failed to create directory %s", dir)
	}

	tmp, err := os.CreateTemp(dir, ".tmp-"+filepath.Base(target)+"-*")
	if err != nil {
		return "", errors.Wrap(err, "failed to create temp file")
	}
	defer os.Remove(tmp.Name())

	hash := sha256.New()
	if err := write(io.MultiWriter(tmp, hash)); err != nil {
		tmp.Close()
		return "", err
	}
	if err := tmp.Close(); err != nil {
		return "", errors.Wrap(err, "failed to close temp file")
	}
	if err := os.Rename(tmp.Name(), target); err != nil {
		return "", errors.Wrapf(err, "failed to move file to %s", target)
	}

	log.Debug("Stored file", zap.String("path", target), zap.String("hash", hex.EncodeToString(hash.Sum(nil))))
	return target, nil
}

// Open opens name for reading. The caller closes it.
func (s *LocalStorage) Open(name string) (io.ReadCloser, error) {
	f, err := os.Open(s.Resolve(name))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open %s", name)
	}
	return f, nil
}
