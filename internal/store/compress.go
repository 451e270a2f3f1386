package store

import (
	"bytes"
	"io"

	"github.com/andybalholm/brotli"
	"github.com/pkg/errors"
)

const (
	encodingPlain  = "plain"
	encodingBrotli = "br"
)

func encodeValue(value string, threshold int) ([]byte, string, error) {
	if threshold <= 0 || len(value) < threshold {
		return []byte(value), encodingPlain, nil
	}

	var buf bytes.Buffer
	w := brotli.NewWriterLevel(&buf, brotli.DefaultCompression)
	if _, err := w.Write([]byte(value)); err != nil {
		w.Close()
		return nil, "", err
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return buf.Bytes(), encodingBrotli, nil
}

func decodeValue(raw []byte, encoding string) (string, error) {
	switch encoding {
	case encodingPlain, "":
		return string(raw), nil
	case encodingBrotli:
		b, err := io.ReadAll(brotli.NewReader(bytes.NewReader(raw)))
		if err != nil {
			return "", err
		}
		return string(b), nil
	default:
		return "", errors.Errorf("unknown encoding %q", encoding)
	}
}
