package store

import (
	"encoding/json"

	"github.com/Xunop/e-verse/internal/log"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// GetJSON decodes the value at key. A missing or undecodable value yields the
// zero value and false.
func GetJSON[T any](kv KV, key string) (T, bool) {
	var v T
	raw, ok := kv.Get(key)
	if !ok {
		return v, false
	}
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		log.Debug("Discarding undecodable entry", zap.String("key", key), zap.Error(err))
		var zero T
		return zero, false
	}
	return v, true
}

func SetJSON(kv KV, key string, v interface{}) error {
	b, err := json.Marshal(v)
	if err != nil {
		return errors.Wrapf(err, "failed to marshal %s", key)
	}
	return kv.Set(key, string(b))
}
