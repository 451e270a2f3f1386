package store

import (
	"strconv"

	"github.com/Xunop/e-verse/internal/log"
	"github.com/Xunop/e-verse/internal/model"
	"go.uber.org/zap"
)

// Settings reads and writes reader preferences. Scalars are stored as plain
// strings, lists as JSON.
type Settings struct {
	kv KV
}

func NewSettings(kv KV) *Settings {
	return &Settings{kv: kv}
}

func (s *Settings) SelectedTranslation() string {
	if v, ok := s.kv.Get(model.KeySelectedTranslation); ok && v != "" {
		return v
	}
	return model.DefaultTranslationID
}

func (s *Settings) SetSelectedTranslation(id string) error {
	return s.kv.Set(model.KeySelectedTranslation, id)
}

func (s *Settings) FontSize() float64 {
	v, ok := s.kv.Get(model.KeyFontSize)
	if !ok {
		return model.DefaultFontSize
	}
	size, err := strconv.ParseFloat(v, 64)
	if err != nil {
		log.Debug("Invalid font size", zap.String("value", v))
		return model.DefaultFontSize
	}
	return model.ClampFontSize(size)
}

func (s *Settings) SetFontSize(size float64) error {
	return s.kv.Set(model.KeyFontSize, strconv.FormatFloat(size, 'f', -1, 64))
}

func (s *Settings) HighContrast() bool {
	return s.getBool(model.KeyHighContrast)
}

func (s *Settings) SetHighContrast(enabled bool) error {
	return s.kv.Set(model.KeyHighContrast, strconv.FormatBool(enabled))
}

func (s *Settings) SepiaMode() bool {
	return s.getBool(model.KeySepiaMode)
}

func (s *Settings) SetSepiaMode(enabled bool) error {
	return s.kv.Set(model.KeySepiaMode, strconv.FormatBool(enabled))
}

func (s *Settings) ThemeMode() model.ThemeMode {
	v, _ := s.kv.Get(model.KeyThemeMode)
	if mode := model.ThemeMode(v); mode.Valid() {
		return mode
	}
	return model.DefaultThemeMode
}

func (s *Settings) SetThemeMode(mode model.ThemeMode) error {
	return s.kv.Set(model.KeyThemeMode, string(mode))
}

// TranslationsOrder is the user's preferred display order of selected translations.
func (s *Settings) TranslationsOrder() []string {
	order, _ := GetJSON[[]string](s.kv, model.KeyTranslationsOrder)
	return order
}

func (s *Settings) SetTranslationsOrder(order []string) error {
	return SetJSON(s.kv, model.KeyTranslationsOrder, order)
}

func (s *Settings) CachedTranslations() []model.Translation {
	list, _ := GetJSON[[]model.Translation](s.kv, model.KeyCachedTranslations)
	return list
}

func (s *Settings) SetCachedTranslations(list []model.Translation) error {
	return SetJSON(s.kv, model.KeyCachedTranslations, list)
}

func (s *Settings) getBool(key string) bool {
	v, ok := s.kv.Get(key)
	if !ok {
		return false
	}
	b, err := strconv.ParseBool(v)
	return err == nil && b
}
