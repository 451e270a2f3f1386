package state

import (
	"github.com/Xunop/e-verse/internal/log"
	"github.com/Xunop/e-verse/internal/model"
	"go.uber.org/zap"
)

// SetFontSize clamps size to the supported range and returns the stored value.
func (s *State) SetFontSize(size float64) float64 {
	size = model.ClampFontSize(size)
	s.mu.Lock()
	s.fontSize = size
	s.mu.Unlock()
	if err := s.deps.Settings.SetFontSize(size); err != nil {
		log.Warn("Unable to save font size", zap.Error(err))
	}
	s.publish(EventSettings)
	s.saveProgress()
	return size
}

func (s *State) SetHighContrast(enabled bool) {
	s.mu.Lock()
	s.highContrast = enabled
	s.mu.Unlock()
	if err := s.deps.Settings.SetHighContrast(enabled); err != nil {
		log.Warn("Unable to save high contrast", zap.Error(err))
	}
	s.publish(EventSettings)
}

// SetSepiaMode turning sepia on also switches the theme to sepia.
func (s *State) SetSepiaMode(enabled bool) {
	s.mu.Lock()
	s.sepiaMode = enabled
	if enabled {
		s.themeMode = model.ThemeSepia
	}
	s.mu.Unlock()
	if err := s.deps.Settings.SetSepiaMode(enabled); err != nil {
		log.Warn("Unable to save sepia mode", zap.Error(err))
	}
	if enabled {
		if err := s.deps.Settings.SetThemeMode(model.ThemeSepia); err != nil {
			log.Warn("Unable to save theme", zap.Error(err))
		}
	}
	s.publish(EventSettings)
}

// SetThemeMode keeps the sepia flag in step with the theme.
func (s *State) SetThemeMode(mode model.ThemeMode) {
	if !mode.Valid() {
		return
	}
	s.mu.Lock()
	s.themeMode = mode
	s.sepiaMode = mode == model.ThemeSepia
	s.mu.Unlock()
	if err := s.deps.Settings.SetThemeMode(mode); err != nil {
		log.Warn("Unable to save theme", zap.Error(err))
	}
	if err := s.deps.Settings.SetSepiaMode(mode == model.ThemeSepia); err != nil {
		log.Warn("Unable to save sepia mode", zap.Error(err))
	}
	s.publish(EventSettings)
}
