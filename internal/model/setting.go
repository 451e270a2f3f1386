package model

// Keys of the persistent store. They are part of the on-disk format.
const (
	KeyCachedTranslations  = "cached_translations"
	KeyBookmarks           = "bookmarks"
	KeyReadingProgress     = "reading_progress"
	KeySelectedTranslation = "selected_translation"
	KeyFontSize            = "font_size"
	KeyHighContrast        = "high_contrast"
	KeySepiaMode           = "sepia_mode"
	KeyThemeMode           = "theme_mode"
	KeyDownloadedChapters  = "downloaded_chapters"
	KeyTranslationsOrder   = "translations_order"
)

type ThemeMode string

const (
	ThemeLight ThemeMode = "light"
	ThemeDark  ThemeMode = "dark"
	ThemeSepia ThemeMode = "sepia"
)

func (m ThemeMode) Valid() bool {
	switch m {
	case ThemeLight, ThemeDark, ThemeSepia:
		return true
	}
	return false
}

const (
	DefaultFontSize  = 16
	MinFontSize      = 12
	MaxFontSize      = 32
	DefaultThemeMode = ThemeDark
)

func ClampFontSize(size float64) float64 {
	if size < MinFontSize {
		return MinFontSize
	}
	if size > MaxFontSize {
		return MaxFontSize
	}
	return size
}
