package config

import (
	"time"

	"fyne.io/fyne/v2"
)

// Settings keys for Fyne preferences
const (
	KeyAPIBaseURL      = "api_base_url"
	KeyRotationSeconds = "rotation_interval_seconds"
	KeyFeedPageSize    = "feed_page_size"
	KeyLanguage        = "app_language"
	KeyMobileView      = "mobile_view"
)

// Default values
const (
	DefaultAPIBaseURL      = "https://api.vidscope.app/v1"
	DefaultRotationSeconds = 5
	MinRotationSeconds     = 2
	MaxRotationSeconds     = 30
	DefaultFeedPageSize    = 24
	MinFeedPageSize        = 8
	MaxFeedPageSize        = 96
	DefaultLanguage        = "system"
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetAPIBaseURL returns the configured backend base URL
func (s *Settings) GetAPIBaseURL() string {
	url := s.app.Preferences().String(KeyAPIBaseURL)
	if url == "" {
		s.SetAPIBaseURL(DefaultAPIBaseURL)
		return DefaultAPIBaseURL
	}
	return url
}

// SetAPIBaseURL sets the backend base URL
func (s *Settings) SetAPIBaseURL(url string) {
	s.app.Preferences().SetString(KeyAPIBaseURL, url)
}

// GetRotationInterval returns the trending rotation interval
func (s *Settings) GetRotationInterval() time.Duration {
	seconds := s.app.Preferences().Int(KeyRotationSeconds)
	if seconds <= 0 {
		s.SetRotationSeconds(DefaultRotationSeconds)
		return DefaultRotationSeconds * time.Second
	}
	return time.Duration(seconds) * time.Second
}

// SetRotationSeconds sets the trending rotation interval in seconds
func (s *Settings) SetRotationSeconds(seconds int) {
	if seconds < MinRotationSeconds {
		seconds = MinRotationSeconds
	}
	if seconds > MaxRotationSeconds {
		seconds = MaxRotationSeconds
	}
	s.app.Preferences().SetInt(KeyRotationSeconds, seconds)
}

// GetFeedPageSize returns the number of items requested per feed page
func (s *Settings) GetFeedPageSize() int {
	size := s.app.Preferences().Int(KeyFeedPageSize)
	if size <= 0 {
		s.SetFeedPageSize(DefaultFeedPageSize)
		return DefaultFeedPageSize
	}
	return size
}

// SetFeedPageSize sets the feed page size
func (s *Settings) SetFeedPageSize(size int) {
	if size < MinFeedPageSize {
		size = MinFeedPageSize
	}
	if size > MaxFeedPageSize {
		size = MaxFeedPageSize
	}
	s.app.Preferences().SetInt(KeyFeedPageSize, size)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the UI language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetMobileView returns the persisted mobile layout preference
func (s *Settings) GetMobileView() bool {
	return s.app.Preferences().Bool(KeyMobileView)
}

// SetMobileView persists the mobile layout preference
func (s *Settings) SetMobileView(mobile bool) {
	s.app.Preferences().SetBool(KeyMobileView, mobile)
}

// GetLanguageOptions returns the available UI languages
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System",
		"en":     "English",
		"de":     "Deutsch",
	}
}
