package domain

import "strings"

// Platform tags the origin of a review row.
type Platform string

const (
	PlatformAppStore       Platform = "app_store"
	PlatformAppStoreDummy  Platform = "app_store_dummy"
	PlatformPlayStore      Platform = "google_play"
	PlatformPlayStoreDummy Platform = "google_play_dummy"
	PlatformFacebook       Platform = "facebook"
)

// DataSource values recorded on every row.
const (
	DataSourceLive      = "live"
	DataSourceSynthetic = "synthetic"
)

const fallbackSuffix = "_dummy"

// Fallback returns the tag used when synthetic rows stand in for this platform.
func (p Platform) Fallback() Platform {
	if p.IsFallback() {
		return p
	}
	return p + fallbackSuffix
}

// IsFallback reports whether the tag marks substituted synthetic rows.
func (p Platform) IsFallback() bool {
	return strings.HasSuffix(string(p), fallbackSuffix)
}

// Code is the upper-case two letter prefix used in synthetic review ids.
func (p Platform) Code() string {
	return prefixCode(string(p), 2)
}

func prefixCode(value string, width int) string {
	runes := []rune(value)
	if len(runes) > width {
		runes = runes[:width]
	}
	return strings.ToUpper(string(runes))
}
