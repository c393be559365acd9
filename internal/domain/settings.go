package domain

import "strconv"

// Setting keys as stored by the settings store.
const (
	KeyBackgroundColor = "bgColor"
	KeyForegroundColor = "fgColor"
	KeyDisableSeconds  = "disableSeconds"
	KeyDisableMeridiem = "disableMeridiem"
	KeyDisableNeat     = "disableNeat"
)

// Default appearance.
const (
	DefaultBackgroundColor = "black"
	DefaultForegroundColor = "fb-aqua"
)

// Settings is the appearance snapshot delivered on every settings change.
type Settings struct {
	BackgroundColor string
	ForegroundColor string
	DisableSeconds  bool
	DisableMeridiem bool
	DisableNeat     bool
}

// DefaultSettings returns the settings used before anything is stored.
func DefaultSettings() Settings {
	return Settings{
		BackgroundColor: DefaultBackgroundColor,
		ForegroundColor: DefaultForegroundColor,
	}
}

// Keys lists every setting key in display order.
func Keys() []string {
	return []string{
		KeyBackgroundColor,
		KeyForegroundColor,
		KeyDisableSeconds,
		KeyDisableMeridiem,
		KeyDisableNeat,
	}
}

// IsBoolKey reports whether the key holds a boolean flag.
func IsBoolKey(key string) bool {
	switch key {
	case KeyDisableSeconds, KeyDisableMeridiem, KeyDisableNeat:
		return true
	}
	return false
}

// Values returns the settings as key/value strings.
func (s Settings) Values() map[string]string {
	return map[string]string{
		KeyBackgroundColor: s.BackgroundColor,
		KeyForegroundColor: s.ForegroundColor,
		KeyDisableSeconds:  strconv.FormatBool(s.DisableSeconds),
		KeyDisableMeridiem: strconv.FormatBool(s.DisableMeridiem),
		KeyDisableNeat:     strconv.FormatBool(s.DisableNeat),
	}
}

// With returns a copy of s with one already-validated value applied.
// Unknown keys are ignored.
func (s Settings) With(key, value string) Settings {
	switch key {
	case KeyBackgroundColor:
		s.BackgroundColor = value
	case KeyForegroundColor:
		s.ForegroundColor = value
	case KeyDisableSeconds:
		s.DisableSeconds, _ = strconv.ParseBool(value)
	case KeyDisableMeridiem:
		s.DisableMeridiem, _ = strconv.ParseBool(value)
	case KeyDisableNeat:
		s.DisableNeat, _ = strconv.ParseBool(value)
	}
	return s
}
