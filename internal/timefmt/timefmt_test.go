package timefmt

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// 2026-10-17 is a Saturday.
func at(hour, minute int) time.Time {
	return time.Date(2026, time.October, 17, hour, minute, 0, 0, time.UTC)
}

func TestFormatHours12(t *testing.T) {
	assert.Equal(t, "12", FormatHours(0, true))
	assert.Equal(t, "12", FormatHours(12, true))
	assert.Equal(t, "1", FormatHours(1, true))
	assert.Equal(t, "1", FormatHours(13, true))
	assert.Equal(t, "11", FormatHours(23, true))

	for h := 0; h < 24; h++ {
		got := FormatHours(h, true)
		assert.NotEqual(t, "0", got, "hour %d", h)
		assert.NotEmpty(t, got)
	}
}

func TestFormatHours24(t *testing.T) {
	assert.Equal(t, "00", FormatHours(0, false))
	assert.Equal(t, "09", FormatHours(9, false))
	assert.Equal(t, "13", FormatHours(13, false))
	assert.Equal(t, "23", FormatHours(23, false))
}

func TestFormatMinutes(t *testing.T) {
	assert.Equal(t, "00", FormatMinutes(0))
	assert.Equal(t, "05", FormatMinutes(5))
	assert.Equal(t, "59", FormatMinutes(59))

	for m := 0; m < 60; m++ {
		assert.Len(t, FormatMinutes(m), 2, "minute %d", m)
	}
}

func TestFormatAmPm(t *testing.T) {
	assert.Equal(t, "AM", Format(at(11, 59), true, "en-US").AmPm)
	assert.Equal(t, "PM", Format(at(12, 0), true, "en-US").AmPm)
	assert.Equal(t, "AM", FormatAmPm(0))
	assert.Equal(t, "PM", FormatAmPm(23))
}

func TestFormatEnglish(t *testing.T) {
	f := Format(at(13, 5), true, "en-US")

	assert.Equal(t, "1", f.Hours)
	assert.Equal(t, "05", f.Minutes)
	assert.Equal(t, "PM", f.AmPm)
	assert.Equal(t, "Sat", f.Weekday)
	assert.Equal(t, "Oct 17", f.Date)
}

func TestFormat24Hour(t *testing.T) {
	f := Format(at(7, 30), false, "en-US")

	assert.Equal(t, "07", f.Hours)
	assert.Equal(t, "30", f.Minutes)
	assert.Equal(t, "AM", f.AmPm)
}

func TestFormatLocales(t *testing.T) {
	tests := []struct {
		locale  string
		weekday string
		date    string
	}{
		{"en-US", "Sat", "Oct 17"},
		{"en-GB", "Sat", "17 Oct"},
		{"de-DE", "Sa", "17. Okt"},
		{"fr-FR", "sam.", "17 oct."},
		{"es-ES", "sáb", "17 oct"},
		{"it-IT", "sab", "17 ott"},
		{"nl-NL", "za", "17 okt"},
		{"ja-JP", "土", "10月17日"},
	}

	for _, tt := range tests {
		t.Run(tt.locale, func(t *testing.T) {
			f := Format(at(9, 0), false, tt.locale)
			assert.Equal(t, tt.weekday, f.Weekday)
			assert.Equal(t, tt.date, f.Date)
		})
	}
}

func TestFormatFallbackLocale(t *testing.T) {
	for _, locale := range []string{"", "not a locale", "x-invalid-!!"} {
		f := Format(at(9, 0), false, locale)
		assert.Equal(t, "Sat", f.Weekday, "locale %q", locale)
		assert.Equal(t, "Oct 17", f.Date, "locale %q", locale)
	}
}

func TestFormatNeverEmpty(t *testing.T) {
	start := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	for _, locale := range Supported() {
		for d := 0; d < 366; d += 7 {
			for h := 0; h < 24; h++ {
				m := start.AddDate(0, 0, d).Add(time.Duration(h) * time.Hour)
				for _, use12 := range []bool{true, false} {
					f := Format(m, use12, locale)
					msg := fmt.Sprintf("%s %s 12h=%v", locale, m, use12)
					assert.NotEmpty(t, f.Hours, msg)
					assert.NotEmpty(t, f.Minutes, msg)
					assert.NotEmpty(t, f.AmPm, msg)
					assert.NotEmpty(t, f.Weekday, msg)
					assert.NotEmpty(t, f.Date, msg)
				}
			}
		}
	}
}

func TestSupported(t *testing.T) {
	supported := Supported()
	assert.Equal(t, DefaultLocale, supported[0])
	assert.Contains(t, supported, "de")
}
