package timefmt

import (
	"fmt"
	"time"

	"golang.org/x/text/language"
)

// DefaultLocale is used when the requested locale is malformed or unsupported.
const DefaultLocale = "en-US"

type localeData struct {
	tag      language.Tag
	weekdays [7]string  // Sunday first
	months   [12]string // January first
	date     func(day int, month time.Month, name string) string
}

func monthDay(day int, _ time.Month, name string) string {
	return fmt.Sprintf("%s %d", name, day)
}

func dayMonth(day int, _ time.Month, name string) string {
	return fmt.Sprintf("%d %s", day, name)
}

// locales is ordered; the first entry is the fallback.
var locales = []localeData{
	{
		tag:      language.AmericanEnglish,
		weekdays: [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"},
		months:   [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
		date:     monthDay,
	},
	{
		tag:      language.BritishEnglish,
		weekdays: [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"},
		months:   [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
		date:     dayMonth,
	},
	{
		tag:      language.German,
		weekdays: [7]string{"So", "Mo", "Di", "Mi", "Do", "Fr", "Sa"},
		months:   [12]string{"Jan", "Feb", "Mär", "Apr", "Mai", "Jun", "Jul", "Aug", "Sep", "Okt", "Nov", "Dez"},
		date: func(day int, _ time.Month, name string) string {
			return fmt.Sprintf("%d. %s", day, name)
		},
	},
	{
		tag:      language.French,
		weekdays: [7]string{"dim.", "lun.", "mar.", "mer.", "jeu.", "ven.", "sam."},
		months:   [12]string{"janv.", "févr.", "mars", "avr.", "mai", "juin", "juil.", "août", "sept.", "oct.", "nov.", "déc."},
		date:     dayMonth,
	},
	{
		tag:      language.Spanish,
		weekdays: [7]string{"dom", "lun", "mar", "mié", "jue", "vie", "sáb"},
		months:   [12]string{"ene", "feb", "mar", "abr", "may", "jun", "jul", "ago", "sept", "oct", "nov", "dic"},
		date:     dayMonth,
	},
	{
		tag:      language.Italian,
		weekdays: [7]string{"dom", "lun", "mar", "mer", "gio", "ven", "sab"},
		months:   [12]string{"gen", "feb", "mar", "apr", "mag", "giu", "lug", "ago", "set", "ott", "nov", "dic"},
		date:     dayMonth,
	},
	{
		tag:      language.Dutch,
		weekdays: [7]string{"zo", "ma", "di", "wo", "do", "vr", "za"},
		months:   [12]string{"jan", "feb", "mrt", "apr", "mei", "jun", "jul", "aug", "sep", "okt", "nov", "dec"},
		date:     dayMonth,
	},
	{
		tag:      language.Portuguese,
		weekdays: [7]string{"dom", "seg", "ter", "qua", "qui", "sex", "sáb"},
		months:   [12]string{"jan", "fev", "mar", "abr", "mai", "jun", "jul", "ago", "set", "out", "nov", "dez"},
		date: func(day int, _ time.Month, name string) string {
			return fmt.Sprintf("%d de %s", day, name)
		},
	},
	{
		tag:      language.Swedish,
		weekdays: [7]string{"sön", "mån", "tis", "ons", "tors", "fre", "lör"},
		months:   [12]string{"jan", "feb", "mars", "apr", "maj", "juni", "juli", "aug", "sep", "okt", "nov", "dec"},
		date:     dayMonth,
	},
	{
		tag:      language.Japanese,
		weekdays: [7]string{"日", "月", "火", "水", "木", "金", "土"},
		months:   [12]string{"1月", "2月", "3月", "4月", "5月", "6月", "7月", "8月", "9月", "10月", "11月", "12月"},
		date: func(day int, _ time.Month, name string) string {
			return fmt.Sprintf("%s%d日", name, day)
		},
	},
}

var matcher = func() language.Matcher {
	tags := make([]language.Tag, len(locales))
	for i, l := range locales {
		tags[i] = l.tag
	}
	return language.NewMatcher(tags)
}()

// resolve picks the best supported locale for a BCP 47 identifier.
// Malformed or unmatched identifiers resolve to DefaultLocale.
func resolve(locale string) *localeData {
	tag, err := language.Parse(locale)
	if err != nil {
		return &locales[0]
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return &locales[0]
	}
	return &locales[idx]
}

// Supported lists the locales with their own weekday and date rendering.
func Supported() []string {
	out := make([]string, len(locales))
	for i, l := range locales {
		out[i] = l.tag.String()
	}
	return out
}
