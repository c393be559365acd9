package render

import (
	"strconv"
	"strings"

	"github.com/jwulff/neatface-go/internal/domain"
)

// Battery indicator endpoints.
const (
	ColorBatteryLow  = "#d30000"
	ColorBatteryHigh = "#3bb143"
)

// ColorNeutral is painted on colored elements while the face is dimmed.
const ColorNeutral = "white"

// Palette maps named system colors to RGB.
var Palette = map[string]domain.RGB{
	"black":      domain.NewRGB(0x00, 0x00, 0x00),
	"white":      domain.NewRGB(0xff, 0xff, 0xff),
	"fb-aqua":    domain.NewRGB(0x3b, 0xf7, 0xde),
	"fb-black":   domain.NewRGB(0x00, 0x00, 0x00),
	"fb-blue":    domain.NewRGB(0x31, 0x82, 0xde),
	"fb-cyan":    domain.NewRGB(0x14, 0xd3, 0xf5),
	"fb-green":   domain.NewRGB(0x00, 0xa6, 0x29),
	"fb-lime":    domain.NewRGB(0xb8, 0xfc, 0x68),
	"fb-magenta": domain.NewRGB(0xf8, 0x00, 0x70),
	"fb-orange":  domain.NewRGB(0xff, 0x75, 0x2d),
	"fb-peach":   domain.NewRGB(0xff, 0xcc, 0x33),
	"fb-pink":    domain.NewRGB(0xff, 0x78, 0xb7),
	"fb-purple":  domain.NewRGB(0xc6, 0x58, 0xfb),
	"fb-red":     domain.NewRGB(0xf8, 0x3c, 0x40),
	"fb-white":   domain.NewRGB(0xff, 0xff, 0xff),
	"fb-yellow":  domain.NewRGB(0xe4, 0xfa, 0x3c),
}

// ResolveColor turns a palette name or "#rrggbb" string into RGB.
func ResolveColor(name string) (domain.RGB, bool) {
	if c, ok := Palette[strings.ToLower(name)]; ok {
		return c, true
	}
	c, err := domain.ParseHex(name)
	if err != nil {
		return domain.RGB{}, false
	}
	return c, true
}

// LerpHex linearly interpolates between two "#rrggbb" colors, truncating each
// channel toward zero. Amounts outside [0,1] extrapolate and malformed input
// parses as black; neither is reported.
func LerpHex(a, b string, amount float64) string {
	ah := parseHex24(a)
	ar, ag, ab := ah>>16, (ah>>8)&0xff, ah&0xff

	bh := parseHex24(b)
	br, bg, bb := bh>>16, (bh>>8)&0xff, bh&0xff

	rr := int32(float64(ar) + amount*float64(br-ar))
	rg := int32(float64(ag) + amount*float64(bg-ag))
	rb := int32(float64(ab) + amount*float64(bb-ab))

	v := (1 << 24) + (rr << 16) + (rg << 8) + rb
	return "#" + strconv.FormatInt(int64(v), 16)[1:]
}

func parseHex24(s string) int32 {
	v, err := strconv.ParseInt(strings.ReplaceAll(s, "#", ""), 16, 64)
	if err != nil {
		return 0
	}
	return int32(v)
}
