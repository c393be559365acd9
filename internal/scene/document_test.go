package scene

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultDocument(t *testing.T) {
	doc := DefaultDocument()

	assert.Equal(t, 336, doc.Width)
	assert.Equal(t, 336, doc.Height)

	for _, id := range []string{"root", "background", "hours", "minutes", "ampm", "day", "date", "sep", "batteryIndicator", "hr", "steps", "cals"} {
		assert.NotNil(t, doc.GetElementByID(id), "missing %s", id)
	}

	root := doc.GetElementByID("root")
	assert.Equal(t, 336, root.Width)
	assert.Equal(t, KindContainer, root.Kind)
}

func TestDefaultDocumentIsFresh(t *testing.T) {
	a := DefaultDocument()
	b := DefaultDocument()

	a.GetElementByID("hours").Text = "12"
	assert.Equal(t, "--", b.GetElementByID("hours").Text)
}

func TestGetElementByIDMissing(t *testing.T) {
	doc := DefaultDocument()
	assert.Nil(t, doc.GetElementByID("nope"))
}

func TestGetElementsByClass(t *testing.T) {
	doc := DefaultDocument()

	background := doc.GetElementsByClass("background")
	require.Len(t, background, 1)
	assert.Equal(t, "background", background[0].ID)

	hidden := doc.GetElementsByClass("hide")
	assert.NotEmpty(t, hidden)
	for _, e := range hidden {
		assert.True(t, e.HasClass("hide"))
	}

	assert.Empty(t, doc.GetElementsByClass("missing"))
}

func TestLoadLayoutDefaults(t *testing.T) {
	doc, err := LoadLayout(strings.NewReader(`
width: 100
height: 50
elements:
  - id: label
    kind: text
    text: hello
  - id: faint
    kind: rect
    opacity: 0.25
`))
	require.NoError(t, err)

	label := doc.GetElementByID("label")
	require.NotNil(t, label)
	assert.Equal(t, "hello", label.Text)
	assert.Equal(t, AnchorStart, label.Anchor)
	assert.Equal(t, 1.0, label.Style.Opacity)
	assert.True(t, label.Visible())

	assert.Equal(t, 0.25, doc.GetElementByID("faint").Style.Opacity)
	assert.Len(t, doc.Elements(), 2)
}

func TestLoadLayoutErrors(t *testing.T) {
	tests := []struct {
		name   string
		layout string
	}{
		{"bad yaml", "width: [1"},
		{"no size", "elements: []"},
		{"unknown kind", "width: 1\nheight: 1\nelements:\n  - id: a\n    kind: circle\n"},
		{"duplicate id", "width: 1\nheight: 1\nelements:\n  - id: a\n    kind: text\n  - id: a\n    kind: text\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadLayout(strings.NewReader(tt.layout))
			assert.Error(t, err)
		})
	}
}

func TestLoadLayoutFileMissing(t *testing.T) {
	_, err := LoadLayoutFile(t.TempDir() + "/missing.yaml")
	assert.Error(t, err)
}

func TestMouseUp(t *testing.T) {
	e := &Element{ID: "background"}
	e.MouseUp() // no handler, no panic

	calls := 0
	e.SetOnMouseUp(func() { calls++ })
	e.MouseUp()
	e.MouseUp()

	assert.Equal(t, 2, calls)
}
