package scene

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed layout.yaml
var defaultLayout []byte

// Document is an ordered set of elements; later elements paint over earlier ones.
type Document struct {
	Width    int
	Height   int
	elements []*Element
	byID     map[string]*Element
}

// NewDocument creates a document from elements. Ids must be unique.
func NewDocument(width, height int, elements []*Element) (*Document, error) {
	doc := &Document{
		Width:  width,
		Height: height,
		byID:   make(map[string]*Element, len(elements)),
	}
	for _, e := range elements {
		if e.ID != "" {
			if _, dup := doc.byID[e.ID]; dup {
				return nil, fmt.Errorf("duplicate element id %q", e.ID)
			}
			doc.byID[e.ID] = e
		}
		doc.elements = append(doc.elements, e)
	}
	return doc, nil
}

// GetElementByID returns the element with the id, or nil.
func (d *Document) GetElementByID(id string) *Element {
	return d.byID[id]
}

// GetElementsByClass returns every element carrying the class, in document order.
func (d *Document) GetElementsByClass(class string) []*Element {
	var out []*Element
	for _, e := range d.elements {
		if e.HasClass(class) {
			out = append(out, e)
		}
	}
	return out
}

// Elements returns all elements in paint order.
func (d *Document) Elements() []*Element {
	return d.elements
}

type layoutFile struct {
	Width    int             `yaml:"width"`
	Height   int             `yaml:"height"`
	Elements []layoutElement `yaml:"elements"`
}

type layoutElement struct {
	ID      string   `yaml:"id"`
	Class   []string `yaml:"class"`
	Kind    Kind     `yaml:"kind"`
	Text    string   `yaml:"text"`
	Anchor  Anchor   `yaml:"anchor"`
	X       int      `yaml:"x"`
	Y       int      `yaml:"y"`
	Width   int      `yaml:"width"`
	Height  int      `yaml:"height"`
	X1      int      `yaml:"x1"`
	Y1      int      `yaml:"y1"`
	X2      int      `yaml:"x2"`
	Y2      int      `yaml:"y2"`
	Fill    string   `yaml:"fill"`
	Opacity *float64 `yaml:"opacity"`
}

// LoadLayout parses a YAML layout.
func LoadLayout(r io.Reader) (*Document, error) {
	var lf layoutFile
	if err := yaml.NewDecoder(r).Decode(&lf); err != nil {
		return nil, fmt.Errorf("failed to decode layout: %w", err)
	}
	if lf.Width <= 0 || lf.Height <= 0 {
		return nil, fmt.Errorf("layout size must be positive, got %dx%d", lf.Width, lf.Height)
	}

	elements := make([]*Element, 0, len(lf.Elements))
	for i, le := range lf.Elements {
		switch le.Kind {
		case KindContainer, KindRect, KindText, KindLine:
		default:
			return nil, fmt.Errorf("element %d (%q): unknown kind %q", i, le.ID, le.Kind)
		}
		e := &Element{
			ID:     le.ID,
			Class:  le.Class,
			Kind:   le.Kind,
			Text:   le.Text,
			Anchor: le.Anchor,
			X:      le.X,
			Y:      le.Y,
			Width:  le.Width,
			Height: le.Height,
			X1:     le.X1,
			Y1:     le.Y1,
			X2:     le.X2,
			Y2:     le.Y2,
			Style:  Style{Fill: le.Fill, Opacity: 1},
		}
		if e.Anchor == "" {
			e.Anchor = AnchorStart
		}
		if le.Opacity != nil {
			e.Style.Opacity = *le.Opacity
		}
		elements = append(elements, e)
	}
	return NewDocument(lf.Width, lf.Height, elements)
}

// LoadLayoutFile parses a YAML layout from disk.
func LoadLayoutFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open layout: %w", err)
	}
	defer f.Close()
	return LoadLayout(f)
}

// DefaultDocument returns a fresh copy of the built-in 336x336 layout.
func DefaultDocument() *Document {
	doc, err := LoadLayout(bytes.NewReader(defaultLayout))
	if err != nil {
		panic(fmt.Sprintf("embedded layout is invalid: %v", err))
	}
	return doc
}
