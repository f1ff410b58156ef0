// Package document reads YAML scene documents and builds control trees from
// them.
//
// A scene names a format version, an optional client size and one root
// element:
//
//	version: v1.0.0
//	size: {width: 400, height: 300}
//	root:
//	  type: border
//	  name: frame
//	  padding: 10
//	  borderThickness: 1
//	  child:
//	    type: stack
//	    spacing: 4
//	    children:
//	      - {type: text, text: Hello}
//	      - {type: text, text: World, horizontalAlignment: center}
package document

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/arbor/pkg/graphics"
)

// CurrentVersion is the newest scene format this build understands. Documents
// with the same major version and a version not newer than this are accepted.
const CurrentVersion = "v1.0.0"

// Document is a parsed scene.
type Document struct {
	Version string   `yaml:"version"`
	Size    *Size    `yaml:"size,omitempty"`
	Root    *Element `yaml:"root"`
}

// Size is the client size requested by a scene.
type Size struct {
	Width  float64 `yaml:"width" validate:"gt=0"`
	Height float64 `yaml:"height" validate:"gt=0"`
}

// Element describes one control. Which fields apply depends on Type.
type Element struct {
	Type string `yaml:"type" validate:"required,oneof=border decorator stack panel text"`
	Name string `yaml:"name,omitempty"`

	Width     *float64 `yaml:"width,omitempty" validate:"omitempty,gte=0"`
	Height    *float64 `yaml:"height,omitempty" validate:"omitempty,gte=0"`
	MinWidth  *float64 `yaml:"minWidth,omitempty" validate:"omitempty,gte=0"`
	MinHeight *float64 `yaml:"minHeight,omitempty" validate:"omitempty,gte=0"`
	MaxWidth  *float64 `yaml:"maxWidth,omitempty" validate:"omitempty,gte=0"`
	MaxHeight *float64 `yaml:"maxHeight,omitempty" validate:"omitempty,gte=0"`

	Margin              *Thickness `yaml:"margin,omitempty"`
	HorizontalAlignment string     `yaml:"horizontalAlignment,omitempty"`
	VerticalAlignment   string     `yaml:"verticalAlignment,omitempty"`

	Visible        *bool `yaml:"visible,omitempty"`
	Enabled        *bool `yaml:"enabled,omitempty"`
	Focusable      bool  `yaml:"focusable,omitempty"`
	HitTestVisible *bool `yaml:"hitTestVisible,omitempty"`

	// border and decorator
	Padding         *Thickness `yaml:"padding,omitempty"`
	BorderThickness float64    `yaml:"borderThickness,omitempty" validate:"gte=0"`
	Child           *Element   `yaml:"child,omitempty" validate:"-"`

	// stack and panel
	Orientation string     `yaml:"orientation,omitempty"`
	Spacing     float64    `yaml:"spacing,omitempty" validate:"gte=0"`
	Children    []*Element `yaml:"children,omitempty" validate:"-"`

	// text
	Text string `yaml:"text,omitempty"`
}

// Thickness is a margin or padding written as one value for every side,
// "horizontal,vertical", "left,top,right,bottom", or a sequence of those.
type Thickness graphics.Thickness

// UnmarshalYAML implements yaml.Unmarshaler.
func (t *Thickness) UnmarshalYAML(node *yaml.Node) error {
	var values []float64
	switch node.Kind {
	case yaml.SequenceNode:
		if err := node.Decode(&values); err != nil {
			return err
		}
	case yaml.ScalarNode:
		parsed, err := ParseThickness(node.Value)
		if err != nil {
			return fmt.Errorf("line %d: %w", node.Line, err)
		}
		*t = Thickness(parsed)
		return nil
	default:
		return fmt.Errorf("line %d: thickness must be a scalar or a sequence", node.Line)
	}
	parsed, err := thicknessFrom(values)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*t = Thickness(parsed)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (t Thickness) MarshalYAML() (any, error) {
	return graphics.Thickness(t).String(), nil
}

// Parse decodes a scene. Unknown fields are rejected. The result is not
// validated.
func Parse(r io.Reader) (*Document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("empty scene document")
		}
		return nil, fmt.Errorf("failed to decode scene document: %w", err)
	}
	return &doc, nil
}

// Load reads, parses and validates the scene at path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene: %w", err)
	}
	doc, err := Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if err := doc.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// ClientSize returns the scene's size, or fallback when it declares none.
func (d *Document) ClientSize(fallback graphics.Size) graphics.Size {
	if d.Size == nil {
		return fallback
	}
	return graphics.Size{Width: d.Size.Width, Height: d.Size.Height}
}
