package controls

import (
	"math"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/go-drift/arbor/pkg/graphics"
	"github.com/go-drift/arbor/pkg/layout"
	"github.com/go-drift/arbor/pkg/property"
	"github.com/go-drift/arbor/pkg/visual"
)

// TextBlockType is the element type of TextBlock.
var TextBlockType = visual.NewType("TextBlock", ControlType)

// TextProperty is the text a TextBlock shows.
var TextProperty = property.Register("TextBlock", "Text", "")

func init() {
	layout.AffectsMeasure(TextProperty)
}

// TextBlock is a leaf that sizes itself to its text. Lines are separated by
// "\n" and are never wrapped.
type TextBlock struct {
	Control

	face font.Face
}

// NewTextBlock returns a text block showing text in the default face.
func NewTextBlock(text string) *TextBlock {
	t := &TextBlock{}
	t.SetSelf(t)
	t.SetText(text)
	return t
}

// ElementType returns TextBlockType.
func (t *TextBlock) ElementType() *visual.Type {
	return TextBlockType
}

func (t *TextBlock) Text() string {
	return property.Get(t.Properties(), TextProperty)
}

func (t *TextBlock) SetText(s string) {
	property.Set(t.Properties(), t.Self(), TextProperty, s)
}

// Face returns the font face used for measurement. It defaults to the 7x13
// bitmap face.
func (t *TextBlock) Face() font.Face {
	if t.face == nil {
		return basicfont.Face7x13
	}
	return t.face
}

// SetFace changes the font face.
func (t *TextBlock) SetFace(face font.Face) {
	t.face = face
	t.InvalidateMeasure()
}

// MeasureOverride returns the advance of the widest line by the line
// height times the number of lines.
func (t *TextBlock) MeasureOverride(available graphics.Size) (graphics.Size, error) {
	text := t.Text()
	if text == "" {
		return graphics.Size{}, nil
	}
	face := t.Face()
	lines := strings.Split(text, "\n")
	width := 0.0
	for _, line := range lines {
		width = math.Max(width, float64(font.MeasureString(face, line).Ceil()))
	}
	height := float64(face.Metrics().Height.Ceil() * len(lines))
	return graphics.Size{Width: width, Height: height}, nil
}
