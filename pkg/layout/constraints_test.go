package layout

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyLayoutConstraints(t *testing.T) {
	tests := []struct {
		name   string
		setup  func(e *testElement)
		input  float64
		expect float64
	}{
		{"unconstrained keeps input", func(e *testElement) {}, 50, 50},
		{"explicit width wins", func(e *testElement) { e.SetWidth(30) }, 50, 30},
		{"max clamps", func(e *testElement) { e.SetMaxWidth(20) }, 50, 20},
		{"min floors", func(e *testElement) { e.SetMinWidth(80) }, 50, 80},
		{"min wins over max", func(e *testElement) { e.SetMinWidth(40); e.SetMaxWidth(10) }, 50, 40},
		{"explicit width still clamped", func(e *testElement) { e.SetWidth(100); e.SetMaxWidth(60) }, 50, 60},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestElement("e")
			tt.setup(e)
			got := ApplyLayoutConstraints(e, size(tt.input, tt.input))
			assert.Equal(t, tt.expect, got.Width)
		})
	}
}

func TestIsResizable(t *testing.T) {
	e := newTestElement("e")
	assert.True(t, IsResizable(e))

	e.SetWidth(10)
	assert.True(t, IsResizable(e), "height still unset")

	e.SetHeight(10)
	assert.False(t, IsResizable(e))

	e.SetWidth(math.NaN())
	assert.True(t, IsResizable(e))
}

func TestParseAlignment(t *testing.T) {
	h, err := ParseHorizontalAlignment("End")
	require.NoError(t, err)
	assert.Equal(t, HorizontalRight, h)

	v, err := ParseVerticalAlignment(" center ")
	require.NoError(t, err)
	assert.Equal(t, VerticalCenter, v)

	_, err = ParseHorizontalAlignment("diagonal")
	assert.Error(t, err)
	_, err = ParseVerticalAlignment("up")
	assert.Error(t, err)

	assert.Equal(t, "stretch", HorizontalStretch.String())
	assert.Equal(t, "bottom", VerticalBottom.String())
}
