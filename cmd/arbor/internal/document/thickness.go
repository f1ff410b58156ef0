package document

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/go-drift/arbor/pkg/graphics"
)

// ParseThickness parses "u", "h,v" or "l,t,r,b". Sides must be finite and
// not negative.
func ParseThickness(s string) (graphics.Thickness, error) {
	parts := strings.Split(s, ",")
	values := make([]float64, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return graphics.Thickness{}, fmt.Errorf("invalid thickness %q", s)
		}
		values = append(values, v)
	}
	return thicknessFrom(values)
}

func thicknessFrom(values []float64) (graphics.Thickness, error) {
	var t graphics.Thickness
	switch len(values) {
	case 1:
		t = graphics.UniformThickness(values[0])
	case 2:
		t = graphics.SymmetricThickness(values[0], values[1])
	case 4:
		t = graphics.Thickness{Left: values[0], Top: values[1], Right: values[2], Bottom: values[3]}
	default:
		return graphics.Thickness{}, fmt.Errorf("thickness needs 1, 2 or 4 values, got %d", len(values))
	}
	for _, v := range values {
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return graphics.Thickness{}, fmt.Errorf("thickness values must be finite and not negative, got %v", values)
		}
	}
	return t, nil
}
