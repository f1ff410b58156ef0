package testing

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-drift/arbor/pkg/controls"
	"github.com/go-drift/arbor/pkg/graphics"
	"github.com/go-drift/arbor/pkg/layout"
	"github.com/go-drift/arbor/pkg/tree"
	"github.com/go-drift/arbor/pkg/visual"
)

// Snapshot captures the shape and geometry of a laid-out tree.
type Snapshot struct {
	Tree *Node `json:"tree"`
}

// Node represents an element in the serialized tree.
type Node struct {
	ID       string         `json:"id"`
	Type     string         `json:"type"`
	Name     string         `json:"name,omitempty"`
	Desired  *[2]float64    `json:"desired,omitempty"`
	Bounds   [4]float64     `json:"bounds"`
	Props    map[string]any `json:"props,omitempty"`
	Children []*Node        `json:"children,omitempty"`
}

// CaptureSnapshot captures the tree under root. Elements without a valid
// measure are recorded without a desired size.
func CaptureSnapshot(root tree.Node) *Snapshot {
	snap := &Snapshot{}
	if root != nil {
		snap.Tree = captureNode(root, &typeCounter{})
	}
	return snap
}

// MatchesFile compares this snapshot against a golden file. On mismatch it
// reports a diff and instructions for updating. When ARBOR_UPDATE_SNAPSHOTS=1
// is set, the file is silently updated instead.
func (s *Snapshot) MatchesFile(t TestingT, path string) {
	t.Helper()

	if os.Getenv("ARBOR_UPDATE_SNAPSHOTS") == "1" {
		if err := s.UpdateFile(path); err != nil {
			t.Fatalf("failed to update snapshot: %v", err)
		}
		return
	}

	expected, err := LoadSnapshot(path)
	if err != nil {
		if os.IsNotExist(err) {
			t.Fatalf("snapshot file missing: %s\n\nTo create: ARBOR_UPDATE_SNAPSHOTS=1 go test -run %s", path, t.Name())
			return
		}
		t.Fatalf("failed to load snapshot: %v", err)
		return
	}

	if diff := s.Diff(expected); diff != "" {
		t.Errorf("snapshot mismatch: %s\n%s\n\nTo update: ARBOR_UPDATE_SNAPSHOTS=1 go test -run %s", path, diff, t.Name())
	}
}

// UpdateFile writes this snapshot to the given path, creating directories
// as needed.
func (s *Snapshot) UpdateFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := s.MarshalIndent()
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// MarshalIndent returns the snapshot as indented JSON.
func (s *Snapshot) MarshalIndent() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Diff returns a line diff between other (expected) and this snapshot.
// Returns empty string if equal.
func (s *Snapshot) Diff(other *Snapshot) string {
	a, _ := s.MarshalIndent()
	b, _ := other.MarshalIndent()
	if bytes.Equal(a, b) {
		return ""
	}
	return unifiedDiff(string(b), string(a))
}

// WriteText writes the snapshot as an indented outline, one element per
// line.
func (s *Snapshot) WriteText(w io.Writer) error {
	if s.Tree == nil {
		return nil
	}
	return writeNode(w, s.Tree, 0)
}

func writeNode(w io.Writer, n *Node, depth int) error {
	label := n.ID
	if n.Name != "" {
		label += " " + n.Name
	}
	line := fmt.Sprintf("%s%s bounds=(%g,%g %gx%g)", strings.Repeat("  ", depth), label,
		n.Bounds[0], n.Bounds[1], n.Bounds[2], n.Bounds[3])
	if n.Desired != nil {
		line += fmt.Sprintf(" desired=%gx%g", n.Desired[0], n.Desired[1])
	}
	if _, err := fmt.Fprintln(w, line); err != nil {
		return err
	}
	for _, child := range n.Children {
		if err := writeNode(w, child, depth+1); err != nil {
			return err
		}
	}
	return nil
}

// LoadSnapshot reads a snapshot written by UpdateFile.
func LoadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("invalid snapshot JSON: %w", err)
	}
	return &snap, nil
}

// --- Internal ---

// typeCounter assigns stable IDs like "Border#0", "Border#1".
type typeCounter struct {
	counts map[string]int
}

func (c *typeCounter) next(typeName string) string {
	if c.counts == nil {
		c.counts = make(map[string]int)
	}
	n := c.counts[typeName]
	c.counts[typeName] = n + 1
	return fmt.Sprintf("%s#%d", typeName, n)
}

func captureNode(n tree.Node, counter *typeCounter) *Node {
	typeName := fmt.Sprintf("%T", n)
	if t := visual.TypeOf(n); t != nil {
		typeName = t.Name()
	}
	node := &Node{
		ID:   counter.next(typeName),
		Type: typeName,
	}
	if named, ok := n.(interface{ Name() string }); ok {
		node.Name = named.Name()
	}
	if e, ok := n.(layout.Element); ok {
		if desired, ok := e.DesiredSize(); ok {
			node.Desired = &[2]float64{round2(desired.Width), round2(desired.Height)}
		}
		b := e.Bounds()
		node.Bounds = [4]float64{round2(b.Left), round2(b.Top), round2(b.Width()), round2(b.Height())}
	}
	if props := captureProperties(n); len(props) > 0 {
		node.Props = props
	}
	for _, child := range n.Children() {
		node.Children = append(node.Children, captureNode(child, counter))
	}
	return node
}

// captureProperties records the content properties of the known controls.
func captureProperties(n tree.Node) map[string]any {
	props := make(map[string]any)
	switch e := n.(type) {
	case *controls.TextBlock:
		props["text"] = e.Text()
	case *controls.Border:
		if v := e.BorderThickness(); v != 0 {
			props["borderThickness"] = round2(v)
		}
		addThickness(props, "padding", e.Padding())
	case *controls.Decorator:
		addThickness(props, "padding", e.Padding())
	case *controls.StackPanel:
		props["orientation"] = e.Orientation().String()
		if v := e.Spacing(); v != 0 {
			props["spacing"] = round2(v)
		}
	}
	if m, ok := n.(interface{ Margin() graphics.Thickness }); ok {
		addThickness(props, "margin", m.Margin())
	}
	return props
}

func addThickness(props map[string]any, key string, t graphics.Thickness) {
	if !t.IsZero() {
		props[key] = t.String()
	}
}

func round2(f float64) float64 {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return f
	}
	return math.Round(f*100) / 100
}

// unifiedDiff produces a simple line-oriented diff.
func unifiedDiff(expected, actual string) string {
	expectedLines := strings.Split(expected, "\n")
	actualLines := strings.Split(actual, "\n")

	var buf strings.Builder
	buf.WriteString("--- expected\n+++ actual\n")

	maxLen := max(len(expectedLines), len(actualLines))
	for i := 0; i < maxLen; i++ {
		var e, a string
		if i < len(expectedLines) {
			e = expectedLines[i]
		}
		if i < len(actualLines) {
			a = actualLines[i]
		}
		if e != a {
			if i < len(expectedLines) {
				fmt.Fprintf(&buf, "-%s\n", e)
			}
			if i < len(actualLines) {
				fmt.Fprintf(&buf, "+%s\n", a)
			}
		}
	}

	return buf.String()
}
