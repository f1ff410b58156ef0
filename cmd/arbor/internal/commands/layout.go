package commands

import (
	"context"
	"fmt"
	"io"

	cli "github.com/urfave/cli/v3"

	"github.com/go-drift/arbor/cmd/arbor/internal/document"
	"github.com/go-drift/arbor/pkg/graphics"
	arbortest "github.com/go-drift/arbor/pkg/testing"
)

// Layout prints the laid-out tree of a scene.
func Layout(ctx context.Context, cmd *cli.Command) error {
	sc, err := loadScene(ctx, cmd)
	if err != nil {
		return err
	}
	return WriteLayout(cmd.Root().Writer, sc.doc, sc.size, cmd.String("format"))
}

// WriteLayout builds doc under a root of size, runs the initial layout pass
// and writes the tree as an outline ("text") or as JSON ("json").
func WriteLayout(w io.Writer, doc *document.Document, size graphics.Size, format string) error {
	root, err := doc.NewRoot(size)
	if err != nil {
		return err
	}
	if err := root.LayoutPass(); err != nil {
		return err
	}

	snap := arbortest.CaptureSnapshot(root)
	switch format {
	case "", "text":
		return snap.WriteText(w)
	case "json":
		data, err := snap.MarshalIndent()
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	}
	return fmt.Errorf("unknown output format %q", format)
}
