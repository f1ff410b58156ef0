// Package commands implements the arbor subcommands.
package commands

import (
	"context"
	"fmt"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"github.com/go-drift/arbor/cmd/arbor/internal/config"
	"github.com/go-drift/arbor/cmd/arbor/internal/document"
	"github.com/go-drift/arbor/cmd/arbor/internal/state"
	"github.com/go-drift/arbor/pkg/graphics"
)

// SizeFlags are the client size overrides shared by the scene commands.
var SizeFlags = []cli.Flag{
	&cli.FloatFlag{Name: "width", Usage: "root client `WIDTH`, overrides the scene and configuration"},
	&cli.FloatFlag{Name: "height", Usage: "root client `HEIGHT`, overrides the scene and configuration"},
}

// scene is a loaded document with the client size to lay it out in.
type scene struct {
	path string
	doc  *document.Document
	size graphics.Size
}

func loadScene(ctx context.Context, cmd *cli.Command) (*scene, error) {
	env := state.EnvFromContext(ctx)
	if cmd.NArg() == 0 {
		return nil, fmt.Errorf("missing SCENE argument")
	}
	if cmd.NArg() > 1 {
		env.Log.Warn("Malformed command line, too many scenes", zap.Strings("ignoring", cmd.Args().Slice()[1:]))
	}
	path := cmd.Args().First()

	doc, err := document.Load(path)
	if err != nil {
		return nil, err
	}
	size := clientSize(doc, env.Cfg, cmd.Float("width"), cmd.Float("height"))
	env.Log.Debug("Scene loaded",
		zap.String("scene", path),
		zap.String("version", doc.Version),
		zap.Float64("width", size.Width),
		zap.Float64("height", size.Height))
	return &scene{path: path, doc: doc, size: size}, nil
}

// clientSize picks each dimension from the flags when positive, then the
// scene, then the configuration.
func clientSize(doc *document.Document, cfg *config.Config, width, height float64) graphics.Size {
	size := doc.ClientSize(graphics.Size{Width: cfg.Layout.Width, Height: cfg.Layout.Height})
	if width > 0 {
		size.Width = width
	}
	if height > 0 {
		size.Height = height
	}
	return size
}
