// Package dot renders role graphs in the Graphviz DOT language.
package dot

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/rolegraph/internal/core/domain"
	"go.trai.ch/rolegraph/internal/core/ports"
	"go.trai.ch/zerr"
)

// Renderer implements ports.Renderer by writing DOT files.
type Renderer struct{}

var _ ports.Renderer = Renderer{}

// Render writes g to path, replacing any previous file atomically.
func (Renderer) Render(_ context.Context, g *domain.Graph, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrRenderFailed.Error()), "path", path)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrRenderFailed.Error()), "path", path)
	}
	tmpName := tmp.Name()
	defer func() {
		_ = os.Remove(tmpName)
	}()

	if _, err := tmp.WriteString(Export(g)); err != nil {
		_ = tmp.Close()
		return zerr.With(zerr.Wrap(err, domain.ErrRenderFailed.Error()), "path", path)
	}
	if err := tmp.Close(); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrRenderFailed.Error()), "path", path)
	}
	if err := os.Chmod(tmpName, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrRenderFailed.Error()), "path", path)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrRenderFailed.Error()), "path", path)
	}
	return nil
}

// Export returns the DOT source of g with nodes and edges in sorted order.
func Export(g *domain.Graph) string {
	var b strings.Builder
	b.WriteString("digraph roles {\n")
	b.WriteString("  layout=twopi;\n")
	b.WriteString("  overlap=false;\n")
	b.WriteString("  node [fontname=\"Helvetica\" shape=box style=rounded];\n")
	b.WriteString("  edge [arrowsize=0.6];\n\n")

	for _, n := range g.Nodes() {
		fmt.Fprintf(&b, "  %s;\n", quote(n.String()))
	}
	if g.EdgeCount() > 0 {
		b.WriteString("\n")
	}
	for _, e := range g.Edges() {
		fmt.Fprintf(&b, "  %s -> %s;\n", quote(e.From.String()), quote(e.To.String()))
	}

	b.WriteString("}\n")
	return b.String()
}

func quote(id string) string {
	return `"` + strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(id) + `"`
}
