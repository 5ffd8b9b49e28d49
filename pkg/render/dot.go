// Package render turns a user's package details into Graphviz output.
//
// [ToDOT] emits a digraph with the user at the root, one node per published
// package, and one edge per direct runtime dependency. [RenderSVG]
// rasterizes the DOT source through Graphviz.
package render

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/pypiscope/pkg/pypi"
)

// ToDOT converts a user's package details to Graphviz DOT format.
// The username becomes the root node; each package links to it, and each
// package links to its direct runtime dependencies (extras/dev/test
// filtered out). Dependency nodes shared by several packages collapse into
// one.
func ToDOT(username string, details []pypi.PackageDetail) string {
	var buf bytes.Buffer
	buf.WriteString("digraph packages {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14];\n")
	fmt.Fprintf(&buf, "  %q [fillcolor=lightblue, shape=ellipse];\n", username)
	buf.WriteString("\n")

	for _, d := range details {
		name := pypi.NormalizeName(d.Name)
		label := name
		if d.Version != "" {
			label = fmt.Sprintf("%s\n%s", name, d.Version)
		}
		fmt.Fprintf(&buf, "  %q [label=%q, fillcolor=lightyellow];\n", name, label)
		fmt.Fprintf(&buf, "  %q -> %q;\n", username, name)
		for _, dep := range pypi.DependencyNames(d.Dependencies) {
			fmt.Fprintf(&buf, "  %q -> %q;\n", name, dep)
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
