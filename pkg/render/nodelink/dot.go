package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/layoutkit/pkg/constraint"
	"github.com/matzehuels/layoutkit/pkg/render"
	"github.com/matzehuels/layoutkit/pkg/view"
)

// Options configures constraint diagram rendering.
type Options struct {
	// Detailed lists fixed-size constraints and margins in node labels.
	// When false, only the element ID is shown.
	Detailed bool

	// InstalledOnly drops constraints that are not installed.
	InstalledOnly bool

	// HideHierarchy omits the parent -> child containment edges.
	HideHierarchy bool
}

// ToDOT converts element hierarchies and their constraints to Graphviz DOT.
// The resulting DOT string can be rendered using [RenderSVG], [RenderPDF],
// or [RenderPNG].
//
// Containment is drawn as grey arrows. Each two-item constraint becomes a
// labelled edge from its first to its second item; optional constraints are
// blue, uninstalled ones dotted. Layout guides referenced by a constraint
// appear as grey ellipses.
func ToDOT(roots []view.Element, cs constraint.Group, opts Options) string {
	if opts.InstalledOnly {
		cs = cs.Filter((*constraint.Constraint).IsInstalled)
	}

	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=18, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  edge [fontsize=11];\n")
	buf.WriteString("  ranksep=0.6;\n")
	buf.WriteString("  nodesep=0.4;\n")
	buf.WriteString("\n")

	fixed := make(map[string][]string)
	for _, c := range cs {
		if c.SecondItem == nil {
			fixed[c.FirstItem.ID()] = append(fixed[c.FirstItem.ID()], constantLabel(c))
		}
	}

	var hierarchy []string
	for _, root := range roots {
		view.Walk(root, func(e view.Element, _ int) bool {
			label := fmtLabel(e, fixed[e.ID()], opts.Detailed)
			fmt.Fprintf(&buf, "  %q [%s];\n", e.ID(), strings.Join(fmtAttrs(e, label), ", "))
			if p := e.Parent(); p != nil {
				hierarchy = append(hierarchy, fmt.Sprintf("  %q -> %q [color=grey70, arrowhead=empty];\n", p.ID(), e.ID()))
			}
			return true
		})
	}

	seen := make(map[string]bool)
	for _, c := range cs {
		g, ok := c.SecondItem.(*view.LayoutGuide)
		if !ok || seen[g.ID()] {
			continue
		}
		seen[g.ID()] = true
		fmt.Fprintf(&buf, "  %q [shape=ellipse, style=\"filled,dashed\", fillcolor=grey90, label=%q];\n", g.ID(), g.Kind().String()+" guide")
		hierarchy = append(hierarchy, fmt.Sprintf("  %q -> %q [color=grey70, style=dashed, arrowhead=none];\n", g.Owner().ID(), g.ID()))
	}

	if !opts.HideHierarchy && len(hierarchy) > 0 {
		buf.WriteString("\n")
		for _, line := range hierarchy {
			buf.WriteString(line)
		}
	}

	buf.WriteString("\n")
	for _, c := range cs {
		if c.SecondItem == nil {
			continue
		}
		fmt.Fprintf(&buf, "  %q -> %q [%s];\n", c.FirstItem.ID(), c.SecondItem.ID(), strings.Join(edgeAttrs(c), ", "))
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtLabel(e view.Element, fixed []string, detailed bool) string {
	if !detailed {
		return e.ID()
	}
	parts := append([]string{e.ID()}, fixed...)
	if in := e.MarginInsets(); !in.IsZero() {
		parts = append(parts, fmt.Sprintf("margins: %g %g %g %g", in.Top, in.Left, in.Bottom, in.Right))
	}
	return strings.Join(parts, "\n")
}

func fmtAttrs(e view.Element, label string) []string {
	attrs := []string{fmt.Sprintf("label=%q", label)}
	if !e.ConstraintLayoutEnabled() {
		attrs = append(attrs, "fillcolor=grey95", "fontcolor=grey40")
	}
	return attrs
}

// edgeLabel renders the right-hand side of c without item ids, e.g.
// "top == bottom + 8".
func edgeLabel(c *constraint.Constraint) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s %s %s", c.FirstAttribute, c.Relation, c.SecondAttribute)
	if c.Multiplier != 1 {
		fmt.Fprintf(&sb, " * %s", strconv.FormatFloat(c.Multiplier, 'g', 4, 64))
	}
	switch {
	case c.Constant > 0:
		fmt.Fprintf(&sb, " + %g", c.Constant)
	case c.Constant < 0:
		fmt.Fprintf(&sb, " - %g", -c.Constant)
	}
	if c.Priority != constraint.Required {
		fmt.Fprintf(&sb, " @%s", c.Priority)
	}
	return sb.String()
}

func constantLabel(c *constraint.Constraint) string {
	s := fmt.Sprintf("%s %s %g", c.FirstAttribute, c.Relation, c.Constant)
	if c.Priority != constraint.Required {
		s += " @" + c.Priority.String()
	}
	return s
}

func edgeAttrs(c *constraint.Constraint) []string {
	attrs := []string{fmt.Sprintf("label=%q", edgeLabel(c))}
	if c.Priority != constraint.Required {
		attrs = append(attrs, "color=steelblue", "fontcolor=steelblue")
	}
	if !c.IsInstalled() {
		attrs = append(attrs, "style=dotted")
	}
	if c.Identifier != "" {
		attrs = append(attrs, fmt.Sprintf("tooltip=%q", c.Identifier))
	}
	return attrs
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
// Returns the SVG bytes ready for display or further conversion with
// [render.ToPDF] or [render.ToPNG].
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
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
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	tag := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`, w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(tag))
}

// RenderPDF renders a DOT graph as PDF via SVG conversion.
//
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPDF(dot string) ([]byte, error) {
	svg, err := RenderSVG(dot)
	if err != nil {
		return nil, err
	}
	return render.ToPDF(svg)
}

// RenderPNG renders a DOT graph as PNG via SVG conversion. A scale of 2.0
// doubles the resolution.
//
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPNG(dot string, scale float64) ([]byte, error) {
	svg, err := RenderSVG(dot)
	if err != nil {
		return nil, err
	}
	return render.ToPNG(svg, scale)
}
