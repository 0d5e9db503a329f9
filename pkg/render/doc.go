// Package render converts rendered diagrams between output formats.
//
// The [ToPDF] and [ToPNG] functions convert any SVG using the external
// rsvg-convert tool (from librsvg). The [nodelink] subpackage produces the
// SVG in the first place:
//
//	dot := nodelink.ToDOT(plan.Roots(), plan.Constraints(), nodelink.Options{})
//	svg, err := nodelink.RenderSVG(dot)
//	pdf, err := render.ToPDF(svg)
//
// [nodelink]: github.com/matzehuels/layoutkit/pkg/render/nodelink
package render
