// Package nodelink renders constraint layouts as node-link diagrams.
//
// # Overview
//
// Elements become boxes, containment becomes grey arrows from parent to
// child, and every constraint between two items becomes a labelled edge.
//
// # Usage
//
//	dot := nodelink.ToDOT(plan.Roots(), plan.Constraints(), nodelink.Options{Detailed: true})
//	svg, err := nodelink.RenderSVG(dot)
//
// For PDF or PNG output:
//
//	pdf, err := nodelink.RenderPDF(dot)
//	png, err := nodelink.RenderPNG(dot, 2.0)
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering. PDF and PNG conversion requires librsvg (rsvg-convert).
package nodelink
