package layout

import (
	"fmt"

	"github.com/matzehuels/layoutkit/pkg/attr"
	"github.com/matzehuels/layoutkit/pkg/constraint"
	lkerr "github.com/matzehuels/layoutkit/pkg/errors"
	"github.com/matzehuels/layoutkit/pkg/view"
)

// Mode selects how a distribution spends the span of the common ancestor.
type Mode int

const (
	// FixedSpacing keeps a fixed gap between neighbours; sizes are free.
	FixedSpacing Mode = iota
	// FixedSize gives every element a fixed extent and spreads the
	// remaining space evenly.
	FixedSize
	// ExplicitSpacings uses one caller-supplied gap per position.
	ExplicitSpacings
)

func (m Mode) String() string {
	switch m {
	case FixedSpacing:
		return "fixed-spacing"
	case FixedSize:
		return "fixed-size"
	case ExplicitSpacings:
		return "explicit-spacings"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode accepts the names printed by [Mode.String].
func ParseMode(s string) (Mode, error) {
	switch s {
	case "", "fixed-spacing", "spacing":
		return FixedSpacing, nil
	case "fixed-size", "size":
		return FixedSize, nil
	case "explicit-spacings", "spacings":
		return ExplicitSpacings, nil
	}
	return FixedSpacing, lkerr.New(lkerr.ErrCodeInvalidFormat, "unknown distribution mode %q", s)
}

// minMultiplier stands in for a zero multiplier, which host engines reject.
const minMultiplier = 0.00001

// Distribution configures [Distribute].
type Distribution struct {
	// Orientation is the primary axis: Horizontal lays elements out from
	// the leading (or left) edge, Vertical from the top.
	Orientation attr.Orientation

	// Alignment is an attribute measured across Orientation (top, bottom,
	// centerY or a baseline for Horizontal). Every element after the first
	// is aligned to the first on it. attr.None disables alignment.
	Alignment attr.Attribute

	Mode Mode

	// Value is the gap for FixedSpacing and the extent for FixedSize.
	Value float64

	// InsetEnds also pins the outer edges of the first and last element to
	// the ancestor. For FixedSize it leaves an even gap at both ends
	// instead of placing the end elements against the ancestor edges.
	InsetEnds bool

	// EndInset overrides Value for the two end pins of FixedSpacing.
	EndInset *float64

	// MatchSizes makes every primary-axis extent equal to the first one.
	// It has no effect in FixedSize mode, which fixes the extents already.
	MatchSizes bool

	// Spacings lists the gaps for ExplicitSpacings: N+1 values with
	// InsetEnds (end inset, internal gaps, end inset), N-1 without.
	Spacings []float64

	// LeftToRight uses left/right instead of leading/trailing edges.
	LeftToRight bool
}

// Distribute lays views out along d.Orientation. It needs at least two
// elements sharing a common ancestor.
//
// The group holds gap constraints first (including end pins and fixed-size
// placements), then size constraints, then alignment constraints.
func Distribute[E view.Element](b *Builder, views []E, d Distribution) (constraint.Group, error) {
	const op = "distribute"
	els, err := elements(views)
	if err != nil {
		return nil, b.fail(op, err)
	}
	g, err := distribution(els, d)
	if err != nil {
		return nil, b.fail(op, err)
	}
	if d.Mode == FixedSize && d.MatchSizes {
		b.logger.Debug("matched sizes ignored for fixed-size distribution")
	}
	return b.emit(op, g)
}

// DistributeWithFixedSpacing is a shorthand for [Distribute] in FixedSpacing
// mode.
func DistributeWithFixedSpacing[E view.Element](b *Builder, views []E, o attr.Orientation, alignment attr.Attribute, spacing float64, insetEnds, matchSizes bool) (constraint.Group, error) {
	return Distribute(b, views, Distribution{
		Orientation: o,
		Alignment:   alignment,
		Mode:        FixedSpacing,
		Value:       spacing,
		InsetEnds:   insetEnds,
		MatchSizes:  matchSizes,
	})
}

// DistributeWithFixedSize is a shorthand for [Distribute] in FixedSize mode.
func DistributeWithFixedSize[E view.Element](b *Builder, views []E, o attr.Orientation, alignment attr.Attribute, size float64, insetEnds bool) (constraint.Group, error) {
	return Distribute(b, views, Distribution{
		Orientation: o,
		Alignment:   alignment,
		Mode:        FixedSize,
		Value:       size,
		InsetEnds:   insetEnds,
	})
}

func distribution(els []view.Element, d Distribution) (constraint.Group, error) {
	anc, err := view.CommonAncestorOf(els)
	if err != nil {
		return nil, err
	}
	if d.Orientation != attr.Horizontal && d.Orientation != attr.Vertical {
		return nil, lkerr.New(lkerr.ErrCodeInvalidInput, "distribution needs a horizontal or vertical orientation")
	}
	if d.Alignment != attr.None {
		if !d.Alignment.IsPosition() || d.Alignment.Orientation() != d.Orientation.Cross() {
			return nil, lkerr.New(lkerr.ErrCodeInvalidAttributePairing,
				"%s cannot align a %s distribution", d.Alignment, d.Orientation)
		}
	}

	var gaps, sizes, aligns constraint.Group
	switch d.Mode {
	case FixedSpacing:
		end := d.Value
		if d.EndInset != nil {
			end = *d.EndInset
		}
		gaps, err = spaced(els, anc, d, func(i int) float64 {
			if i == 0 || i == len(els) {
				return end
			}
			return d.Value
		})
	case ExplicitSpacings:
		want := len(els) - 1
		if d.InsetEnds {
			want = len(els) + 1
		}
		if len(d.Spacings) != want {
			return nil, lkerr.New(lkerr.ErrCodeInvalidInput, "need %d spacings for %d elements, got %d", want, len(els), len(d.Spacings))
		}
		gaps, err = spaced(els, anc, d, func(i int) float64 {
			if d.InsetEnds {
				return d.Spacings[i]
			}
			return d.Spacings[i-1]
		})
	case FixedSize:
		gaps, sizes, err = sized(els, anc, d)
	default:
		return nil, lkerr.New(lkerr.ErrCodeInvalidInput, "unknown distribution mode %v", d.Mode)
	}
	if err != nil {
		return nil, err
	}

	if d.MatchSizes && d.Mode != FixedSize {
		dim := d.Orientation.Dimension().Attribute()
		for _, v := range els[1:] {
			sizes = append(sizes, relate(v, dim, constraint.Equal, els[0], dim, 1, 0))
		}
	}
	if d.Alignment != attr.None {
		for _, v := range els[1:] {
			aligns = append(aligns, relate(v, d.Alignment, constraint.Equal, els[0], d.Alignment, 1, 0))
		}
	}

	out := make(constraint.Group, 0, len(gaps)+len(sizes)+len(aligns))
	out = append(out, gaps...)
	out = append(out, sizes...)
	return append(out, aligns...), nil
}

// spaced chains the elements edge to edge. gap(i) returns the space before
// element i, where gap(0) and gap(n) are the end insets.
func spaced(els []view.Element, anc view.Element, d Distribution, gap func(i int) float64) (constraint.Group, error) {
	start := d.Orientation.StartEdge(d.LeftToRight).Attribute()
	end := d.Orientation.EndEdge(d.LeftToRight).Attribute()
	n := len(els)

	var g constraint.Group
	if d.InsetEnds {
		g = append(g, relate(els[0], start, constraint.Equal, anc, start, 1, gap(0)))
	}
	for i := 1; i < n; i++ {
		g = append(g, relate(els[i], start, constraint.Equal, els[i-1], end, 1, gap(i)))
	}
	if d.InsetEnds {
		g = append(g, relate(els[n-1], end, constraint.Equal, anc, end, 1, -gap(n)))
	}
	return g, nil
}

// sized places the center of each element on a fraction of the ancestor's
// center line so that the gaps come out even, and fixes each extent.
//
// With inset ends there are N+1 equal gaps; element i sits at
//
//	center = ancestor.center * (2i+2)/(N+1) + ((2i+2)/(N+1) - 1) * size/2
//
// Without, the end elements touch the ancestor edges and element i sits at
//
//	center = ancestor.center * 2i/(N-1) + (1 - 2i/(N-1)) * size/2
func sized(els []view.Element, anc view.Element, d Distribution) (constraint.Group, constraint.Group, error) {
	if d.Value < 0 {
		return nil, nil, lkerr.New(lkerr.ErrCodeInvalidInput, "distribution size must not be negative, got %v", d.Value)
	}
	axis := d.Orientation.CenterAxis().Attribute()
	dim := d.Orientation.Dimension().Attribute()
	n := float64(len(els))
	size := d.Value

	gaps := make(constraint.Group, 0, len(els))
	sizes := make(constraint.Group, 0, len(els))
	for i, v := range els {
		var m, c float64
		if d.InsetEnds {
			m = (float64(i)*2 + 2) / (n + 1)
			c = (m - 1) * size / 2
		} else {
			m = float64(i) * 2 / (n - 1)
			c = (1 - m) * size / 2
		}
		if m == 0 {
			m = minMultiplier
		}
		gaps = append(gaps, relate(v, axis, constraint.Equal, anc, axis, m, c))
		sizes = append(sizes, relate(v, dim, constraint.Equal, nil, attr.None, 1, size))
	}
	return gaps, sizes, nil
}
