package view

import (
	"github.com/google/uuid"

	"github.com/matzehuels/layoutkit/pkg/attr"
)

// node holds the state both toolkit variants share. Hierarchy links live on
// the concrete types so that a hierarchy can never mix toolkits.
type node struct {
	id            string
	toolkit       Toolkit
	layoutEnabled bool
	layoutFlips   int
	margins       attr.Insets
	hugging       map[attr.Orientation]float32
	compression   map[attr.Orientation]float32
}

func newNode(id string, t Toolkit) node {
	if id == "" {
		id = uuid.NewString()
	}
	return node{
		id:      id,
		toolkit: t,
		margins: t.DefaultMargins(),
		hugging: map[attr.Orientation]float32{
			attr.Horizontal: DefaultHuggingPriority,
			attr.Vertical:   DefaultHuggingPriority,
		},
		compression: map[attr.Orientation]float32{
			attr.Horizontal: DefaultCompressionPriority,
			attr.Vertical:   DefaultCompressionPriority,
		},
	}
}

func (n *node) ID() string                    { return n.id }
func (n *node) Toolkit() Toolkit              { return n.toolkit }
func (n *node) ConstraintLayoutEnabled() bool { return n.layoutEnabled }
func (n *node) MarginInsets() attr.Insets     { return n.margins }

// SetConstraintLayoutEnabled opts the element in or out of constraint-based
// layout (the inverse of the host's legacy autoresizing translation).
func (n *node) SetConstraintLayoutEnabled(enabled bool) {
	if n.layoutEnabled != enabled {
		n.layoutFlips++
	}
	n.layoutEnabled = enabled
}

// LayoutFlagChanges returns how many times the layout flag actually changed.
func (n *node) LayoutFlagChanges() int { return n.layoutFlips }

// SetMarginInsets replaces the element's layout margins.
func (n *node) SetMarginInsets(in attr.Insets) { n.margins = in }

func (n *node) SetContentHuggingPriority(o attr.Orientation, p float32) { n.hugging[o] = p }

func (n *node) SetCompressionResistancePriority(o attr.Orientation, p float32) {
	n.compression[o] = p
}

func (n *node) ContentHuggingPriority(o attr.Orientation) float32 { return n.hugging[o] }

func (n *node) CompressionResistancePriority(o attr.Orientation) float32 {
	return n.compression[o]
}
