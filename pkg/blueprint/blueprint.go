package blueprint

import (
	"io"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/layoutkit/pkg/attr"
	lkerr "github.com/matzehuels/layoutkit/pkg/errors"
	"github.com/matzehuels/layoutkit/pkg/view"
)

// Blueprint is the decoded form of a layout file.
type Blueprint struct {
	Toolkit string      `toml:"toolkit"`
	Views   []ViewSpec  `toml:"view"`
	Guides  []GuideSpec `toml:"guide"`
	Ops     []OpSpec    `toml:"op"`
}

// ViewSpec declares one element. Parent names an element declared anywhere
// in the file; an empty parent makes a root.
type ViewSpec struct {
	ID      string       `toml:"id"`
	Parent  string       `toml:"parent"`
	Margins *attr.Insets `toml:"margins"`
}

// GuideSpec declares a layout guide owned by a touch element.
type GuideSpec struct {
	ID    string `toml:"id"`
	Owner string `toml:"owner"`
	Kind  string `toml:"kind"`
}

// OpSpec is one factory call. Which fields matter depends on Kind; see the
// table in ops.go.
type OpSpec struct {
	Kind  string   `toml:"kind"`
	Views []string `toml:"views"`
	To    string   `toml:"to"`

	Edge        string `toml:"edge"`
	ToEdge      string `toml:"to-edge"`
	Axis        string `toml:"axis"`
	Dimension   string `toml:"dimension"`
	ToDimension string `toml:"to-dimension"`
	Attribute   string `toml:"attribute"`
	ToAttribute string `toml:"to-attribute"`

	Insets     *attr.Insets `toml:"insets"`
	Exclude    []string     `toml:"exclude"`
	Inset      float64      `toml:"inset"`
	Offset     float64      `toml:"offset"`
	Size       float64      `toml:"size"`
	Width      float64      `toml:"width"`
	Height     float64      `toml:"height"`
	Multiplier float64      `toml:"multiplier"`
	Constant   float64      `toml:"constant"`
	Relation   string       `toml:"relation"`

	Orientation string    `toml:"orientation"`
	Alignment   string    `toml:"alignment"`
	Mode        string    `toml:"mode"`
	Spacing     float64   `toml:"spacing"`
	InsetEnds   bool      `toml:"inset-ends"`
	EndInset    *float64  `toml:"end-inset"`
	MatchSizes  bool      `toml:"match-sizes"`
	Spacings    []float64 `toml:"spacings"`
	LeftToRight bool      `toml:"left-to-right"`

	Priority   float64 `toml:"priority"`
	Identifier string  `toml:"identifier"`
	Install    *bool   `toml:"install"`
}

// installs reports whether the op's constraints are installed on build.
func (o OpSpec) installs() bool { return o.Install == nil || *o.Install }

// Load reads and decodes a blueprint file.
func Load(path string) (*Blueprint, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return parse(data)
}

// Decode reads a blueprint from r.
func Decode(r io.Reader) (*Blueprint, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return parse(data)
}

func parse(data []byte) (*Blueprint, error) {
	var bp Blueprint
	if err := toml.Unmarshal(data, &bp); err != nil {
		return nil, lkerr.Wrap(lkerr.ErrCodeInvalidFormat, err, "decode blueprint")
	}
	if err := bp.Validate(); err != nil {
		return nil, err
	}
	return &bp, nil
}

// Validate checks declarations that do not depend on building: toolkit,
// element ids, and references between views and guides.
func (bp *Blueprint) Validate() error {
	if _, err := view.ParseToolkit(bp.Toolkit); err != nil {
		return lkerr.Wrap(lkerr.ErrCodeInvalidFormat, err, "toolkit")
	}
	if len(bp.Views) == 0 {
		return lkerr.New(lkerr.ErrCodeInvalidFormat, "blueprint declares no views")
	}

	ids := make(map[string]struct{}, len(bp.Views)+len(bp.Guides))
	declare := func(id string) error {
		if err := lkerr.ValidateElementID(id); err != nil {
			return err
		}
		if _, dup := ids[id]; dup {
			return lkerr.New(lkerr.ErrCodeInvalidFormat, "id %q declared twice", id)
		}
		ids[id] = struct{}{}
		return nil
	}
	for _, v := range bp.Views {
		if err := declare(v.ID); err != nil {
			return err
		}
	}
	for _, v := range bp.Views {
		if v.Parent == "" {
			continue
		}
		if _, ok := ids[v.Parent]; !ok {
			return lkerr.New(lkerr.ErrCodeNotFound, "view %q has unknown parent %q", v.ID, v.Parent)
		}
	}
	for _, g := range bp.Guides {
		if err := declare(g.ID); err != nil {
			return err
		}
		if _, ok := ids[g.Owner]; !ok {
			return lkerr.New(lkerr.ErrCodeNotFound, "guide %q has unknown owner %q", g.ID, g.Owner)
		}
	}
	for i, op := range bp.Ops {
		if _, ok := handlers[op.Kind]; !ok {
			return lkerr.New(lkerr.ErrCodeInvalidFormat, "op %d: unknown kind %q", i, op.Kind)
		}
		for _, id := range append(slicesOf(op.To), op.Views...) {
			if _, ok := ids[id]; !ok {
				return lkerr.New(lkerr.ErrCodeNotFound, "op %d (%s): unknown id %q", i, op.Kind, id)
			}
		}
	}
	return nil
}

func slicesOf(s string) []string {
	if s == "" {
		return nil
	}
	return []string{s}
}
