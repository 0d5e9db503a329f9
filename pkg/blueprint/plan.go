package blueprint

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/layoutkit/pkg/attr"
	"github.com/matzehuels/layoutkit/pkg/constraint"
	"github.com/matzehuels/layoutkit/pkg/engine"
	lkerr "github.com/matzehuels/layoutkit/pkg/errors"
	"github.com/matzehuels/layoutkit/pkg/layout"
	"github.com/matzehuels/layoutkit/pkg/view"
)

// Step is the outcome of one [[op]] table.
type Step struct {
	Index       int
	Kind        string
	Views       []string
	Identifier  string
	Constraints constraint.Group
}

// Plan is a built blueprint: the element hierarchy, the constraints each op
// produced, and the engine they were installed into.
type Plan struct {
	Toolkit  view.Toolkit
	Elements map[string]view.Element
	Guides   map[string]*view.LayoutGuide
	Steps    []Step
	Engine   *engine.Memory
	Builder  *layout.Builder

	order  []string
	logger *log.Logger
}

// Build creates the hierarchy and runs every op in file order against a
// fresh in-memory engine. Ops with install = false are built but left
// uninstalled. A nil logger discards output.
func (bp *Blueprint) Build(logger *log.Logger) (*Plan, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if err := bp.Validate(); err != nil {
		return nil, err
	}
	tk, _ := view.ParseToolkit(bp.Toolkit)

	mem := engine.NewMemory(engine.WithLogger(logger))
	p := &Plan{
		Toolkit:  tk,
		Elements: make(map[string]view.Element, len(bp.Views)),
		Guides:   make(map[string]*view.LayoutGuide, len(bp.Guides)),
		Engine:   mem,
		Builder:  layout.New(mem, layout.WithLogger(logger)),
		logger:   logger,
	}

	for _, v := range bp.Views {
		e, err := view.New(tk, v.ID)
		if err != nil {
			return nil, err
		}
		if v.Margins != nil {
			if m, ok := e.(interface{ SetMarginInsets(attr.Insets) }); ok {
				m.SetMarginInsets(*v.Margins)
			}
		}
		p.Elements[v.ID] = e
		p.order = append(p.order, v.ID)
	}
	for _, v := range bp.Views {
		if v.Parent == "" {
			continue
		}
		if err := view.Attach(p.Elements[v.Parent], p.Elements[v.ID]); err != nil {
			return nil, lkerr.Wrap(lkerr.GetCode(err), err, "attach %s to %s", v.ID, v.Parent)
		}
	}
	for _, g := range bp.Guides {
		kind, err := parseGuideKind(g.Kind)
		if err != nil {
			return nil, err
		}
		guide, err := view.NewLayoutGuide(p.Elements[g.Owner], kind)
		if err != nil {
			return nil, err
		}
		p.Guides[g.ID] = guide
	}
	logger.Debug("hierarchy ready", "toolkit", tk, "views", len(p.Elements), "guides", len(p.Guides))

	for i, op := range bp.Ops {
		step, err := p.apply(i, op)
		if err != nil {
			code := lkerr.GetCode(err)
			if code == "" {
				code = lkerr.ErrCodeInternal
			}
			return nil, lkerr.Wrap(code, err, "op %d (%s)", i, op.Kind)
		}
		p.Steps = append(p.Steps, step)
	}
	logger.Info("blueprint built", "ops", len(p.Steps), "active", len(mem.Active()))
	return p, nil
}

func parseGuideKind(s string) (view.GuideKind, error) {
	switch s {
	case "top":
		return view.TopGuide, nil
	case "bottom":
		return view.BottomGuide, nil
	}
	return 0, lkerr.New(lkerr.ErrCodeInvalidFormat, "unknown guide kind %q (want top or bottom)", s)
}

// apply runs op inside its identifier and priority scopes and a capture
// that either installs or holds back what it creates.
func (p *Plan) apply(i int, op OpSpec) (Step, error) {
	h := handlers[op.Kind]
	run := func() error {
		_, err := h(p, op)
		return err
	}
	if op.Priority != 0 {
		inner := run
		run = func() error { return p.Builder.WithPriority(constraint.Priority(op.Priority), inner) }
	}
	if op.Identifier != "" {
		inner := run
		run = func() error { return p.Builder.WithIdentifier(op.Identifier, inner) }
	}

	var (
		g   constraint.Group
		err error
	)
	if op.installs() {
		g, err = p.Builder.CreateAndInstall(run)
	} else {
		g, err = p.Builder.CreateWithoutInstalling(run)
	}
	if err != nil {
		return Step{}, err
	}
	return Step{Index: i, Kind: op.Kind, Views: op.Views, Identifier: op.Identifier, Constraints: g}, nil
}

// single returns the one element an op acts on.
func (p *Plan) single(op OpSpec) (view.Element, error) {
	if len(op.Views) != 1 {
		return nil, lkerr.New(lkerr.ErrCodeInvalidFormat, "%s takes exactly one view, got %d", op.Kind, len(op.Views))
	}
	return p.Elements[op.Views[0]], nil
}

// peer returns the element named by op.To.
func (p *Plan) peer(op OpSpec) (view.Element, error) {
	if op.To == "" {
		return nil, lkerr.New(lkerr.ErrCodeInvalidFormat, "%s needs a to field", op.Kind)
	}
	e, ok := p.Elements[op.To]
	if !ok {
		return nil, lkerr.New(lkerr.ErrCodeInvalidFormat, "%s: %q is not a view", op.Kind, op.To)
	}
	return e, nil
}

// item resolves an element or a guide id.
func (p *Plan) item(id string) view.Item {
	if g, ok := p.Guides[id]; ok {
		return g
	}
	return p.Elements[id]
}

func (p *Plan) views(op OpSpec) []view.Element {
	out := make([]view.Element, len(op.Views))
	for i, id := range op.Views {
		out[i] = p.Elements[id]
	}
	return out
}

// Roots returns the elements without a parent in declaration order.
func (p *Plan) Roots() []view.Element {
	var out []view.Element
	for _, id := range p.order {
		if e := p.Elements[id]; e.Parent() == nil {
			out = append(out, e)
		}
	}
	return out
}

// Constraints returns every constraint the plan created, in op order.
func (p *Plan) Constraints() constraint.Group {
	var out constraint.Group
	for _, s := range p.Steps {
		out = append(out, s.Constraints...)
	}
	return out
}

// Toggle installs step i if any of its constraints is inactive and removes
// it otherwise. It reports whether the step is installed afterwards.
func (p *Plan) Toggle(i int) (bool, error) {
	if i < 0 || i >= len(p.Steps) {
		return false, lkerr.New(lkerr.ErrCodeNotFound, "no step %d", i)
	}
	g := p.Steps[i].Constraints
	if g.Installed() {
		p.logger.Debug("removing step", "index", i, "kind", p.Steps[i].Kind)
		return false, p.Builder.Remove(g)
	}
	p.logger.Debug("installing step", "index", i, "kind", p.Steps[i].Kind)
	return true, p.Builder.Install(g)
}

// =============================================================================
// JSON export
// =============================================================================

type planDoc struct {
	Toolkit   string        `json:"toolkit"`
	Views     []viewDoc     `json:"views"`
	Steps     []stepDoc     `json:"steps"`
	Stats     engine.Stats  `json:"stats"`
	Conflicts []conflictDoc `json:"conflicts,omitempty"`
}

type viewDoc struct {
	ID     string      `json:"id"`
	Parent string      `json:"parent,omitempty"`
	Layout bool        `json:"constraint_layout"`
	Margin attr.Insets `json:"margins"`
}

type stepDoc struct {
	Index       int             `json:"index"`
	Kind        string          `json:"kind"`
	Views       []string        `json:"views"`
	Constraints []constraintDoc `json:"constraints"`
}

type constraintDoc struct {
	Expr            string  `json:"expr"`
	First           string  `json:"first"`
	FirstAttribute  string  `json:"first_attribute"`
	Relation        string  `json:"relation"`
	Second          string  `json:"second,omitempty"`
	SecondAttribute string  `json:"second_attribute,omitempty"`
	Multiplier      float64 `json:"multiplier"`
	Constant        float64 `json:"constant"`
	Priority        float32 `json:"priority"`
	Identifier      string  `json:"identifier,omitempty"`
	Installed       bool    `json:"installed"`
}

type conflictDoc struct {
	A string `json:"a"`
	B string `json:"b"`
}

func newConstraintDoc(c *constraint.Constraint) constraintDoc {
	d := constraintDoc{
		Expr:           c.String(),
		First:          c.FirstItem.ID(),
		FirstAttribute: c.FirstAttribute.String(),
		Relation:       c.Relation.String(),
		Multiplier:     c.Multiplier,
		Constant:       c.Constant,
		Priority:       float32(c.Priority),
		Identifier:     c.Identifier,
		Installed:      c.IsInstalled(),
	}
	if c.SecondItem != nil {
		d.Second = c.SecondItem.ID()
		d.SecondAttribute = c.SecondAttribute.String()
	}
	return d
}

// WriteJSON encodes the plan as JSON and writes it to w. The output lists
// the hierarchy, every step's constraints with their state, engine counters
// and detected conflicts.
func (p *Plan) WriteJSON(w io.Writer) error {
	out := planDoc{
		Toolkit: p.Toolkit.String(),
		Views:   make([]viewDoc, 0, len(p.order)),
		Steps:   make([]stepDoc, 0, len(p.Steps)),
		Stats:   p.Engine.Stats(),
	}
	for _, id := range p.order {
		e := p.Elements[id]
		vd := viewDoc{ID: id, Layout: e.ConstraintLayoutEnabled(), Margin: e.MarginInsets()}
		if parent := e.Parent(); parent != nil {
			vd.Parent = parent.ID()
		}
		out.Views = append(out.Views, vd)
	}
	for _, s := range p.Steps {
		sd := stepDoc{Index: s.Index, Kind: s.Kind, Views: s.Views, Constraints: make([]constraintDoc, len(s.Constraints))}
		for i, c := range s.Constraints {
			sd.Constraints[i] = newConstraintDoc(c)
		}
		out.Steps = append(out.Steps, sd)
	}
	for _, c := range p.Engine.Conflicts() {
		out.Conflicts = append(out.Conflicts, conflictDoc{A: c.A.String(), B: c.B.String()})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes the plan to a JSON file at path.
func (p *Plan) ExportJSON(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return p.WriteJSON(f)
}
