package layout

import (
	"math"
	"testing"

	"github.com/matzehuels/layoutkit/pkg/attr"
	"github.com/matzehuels/layoutkit/pkg/constraint"
	"github.com/matzehuels/layoutkit/pkg/engine"
	lkerr "github.com/matzehuels/layoutkit/pkg/errors"
	"github.com/matzehuels/layoutkit/pkg/view"
)

func row(t *testing.T, n int) (*view.TouchView, []*view.TouchView) {
	t.Helper()
	root := view.NewTouchView("root")
	views := make([]*view.TouchView, n)
	for i := range views {
		views[i] = view.NewTouchView(string(rune('a' + i)))
	}
	if err := root.AddSubview(views...); err != nil {
		t.Fatal(err)
	}
	return root, views
}

func TestDistributeFixedSpacing(t *testing.T) {
	tests := []struct {
		name       string
		n          int
		insetEnds  bool
		matchSizes bool
		wantGaps   int
		wantSizes  int
	}{
		{"InsetEnds", 4, true, false, 5, 0},
		{"NoInsets", 4, false, false, 3, 0},
		{"InsetEndsMatched", 3, true, true, 4, 2},
		{"TwoMatched", 2, false, true, 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, views := row(t, tt.n)
			b := New(engine.NewMemory())

			g, err := DistributeWithFixedSpacing(b, views, attr.Horizontal, attr.None, 10, tt.insetEnds, tt.matchSizes)
			if err != nil {
				t.Fatalf("Distribute() error = %v", err)
			}
			if len(g) != tt.wantGaps+tt.wantSizes {
				t.Fatalf("len = %d, want %d", len(g), tt.wantGaps+tt.wantSizes)
			}
			for i, c := range g[:tt.wantGaps] {
				if math.Abs(c.Constant) != 10 {
					t.Errorf("gap %d constant = %v, want +-10", i, c.Constant)
				}
				if c.FirstAttribute.Family() != attr.FamilyEdge {
					t.Errorf("gap %d attribute = %s, want an edge", i, c.FirstAttribute)
				}
			}
			for i, c := range g[tt.wantGaps:] {
				if c.SecondItem.ID() != "a" || c.FirstAttribute != attr.Width || c.Relation != constraint.Equal {
					t.Errorf("size %d = %s, want width equal to a", i, c)
				}
			}
			if !g.Installed() {
				t.Error("group not installed")
			}
		})
	}
}

func TestDistributeFixedSpacingShape(t *testing.T) {
	root, views := row(t, 3)
	b := New(engine.NewMemory())

	g, err := DistributeWithFixedSpacing(b, views, attr.Horizontal, attr.CenterY, 8, true, false)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{
		"a.leading == root.leading + 8",
		"b.leading == a.trailing + 8",
		"c.leading == b.trailing + 8",
		"c.trailing == root.trailing - 8",
		"b.centerY == a.centerY",
		"c.centerY == a.centerY",
	}
	if len(g) != len(want) {
		t.Fatalf("len = %d, want %d:\n%s", len(g), len(want), g)
	}
	for i := range want {
		if got := g[i].String(); got != want[i] {
			t.Errorf("g[%d] = %q, want %q", i, got, want[i])
		}
	}
	if root.ConstraintLayoutEnabled() {
		t.Error("ancestor should not be prepared")
	}
}

func TestDistributeVerticalLeftToRightAndEndInset(t *testing.T) {
	_, views := row(t, 2)
	b := New(engine.NewMemory())
	end := 20.0

	g, err := Distribute(b, views, Distribution{
		Orientation: attr.Vertical,
		Value:       4,
		InsetEnds:   true,
		EndInset:    &end,
		Alignment:   attr.Leading,
	})
	if err != nil {
		t.Fatal(err)
	}
	if g[0].FirstAttribute != attr.Top || g[0].Constant != 20 {
		t.Errorf("first pin = %s", g[0])
	}
	if g[1].Constant != 4 {
		t.Errorf("gap = %s", g[1])
	}
	if g[2].FirstAttribute != attr.Bottom || g[2].Constant != -20 {
		t.Errorf("last pin = %s", g[2])
	}
	if g[3].FirstAttribute != attr.Leading {
		t.Errorf("alignment = %s", g[3])
	}

	_, views = row(t, 2)
	g, err = Distribute(b, views, Distribution{Orientation: attr.Horizontal, Value: 4, LeftToRight: true})
	if err != nil {
		t.Fatal(err)
	}
	if g[0].FirstAttribute != attr.Left || g[0].SecondAttribute != attr.Right {
		t.Errorf("left-to-right gap = %s", g[0])
	}
}

func TestDistributeFixedSize(t *testing.T) {
	tests := []struct {
		name      string
		insetEnds bool
		wantMult  []float64
		wantConst []float64
	}{
		// n = 3, size = 30
		{"InsetEnds", true, []float64{0.5, 1, 1.5}, []float64{-7.5, 0, 7.5}},
		{"NoInsets", false, []float64{minMultiplier, 1, 2}, []float64{15, 0, -15}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, views := row(t, 3)
			b := New(engine.NewMemory())

			g, err := Distribute(b, views, Distribution{
				Orientation: attr.Horizontal,
				Alignment:   attr.Top,
				Mode:        FixedSize,
				Value:       30,
				InsetEnds:   tt.insetEnds,
				MatchSizes:  true,
			})
			if err != nil {
				t.Fatal(err)
			}
			// 3 placements, 3 sizes, 2 alignments; MatchSizes adds nothing.
			if len(g) != 8 {
				t.Fatalf("len = %d, want 8:\n%s", len(g), g)
			}
			for i := 0; i < 3; i++ {
				c := g[i]
				if c.FirstAttribute != attr.CenterX || c.SecondItem.ID() != "root" {
					t.Errorf("placement %d = %s", i, c)
				}
				if math.Abs(c.Multiplier-tt.wantMult[i]) > 1e-9 {
					t.Errorf("placement %d multiplier = %v, want %v", i, c.Multiplier, tt.wantMult[i])
				}
				if math.Abs(c.Constant-tt.wantConst[i]) > 1e-9 {
					t.Errorf("placement %d constant = %v, want %v", i, c.Constant, tt.wantConst[i])
				}
			}
			for i := 3; i < 6; i++ {
				if g[i].FirstAttribute != attr.Width || g[i].SecondItem != nil || g[i].Constant != 30 {
					t.Errorf("size %d = %s", i, g[i])
				}
			}
			for i := 6; i < 8; i++ {
				if g[i].FirstAttribute != attr.Top {
					t.Errorf("alignment %d = %s", i, g[i])
				}
			}
		})
	}
}

func TestDistributeExplicitSpacings(t *testing.T) {
	_, views := row(t, 3)
	b := New(engine.NewMemory())

	g, err := Distribute(b, views, Distribution{
		Orientation: attr.Horizontal,
		Mode:        ExplicitSpacings,
		InsetEnds:   true,
		Spacings:    []float64{1, 2, 3, 4},
	})
	if err != nil {
		t.Fatal(err)
	}
	want := []float64{1, 2, 3, -4}
	for i, c := range g {
		if c.Constant != want[i] {
			t.Errorf("g[%d].Constant = %v, want %v", i, c.Constant, want[i])
		}
	}

	_, err = Distribute(b, views, Distribution{Orientation: attr.Horizontal, Mode: ExplicitSpacings, Spacings: []float64{1}})
	if !lkerr.Is(err, lkerr.ErrCodeInvalidInput) {
		t.Errorf("short spacings error = %v, want INVALID_INPUT", err)
	}
}

func TestDistributeErrors(t *testing.T) {
	root, views := row(t, 3)
	stranger := view.NewTouchView("stranger")
	b := New(engine.NewMemory())

	tests := []struct {
		name  string
		views []*view.TouchView
		d     Distribution
		code  lkerr.Code
	}{
		{"Empty", nil, Distribution{Orientation: attr.Horizontal}, lkerr.ErrCodeInsufficientElements},
		{"Single", views[:1], Distribution{Orientation: attr.Horizontal}, lkerr.ErrCodeInsufficientElements},
		{"Disjoint", []*view.TouchView{views[0], views[1], stranger}, Distribution{Orientation: attr.Horizontal}, lkerr.ErrCodeNoCommonAncestor},
		{"ContainsAncestor", []*view.TouchView{views[0], root}, Distribution{Orientation: attr.Horizontal}, lkerr.ErrCodeNoCommonAncestor},
		{"NoOrientation", views, Distribution{}, lkerr.ErrCodeInvalidInput},
		{"SameAxisAlignment", views, Distribution{Orientation: attr.Horizontal, Alignment: attr.Left}, lkerr.ErrCodeInvalidAttributePairing},
		{"DimensionAlignment", views, Distribution{Orientation: attr.Vertical, Alignment: attr.Width}, lkerr.ErrCodeInvalidAttributePairing},
		{"NegativeSize", views, Distribution{Orientation: attr.Vertical, Mode: FixedSize, Value: -1}, lkerr.ErrCodeInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Distribute(b, tt.views, tt.d)
			if !lkerr.Is(err, tt.code) {
				t.Errorf("Distribute() error = %v, want %s", err, tt.code)
			}
		})
	}
	if n := len(b.Engine().(*engine.Memory).Active()); n != 0 {
		t.Errorf("active = %d after failures, want 0", n)
	}
}

func TestCollectionOperations(t *testing.T) {
	_, views := row(t, 4)
	mem := engine.NewMemory()
	b := New(mem)

	g, err := AlignToEdge(b, views, attr.EdgeTop)
	if err != nil {
		t.Fatal(err)
	}
	if len(g) != 3 {
		t.Errorf("AlignToEdge len = %d, want 3", len(g))
	}
	for _, c := range g {
		if c.SecondItem.ID() != "a" {
			t.Errorf("AlignToEdge references %s, want a", c.SecondItem.ID())
		}
	}

	if g, err = AlignToAxis(b, views, attr.AxisHorizontal); err != nil || len(g) != 3 {
		t.Errorf("AlignToAxis = %d, %v", len(g), err)
	}
	if g, err = MatchDimensions(b, views, attr.DimensionHeight); err != nil || len(g) != 3 {
		t.Errorf("MatchDimensions = %d, %v", len(g), err)
	}
	if g, err = SetDimension(b, views[:1], attr.DimensionWidth, 20); err != nil || len(g) != 1 {
		t.Errorf("SetDimension = %d, %v", len(g), err)
	}
	g, err = SetDimensions(b, views, 20, 10)
	if err != nil || len(g) != 8 {
		t.Fatalf("SetDimensions = %d, %v", len(g), err)
	}
	if g[3].FirstAttribute != attr.Width || g[4].FirstAttribute != attr.Height {
		t.Errorf("SetDimensions order = %s, %s", g[3].FirstAttribute, g[4].FirstAttribute)
	}

	if _, err := AlignToEdge(b, views[:1], attr.EdgeTop); !lkerr.Is(err, lkerr.ErrCodeInsufficientElements) {
		t.Errorf("AlignToEdge(1) error = %v, want INSUFFICIENT_ELEMENTS", err)
	}
	if _, err := SetDimension(b, []*view.TouchView{}, attr.DimensionWidth, 1); !lkerr.Is(err, lkerr.ErrCodeInsufficientElements) {
		t.Errorf("SetDimension(0) error = %v, want INSUFFICIENT_ELEMENTS", err)
	}

	// Works over the interface type too.
	els := []view.Element{views[0], views[1]}
	if _, err := MatchDimensions(b, els, attr.DimensionWidth); err != nil {
		t.Errorf("MatchDimensions([]view.Element) error = %v", err)
	}
}

func TestCollectionNilElements(t *testing.T) {
	_, views := row(t, 2)
	withNil := []*view.TouchView{views[0], nil, views[1]}
	b := New(engine.NewMemory())

	tests := []struct {
		name string
		run  func() error
	}{
		{"align-edges", func() error { _, err := AlignToEdge(b, withNil, attr.EdgeTop); return err }},
		{"align-axes", func() error { _, err := AlignToAxis(b, withNil, attr.AxisHorizontal); return err }},
		{"match-dimensions", func() error { _, err := MatchDimensions(b, withNil, attr.DimensionWidth); return err }},
		{"set-dimension", func() error { _, err := SetDimension(b, withNil, attr.DimensionWidth, 10); return err }},
		{"set-dimensions", func() error { _, err := SetDimensions(b, withNil, 10, 20); return err }},
		{"distribute", func() error {
			_, err := DistributeWithFixedSpacing(b, withNil, attr.Horizontal, attr.CenterY, 8, true, false)
			return err
		}},
		{"interface nil", func() error {
			_, err := AlignToEdge(b, []view.Element{views[0], nil}, attr.EdgeTop)
			return err
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.run(); !lkerr.Is(err, lkerr.ErrCodeInvalidInput) {
				t.Errorf("error = %v, want INVALID_INPUT", err)
			}
		})
	}
}
