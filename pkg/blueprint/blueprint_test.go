package blueprint

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/matzehuels/layoutkit/pkg/attr"
	"github.com/matzehuels/layoutkit/pkg/constraint"
	lkerr "github.com/matzehuels/layoutkit/pkg/errors"
	"github.com/matzehuels/layoutkit/pkg/view"
)

const screen = `
toolkit = "touch"

[[view]]
id = "screen"

[[view]]
id = "header"
parent = "screen"

[[view]]
id = "card"
parent = "screen"
margins = { top = 4, left = 4, bottom = 4, right = 4 }

[[view]]
id = "ok"
parent = "card"

[[view]]
id = "cancel"
parent = "card"

[[guide]]
id = "topGuide"
owner = "screen"
kind = "top"

[[op]]
kind = "pin-to-guide"
views = ["header"]
to = "topGuide"
inset = 8

[[op]]
kind = "pin-edges-to-superview"
views = ["header"]
exclude = ["top", "bottom"]

[[op]]
kind = "pin-edge"
views = ["card"]
edge = "top"
to-edge = "bottom"
to = "header"
offset = 12

[[op]]
kind = "set-dimension"
views = ["header"]
dimension = "height"
size = 44
priority = 750
identifier = "header-height"

[[op]]
kind = "distribute"
views = ["ok", "cancel"]
orientation = "horizontal"
alignment = "centerY"
spacing = 8
inset-ends = true
match-sizes = true

[[op]]
kind = "center-in-superview"
views = ["card"]
install = false

[[op]]
kind = "hugging"
views = ["ok"]
orientation = "horizontal"
priority = 251
`

func mustBuild(t *testing.T, src string) *Plan {
	t.Helper()
	bp, err := Decode(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	p, err := bp.Build(nil)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	return p
}

func TestBuild(t *testing.T) {
	p := mustBuild(t, screen)

	if len(p.Steps) != 7 {
		t.Fatalf("steps = %d, want 7", len(p.Steps))
	}
	wantCounts := []int{1, 2, 1, 1, 5, 2, 0}
	for i, s := range p.Steps {
		if len(s.Constraints) != wantCounts[i] {
			t.Errorf("step %d (%s) constraints = %d, want %d", i, s.Kind, len(s.Constraints), wantCounts[i])
		}
	}
	if n := len(p.Constraints()); n != 12 {
		t.Errorf("Constraints() = %d, want 12", n)
	}
	if n := len(p.Engine.Active()); n != 10 {
		t.Errorf("active = %d, want 10", n)
	}
	if p.Steps[5].Constraints.Installed() {
		t.Error("install = false step was installed")
	}

	tests := []struct {
		step, idx int
		want      string
	}{
		{0, 0, "header.top == screen.topLayoutGuide.bottom + 8"},
		{1, 0, "header.leading == screen.leading"},
		{1, 1, "header.trailing == screen.trailing"},
		{2, 0, "card.top == header.bottom + 12"},
		{3, 0, "header.height == 44 @750 [header-height]"},
		{4, 0, "ok.leading == card.leading + 8"},
	}
	for _, tt := range tests {
		if got := p.Steps[tt.step].Constraints[tt.idx].String(); got != tt.want {
			t.Errorf("step %d[%d] = %q, want %q", tt.step, tt.idx, got, tt.want)
		}
	}

	ok := p.Elements["ok"].(view.ContentPrioritizer)
	if got := ok.ContentHuggingPriority(attr.Horizontal); got != 251 {
		t.Errorf("hugging = %v, want 251", got)
	}
	if got := p.Elements["card"].MarginInsets(); got != attr.Uniform(4) {
		t.Errorf("card margins = %+v, want 4 on every side", got)
	}
	if roots := p.Roots(); len(roots) != 1 || roots[0].ID() != "screen" {
		t.Errorf("Roots() = %v, want [screen]", roots)
	}
	if p.Builder.Scope().Priority() != constraint.Required {
		t.Error("priority scope leaked out of Build")
	}
}

func TestToggle(t *testing.T) {
	p := mustBuild(t, screen)

	installed, err := p.Toggle(5)
	if err != nil || !installed {
		t.Fatalf("Toggle(5) = %v, %v; want installed", installed, err)
	}
	if n := len(p.Engine.Active()); n != 12 {
		t.Errorf("active = %d, want 12", n)
	}
	installed, err = p.Toggle(5)
	if err != nil || installed {
		t.Fatalf("Toggle(5) again = %v, %v; want removed", installed, err)
	}
	if n := len(p.Engine.Active()); n != 10 {
		t.Errorf("active = %d, want 10", n)
	}
	if _, err := p.Toggle(99); !lkerr.Is(err, lkerr.ErrCodeNotFound) {
		t.Errorf("Toggle(99) error = %v, want NOT_FOUND", err)
	}
}

func TestDesktopMargins(t *testing.T) {
	p := mustBuild(t, `
toolkit = "desktop"

[[view]]
id = "window"
margins = { top = 10, left = 8, bottom = 10, right = 8 }

[[view]]
id = "pane"
parent = "window"

[[op]]
kind = "pin-edges-to-margins"
views = ["pane"]
`)
	g := p.Steps[0].Constraints
	want := []string{
		"pane.top == window.top + 10",
		"pane.leading == window.leading + 8",
		"pane.bottom == window.bottom - 10",
		"pane.trailing == window.trailing - 8",
	}
	if len(g) != len(want) {
		t.Fatalf("len = %d, want %d:\n%s", len(g), len(want), g)
	}
	for i := range want {
		if got := g[i].String(); got != want[i] {
			t.Errorf("g[%d] = %q, want %q", i, got, want[i])
		}
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		code lkerr.Code
	}{
		{"Syntax", `toolkit = `, lkerr.ErrCodeInvalidFormat},
		{"Toolkit", "toolkit = \"watch\"\n[[view]]\nid = \"a\"", lkerr.ErrCodeInvalidFormat},
		{"NoViews", `toolkit = "touch"`, lkerr.ErrCodeInvalidFormat},
		{"DuplicateID", "[[view]]\nid = \"a\"\n[[view]]\nid = \"a\"", lkerr.ErrCodeInvalidFormat},
		{"BadID", "[[view]]\nid = \"has space\"", lkerr.ErrCodeInvalidFormat},
		{"UnknownParent", "[[view]]\nid = \"a\"\nparent = \"ghost\"", lkerr.ErrCodeNotFound},
		{"UnknownOwner", "[[view]]\nid = \"a\"\n[[guide]]\nid = \"g\"\nowner = \"ghost\"\nkind = \"top\"", lkerr.ErrCodeNotFound},
		{"UnknownKind", "[[view]]\nid = \"a\"\n[[op]]\nkind = \"levitate\"\nviews = [\"a\"]", lkerr.ErrCodeInvalidFormat},
		{"UnknownView", "[[view]]\nid = \"a\"\n[[op]]\nkind = \"center-in-superview\"\nviews = [\"b\"]", lkerr.ErrCodeNotFound},
		{"UnknownTo", "[[view]]\nid = \"a\"\n[[op]]\nkind = \"pin-edge\"\nviews = [\"a\"]\nto = \"b\"", lkerr.ErrCodeNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.src))
			if !lkerr.Is(err, tt.code) {
				t.Errorf("Decode() error = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestBuildErrors(t *testing.T) {
	const tree = "[[view]]\nid = \"root\"\n[[view]]\nid = \"a\"\nparent = \"root\"\n[[view]]\nid = \"b\"\nparent = \"root\"\n"
	tests := []struct {
		name string
		ops  string
		code lkerr.Code
	}{
		{"NoSuperview", "[[op]]\nkind = \"center-in-superview\"\nviews = [\"root\"]", lkerr.ErrCodeNoSuperview},
		{"TooFew", "[[op]]\nkind = \"align-edges\"\nviews = [\"a\"]\nedge = \"top\"", lkerr.ErrCodeInsufficientElements},
		{"TooManyViews", "[[op]]\nkind = \"center-in-superview\"\nviews = [\"a\", \"b\"]", lkerr.ErrCodeInvalidFormat},
		{"BadEdge", "[[op]]\nkind = \"pin-edge-to-superview\"\nviews = [\"a\"]\nedge = \"width\"", lkerr.ErrCodeInvalidFormat},
		{"BadRelation", "[[op]]\nkind = \"pin-edge-to-superview\"\nviews = [\"a\"]\nedge = \"top\"\nrelation = \"~\"", lkerr.ErrCodeInvalidFormat},
		{"HuggingNeedsPriority", "[[op]]\nkind = \"hugging\"\nviews = [\"a\"]\norientation = \"horizontal\"", lkerr.ErrCodeInvalidInput},
		{"PriorityRange", "[[op]]\nkind = \"center-in-superview\"\nviews = [\"a\"]\npriority = 1500", lkerr.ErrCodeInvalidPriority},
		{"Pairing", "[[op]]\nkind = \"constrain\"\nviews = [\"a\"]\nattribute = \"width\"\nto = \"b\"\nto-attribute = \"top\"", lkerr.ErrCodeInvalidAttributePairing},
		{"NotAGuide", "[[op]]\nkind = \"pin-to-guide\"\nviews = [\"a\"]\nto = \"b\"", lkerr.ErrCodeInvalidFormat},
		{"GuideKind", "[[guide]]\nid = \"g\"\nowner = \"root\"\nkind = \"middle\"", lkerr.ErrCodeInvalidFormat},
		{"Ancestor", "[[op]]\nkind = \"match-dimensions\"\nviews = [\"a\", \"root\"]\ndimension = \"width\"", lkerr.ErrCodeNoCommonAncestor},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bp, err := Decode(strings.NewReader(tree + tt.ops))
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}
			_, err = bp.Build(nil)
			if !lkerr.Is(err, tt.code) {
				t.Errorf("Build() error = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestDesktopGuideUnsupported(t *testing.T) {
	bp, err := Decode(strings.NewReader("toolkit = \"desktop\"\n[[view]]\nid = \"w\"\n[[guide]]\nid = \"g\"\nowner = \"w\"\nkind = \"top\""))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := bp.Build(nil); !lkerr.Is(err, lkerr.ErrCodeUnsupported) {
		t.Errorf("Build() error = %v, want UNSUPPORTED", err)
	}
}

func TestAllKindsBuild(t *testing.T) {
	src := `
[[view]]
id = "root"
[[view]]
id = "a"
parent = "root"
[[view]]
id = "b"
parent = "root"
[[view]]
id = "c"
parent = "root"
[[guide]]
id = "bottomGuide"
owner = "root"
kind = "bottom"

[[op]]
kind = "pin-edge-to-superview"
views = ["a"]
edge = "leading"
inset = 4
[[op]]
kind = "pin-edge-to-margin"
views = ["a"]
edge = "top"
[[op]]
kind = "align-axis-to-superview"
views = ["b"]
axis = "centerX"
[[op]]
kind = "align-axis-to-margin-axis"
views = ["b"]
axis = "centerY"
[[op]]
kind = "align-axis"
views = ["c"]
axis = "centerY"
to = "b"
multiplier = 0.5
[[op]]
kind = "center-in-margins"
views = ["c"]
install = false
[[op]]
kind = "match-dimension"
views = ["a"]
dimension = "width"
to-dimension = "height"
to = "b"
multiplier = 2
[[op]]
kind = "aspect-ratio"
views = ["c"]
multiplier = 1.5
[[op]]
kind = "set-dimensions"
views = ["a", "b"]
width = 10
height = 20
[[op]]
kind = "constrain"
views = ["a"]
attribute = "centerX"
to = "b"
to-attribute = "leading"
relation = ">="
[[op]]
kind = "constrain"
views = ["c"]
attribute = "width"
relation = "<="
constant = 300
[[op]]
kind = "pin-to-guide"
views = ["c"]
to = "bottomGuide"
inset = 2
[[op]]
kind = "align-axes"
views = ["a", "b", "c"]
axis = "baseline"
install = false
[[op]]
kind = "match-dimensions"
views = ["a", "b", "c"]
dimension = "height"
install = false
[[op]]
kind = "distribute"
views = ["a", "b", "c"]
orientation = "vertical"
mode = "fixed-size"
size = 30
install = false
[[op]]
kind = "compression-resistance"
views = ["c"]
orientation = "vertical"
priority = 999
`
	p := mustBuild(t, src)
	if len(p.Steps) != 16 {
		t.Fatalf("steps = %d, want 16", len(p.Steps))
	}
	if got := p.Steps[11].Constraints[0].String(); got != "c.bottom == root.bottomLayoutGuide.top - 2" {
		t.Errorf("pin-to-guide = %q", got)
	}
	if got := p.Steps[10].Constraints[0].String(); got != "c.width <= 300" {
		t.Errorf("constrain fixed = %q", got)
	}
	if n := len(p.Steps[14].Constraints); n != 6 {
		t.Errorf("fixed-size distribution = %d constraints, want 6", n)
	}
	cr := p.Elements["c"].(view.ContentPrioritizer).CompressionResistancePriority(attr.Vertical)
	if cr != 999 {
		t.Errorf("compression resistance = %v, want 999", cr)
	}
	kinds := Kinds()
	if len(kinds) != 22 || !slices.IsSorted(kinds) {
		t.Errorf("Kinds() = %v, want 22 sorted kinds", kinds)
	}
}

func TestWriteJSON(t *testing.T) {
	p := mustBuild(t, screen)

	var buf bytes.Buffer
	if err := p.WriteJSON(&buf); err != nil {
		t.Fatal(err)
	}
	var doc planDoc
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if doc.Toolkit != "touch" || len(doc.Views) != 5 || len(doc.Steps) != 7 {
		t.Errorf("doc = %s/%d views/%d steps", doc.Toolkit, len(doc.Views), len(doc.Steps))
	}
	if doc.Views[1].Parent != "screen" || !doc.Views[1].Layout {
		t.Errorf("header = %+v", doc.Views[1])
	}
	if doc.Stats.Active != 10 {
		t.Errorf("stats.active = %d, want 10", doc.Stats.Active)
	}
	c := doc.Steps[3].Constraints[0]
	if c.Priority != 750 || c.Identifier != "header-height" || c.Second != "" || !c.Installed {
		t.Errorf("header height = %+v", c)
	}
	if doc.Steps[5].Constraints[0].Installed {
		t.Error("uninstalled step exported as installed")
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "screen.toml")
	if err := os.WriteFile(path, []byte(screen), 0o644); err != nil {
		t.Fatal(err)
	}
	bp, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(bp.Views) != 5 || len(bp.Ops) != 7 || bp.Ops[5].installs() {
		t.Errorf("Load() = %d views, %d ops", len(bp.Views), len(bp.Ops))
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("Load(missing) succeeded")
	}
}

func TestExampleBlueprints(t *testing.T) {
	paths, err := filepath.Glob(filepath.Join("..", "..", "examples", "blueprints", "*.toml"))
	if err != nil || len(paths) == 0 {
		t.Fatalf("no example blueprints found (err=%v)", err)
	}
	for _, path := range paths {
		t.Run(filepath.Base(path), func(t *testing.T) {
			bp, err := Load(path)
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			p, err := bp.Build(nil)
			if err != nil {
				t.Fatalf("Build() error = %v", err)
			}
			if len(p.Steps) != len(bp.Ops) {
				t.Errorf("steps = %d, want %d", len(p.Steps), len(bp.Ops))
			}
			if len(p.Constraints()) == 0 {
				t.Error("Build() produced no constraints")
			}
		})
	}
}

func TestBuildErrorPrefix(t *testing.T) {
	src := "[[view]]\nid = \"root\"\n[[view]]\nid = \"a\"\nparent = \"root\"\n" +
		"[[op]]\nkind = \"match-dimensions\"\nviews = [\"a\", \"root\"]\ndimension = \"width\""
	bp, err := Decode(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	_, err = bp.Build(nil)
	if got := lkerr.GetCode(err); got != lkerr.ErrCodeNoCommonAncestor {
		t.Fatalf("GetCode() = %v, want %v", got, lkerr.ErrCodeNoCommonAncestor)
	}
	msg := err.Error()
	if !strings.HasPrefix(msg, "NO_COMMON_ANCESTOR: op 0 (match-dimensions): ") {
		t.Errorf("Error() = %q, want code then op prefix", msg)
	}
	if n := strings.Count(msg, "NO_COMMON_ANCESTOR"); n != 1 {
		t.Errorf("Error() has code %d times, want 1: %q", n, msg)
	}
}
