package layout

import "github.com/matzehuels/layoutkit/pkg/constraint"

type capture struct {
	install bool
	group   constraint.Group
}

// CreateWithoutInstalling runs fn and returns every constraint the builder
// produced during it, in the Constructed state. Install them later with
// [Builder.Install].
//
// Captures nest. An outer capture also receives the constraints of inner
// ones, and the innermost capture decides whether they are installed.
// If fn fails, the constraints produced before the failure are returned
// along with the error.
func (b *Builder) CreateWithoutInstalling(fn func() error) (constraint.Group, error) {
	return b.capture(false, fn)
}

// CreateAndInstall runs fn like [Builder.CreateWithoutInstalling] but
// installs each constraint as it is produced. Outside any capture this is
// the default behaviour; the wrapper only matters for collecting the
// group, or to re-enable installs inside a CreateWithoutInstalling block.
func (b *Builder) CreateAndInstall(fn func() error) (constraint.Group, error) {
	return b.capture(true, fn)
}

func (b *Builder) capture(install bool, fn func() error) (constraint.Group, error) {
	depth := len(b.captures)
	cp := &capture{install: install}
	b.captures = append(b.captures, cp)
	defer func() { b.captures = b.captures[:depth] }()

	err := fn()
	return cp.group, err
}

// installing reports whether emitted constraints should be installed now.
func (b *Builder) installing() bool {
	if len(b.captures) == 0 {
		return true
	}
	return b.captures[len(b.captures)-1].install
}
