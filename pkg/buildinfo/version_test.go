package buildinfo

import (
	"strings"
	"testing"
)

func TestTemplate(t *testing.T) {
	got := Template()
	if !strings.HasPrefix(got, "{{.Name}} version: "+Version) {
		t.Errorf("Template() = %q, want name then version", got)
	}
	if !strings.Contains(got, "commit: "+Commit) {
		t.Errorf("Template() = %q, missing commit", got)
	}
}
