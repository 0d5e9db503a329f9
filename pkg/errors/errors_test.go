package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestError(t *testing.T) {
	ancestor := New(ErrCodeNoCommonAncestor, "header and footer share no ancestor")
	engine := errors.New("solver refused")

	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{
			name: "plain",
			err:  New(ErrCodeInsufficientElements, "need %d elements, got %d", 2, 1),
			want: "INSUFFICIENT_ELEMENTS: need 2 elements, got 1",
		},
		{
			name: "foreign cause",
			err:  Wrap(ErrCodeInternal, engine, "activate %d constraints", 3),
			want: "INTERNAL_ERROR: activate 3 constraints: solver refused",
		},
		{
			name: "same code prints once",
			err:  Wrap(GetCode(ancestor), ancestor, "op %d (%s)", 3, "pin-edge"),
			want: "NO_COMMON_ANCESTOR: op 3 (pin-edge): header and footer share no ancestor",
		},
		{
			name: "nested prefixes",
			err:  Wrap(ErrCodeNoCommonAncestor, Wrap(ErrCodeNoCommonAncestor, ancestor, "op 3 (pin-edge)"), "login.toml"),
			want: "NO_COMMON_ANCESTOR: login.toml: op 3 (pin-edge): header and footer share no ancestor",
		},
		{
			name: "different inner code kept",
			err:  Wrap(ErrCodeInternal, New(ErrCodeInvalidInput, "cannot activate nil constraint"), "activate 1 constraints"),
			want: "INTERNAL_ERROR: activate 1 constraints: INVALID_INPUT: cannot activate nil constraint",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWrapOpPrefix(t *testing.T) {
	inner := New(ErrCodeNoCommonAncestor, "card and sidebar share no ancestor")
	err := error(Wrap(GetCode(inner), inner, "op %d (%s)", 5, "align-axis"))

	if got := GetCode(err); got != ErrCodeNoCommonAncestor {
		t.Errorf("GetCode() = %v, want %v", got, ErrCodeNoCommonAncestor)
	}
	if !Is(err, ErrCodeNoCommonAncestor) {
		t.Error("Is(err, NO_COMMON_ANCESTOR) = false, want true")
	}
	if !errors.Is(err, inner) {
		t.Error("errors.Is(err, inner) = false, want true")
	}
	if errors.Unwrap(err) != inner {
		t.Errorf("Unwrap() = %v, want %v", errors.Unwrap(err), inner)
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code Code
		want bool
	}{
		{"matching code", New(ErrCodeNoSuperview, "root has no superview"), ErrCodeNoSuperview, true},
		{"other code", New(ErrCodeNoSuperview, "root has no superview"), ErrCodeNoCommonAncestor, false},
		{"outermost code wins", Wrap(ErrCodeInternal, New(ErrCodeInvalidInput, "nil"), "activate"), ErrCodeInternal, true},
		{"through fmt wrapping", fmt.Errorf("login.toml: %w", New(ErrCodeNotFound, "view %q", "x")), ErrCodeNotFound, true},
		{"plain error", errors.New("plain"), ErrCodeInvalidInput, false},
		{"nil", nil, ErrCodeInvalidInput, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.want {
				t.Errorf("Is() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Code
	}{
		{"pairing", New(ErrCodeInvalidAttributePairing, "width vs left"), ErrCodeInvalidAttributePairing},
		{"through fmt wrapping", fmt.Errorf("check: %w", New(ErrCodeInvalidFormat, "bad toml")), ErrCodeInvalidFormat},
		{"plain", errors.New("plain"), ""},
		{"nil", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetCode(tt.err); got != tt.want {
				t.Errorf("GetCode() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestUserMessage(t *testing.T) {
	inner := New(ErrCodeNoSuperview, "title has no superview")
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"single", New(ErrCodeInvalidPriority, "priority 0 out of range"), "priority 0 out of range"},
		{"op prefix", Wrap(ErrCodeNoSuperview, inner, "op 0 (pin-edge-to-superview)"), "op 0 (pin-edge-to-superview): title has no superview"},
		{"foreign cause", Wrap(ErrCodeInvalidFormat, errors.New("line 3: expected '='"), "decode blueprint"), "decode blueprint: line 3: expected '='"},
		{"plain", errors.New("plain error"), "plain error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UserMessage(tt.err); got != tt.want {
				t.Errorf("UserMessage() = %q, want %q", got, tt.want)
			}
		})
	}
}
