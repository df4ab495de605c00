package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestClassifyKeepsMessage(t *testing.T) {
	cause := errors.New("network timeout")
	err := Classify(KindRemote, cause)

	if err.Error() != "network timeout" {
		t.Errorf("Error() = %q, want %q", err.Error(), "network timeout")
	}
	if KindOf(err) != KindRemote {
		t.Errorf("KindOf() = %v, want %v", KindOf(err), KindRemote)
	}
	if !Is(err, cause) {
		t.Error("classified error should unwrap to its cause")
	}
}

func TestClassifyDoesNotReclassify(t *testing.T) {
	inner := New(KindMissingCredential, "No API key found.")
	wrapped := fmt.Errorf("login: %w", inner)

	if got := KindOf(Classify(KindRemote, wrapped)); got != KindMissingCredential {
		t.Errorf("KindOf() = %v, want %v", got, KindMissingCredential)
	}
}

func TestClassifyNil(t *testing.T) {
	if Classify(KindRemote, nil) != nil {
		t.Error("Classify(nil) should be nil")
	}
}

func TestKindOfPlainError(t *testing.T) {
	if got := KindOf(errors.New("boom")); got != KindUnknown {
		t.Errorf("KindOf() = %v, want %v", got, KindUnknown)
	}
}

func TestErrorMessageFallbacks(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{"message", &Error{Kind: KindRemote, Message: "bad"}, "bad"},
		{"cause", &Error{Kind: KindRemote, Err: errors.New("cause")}, "cause"},
		{"kind only", &Error{Kind: KindSubprocess}, "subprocess error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWrap(t *testing.T) {
	if Wrap(nil, "ctx") != nil {
		t.Error("Wrap(nil) should be nil")
	}
	err := Wrapf(ErrNoTeams, "team %s", "T1")
	if err.Error() != "team T1: no teams available" {
		t.Errorf("Wrapf() = %q", err.Error())
	}
	if !Is(err, ErrNoTeams) {
		t.Error("Wrapf() should keep the sentinel")
	}
}
