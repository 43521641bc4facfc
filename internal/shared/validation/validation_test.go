package validation

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrAndAsErrors(t *testing.T) {
	verrs := New()
	if verrs.Has() {
		t.Fatal("fresh collector should have no errors")
	}
	if verrs.Err() != nil {
		t.Fatal("empty collector must yield a nil error")
	}

	verrs.Add("naziv", "The naziv field is required.")
	verrs.Addf("espb", "The espb field must be at least %d.", 1)
	if !verrs.Has() {
		t.Fatal("expected errors after Add")
	}

	err := verrs.Err()
	if err == nil {
		t.Fatal("expected a non-nil error")
	}

	recovered, ok := AsErrors(err)
	if !ok {
		t.Fatal("expected AsErrors to match")
	}
	if got := recovered.Fields["espb"][0]; got != "The espb field must be at least 1." {
		t.Fatalf("unexpected formatted message %q", got)
	}
}

func TestAsErrorsThroughWrapping(t *testing.T) {
	verrs := New()
	verrs.Add("email", "The email has already been taken.")
	wrapped := fmt.Errorf("register: %w", verrs.Err())

	recovered, ok := AsErrors(wrapped)
	if !ok {
		t.Fatal("expected AsErrors to unwrap")
	}
	if len(recovered.Fields["email"]) != 1 {
		t.Fatalf("unexpected fields: %+v", recovered.Fields)
	}
}

func TestAsErrorsRejectsOtherErrors(t *testing.T) {
	if _, ok := AsErrors(errors.New("boom")); ok {
		t.Fatal("plain errors must not match")
	}
}

func TestAddAccumulatesPerField(t *testing.T) {
	verrs := New()
	verrs.Add("password", "The password must be at least 8 characters.")
	verrs.Add("password", "The password confirmation does not match.")
	if len(verrs.Fields["password"]) != 2 {
		t.Fatalf("expected two messages, got %+v", verrs.Fields["password"])
	}
}
