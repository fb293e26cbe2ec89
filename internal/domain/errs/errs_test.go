package errs

import (
	"context"
	"errors"
	"testing"
)

func TestKinds(t *testing.T) {
	err := Invalid("project_sqft", "must be greater than zero")
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected validation kind")
	}
	if FieldOf(err) != "project_sqft" {
		t.Fatalf("expected field project_sqft, got %q", FieldOf(err))
	}

	p := Persistence("put quote request", context.DeadlineExceeded)
	if !errors.Is(p, ErrPersistence) || !errors.Is(p, context.DeadlineExceeded) {
		t.Fatalf("expected persistence kind wrapping cause, got %v", p)
	}
	if Persistence("noop", nil) != nil || Upstream("noop", nil) != nil {
		t.Fatalf("nil causes must stay nil")
	}

	u := Upstream("pricing", errors.New("503"))
	if !errors.Is(u, ErrUpstreamUnavailable) {
		t.Fatalf("expected upstream kind")
	}
	if FieldOf(u) != "" {
		t.Fatalf("non-validation errors have no field")
	}
}
