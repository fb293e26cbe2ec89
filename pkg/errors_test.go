package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError(t *testing.T) {
	cause := errors.New("db down")
	e := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, http.StatusInternalServerError)
	if !errors.Is(e, cause) {
		t.Fatalf("expected wrapped cause")
	}
	if e.Error() != "An internal error occurred: db down" {
		t.Fatalf("unexpected message %q", e.Error())
	}

	simple := NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	withField := simple.WithField("project_sqft")
	if simple.Field != "" {
		t.Fatalf("WithField must not mutate the receiver")
	}
	body := withField.ToHTTPError()
	if body.Code != "INVALID_REQUEST" || body.Field != "project_sqft" {
		t.Fatalf("unexpected body %+v", body)
	}
}
