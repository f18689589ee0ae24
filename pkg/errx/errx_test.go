package errx_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/Abraxas-365/recruitboard/pkg/errx"
)

var testRegistry = errx.NewRegistry("TEST")

var codeMissing = testRegistry.Register("MISSING", errx.TypeNotFound, http.StatusNotFound, "Thing not found")

func TestRegistryNew(t *testing.T) {
	if codeMissing != "TEST_MISSING" {
		t.Fatalf("code = %q, want TEST_MISSING", codeMissing)
	}

	err := testRegistry.New(codeMissing).WithDetail("id", "42")
	if err.HTTPStatus != http.StatusNotFound {
		t.Errorf("status = %d, want 404", err.HTTPStatus)
	}
	if err.Type != errx.TypeNotFound {
		t.Errorf("type = %s, want NOT_FOUND", err.Type)
	}
	if err.Details["id"] != "42" {
		t.Errorf("details = %v", err.Details)
	}

	body := err.ToHTTPResponse()
	if body["code"] != "TEST_MISSING" {
		t.Errorf("body code = %v", body["code"])
	}
}

func TestRegistryNewUnknownCode(t *testing.T) {
	err := testRegistry.New("TEST_NOPE")
	if err.HTTPStatus != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", err.HTTPStatus)
	}
}

func TestWrap(t *testing.T) {
	if errx.Wrap(nil, "x", errx.TypeInternal) != nil {
		t.Fatal("Wrap(nil) should be nil")
	}

	cause := errors.New("connection reset")
	wrapped := errx.Wrap(cause, "failed to list", errx.TypeInternal)
	if !errors.Is(wrapped, cause) {
		t.Error("wrapped error should unwrap to cause")
	}
	if wrapped.HTTPStatus != http.StatusInternalServerError {
		t.Errorf("status = %d", wrapped.HTTPStatus)
	}

	registered := testRegistry.New(codeMissing)
	if got := errx.Wrap(registered, "failed", errx.TypeInternal); got != registered {
		t.Error("registered errors should pass through Wrap unchanged")
	}
	if !errx.IsCode(registered, codeMissing) {
		t.Error("IsCode should match")
	}
	if !errx.IsType(registered, errx.TypeNotFound) {
		t.Error("IsType should match")
	}
}
