package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestWrapPreservesCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := Wrap(CodeDependency, cause, "pinging redis")

	if !errors.Is(err, cause) {
		t.Fatalf("expected wrapped error to match cause")
	}
	if err.Code() != CodeDependency {
		t.Fatalf("unexpected code %q", err.Code())
	}
}

func TestAsFindsTypedErrorInChain(t *testing.T) {
	typed := New(CodeNotFound, "program not found")
	wrapped := fmt.Errorf("loading program: %w", typed)

	got := As(wrapped)
	if got == nil {
		t.Fatal("expected typed error in chain")
	}
	if got.Code() != CodeNotFound {
		t.Fatalf("unexpected code %q", got.Code())
	}
}

func TestAsReturnsNilForPlainErrors(t *testing.T) {
	if got := As(errors.New("plain")); got != nil {
		t.Fatalf("expected nil for untyped error, got %+v", got)
	}
}

func TestMetadataForUnknownCodeFallsBack(t *testing.T) {
	meta := MetadataFor(Code("NOPE"))
	if meta.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("unexpected status %d", meta.HTTPStatus)
	}
}

func TestDumpCollectsChain(t *testing.T) {
	inner := errors.New("boom")
	err := Wrap(CodeInternal, inner, "outer")

	d := Dump(err)
	if d.Code != CodeInternal {
		t.Fatalf("unexpected code %q", d.Code)
	}
	if len(d.Chain) < 2 {
		t.Fatalf("expected full chain, got %v", d.Chain)
	}
}

func TestWithDetails(t *testing.T) {
	err := New(CodeValidation, "validation failed").WithDetails(map[string]string{"name": "is required"})
	details, ok := err.Details().(map[string]string)
	if !ok {
		t.Fatalf("unexpected details type %T", err.Details())
	}
	if details["name"] != "is required" {
		t.Fatalf("unexpected details %v", details)
	}
}
