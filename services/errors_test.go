package services

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestAppErrorMessageOnly(t *testing.T) {
	err := newAppError(http.StatusNotFound, "folder not found", nil)
	if err.Error() != "folder not found" {
		t.Fatalf("unexpected message: %q", err.Error())
	}
	if err.Unwrap() != nil {
		t.Fatalf("expected nil wrapped error")
	}
}

func TestAppErrorWrapsCause(t *testing.T) {
	cause := fmt.Errorf("connection refused")
	err := newAppError(http.StatusInternalServerError, "failed to list folders", cause)

	if !errors.Is(err, cause) {
		t.Fatalf("expected errors.Is to find the cause")
	}
	want := "failed to list folders: connection refused"
	if err.Error() != want {
		t.Fatalf("expected %q, got %q", want, err.Error())
	}
}
