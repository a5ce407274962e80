package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError(t *testing.T) {
	cause := errors.New("dynamodb timeout")
	e := NewDomainError("COMMIT_FAILED", "Could not commit", cause, http.StatusServiceUnavailable)

	if !errors.Is(e, cause) {
		t.Fatalf("expected AppError to unwrap to its cause")
	}
	if e.Error() != "COMMIT_FAILED: Could not commit: dynamodb timeout" {
		t.Fatalf("unexpected error string: %s", e.Error())
	}

	body := e.ToHTTPError()
	if body.Code != "COMMIT_FAILED" || body.Message != "Could not commit" || body.Details != nil {
		t.Fatalf("unexpected http body: %+v", body)
	}

	simple := NewDomainErrorSimple("NOT_FOUND", "Not found", http.StatusNotFound)
	withDetails := simple.WithDetails([]string{"a"})
	if simple.Details != nil {
		t.Fatalf("WithDetails must not mutate the receiver")
	}
	if withDetails.ToHTTPError().Details == nil || withDetails.HTTPStatus != http.StatusNotFound {
		t.Fatalf("unexpected details copy: %+v", withDetails)
	}
	if simple.Error() != "NOT_FOUND: Not found" {
		t.Fatalf("unexpected error string: %s", simple.Error())
	}
}
