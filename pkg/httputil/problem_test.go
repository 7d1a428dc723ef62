package httputil

import (
	"encoding/json"
	"net/http"
	"testing"
)

func TestNewProblemDetail(t *testing.T) {
	p := NewProblemDetail(400, "Bad Request", "Pseudonym could not be decrypted")

	if p.Type != "about:blank" {
		t.Errorf("Type = %q, want %q", p.Type, "about:blank")
	}
	if p.Title != "Bad Request" {
		t.Errorf("Title = %q, want %q", p.Title, "Bad Request")
	}
	if p.Status != 400 {
		t.Errorf("Status = %d, want %d", p.Status, 400)
	}
	if p.Detail != "Pseudonym could not be decrypted" {
		t.Errorf("Detail = %q, want %q", p.Detail, "Pseudonym could not be decrypted")
	}
}

func TestBadRequest(t *testing.T) {
	p := BadRequest("missing required field")
	if p.Status != http.StatusBadRequest {
		t.Errorf("Status = %d, want %d", p.Status, http.StatusBadRequest)
	}
	if p.Title != "Bad Request" {
		t.Errorf("Title = %q, want %q", p.Title, "Bad Request")
	}
}

func TestNotFound(t *testing.T) {
	p := NotFound("pseudonym key not found")
	if p.Status != http.StatusNotFound {
		t.Errorf("Status = %d, want %d", p.Status, http.StatusNotFound)
	}
	if p.Title != "Not Found" {
		t.Errorf("Title = %q, want %q", p.Title, "Not Found")
	}
}

func TestInternalServerError(t *testing.T) {
	p := InternalServerError("database connection failed")
	if p.Status != http.StatusInternalServerError {
		t.Errorf("Status = %d, want %d", p.Status, http.StatusInternalServerError)
	}
	if p.Title != "Internal Server Error" {
		t.Errorf("Title = %q, want %q", p.Title, "Internal Server Error")
	}
}

func TestProblemDetailJSONOmitsEmptyDetail(t *testing.T) {
	p := NewProblemDetail(500, "Internal Server Error", "")
	data, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}

	// detailフィールドが含まれていないことを確認
	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("json.Unmarshal() error = %v", err)
	}

	if _, exists := raw["detail"]; exists {
		t.Error("JSON should omit empty detail field")
	}
}

func TestContentType(t *testing.T) {
	if ContentType != "application/problem+json" {
		t.Errorf("ContentType = %q, want %q", ContentType, "application/problem+json")
	}
}
