package main

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/paged-go/paged/internal/testutil"
	"github.com/paged-go/paged/pkg/paged"
)

func TestHealthEndpoint(t *testing.T) {
	req := httptest.NewRequest("GET", "/healthz", nil)
	w := httptest.NewRecorder()

	healthHandler(w, req)

	resp := w.Result()
	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
	if string(body) != "OK" {
		t.Errorf("body = %q, want OK", string(body))
	}
}

func TestParseOptionalInt(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    *int
		wantErr bool
	}{
		{"absent", "", nil, false},
		{"valid", "3", paged.Int(3), false},
		{"zero", "0", paged.Int(0), false},
		{"negative passes through", "-2", paged.Int(-2), false},
		{"not a number", "abc", nil, true},
		{"float", "1.5", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseOptionalInt(tt.raw)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("parseOptionalInt(%q) error = %v", tt.raw, err)
			}
			switch {
			case tt.want == nil && got != nil:
				t.Errorf("got %d, want nil", *got)
			case tt.want != nil && got == nil:
				t.Errorf("got nil, want %d", *tt.want)
			case tt.want != nil && *got != *tt.want:
				t.Errorf("got %d, want %d", *got, *tt.want)
			}
		})
	}
}

func TestItemsHandler(t *testing.T) {
	query := &testutil.FakeQuery[string]{
		Items: []string{"I1", "I2", "I3", "I4", "I5"},
	}
	handler := itemsHandler(query)

	t.Run("middle page", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/items?page=2&size=2", nil)
		w := httptest.NewRecorder()

		handler(w, req)

		resp := w.Result()
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("status = %d, want 200", resp.StatusCode)
		}

		var page paged.Page[string]
		if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if len(page.Items) != 2 || page.Items[0] != "I3" {
			t.Errorf("Items = %v, want [I3 I4]", page.Items)
		}
		if page.TotalPages != 3 || !page.HasNextPage {
			t.Errorf("metadata = (%d pages, next %v), want (3, true)", page.TotalPages, page.HasNextPage)
		}
	})

	t.Run("absent parameters return everything", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/items", nil)
		w := httptest.NewRecorder()

		handler(w, req)

		var page paged.Page[string]
		if err := json.NewDecoder(w.Result().Body).Decode(&page); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if len(page.Items) != 5 {
			t.Errorf("got %d items, want 5", len(page.Items))
		}
	})

	t.Run("negative parameter is a client error", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/items?page=-1&size=2", nil)
		w := httptest.NewRecorder()

		handler(w, req)

		if w.Result().StatusCode != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", w.Result().StatusCode)
		}
	})

	t.Run("malformed parameter is a client error", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/items?page=abc", nil)
		w := httptest.NewRecorder()

		handler(w, req)

		if w.Result().StatusCode != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", w.Result().StatusCode)
		}
	})
}

func TestLoadConfig(t *testing.T) {
	t.Run("defaults are valid", func(t *testing.T) {
		cfg, err := loadConfig()
		if err != nil {
			t.Fatalf("loadConfig() error = %v", err)
		}
		if cfg.RedisAddr != "localhost:6379" {
			t.Errorf("RedisAddr = %q, want localhost:6379", cfg.RedisAddr)
		}
		if cfg.Port != "8080" {
			t.Errorf("Port = %q, want 8080", cfg.Port)
		}
	})

	t.Run("bad port is rejected", func(t *testing.T) {
		t.Setenv("PORT", "not-a-port")
		if _, err := loadConfig(); err == nil {
			t.Error("expected validation error for non-numeric port")
		}
	})

	t.Run("bad log level is rejected", func(t *testing.T) {
		t.Setenv("LOG_LEVEL", "verbose")
		if _, err := loadConfig(); err == nil {
			t.Error("expected validation error for unknown log level")
		}
	})
}
