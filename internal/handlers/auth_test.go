package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"todo_service/internal/service"
)

func postJSON(r http.Handler, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestRegister(t *testing.T) {
	t.Run("success returns 201 with the new id", func(t *testing.T) {
		auth := &mockAuth{signUpID: 1}
		r := newTestRouter(&service.Service{Authorization: auth})

		w := postJSON(r, "/register", `{"username":"alice","password":"secret"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
		}
		var m map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &m)
		if int(m["id"].(float64)) != 1 {
			t.Fatalf("expected id=1, got %v", m["id"])
		}
		if auth.lastSignUpUsername != "alice" {
			t.Fatalf("SignUp got username %q", auth.lastSignUpUsername)
		}
	})

	t.Run("missing fields return 400", func(t *testing.T) {
		auth := &mockAuth{}
		r := newTestRouter(&service.Service{Authorization: auth})

		for _, body := range []string{`{}`, `{"username":"alice"}`, `{"password":"secret"}`} {
			w := postJSON(r, "/register", body)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("body %s: expected 400, got %d", body, w.Code)
			}
			var out struct {
				Error string `json:"error"`
			}
			_ = json.Unmarshal(w.Body.Bytes(), &out)
			if out.Error != errMissingCredentials {
				t.Fatalf("body %s: error message %q", body, out.Error)
			}
		}
	})

	t.Run("duplicate username returns 400 with the store message", func(t *testing.T) {
		storeErr := errors.New("insert user \"alice\": UNIQUE constraint failed: users.username")
		auth := &mockAuth{signUpErr: storeErr}
		r := newTestRouter(&service.Service{Authorization: auth})

		w := postJSON(r, "/register", `{"username":"alice","password":"secret"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
		}
		var out struct {
			Error string `json:"error"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &out)
		if out.Error != storeErr.Error() {
			t.Fatalf("expected the store's message verbatim, got %q", out.Error)
		}
	})

	t.Run("hashing failure returns 500 and registers nothing", func(t *testing.T) {
		auth := &mockAuth{signUpErr: fmt.Errorf("%w: entropy source failed", service.ErrHashPassword)}
		r := newTestRouter(&service.Service{Authorization: auth})

		w := postJSON(r, "/register", `{"username":"alice","password":"secret"}`)
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
		}
	})
}

func TestLogin(t *testing.T) {
	t.Run("success returns the access token", func(t *testing.T) {
		auth := &mockAuth{genToken: "tok123"}
		r := newTestRouter(&service.Service{Authorization: auth})

		w := postJSON(r, "/login", `{"username":"alice","password":"secret"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
		}
		var m map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &m)
		if m["accessToken"] != "tok123" {
			t.Fatalf("expected accessToken=tok123, got %v", m["accessToken"])
		}
	})

	t.Run("unknown user returns 400", func(t *testing.T) {
		auth := &mockAuth{genTokenErr: service.ErrUserNotFound}
		r := newTestRouter(&service.Service{Authorization: auth})

		w := postJSON(r, "/login", `{"username":"ghost","password":"pw"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
		}
		var out struct {
			Error string `json:"error"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &out)
		if out.Error != "User not found" {
			t.Fatalf("error message %q", out.Error)
		}
	})

	t.Run("wrong password returns 400 and no token", func(t *testing.T) {
		auth := &mockAuth{genTokenErr: service.ErrInvalidPassword}
		r := newTestRouter(&service.Service{Authorization: auth})

		w := postJSON(r, "/login", `{"username":"alice","password":"wrong"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
		}
		var out struct {
			Error       string `json:"error"`
			AccessToken string `json:"accessToken"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &out)
		if out.Error != "Invalid credentials" {
			t.Fatalf("error message %q", out.Error)
		}
		if out.AccessToken != "" {
			t.Fatalf("no token must be issued on bad credentials")
		}
	})

	t.Run("store failure returns 500", func(t *testing.T) {
		auth := &mockAuth{genTokenErr: errors.New("db down")}
		r := newTestRouter(&service.Service{Authorization: auth})

		w := postJSON(r, "/login", `{"username":"alice","password":"secret"}`)
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
		}
	})
}
