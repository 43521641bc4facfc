package httpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"golang.org/x/crypto/bcrypt"

	coursecatalog "studentska/contexts/academics/course-catalog-service"
	examenrollment "studentska/contexts/academics/exam-enrollment-service"
	catalogadapter "studentska/contexts/academics/exam-enrollment-service/adapters/catalog"
	identity "studentska/contexts/identity-access/identity-service"
	identityentities "studentska/contexts/identity-access/identity-service/domain/entities"
)

func newTestServer() *Server {
	ledgerStore := examenrollment.NewStore()
	catalogModule := coursecatalog.NewInMemoryModule(ledgerStore, slog.Default())
	ledgerModule := examenrollment.NewModule(examenrollment.Dependencies{
		Enrollments: ledgerStore,
		Courses:     catalogadapter.Directory{Courses: catalogModule.Store},
		Clock:       ledgerStore,
		IDGenerator: ledgerStore,
		Logger:      slog.Default(),
	})
	ledgerModule.Store = ledgerStore
	identityModule := identity.NewInMemoryModule(ledgerStore, "test-secret", slog.Default())
	return New(catalogModule, ledgerModule, identityModule, slog.Default(), ":0")
}

func doJSON(t *testing.T, server *Server, method, target, token string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	var body *bytes.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		body = bytes.NewReader(raw)
	} else {
		body = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, target, body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	return rr
}

var registerSequence int

// registerAndLogin creates a fresh student account through the public API
// and returns its bearer token.
func registerAndLogin(t *testing.T, server *Server) string {
	t.Helper()
	registerSequence++
	email := fmt.Sprintf("student%d@example.com", registerSequence)
	rr := doJSON(t, server, http.MethodPost, "/api/register", "", map[string]string{
		"ime":                   "Mila",
		"prezime":               "Petrović",
		"broj_indeksa":          fmt.Sprintf("2023/%04d", registerSequence),
		"email":                 email,
		"password":              "lozinka123",
		"password_confirmation": "lozinka123",
	})
	if rr.Code != http.StatusCreated {
		t.Fatalf("register: expected 201, got %d body=%s", rr.Code, rr.Body.String())
	}
	return loginAs(t, server, email, "lozinka123")
}

// seedAdminAndLogin plants an admin account directly in the store; the
// public API only registers students.
func seedAdminAndLogin(t *testing.T, server *Server) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("adminpass123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash admin password: %v", err)
	}
	err = server.identity.Store.Create(context.Background(), identityentities.Account{
		ID:           "admin-1",
		FirstName:    "Ana",
		LastName:     "Adminović",
		IndexNumber:  "admin-1",
		Email:        "admin@example.com",
		PasswordHash: string(hash),
		Status:       "zaposlen",
		Role:         "admin",
	})
	if err != nil {
		t.Fatalf("seed admin: %v", err)
	}
	return loginAs(t, server, "admin@example.com", "adminpass123")
}

func loginAs(t *testing.T, server *Server, email, password string) string {
	t.Helper()
	rr := doJSON(t, server, http.MethodPost, "/api/login", "", map[string]string{
		"email":    email,
		"password": password,
	})
	if rr.Code != http.StatusOK {
		t.Fatalf("login: expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}
	var resp struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode login response: %v", err)
	}
	if resp.TokenType != "Bearer" {
		t.Fatalf("expected token_type Bearer, got %q", resp.TokenType)
	}
	if resp.AccessToken == "" {
		t.Fatal("expected a non-empty access token")
	}
	return resp.AccessToken
}

func TestRegisterValidatesRequiredFields(t *testing.T) {
	server := newTestServer()
	rr := doJSON(t, server, http.MethodPost, "/api/register", "", map[string]string{
		"email": "not-an-email",
	})
	if rr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d body=%s", rr.Code, rr.Body.String())
	}
	var fields map[string][]string
	if err := json.Unmarshal(rr.Body.Bytes(), &fields); err != nil {
		t.Fatalf("decode validation body: %v", err)
	}
	for _, field := range []string{"ime", "prezime", "broj_indeksa", "email", "password"} {
		if len(fields[field]) == 0 {
			t.Fatalf("expected a validation message for %q, body=%s", field, rr.Body.String())
		}
	}
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	server := newTestServer()
	payload := map[string]string{
		"ime":                   "Mila",
		"prezime":               "Petrović",
		"broj_indeksa":          "2023/0001",
		"email":                 "mila@example.com",
		"password":              "lozinka123",
		"password_confirmation": "lozinka123",
	}
	if rr := doJSON(t, server, http.MethodPost, "/api/register", "", payload); rr.Code != http.StatusCreated {
		t.Fatalf("first register: expected 201, got %d body=%s", rr.Code, rr.Body.String())
	}

	payload["broj_indeksa"] = "2023/0002"
	rr := doJSON(t, server, http.MethodPost, "/api/register", "", payload)
	if rr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d body=%s", rr.Code, rr.Body.String())
	}
	var fields map[string][]string
	if err := json.Unmarshal(rr.Body.Bytes(), &fields); err != nil {
		t.Fatalf("decode validation body: %v", err)
	}
	if len(fields["email"]) == 0 {
		t.Fatalf("expected an email validation message, body=%s", rr.Body.String())
	}
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	server := newTestServer()
	registerAndLogin(t, server)

	rr := doJSON(t, server, http.MethodPost, "/api/login", "", map[string]string{
		"email":    fmt.Sprintf("student%d@example.com", registerSequence),
		"password": "pogresna-lozinka",
	})
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d body=%s", rr.Code, rr.Body.String())
	}
	var resp struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if resp.Message != "Pogrešni podaci." {
		t.Fatalf("expected Pogrešni podaci., got %q", resp.Message)
	}
}

func TestLogoutRevokesToken(t *testing.T) {
	server := newTestServer()
	token := registerAndLogin(t, server)

	rr := doJSON(t, server, http.MethodPost, "/api/logout", token, nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("logout: expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}

	// The signature is still valid but the token row is gone.
	rr = doJSON(t, server, http.MethodGet, "/api/enroll", token, nil)
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 after logout, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	server := newTestServer()
	rr := doJSON(t, server, http.MethodGet, "/api/courses", "", nil)
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestStudentsCreateIsMethodNotAllowed(t *testing.T) {
	server := newTestServer()
	token := registerAndLogin(t, server)

	rr := doJSON(t, server, http.MethodPost, "/api/students", token, map[string]string{"ime": "Mila"})
	if rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestStudentsListIsAdminOnly(t *testing.T) {
	server := newTestServer()
	studentToken := registerAndLogin(t, server)

	rr := doJSON(t, server, http.MethodGet, "/api/students", studentToken, nil)
	if rr.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for student, got %d body=%s", rr.Code, rr.Body.String())
	}

	adminToken := seedAdminAndLogin(t, server)
	rr = doJSON(t, server, http.MethodGet, "/api/students", adminToken, nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 for admin, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestAdminUpdatesAndDeletesStudent(t *testing.T) {
	server := newTestServer()
	registerAndLogin(t, server)
	adminToken := seedAdminAndLogin(t, server)

	list := doJSON(t, server, http.MethodGet, "/api/students", adminToken, nil)
	var listResp struct {
		Data []struct {
			ID    string `json:"id"`
			Uloga string `json:"uloga"`
		} `json:"data"`
	}
	if err := json.Unmarshal(list.Body.Bytes(), &listResp); err != nil {
		t.Fatalf("decode students list: %v", err)
	}
	var studentID string
	for _, row := range listResp.Data {
		if row.Uloga == "student" {
			studentID = row.ID
			break
		}
	}
	if studentID == "" {
		t.Fatalf("expected a student row, body=%s", list.Body.String())
	}

	rr := doJSON(t, server, http.MethodPut, "/api/students/"+studentID, adminToken, map[string]string{
		"ime":    "Milica",
		"status": "budzet",
	})
	if rr.Code != http.StatusOK {
		t.Fatalf("update: expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}
	var updated struct {
		Ime    string `json:"ime"`
		Status string `json:"status"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &updated); err != nil {
		t.Fatalf("decode updated student: %v", err)
	}
	if updated.Ime != "Milica" || updated.Status != "budzet" {
		t.Fatalf("unexpected updated student: %+v", updated)
	}

	rr = doJSON(t, server, http.MethodDelete, "/api/students/"+studentID, adminToken, nil)
	if rr.Code != http.StatusNoContent {
		t.Fatalf("delete: expected 204, got %d body=%s", rr.Code, rr.Body.String())
	}
	rr = doJSON(t, server, http.MethodGet, "/api/students/"+studentID, adminToken, nil)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestConfirmationDownload(t *testing.T) {
	server := newTestServer()
	token := registerAndLogin(t, server)

	req := httptest.NewRequest(http.MethodGet, "/api/student-confirmation-pdf", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}
	if got := rr.Header().Get("Content-Disposition"); got == "" {
		t.Fatal("expected a Content-Disposition header")
	}
	if !bytes.Contains(rr.Body.Bytes(), []byte("Mila")) {
		t.Fatalf("expected the student name in the document, body=%s", rr.Body.String())
	}
}
