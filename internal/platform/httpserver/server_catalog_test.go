package httpserver

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
)

type coursePayload struct {
	Naziv         string `json:"naziv"`
	SifraPredmeta string `json:"sifra_predmeta"`
	Espb          int    `json:"espb"`
	Semestar      *int   `json:"semestar,omitempty"`
	Godina        *int   `json:"godina,omitempty"`
}

type courseBody struct {
	Data struct {
		ID       string `json:"id"`
		Naziv    string `json:"naziv"`
		Sifra    string `json:"sifra"`
		Espb     int    `json:"espb"`
		Semestar *int   `json:"semestar"`
		Godina   *int   `json:"godina"`
	} `json:"data"`
	Message string `json:"message"`
}

type searchBody struct {
	Data []struct {
		ID    string `json:"id"`
		Naziv string `json:"naziv"`
		Sifra string `json:"sifra"`
		Espb  int    `json:"espb"`
	} `json:"data"`
	Meta struct {
		CurrentPage int  `json:"current_page"`
		LastPage    int  `json:"last_page"`
		PerPage     int  `json:"per_page"`
		Total       int  `json:"total"`
		From        *int `json:"from"`
		To          *int `json:"to"`
	} `json:"meta"`
	Links struct {
		First string  `json:"first"`
		Last  string  `json:"last"`
		Prev  *string `json:"prev"`
		Next  *string `json:"next"`
	} `json:"links"`
}

func createCourse(t *testing.T, server *Server, token string, payload coursePayload) string {
	t.Helper()
	rr := doJSON(t, server, http.MethodPost, "/api/courses", token, payload)
	if rr.Code != http.StatusCreated {
		t.Fatalf("create course: expected 201, got %d body=%s", rr.Code, rr.Body.String())
	}
	var body courseBody
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode course: %v", err)
	}
	return body.Data.ID
}

func TestCourseWriteIsAdminOnly(t *testing.T) {
	server := newTestServer()
	studentToken := registerAndLogin(t, server)

	rr := doJSON(t, server, http.MethodPost, "/api/courses", studentToken, coursePayload{
		Naziv:         "Analiza 1",
		SifraPredmeta: "MA101",
		Espb:          8,
	})
	if rr.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for student, got %d body=%s", rr.Code, rr.Body.String())
	}
	var resp struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if resp.Message != "Unauthorized" {
		t.Fatalf("expected Unauthorized, got %q", resp.Message)
	}
}

func TestCourseCreateValidatesFields(t *testing.T) {
	server := newTestServer()
	adminToken := seedAdminAndLogin(t, server)

	rr := doJSON(t, server, http.MethodPost, "/api/courses", adminToken, coursePayload{
		Naziv:         "",
		SifraPredmeta: "A-CODE-FAR-TOO-LONG",
		Espb:          45,
	})
	if rr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d body=%s", rr.Code, rr.Body.String())
	}
	var fields map[string][]string
	if err := json.Unmarshal(rr.Body.Bytes(), &fields); err != nil {
		t.Fatalf("decode validation body: %v", err)
	}
	for _, field := range []string{"naziv", "sifra_predmeta", "espb"} {
		if len(fields[field]) == 0 {
			t.Fatalf("expected a validation message for %q, body=%s", field, rr.Body.String())
		}
	}
}

func TestCourseCreateValidatesSemesterAndYearRange(t *testing.T) {
	server := newTestServer()
	adminToken := seedAdminAndLogin(t, server)

	semestar, godina := 9, 5
	rr := doJSON(t, server, http.MethodPost, "/api/courses", adminToken, coursePayload{
		Naziv:         "Analiza 1",
		SifraPredmeta: "MA101",
		Espb:          8,
		Semestar:      &semestar,
		Godina:        &godina,
	})
	if rr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d body=%s", rr.Code, rr.Body.String())
	}
	var fields map[string][]string
	if err := json.Unmarshal(rr.Body.Bytes(), &fields); err != nil {
		t.Fatalf("decode validation body: %v", err)
	}
	for _, field := range []string{"semestar", "godina"} {
		if len(fields[field]) == 0 {
			t.Fatalf("expected a validation message for %q, body=%s", field, rr.Body.String())
		}
	}
}

func TestCourseCreateRejectsDuplicateCode(t *testing.T) {
	server := newTestServer()
	adminToken := seedAdminAndLogin(t, server)

	createCourse(t, server, adminToken, coursePayload{Naziv: "Analiza 1", SifraPredmeta: "MA101", Espb: 8})
	rr := doJSON(t, server, http.MethodPost, "/api/courses", adminToken, coursePayload{
		Naziv:         "Analiza 2",
		SifraPredmeta: "MA101",
		Espb:          7,
	})
	if rr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d body=%s", rr.Code, rr.Body.String())
	}
	var fields map[string][]string
	if err := json.Unmarshal(rr.Body.Bytes(), &fields); err != nil {
		t.Fatalf("decode validation body: %v", err)
	}
	if len(fields["sifra_predmeta"]) == 0 {
		t.Fatalf("expected a sifra_predmeta validation message, body=%s", rr.Body.String())
	}
}

func TestCourseUpdateAndGet(t *testing.T) {
	server := newTestServer()
	adminToken := seedAdminAndLogin(t, server)
	courseID := createCourse(t, server, adminToken, coursePayload{Naziv: "Analiza 1", SifraPredmeta: "MA101", Espb: 8})

	rr := doJSON(t, server, http.MethodPut, "/api/courses/"+courseID, adminToken, map[string]any{
		"naziv": "Matematička analiza 1",
		"espb":  9,
	})
	if rr.Code != http.StatusOK {
		t.Fatalf("update: expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}

	rr = doJSON(t, server, http.MethodGet, "/api/courses/"+courseID, adminToken, nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("get: expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}
	var body courseBody
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode course: %v", err)
	}
	if body.Data.Naziv != "Matematička analiza 1" || body.Data.Espb != 9 {
		t.Fatalf("unexpected course after update: %+v", body.Data)
	}
	if body.Data.Sifra != "MA101" {
		t.Fatalf("expected untouched code MA101, got %q", body.Data.Sifra)
	}
}

func TestCourseGetUnknownIs404(t *testing.T) {
	server := newTestServer()
	token := registerAndLogin(t, server)

	rr := doJSON(t, server, http.MethodGet, "/api/courses/course-999", token, nil)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestCourseDeleteCascadesEnrollments(t *testing.T) {
	server := newTestServer()
	adminToken := seedAdminAndLogin(t, server)
	studentToken := registerAndLogin(t, server)
	courseID := createCourse(t, server, adminToken, coursePayload{Naziv: "Analiza 1", SifraPredmeta: "MA101", Espb: 8})

	rr := doJSON(t, server, http.MethodPost, "/api/enroll", studentToken, map[string]string{"course_id": courseID})
	if rr.Code != http.StatusCreated {
		t.Fatalf("enroll: expected 201, got %d body=%s", rr.Code, rr.Body.String())
	}

	rr = doJSON(t, server, http.MethodDelete, "/api/courses/"+courseID, adminToken, nil)
	if rr.Code != http.StatusNoContent {
		t.Fatalf("delete: expected 204, got %d body=%s", rr.Code, rr.Body.String())
	}

	rr = doJSON(t, server, http.MethodGet, "/api/enroll", studentToken, nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("list enrollments: expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}
	var list struct {
		Data []json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &list); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(list.Data) != 0 {
		t.Fatalf("expected no enrollments after course delete, got %d", len(list.Data))
	}
}

func seedSearchFixture(t *testing.T, server *Server, adminToken string) {
	t.Helper()
	semWinter, semSummer := 1, 2
	yearOne := 1
	fixture := []coursePayload{
		{Naziv: "Uvod u programiranje", SifraPredmeta: "CS101", Espb: 8, Semestar: &semWinter, Godina: &yearOne},
		{Naziv: "Strukture podataka", SifraPredmeta: "CS202", Espb: 7, Semestar: &semSummer, Godina: &yearOne},
		{Naziv: "Analiza 1", SifraPredmeta: "MA101", Espb: 9, Semestar: &semWinter, Godina: &yearOne},
		{Naziv: "Engleski jezik", SifraPredmeta: "EN100", Espb: 3, Semestar: &semWinter, Godina: &yearOne},
	}
	for _, course := range fixture {
		createCourse(t, server, adminToken, course)
	}
}

func TestSearchFiltersByMinimumCredits(t *testing.T) {
	server := newTestServer()
	adminToken := seedAdminAndLogin(t, server)
	seedSearchFixture(t, server, adminToken)

	rr := doJSON(t, server, http.MethodGet, "/api/courses-search?espb_min=7", adminToken, nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}
	var body searchBody
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode search body: %v", err)
	}
	if body.Meta.Total != 3 {
		t.Fatalf("expected 3 matches, got %d body=%s", body.Meta.Total, rr.Body.String())
	}
	for _, row := range body.Data {
		if row.Espb < 7 {
			t.Fatalf("course %s has espb %d below the filter", row.Sifra, row.Espb)
		}
	}
}

func TestSearchSortsByCreditsDescending(t *testing.T) {
	server := newTestServer()
	adminToken := seedAdminAndLogin(t, server)
	seedSearchFixture(t, server, adminToken)

	rr := doJSON(t, server, http.MethodGet, "/api/courses-search?sort_by=espb&sort_order=desc", adminToken, nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}
	var body searchBody
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode search body: %v", err)
	}
	for i := 1; i < len(body.Data); i++ {
		if body.Data[i].Espb > body.Data[i-1].Espb {
			t.Fatalf("results not sorted descending by espb: %+v", body.Data)
		}
	}
}

func TestSearchUnknownSortFallsBackToName(t *testing.T) {
	server := newTestServer()
	adminToken := seedAdminAndLogin(t, server)
	seedSearchFixture(t, server, adminToken)

	rr := doJSON(t, server, http.MethodGet, "/api/courses-search?sort_by=bogus", adminToken, nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}
	var body searchBody
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode search body: %v", err)
	}
	if len(body.Data) == 0 || body.Data[0].Naziv != "Analiza 1" {
		t.Fatalf("expected name-ascending order, body=%s", rr.Body.String())
	}
}

func TestSearchPaginationDefaultsAndClamp(t *testing.T) {
	server := newTestServer()
	adminToken := seedAdminAndLogin(t, server)
	for i := 0; i < 20; i++ {
		createCourse(t, server, adminToken, coursePayload{
			Naziv:         fmt.Sprintf("Predmet %02d", i),
			SifraPredmeta: fmt.Sprintf("PR%03d", i),
			Espb:          5,
		})
	}

	rr := doJSON(t, server, http.MethodGet, "/api/courses-search", adminToken, nil)
	var body searchBody
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode search body: %v", err)
	}
	if body.Meta.PerPage != 15 || len(body.Data) != 15 {
		t.Fatalf("expected default page size 15, got per_page=%d len=%d", body.Meta.PerPage, len(body.Data))
	}
	if body.Meta.Total != 20 || body.Meta.LastPage != 2 {
		t.Fatalf("unexpected meta: %+v", body.Meta)
	}
	if body.Meta.From == nil || *body.Meta.From != 1 || body.Meta.To == nil || *body.Meta.To != 15 {
		t.Fatalf("unexpected from/to: %+v", body.Meta)
	}
	if body.Links.Next == nil || body.Links.Prev != nil {
		t.Fatalf("expected next link and no prev link on page 1: %+v", body.Links)
	}

	rr = doJSON(t, server, http.MethodGet, "/api/courses-search?per_page=500", adminToken, nil)
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode search body: %v", err)
	}
	if body.Meta.PerPage != 100 {
		t.Fatalf("expected per_page clamped to 100, got %d", body.Meta.PerPage)
	}

	rr = doJSON(t, server, http.MethodGet, "/api/courses-search?page=2", adminToken, nil)
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode search body: %v", err)
	}
	if body.Meta.CurrentPage != 2 || len(body.Data) != 5 {
		t.Fatalf("unexpected second page: meta=%+v len=%d", body.Meta, len(body.Data))
	}
	if body.Links.Prev == nil || body.Links.Next != nil {
		t.Fatalf("expected prev link and no next link on the last page: %+v", body.Links)
	}
}

func TestSearchHugePageNumberReturnsEmptyPage(t *testing.T) {
	server := newTestServer()
	adminToken := seedAdminAndLogin(t, server)
	seedSearchFixture(t, server, adminToken)

	rr := doJSON(t, server, http.MethodGet, "/api/courses-search?page=9223372036854775807", adminToken, nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}
	var body searchBody
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode search body: %v", err)
	}
	if len(body.Data) != 0 || body.Meta.Total != 4 {
		t.Fatalf("expected empty page beyond the data, got len=%d meta=%+v", len(body.Data), body.Meta)
	}
	if body.Meta.From != nil || body.Meta.To != nil {
		t.Fatalf("expected null from/to on an empty page: %+v", body.Meta)
	}
}
