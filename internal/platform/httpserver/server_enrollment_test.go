package httpserver

import (
	"encoding/json"
	"net/http"
	"testing"
)

type enrollmentBody struct {
	Message    string `json:"message"`
	Enrollment struct {
		ID           string `json:"id"`
		DatumPrijave string `json:"datumPrijave"`
		Ocena        *int   `json:"ocena"`
	} `json:"enrollment"`
}

type enrollmentListBody struct {
	Data []struct {
		ID           string `json:"id"`
		DatumPrijave string `json:"datumPrijave"`
		Kurs         *struct {
			ID    string `json:"id"`
			Naziv string `json:"naziv"`
			Sifra string `json:"sifra"`
		} `json:"kurs"`
	} `json:"data"`
}

func TestEnrollAndListWithCourseDetails(t *testing.T) {
	server := newTestServer()
	adminToken := seedAdminAndLogin(t, server)
	studentToken := registerAndLogin(t, server)
	courseID := createCourse(t, server, adminToken, coursePayload{Naziv: "Analiza 1", SifraPredmeta: "MA101", Espb: 8})

	rr := doJSON(t, server, http.MethodPost, "/api/enroll", studentToken, map[string]string{"course_id": courseID})
	if rr.Code != http.StatusCreated {
		t.Fatalf("enroll: expected 201, got %d body=%s", rr.Code, rr.Body.String())
	}
	var created enrollmentBody
	if err := json.Unmarshal(rr.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode enrollment: %v", err)
	}
	if created.Message != "Ispit uspešno prijavljen!" {
		t.Fatalf("unexpected message %q", created.Message)
	}
	if created.Enrollment.DatumPrijave == "" || created.Enrollment.Ocena != nil {
		t.Fatalf("unexpected enrollment row: %+v", created.Enrollment)
	}

	rr = doJSON(t, server, http.MethodGet, "/api/enroll", studentToken, nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("list: expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}
	var list enrollmentListBody
	if err := json.Unmarshal(rr.Body.Bytes(), &list); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(list.Data) != 1 {
		t.Fatalf("expected one enrollment, got %d", len(list.Data))
	}
	if list.Data[0].Kurs == nil || list.Data[0].Kurs.Sifra != "MA101" {
		t.Fatalf("expected the course attached, body=%s", rr.Body.String())
	}
}

func TestEnrollTwiceIsConflict(t *testing.T) {
	server := newTestServer()
	adminToken := seedAdminAndLogin(t, server)
	studentToken := registerAndLogin(t, server)
	courseID := createCourse(t, server, adminToken, coursePayload{Naziv: "Analiza 1", SifraPredmeta: "MA101", Espb: 8})

	if rr := doJSON(t, server, http.MethodPost, "/api/enroll", studentToken, map[string]string{"course_id": courseID}); rr.Code != http.StatusCreated {
		t.Fatalf("first enroll: expected 201, got %d body=%s", rr.Code, rr.Body.String())
	}
	rr := doJSON(t, server, http.MethodPost, "/api/enroll", studentToken, map[string]string{"course_id": courseID})
	if rr.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d body=%s", rr.Code, rr.Body.String())
	}
	var resp struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if resp.Message != "Ispit je već prijavljen." {
		t.Fatalf("unexpected message %q", resp.Message)
	}

	rr = doJSON(t, server, http.MethodGet, "/api/enroll", studentToken, nil)
	var list enrollmentListBody
	if err := json.Unmarshal(rr.Body.Bytes(), &list); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(list.Data) != 1 {
		t.Fatalf("expected a single enrollment after the conflict, got %d", len(list.Data))
	}
}

func TestEnrollValidatesCourse(t *testing.T) {
	server := newTestServer()
	studentToken := registerAndLogin(t, server)

	rr := doJSON(t, server, http.MethodPost, "/api/enroll", studentToken, map[string]string{})
	if rr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("missing course_id: expected 422, got %d body=%s", rr.Code, rr.Body.String())
	}

	rr = doJSON(t, server, http.MethodPost, "/api/enroll", studentToken, map[string]string{"course_id": "course-999"})
	if rr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("unknown course: expected 422, got %d body=%s", rr.Code, rr.Body.String())
	}
	var fields map[string][]string
	if err := json.Unmarshal(rr.Body.Bytes(), &fields); err != nil {
		t.Fatalf("decode validation body: %v", err)
	}
	if len(fields["course_id"]) == 0 {
		t.Fatalf("expected a course_id validation message, body=%s", rr.Body.String())
	}
}

func TestEnrollIsStudentOnly(t *testing.T) {
	server := newTestServer()
	adminToken := seedAdminAndLogin(t, server)
	courseID := createCourse(t, server, adminToken, coursePayload{Naziv: "Analiza 1", SifraPredmeta: "MA101", Espb: 8})

	rr := doJSON(t, server, http.MethodPost, "/api/enroll", adminToken, map[string]string{"course_id": courseID})
	if rr.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for admin, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestUnenrollOwnRowOnly(t *testing.T) {
	server := newTestServer()
	adminToken := seedAdminAndLogin(t, server)
	firstToken := registerAndLogin(t, server)
	secondToken := registerAndLogin(t, server)
	courseID := createCourse(t, server, adminToken, coursePayload{Naziv: "Analiza 1", SifraPredmeta: "MA101", Espb: 8})

	rr := doJSON(t, server, http.MethodPost, "/api/enroll", firstToken, map[string]string{"course_id": courseID})
	if rr.Code != http.StatusCreated {
		t.Fatalf("enroll: expected 201, got %d body=%s", rr.Code, rr.Body.String())
	}
	var created enrollmentBody
	if err := json.Unmarshal(rr.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode enrollment: %v", err)
	}

	// Another student cannot remove the row; ownership masks it as missing.
	rr = doJSON(t, server, http.MethodDelete, "/api/enroll/"+created.Enrollment.ID, secondToken, nil)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for a foreign enrollment, got %d body=%s", rr.Code, rr.Body.String())
	}

	rr = doJSON(t, server, http.MethodDelete, "/api/enroll/"+created.Enrollment.ID, firstToken, nil)
	if rr.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d body=%s", rr.Code, rr.Body.String())
	}

	rr = doJSON(t, server, http.MethodGet, "/api/enroll", firstToken, nil)
	var list enrollmentListBody
	if err := json.Unmarshal(rr.Body.Bytes(), &list); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(list.Data) != 0 {
		t.Fatalf("expected no enrollments after unenroll, got %d", len(list.Data))
	}
}
