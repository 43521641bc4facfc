package httptransport

// CourseDTO is the course view attached to enrollment rows.
type CourseDTO struct {
	ID       string `json:"id"`
	Naziv    string `json:"naziv"`
	Sifra    string `json:"sifra"`
	Espb     int    `json:"espb"`
	Semestar *int   `json:"semestar"`
	Godina   *int   `json:"godina"`
}

// EnrollmentDTO mirrors the public enrollment shape; DatumPrijave is a
// calendar date, Ocena stays null until graded, Kurs is omitted when the
// course record is gone.
type EnrollmentDTO struct {
	ID           string     `json:"id"`
	DatumPrijave string     `json:"datumPrijave"`
	Ocena        *int       `json:"ocena"`
	Kurs         *CourseDTO `json:"kurs,omitempty"`
}

type ListEnrollmentsResponse struct {
	Data []EnrollmentDTO `json:"data"`
}

type EnrollRequest struct {
	CourseID string `json:"course_id"`
}

type EnrollResponse struct {
	Message    string        `json:"message"`
	Enrollment EnrollmentDTO `json:"enrollment"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
