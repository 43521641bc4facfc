package httptransport

// CourseDTO is the outward course shape; field names follow the public API
// contract, not the internal record.
type CourseDTO struct {
	ID       string `json:"id"`
	Naziv    string `json:"naziv"`
	Sifra    string `json:"sifra"`
	Espb     int    `json:"espb"`
	Semestar *int   `json:"semestar"`
	Godina   *int   `json:"godina"`
}

type CreateCourseRequest struct {
	Naziv         string `json:"naziv"`
	SifraPredmeta string `json:"sifra_predmeta"`
	Espb          int    `json:"espb"`
	Semestar      *int   `json:"semestar,omitempty"`
	Godina        *int   `json:"godina,omitempty"`
}

// UpdateCourseRequest is a partial update; absent fields keep their stored
// values.
type UpdateCourseRequest struct {
	Naziv         *string `json:"naziv,omitempty"`
	SifraPredmeta *string `json:"sifra_predmeta,omitempty"`
	Espb          *int    `json:"espb,omitempty"`
	Semestar      *int    `json:"semestar,omitempty"`
	Godina        *int    `json:"godina,omitempty"`
}

type CourseResponse struct {
	Data    CourseDTO `json:"data"`
	Message string    `json:"message,omitempty"`
}

type ListCoursesResponse struct {
	Data []CourseDTO `json:"data"`
}

// SearchCoursesRequest carries the parsed search query parameters. Nil
// pointers mean the parameter was not supplied.
type SearchCoursesRequest struct {
	Naziv         string
	SifraPredmeta string
	Espb          *int
	Semestar      *int
	Godina        *int
	EspbMin       *int
	EspbMax       *int
	SortBy        string
	SortOrder     string
	PerPage       int
	Page          int
}

type PageMeta struct {
	CurrentPage int  `json:"current_page"`
	LastPage    int  `json:"last_page"`
	PerPage     int  `json:"per_page"`
	Total       int  `json:"total"`
	From        *int `json:"from"`
	To          *int `json:"to"`
}

// PageLinks holds addressable locations for neighbouring pages; Prev/Next
// are null on the first/last page. The API surface fills these in because
// only it knows the request URL.
type PageLinks struct {
	First string  `json:"first"`
	Last  string  `json:"last"`
	Prev  *string `json:"prev"`
	Next  *string `json:"next"`
}

type SearchCoursesResponse struct {
	Data    []CourseDTO `json:"data"`
	Meta    PageMeta    `json:"meta"`
	Links   PageLinks   `json:"links"`
	Message string      `json:"message"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
