package httpserver

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	catalogtransport "studentska/contexts/academics/course-catalog-service/transport/http"
	"studentska/contexts/identity-access/authorization"
)

func (s *Server) handleListCourses(w http.ResponseWriter, r *http.Request) {
	account, _, ok := s.authenticate(w, r)
	if !ok {
		return
	}
	if !s.authorize(w, account, authorization.ActionCourseRead) {
		return
	}

	resp, err := s.catalog.Handler.ListCoursesHandler(r.Context())
	if err != nil {
		writeCatalogDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetCourse(w http.ResponseWriter, r *http.Request) {
	account, _, ok := s.authenticate(w, r)
	if !ok {
		return
	}
	if !s.authorize(w, account, authorization.ActionCourseRead) {
		return
	}

	resp, err := s.catalog.Handler.GetCourseHandler(r.Context(), r.PathValue("id"))
	if err != nil {
		writeCatalogDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCreateCourse(w http.ResponseWriter, r *http.Request) {
	account, _, ok := s.authenticate(w, r)
	if !ok {
		return
	}
	if !s.authorize(w, account, authorization.ActionCourseWrite) {
		return
	}

	var req catalogtransport.CreateCourseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "request body must be valid JSON")
		return
	}

	resp, err := s.catalog.Handler.CreateCourseHandler(r.Context(), req)
	if err != nil {
		writeCatalogDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleUpdateCourse(w http.ResponseWriter, r *http.Request) {
	account, _, ok := s.authenticate(w, r)
	if !ok {
		return
	}
	if !s.authorize(w, account, authorization.ActionCourseWrite) {
		return
	}

	var req catalogtransport.UpdateCourseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "request body must be valid JSON")
		return
	}

	resp, err := s.catalog.Handler.UpdateCourseHandler(r.Context(), r.PathValue("id"), req)
	if err != nil {
		writeCatalogDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleDeleteCourse(w http.ResponseWriter, r *http.Request) {
	account, _, ok := s.authenticate(w, r)
	if !ok {
		return
	}
	if !s.authorize(w, account, authorization.ActionCourseWrite) {
		return
	}

	if err := s.catalog.Handler.DeleteCourseHandler(r.Context(), r.PathValue("id")); err != nil {
		writeCatalogDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleSearchCourses(w http.ResponseWriter, r *http.Request) {
	account, _, ok := s.authenticate(w, r)
	if !ok {
		return
	}
	if !s.authorize(w, account, authorization.ActionCourseSearch) {
		return
	}

	query := r.URL.Query()
	req := catalogtransport.SearchCoursesRequest{
		Naziv:         query.Get("naziv"),
		SifraPredmeta: query.Get("sifra_predmeta"),
		SortBy:        query.Get("sort_by"),
		SortOrder:     query.Get("sort_order"),
	}

	intParams := []struct {
		name   string
		target **int
	}{
		{"espb", &req.Espb},
		{"semestar", &req.Semestar},
		{"godina", &req.Godina},
		{"espb_min", &req.EspbMin},
		{"espb_max", &req.EspbMax},
	}
	for _, param := range intParams {
		raw := query.Get(param.name)
		if raw == "" {
			continue
		}
		value, err := strconv.Atoi(raw)
		if err != nil {
			writeMessage(w, http.StatusBadRequest, param.name+" must be an integer")
			return
		}
		*param.target = &value
	}
	if raw := query.Get("per_page"); raw != "" {
		value, err := strconv.Atoi(raw)
		if err != nil {
			writeMessage(w, http.StatusBadRequest, "per_page must be an integer")
			return
		}
		req.PerPage = value
	}
	if raw := query.Get("page"); raw != "" {
		value, err := strconv.Atoi(raw)
		if err != nil {
			writeMessage(w, http.StatusBadRequest, "page must be an integer")
			return
		}
		req.Page = value
	}

	resp, err := s.catalog.Handler.SearchCoursesHandler(r.Context(), req)
	if err != nil {
		writeCatalogDomainError(w, err)
		return
	}
	resp.Links = buildPageLinks(r.URL, resp.Meta)
	writeJSON(w, http.StatusOK, resp)
}

// buildPageLinks renders the paginator link block from the request URL, so
// links preserve every filter and sort parameter the caller sent.
func buildPageLinks(requestURL *url.URL, meta catalogtransport.PageMeta) catalogtransport.PageLinks {
	links := catalogtransport.PageLinks{
		First: pageURL(requestURL, 1),
		Last:  pageURL(requestURL, meta.LastPage),
	}
	if meta.CurrentPage > 1 {
		prev := pageURL(requestURL, meta.CurrentPage-1)
		links.Prev = &prev
	}
	if meta.CurrentPage < meta.LastPage {
		next := pageURL(requestURL, meta.CurrentPage+1)
		links.Next = &next
	}
	return links
}

func pageURL(requestURL *url.URL, page int) string {
	u := *requestURL
	query := u.Query()
	query.Set("page", strconv.Itoa(page))
	u.RawQuery = query.Encode()
	return u.String()
}
