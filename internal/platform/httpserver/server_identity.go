package httpserver

import (
	"encoding/json"
	"net/http"

	"studentska/contexts/identity-access/authorization"
	identitytransport "studentska/contexts/identity-access/identity-service/transport/http"
)

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req identitytransport.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "request body must be valid JSON")
		return
	}

	resp, err := s.identity.Handler.RegisterHandler(r.Context(), req)
	if err != nil {
		writeIdentityDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req identitytransport.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "request body must be valid JSON")
		return
	}

	resp, err := s.identity.Handler.LoginHandler(r.Context(), req)
	if err != nil {
		writeIdentityDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	_, raw, ok := s.authenticate(w, r)
	if !ok {
		return
	}

	resp, err := s.identity.Handler.LogoutHandler(r.Context(), raw)
	if err != nil {
		writeIdentityDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleListStudents(w http.ResponseWriter, r *http.Request) {
	account, _, ok := s.authenticate(w, r)
	if !ok {
		return
	}
	if !s.authorize(w, account, authorization.ActionAccountRead) {
		return
	}

	resp, err := s.identity.Handler.ListStudentsHandler(r.Context())
	if err != nil {
		writeIdentityDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// handleCreateStudent exists so the resource route answers POST with an
// explicit pointer at the registration endpoint instead of a bare 404.
func (s *Server) handleCreateStudent(w http.ResponseWriter, r *http.Request) {
	if _, _, ok := s.authenticate(w, r); !ok {
		return
	}
	writeMessage(w, http.StatusMethodNotAllowed, "Please use the /api/register endpoint to create a student.")
}

func (s *Server) handleGetStudent(w http.ResponseWriter, r *http.Request) {
	account, _, ok := s.authenticate(w, r)
	if !ok {
		return
	}
	if !s.authorize(w, account, authorization.ActionAccountRead) {
		return
	}

	resp, err := s.identity.Handler.GetStudentHandler(r.Context(), r.PathValue("id"))
	if err != nil {
		writeIdentityDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleUpdateStudent(w http.ResponseWriter, r *http.Request) {
	account, _, ok := s.authenticate(w, r)
	if !ok {
		return
	}
	if !s.authorize(w, account, authorization.ActionAccountWrite) {
		return
	}

	var req identitytransport.UpdateStudentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "request body must be valid JSON")
		return
	}

	resp, err := s.identity.Handler.UpdateStudentHandler(r.Context(), r.PathValue("id"), req)
	if err != nil {
		writeIdentityDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleDeleteStudent(w http.ResponseWriter, r *http.Request) {
	account, _, ok := s.authenticate(w, r)
	if !ok {
		return
	}
	if !s.authorize(w, account, authorization.ActionAccountWrite) {
		return
	}

	if err := s.identity.Handler.DeleteStudentHandler(r.Context(), r.PathValue("id")); err != nil {
		writeIdentityDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleConfirmation(w http.ResponseWriter, r *http.Request) {
	account, _, ok := s.authenticate(w, r)
	if !ok {
		return
	}
	if !s.authorize(w, account, authorization.ActionAccountSelf) {
		return
	}

	doc, err := s.identity.Handler.ConfirmationHandler(r.Context(), account.ID)
	if err != nil {
		writeIdentityDomainError(w, err)
		return
	}
	w.Header().Set("Content-Type", doc.ContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="potvrda.txt"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(doc.Data)
}
