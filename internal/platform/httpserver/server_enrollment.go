package httpserver

import (
	"encoding/json"
	"net/http"

	ledgertransport "studentska/contexts/academics/exam-enrollment-service/transport/http"
	"studentska/contexts/identity-access/authorization"
)

func (s *Server) handleListEnrollments(w http.ResponseWriter, r *http.Request) {
	account, _, ok := s.authenticate(w, r)
	if !ok {
		return
	}
	if !s.authorize(w, account, authorization.ActionEnrollmentListOwn) {
		return
	}

	resp, err := s.ledger.Handler.ListMyEnrollmentsHandler(r.Context(), account.ID)
	if err != nil {
		writeLedgerDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleEnroll(w http.ResponseWriter, r *http.Request) {
	account, _, ok := s.authenticate(w, r)
	if !ok {
		return
	}
	if !s.authorize(w, account, authorization.ActionEnrollmentCreate) {
		return
	}

	var req ledgertransport.EnrollRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "request body must be valid JSON")
		return
	}

	resp, err := s.ledger.Handler.EnrollHandler(r.Context(), account.ID, req)
	if err != nil {
		writeLedgerDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleUnenroll(w http.ResponseWriter, r *http.Request) {
	account, _, ok := s.authenticate(w, r)
	if !ok {
		return
	}
	if !s.authorize(w, account, authorization.ActionEnrollmentDeleteOwn) {
		return
	}

	if err := s.ledger.Handler.UnenrollHandler(r.Context(), account.ID, r.PathValue("id")); err != nil {
		writeLedgerDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
