package httpserver

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	coursecatalog "studentska/contexts/academics/course-catalog-service"
	catalogerrors "studentska/contexts/academics/course-catalog-service/domain/errors"
	examenrollment "studentska/contexts/academics/exam-enrollment-service"
	ledgererrors "studentska/contexts/academics/exam-enrollment-service/domain/errors"
	"studentska/contexts/identity-access/authorization"
	identity "studentska/contexts/identity-access/identity-service"
	identityqueries "studentska/contexts/identity-access/identity-service/application/queries"
	identityentities "studentska/contexts/identity-access/identity-service/domain/entities"
	identityerrors "studentska/contexts/identity-access/identity-service/domain/errors"
	"studentska/internal/shared/validation"

	httpSwagger "github.com/swaggo/http-swagger"
	_ "studentska/internal/platform/httpserver/docs"
)

type Server struct {
	mux      *http.ServeMux
	logger   *slog.Logger
	addr     string
	catalog  coursecatalog.Module
	ledger   examenrollment.Module
	identity identity.Module
}

func New(
	catalog coursecatalog.Module,
	ledger examenrollment.Module,
	identityModule identity.Module,
	logger *slog.Logger,
	addr string,
) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if addr == "" {
		addr = ":8080"
	}

	s := &Server{
		mux:      http.NewServeMux(),
		logger:   logger,
		addr:     addr,
		catalog:  catalog,
		ledger:   ledger,
		identity: identityModule,
	}
	s.registerRoutes()
	return s
}

func (s *Server) Start() error {
	s.logger.Info("http server starting",
		"event", "http_server_starting",
		"module", "internal/platform/httpserver",
		"layer", "platform",
		"addr", s.addr,
	)
	return http.ListenAndServe(s.addr, s.mux)
}

// Handler exposes the route table for tests.
func (s *Server) Handler() http.Handler {
	return s.mux
}

func (s *Server) registerRoutes() {
	s.mux.Handle("/swagger/", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	s.mux.HandleFunc("POST /api/register", s.handleRegister)
	s.mux.HandleFunc("POST /api/login", s.handleLogin)
	s.mux.HandleFunc("POST /api/logout", s.handleLogout)

	s.mux.HandleFunc("GET /api/courses", s.handleListCourses)
	s.mux.HandleFunc("POST /api/courses", s.handleCreateCourse)
	s.mux.HandleFunc("GET /api/courses/{id}", s.handleGetCourse)
	s.mux.HandleFunc("PUT /api/courses/{id}", s.handleUpdateCourse)
	s.mux.HandleFunc("DELETE /api/courses/{id}", s.handleDeleteCourse)
	s.mux.HandleFunc("GET /api/courses-search", s.handleSearchCourses)

	s.mux.HandleFunc("GET /api/students", s.handleListStudents)
	s.mux.HandleFunc("POST /api/students", s.handleCreateStudent)
	s.mux.HandleFunc("GET /api/students/{id}", s.handleGetStudent)
	s.mux.HandleFunc("PUT /api/students/{id}", s.handleUpdateStudent)
	s.mux.HandleFunc("DELETE /api/students/{id}", s.handleDeleteStudent)
	s.mux.HandleFunc("GET /api/student-confirmation-pdf", s.handleConfirmation)

	s.mux.HandleFunc("GET /api/enroll", s.handleListEnrollments)
	s.mux.HandleFunc("POST /api/enroll", s.handleEnroll)
	s.mux.HandleFunc("DELETE /api/enroll/{id}", s.handleUnenroll)
}

// authenticate resolves the bearer credential on the request to its account.
// A missing, malformed, unsigned, or revoked token yields 401.
func (s *Server) authenticate(w http.ResponseWriter, r *http.Request) (identityentities.Account, string, bool) {
	raw := bearerToken(r)
	if raw == "" {
		writeMessage(w, http.StatusUnauthorized, "Unauthenticated.")
		return identityentities.Account{}, "", false
	}
	account, err := s.identity.Handler.AccountForToken.Execute(r.Context(), identityqueries.AccountForTokenQuery{RawToken: raw})
	if err != nil {
		if errors.Is(err, identityerrors.ErrInvalidToken) {
			writeMessage(w, http.StatusUnauthorized, "Unauthenticated.")
		} else {
			writeMessage(w, http.StatusInternalServerError, "internal server error")
		}
		return identityentities.Account{}, "", false
	}
	return account, raw, true
}

// authorize runs the role policy for the acting account; a denial mirrors
// the fixed "Unauthorized" body the clients key on.
func (s *Server) authorize(w http.ResponseWriter, account identityentities.Account, action authorization.Action) bool {
	if !authorization.Allowed(authorization.Role(account.Role), action) {
		writeMessage(w, http.StatusForbidden, "Unauthorized")
		return false
	}
	return true
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}

func writeCatalogDomainError(w http.ResponseWriter, err error) {
	if verrs, ok := validation.AsErrors(err); ok {
		writeValidationErrors(w, verrs)
		return
	}
	switch {
	case errors.Is(err, catalogerrors.ErrCourseNotFound):
		writeMessage(w, http.StatusNotFound, "Course not found")
	case errors.Is(err, catalogerrors.ErrCodeTaken):
		writeMessage(w, http.StatusConflict, "Course code already exists")
	default:
		writeMessage(w, http.StatusInternalServerError, "internal server error")
	}
}

func writeLedgerDomainError(w http.ResponseWriter, err error) {
	if verrs, ok := validation.AsErrors(err); ok {
		writeValidationErrors(w, verrs)
		return
	}
	switch {
	case errors.Is(err, ledgererrors.ErrAlreadyEnrolled):
		writeMessage(w, http.StatusConflict, "Ispit je već prijavljen.")
	case errors.Is(err, ledgererrors.ErrEnrollmentNotFound):
		writeMessage(w, http.StatusNotFound, "Enrollment not found")
	default:
		writeMessage(w, http.StatusInternalServerError, "internal server error")
	}
}

func writeIdentityDomainError(w http.ResponseWriter, err error) {
	if verrs, ok := validation.AsErrors(err); ok {
		writeValidationErrors(w, verrs)
		return
	}
	switch {
	case errors.Is(err, identityerrors.ErrInvalidCredentials):
		writeMessage(w, http.StatusUnauthorized, "Pogrešni podaci.")
	case errors.Is(err, identityerrors.ErrInvalidToken):
		writeMessage(w, http.StatusUnauthorized, "Unauthenticated.")
	case errors.Is(err, identityerrors.ErrAccountNotFound):
		writeMessage(w, http.StatusNotFound, "Student not found")
	case errors.Is(err, identityerrors.ErrForbidden):
		writeMessage(w, http.StatusForbidden, "Unauthorized")
	default:
		writeMessage(w, http.StatusInternalServerError, "internal server error")
	}
}

// writeValidationErrors serializes the bare field->messages map, the shape
// clients already parse for 422 responses.
func writeValidationErrors(w http.ResponseWriter, verrs *validation.Errors) {
	writeJSON(w, http.StatusUnprocessableEntity, verrs.Fields)
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
