package httpadapter

import (
	"context"
	"log/slog"
	"time"

	"studentska/contexts/identity-access/identity-service/application/commands"
	"studentska/contexts/identity-access/identity-service/application/queries"
	"studentska/contexts/identity-access/identity-service/domain/entities"
	"studentska/contexts/identity-access/identity-service/ports"
	httptransport "studentska/contexts/identity-access/identity-service/transport/http"
	"studentska/internal/shared/validation"
)

const birthDateLayout = "2006-01-02"

type Handler struct {
	Register           commands.RegisterUseCase
	Login              commands.LoginUseCase
	Logout             commands.LogoutUseCase
	UpdateStudent      commands.UpdateStudentUseCase
	DeleteStudent      commands.DeleteStudentUseCase
	ListStudents       queries.ListStudentsUseCase
	GetStudent         queries.GetStudentUseCase
	AccountForToken    queries.AccountForTokenUseCase
	RenderConfirmation queries.RenderConfirmationUseCase
	Logger             *slog.Logger
}

// RegisterHandler godoc
// @Summary Register a student account
// @Description Public. Email and index number must be unused.
// @Tags identity
// @Accept json
// @Produce json
// @Param request body httptransport.RegisterRequest true "Registration details"
// @Success 201 {object} httptransport.RegisterResponse
// @Failure 422 {object} map[string][]string
// @Router /api/register [post]
func (h Handler) RegisterHandler(ctx context.Context, req httptransport.RegisterRequest) (httptransport.RegisterResponse, error) {
	account, err := h.Register.Execute(ctx, commands.RegisterCommand{
		FirstName:            req.Ime,
		LastName:             req.Prezime,
		IndexNumber:          req.BrojIndeksa,
		Email:                req.Email,
		Password:             req.Password,
		PasswordConfirmation: req.PasswordConfirmation,
	})
	if err != nil {
		return httptransport.RegisterResponse{}, err
	}
	return httptransport.RegisterResponse{
		Message: "Student uspešno registrovan!",
		Student: mapStudent(account),
	}, nil
}

// LoginHandler godoc
// @Summary Exchange credentials for a bearer token
// @Description Public. Wrong email or password yields 401.
// @Tags identity
// @Accept json
// @Produce json
// @Param request body httptransport.LoginRequest true "Credentials"
// @Success 200 {object} httptransport.LoginResponse
// @Failure 401 {object} httptransport.MessageResponse
// @Failure 422 {object} map[string][]string
// @Router /api/login [post]
func (h Handler) LoginHandler(ctx context.Context, req httptransport.LoginRequest) (httptransport.LoginResponse, error) {
	result, err := h.Login.Execute(ctx, commands.LoginCommand{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return httptransport.LoginResponse{}, err
	}
	return httptransport.LoginResponse{
		AccessToken: result.AccessToken,
		TokenType:   "Bearer",
		Student:     mapStudent(result.Account),
	}, nil
}

// LogoutHandler godoc
// @Summary Revoke the presented bearer token
// @Tags identity
// @Produce json
// @Security BearerAuth
// @Success 200 {object} httptransport.MessageResponse
// @Failure 401 {object} httptransport.MessageResponse
// @Router /api/logout [post]
func (h Handler) LogoutHandler(ctx context.Context, rawToken string) (httptransport.MessageResponse, error) {
	if err := h.Logout.Execute(ctx, commands.LogoutCommand{RawToken: rawToken}); err != nil {
		return httptransport.MessageResponse{}, err
	}
	return httptransport.MessageResponse{Message: "Uspešno ste se odjavili."}, nil
}

// ListStudentsHandler godoc
// @Summary List registered students
// @Description Admin only.
// @Tags identity
// @Produce json
// @Security BearerAuth
// @Success 200 {object} httptransport.ListStudentsResponse
// @Failure 401 {object} httptransport.MessageResponse
// @Failure 403 {object} httptransport.MessageResponse
// @Router /api/students [get]
func (h Handler) ListStudentsHandler(ctx context.Context) (httptransport.ListStudentsResponse, error) {
	accounts, err := h.ListStudents.Execute(ctx)
	if err != nil {
		return httptransport.ListStudentsResponse{}, err
	}
	data := make([]httptransport.StudentDTO, 0, len(accounts))
	for _, account := range accounts {
		data = append(data, mapStudent(account))
	}
	return httptransport.ListStudentsResponse{Data: data}, nil
}

// GetStudentHandler godoc
// @Summary Fetch one student
// @Description Admin only.
// @Tags identity
// @Produce json
// @Security BearerAuth
// @Param id path string true "Student id"
// @Success 200 {object} httptransport.StudentDTO
// @Failure 401 {object} httptransport.MessageResponse
// @Failure 403 {object} httptransport.MessageResponse
// @Failure 404 {object} httptransport.MessageResponse
// @Router /api/students/{id} [get]
func (h Handler) GetStudentHandler(ctx context.Context, accountID string) (httptransport.StudentDTO, error) {
	account, err := h.GetStudent.Execute(ctx, queries.GetStudentQuery{AccountID: accountID})
	if err != nil {
		return httptransport.StudentDTO{}, err
	}
	return mapStudent(account), nil
}

// UpdateStudentHandler godoc
// @Summary Update a student record
// @Description Admin only. Absent fields keep their stored values.
// @Tags identity
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Student id"
// @Param request body httptransport.UpdateStudentRequest true "Fields to change"
// @Success 200 {object} httptransport.StudentDTO
// @Failure 401 {object} httptransport.MessageResponse
// @Failure 403 {object} httptransport.MessageResponse
// @Failure 404 {object} httptransport.MessageResponse
// @Failure 422 {object} map[string][]string
// @Router /api/students/{id} [put]
func (h Handler) UpdateStudentHandler(ctx context.Context, accountID string, req httptransport.UpdateStudentRequest) (httptransport.StudentDTO, error) {
	cmd := commands.UpdateStudentCommand{
		AccountID: accountID,
		FirstName: req.Ime,
		LastName:  req.Prezime,
		Status:    req.Status,
	}
	if req.DatumRodjenja != nil {
		parsed, err := time.Parse(birthDateLayout, *req.DatumRodjenja)
		if err != nil {
			verrs := validation.New()
			verrs.Add("datum_rodjenja", "The datum rodjenja field must be a valid date.")
			return httptransport.StudentDTO{}, verrs.Err()
		}
		cmd.DateOfBirth = &parsed
	}

	account, err := h.UpdateStudent.Execute(ctx, cmd)
	if err != nil {
		return httptransport.StudentDTO{}, err
	}
	return mapStudent(account), nil
}

// DeleteStudentHandler godoc
// @Summary Delete a student and their enrollments
// @Description Admin only. Tokens and ledger rows of the account are purged.
// @Tags identity
// @Security BearerAuth
// @Param id path string true "Student id"
// @Success 204
// @Failure 401 {object} httptransport.MessageResponse
// @Failure 403 {object} httptransport.MessageResponse
// @Failure 404 {object} httptransport.MessageResponse
// @Router /api/students/{id} [delete]
func (h Handler) DeleteStudentHandler(ctx context.Context, accountID string) error {
	return h.DeleteStudent.Execute(ctx, commands.DeleteStudentCommand{AccountID: accountID})
}

// ConfirmationHandler godoc
// @Summary Download an enrollment-status confirmation
// @Description Student only; always the acting account's own record.
// @Tags identity
// @Produce plain
// @Security BearerAuth
// @Success 200 {string} string
// @Failure 401 {object} httptransport.MessageResponse
// @Failure 403 {object} httptransport.MessageResponse
// @Router /api/student-confirmation-pdf [get]
func (h Handler) ConfirmationHandler(ctx context.Context, accountID string) (ports.Document, error) {
	return h.RenderConfirmation.Execute(ctx, queries.RenderConfirmationQuery{AccountID: accountID})
}

func mapStudent(account entities.Account) httptransport.StudentDTO {
	dto := httptransport.StudentDTO{
		ID:          account.ID,
		Ime:         account.FirstName,
		Prezime:     account.LastName,
		BrojIndeksa: account.IndexNumber,
		Email:       account.Email,
		Status:      account.Status,
		Uloga:       account.Role,
	}
	if account.DateOfBirth != nil {
		formatted := account.DateOfBirth.Format(birthDateLayout)
		dto.DatumRodjenja = &formatted
	}
	return dto
}
