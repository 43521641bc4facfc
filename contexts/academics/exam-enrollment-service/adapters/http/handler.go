package httpadapter

import (
	"context"
	"log/slog"

	"studentska/contexts/academics/exam-enrollment-service/application/commands"
	"studentska/contexts/academics/exam-enrollment-service/application/queries"
	"studentska/contexts/academics/exam-enrollment-service/domain/entities"
	"studentska/contexts/academics/exam-enrollment-service/ports"
	httptransport "studentska/contexts/academics/exam-enrollment-service/transport/http"
)

const enrollmentDateLayout = "2006-01-02"

type Handler struct {
	Enroll            commands.EnrollUseCase
	Unenroll          commands.UnenrollUseCase
	ListMyEnrollments queries.ListMyEnrollmentsUseCase
	Logger            *slog.Logger
}

// ListMyEnrollmentsHandler godoc
// @Summary List own exam enrollments
// @Description Student only. Each row carries its course details.
// @Tags exam-enrollment
// @Produce json
// @Security BearerAuth
// @Success 200 {object} httptransport.ListEnrollmentsResponse
// @Failure 401 {object} httptransport.MessageResponse
// @Failure 403 {object} httptransport.MessageResponse
// @Router /api/enroll [get]
func (h Handler) ListMyEnrollmentsHandler(ctx context.Context, studentID string) (httptransport.ListEnrollmentsResponse, error) {
	items, err := h.ListMyEnrollments.Execute(ctx, studentID)
	if err != nil {
		return httptransport.ListEnrollmentsResponse{}, err
	}

	data := make([]httptransport.EnrollmentDTO, 0, len(items))
	for _, item := range items {
		dto := mapEnrollment(item.Enrollment)
		if item.Course.ID != "" {
			course := mapCourse(item.Course)
			dto.Kurs = &course
		}
		data = append(data, dto)
	}
	return httptransport.ListEnrollmentsResponse{Data: data}, nil
}

// EnrollHandler godoc
// @Summary Enroll for a course exam
// @Description Student only. A second enrollment for the same course is rejected with 409.
// @Tags exam-enrollment
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body httptransport.EnrollRequest true "Course to enroll for"
// @Success 201 {object} httptransport.EnrollResponse
// @Failure 403 {object} httptransport.MessageResponse
// @Failure 409 {object} httptransport.MessageResponse
// @Failure 422 {object} map[string][]string
// @Router /api/enroll [post]
func (h Handler) EnrollHandler(ctx context.Context, studentID string, req httptransport.EnrollRequest) (httptransport.EnrollResponse, error) {
	enrollment, err := h.Enroll.Execute(ctx, commands.EnrollCommand{
		StudentID: studentID,
		CourseID:  req.CourseID,
	})
	if err != nil {
		return httptransport.EnrollResponse{}, err
	}
	return httptransport.EnrollResponse{
		Message:    "Ispit uspešno prijavljen!",
		Enrollment: mapEnrollment(enrollment),
	}, nil
}

// UnenrollHandler godoc
// @Summary Remove an own exam enrollment
// @Description Student only. Enrollments owned by other accounts are reported as not found.
// @Tags exam-enrollment
// @Security BearerAuth
// @Param id path string true "Enrollment id"
// @Success 204
// @Failure 403 {object} httptransport.MessageResponse
// @Failure 404 {object} httptransport.MessageResponse
// @Router /api/enroll/{id} [delete]
func (h Handler) UnenrollHandler(ctx context.Context, studentID string, enrollmentID string) error {
	return h.Unenroll.Execute(ctx, commands.UnenrollCommand{
		EnrollmentID: enrollmentID,
		StudentID:    studentID,
	})
}

func mapEnrollment(enrollment entities.Enrollment) httptransport.EnrollmentDTO {
	return httptransport.EnrollmentDTO{
		ID:           enrollment.ID,
		DatumPrijave: enrollment.EnrolledAt.Format(enrollmentDateLayout),
		Ocena:        enrollment.Grade,
	}
}

func mapCourse(course ports.CourseSnapshot) httptransport.CourseDTO {
	return httptransport.CourseDTO{
		ID:       course.ID,
		Naziv:    course.Name,
		Sifra:    course.Code,
		Espb:     course.Credits,
		Semestar: course.Semester,
		Godina:   course.Year,
	}
}
