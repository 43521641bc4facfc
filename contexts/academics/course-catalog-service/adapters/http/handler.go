package httpadapter

import (
	"context"
	"log/slog"

	"studentska/contexts/academics/course-catalog-service/application/commands"
	"studentska/contexts/academics/course-catalog-service/application/queries"
	"studentska/contexts/academics/course-catalog-service/domain/entities"
	httptransport "studentska/contexts/academics/course-catalog-service/transport/http"
)

type Handler struct {
	CreateCourse  commands.CreateCourseUseCase
	UpdateCourse  commands.UpdateCourseUseCase
	DeleteCourse  commands.DeleteCourseUseCase
	GetCourse     queries.GetCourseUseCase
	ListCourses   queries.ListCoursesUseCase
	SearchCourses queries.SearchCoursesUseCase
	Logger        *slog.Logger
}

// ListCoursesHandler godoc
// @Summary List all courses
// @Description Returns the whole catalog, unfiltered, in store order.
// @Tags course-catalog
// @Produce json
// @Security BearerAuth
// @Success 200 {object} httptransport.ListCoursesResponse
// @Failure 401 {object} httptransport.MessageResponse
// @Router /api/courses [get]
func (h Handler) ListCoursesHandler(ctx context.Context) (httptransport.ListCoursesResponse, error) {
	items, err := h.ListCourses.Execute(ctx)
	if err != nil {
		return httptransport.ListCoursesResponse{}, err
	}
	return httptransport.ListCoursesResponse{Data: mapCourses(items)}, nil
}

// GetCourseHandler godoc
// @Summary Get one course
// @Tags course-catalog
// @Produce json
// @Security BearerAuth
// @Param id path string true "Course id"
// @Success 200 {object} httptransport.CourseResponse
// @Failure 404 {object} httptransport.MessageResponse
// @Router /api/courses/{id} [get]
func (h Handler) GetCourseHandler(ctx context.Context, courseID string) (httptransport.CourseResponse, error) {
	course, err := h.GetCourse.Execute(ctx, courseID)
	if err != nil {
		return httptransport.CourseResponse{}, err
	}
	return httptransport.CourseResponse{Data: mapCourse(course)}, nil
}

// CreateCourseHandler godoc
// @Summary Create a course
// @Description Admin only. Code must be unique across the catalog.
// @Tags course-catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body httptransport.CreateCourseRequest true "Course fields"
// @Success 201 {object} httptransport.CourseResponse
// @Failure 403 {object} httptransport.MessageResponse
// @Failure 422 {object} map[string][]string
// @Router /api/courses [post]
func (h Handler) CreateCourseHandler(ctx context.Context, req httptransport.CreateCourseRequest) (httptransport.CourseResponse, error) {
	course, err := h.CreateCourse.Execute(ctx, commands.CreateCourseCommand{
		Name:     req.Naziv,
		Code:     req.SifraPredmeta,
		Credits:  req.Espb,
		Semester: req.Semestar,
		Year:     req.Godina,
	})
	if err != nil {
		return httptransport.CourseResponse{}, err
	}
	return httptransport.CourseResponse{
		Data:    mapCourse(course),
		Message: "Course created successfully",
	}, nil
}

// UpdateCourseHandler godoc
// @Summary Update a course
// @Description Admin only. Applies only the supplied fields.
// @Tags course-catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Course id"
// @Param request body httptransport.UpdateCourseRequest true "Changed fields"
// @Success 200 {object} httptransport.CourseResponse
// @Failure 403 {object} httptransport.MessageResponse
// @Failure 404 {object} httptransport.MessageResponse
// @Failure 422 {object} map[string][]string
// @Router /api/courses/{id} [put]
func (h Handler) UpdateCourseHandler(ctx context.Context, courseID string, req httptransport.UpdateCourseRequest) (httptransport.CourseResponse, error) {
	course, err := h.UpdateCourse.Execute(ctx, commands.UpdateCourseCommand{
		CourseID: courseID,
		Name:     req.Naziv,
		Code:     req.SifraPredmeta,
		Credits:  req.Espb,
		Semester: req.Semestar,
		Year:     req.Godina,
	})
	if err != nil {
		return httptransport.CourseResponse{}, err
	}
	return httptransport.CourseResponse{
		Data:    mapCourse(course),
		Message: "Course updated successfully",
	}, nil
}

// DeleteCourseHandler godoc
// @Summary Delete a course
// @Description Admin only. Dependent exam enrollments are removed first.
// @Tags course-catalog
// @Security BearerAuth
// @Param id path string true "Course id"
// @Success 204
// @Failure 403 {object} httptransport.MessageResponse
// @Failure 404 {object} httptransport.MessageResponse
// @Router /api/courses/{id} [delete]
func (h Handler) DeleteCourseHandler(ctx context.Context, courseID string) error {
	return h.DeleteCourse.Execute(ctx, courseID)
}

// SearchCoursesHandler godoc
// @Summary Search the catalog
// @Description Filters compose with AND; unknown sort fields fall back to naziv ascending; per_page is clamped to 100.
// @Tags course-catalog
// @Produce json
// @Security BearerAuth
// @Param naziv query string false "Substring match on name (case-insensitive)"
// @Param sifra_predmeta query string false "Substring match on code"
// @Param espb query int false "Exact credit value"
// @Param semestar query int false "Exact semester"
// @Param godina query int false "Exact study year"
// @Param espb_min query int false "Minimum credit value"
// @Param espb_max query int false "Maximum credit value"
// @Param sort_by query string false "naziv,sifra_predmeta,espb,semestar,godina,created_at"
// @Param sort_order query string false "asc or desc"
// @Param per_page query int false "Page size (default 15, max 100)"
// @Param page query int false "Page number (default 1)"
// @Success 200 {object} httptransport.SearchCoursesResponse
// @Failure 401 {object} httptransport.MessageResponse
// @Router /api/courses-search [get]
func (h Handler) SearchCoursesHandler(ctx context.Context, req httptransport.SearchCoursesRequest) (httptransport.SearchCoursesResponse, error) {
	result, err := h.SearchCourses.Execute(ctx, queries.SearchCoursesQuery{
		NameContains: req.Naziv,
		CodeContains: req.SifraPredmeta,
		Credits:      req.Espb,
		Semester:     req.Semestar,
		Year:         req.Godina,
		CreditsMin:   req.EspbMin,
		CreditsMax:   req.EspbMax,
		SortBy:       req.SortBy,
		SortOrder:    req.SortOrder,
		Page:         req.Page,
		PerPage:      req.PerPage,
	})
	if err != nil {
		return httptransport.SearchCoursesResponse{}, err
	}
	return httptransport.SearchCoursesResponse{
		Data: mapCourses(result.Items),
		Meta: httptransport.PageMeta{
			CurrentPage: result.CurrentPage,
			LastPage:    result.LastPage,
			PerPage:     result.PerPage,
			Total:       result.Total,
			From:        result.From,
			To:          result.To,
		},
		Message: "Courses retrieved successfully",
	}, nil
}

func mapCourse(course entities.Course) httptransport.CourseDTO {
	return httptransport.CourseDTO{
		ID:       course.ID,
		Naziv:    course.Name,
		Sifra:    course.Code,
		Espb:     course.Credits,
		Semestar: course.Semester,
		Godina:   course.Year,
	}
}

func mapCourses(courses []entities.Course) []httptransport.CourseDTO {
	items := make([]httptransport.CourseDTO, 0, len(courses))
	for _, course := range courses {
		items = append(items, mapCourse(course))
	}
	return items
}
