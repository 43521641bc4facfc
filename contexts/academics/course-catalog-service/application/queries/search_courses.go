package queries

import (
	"context"
	"log/slog"
	"math"

	application "studentska/contexts/academics/course-catalog-service/application"
	"studentska/contexts/academics/course-catalog-service/domain/entities"
	"studentska/contexts/academics/course-catalog-service/ports"
)

const (
	defaultPerPage = 15
	maxPerPage     = 100
)

// SearchCoursesQuery mirrors the public search parameters. Zero values mean
// "not supplied".
type SearchCoursesQuery struct {
	NameContains string
	CodeContains string
	Credits      *int
	Semester     *int
	Year         *int
	CreditsMin   *int
	CreditsMax   *int
	SortBy       string
	SortOrder    string
	Page         int
	PerPage      int
}

// SearchCoursesResult is one page of matches plus the paginator numbers the
// API meta block is built from. From/To are nil on an empty page.
type SearchCoursesResult struct {
	Items       []entities.Course
	CurrentPage int
	LastPage    int
	PerPage     int
	Total       int
	From        *int
	To          *int
}

type SearchCoursesUseCase struct {
	Courses ports.CourseRepository
	Logger  *slog.Logger
}

func (u SearchCoursesUseCase) Execute(ctx context.Context, query SearchCoursesQuery) (SearchCoursesResult, error) {
	logger := application.ResolveLogger(u.Logger)

	perPage := query.PerPage
	if perPage <= 0 {
		perPage = defaultPerPage
	}
	if perPage > maxPerPage {
		perPage = maxPerPage
	}
	page := query.Page
	if page <= 0 {
		page = 1
	}
	// Bound so the offset multiplication below cannot overflow.
	if page > math.MaxInt/perPage {
		page = math.MaxInt / perPage
	}

	sortBy := query.SortBy
	switch sortBy {
	case ports.SortByName, ports.SortByCode, ports.SortByCredits, ports.SortBySemester, ports.SortByYear, ports.SortByCreatedAt:
	default:
		// Unknown sort fields are ignored, not rejected.
		sortBy = ports.SortByName
	}

	filter := ports.SearchFilter{
		NameContains: query.NameContains,
		CodeContains: query.CodeContains,
		Credits:      query.Credits,
		Semester:     query.Semester,
		Year:         query.Year,
		CreditsMin:   query.CreditsMin,
		CreditsMax:   query.CreditsMax,
		SortBy:       sortBy,
		SortDesc:     query.SortOrder == "desc",
		Offset:       (page - 1) * perPage,
		Limit:        perPage,
	}

	items, total, err := u.Courses.Search(ctx, filter)
	if err != nil {
		logger.Error("course search failed",
			"event", "course_search_failed",
			"module", "academics/course-catalog-service",
			"layer", "application",
			"error", err.Error(),
		)
		return SearchCoursesResult{}, err
	}

	lastPage := (total + perPage - 1) / perPage
	if lastPage < 1 {
		lastPage = 1
	}

	result := SearchCoursesResult{
		Items:       items,
		CurrentPage: page,
		LastPage:    lastPage,
		PerPage:     perPage,
		Total:       total,
	}
	if len(items) > 0 {
		from := filter.Offset + 1
		to := filter.Offset + len(items)
		result.From = &from
		result.To = &to
	}

	logger.Info("course search completed",
		"event", "course_search_completed",
		"module", "academics/course-catalog-service",
		"layer", "application",
		"total", total,
		"page", page,
		"per_page", perPage,
	)
	return result, nil
}
