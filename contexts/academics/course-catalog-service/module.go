package coursecatalog

import (
	"log/slog"

	httpadapter "studentska/contexts/academics/course-catalog-service/adapters/http"
	"studentska/contexts/academics/course-catalog-service/adapters/memory"
	"studentska/contexts/academics/course-catalog-service/application/commands"
	"studentska/contexts/academics/course-catalog-service/application/queries"
	"studentska/contexts/academics/course-catalog-service/ports"
)

// Module is the course-catalog composition surface exposed to runtime
// wiring. Runtime consumes Handler; Store is exposed for tests/inspection.
type Module struct {
	Handler httpadapter.Handler
	Store   *memory.Store
}

// Dependencies captures all runtime ports required by NewModule.
type Dependencies struct {
	Courses     ports.CourseRepository
	Enrollments ports.EnrollmentPurger
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	Logger      *slog.Logger
}

// NewModule wires catalog use-cases against explicit ports.
func NewModule(deps Dependencies) Module {
	handler := httpadapter.Handler{
		CreateCourse: commands.CreateCourseUseCase{
			Courses:     deps.Courses,
			Clock:       deps.Clock,
			IDGenerator: deps.IDGenerator,
			Logger:      deps.Logger,
		},
		UpdateCourse: commands.UpdateCourseUseCase{
			Courses: deps.Courses,
			Clock:   deps.Clock,
			Logger:  deps.Logger,
		},
		DeleteCourse: commands.DeleteCourseUseCase{
			Courses:     deps.Courses,
			Enrollments: deps.Enrollments,
			Logger:      deps.Logger,
		},
		GetCourse:     queries.GetCourseUseCase{Courses: deps.Courses, Logger: deps.Logger},
		ListCourses:   queries.ListCoursesUseCase{Courses: deps.Courses, Logger: deps.Logger},
		SearchCourses: queries.SearchCoursesUseCase{Courses: deps.Courses, Logger: deps.Logger},
		Logger:        deps.Logger,
	}
	return Module{Handler: handler}
}

// NewInMemoryModule builds a development/testing module with the in-memory
// store. The enrollment purger still comes from outside because the ledger
// owns enrollment state.
func NewInMemoryModule(enrollments ports.EnrollmentPurger, logger *slog.Logger) Module {
	store := memory.NewStore()
	module := NewModule(Dependencies{
		Courses:     store,
		Enrollments: enrollments,
		Clock:       store,
		IDGenerator: store,
		Logger:      logger,
	})
	module.Store = store
	return module
}
