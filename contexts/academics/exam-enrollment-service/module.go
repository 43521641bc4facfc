package examenrollment

import (
	"log/slog"

	httpadapter "studentska/contexts/academics/exam-enrollment-service/adapters/http"
	"studentska/contexts/academics/exam-enrollment-service/adapters/memory"
	"studentska/contexts/academics/exam-enrollment-service/application/commands"
	"studentska/contexts/academics/exam-enrollment-service/application/queries"
	"studentska/contexts/academics/exam-enrollment-service/ports"
)

// Module is the exam-enrollment composition surface exposed to runtime
// wiring. Runtime consumes Handler; Store is exposed for tests/inspection.
type Module struct {
	Handler httpadapter.Handler
	Store   *memory.Store
}

// Dependencies captures all runtime ports required by NewModule.
type Dependencies struct {
	Enrollments ports.EnrollmentRepository
	Courses     ports.CourseDirectory
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	Logger      *slog.Logger
}

// NewModule wires ledger use-cases against explicit ports.
func NewModule(deps Dependencies) Module {
	handler := httpadapter.Handler{
		Enroll: commands.EnrollUseCase{
			Enrollments: deps.Enrollments,
			Courses:     deps.Courses,
			Clock:       deps.Clock,
			IDGenerator: deps.IDGenerator,
			Logger:      deps.Logger,
		},
		Unenroll: commands.UnenrollUseCase{
			Enrollments: deps.Enrollments,
			Logger:      deps.Logger,
		},
		ListMyEnrollments: queries.ListMyEnrollmentsUseCase{
			Enrollments: deps.Enrollments,
			Courses:     deps.Courses,
			Logger:      deps.Logger,
		},
		Logger: deps.Logger,
	}
	return Module{Handler: handler}
}

// NewInMemoryModule builds a development/testing module with the in-memory
// store. The course directory comes from outside because the catalog owns
// course state.
func NewInMemoryModule(courses ports.CourseDirectory, logger *slog.Logger) Module {
	store := NewStore()
	module := NewModule(Dependencies{
		Enrollments: store,
		Courses:     courses,
		Clock:       store,
		IDGenerator: store,
		Logger:      logger,
	})
	module.Store = store
	return module
}

// NewStore returns the ledger's in-memory store; exposed so the catalog
// module can borrow it as its enrollment purger during in-memory wiring.
func NewStore() *memory.Store {
	return memory.NewStore()
}
