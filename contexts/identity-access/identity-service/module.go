package identity

import (
	"log/slog"
	"time"

	bcryptadapter "studentska/contexts/identity-access/identity-service/adapters/bcrypt"
	httpadapter "studentska/contexts/identity-access/identity-service/adapters/http"
	jwtadapter "studentska/contexts/identity-access/identity-service/adapters/jwt"
	"studentska/contexts/identity-access/identity-service/adapters/memory"
	"studentska/contexts/identity-access/identity-service/adapters/render"
	"studentska/contexts/identity-access/identity-service/application/commands"
	"studentska/contexts/identity-access/identity-service/application/queries"
	"studentska/contexts/identity-access/identity-service/ports"
)

// Module is the identity composition surface exposed to runtime wiring.
// Runtime consumes Handler; Store is exposed for tests/inspection.
type Module struct {
	Handler httpadapter.Handler
	Store   *memory.Store
}

// Dependencies captures all runtime ports required by NewModule.
type Dependencies struct {
	Accounts    ports.AccountRepository
	Tokens      ports.TokenRepository
	Codec       ports.TokenCodec
	Hasher      ports.PasswordHasher
	Renderer    ports.ConfirmationRenderer
	Enrollments ports.EnrollmentPurger
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	TokenTTL    time.Duration
	Logger      *slog.Logger
}

// NewModule wires identity use-cases against explicit ports.
func NewModule(deps Dependencies) Module {
	handler := httpadapter.Handler{
		Register: commands.RegisterUseCase{
			Accounts:    deps.Accounts,
			Hasher:      deps.Hasher,
			Clock:       deps.Clock,
			IDGenerator: deps.IDGenerator,
			Logger:      deps.Logger,
		},
		Login: commands.LoginUseCase{
			Accounts:    deps.Accounts,
			Tokens:      deps.Tokens,
			Codec:       deps.Codec,
			Hasher:      deps.Hasher,
			Clock:       deps.Clock,
			IDGenerator: deps.IDGenerator,
			TokenTTL:    deps.TokenTTL,
			Logger:      deps.Logger,
		},
		Logout: commands.LogoutUseCase{
			Tokens: deps.Tokens,
			Codec:  deps.Codec,
			Logger: deps.Logger,
		},
		UpdateStudent: commands.UpdateStudentUseCase{
			Accounts: deps.Accounts,
			Clock:    deps.Clock,
			Logger:   deps.Logger,
		},
		DeleteStudent: commands.DeleteStudentUseCase{
			Accounts:    deps.Accounts,
			Tokens:      deps.Tokens,
			Enrollments: deps.Enrollments,
			Logger:      deps.Logger,
		},
		ListStudents: queries.ListStudentsUseCase{Accounts: deps.Accounts, Logger: deps.Logger},
		GetStudent:   queries.GetStudentUseCase{Accounts: deps.Accounts, Logger: deps.Logger},
		AccountForToken: queries.AccountForTokenUseCase{
			Accounts: deps.Accounts,
			Tokens:   deps.Tokens,
			Codec:    deps.Codec,
			Logger:   deps.Logger,
		},
		RenderConfirmation: queries.RenderConfirmationUseCase{
			Accounts: deps.Accounts,
			Renderer: deps.Renderer,
			Clock:    deps.Clock,
			Logger:   deps.Logger,
		},
		Logger: deps.Logger,
	}
	return Module{Handler: handler}
}

// NewInMemoryModule builds a development/testing module with the in-memory
// store, a fixed signing secret, and the default bcrypt cost. The
// enrollment purger still comes from outside because the ledger owns
// enrollment state.
func NewInMemoryModule(enrollments ports.EnrollmentPurger, secret string, logger *slog.Logger) Module {
	store := memory.NewStore()
	module := NewModule(Dependencies{
		Accounts:    store,
		Tokens:      memory.TokenStore{Store: store},
		Codec:       jwtadapter.NewCodec(secret),
		Hasher:      bcryptadapter.NewHasher(0),
		Renderer:    render.NewConfirmationRenderer(),
		Enrollments: enrollments,
		Clock:       store,
		IDGenerator: store,
		TokenTTL:    24 * time.Hour,
		Logger:      logger,
	})
	module.Store = store
	return module
}
