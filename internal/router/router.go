package router

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"time"

	"pet-clinic-admin/docs"
	"pet-clinic-admin/internal/adapters/auth/password"
	"pet-clinic-admin/internal/adapters/auth/session"
	mem "pet-clinic-admin/internal/adapters/storage/memory"
	pg "pet-clinic-admin/internal/adapters/storage/postgres"
	"pet-clinic-admin/internal/domain/bookings"
	"pet-clinic-admin/internal/domain/cages"
	"pet-clinic-admin/internal/domain/catalog"
	"pet-clinic-admin/internal/domain/pets"
	"pet-clinic-admin/internal/domain/records"
	"pet-clinic-admin/internal/domain/users"
	"pet-clinic-admin/internal/middleware"
	"pet-clinic-admin/internal/platform/config"
	"pet-clinic-admin/internal/platform/httpjson"
	"pet-clinic-admin/internal/platform/logger"
	"pet-clinic-admin/internal/platform/metrics"
	"pet-clinic-admin/internal/ports/auth"
	"pet-clinic-admin/internal/ports/tx"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

const requestTimeout = 30 * time.Second

type Options struct {
	Config config.Config
	Logger logger.Logger

	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB

	// Opcional: sin Sessions se guardan en memoria (se pierden al reiniciar).
	Sessions auth.SessionStore
	// Opcional: default bcrypt cost 10.
	Hasher auth.PasswordHasher
	// Opcional: default un registry propio.
	Metrics *metrics.Metrics
}

// repos es la vista común de los dos stores.
type repos struct {
	users    usersRepo
	pets     petsRepo
	cages    cageRepo
	records  recordsRepo
	services catalogRepo
	bookings bookingsRepo
	tx       tx.Transactor
}

type usersRepo interface {
	users.Repository
	records.UserLookup
	session.UserFinder
}

type petsRepo interface {
	pets.Repository
	cages.PetLookup
	users.DependentCounter
}

type recordsRepo interface {
	records.Repository
	users.DependentCounter
	CountByPet(ctx context.Context, petID int64) (int, error)
}

type catalogRepo interface {
	catalog.Repository
	bookings.ServiceLookup
}

type bookingsRepo interface {
	bookings.Repository
	users.DependentCounter
}

type cageRepo interface {
	cages.Repository
	ExistsByPet(ctx context.Context, petID int64) (bool, error)
}

func selectRepos(db *sql.DB) repos {
	if db != nil {
		s := pg.NewStore(db)
		return repos{
			users: s.Users, pets: s.Pets, cages: s.Cages, records: s.Records,
			services: s.Services, bookings: s.Bookings, tx: s.Tx,
		}
	}
	s := mem.NewStore()
	return repos{
		users: s.Users, pets: s.Pets, cages: s.Cages, records: s.Records,
		services: s.Services, bookings: s.Bookings, tx: s.Tx,
	}
}

// NewRouter arma stores -> services -> rutas. Si Config.SeedDefaultUsers está
// activo crea las cuentas de dev antes de devolver el handler.
func NewRouter(opts Options) (http.Handler, error) {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	cfg := opts.Config
	hasher := opts.Hasher
	if hasher == nil {
		hasher = password.NewBcrypt()
	}
	sessions := opts.Sessions
	if sessions == nil {
		sessions = session.NewMemoryStore()
	}
	m := opts.Metrics
	if m == nil {
		m = metrics.New()
	}

	rp := selectRepos(opts.DB)
	if opts.DB != nil {
		log.Info("storage selected", map[string]any{"backend": "postgres"})
	} else {
		log.Info("storage selected", map[string]any{"backend": "memory"})
	}

	// Services por módulo
	usersSvc := users.NewService(rp.users, hasher, rp.tx, users.Dependents{
		Pets:     rp.pets,
		Bookings: rp.bookings,
		Records:  rp.records,
	})
	petsSvc := pets.NewService(rp.pets, rp.users, rp.tx, pets.Guards{Cages: rp.cages, Records: rp.records})
	cagesSvc := cages.NewService(rp.cages, rp.pets, rp.tx)
	recordsSvc := records.NewService(rp.records, rp.pets, rp.users, rp.tx)
	catalogSvc := catalog.NewService(rp.services, rp.tx)
	bookingsSvc := bookings.NewService(rp.bookings, rp.users, rp.services, rp.tx)

	if cfg.SeedDefaultUsers {
		if err := usersSvc.Seed(context.Background(), log, users.DefaultSeedUsers); err != nil {
			return nil, fmt.Errorf("seed users: %w", err)
		}
	}

	verifier := session.NewVerifier(sessions, rp.users)
	limiter := middleware.NewLoginLimiter(cfg.LoginRatePerMinute)

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.Recover)
	r.Use(middleware.CORS(cfg.CORSAllowedOrigins))
	r.Use(m.Instrument)
	r.Use(chimw.Timeout(requestTimeout))

	r.Use(middleware.AuthContext(verifier, cfg.SessionCookieName))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		httpjson.WriteMessage(w, http.StatusNotFound, "No handler found for "+r.Method+" "+r.URL.Path)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		httpjson.WriteMessage(w, http.StatusMethodNotAllowed, "Request method not supported: "+r.Method)
	})

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Method(http.MethodGet, "/metrics", m.Handler())

	docs.SwaggerInfo.BasePath = "/"
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Route("/api", func(api chi.Router) {
		users.RegisterAuthRoutes(api, usersSvc, users.AuthOptions{
			Sessions:     sessions,
			CookieName:   cfg.SessionCookieName,
			CookieSecure: cfg.SessionCookieSecure,
			TTL:          cfg.SessionTTL,
			LoginLimiter: limiter.Handler,
			OnLogin:      m.LoginResult,
		})

		// Todo lo demás bajo /api requiere sesión
		api.Group(func(pr chi.Router) {
			pr.Use(middleware.RequireAuth)

			users.RegisterRoutes(pr, usersSvc)
			pets.RegisterRoutes(pr, petsSvc)
			cages.RegisterRoutes(pr, cagesSvc)
			records.RegisterRoutes(pr, recordsSvc)
			catalog.RegisterRoutes(pr, catalogSvc)
			bookings.RegisterRoutes(pr, bookingsSvc)
		})
	})

	return r, nil
}
