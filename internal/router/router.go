package router

import (
	"database/sql"
	"net/http"

	mem "petclinic-visits/internal/adapters/storage/memory"
	pg "petclinic-visits/internal/adapters/storage/postgres"
	"petclinic-visits/internal/adapters/storage/seed"
	"petclinic-visits/internal/adapters/storage/sqlite"
	"petclinic-visits/internal/config"
	"petclinic-visits/internal/domain/pets"
	"petclinic-visits/internal/domain/vets"
	"petclinic-visits/internal/domain/visits"
	"petclinic-visits/internal/middleware"
	"petclinic-visits/internal/platform/logger"
	"petclinic-visits/internal/platform/metrics"
	"petclinic-visits/internal/platform/view"

	_ "petclinic-visits/docs"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

type Options struct {
	// Opcional: si viene, se usa con Driver (postgres|sqlite). Si no, in-memory.
	DB     *sql.DB
	Driver string

	// Seed carga los datos de ejemplo en los repos in-memory. Para SQL el
	// seed lo hace main contra la base.
	Seed bool

	Logger  logger.Logger // nil => descarta logs
	Metrics *metrics.Metrics
	Views   view.Renderer // nil => templates embebidos

	// RateLimitRPS <= 0 deshabilita el rate limit.
	RateLimitRPS   float64
	RateLimitBurst int
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	m := opts.Metrics
	if m == nil {
		m = metrics.New()
	}
	views := opts.Views
	if views == nil {
		views = view.MustNew()
	}

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(log))
	r.Use(chimw.Recoverer)
	r.Use(m.Middleware)
	// sin TRACING_ENABLED el provider global es no-op
	r.Use(otelhttp.NewMiddleware("petclinic-visits"))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Method(http.MethodGet, "/metrics", m.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	var (
		petRepo   pets.Repository
		vetRepo   vets.Repository
		visitRepo visits.Repository
	)

	switch {
	case opts.DB != nil && opts.Driver == config.DriverSQLite:
		petRepo = sqlite.NewPetsRepo(opts.DB)
		vetRepo = sqlite.NewVetsRepo(opts.DB)
		visitRepo = sqlite.NewVisitsRepo(opts.DB)
	case opts.DB != nil:
		petRepo = pg.NewPetsRepo(opts.DB)
		vetRepo = pg.NewVetsRepo(opts.DB)
		visitRepo = pg.NewVisitsRepo(opts.DB)
	default:
		var data seed.Data
		if opts.Seed {
			data = seed.Default()
		}
		var err error
		// el seed es estático; un error acá es un bug de build
		if petRepo, err = mem.NewPetRepo(data.Pets...); err != nil {
			panic(err)
		}
		vetRepo = mem.NewVetRepo(data.Vets...)
		visitRepo = mem.NewVisitRepo(data.Visits...)
	}

	deps := pets.VisitRoutesDeps{
		Pets:      pets.NewService(petRepo),
		Vets:      vets.NewService(vetRepo),
		Visits:    visits.NewService(visitRepo),
		Validator: visits.NewFormValidator(),
		Views:     views,
		Log:       log,
		Metrics:   m,
	}

	r.Group(func(fr chi.Router) {
		if opts.RateLimitRPS > 0 {
			fr.Use(middleware.RateLimit(opts.RateLimitRPS, opts.RateLimitBurst, log))
		}
		pets.RegisterVisitRoutes(fr, deps)
	})

	return r
}
