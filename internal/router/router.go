package router

import (
	"database/sql"
	"net/http"
	"os"
	"time"

	mem "pet-daycare-calendar/internal/adapters/storage/memory"
	pg "pet-daycare-calendar/internal/adapters/storage/postgres"
	"pet-daycare-calendar/internal/domain/calendar"
	"pet-daycare-calendar/internal/domain/pets"
	"pet-daycare-calendar/internal/middleware"
	"pet-daycare-calendar/internal/ports/auth"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "pet-daycare-calendar/docs"
)

type Options struct {
	AuthVerifier auth.AuthVerifier // puede ser nil (modo dev)

	// Opcional: si viene, usa Postgres. Si no, adapters en memoria
	// con datos de ejemplo.
	DB *sql.DB

	// Ventana de "próximos" en días; <=0 usa el default del dominio.
	UpcomingWindowDays int
}

// NewRouter arma el router y devuelve también el servicio de agenda para
// que el caller pueda colgar jobs (recordatorios) del mismo service.
func NewRouter(opts Options) (http.Handler, *calendar.Service) {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	r.Use(middleware.AuthContext(opts.AuthVerifier))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/swagger/*", httpSwagger.Handler())

	// Si no te pasan DB explícita, intenta por env (para dev/handoff)
	db := opts.DB
	if db == nil {
		if dsn := os.Getenv("DB_DSN"); dsn != "" {
			opened, err := pg.Open(dsn)
			if err == nil {
				db = opened
			}
		}
	}

	var (
		sources calendar.Sources
		petRepo pets.Repository
	)
	if db != nil {
		sources = calendar.Sources{
			Vaccinations: pg.NewVaccinationsRepo(db),
			Medications:  pg.NewMedicationsRepo(db),
			Preventives:  pg.NewPreventivesRepo(db),
			Stays:        pg.NewStaysRepo(db),
			Transactions: pg.NewTransactionsRepo(db),
			Credits:      pg.NewCreditsRepo(db),
		}
		petRepo = pg.NewPetsRepo(db)
	} else {
		sources, petRepo = mem.NewSeededStore(time.Now())
	}

	// Services por módulo
	calendarSvc := calendar.NewService(sources)
	calendarSvc.SetUpcomingWindow(opts.UpcomingWindowDays)
	petsSvc := pets.NewService(petRepo)

	// Rutas por módulo
	calendar.RegisterRoutes(r, calendarSvc)
	pets.RegisterRoutes(r, petsSvc)

	return r, calendarSvc
}
