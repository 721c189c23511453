package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/pantry-scheduler/internal/audit"
	"github.com/BruksfildServices01/pantry-scheduler/internal/auth"
	"github.com/BruksfildServices01/pantry-scheduler/internal/config"
	appointmentDomain "github.com/BruksfildServices01/pantry-scheduler/internal/domain/appointment"
	clientDomain "github.com/BruksfildServices01/pantry-scheduler/internal/domain/client"
	"github.com/BruksfildServices01/pantry-scheduler/internal/domain/note"
	userDomain "github.com/BruksfildServices01/pantry-scheduler/internal/domain/user"
	"github.com/BruksfildServices01/pantry-scheduler/internal/handlers"
	"github.com/BruksfildServices01/pantry-scheduler/internal/httperr"
	infraRepo "github.com/BruksfildServices01/pantry-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/pantry-scheduler/internal/mailer"
	"github.com/BruksfildServices01/pantry-scheduler/internal/middleware"
	"github.com/BruksfildServices01/pantry-scheduler/internal/monitoring"
	"github.com/BruksfildServices01/pantry-scheduler/internal/session"
	"github.com/BruksfildServices01/pantry-scheduler/internal/timezone"
	ucUser "github.com/BruksfildServices01/pantry-scheduler/internal/usecase/user"
	"github.com/BruksfildServices01/pantry-scheduler/internal/validators"
)

// Dependencies is everything the route table needs. Tests build it from
// in-memory repositories.
type Dependencies struct {
	Config *config.Config
	Log    logrus.FieldLogger

	Appointments appointmentDomain.Repository
	Clients      clientDomain.Repository
	Notes        note.Repository
	Users        userDomain.Repository
	Audit        audit.Store

	Issuer   *auth.TokenIssuer
	Sessions session.Store
	Mailer   mailer.Mailer
	DB       handlers.Pinger

	Location *time.Location
	Now      func() time.Time
}

// RegisterRoutes wires the gorm repositories and mounts the route table.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, log logrus.FieldLogger, sessions session.Store) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}

	Mount(r, Dependencies{
		Config:       cfg,
		Log:          log,
		Appointments: infraRepo.NewAppointmentGormRepository(db),
		Clients:      infraRepo.NewClientGormRepository(db),
		Notes:        infraRepo.NewNoteGormRepository(db),
		Users:        infraRepo.NewUserGormRepository(db),
		Audit:        audit.New(db, log),
		Issuer:       auth.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL),
		Sessions:     sessions,
		Mailer:       mailer.NewLogMailer(log),
		DB:           sqlDB,
		Location:     timezone.Location(cfg.Timezone),
		Now:          time.Now,
	})
	return nil
}

// handle registers path for method, plus its ".json" twin when asked.
func handle(g gin.IRoutes, withJSON bool, method, path string, h gin.HandlerFunc) {
	g.Handle(method, path, h)
	if withJSON {
		g.Handle(method, path+".json", h)
	}
}

// noteRoutes lists the HTTP routes behind each note action.
var noteRoutes = map[note.Action][]struct{ method, path string }{
	note.ActionCreate:  {{http.MethodPost, ""}},
	note.ActionUpdate:  {{http.MethodPut, "/:note_id"}, {http.MethodPatch, "/:note_id"}},
	note.ActionDestroy: {{http.MethodDelete, "/:note_id"}},
}

func Mount(r *gin.Engine, d Dependencies) {
	cfg := d.Config
	log := d.Log
	if d.Location == nil {
		d.Location = time.Local
	}

	// ======================================================
	// GLOBAL MIDDLEWARE
	// ======================================================
	r.Use(
		middleware.RequestID(),
		middleware.RequestLogger(log),
		middleware.Metrics(),
		gin.CustomRecovery(func(c *gin.Context, recovered any) {
			log.WithField("panic", recovered).Error("handler panicked")
			httperr.Internal(c, "internal_error", "internal server error")
		}),
		middleware.CORSMiddleware(cfg.CORSOrigins),
		middleware.Authenticate(d.Issuer, d.Sessions, log),
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	var checkDomain ucUser.DomainChecker
	if cfg.VerifyEmail {
		checkDomain = validators.IsEmailDomainValid
	}

	appointmentHandler := handlers.NewAppointmentHandler(d.Appointments, d.Notes, d.Audit, d.Location, d.Now, log)
	clientHandler := handlers.NewClientHandler(d.Clients, d.Appointments, d.Notes, d.Audit, log)
	noteHandlers := map[string]*handlers.NoteHandler{
		"/clients":      handlers.NewNoteHandler(note.KindClient, d.Notes, d.Audit),
		"/appointments": handlers.NewNoteHandler(note.KindAppointment, d.Notes, d.Audit),
	}
	auditLogsHandler := handlers.NewAuditLogsHandler(d.Audit, d.Location)
	authHandler := handlers.NewAuthHandler(handlers.AuthDeps{
		Users:       d.Users,
		Issuer:      d.Issuer,
		Sessions:    d.Sessions,
		Mailer:      d.Mailer,
		CheckDomain: checkDomain,
		Audit:       d.Audit,
		Now:         d.Now,
		Log:         log,
	})
	healthHandler := handlers.NewHealthHandler(d.DB)
	spaHandler := handlers.NewSPAHandler(cfg.StaticDir)

	limiter := middleware.NewRateLimiter(cfg.AuthRateRPS, cfg.AuthRateBurst, log).Handler()
	signedIn := middleware.RequireAuth()

	// ======================================================
	// OPS
	// ======================================================
	r.GET("/health", healthHandler.Check)
	r.GET("/metrics", gin.WrapH(monitoring.Handler()))

	// ======================================================
	// USERS
	// ======================================================
	users := r.Group("/users")
	{
		users.POST("", authHandler.Register)
		users.POST("/sign_in", limiter, authHandler.SignIn)
		users.DELETE("/sign_out", signedIn, authHandler.SignOut)
		users.GET("/me", signedIn, authHandler.Me)
		users.POST("/password", limiter, authHandler.RequestPasswordReset)
		users.PUT("/password", limiter, authHandler.ResetPassword)
		users.PATCH("/password", limiter, authHandler.ResetPassword)
		users.PUT("/:id", signedIn, authHandler.UpdateUser)
		users.PATCH("/:id", signedIn, authHandler.UpdateUser)
	}

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	if cfg.RequireAuth {
		api.Use(signedIn)
	}
	{
		// ------------------------------
		// APPOINTMENTS
		// ------------------------------
		handle(api, true, http.MethodGet, "/appointments", appointmentHandler.Index)
		handle(api, true, http.MethodGet, "/appointments/today", appointmentHandler.Today)
		handle(api, true, http.MethodPost, "/appointments", appointmentHandler.Create)
		handle(api, false, http.MethodGet, "/appointments/:id", appointmentHandler.Show)
		handle(api, false, http.MethodPut, "/appointments/:id", appointmentHandler.Update)
		handle(api, false, http.MethodPatch, "/appointments/:id", appointmentHandler.Update)
		handle(api, false, http.MethodDelete, "/appointments/:id", appointmentHandler.Destroy)

		// ------------------------------
		// CLIENTS
		// ------------------------------
		handle(api, true, http.MethodGet, "/clients", clientHandler.Index)
		handle(api, true, http.MethodPost, "/clients", clientHandler.Create)
		handle(api, false, http.MethodGet, "/clients/autocomplete_name/:name", clientHandler.AutocompleteName)
		handle(api, false, http.MethodGet, "/clients/:id", clientHandler.Show)
		handle(api, false, http.MethodPut, "/clients/:id", clientHandler.Update)
		handle(api, false, http.MethodPatch, "/clients/:id", clientHandler.Update)
		handle(api, false, http.MethodDelete, "/clients/:id", clientHandler.Destroy)

		// ------------------------------
		// NOTES (only the owner's permitted actions)
		// ------------------------------
		for prefix, h := range noteHandlers {
			base := prefix + "/:id/notes"
			for action, fn := range h.Handlers() {
				for _, rt := range noteRoutes[action] {
					handle(api, false, rt.method, base+rt.path, fn)
				}
			}
		}

		handle(api, true, http.MethodGet, "/audit_logs", auditLogsHandler.List)
	}

	// ======================================================
	// SPA FALLBACK
	// ======================================================
	r.NoRoute(spaHandler.Serve)
}
