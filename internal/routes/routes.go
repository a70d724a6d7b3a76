package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-marketplace/internal/audit"
	"github.com/BruksfildServices01/barber-marketplace/internal/config"
	"github.com/BruksfildServices01/barber-marketplace/internal/domain/account"
	"github.com/BruksfildServices01/barber-marketplace/internal/handlers"
	infraRepo "github.com/BruksfildServices01/barber-marketplace/internal/infra/repository"
	"github.com/BruksfildServices01/barber-marketplace/internal/middleware"
	"github.com/BruksfildServices01/barber-marketplace/internal/storage"
	"github.com/BruksfildServices01/barber-marketplace/internal/timezone"
	ucAdmin "github.com/BruksfildServices01/barber-marketplace/internal/usecase/admin"
	ucAppointment "github.com/BruksfildServices01/barber-marketplace/internal/usecase/appointment"
	ucEarnings "github.com/BruksfildServices01/barber-marketplace/internal/usecase/earnings"
	ucPayout "github.com/BruksfildServices01/barber-marketplace/internal/usecase/payout"
	"github.com/BruksfildServices01/barber-marketplace/internal/validators"
)

// Deps are the process-wide singletons the router wires together.
type Deps struct {
	DB        *gorm.DB
	Config    *config.Config
	Audit     *audit.Dispatcher
	RateStore middleware.RateStore
	Uploader  storage.Uploader
	Clock     timezone.Clock
	Domains   validators.DomainChecker
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	cfg := d.Config
	loc := timezone.Location(cfg.Timezone)

	clock := d.Clock
	if clock == nil {
		clock = timezone.SystemClock
	}

	rateStore := d.RateStore
	if rateStore == nil {
		rateStore = middleware.NewMemoryRateStore()
	}

	// ======================================================
	// MIDDLEWARE
	// ======================================================
	r.Use(
		middleware.RequestID(),
		middleware.RequestLogger(),
		middleware.Recovery(),
		middleware.CORSMiddleware(cfg.CORSAllowedOrigins),
		middleware.RateLimiter(rateStore, cfg.RateLimitPerMinute, time.Minute),
	)

	// ======================================================
	// REPOSITORIES
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(d.DB)
	earningsRepo := infraRepo.NewEarningsGormRepository(d.DB)
	payoutRepo := infraRepo.NewPayoutGormRepository(d.DB)
	statsRepo := infraRepo.NewStatsGormRepository(d.DB)

	// ======================================================
	// USE CASES
	// ======================================================
	createBookingUC := ucAppointment.NewCreateBooking(appointmentRepo, d.Audit, clock, loc)
	availabilityUC := ucAppointment.NewGetAvailability(appointmentRepo, clock, loc)
	listBarberUC := ucAppointment.NewListBarberAppointments(appointmentRepo)
	listCustomerUC := ucAppointment.NewListCustomerAppointments(appointmentRepo)
	acceptUC := ucAppointment.NewAcceptAppointment(appointmentRepo, d.Audit, clock)
	declineUC := ucAppointment.NewDeclineAppointment(appointmentRepo, d.Audit, clock)
	completeUC := ucAppointment.NewCompleteAppointment(appointmentRepo, d.Audit, clock)
	cancelUC := ucAppointment.NewCancelAppointment(appointmentRepo, d.Audit, clock)

	earningsUC := ucEarnings.NewGetEarningsSummary(earningsRepo, clock, loc)
	statsUC := ucAdmin.NewGetPlatformStats(statsRepo)
	listPayoutsUC := ucPayout.NewListPayouts(payoutRepo)
	recordPayoutUC := ucPayout.NewRecordPayout(payoutRepo, d.Audit)

	// ======================================================
	// HANDLERS
	// ======================================================
	healthHandler := handlers.NewHealthHandler(pinger(d.DB))
	authHandler := handlers.NewAuthHandler(d.DB, cfg, clock, d.Domains)
	meHandler := handlers.NewMeHandler(d.DB, d.Uploader)
	publicHandler := handlers.NewPublicHandler(d.DB, availabilityUC)
	serviceHandler := handlers.NewServiceHandler(d.DB)
	appointmentHandler := handlers.NewAppointmentHandler(
		createBookingUC,
		listBarberUC,
		listCustomerUC,
		acceptUC,
		declineUC,
		completeUC,
		cancelUC,
	)
	auditLogsHandler := handlers.NewAuditLogsHandler(d.DB)
	earningsHandler := handlers.NewEarningsHandler(earningsUC)
	payoutHandler := handlers.NewPayoutHandler(listPayoutsUC)
	adminHandler := handlers.NewAdminHandler(statsUC, recordPayoutUC)

	// ======================================================
	// PUBLIC
	// ======================================================
	healthHandler.Register(r)

	api := r.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
	}

	api.GET("/barbers", publicHandler.ListBarbers)
	api.GET("/barbers/:id/services", publicHandler.ListServices)
	api.GET("/barbers/:id/availability", publicHandler.Availability)

	// ======================================================
	// AUTHENTICATED
	// ======================================================
	private := api.Group("")
	private.Use(middleware.AuthMiddleware(cfg))

	me := private.Group("/me")
	{
		me.GET("", meHandler.GetMe)
		me.POST("/avatar", meHandler.UploadAvatar)

		customer := me.Group("", middleware.RequireRole(account.RoleCustomer))
		customer.GET("/appointments", appointmentHandler.ListMine)
		customer.PATCH("/appointments/:id/cancel", appointmentHandler.Cancel)
	}

	private.POST(
		"/appointments",
		middleware.RequireRole(account.RoleCustomer),
		appointmentHandler.Create,
	)

	// ======================================================
	// BARBER
	// ======================================================
	barber := private.Group("/barber", middleware.RequireRole(account.RoleBarber))
	{
		barber.GET("/earnings", earningsHandler.Get)
		barber.GET("/payouts", payoutHandler.List)
		barber.GET("/audit-logs", auditLogsHandler.List)

		barber.GET("/services", serviceHandler.List)
		barber.POST("/services", serviceHandler.Create)
		barber.PATCH("/services/:id", serviceHandler.Update)

		barber.GET("/appointments", appointmentHandler.ListForBarber)
		barber.PATCH("/appointments/:id/accept", appointmentHandler.Accept)
		barber.PATCH("/appointments/:id/decline", appointmentHandler.Decline)
		barber.PATCH("/appointments/:id/complete", appointmentHandler.Complete)
	}

	// ======================================================
	// ADMIN
	// ======================================================
	admin := private.Group("/admin", middleware.RequireRole(account.RoleAdmin))
	{
		admin.GET("/stats", adminHandler.Stats)
		admin.POST("/payouts", adminHandler.RecordPayout)
	}
}
