package api

import (
	"database/sql"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"

	"github.com/clinicadelvalle/clinic-api/internal/api/handler"
	"github.com/clinicadelvalle/clinic-api/internal/core/ports"
	"github.com/clinicadelvalle/clinic-api/internal/core/service"
	"github.com/clinicadelvalle/clinic-api/internal/infrastructure/db/memory"
	"github.com/clinicadelvalle/clinic-api/internal/infrastructure/db/mysql"
	redisdb "github.com/clinicadelvalle/clinic-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// rdb may be nil, in which case the read-through cache is disabled.
func NewRouter(db *sql.DB, rdb *goredis.Client, allowedOrigins []string, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{echo.GET, echo.POST, echo.PUT, echo.DELETE},
	}))
	e.Use(echoprometheus.NewMiddleware("clinic"))

	// --- Dependencies ---
	var cache ports.ClinicCache
	if rdb != nil {
		cache = redisdb.NewClinicCache(rdb, log)
	}

	patientService := service.NewPatientService(mysql.NewPatientRepository(db), cache, log)
	consultationService := service.NewConsultationService(mysql.NewConsultationRepository(db), cache, log)
	authService := service.NewAuthService(mysql.NewAuthRepository(db), log)
	medicService := service.NewMedicService(mysql.NewMedicRepository(db), log)
	userService := service.NewUserService(mysql.NewUserRepository(db), log)

	healthHandler := handler.NewHealthHandler(db)
	authHandler := handler.NewAuthHandler(authService)
	patientHandler := handler.NewPatientHandler(patientService)
	consultationHandler := handler.NewConsultationHandler(consultationService)
	medicHandler := handler.NewMedicHandler(medicService)
	userHandler := handler.NewUserHandler(userService)
	todoHandler := handler.NewTodoHandler(memory.NewTodoRepository())

	// --- Health probes ---
	e.GET("/", healthHandler.Root)
	e.GET("/health/database", healthHandler.Database)

	// --- Auth ---
	e.POST("/auth/login", authHandler.Login)

	// --- Patients ---
	e.GET("/patients", patientHandler.Search)
	e.GET("/patients/:id", patientHandler.Get)
	e.POST("/patients", patientHandler.Create)
	e.GET("/patients/:id/consultations", consultationHandler.ListByPatient)

	// --- Consultations ---
	e.GET("/consultations", consultationHandler.History)
	e.POST("/consultations", consultationHandler.Create)

	// --- Medics ---
	e.GET("/medics", medicHandler.Search)
	e.POST("/medics", medicHandler.Create)
	e.PUT("/medics/:id", medicHandler.Update)
	e.DELETE("/medics/:id", medicHandler.Deactivate)

	// --- Users ---
	e.GET("/users", userHandler.Search)
	e.POST("/users", userHandler.Create)
	e.PUT("/users/:id", userHandler.Update)
	e.DELETE("/users/:id", userHandler.Deactivate)

	// --- Todos (demo) ---
	e.GET("/todos", todoHandler.List)
	e.GET("/todos/:id", todoHandler.Get)
	e.POST("/todos", todoHandler.Create)
	e.PUT("/todos/:id", todoHandler.Update)
	e.DELETE("/todos/:id", todoHandler.Delete)

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
