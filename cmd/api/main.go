package main

import (
	"context"
	"fmt"
	"log"
	"time"

	common_api "go-clinic/internal/api"
	"go-clinic/internal/config"
	"go-clinic/internal/database"
	"go-clinic/internal/features/appointment"
	"go-clinic/internal/features/auth"
	"go-clinic/internal/features/availabledate"
	"go-clinic/internal/features/city"
	"go-clinic/internal/features/doctor"
	"go-clinic/internal/features/finance"
	"go-clinic/internal/features/system"
	"go-clinic/internal/features/user"
	"go-clinic/internal/logger"
	"go-clinic/internal/middleware"
	"go-clinic/pkg/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

// NewFiberServer creates a new Fiber app instance
func NewFiberServer() *fiber.App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		// Controllers map domain errors to statuses themselves; this only
		// catches what leaks past them (router errors, panics)
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	app.Use(middleware.CORSMiddleware())

	return app
}

// AsRoute tags a constructor so Fx adds its result to the "routes" group.
func AsRoute(f any) any {
	return fx.Annotate(
		f,
		fx.As(new(common_api.Route)),
		fx.ResultTags(`group:"routes"`),
	)
}

// RegisterAllRoutes takes the group "routes" and calls Setup() on each one.
func RegisterAllRoutes(app *fiber.App, routes []common_api.Route) {
	for _, route := range routes {
		route.Setup(app)
	}
	log.Printf("Registered %d route modules\n", len(routes))
}

var RegisterAllRoutesWithAnnotation = fx.Annotate(
	RegisterAllRoutes,
	fx.ParamTags(``, `group:"routes"`),
)

// StartServer creates a lifecycle hook to start Fiber in a goroutine
// and shut it down when the app exits.
func StartServer(lc fx.Lifecycle, app *fiber.App, cfg *config.Config) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			utils.SetSecret(cfg.JWTSecret)
			go func() {
				port := fmt.Sprintf(":%s", cfg.Port)
				if err := app.Listen(port); err != nil {
					log.Fatalf("Server failed to start: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return app.Shutdown()
		},
	})
}

// InitializeIndexes ensures the appointment uniqueness index exists. The
// double-booking guard depends on it to stay race-free.
func InitializeIndexes(lc fx.Lifecycle, apptRepo appointment.AppointmentRepository, zlog *zap.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
				defer cancel()

				if err := apptRepo.EnsureIndexes(ctx); err != nil {
					zlog.Error("failed to ensure appointment indexes", zap.Error(err))
				}
			}()
			return nil
		},
	})
}

func main() {
	app := fx.New(
		fx.Provide(
			config.LoadConfig,
			logger.NewLogger,
			NewFiberServer,
			database.NewDatabase,

			// Repositories
			user.NewUserRepository,
			city.NewCityRepository,
			doctor.NewDoctorRepository,
			availabledate.NewDateRepository,
			appointment.NewAppointmentRepository,
			finance.NewFinanceRepository,

			// Services
			user.NewUserService,
			auth.NewAuthService,
			city.NewCityService,
			doctor.NewDoctorService,
			availabledate.NewDateService,
			availabledate.NewSweeper,
			appointment.NewWebhookNotifier,
			appointment.NewAppointmentService,
			finance.NewFinanceService,

			// Interface adapters
			func(s city.CityService) appointment.ScheduleSource { return s },

			// Controllers
			auth.NewAuthController,
			user.NewUserController,
			city.NewCityController,
			doctor.NewDoctorController,
			availabledate.NewDateController,
			appointment.NewAppointmentController,
			finance.NewFinanceController,

			// API Routes
			AsRoute(auth.NewAuthApi),
			AsRoute(user.NewUserApi),
			AsRoute(city.NewCityApi),
			AsRoute(doctor.NewDoctorApi),
			AsRoute(availabledate.NewDateApi),
			AsRoute(appointment.NewAppointmentApi),
			AsRoute(finance.NewFinanceApi),
			AsRoute(system.NewHealthApi),
			AsRoute(system.NewRolesApi),
		),
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log}
		}),
		fx.Invoke(
			RegisterAllRoutesWithAnnotation,
			StartServer,
			func(lc fx.Lifecycle, sweeper *availabledate.Sweeper) {
				lc.Append(fx.Hook{
					OnStart: func(ctx context.Context) error {
						return sweeper.Start(ctx)
					},
					OnStop: func(ctx context.Context) error {
						return sweeper.Stop()
					},
				})
			},
			InitializeIndexes,
		),
	)

	app.Run()
}
