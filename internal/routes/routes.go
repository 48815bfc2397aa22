package routes

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/c14220110/hms-console/config"
	appointmentControllers "github.com/c14220110/hms-console/internal/appointment/controllers"
	appointmentRoutes "github.com/c14220110/hms-console/internal/appointment/routes"
	appointmentServices "github.com/c14220110/hms-console/internal/appointment/services"
	"github.com/c14220110/hms-console/internal/common/display"
	"github.com/c14220110/hms-console/internal/common/middlewares"
	"github.com/c14220110/hms-console/internal/common/records"
	"github.com/c14220110/hms-console/internal/common/wire"
	dashboardControllers "github.com/c14220110/hms-console/internal/dashboard/controllers"
	dashboardModels "github.com/c14220110/hms-console/internal/dashboard/models"
	dashboardRoutes "github.com/c14220110/hms-console/internal/dashboard/routes"
	dashboardServices "github.com/c14220110/hms-console/internal/dashboard/services"
	doctorControllers "github.com/c14220110/hms-console/internal/doctor/controllers"
	doctorRoutes "github.com/c14220110/hms-console/internal/doctor/routes"
	doctorServices "github.com/c14220110/hms-console/internal/doctor/services"
	patientControllers "github.com/c14220110/hms-console/internal/patient/controllers"
	patientRoutes "github.com/c14220110/hms-console/internal/patient/routes"
	patientServices "github.com/c14220110/hms-console/internal/patient/services"
	"github.com/c14220110/hms-console/ws"
)

// Roles allowed to call each mutation when token verification is enabled.
var (
	completeRoles = []string{"Admin", "Doctor"}
	registerRoles = []string{"Admin", "Receptionist"}
	shiftRoles    = []string{"Admin"}
)

type Deps struct {
	Config *config.Config
	Store  records.Store
	Hub    *ws.Hub
	Logger *zap.Logger
}

// Init registers every console route on e. The returned function tears down
// the live charts.
func Init(e *echo.Echo, d Deps) func() error {
	window := time.Duration(d.Config.RecentWindowDays) * 24 * time.Hour

	// Services
	dashboardService := dashboardServices.NewDashboardService(d.Store, window, d.Logger.Named("dashboard"))
	renderer := dashboardServices.NewChartRenderer(ws.NewChartBackend(d.Hub), d.Logger.Named("charts"))
	appointmentService := appointmentServices.NewAppointmentService(d.Store, d.Logger.Named("appointment"))
	doctorService := doctorServices.NewDoctorService(d.Store, d.Logger.Named("doctor"))
	patientService := patientServices.NewPatientService(d.Store, d.Logger.Named("patient"))

	dashboardService.OnUpdate(publishMetrics(d.Hub, d.Logger))

	// Controllers
	dashboardController := dashboardControllers.NewDashboardController(dashboardService, renderer)
	appointmentController := appointmentControllers.NewAppointmentController(appointmentService)
	doctorController := doctorControllers.NewDoctorController(doctorService)
	patientController := patientControllers.NewPatientController(patientService)

	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.GET("/ws", ws.ServeWS(d.Hub))

	api := e.Group("/api")
	refresh := refreshDashboard(dashboardService)
	guard := func(roles []string) []echo.MiddlewareFunc {
		if d.Config.JWTSecret == "" {
			return []echo.MiddlewareFunc{refresh}
		}
		return []echo.MiddlewareFunc{middlewares.JWTMiddleware(d.Config.JWTSecret), middlewares.RequireRole(roles...), refresh}
	}

	dashboardRoutes.RegisterDashboardRoutes(api, dashboardController)
	appointmentRoutes.RegisterAppointmentRoutes(api, appointmentController, guard(completeRoles)...)
	doctorRoutes.RegisterDoctorRoutes(api, doctorController, guard(shiftRoles)...)
	patientRoutes.RegisterPatientRoutes(api, patientController, guard(registerRoles)...)

	return renderer.Close
}

// refreshDashboard re-fetches the dashboard after a successful write so
// subscribers see the new record. Fetch failures reach them through the
// subscription, not the write's response.
func refreshDashboard(svc *dashboardServices.DashboardService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if err := next(c); err != nil {
				return err
			}
			if status := c.Response().Status; status >= 200 && status < 300 {
				_, _ = svc.Refresh(c.Request().Context())
			}
			return nil
		}
	}
}

// publishMetrics pushes the refreshed cards, or the fetch error, to every
// websocket client.
func publishMetrics(hub *ws.Hub, logger *zap.Logger) func(wire.Result[dashboardModels.DashboardStats]) {
	return func(res wire.Result[dashboardModels.DashboardStats]) {
		var err error
		if res.OK() {
			err = hub.Publish(ws.TypeMetricsUpdate, dashboardServices.BuildMetrics(res.Data))
		} else {
			err = hub.Publish(ws.TypeFetchError, map[string]string{"message": display.ErrorMessage(res.Err)})
		}
		if err != nil {
			logger.Warn("publish dashboard update", zap.Error(err))
		}
	}
}

// Serve runs e on addr until ctx is cancelled, then shuts it down gracefully.
func Serve(ctx context.Context, e *echo.Echo, addr string) error {
	errCh := make(chan error, 1)
	go func() {
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
