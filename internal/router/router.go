package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"smart-life-guard/internal/config"
	"smart-life-guard/internal/handler"
	"smart-life-guard/internal/metrics"
	"smart-life-guard/internal/middleware"
	"smart-life-guard/internal/websocket"
)

func New(
	cfg *config.Config,
	m *metrics.Metrics,
	hub *websocket.Hub,
	deviceHandler *handler.DeviceHandler,
	alertHandler *handler.AlertHandler,
	workOrderHandler *handler.WorkOrderHandler,
	userHandler *handler.UserHandler,
	fileHandler *handler.FileHandler,
	intakeHandler *handler.IntakeHandler,
) http.Handler {
	r := chi.NewRouter()
	rateLimitMiddleware := middleware.NewRateLimitMiddleware(cfg.RateLimitRPM, cfg.ExportRateLimitRPM)

	r.Use(middleware.Recovery)
	r.Use(middleware.Logging)
	r.Use(middleware.Metrics(m))
	r.Use(middleware.CORS(cfg.CORSOrigins))
	r.Use(rateLimitMiddleware.Handler)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/metrics", m.Handler().ServeHTTP)

	r.Route("/api/v1", func(api chi.Router) {
		api.Get("/ws", func(w http.ResponseWriter, r *http.Request) {
			websocket.ServeWS(hub, w, r)
		})

		api.Group(func(api chi.Router) {
			api.Use(middleware.Timeout(cfg.RequestTimeout))

			api.Route("/devices", func(devices chi.Router) {
				devices.Get("/", deviceHandler.List)
				devices.Post("/", deviceHandler.Create)
				devices.Get("/stats", deviceHandler.Stats)
				devices.Get("/health-overview", deviceHandler.HealthOverview)
				devices.Get("/export", deviceHandler.Export)

				devices.Route("/{device_id}", func(device chi.Router) {
					device.Get("/", deviceHandler.Get)
					device.Get("/qrcode", deviceHandler.QRPayload)
					device.Get("/qrcode.png", deviceHandler.QRImage)
					device.Post("/diagnosis", deviceHandler.StartDiagnosis)
					device.Delete("/diagnosis", deviceHandler.CancelDiagnosis)
					device.Get("/diagnosis", deviceHandler.Diagnosis)
					device.Get("/maintenance", deviceHandler.MaintenanceHistory)
					device.Post("/maintenance", deviceHandler.AddMaintenance)
				})
			})

			api.Route("/alerts", func(alerts chi.Router) {
				alerts.Get("/", alertHandler.List)
				alerts.Get("/stats", alertHandler.Stats)
				alerts.Get("/rules", alertHandler.Rules)
				alerts.Post("/rules", alertHandler.CreateRule)
				alerts.Post("/rules/{rule_id}/toggle", alertHandler.ToggleRule)
				alerts.Delete("/rules/{rule_id}", alertHandler.DeleteRule)
				alerts.Get("/{alert_id}", alertHandler.Get)
				alerts.Post("/{alert_id}/acknowledge", alertHandler.Acknowledge)
				alerts.Post("/{alert_id}/resolve", alertHandler.Resolve)
			})

			api.Route("/work-orders", func(orders chi.Router) {
				orders.Get("/", workOrderHandler.List)
				orders.Post("/", workOrderHandler.Create)
				orders.Get("/stats", workOrderHandler.Stats)
				orders.Get("/{order_id}", workOrderHandler.Get)
			})

			api.Route("/users", func(users chi.Router) {
				users.Get("/", userHandler.List)
				users.Get("/stats", userHandler.Stats)
				users.Get("/roles", userHandler.Roles)
				users.Get("/operation-logs", userHandler.OperationLogs)
				users.Get("/{user_id}", userHandler.Get)
			})

			api.Route("/files", func(files chi.Router) {
				files.Get("/", fileHandler.List)
				files.Get("/type-counts", fileHandler.TypeCounts)
				files.Post("/folders", fileHandler.CreateFolder)
				files.Post("/uploads", fileHandler.StartUpload)
				files.Delete("/uploads/{upload_id}", fileHandler.CancelUpload)
				files.Get("/{file_id}", fileHandler.Get)
				files.Post("/{file_id}/favorite", fileHandler.ToggleFavorite)
			})

			api.Route("/intake", func(intake chi.Router) {
				intake.Get("/rows", intakeHandler.List)
				intake.Post("/rows", intakeHandler.AddRow)
				intake.Patch("/rows/{row_id}", intakeHandler.UpdateRow)
				intake.Delete("/rows/{row_id}", intakeHandler.RemoveRow)
			})
		})
	})

	return r
}
