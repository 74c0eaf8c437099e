package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"smart-life-guard/internal/calc"
	"smart-life-guard/internal/config"
	"smart-life-guard/internal/diag"
	"smart-life-guard/internal/event"
	"smart-life-guard/internal/fixture"
	"smart-life-guard/internal/handler"
	"smart-life-guard/internal/metrics"
	"smart-life-guard/internal/model"
	"smart-life-guard/internal/qr"
	"smart-life-guard/internal/router"
	"smart-life-guard/internal/service"
	"smart-life-guard/internal/store"
	"smart-life-guard/internal/websocket"
)

type App struct {
	server *http.Server
}

func New() (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	devices := store.New(func(d model.Device) string { return d.ID }, fixture.Devices())
	alerts := store.New(func(a model.Alert) string { return a.ID }, fixture.Alerts())
	rules := store.New(func(r model.AlertRule) string { return r.ID }, fixture.AlertRules())
	workOrders := store.New(func(o model.WorkOrder) string { return o.ID }, fixture.WorkOrders())
	users := store.New(func(u model.User) string { return u.ID }, fixture.Users())
	roles := store.New(func(r model.Role) string { return r.ID }, fixture.Roles())
	logs := store.New(func(l model.OperationLog) string { return l.ID }, fixture.OperationLogs())
	files := store.New(func(f model.FileItem) string { return f.ID }, fixture.Files())
	maintenance := store.New(func(m model.MaintenanceRecord) string { return m.ID }, fixture.MaintenanceRecords())
	slog.Info("fixture stores seeded",
		"devices", devices.Len(),
		"alerts", alerts.Len(),
		"work_orders", workOrders.Len(),
		"users", users.Len(),
		"files", files.Len(),
	)

	bus := event.NewBus()
	hub := websocket.NewHub(bus)
	go hub.Run()

	m := metrics.New()
	encoder := qr.NewEncoder(cfg.QROrigin, time.Now)
	sched := diag.TimerScheduler{}
	outcomes := diag.RandomSource{ErrorRate: cfg.DiagErrorRate, WarningRate: cfg.DiagWarningRate}

	deviceService := service.NewDeviceService(devices, maintenance, bus, encoder, m, cfg.DiagStepDelay, sched, outcomes)
	alertService := service.NewAlertService(alerts, rules, bus)
	workOrderService := service.NewWorkOrderService(workOrders, devices, bus)
	userService := service.NewUserService(users, roles, logs)
	fileService := service.NewFileService(files, bus, sched, cfg.UploadTick)
	intakeTable := calc.NewTable()

	appRouter := router.New(cfg, m, hub,
		handler.NewDeviceHandler(deviceService),
		handler.NewAlertHandler(alertService),
		handler.NewWorkOrderHandler(workOrderService),
		handler.NewUserHandler(userService),
		handler.NewFileHandler(fileService),
		handler.NewIntakeHandler(intakeTable),
	)

	server := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           appRouter,
		ReadHeaderTimeout: cfg.ServerReadTimeout,
		WriteTimeout:      cfg.ServerWriteTimeout,
		IdleTimeout:       cfg.ServerIdleTimeout,
	}

	return &App{server: server}, nil
}

func (a *App) Run() error {
	go func() {
		slog.Info("server starting", "addr", a.server.Addr)
		if serveErr := a.server.ListenAndServe(); serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			slog.Error("server failed", "error", serveErr)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := a.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	slog.Info("server stopped")
	return nil
}
