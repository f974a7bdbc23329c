package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"geoattend/internal/api/handlers/http/admin"
	"geoattend/internal/api/handlers/http/attendance"
	"geoattend/internal/api/handlers/http/leave"
	"geoattend/internal/api/handlers/http/system"
	"geoattend/internal/config"
	"geoattend/internal/middleware"
	"geoattend/internal/service"
)

type Server struct {
	logger *slog.Logger
	router *chi.Mux
	cfg    config.Config
}

func NewServer(cfg *config.Config, logger *slog.Logger, svc *service.Service) *Server {
	adminHandler := admin.NewHandler(logger, svc.OfficeAdminService, svc.StatsService, svc.LeaveService)
	attendanceHandler := attendance.NewHandler(logger, svc.AttendanceService)
	leaveHandler := leave.NewHandler(logger, svc.LeaveService)
	systemHandler := system.NewHandler(logger)

	r := InitRouter(cfg, adminHandler, attendanceHandler, leaveHandler, systemHandler, logger)

	return &Server{
		logger: logger,
		router: r,
		cfg:    *cfg,
	}
}

func InitRouter(
	cfg *config.Config,
	adminHandler *admin.Handler,
	attendanceHandler *attendance.Handler,
	leaveHandler *leave.Handler,
	systemHandler *system.Handler,
	logger *slog.Logger,
) *chi.Mux {
	r := chi.NewMux()

	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Logger)

	r.Route("/api/v1", func(api chi.Router) {
		// ADMIN
		api.Route("/admin", func(ar chi.Router) {
			ar.Use(middleware.APIKeyMiddleware(cfg.APIKey))
			ar.Use(middleware.Limit(2, 5, 10*time.Minute, logger))

			ar.Get("/stats", adminHandler.AdminStats)

			ar.Route("/offices", func(or chi.Router) {
				or.Post("/", adminHandler.AdminOfficeCreate)
				or.Get("/", adminHandler.AdminOfficeList)

				or.Route("/{id}", func(rr chi.Router) {
					rr.Get("/", adminHandler.AdminOfficeGet)
					rr.Put("/", adminHandler.AdminOfficeUpdate)
					rr.Delete("/", adminHandler.AdminOfficeDelete)
				})
			})

			ar.Route("/leaves", func(lr chi.Router) {
				lr.Get("/", adminHandler.AdminLeaveList)
				lr.Put("/{id}/decision", adminHandler.AdminLeaveDecide)
			})
		})

		// STAFF
		api.Route("/attendance", func(pr chi.Router) {
			pr.Use(middleware.JWTAuth(cfg.Auth.JWTSecret, logger))
			pr.Use(middleware.Limit(10, 20, 5*time.Minute, logger))

			pr.Post("/evaluate", attendanceHandler.AttendanceEvaluate)
			pr.Post("/mark", attendanceHandler.AttendanceMark)
			pr.Get("/history", attendanceHandler.AttendanceHistory)
		})

		api.Route("/leaves", func(lr chi.Router) {
			lr.Use(middleware.JWTAuth(cfg.Auth.JWTSecret, logger))
			lr.Use(middleware.Limit(10, 20, 5*time.Minute, logger))

			lr.Post("/", leaveHandler.LeaveSubmit)
			lr.Get("/", leaveHandler.LeaveListMine)
		})

		// SYSTEM
		api.Get("/health", systemHandler.SystemHealth)
	})

	return r
}

func (s *Server) Run(ctx context.Context) error {
	port := s.cfg.Http.Port
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}

	srv := &http.Server{
		Addr:         port,
		Handler:      s.router,
		ReadTimeout:  s.cfg.Http.ReadTimeout,
		WriteTimeout: s.cfg.Http.WriteTimeout,
		IdleTimeout:  30 * time.Second,
	}

	errChan := make(chan error, 1)

	go func() {
		s.logger.Info("Starting HTTP server",
			slog.String("addr", srv.Addr),
			slog.Duration("read_timeout", s.cfg.Http.ReadTimeout),
			slog.Duration("write_timeout", s.cfg.Http.WriteTimeout),
		)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("ListenAndServe error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("Shutting down HTTP server", slog.String("reason", ctx.Err().Error()))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Http.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("Server shutdown failed", slog.Any("error", err))
			return err
		}
		return nil

	case err := <-errChan:
		return err
	}
}
