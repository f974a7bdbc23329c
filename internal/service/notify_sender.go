package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"geoattend/internal/config"
	"geoattend/internal/domain"
	"geoattend/internal/redis"
	"geoattend/pkg/e"
)

// NotifySender drains the notify queue and delivers attendance
// notifications to the configured webhook with bounded retries.
type NotifySender struct {
	logger *slog.Logger
	cfg    config.WebhookConfig
	queue  *redis.NotifyQueue
	http   *http.Client
}

func NewNotifySender(logger *slog.Logger, cfg config.WebhookConfig, q *redis.NotifyQueue) *NotifySender {
	return &NotifySender{
		logger: logger,
		cfg:    cfg,
		queue:  q,
		http:   &http.Client{Timeout: 5 * time.Second},
	}
}

func (s *NotifySender) Run(ctx context.Context) {
	if s.cfg.Disabled {
		s.logger.Info("notifySender disabled via config")
		return
	}

	s.logger.Info("notifySender started", slog.String("url", s.cfg.URL))

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("notifySender stopped", slog.String("reason", ctx.Err().Error()))
			return
		default:
		}

		payload, err := s.queue.BRPop(ctx, 5*time.Second)
		if err != nil {
			if errors.Is(err, e.ErrQueueEmpty) {
				continue
			}
			if ctx.Err() != nil {
				continue
			}
			s.logger.Error("BRPop failed", slog.Any("error", err))
			time.Sleep(500 * time.Millisecond)
			continue
		}

		s.sendWithRetry(ctx, payload)
	}
}

func (s *NotifySender) sendWithRetry(ctx context.Context, p domain.NotificationPayload) {
	const maxRetries = 3

	body, err := json.Marshal(p)
	if err != nil {
		s.logger.Error("marshal notification payload failed", slog.String("error", err.Error()))
		return
	}

	for attempt := 1; attempt <= maxRetries; attempt++ {
		if ctx.Err() != nil {
			s.logger.Info("stop retries due to context cancel")
			return
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.URL, bytes.NewReader(body))
		if err != nil {
			s.logger.Error("create notification request failed", slog.String("error", err.Error()))
			return
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := s.http.Do(req)
		if err == nil && resp.StatusCode >= 200 && resp.StatusCode < 300 {
			_ = resp.Body.Close()
			return
		}
		if resp != nil {
			_ = resp.Body.Close()
		}

		reason := "unknown"
		if err != nil {
			reason = err.Error()
		} else if resp != nil {
			reason = resp.Status
		}

		s.logger.Warn("notification delivery failed",
			slog.Int("attempt", attempt),
			slog.String("url", s.cfg.URL),
			slog.String("user_id", p.UserID.String()),
			slog.String("reason", reason),
		)

		time.Sleep(time.Duration(attempt) * time.Second)
	}
}
