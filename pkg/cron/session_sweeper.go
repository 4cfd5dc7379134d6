package cron

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"

	"listora_admin/internal/session"
)

// InitSessionSweeperCron terk edilmiş composer oturumlarını periyodik
// olarak kapatır ve staging medyalarını temizler
func InitSessionSweeperCron(registry *session.Registry) {
	c := cron.New()

	_, err := c.AddFunc("@every 15m", func() {
		sweepSessions(registry)
	})

	if err != nil {
		slog.Error("could not initialize session sweeper cron", "error", err)
		return
	}

	c.Start()
}

func sweepSessions(registry *session.Registry) {
	swept := registry.SweepExpired(context.Background())
	if swept > 0 {
		slog.Info("swept expired composer sessions", "count", swept, "remaining", registry.Count())
	}
}
