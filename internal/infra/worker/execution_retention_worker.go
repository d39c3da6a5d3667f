package worker

import (
	"context"
	"time"

	"go.uber.org/zap"
)

type ExecutionPruner interface {
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

// ExecutionRetentionWorker apaga do log as execuções mais antigas que a janela de retenção.
type ExecutionRetentionWorker struct {
	repo         ExecutionPruner
	retention    time.Duration
	tickInterval time.Duration
	logger       *zap.Logger
	now          func() time.Time
}

func NewExecutionRetentionWorker(repo ExecutionPruner, retention time.Duration, logger *zap.Logger) *ExecutionRetentionWorker {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExecutionRetentionWorker{
		repo:         repo,
		retention:    retention,
		tickInterval: time.Hour,
		logger:       logger,
		now:          time.Now,
	}
}

func (w *ExecutionRetentionWorker) Start(ctx context.Context) {
	w.logger.Info("execution retention worker iniciado", zap.Duration("retention", w.retention))

	ticker := time.NewTicker(w.tickInterval)
	defer ticker.Stop()

	w.prune(ctx)

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("execution retention worker encerrado")
			return
		case <-ticker.C:
			w.prune(ctx)
		}
	}
}

func (w *ExecutionRetentionWorker) prune(ctx context.Context) {
	cutoff := w.now().Add(-w.retention)

	deleted, err := w.repo.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		w.logger.Error("erro ao limpar execuções antigas", zap.Error(err))
		return
	}

	if deleted > 0 {
		w.logger.Info("execuções antigas removidas", zap.Int64("count", deleted), zap.Time("cutoff", cutoff))
	}
}
