package queue

import (
	"context"
	"encoding/json"
	"fmt"

	"gridmeet/core/config"
	"gridmeet/core/constants"
	"gridmeet/core/logger"

	"github.com/hibiken/asynq"
)

// ResponseChangedPayload identifies the event whose responses changed.
type ResponseChangedPayload struct {
	EventID string `json:"event_id"`
}

// Enqueuer is the producer side of the background queue.
type Enqueuer interface {
	EnqueueResponseChanged(ctx context.Context, eventID string) error
	Close() error
}

type Queue struct {
	client *asynq.Client
}

func NewQueue(cfg config.RedisConfig) *Queue {
	client := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	return &Queue{client: client}
}

// EnqueueResponseChanged schedules the heatmap rebuild and change fanout for
// an event. Repeated enqueues for the same event are harmless; the handler
// recomputes from the store each run.
func (q *Queue) EnqueueResponseChanged(ctx context.Context, eventID string) error {
	payload, err := json.Marshal(ResponseChangedPayload{EventID: eventID})
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	task := asynq.NewTask(constants.TaskResponseChanged, payload)
	info, err := q.client.EnqueueContext(ctx, task, asynq.MaxRetry(3))
	if err != nil {
		logger.Error("Queue:EnqueueResponseChanged", "error", err, "event_id", eventID)
		return err
	}

	logger.Info("Queue:EnqueueResponseChanged", "task_id", info.ID, "event_id", eventID)
	return nil
}

func (q *Queue) Close() error {
	return q.client.Close()
}

// NewServer builds the worker-side asynq server. Handlers register on the mux
// passed to Run.
func NewServer(cfg config.RedisConfig) *asynq.Server {
	return asynq.NewServer(
		asynq.RedisClientOpt{
			Addr:     cfg.Addr,
			Password: cfg.Password,
			DB:       cfg.DB,
		},
		asynq.Config{
			Concurrency: 5,
		},
	)
}
