package worker

import (
	"context"
	"encoding/json"
	"fmt"

	"gridmeet/core/cache"
	"gridmeet/core/constants"
	"gridmeet/core/errors"
	"gridmeet/core/logger"
	"gridmeet/core/queue"
	"gridmeet/modules/availability/service"

	"github.com/hibiken/asynq"
)

// ResponseWorker rebuilds the cached heatmap snapshot and fans out the change
// notification after a response save. The rebuild is a full recompute from
// the store, so reruns and duplicate tasks converge on the same snapshot.
type ResponseWorker struct {
	svc   service.AvailabilityServiceInterface
	cache cache.Cache
}

func NewResponseWorker(svc service.AvailabilityServiceInterface, c cache.Cache) *ResponseWorker {
	return &ResponseWorker{svc: svc, cache: c}
}

// Register attaches the worker's handlers to the asynq mux.
func (w *ResponseWorker) Register(mux *asynq.ServeMux) {
	mux.HandleFunc(constants.TaskResponseChanged, w.HandleResponseChanged)
}

func (w *ResponseWorker) HandleResponseChanged(ctx context.Context, t *asynq.Task) error {
	var payload queue.ResponseChangedPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("invalid %s payload: %w", constants.TaskResponseChanged, err)
	}

	heatmap, appErr := w.svc.Heatmap(ctx, payload.EventID)
	if appErr != nil {
		// The event can legitimately be gone by the time the task runs.
		if appErr.Code == errors.ErrNotFound {
			logger.Warn("ResponseWorker:HandleResponseChanged:EventGone", "event_id", payload.EventID)
			return nil
		}
		return appErr
	}

	snapshot, err := json.Marshal(heatmap)
	if err != nil {
		return fmt.Errorf("failed to marshal heatmap snapshot: %w", err)
	}

	if err := w.cache.SetHeatmapSnapshot(ctx, payload.EventID, snapshot); err != nil {
		logger.Error("ResponseWorker:HandleResponseChanged:SetSnapshot", "error", err, "event_id", payload.EventID)
		return err
	}

	if err := w.cache.PublishResponseChange(ctx, payload.EventID); err != nil {
		logger.Error("ResponseWorker:HandleResponseChanged:Publish", "error", err, "event_id", payload.EventID)
		return err
	}

	logger.Info("ResponseWorker:HandleResponseChanged", "event_id", payload.EventID,
		"respondents", heatmap.TotalRespondents)
	return nil
}
