package booking

import (
	"encoding/json"
	"fmt"

	"palmera/models"

	"github.com/hibiken/asynq"
)

// TypeBlockSync is the task that turns a confirmed reservation into a
// derived blocked-date range.
const TypeBlockSync = "reservation:block_sync"

// BlockSyncPayload is the task body for TypeBlockSync.
type BlockSyncPayload struct {
	ReservationID   string `json:"reservationId"`
	AccommodationID string `json:"accommodationId"`
	StartDate       string `json:"startDate"`
	EndDate         string `json:"endDate"`
	GuestName       string `json:"guestName"`
}

// TaskEnqueuer hands post-confirmation work to the background worker.
type TaskEnqueuer interface {
	EnqueueBlockSync(res models.Reservation) error
}

// AsynqEnqueuer enqueues tasks on the shared Redis-backed queue.
type AsynqEnqueuer struct {
	Client *asynq.Client
}

func (e *AsynqEnqueuer) EnqueueBlockSync(res models.Reservation) error {
	payload, err := json.Marshal(BlockSyncPayload{
		ReservationID:   res.ID,
		AccommodationID: res.AccommodationID,
		StartDate:       res.StartDate,
		EndDate:         res.EndDate,
		GuestName:       res.GuestName,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal block sync payload: %w", err)
	}
	task := asynq.NewTask(TypeBlockSync, payload)
	if _, err := e.Client.Enqueue(task, asynq.MaxRetry(5)); err != nil {
		return fmt.Errorf("failed to enqueue block sync task: %w", err)
	}
	return nil
}
