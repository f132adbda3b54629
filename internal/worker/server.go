package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"tutorhub-service/internal/consumers"
	"tutorhub-service/internal/tasks"

	"github.com/hibiken/asynq"
)

type Worker struct {
	Processor *consumers.SettlementProcessor
}

func NewWorker(processor *consumers.SettlementProcessor) *Worker {
	return &Worker{
		Processor: processor,
	}
}

func (w *Worker) HandleBookingSettlement(ctx context.Context, t *asynq.Task) error {
	var p tasks.BookingSettlementPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return fmt.Errorf("json.Unmarshal failed: %v: %w", err, asynq.SkipRetry)
	}
	return w.Processor.ProcessBookingSettlement(p)
}

func (w *Worker) HandlePayoutNotification(ctx context.Context, t *asynq.Task) error {
	var p tasks.PayoutNotificationPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return fmt.Errorf("json.Unmarshal failed: %v: %w", err, asynq.SkipRetry)
	}
	return w.Processor.ProcessPayoutNotification(p)
}

func StartWorker(redisOpt asynq.RedisClientOpt, processor *consumers.SettlementProcessor) {
	srv := asynq.NewServer(
		redisOpt,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"critical": 6,
				"default":  3,
				"low":      1,
			},
		},
	)

	worker := NewWorker(processor)
	mux := asynq.NewServeMux()

	mux.HandleFunc(tasks.TypeBookingSettlement, worker.HandleBookingSettlement)
	mux.HandleFunc(tasks.TypePayoutNotification, worker.HandlePayoutNotification)

	if err := srv.Run(mux); err != nil {
		log.Fatalf("could not run server: %v", err)
	}
}
