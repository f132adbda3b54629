package tasks

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

// Task types consumed by the worker process.
const (
	TypeBookingSettlement  = "booking-settlement"
	TypePayoutNotification = "payout-notification"
)

// BookingSettlementPayload credits the faculty wallet for one
// completed booking.
type BookingSettlementPayload struct {
	BookingId int `json:"booking_id"`
}

// PayoutNotificationPayload hands an approved withdrawal to the payout
// pipeline.
type PayoutNotificationPayload struct {
	RequestId int `json:"request_id"`
}

func NewBookingSettlementTask(payload BookingSettlementPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeBookingSettlement, data), nil
}

func NewPayoutNotificationTask(payload PayoutNotificationPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypePayoutNotification, data), nil
}
