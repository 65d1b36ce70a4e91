package tasks

import (
	"encoding/json"
	"time"

	"sohoconnect/models"

	"github.com/hibiken/asynq"
)

const TypeSendFollowUp = "campaign:followup"

// NewFollowUpTask builds an asynq task that delivers a scheduled follow-up
// email at fireAt.
func NewFollowUpTask(payload models.FollowUpPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeSendFollowUp, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}
