package service

import (
	"context"
	"time"
)

// GoalEventType names an event on the goals topic.
type GoalEventType string

const (
	// GoalEventCompleted is emitted when progress pushes an active goal to its target.
	GoalEventCompleted GoalEventType = "goal.completed"
)

// GoalEvent is published when a goal changes state.
type GoalEvent struct {
	RequestID    string        `json:"request_id,omitempty"` // For distributed tracing
	Type         GoalEventType `json:"type"`
	GoalID       string        `json:"goal_id"`
	UserID       string        `json:"user_id"`
	Title        string        `json:"title"`
	TargetValue  float64       `json:"target_value"`
	CurrentValue float64       `json:"current_value"`
	Unit         string        `json:"unit"`
	OccurredAt   time.Time     `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishGoalEvent publishes a goal state change.
	PublishGoalEvent(ctx context.Context, event *GoalEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
