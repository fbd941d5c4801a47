package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"queueless/internal/domain/queue"
	"queueless/internal/infra"
	"queueless/internal/pkg/config"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	messageEstimate = "estimate"
	messageStatus   = "status"
)

// Message is what subscribers receive on the department channels and what
// is kept under the per-token key for polling clients.
type Message struct {
	Type               string     `json:"type"`
	TokenID            uuid.UUID  `json:"token_id"`
	DepartmentID       uuid.UUID  `json:"department_id"`
	Day                string     `json:"day"`
	Number             int64      `json:"number"`
	UserID             uuid.UUID  `json:"user_id"`
	Status             string     `json:"status,omitempty"`
	Position           *int       `json:"position,omitempty"`
	EstimatedServeTime *time.Time `json:"estimated_serve_time,omitempty"`
	OccurredAt         time.Time  `json:"occurred_at"`
}

// RedisNotifier pushes estimate changes and status transitions to token
// holders through redis pub/sub.
type RedisNotifier struct {
	client redis.UniversalClient
	prefix string
	ttl    time.Duration
}

func NewRedisNotifier(client redis.UniversalClient, cfg config.RedisConfig) *RedisNotifier {
	return &RedisNotifier{
		client: client,
		prefix: cfg.ChannelPrefix,
		ttl:    cfg.KeyTTL,
	}
}

func (n *RedisNotifier) EstimateChannel(departmentID uuid.UUID) string {
	return fmt.Sprintf("%s:estimates:%s", n.prefix, departmentID)
}

func (n *RedisNotifier) StatusChannel(departmentID uuid.UUID) string {
	return fmt.Sprintf("%s:status:%s", n.prefix, departmentID)
}

func (n *RedisNotifier) TokenKey(key queue.DayKey, number int64) string {
	return fmt.Sprintf("%s:token:%s:%s:%d", n.prefix, key.DepartmentID, key.Day, number)
}

func (n *RedisNotifier) RecordEstimate(ctx context.Context, upd queue.EstimateUpdate) error {
	position := upd.Position
	estimate := upd.EstimatedServeTime
	msg := Message{
		Type:               messageEstimate,
		TokenID:            upd.TokenID,
		DepartmentID:       upd.Key.DepartmentID,
		Day:                upd.Key.Day.String(),
		Number:             upd.Number,
		UserID:             upd.UserID,
		Status:             queue.StatusQueued.String(),
		Position:           &position,
		EstimatedServeTime: &estimate,
		OccurredAt:         upd.ComputedAt,
	}
	return n.push(ctx, n.EstimateChannel(upd.Key.DepartmentID), n.TokenKey(upd.Key, upd.Number), msg)
}

func (n *RedisNotifier) RecordTransition(ctx context.Context, ev queue.TransitionEvent) error {
	token := ev.Token
	msg := Message{
		Type:         messageStatus,
		TokenID:      token.ID(),
		DepartmentID: token.DepartmentID(),
		Day:          token.Day().String(),
		Number:       token.Number(),
		UserID:       token.UserID(),
		Status:       ev.To.String(),
		OccurredAt:   ev.OccurredAt,
	}
	if token.HasEstimate() {
		estimate := token.EstimatedServeTime()
		msg.EstimatedServeTime = &estimate
	}
	return n.push(ctx, n.StatusChannel(token.DepartmentID()), n.TokenKey(token.Key(), token.Number()), msg)
}

func (n *RedisNotifier) push(ctx context.Context, channel, key string, msg Message) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		return infra.WrapRepoErr("failed to encode notification", err, infra.KindPublishFailure)
	}

	_, err = n.client.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, key, payload, n.ttl)
		pipe.Publish(ctx, channel, payload)
		return nil
	})
	if err != nil {
		return infra.WrapRepoErr("failed to publish notification", err, infra.KindPublishFailure)
	}
	return nil
}
