package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/spec-kit/hr-service/internal/config"
	"github.com/spec-kit/hr-service/internal/domain"
)

// Redis wraps the go-redis client.
type Redis struct {
	Client *redis.Client
}

// NewRedis connects to Redis using the provided configuration.
func NewRedis(cfg config.RedisConfig, logger *zap.Logger) *Redis {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		logger.Warn("unable to reach redis", zap.Error(err))
	} else {
		logger.Info("connected to redis")
	}

	return &Redis{Client: client}
}

// Close closes the client.
func (r *Redis) Close() {
	if r != nil && r.Client != nil {
		_ = r.Client.Close()
	}
}

// Ping verifies Redis connectivity.
func (r *Redis) Ping(ctx context.Context) error {
	if r == nil || r.Client == nil {
		return errors.New("redis client not configured")
	}
	return r.Client.Ping(ctx).Err()
}

// ChangeStream appends admin log entries to a capped Redis stream.
type ChangeStream struct {
	client redis.Cmdable
	stream string
	maxLen int64
}

// NewChangeStream builds a stream publisher on top of client.
func NewChangeStream(client redis.Cmdable, cfg config.AuditConfig) *ChangeStream {
	return &ChangeStream{client: client, stream: cfg.StreamName, maxLen: cfg.StreamMaxLen}
}

// PublishChange adds entry to the stream.
func (s *ChangeStream) PublishChange(ctx context.Context, entry domain.AdminLogEntry) error {
	if s == nil || s.client == nil {
		return errors.New("change stream not configured")
	}
	payload, err := json.Marshal(changeMessage{
		ID:            entry.ID,
		ActionTime:    entry.ActionTime,
		Resource:      entry.Resource,
		ObjectID:      entry.ObjectID,
		ObjectRepr:    entry.ObjectRepr,
		Action:        string(entry.Action),
		ChangeMessage: entry.ChangeMessage,
	})
	if err != nil {
		return err
	}
	return s.client.XAdd(ctx, &redis.XAddArgs{
		Stream: s.stream,
		MaxLen: s.maxLen,
		Approx: true,
		Values: map[string]any{
			"resource": entry.Resource,
			"action":   string(entry.Action),
			"payload":  string(payload),
		},
	}).Err()
}

type changeMessage struct {
	ID            string    `json:"id"`
	ActionTime    time.Time `json:"action_time"`
	Resource      string    `json:"resource"`
	ObjectID      string    `json:"object_id"`
	ObjectRepr    string    `json:"object_repr"`
	Action        string    `json:"action"`
	ChangeMessage string    `json:"change_message,omitempty"`
}
