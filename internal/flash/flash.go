// Package flash carries one-shot user messages across the POST-redirect-GET
// cycle of the panel. Messages live in Redis under the visitor's session id,
// mirroring the server-side messages framework the panel replaces; entity
// data is never stored here.
package flash

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Message levels shown as banner styles.
const (
	LevelSuccess = "success"
	LevelError   = "error"
)

// Message is one banner queued for the next page render.
type Message struct {
	Level string `json:"level"`
	Text  string `json:"text"`
}

const (
	keyPrefix  = "admin:flash:"
	messageTTL = 10 * time.Minute
)

// Store keeps flash messages in Redis between the handler that produced them
// and the page render that shows them.
type Store struct {
	client *redis.Client
	log    *zap.Logger
}

// NewStore creates a Store.
func NewStore(client *redis.Client, log *zap.Logger) *Store {
	return &Store{client: client, log: log}
}

// Add queues a message for the session. Store failures are logged and
// dropped: a lost banner must not fail the request that produced it.
func (s *Store) Add(ctx context.Context, session, level, text string) {
	if session == "" {
		return
	}
	data, err := json.Marshal(Message{Level: level, Text: text})
	if err != nil {
		return
	}
	key := keyPrefix + session
	pipe := s.client.TxPipeline()
	pipe.RPush(ctx, key, data)
	pipe.Expire(ctx, key, messageTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		s.log.Warn("flash store unavailable", zap.Error(err))
	}
}

// Pop returns the session's queued messages and clears them. Read failures
// degrade to no banners.
func (s *Store) Pop(ctx context.Context, session string) []Message {
	if session == "" {
		return nil
	}
	key := keyPrefix + session
	entries, err := s.client.LRange(ctx, key, 0, -1).Result()
	if err != nil {
		if err != redis.Nil {
			s.log.Warn("flash store unavailable", zap.Error(err))
		}
		return nil
	}
	if len(entries) == 0 {
		return nil
	}
	if err := s.client.Del(ctx, key).Err(); err != nil {
		s.log.Warn("flash store unavailable", zap.Error(err))
	}

	messages := make([]Message, 0, len(entries))
	for _, entry := range entries {
		var m Message
		if err := json.Unmarshal([]byte(entry), &m); err != nil {
			continue
		}
		messages = append(messages, m)
	}
	return messages
}
