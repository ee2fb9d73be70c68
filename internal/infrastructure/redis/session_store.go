package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/jhoicas/bravo-menu-api/internal/application/auth"
	"github.com/jhoicas/bravo-menu-api/pkg/config"
)

// sessionPrefix prefijo de las claves de sesión.
const sessionPrefix = "bravo:session:"

var _ auth.SessionStore = (*SessionStore)(nil)

// SessionStore sesiones serializadas en JSON con expiración nativa de Redis.
type SessionStore struct {
	client *goredis.Client
	prefix string
}

// NewClient abre el cliente y verifica la conexión.
func NewClient(ctx context.Context, cfg config.RedisConfig) (*goredis.Client, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}

// NewSessionStore construye el almacén sobre un cliente ya abierto.
func NewSessionStore(client *goredis.Client) *SessionStore {
	return &SessionStore{client: client, prefix: sessionPrefix}
}

func (s *SessionStore) key(id string) string {
	return s.prefix + id
}

func (s *SessionStore) Save(ctx context.Context, sess *auth.Session, ttl time.Duration) error {
	if sess == nil || sess.ID == "" {
		return errors.New("session id vacío")
	}
	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := s.client.Set(ctx, s.key(sess.ID), data, ttl).Err(); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

func (s *SessionStore) Get(ctx context.Context, id string) (*auth.Session, error) {
	data, err := s.client.Get(ctx, s.key(id)).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("get session: %w", err)
	}
	var sess auth.Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	return &sess, nil
}

func (s *SessionStore) Delete(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, s.key(id)).Err(); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
