package repository

import (
	"context"
	"time"

	"shiptracker/internal/app/ds"
)

const sessionKeyPrefix = "session:"

// SaveSession сохраняет сессию в Redis с TTL
func (r *Repository) SaveSession(ctx context.Context, sessionID string, session ds.Session, ttl time.Duration) error {
	key := sessionKeyPrefix + sessionID
	data := map[string]interface{}{
		"login": session.Login,
		"role":  session.Role,
	}
	if err := r.redis.HSet(ctx, key, data).Err(); err != nil {
		return err
	}
	return r.redis.Expire(ctx, key, ttl).Err()
}

// GetSession достаёт сессию; ds.ErrUnauthenticated если её нет или она истекла
func (r *Repository) GetSession(ctx context.Context, sessionID string) (*ds.Session, error) {
	res, err := r.redis.HGetAll(ctx, sessionKeyPrefix+sessionID).Result()
	if err != nil {
		return nil, err
	}
	if len(res) == 0 {
		return nil, ds.ErrUnauthenticated
	}
	return &ds.Session{
		Login: res["login"],
		Role:  res["role"],
	}, nil
}

// DeleteSession удаляет сессию; отсутствующий ключ не ошибка (идемпотентно)
func (r *Repository) DeleteSession(ctx context.Context, sessionID string) error {
	return r.redis.Del(ctx, sessionKeyPrefix+sessionID).Err()
}
