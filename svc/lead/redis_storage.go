package lead

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	redisLeadPrefix = "leads:"
	redisLeadIndex  = "leads:index"
)

// RedisStorage keeps each lead in a hash keyed by email and orders them in a
// sorted set scored by creation time.
type RedisStorage struct {
	client redis.UniversalClient
}

func NewRedisStorage(client redis.UniversalClient) *RedisStorage {
	return &RedisStorage{client: client}
}

func leadKey(email string) string { return redisLeadPrefix + email }

func (s *RedisStorage) CreateLead(ctx context.Context, l Lead) error {
	key := leadKey(l.Email)
	err := s.client.Watch(ctx, func(tx *redis.Tx) error {
		n, err := tx.Exists(ctx, key).Result()
		if err != nil {
			return err
		}
		if n > 0 {
			return ErrDuplicateLead
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.HSet(ctx, key, map[string]any{
				"id":         l.ID.String(),
				"email":      l.Email,
				"source":     l.Source,
				"ip":         l.IP,
				"user_agent": l.UserAgent,
				"created_at": l.CreatedAt.UTC().Format(time.RFC3339Nano),
			})
			pipe.ZAdd(ctx, redisLeadIndex, redis.Z{
				Score:  float64(l.CreatedAt.UnixMilli()),
				Member: l.Email,
			})
			return nil
		})
		return err
	}, key)
	// A concurrent write to the same key only happens for the same email.
	if errors.Is(err, redis.TxFailedErr) {
		return ErrDuplicateLead
	}
	return err
}

func (s *RedisStorage) GetLeadByEmail(ctx context.Context, email string) (*Lead, error) {
	fields, err := s.client.HGetAll(ctx, leadKey(email)).Result()
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, ErrLeadNotFound
	}
	l, err := leadFromHash(fields)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (s *RedisStorage) ListLeads(ctx context.Context, limit int) ([]Lead, error) {
	stop := int64(-1)
	if limit > 0 {
		stop = int64(limit) - 1
	}
	emails, err := s.client.ZRevRange(ctx, redisLeadIndex, 0, stop).Result()
	if err != nil {
		return nil, err
	}
	if len(emails) == 0 {
		return []Lead{}, nil
	}

	cmds := make([]*redis.MapStringStringCmd, len(emails))
	_, err = s.client.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		for i, email := range emails {
			cmds[i] = pipe.HGetAll(ctx, leadKey(email))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	leads := make([]Lead, 0, len(cmds))
	for _, cmd := range cmds {
		fields := cmd.Val()
		if len(fields) == 0 {
			// index entry without a hash; skip it
			continue
		}
		l, err := leadFromHash(fields)
		if err != nil {
			return nil, err
		}
		leads = append(leads, l)
	}
	return leads, nil
}

func leadFromHash(fields map[string]string) (Lead, error) {
	id, err := uuid.Parse(fields["id"])
	if err != nil {
		return Lead{}, err
	}
	createdAt, err := time.Parse(time.RFC3339Nano, fields["created_at"])
	if err != nil {
		return Lead{}, err
	}
	return Lead{
		ID:        id,
		Email:     fields["email"],
		Source:    fields["source"],
		IP:        fields["ip"],
		UserAgent: fields["user_agent"],
		CreatedAt: createdAt,
	}, nil
}
