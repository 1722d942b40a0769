package otpinfra

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/carevo/platform/pkg/iam/otp"
	"github.com/carevo/platform/pkg/kernel"
)

// RedisStore implements otp.Store with per-key TTL expiry.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) otp.Store {
	return &RedisStore{client: client}
}

func key(email kernel.Email, purpose otp.Purpose) string {
	return fmt.Sprintf("otp:%s:%s", purpose, email)
}

func (s *RedisStore) Save(ctx context.Context, email kernel.Email, purpose otp.Purpose, code string, ttl time.Duration) error {
	if err := s.client.Set(ctx, key(email, purpose), code, ttl).Err(); err != nil {
		return fmt.Errorf("save otp for %s: %w", email, err)
	}
	return nil
}

func (s *RedisStore) Get(ctx context.Context, email kernel.Email, purpose otp.Purpose) (string, error) {
	code, err := s.client.Get(ctx, key(email, purpose)).Result()
	if err == redis.Nil {
		return "", otp.ErrExpiredOTP()
	}
	if err != nil {
		return "", fmt.Errorf("load otp for %s: %w", email, err)
	}
	return code, nil
}

func (s *RedisStore) Delete(ctx context.Context, email kernel.Email, purpose otp.Purpose) error {
	if err := s.client.Del(ctx, key(email, purpose)).Err(); err != nil {
		return fmt.Errorf("delete otp for %s: %w", email, err)
	}
	return nil
}
