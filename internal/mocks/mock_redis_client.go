package mocks

import (
	"context"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/mock"
)

// MockRedisClient fakes the script commands used by the booking rate limiter.
// Any other command panics through the nil embedded client.
type MockRedisClient struct {
	mock.Mock
	redis.UniversalClient
}

func (m *MockRedisClient) EvalSha(ctx context.Context, sha1 string, keys []string, args ...any) *redis.Cmd {
	result := m.Called(append([]any{ctx, sha1, keys}, args...)...)
	return result.Get(0).(*redis.Cmd)
}

func (m *MockRedisClient) Eval(ctx context.Context, script string, keys []string, args ...any) *redis.Cmd {
	result := m.Called(append([]any{ctx, script, keys}, args...)...)
	return result.Get(0).(*redis.Cmd)
}

// RedisReplyError is an error reply as sent by the server, e.g. NOSCRIPT.
type RedisReplyError string

func (e RedisReplyError) Error() string { return string(e) }

func (e RedisReplyError) RedisError() {}
