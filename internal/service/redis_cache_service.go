package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"clinic-pharmacy-api/internal/domain/entity"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	// Redis key prefixes
	RedisDashboardKeyPrefix    = "dashboard:stats:"
	RedisRevokedTokenKeyPrefix = "revoked_token:"

	// Timeout for individual Redis operations
	redisOpTimeout = 2 * time.Second

	// Keys deleted per SCAN page on invalidation
	scanBatchSize = 100
)

// RedisCacheService holds the read-through dashboard cache and the token
// revocation list. A nil client turns every call into a miss or no-op, so
// the API runs without Redis.
type RedisCacheService struct {
	redisClient *redis.Client
	log         *logrus.Logger
	ttl         time.Duration
}

func NewRedisCacheService(redisClient *redis.Client, log *logrus.Logger, ttl time.Duration) *RedisCacheService {
	return &RedisCacheService{
		redisClient: redisClient,
		log:         log,
		ttl:         ttl,
	}
}

func (s *RedisCacheService) Enabled() bool {
	return s != nil && s.redisClient != nil
}

// GetDashboardStats returns cached stats for day (YYYY-MM-DD).
// Any Redis failure is logged and reported as a miss.
func (s *RedisCacheService) GetDashboardStats(ctx context.Context, day string) (*entity.DashboardStats, bool) {
	if !s.Enabled() {
		return nil, false
	}

	ctx, cancel := context.WithTimeout(ctx, redisOpTimeout)
	defer cancel()

	raw, err := s.redisClient.Get(ctx, RedisDashboardKeyPrefix+day).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			s.log.Warnf("Failed to read dashboard cache: %+v", err)
		}
		return nil, false
	}

	var stats entity.DashboardStats
	if err := json.Unmarshal(raw, &stats); err != nil {
		s.log.Warnf("Failed to decode dashboard cache: %+v", err)
		return nil, false
	}
	return &stats, true
}

func (s *RedisCacheService) SetDashboardStats(ctx context.Context, day string, stats *entity.DashboardStats) {
	if !s.Enabled() || stats == nil {
		return
	}

	raw, err := json.Marshal(stats)
	if err != nil {
		s.log.Warnf("Failed to encode dashboard stats: %+v", err)
		return
	}

	ctx, cancel := context.WithTimeout(ctx, redisOpTimeout)
	defer cancel()

	if err := s.redisClient.Set(ctx, RedisDashboardKeyPrefix+day, raw, s.ttl).Err(); err != nil {
		s.log.Warnf("Failed to write dashboard cache: %+v", err)
	}
}

// InvalidateDashboard drops every cached day. Called after writes that
// change the counters (sales, stock, appointments).
func (s *RedisCacheService) InvalidateDashboard(ctx context.Context) {
	if !s.Enabled() {
		return
	}

	ctx, cancel := context.WithTimeout(ctx, redisOpTimeout)
	defer cancel()

	var cursor uint64
	for {
		keys, next, err := s.redisClient.Scan(ctx, cursor, RedisDashboardKeyPrefix+"*", scanBatchSize).Result()
		if err != nil {
			s.log.Warnf("Failed to scan dashboard cache keys: %+v", err)
			return
		}
		if len(keys) > 0 {
			if err := s.redisClient.Del(ctx, keys...).Err(); err != nil {
				s.log.Warnf("Failed to invalidate dashboard cache: %+v", err)
				return
			}
		}
		cursor = next
		if cursor == 0 {
			return
		}
	}
}

// IsTokenRevoked reports whether the auth service revoked tokenID.
func (s *RedisCacheService) IsTokenRevoked(ctx context.Context, tokenID string) (bool, error) {
	if !s.Enabled() || tokenID == "" {
		return false, nil
	}

	ctx, cancel := context.WithTimeout(ctx, redisOpTimeout)
	defer cancel()

	exists, err := s.redisClient.Exists(ctx, RedisRevokedTokenKeyPrefix+tokenID).Result()
	if err != nil {
		return false, err
	}
	return exists > 0, nil
}

// RevokeToken marks tokenID revoked until it would have expired anyway.
func (s *RedisCacheService) RevokeToken(ctx context.Context, tokenID string, ttl time.Duration) error {
	if !s.Enabled() {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, redisOpTimeout)
	defer cancel()

	return s.redisClient.Set(ctx, RedisRevokedTokenKeyPrefix+tokenID, 1, ttl).Err()
}
