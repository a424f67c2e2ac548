// SPDX-License-Identifier: GPL-3.0-or-later
package redisstore

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/CrawX/go-mailpoll/log"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// ErrorRateStore keeps plain counters as integer keys and windowed counters as sorted sets
// scored by the unix time of each event.
type ErrorRateStore struct {
	client *Client
	now    func() time.Time
	logger *logrus.Logger
}

type ConfigFunc func(s *ErrorRateStore)

// WithClock replaces the clock used to score and prune windowed events.
func WithClock(now func() time.Time) ConfigFunc {
	return func(s *ErrorRateStore) {
		s.now = now
	}
}

func NewErrorRateStore(client *Client, configFuncs ...ConfigFunc) *ErrorRateStore {
	s := &ErrorRateStore{
		client: client,
		now:    time.Now,
		logger: log.Logger(log.LOG_REDIS),
	}
	for _, f := range configFuncs {
		f(s)
	}
	return s
}

func (s *ErrorRateStore) Increment(ctx context.Context, name string) (int64, error) {
	count, err := s.client.rdb.Incr(ctx, name).Result()
	if err != nil {
		return 0, fmt.Errorf("could not increment %s: %w", name, err)
	}

	s.logger.WithFields(logrus.Fields{"key": name, "count": count}).Debug("incremented counter")
	return count, nil
}

func (s *ErrorRateStore) Expire(ctx context.Context, name string, expiry time.Duration) error {
	ttl, err := s.client.rdb.TTL(ctx, name).Result()
	if err != nil {
		return fmt.Errorf("could not read ttl of %s: %w", name, err)
	}
	// -1 no expiry, -2 missing key
	if ttl >= 0 {
		return nil
	}

	err = s.client.rdb.Expire(ctx, name, expiry).Err()
	if err != nil {
		return fmt.Errorf("could not expire %s: %w", name, err)
	}
	return nil
}

func (s *ErrorRateStore) Count(ctx context.Context, name string) (int64, error) {
	val, err := s.client.rdb.Get(ctx, name).Result()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("could not get %s: %w", name, err)
	}

	count, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("counter %s holds no integer: %w", name, err)
	}
	return count, nil
}

func (s *ErrorRateStore) Reset(ctx context.Context, name string) error {
	err := s.client.rdb.Del(ctx, name).Err()
	if err != nil {
		return fmt.Errorf("could not reset %s: %w", name, err)
	}
	return nil
}

func (s *ErrorRateStore) Record(ctx context.Context, name string) error {
	now := s.now()
	member := fmt.Sprintf("%d-%s", now.UnixNano(), uuid.NewString())
	err := s.client.rdb.ZAdd(ctx, name, redis.Z{Score: float64(now.Unix()), Member: member}).Err()
	if err != nil {
		return fmt.Errorf("could not record event on %s: %w", name, err)
	}

	s.logger.WithFields(logrus.Fields{"key": name}).Debug("recorded event")
	return nil
}

// PruneAndCount drops events older than maxAge before counting, so the result never includes
// events outside the window.
func (s *ErrorRateStore) PruneAndCount(ctx context.Context, name string, maxAge time.Duration) (int64, error) {
	cutoff := s.now().Add(-maxAge).Unix()
	err := s.client.rdb.ZRemRangeByScore(ctx, name, "-inf", strconv.FormatInt(cutoff, 10)).Err()
	if err != nil {
		return 0, fmt.Errorf("could not prune %s: %w", name, err)
	}

	count, err := s.client.rdb.ZCard(ctx, name).Result()
	if err != nil {
		return 0, fmt.Errorf("could not count %s: %w", name, err)
	}
	return count, nil
}
