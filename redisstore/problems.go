// SPDX-License-Identifier: GPL-3.0-or-later
package redisstore

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"
)

type Problem struct {
	Key       string
	ExpiresIn time.Duration
}

// ProblemStore keeps dashboard problems as expiring keys. A key exists at most once, raising it
// again only refreshes the expiry.
type ProblemStore struct {
	client *Client
}

func NewProblemStore(client *Client) *ProblemStore {
	return &ProblemStore{client: client}
}

func (p *ProblemStore) Raise(ctx context.Context, key string, expiry time.Duration) error {
	err := p.client.rdb.Set(ctx, problemKey(key), time.Now().UTC().Format(time.RFC3339), expiry).Err()
	if err != nil {
		return fmt.Errorf("could not raise problem %s: %w", key, err)
	}
	return nil
}

// List returns the active problems ordered by key.
func (p *ProblemStore) List(ctx context.Context) ([]Problem, error) {
	prefix := problemKey("")
	var problems []Problem

	iter := p.client.rdb.Scan(ctx, 0, prefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		ttl, err := p.client.rdb.TTL(ctx, iter.Val()).Result()
		if err != nil {
			return nil, fmt.Errorf("could not read ttl of %s: %w", iter.Val(), err)
		}
		// expired between scan and ttl
		if ttl == -2 {
			continue
		}
		problems = append(problems, Problem{
			Key:       strings.TrimPrefix(iter.Val(), prefix),
			ExpiresIn: ttl,
		})
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("could not list problems: %w", err)
	}

	sort.Slice(problems, func(i, j int) bool {
		return problems[i].Key < problems[j].Key
	})
	return problems, nil
}
