// SPDX-License-Identifier: GPL-3.0-or-later
package scheduler

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/CrawX/go-mailpoll/domain"
	"github.com/CrawX/go-mailpoll/domain/mocks"
	"github.com/CrawX/go-mailpoll/log"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

type countingTask struct {
	mu      sync.Mutex
	runs    int
	running bool
	overlap bool
	stopAt  int
	cancel  context.CancelFunc
}

func (c *countingTask) Execute(_ context.Context, _ map[string]string) error {
	c.mu.Lock()
	if c.running {
		c.overlap = true
	}
	c.running = true
	c.runs++
	runs := c.runs
	c.mu.Unlock()

	time.Sleep(time.Millisecond)

	c.mu.Lock()
	c.running = false
	c.mu.Unlock()

	if runs >= c.stopAt {
		c.cancel()
	}
	return errors.New("cycle failed")
}

func TestSchedulerRunsSerially(t *testing.T) {
	log.InitLogging("panic")
	ctrl := gomock.NewController(t)
	settings := mocks.NewMockSettingsSource(ctrl)
	settings.EXPECT().PollConfiguration().Return(domain.PollConfiguration{PollingPeriod: time.Millisecond}, nil).AnyTimes()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	task := &countingTask{stopAt: 3, cancel: cancel}

	done := make(chan struct{})
	go func() {
		NewScheduler(task, settings, time.Hour).Run(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("scheduler did not stop")
	}

	task.mu.Lock()
	defer task.mu.Unlock()
	assert.Equal(t, 3, task.runs)
	assert.False(t, task.overlap)
}

func TestSchedulerNextPeriod(t *testing.T) {
	log.InitLogging("panic")
	ctrl := gomock.NewController(t)
	settings := mocks.NewMockSettingsSource(ctrl)
	s := NewScheduler(nil, settings, time.Minute)

	settings.EXPECT().PollConfiguration().Return(domain.PollConfiguration{PollingPeriod: 2 * time.Minute}, nil)
	assert.Equal(t, 2*time.Minute, s.nextPeriod(time.Minute))

	settings.EXPECT().PollConfiguration().Return(domain.PollConfiguration{}, errors.New("bad config"))
	assert.Equal(t, 2*time.Minute, s.nextPeriod(2*time.Minute))

	settings.EXPECT().PollConfiguration().Return(domain.PollConfiguration{}, nil)
	assert.Equal(t, 3*time.Minute, s.nextPeriod(3*time.Minute))
}
