package connectivity

import (
	"context"
	"sync"
	"time"

	"github.com/geovision-ai/miner-sync/internal/logger"
)

type monitor struct {
	pinger   Pinger
	interval time.Duration
	logger   *logger.Logger

	mu     sync.Mutex
	online bool
	subs   []func(online bool)
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewMonitor constructs a Monitor polling pinger every interval. The initial
// online state is read with one synchronous probe so the agent starts with
// the environment's current reachability instead of assuming offline. If
// interval is zero or negative it defaults to 15 seconds.
func NewMonitor(ctx context.Context, pinger Pinger, interval time.Duration, log *logger.Logger) Monitor {
	if interval <= 0 {
		interval = 15 * time.Second
	}

	m := &monitor{
		pinger:   pinger,
		interval: interval,
		logger:   log,
	}
	m.online = pinger.Ping(ctx) == nil

	return m
}

func (m *monitor) Online() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.online
}

func (m *monitor) Subscribe(fn func(online bool)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.subs = append(m.subs, fn)
}

// Start implements Monitor. The poller probes the remote endpoint on a
// ticker and publishes a notification on every state change. The goroutine
// exits when ctx is cancelled or Stop is called.
func (m *monitor) Start(ctx context.Context) {
	m.Stop()

	m.mu.Lock()
	pollCtx, cancel := context.WithCancel(ctx)
	m.cancel = cancel
	m.wg.Add(1)
	m.mu.Unlock()

	go func() {
		defer m.wg.Done()
		t := time.NewTicker(m.interval)
		defer t.Stop()

		for {
			select {
			case <-pollCtx.Done():
				return
			case <-t.C:
				m.observe(pollCtx.Err() == nil, m.pinger.Ping(pollCtx) == nil)
			}
		}
	}()
}

// Stop implements Monitor. It cancels the poller goroutine's context and
// blocks until the goroutine has fully exited.
func (m *monitor) Stop() {
	m.mu.Lock()
	cancel := m.cancel
	m.cancel = nil
	m.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	m.wg.Wait()
}

// observe records a probe result and, on a transition, notifies every
// subscriber exactly once. Callbacks run outside the lock so a subscriber
// may call back into the monitor.
func (m *monitor) observe(running, online bool) {
	if !running {
		return
	}

	m.mu.Lock()
	if online == m.online {
		m.mu.Unlock()
		return
	}
	m.online = online
	subs := make([]func(bool), len(m.subs))
	copy(subs, m.subs)
	m.mu.Unlock()

	m.logger.Info().Bool("online", online).Msg("connectivity transition")

	for _, fn := range subs {
		fn(online)
	}
}
