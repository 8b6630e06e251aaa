package engine

import (
	"context"
	"errors"
	"time"
)

// Poller drives a Session from a Fetcher on a fixed interval.
type Poller struct {
	Fetcher  *Fetcher
	Session  *Session
	Sink     Sink
	Interval time.Duration
	Timeout  time.Duration // per fetch; 0 means FetchTimeout(Interval)
}

// PollOnce performs exactly one fetch → apply cycle. A fetch failure is
// recorded on the session and reported to the sink, then returned.
func (p *Poller) PollOnce(ctx context.Context) error {
	timeout := p.Timeout
	if timeout <= 0 {
		timeout = FetchTimeout(p.Interval)
	}
	fctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	snap, err := p.Fetcher.Fetch(fctx)
	if err != nil {
		// Shutting down; the failure says nothing about the server.
		if ctx.Err() != nil {
			return ctx.Err()
		}
		p.Session.Fail(err, p.Sink)
		return err
	}
	p.Session.Apply(snap, p.Sink)
	return nil
}

// Run polls immediately and then once per interval until ctx is cancelled.
// Cycles run sequentially, so at most one fetch is outstanding; ticks that
// fire during a slow fetch are dropped. Fetch failures never stop the loop.
// Run returns nil when ctx is cancelled.
func (p *Poller) Run(ctx context.Context) error {
	if p.Interval <= 0 {
		return errors.New("poller: interval must be > 0")
	}

	_ = p.PollOnce(ctx)

	ticker := time.NewTicker(p.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			_ = p.PollOnce(ctx)
		}
	}
}
