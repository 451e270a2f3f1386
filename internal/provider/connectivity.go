package provider

import (
	"context"
	"sync/atomic"
)

// Connectivity tells whether network access should be attempted.
type Connectivity interface {
	Online() bool
}

// Monitor is a settable connectivity flag.
type Monitor struct {
	online atomic.Bool
}

func NewMonitor(online bool) *Monitor {
	m := &Monitor{}
	m.online.Store(online)
	return m
}

func (m *Monitor) Online() bool {
	return m.online.Load()
}

func (m *Monitor) SetOnline(online bool) {
	m.online.Store(online)
}

// Probe pings the provider and records the outcome.
func (m *Monitor) Probe(ctx context.Context, c *Client) bool {
	online := c.Ping(ctx) == nil
	m.SetOnline(online)
	return online
}
