package main

import "sync/atomic"

// Metrics holds the atomic counters exposed by the STATS command.
type Metrics struct {
	TotalConnections atomic.Uint64
	TotalCommands    atomic.Uint64
}

func NewMetrics() *Metrics {
	return &Metrics{}
}
