// Package journal persists backtest runs and their per-cycle outcomes.
// The live runner deliberately does not journal: executed-trade history
// belongs to the broker, not this engine.
package journal

import "time"

// Run summarizes one backtest invocation.
type Run struct {
	ID        string
	Symbol    string
	Timeframe string
	Cycles    int
	Signals   int
	Accepted  int
	Rejected  int
	StartTime time.Time
	EndTime   time.Time
}

// Outcome is one journaled cycle result within a run. Cycles that
// produced no signal are not journaled.
type Outcome struct {
	RunID      string
	Time       time.Time
	Status     string
	Signal     string
	Lots       float64
	Entry      float64
	StopLoss   float64
	TakeProfit float64
	Reason     string
	Ticket     int64
}

// Journal is the persistence contract. Implementations: CSV and SQLite.
type Journal interface {
	RecordRun(Run) error
	RecordOutcome(Outcome) error
	Close() error
}
