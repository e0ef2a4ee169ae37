package journal

import (
	"database/sql"

	_ "github.com/mattn/go-sqlite3"
)

// SQLiteJournal persists runs and outcomes in a SQLite database.
type SQLiteJournal struct {
	db *sql.DB
}

func NewSQLite(path string) (*SQLiteJournal, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(Schema); err != nil {
		db.Close()
		return nil, err
	}
	return &SQLiteJournal{db: db}, nil
}

func (j *SQLiteJournal) RecordRun(r Run) error {
	_, err := j.db.Exec(`
		INSERT INTO runs
		(id, symbol, timeframe, cycles, signals, accepted, rejected, start_time, end_time)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.Symbol, r.Timeframe, r.Cycles, r.Signals, r.Accepted, r.Rejected,
		r.StartTime.UTC(), r.EndTime.UTC(),
	)
	return err
}

func (j *SQLiteJournal) RecordOutcome(o Outcome) error {
	_, err := j.db.Exec(`
		INSERT INTO outcomes
		(run_id, time, status, signal, lots, entry, stop_loss, take_profit, reason, ticket)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		o.RunID, o.Time.UTC(), o.Status, o.Signal, o.Lots,
		o.Entry, o.StopLoss, o.TakeProfit, o.Reason, o.Ticket,
	)
	return err
}

// ListOutcomes returns the journaled outcomes for a run in time order.
func (j *SQLiteJournal) ListOutcomes(runID string) ([]Outcome, error) {
	rows, err := j.db.Query(`
		SELECT run_id, time, status, signal, lots, entry, stop_loss, take_profit, reason, ticket
		FROM outcomes WHERE run_id = ? ORDER BY time`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Outcome
	for rows.Next() {
		var o Outcome
		if err := rows.Scan(&o.RunID, &o.Time, &o.Status, &o.Signal, &o.Lots,
			&o.Entry, &o.StopLoss, &o.TakeProfit, &o.Reason, &o.Ticket); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

func (j *SQLiteJournal) Close() error {
	return j.db.Close()
}
