package journal

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"time"
)

// CSVJournal writes runs and outcomes to two CSV files.
type CSVJournal struct {
	runsFile     *os.File
	outcomesFile *os.File
	runs         *csv.Writer
	outcomes     *csv.Writer
}

func NewCSV(runsPath, outcomesPath string) (*CSVJournal, error) {
	rf, err := os.Create(runsPath)
	if err != nil {
		return nil, fmt.Errorf("create runs file: %w", err)
	}
	of, err := os.Create(outcomesPath)
	if err != nil {
		rf.Close()
		return nil, fmt.Errorf("create outcomes file: %w", err)
	}

	j := &CSVJournal{
		runsFile:     rf,
		outcomesFile: of,
		runs:         csv.NewWriter(rf),
		outcomes:     csv.NewWriter(of),
	}

	j.runs.Write([]string{"id", "symbol", "timeframe", "cycles", "signals", "accepted", "rejected", "start", "end"})
	j.outcomes.Write([]string{"run_id", "time", "status", "signal", "lots", "entry", "stop_loss", "take_profit", "reason", "ticket"})
	return j, nil
}

func (j *CSVJournal) RecordRun(r Run) error {
	err := j.runs.Write([]string{
		r.ID, r.Symbol, r.Timeframe,
		strconv.Itoa(r.Cycles), strconv.Itoa(r.Signals),
		strconv.Itoa(r.Accepted), strconv.Itoa(r.Rejected),
		r.StartTime.UTC().Format(time.RFC3339),
		r.EndTime.UTC().Format(time.RFC3339),
	})
	if err != nil {
		return err
	}
	j.runs.Flush()
	return j.runs.Error()
}

func (j *CSVJournal) RecordOutcome(o Outcome) error {
	err := j.outcomes.Write([]string{
		o.RunID,
		o.Time.UTC().Format(time.RFC3339),
		o.Status, o.Signal,
		strconv.FormatFloat(o.Lots, 'f', 2, 64),
		strconv.FormatFloat(o.Entry, 'f', -1, 64),
		strconv.FormatFloat(o.StopLoss, 'f', -1, 64),
		strconv.FormatFloat(o.TakeProfit, 'f', -1, 64),
		o.Reason,
		strconv.FormatInt(o.Ticket, 10),
	})
	if err != nil {
		return err
	}
	j.outcomes.Flush()
	return j.outcomes.Error()
}

func (j *CSVJournal) Close() error {
	j.runs.Flush()
	j.outcomes.Flush()
	err1 := j.runsFile.Close()
	err2 := j.outcomesFile.Close()
	if err1 != nil {
		return err1
	}
	return err2
}
