package journal

// Schema creates the journal tables. Run ids are ULIDs, so the primary
// key index is already time-ordered.
const Schema = `
CREATE TABLE IF NOT EXISTS runs (
	id          TEXT PRIMARY KEY,
	symbol      TEXT NOT NULL,
	timeframe   TEXT NOT NULL,
	cycles      INTEGER NOT NULL,
	signals     INTEGER NOT NULL,
	accepted    INTEGER NOT NULL,
	rejected    INTEGER NOT NULL,
	start_time  TIMESTAMP NOT NULL,
	end_time    TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS outcomes (
	run_id      TEXT NOT NULL REFERENCES runs(id),
	time        TIMESTAMP NOT NULL,
	status      TEXT NOT NULL,
	signal      TEXT NOT NULL,
	lots        REAL NOT NULL,
	entry       REAL NOT NULL,
	stop_loss   REAL NOT NULL,
	take_profit REAL NOT NULL,
	reason      TEXT NOT NULL,
	ticket      INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_outcomes_run ON outcomes(run_id);
`
