package market

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// LoadCSV reads candles from a semicolon-separated file with lines of
// the form
//
//	time;open;high;low;close;volume
//
// where time is unix seconds or "2006-01-02 15:04:05". A header line
// starting with "time" is skipped. Lines that do not parse are counted
// and reported, not fatal, matching how historical dumps tend to arrive.
func LoadCSV(path string) ([]Candle, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var candles []Candle
	var badLines int
	var prev time.Time

	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(strings.ToLower(line), "time") {
			continue
		}
		parts := strings.Split(line, ";")
		if len(parts) < 6 {
			badLines++
			continue
		}

		ts, err := parseTime(parts[0])
		if err != nil {
			badLines++
			continue
		}

		vals := make([]float64, 5)
		ok := true
		for i := 1; i < 6; i++ {
			v, err := strconv.ParseFloat(strings.TrimSpace(parts[i]), 64)
			if err != nil {
				ok = false
				break
			}
			vals[i-1] = v
		}
		if !ok {
			badLines++
			continue
		}

		// keep-first policy on duplicate or out-of-order timestamps
		if !prev.IsZero() && !ts.After(prev) {
			badLines++
			continue
		}
		prev = ts

		candles = append(candles, Candle{
			Time:   ts,
			Open:   vals[0],
			High:   vals[1],
			Low:    vals[2],
			Close:  vals[3],
			Volume: vals[4],
		})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(candles) == 0 {
		return nil, fmt.Errorf("no valid candles found in %s", path)
	}
	if badLines > 0 {
		fmt.Fprintf(os.Stderr, "ingest warnings: badLines=%d in %s\n", badLines, path)
	}
	return candles, nil
}

func parseTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if secs, err := strconv.ParseInt(s, 10, 64); err == nil {
		return time.Unix(secs, 0).UTC(), nil
	}
	return time.Parse("2006-01-02 15:04:05", s)
}
