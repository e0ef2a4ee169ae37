package market

import "fmt"

// Timeframe identifies the bar interval of a candle series.
type Timeframe string

const (
	M1  Timeframe = "M1"
	M5  Timeframe = "M5"
	M15 Timeframe = "M15"
	M30 Timeframe = "M30"
	H1  Timeframe = "H1"
	H4  Timeframe = "H4"
	D1  Timeframe = "D1"
	W1  Timeframe = "W1"
	MN1 Timeframe = "MN1"
)

// gatewayCodes maps each timeframe to the numeric code the broker gateway
// expects in candle queries.
var gatewayCodes = map[Timeframe]int{
	M1:  1,
	M5:  5,
	M15: 15,
	M30: 30,
	H1:  16385,
	H4:  16388,
	D1:  16408,
	W1:  32769,
	MN1: 49153,
}

// GatewayCode returns the gateway-specific code for tf. Unknown timeframes
// are an error, not a silent default.
func (tf Timeframe) GatewayCode() (int, error) {
	code, ok := gatewayCodes[tf]
	if !ok {
		return 0, fmt.Errorf("unknown timeframe %q", tf)
	}
	return code, nil
}

// Valid reports whether tf is one of the supported timeframes.
func (tf Timeframe) Valid() bool {
	_, ok := gatewayCodes[tf]
	return ok
}
