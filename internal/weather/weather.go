// Package weather provides the current weather condition used by the walk
// loot table. Lookups go to the open-meteo forecast API and are cached for
// an hour; failures degrade to an unknown condition so gameplay never
// depends on the weather service being up.
package weather

import "context"

// Condition is a coarse weather bucket derived from WMO weather codes.
type Condition string

const (
	Clear        Condition = "clear"
	Clouds       Condition = "clouds"
	Fog          Condition = "fog"
	Drizzle      Condition = "drizzle"
	Rain         Condition = "rain"
	Snow         Condition = "snow"
	Thunderstorm Condition = "thunderstorm"
	Unknown      Condition = "unknown"
)

// Report is the current weather snapshot.
type Report struct {
	Temperature float64
	Condition   Condition
}

// Provider returns the current weather report.
type Provider interface {
	Current(ctx context.Context) (Report, error)
}

// ConditionFromWMO maps a WMO weather interpretation code to a Condition.
func ConditionFromWMO(code int) Condition {
	switch {
	case code == 0:
		return Clear
	case code >= 1 && code <= 3:
		return Clouds
	case code >= 45 && code <= 48:
		return Fog
	case code >= 51 && code <= 57:
		return Drizzle
	case code >= 61 && code <= 67, code >= 80 && code <= 82:
		return Rain
	case code >= 71 && code <= 77, code >= 85 && code <= 86:
		return Snow
	case code >= 95 && code <= 99:
		return Thunderstorm
	default:
		return Unknown
	}
}

// Static is a fixed-condition provider, used in tests and when weather
// lookups are disabled.
type Static struct {
	Report Report
}

// Current returns the fixed report.
func (s Static) Current(context.Context) (Report, error) {
	return s.Report, nil
}
