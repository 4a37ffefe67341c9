package domain

// Step thresholds, in seconds, below which finer fields are shown.
const (
	SecondsStepThreshold      = 60
	MillisecondsStepThreshold = 1
)

// Granularity is the set of optional fields a rendering includes.
// Hours and minutes are always included.
type Granularity struct {
	Seconds      bool
	Milliseconds bool
}

// GranularityFromStep derives the granularity from a step given in seconds.
// A zero or negative step means the host has no step, which shows hours and
// minutes only.
func GranularityFromStep(step float64) Granularity {
	if step <= 0 {
		return Granularity{}
	}
	return Granularity{
		Seconds:      step < SecondsStepThreshold,
		Milliseconds: step < MillisecondsStepThreshold,
	}
}

// FormatOptions are the field-inclusion options passed to a LocaleFormatter.
type FormatOptions struct {
	// Seconds includes the seconds field in the rendering
	Seconds bool
}

// FormatOptions returns the native formatter options for this granularity.
func (g Granularity) FormatOptions() FormatOptions {
	return FormatOptions{Seconds: g.Seconds}
}
