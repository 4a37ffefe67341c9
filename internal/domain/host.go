package domain

// Host is the input surface a codec serves. It owns the raw text value and
// the step, and tells the codec when its display can be updated.
type Host interface {
	// Step returns the current step in seconds. Zero means no step.
	Step() float64

	// Value returns the committed raw text value.
	Value() string

	// DisplayValue returns the text currently shown to the user.
	DisplayValue() string

	// SetDisplayValue replaces the shown text.
	SetDisplayValue(value string)

	// WhenReady invokes fn once the display surface exists.
	WhenReady(fn func())
}
