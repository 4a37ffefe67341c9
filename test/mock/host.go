package mock

import "github.com/timefield/locale-time-codec/internal/domain"

// Host is a configurable domain.Host. By default WhenReady runs callbacks
// at once; a deferred host queues them until Ready is called.
type Host struct {
	step         float64
	value        string
	display      string
	deferred     bool
	pending      []func()
	displaySets  int
	readyWaiters int
}

// NewHost creates a host with no step and no value.
func NewHost() *Host {
	return &Host{}
}

// WithStep sets the step in seconds.
func (h *Host) WithStep(step float64) *Host {
	h.step = step
	return h
}

// WithValue sets the committed value.
func (h *Host) WithValue(value string) *Host {
	h.value = value
	return h
}

// WithDisplay sets the text currently shown.
func (h *Host) WithDisplay(display string) *Host {
	h.display = display
	return h
}

// Deferred makes WhenReady queue callbacks until Ready is called.
func (h *Host) Deferred() *Host {
	h.deferred = true
	return h
}

// Step implements domain.Host.
func (h *Host) Step() float64 { return h.step }

// SetStep changes the step.
func (h *Host) SetStep(step float64) { h.step = step }

// Value implements domain.Host.
func (h *Host) Value() string { return h.value }

// SetValue changes the committed value.
func (h *Host) SetValue(value string) { h.value = value }

// DisplayValue implements domain.Host.
func (h *Host) DisplayValue() string { return h.display }

// SetDisplayValue implements domain.Host.
func (h *Host) SetDisplayValue(value string) {
	h.display = value
	h.displaySets++
}

// WhenReady implements domain.Host.
func (h *Host) WhenReady(fn func()) {
	h.readyWaiters++
	if h.deferred {
		h.pending = append(h.pending, fn)
		return
	}
	fn()
}

// Ready runs and clears the queued callbacks.
func (h *Host) Ready() {
	pending := h.pending
	h.pending = nil
	for _, fn := range pending {
		fn()
	}
}

// Pending returns the number of queued callbacks.
func (h *Host) Pending() int { return len(h.pending) }

// DisplaySets returns how often SetDisplayValue was called.
func (h *Host) DisplaySets() int { return h.displaySets }

// ReadyWaiters returns how often WhenReady was called.
func (h *Host) ReadyWaiters() int { return h.readyWaiters }

// Ensure Host implements domain.Host at compile time.
var _ domain.Host = (*Host)(nil)
