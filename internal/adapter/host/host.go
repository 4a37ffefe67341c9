// Package host provides an in-memory domain.Host for command line use and
// for embedding the codec in programs that own their own input surface.
package host

import (
	"context"
	"sync"

	"github.com/timefield/locale-time-codec/internal/domain"
	"github.com/timefield/locale-time-codec/internal/infrastructure/logger"
	"github.com/timefield/locale-time-codec/internal/infrastructure/retry"
)

// Memory holds a value and a display text in memory. Callbacks passed to
// WhenReady run on their own goroutine once the readiness check passes,
// polled with the configured retry settings. Memory is safe for concurrent
// use.
type Memory struct {
	mu sync.Mutex

	ctx     context.Context
	step    float64
	value   string
	display string
	ready   func() bool
	poll    retry.Config
	log     *logger.Logger
}

// Compile-time interface check.
var _ domain.Host = (*Memory)(nil)

// NewMemory creates a host with the given step that is always ready.
func NewMemory(step float64) *Memory {
	return &Memory{
		ctx:   context.Background(),
		step:  step,
		ready: func() bool { return true },
		poll:  retry.ReadinessConfig,
		log:   logger.Nop(),
	}
}

// WithValue sets the committed value, in canonical H:MM[:SS[.fff]] form
// until a codec has been configured.
func (h *Memory) WithValue(value string) *Memory {
	h.value = value
	return h
}

// WithReady sets the readiness check and how often it is polled.
func (h *Memory) WithReady(ready func() bool, poll retry.Config) *Memory {
	h.ready = ready
	h.poll = poll
	return h
}

// WithContext bounds readiness polling by ctx.
func (h *Memory) WithContext(ctx context.Context) *Memory {
	h.ctx = ctx
	return h
}

// WithLogger sets the logger for readiness failures.
func (h *Memory) WithLogger(log *logger.Logger) *Memory {
	h.log = log
	return h
}

// Step implements domain.Host.
func (h *Memory) Step() float64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.step
}

// SetStep changes the step.
func (h *Memory) SetStep(step float64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.step = step
}

// Value implements domain.Host.
func (h *Memory) Value() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.value
}

// SetValue commits a new value.
func (h *Memory) SetValue(value string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.value = value
}

// DisplayValue implements domain.Host.
func (h *Memory) DisplayValue() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.display
}

// SetDisplayValue implements domain.Host.
func (h *Memory) SetDisplayValue(value string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.display = value
}

// WhenReady implements domain.Host. It returns at once; fn runs later on
// another goroutine, or is dropped when polling stops first.
func (h *Memory) WhenReady(fn func()) {
	go func() {
		if err := retry.When(h.ctx, h.ready, fn, h.poll); err != nil {
			h.log.Warn().Err(err).Msg("Host never became ready")
		}
	}()
}
