// Package override applies identity attribute overrides through the host's
// privileged write capability and owns the process spoof state.
package override

import (
	"errors"
	"fmt"

	"github.com/sufield/pixelprops/internal/assert"
	"github.com/sufield/pixelprops/internal/classify"
	"github.com/sufield/pixelprops/internal/debug"
	"github.com/sufield/pixelprops/internal/domain"
	"github.com/sufield/pixelprops/internal/ports"
)

// Failure records a directive the host refused.
type Failure struct {
	Directive domain.Directive
	Err       error
}

// Report summarizes one ApplyAll/ApplyDecision run.
type Report struct {
	Applied []domain.Directive
	Skipped []domain.Directive // already applied with the same value
	Failed  []Failure
	// Transitioned is set when this run moved the spoof state to Spoofed.
	Transitioned bool
}

// Err joins the failures, or returns nil.
func (r Report) Err() error {
	errs := make([]error, 0, len(r.Failed))
	for _, f := range r.Failed {
		errs = append(errs, f.Err)
	}
	return errors.Join(errs...)
}

// Mechanism applies overrides. It is driven from the single startup path and
// is not safe for concurrent Apply calls; the spoof state it owns is.
type Mechanism struct {
	writer  ports.AttributeWriter
	state   *SpoofState
	applied map[domain.AttributeKey]string
	logger  debug.Logger
}

// Option configures a Mechanism.
type Option func(*Mechanism)

// WithLogger overrides the logger (defaults to debug.GetLogger()).
func WithLogger(l debug.Logger) Option {
	return func(m *Mechanism) { m.logger = l }
}

// NewMechanism creates a mechanism that writes through writer.
func NewMechanism(writer ports.AttributeWriter, opts ...Option) *Mechanism {
	m := &Mechanism{
		writer:  writer,
		state:   &SpoofState{},
		applied: make(map[domain.AttributeKey]string),
		logger:  debug.GetLogger(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// State returns the read-only view of the spoof state.
func (m *Mechanism) State() SpoofStateReader {
	return m.state
}

// Apply replaces the identity attribute key with value for the rest of the
// process lifetime. Reapplying an identical pair is a no-op.
//
// Returned errors wrap domain.ErrConfigurationMiss or
// domain.ErrWritePermissionDenied.
func (m *Mechanism) Apply(key domain.AttributeKey, value string) error {
	_, err := m.apply(domain.Directive{Key: key, Value: value})
	return err
}

// apply reports whether a write was issued.
func (m *Mechanism) apply(d domain.Directive) (bool, error) {
	if prev, ok := m.applied[d.Key]; ok && prev == d.Value {
		return false, nil
	}
	if !d.Key.Valid() {
		return false, fmt.Errorf("%w: %v", domain.ErrConfigurationMiss, d.Key)
	}

	m.logger.Debugf("Defining prop %s to %q", d.Key, d.Value)
	if err := m.writer.WriteAttribute(d.Key, d.Value); err != nil {
		return false, classifyWriteError(d.Key, err)
	}
	m.applied[d.Key] = d.Value
	return true, nil
}

// classifyWriteError keeps the adapter's sentinel when it reported one and
// otherwise treats the failure as a rejected write.
func classifyWriteError(key domain.AttributeKey, err error) error {
	if errors.Is(err, domain.ErrConfigurationMiss) || errors.Is(err, domain.ErrWritePermissionDenied) {
		return fmt.Errorf("set prop %s: %w", key, err)
	}
	return fmt.Errorf("set prop %s: %w: %w", key, domain.ErrWritePermissionDenied, err)
}

// ApplyAll applies every directive. A failed directive is logged and
// recorded; the remaining directives are still applied.
func (m *Mechanism) ApplyAll(directives []domain.Directive) Report {
	var r Report
	for _, d := range directives {
		wrote, err := m.apply(d)
		switch {
		case err != nil:
			m.logger.Warnf("Failed to set prop %s: %v", d.Key, err)
			r.Failed = append(r.Failed, Failure{Directive: d, Err: err})
		case wrote:
			r.Applied = append(r.Applied, d)
		default:
			r.Skipped = append(r.Skipped, d)
		}
	}
	return r
}

// ApplyDecision applies a classification and, when it marks the privileged
// client process, moves the spoof state to Spoofed. The state is set even if
// some writes failed.
func (m *Mechanism) ApplyDecision(d classify.Decision) Report {
	r := m.ApplyAll(d.Directives)
	if d.MarkSpoofed {
		r.Transitioned = m.state.markSpoofed()
		assert.Invariant(m.state.IsSpoofed(), "spoof state reverted to clean")
		if r.Transitioned {
			m.logger.Debug("Process entered spoofed state")
		}
	}
	return r
}
