// Package dispatch is the single gateway between resolved workflow
// actions and the remote collaborator. It owns the in-flight bookkeeping
// around every call and turns every outcome into exactly one terminal
// notification.
package dispatch

import (
	"context"

	"github.com/adi1zhexen0v/erp-safari-hr/internal/flight"
	"github.com/adi1zhexen0v/erp-safari-hr/internal/i18n"
	"github.com/adi1zhexen0v/erp-safari-hr/pkg/metrics"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Endpoint describes the remote call. Transport details stay opaque to
// the workflow core; the caller maps them onto its protocol.
type Endpoint struct {
	Method string
	Path   string
	Body   any
}

// Result is the typed success payload of a remote call.
type Result struct {
	Data []byte
}

// Caller performs the remote call. A rejection carries a *CallError with
// the structured error payload.
type Caller interface {
	Call(ctx context.Context, endpoint Endpoint) (*Result, error)
}

// Notifier surfaces one terminal notification per dispatch.
type Notifier interface {
	Success(title, text string)
	Error(title, text string)
}

// Invalidator marks cached snapshots stale after a state-changing action,
// so the stage/status model re-derives from fresh server truth instead of
// a locally patched copy.
type Invalidator interface {
	Invalidate(tags ...string)
}

// Request is one resolved action ready to dispatch.
type Request struct {
	Kind           flight.Kind
	EntityID       string
	Endpoint       Endpoint
	SuccessKey     string
	FallbackKey    string
	InvalidateTags []string
}

type Dispatcher struct {
	registry    *flight.Registry
	caller      Caller
	notifier    Notifier
	invalidator Invalidator
	translator  i18n.Translator
}

func NewDispatcher(registry *flight.Registry, caller Caller, notifier Notifier, invalidator Invalidator, translator i18n.Translator) *Dispatcher {
	return &Dispatcher{
		registry:    registry,
		caller:      caller,
		notifier:    notifier,
		invalidator: invalidator,
		translator:  translator,
	}
}

// Registry exposes the tracker for busy predicates on the caller's side.
func (d *Dispatcher) Registry() *flight.Registry {
	return d.registry
}

// Dispatch runs one action end to end: precondition check, slot
// occupation, remote call, terminal notification, slot release. Failures
// are never retried and never leave the slot occupied.
func (d *Dispatcher) Dispatch(ctx context.Context, req Request) error {
	if req.EntityID == "" {
		// structurally invalid pair, reported without reaching the network
		d.notifier.Error(d.translator.T("notifications.error"), d.translator.T("notifications.genericError"))
		metrics.IncreaseDispatchTotalMetric(string(req.Kind), "precondition_failed")
		return NewErrMissingEntity(req.Kind)
	}

	d.registry.Begin(req.Kind, req.EntityID)
	metrics.SetInFlightOperations(d.registry.Len())
	defer func() {
		d.registry.End(req.Kind)
		metrics.SetInFlightOperations(d.registry.Len())
	}()

	if _, err := d.caller.Call(ctx, req.Endpoint); err != nil {
		fallback := d.translator.T(req.FallbackKey)
		message := fallback

		var callErr *CallError
		if errors.As(err, &callErr) {
			message = ExtractMessage(callErr.Payload, fallback)
		}

		zap.S().Named("dispatch").Warnw("action failed",
			"kind", req.Kind, "entity_id", req.EntityID, "error", err)
		d.notifier.Error(d.translator.T("notifications.error"), message)
		metrics.IncreaseDispatchTotalMetric(string(req.Kind), "error")
		return err
	}

	d.notifier.Success(d.translator.T("notifications.success"), d.translator.T(req.SuccessKey))
	if len(req.InvalidateTags) > 0 {
		d.invalidator.Invalidate(req.InvalidateTags...)
	}
	metrics.IncreaseDispatchTotalMetric(string(req.Kind), "success")

	return nil
}
