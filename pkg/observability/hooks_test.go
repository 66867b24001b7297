package observability

import (
	"testing"
	"time"
)

type countingCopyHooks struct {
	NoopCopyHooks
	starts int
}

func (h *countingCopyHooks) OnCopyStart(string, bool) { h.starts++ }

type countingExtractHooks struct {
	NoopExtractHooks
	extracts int
}

func (h *countingExtractHooks) OnExtract(string, int) { h.extracts++ }

type countingRenderHooks struct {
	NoopRenderHooks
	completes int
}

func (h *countingRenderHooks) OnRenderComplete(string, int, time.Duration, error) { h.completes++ }

func TestSetAndGetHooks(t *testing.T) {
	defer Reset()

	ch := &countingCopyHooks{}
	eh := &countingExtractHooks{}
	rh := &countingRenderHooks{}

	SetCopyHooks(ch)
	SetExtractHooks(eh)
	SetRenderHooks(rh)

	Copy().OnCopyStart("map", false)
	Extract().OnExtract("slice", 3)
	Render().OnRenderComplete("dot", 5, time.Millisecond, nil)

	if ch.starts != 1 {
		t.Errorf("copy starts = %d, want 1", ch.starts)
	}
	if eh.extracts != 1 {
		t.Errorf("extracts = %d, want 1", eh.extracts)
	}
	if rh.completes != 1 {
		t.Errorf("render completes = %d, want 1", rh.completes)
	}
}

func TestSetNilIsIgnored(t *testing.T) {
	defer Reset()

	SetCopyHooks(nil)
	SetExtractHooks(nil)
	SetRenderHooks(nil)

	// Must not panic: the no-op defaults stay registered.
	Copy().OnCopyStart("map", true)
	Extract().OnEntryDropped("map", "x", "nil value")
	Render().OnRenderStart("svg")
}

func TestReset(t *testing.T) {
	ch := &countingCopyHooks{}
	SetCopyHooks(ch)
	Reset()

	Copy().OnCopyStart("map", false)
	if ch.starts != 0 {
		t.Error("Reset should restore the no-op hooks")
	}
	if _, ok := Copy().(NoopCopyHooks); !ok {
		t.Errorf("Copy() = %T after Reset, want NoopCopyHooks", Copy())
	}
}
