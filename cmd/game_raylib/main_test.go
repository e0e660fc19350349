package main

import (
	"reflect"
	"testing"
)

type recordingUnloader struct {
	name  string
	calls *[]string
}

func (r recordingUnloader) Unload() { *r.calls = append(*r.calls, "unload "+r.name) }

func TestTeardown_UnloadsBeforeClosingWindow(t *testing.T) {
	var calls []string
	res := []unloader{
		recordingUnloader{name: "sprites", calls: &calls},
		recordingUnloader{name: "font", calls: &calls},
	}

	teardown(res, func() { calls = append(calls, "close") })

	want := []string{"unload sprites", "unload font", "close"}
	if !reflect.DeepEqual(calls, want) {
		t.Errorf("expected %v, got %v", want, calls)
	}
}

func TestTeardown_NothingLoaded(t *testing.T) {
	closed := false
	teardown(nil, func() { closed = true })
	if !closed {
		t.Error("window must be closed even when nothing was loaded")
	}
}
