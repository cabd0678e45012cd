package service

import (
	"errors"
	"testing"

	"github.com/google/uuid"
)

type fakeRunner struct {
	calls   []string
	failing map[string]error
}

func (f *fakeRunner) CallProc(name string, args ...any) error {
	f.calls = append(f.calls, name)
	if err, ok := f.failing[name]; ok {
		return err
	}
	return nil
}

func TestRunRecalcChainOrder(t *testing.T) {
	r := &fakeRunner{}
	results := RunRecalcChain(r, uuid.New(), "TS2507")

	wantCalls := []string{
		"recalculate_ranks",
		"recalculate_exam_averages",
		"recalculate_grade_averages",
		"recalculate_grade_ranks",
		"recalculate_all_india_rank",
	}
	if len(r.calls) != len(wantCalls) {
		t.Fatalf("want %d proc calls, got %v", len(wantCalls), r.calls)
	}
	for i, name := range wantCalls {
		if r.calls[i] != name {
			t.Fatalf("call %d = %q, want %q", i, r.calls[i], name)
		}
	}
	for _, res := range results {
		if !res.Success {
			t.Fatalf("step %q should succeed: %+v", res.Name, res)
		}
	}
}

func TestRunRecalcChainFailuresAreNonFatal(t *testing.T) {
	r := &fakeRunner{failing: map[string]error{
		"recalculate_ranks":       errors.New("proc missing"),
		"recalculate_grade_ranks": errors.New("timeout"),
	}}
	results := RunRecalcChain(r, uuid.New(), "TS2507")

	if len(r.calls) != 5 {
		t.Fatalf("every step must still run, got %v", r.calls)
	}
	if results[0].Success || results[0].Error == "" {
		t.Fatalf("ranks failure not recorded: %+v", results[0])
	}
	if !results[1].Success || !results[2].Success || !results[4].Success {
		t.Fatalf("independent steps should succeed: %+v", results)
	}
	if results[3].Success {
		t.Fatalf("grade ranks failure not recorded: %+v", results[3])
	}
}
