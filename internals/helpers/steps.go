// file: internals/helpers/steps.go
package helper

import "log"

/* ===============================
   Named step runner

   Multi-step store workflows here (cascading school delete, the
   post-upload recalculation chain) are not transactional: a failure
   partway leaves earlier steps applied. Each step's outcome is
   therefore tracked by name and surfaced to the caller instead of
   being swallowed into a log line.
=================================*/

type Step struct {
	Name string
	Run  func() error
}

type StepResult struct {
	Name    string `json:"name"`
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
	Skipped bool   `json:"skipped,omitempty"`
}

// RunSteps executes steps in order. With stopOnError=true the remaining
// steps are reported as skipped after the first failure; with false every
// step runs and failures are recorded individually.
func RunSteps(steps []Step, stopOnError bool) ([]StepResult, bool) {
	results := make([]StepResult, 0, len(steps))
	ok := true
	failed := false

	for _, s := range steps {
		if failed && stopOnError {
			results = append(results, StepResult{Name: s.Name, Skipped: true})
			continue
		}
		if err := s.Run(); err != nil {
			log.Printf("[STEP] %s failed: %v", s.Name, err)
			results = append(results, StepResult{Name: s.Name, Error: err.Error()})
			ok = false
			failed = true
			continue
		}
		results = append(results, StepResult{Name: s.Name, Success: true})
	}
	return results, ok
}
