// file: internals/features/school/exams/service/recalc.go
package service

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	helper "schoolku_backend/internals/helpers"
)

/* ===============================
   Post-upload recalculation chain

   After a result batch lands, the store's procedures rebuild the
   derived rank/average columns in a fixed order. Each step's failure
   is logged and non-fatal: the upload still reports success, with
   placeholder ranks left in place for whatever did not run.
=================================*/

// ProcRunner invokes one named stored procedure.
type ProcRunner interface {
	CallProc(name string, args ...any) error
}

// DBProcRunner runs procedures through GORM.
type DBProcRunner struct {
	DB *gorm.DB
}

func (r DBProcRunner) CallProc(name string, args ...any) error {
	ph := make([]string, len(args))
	for i := range args {
		ph[i] = "?"
	}
	return r.DB.Exec("SELECT "+name+"("+strings.Join(ph, ", ")+")", args...).Error
}

// RecalcSteps builds the ordered chain for one exam's school.
func RecalcSteps(run ProcRunner, examID uuid.UUID, schoolCode string) []helper.Step {
	return []helper.Step{
		{Name: "ranks", Run: func() error {
			return run.CallProc("recalculate_ranks", examID)
		}},
		{Name: "exam averages", Run: func() error {
			return run.CallProc("recalculate_exam_averages", examID)
		}},
		{Name: "grade averages", Run: func() error {
			return run.CallProc("recalculate_grade_averages", schoolCode)
		}},
		{Name: "grade ranks", Run: func() error {
			return run.CallProc("recalculate_grade_ranks", schoolCode)
		}},
		{Name: "all india rank", Run: func() error {
			return run.CallProc("recalculate_all_india_rank")
		}},
	}
}

// RunRecalcChain executes every step regardless of earlier failures and
// reports the per-step outcomes.
func RunRecalcChain(run ProcRunner, examID uuid.UUID, schoolCode string) []helper.StepResult {
	results, _ := helper.RunSteps(RecalcSteps(run, examID, schoolCode), false)
	return results
}
