package runner

import (
	"time"

	"github.com/thyringer/smake/internal/parser"
)

// RunStatus describes the outcome of running one script
type RunStatus int

const (
	RunPending RunStatus = iota
	RunPassed
	RunFailed
)

// String returns a string representation of RunStatus
func (s RunStatus) String() string {
	switch s {
	case RunPassed:
		return "passed"
	case RunFailed:
		return "failed"
	default:
		return "pending"
	}
}

// StatementResult records the execution of a single statement
type StatementResult struct {
	Statement    parser.Statement
	Kind         parser.Kind
	Duration     time.Duration
	RowsAffected int64
}

// RunResult records the execution of one script
type RunResult struct {
	Script     string // script path or display name
	Statements []StatementResult
	Status     RunStatus
	Err        error // set when Status is RunFailed
	StartTime  time.Time
	EndTime    time.Time
}

// Duration returns the total execution time of the script
func (r *RunResult) Duration() time.Duration {
	return r.EndTime.Sub(r.StartTime)
}

// RunSummary aggregates the results of multiple script runs
type RunSummary struct {
	TotalScripts    int
	PassedScripts   int
	FailedScripts   int
	TotalStatements int
	ByKind          map[parser.Kind]int
	TotalDuration   time.Duration
}

// Summarize creates a summary of script execution results
func Summarize(runs []*RunResult) *RunSummary {
	summary := &RunSummary{
		TotalScripts: len(runs),
		ByKind:       make(map[parser.Kind]int),
	}

	for _, run := range runs {
		summary.TotalDuration += run.Duration()
		summary.TotalStatements += len(run.Statements)

		for _, sr := range run.Statements {
			summary.ByKind[sr.Kind]++
		}

		switch run.Status {
		case RunPassed:
			summary.PassedScripts++
		case RunFailed:
			summary.FailedScripts++
		}
	}

	return summary
}
