package runner

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/thyringer/smake/internal/database"
	"github.com/thyringer/smake/internal/errors"
	"github.com/thyringer/smake/internal/logger"
	"github.com/thyringer/smake/internal/parser"
)

// Executor runs split scripts against PostgreSQL, statement by statement
type Executor struct {
	pool    *database.Pool
	timeout time.Duration
}

// NewExecutor creates a new script executor. timeout is the per-statement
// limit; zero means no limit.
func NewExecutor(pool *database.Pool, timeout time.Duration) *Executor {
	return &Executor{
		pool:    pool,
		timeout: timeout,
	}
}

// Run executes the statements of one script in source order on a single
// connection, so that BEGIN/COMMIT/ROLLBACK statements keep their meaning.
// It stops at the first failing statement; the failure is recorded in the
// returned RunResult, not returned as an error. The error return is reserved
// for not being able to run at all (no connection).
func (e *Executor) Run(ctx context.Context, script string, stmts []parser.Statement) (*RunResult, error) {
	result := &RunResult{
		Script:    script,
		StartTime: time.Now(),
		Status:    RunPending,
	}

	conn, err := e.pool.Acquire(ctx)
	if err != nil {
		return nil, &errors.ConnectionError{
			Message: "failed to acquire connection: " + err.Error(),
		}
	}
	defer conn.Release()

	result.Status = RunPassed

	for _, stmt := range stmts {
		if stmt.Code == "" || parser.Classify(stmt.Code) == parser.KindUnknown {
			continue // nothing to execute, e.g. a stray ';'
		}

		sr, err := e.execute(ctx, conn.Exec, stmt)
		result.Statements = append(result.Statements, sr)

		if err != nil {
			result.Status = RunFailed
			result.Err = e.statementError(script, stmt, err)
			logger.Error("%v", result.Err)
			break
		}

		logger.Debug("%s:%d-%d: %s ok (%d row(s), %v)",
			script, stmt.LineFrom, stmt.LineTo, sr.Kind, sr.RowsAffected, sr.Duration)
	}

	result.EndTime = time.Now()

	return result, nil
}

// RunBatch executes multiple scripts sequentially, continuing after failures
func (e *Executor) RunBatch(ctx context.Context, scripts map[string][]parser.Statement, order []string) ([]*RunResult, error) {
	var runs []*RunResult

	for _, name := range order {
		logger.Debug("running script: %s", name)

		run, err := e.Run(ctx, name, scripts[name])
		if err != nil {
			return runs, err
		}
		runs = append(runs, run)

		if ctx.Err() != nil {
			break
		}
	}

	return runs, nil
}

type execFunc func(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)

// execute runs one statement with the per-statement timeout applied
func (e *Executor) execute(ctx context.Context, exec execFunc, stmt parser.Statement) (StatementResult, error) {
	sr := StatementResult{
		Statement: stmt,
		Kind:      parser.Classify(stmt.Code),
	}

	stmtCtx := ctx
	if e.timeout > 0 {
		var cancel context.CancelFunc
		stmtCtx, cancel = context.WithTimeout(ctx, e.timeout)
		defer cancel()
	}

	start := time.Now()
	tag, err := exec(stmtCtx, stmt.Code)
	sr.Duration = time.Since(start)
	if err != nil {
		return sr, err
	}

	sr.RowsAffected = tag.RowsAffected()
	return sr, nil
}

// statementError wraps a statement failure with its source location
func (e *Executor) statementError(script string, stmt parser.Statement, err error) *errors.StatementError {
	serr := &errors.StatementError{
		Script:    script,
		LineFrom:  stmt.LineFrom,
		LineTo:    stmt.LineTo,
		Beginning: parser.ExtractBeginning(stmt.Code),
		Err:       err,
	}
	var pgErr *pgconn.PgError
	if stderrors.As(err, &pgErr) {
		serr.SQLError = pgErr
	}
	return serr
}
