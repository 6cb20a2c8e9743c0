package worksheet

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/aretw0/intervals/pkg/core"
)

// Solver answers argument-array calls. *core.Service implements it.
type Solver interface {
	IntervalConstruction(args []string) (string, error)
	IntervalIdentification(args []string) (string, error)
}

// Result is the outcome of one exercise.
type Result struct {
	Exercise Exercise `json:"exercise"`
	Got      string   `json:"got,omitempty"`
	ErrKind  string   `json:"error_kind,omitempty"`
	Err      string   `json:"error,omitempty"`
	Passed   bool     `json:"passed"`
}

// SheetResult is the outcome of one worksheet.
type SheetResult struct {
	Path    string   `json:"path"`
	Title   string   `json:"title"`
	Results []Result `json:"results,omitempty"`
	Passed  int      `json:"passed"`
	Failed  int      `json:"failed"`
	// LoadError is set when the file could not be read or parsed.
	LoadError string `json:"load_error,omitempty"`
}

// Report aggregates a grading run.
type Report struct {
	RunID  string        `json:"run_id"`
	Sheets []SheetResult `json:"sheets"`
	Passed int           `json:"passed"`
	Failed int           `json:"failed"`
}

// OK reports whether every exercise passed and every sheet loaded.
func (r Report) OK() bool {
	for _, s := range r.Sheets {
		if s.LoadError != "" {
			return false
		}
	}
	return r.Failed == 0
}

// Run executes a single exercise against solver.
func Run(solver Solver, ex Exercise) Result {
	var (
		got string
		err error
	)
	switch ex.Op {
	case OpConstruct:
		got, err = solver.IntervalConstruction(ex.Args)
	case OpIdentify:
		got, err = solver.IntervalIdentification(ex.Args)
	default:
		err = fmt.Errorf("unknown op %q", ex.Op)
	}

	res := Result{Exercise: ex, Got: got}
	if err != nil {
		res.Err = err.Error()
		res.ErrKind = core.ErrorKind(err)
	}

	if ex.Error != "" {
		res.Passed = err != nil && res.ErrKind == ex.Error
	} else {
		res.Passed = err == nil && got == ex.Expect
	}
	return res
}

// Grade runs every exercise of sheet.
func Grade(solver Solver, sheet Sheet) SheetResult {
	out := SheetResult{
		Path:    sheet.Path,
		Title:   sheet.Title,
		Results: make([]Result, 0, len(sheet.Exercises)),
	}
	for _, ex := range sheet.Exercises {
		res := Run(solver, ex)
		if res.Passed {
			out.Passed++
		} else {
			out.Failed++
		}
		out.Results = append(out.Results, res)
	}
	return out
}

// GradeAll loads and grades paths with at most workers sheets in flight.
// Sheets that fail to load are reported, not returned as errors; the error
// is non-nil only when ctx ends the run early. Results keep the order of paths.
func GradeAll(ctx context.Context, solver Solver, paths []string, workers int) (Report, error) {
	if workers < 1 {
		workers = 1
	}

	results := make([]SheetResult, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			sheet, err := Load(path)
			if err != nil {
				results[i] = SheetResult{Path: path, LoadError: err.Error()}
				return nil
			}
			results[i] = Grade(solver, *sheet)
			return nil
		})
	}

	report := Report{RunID: uuid.NewString()}
	if err := g.Wait(); err != nil {
		return report, err
	}

	report.Sheets = results
	for _, s := range results {
		report.Passed += s.Passed
		report.Failed += s.Failed
	}
	return report, nil
}

// WriteText renders report as an aligned table followed by a summary line.
func (r Report) WriteText(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, s := range r.Sheets {
		if s.LoadError != "" {
			fmt.Fprintf(tw, "%s\tLOAD ERROR\t%s\n", s.Path, s.LoadError)
			continue
		}
		fmt.Fprintf(tw, "%s\t%d passed\t%d failed\n", s.Title, s.Passed, s.Failed)
		for _, res := range s.Results {
			if res.Passed {
				continue
			}
			want := res.Exercise.Expect
			if res.Exercise.Error != "" {
				want = "error " + res.Exercise.Error
			}
			got := res.Got
			if res.Err != "" {
				got = res.Err
			}
			fmt.Fprintf(tw, "  FAIL %s\twant %s\tgot %s\n", res.Exercise.Label(), want, got)
		}
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "run %s: %d passed, %d failed\n", r.RunID, r.Passed, r.Failed)
	return err
}
