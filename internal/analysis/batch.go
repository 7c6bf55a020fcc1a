package analysis

import (
	"context"
	"runtime"
	"sort"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-screener/internal/types"
)

// Document is one named resume payload submitted for batch ranking.
type Document struct {
	Name string
	Text string
}

// AnalyzeBatch scores every resume against the JD and returns the ranked
// result set. Resumes are analyzed concurrently; a failure on one resume is
// recorded on its result and does not stop the rest. The returned results are
// ordered by final score, best first, with ranks assigned 1..n.
func (e *Engine) AnalyzeBatch(ctx context.Context, jdText string, resumes []Document) (*types.BatchReport, error) {
	profile, err := e.SummarizeJD(jdText)
	if err != nil {
		return nil, err
	}

	results := make([]*types.Report, len(resumes))
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(runtime.NumCPU())
	for i, doc := range resumes {
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}
			report, err := e.AnalyzeResume(doc.Text, profile)
			if err != nil {
				report = &types.Report{ID: uuid.New(), Error: err.Error()}
			}
			report.Filename = doc.Name
			results[i] = report
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].FinalScore > results[j].FinalScore
	})
	for i, report := range results {
		report.Rank = i + 1
	}

	return &types.BatchReport{
		ID:        uuid.New(),
		JDProfile: profile,
		Results:   results,
	}, nil
}
