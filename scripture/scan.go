package scripture

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/FocuswithJustin/citerefs/internal/concurrent"
	"github.com/FocuswithJustin/citerefs/internal/logging"
	"github.com/FocuswithJustin/citerefs/internal/validation"
)

// FileResult is one file's scan outcome: either the passages found in it,
// or the error encountered reading it.
type FileResult struct {
	Path     string
	Passages []Passage
	Err      error
}

type scanJob struct {
	path string
}

// ScanFiles reads each of paths and searches it for scripture references
// using a bounded pool of workers, returning one FileResult per path in
// the order the work completed. Pass workers <= 0 to use GOMAXPROCS.
func ScanFiles(ctx context.Context, m *BibleModel, paths []string, workers int) []FileResult {
	pool := concurrent.NewWorkerPool[scanJob, FileResult](workers, len(paths))
	pool.Start(func(job scanJob) FileResult {
		select {
		case <-ctx.Done():
			return FileResult{Path: job.path, Err: ctx.Err()}
		default:
		}
		return scanFile(m, job.path)
	})

	for _, p := range paths {
		pool.Submit(scanJob{path: p})
	}
	pool.Close()

	results := make([]FileResult, 0, len(paths))
	for r := range pool.Results() {
		results = append(results, r)
	}
	return results
}

func scanFile(m *BibleModel, path string) FileResult {
	if err := validation.ValidatePath(path); err != nil {
		logging.SecurityEvent("path_rejected", "scan", "path", path, "error", err.Error())
		return FileResult{Path: path, Err: fmt.Errorf("rejected path %s: %w", path, err)}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return FileResult{Path: path, Err: fmt.Errorf("reading %s: %w", path, err)}
	}
	if len(data) > validation.MaxFileSize {
		return FileResult{Path: path, Err: fmt.Errorf("%s exceeds maximum file size", path)}
	}
	if _, err := validation.ValidateFileType(bytes.NewReader(data), path); err != nil {
		return FileResult{Path: path, Err: fmt.Errorf("rejected file type for %s: %w", path, err)}
	}
	if err := validation.ValidateInputLength(string(data)); err != nil {
		return FileResult{Path: path, Err: fmt.Errorf("%s: %w", path, err)}
	}

	var passages []Passage
	stream := m.Search(string(data))
	for {
		p, ok, err := stream.Next()
		if err != nil {
			return FileResult{Path: path, Err: err}
		}
		if !ok {
			break
		}
		passages = append(passages, p)
	}
	return FileResult{Path: path, Passages: passages}
}
