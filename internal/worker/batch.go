package worker

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/tripod-nlp/tripod/internal/model"
	"github.com/tripod-nlp/tripod/internal/pipeline"
)

// Extractor is the slice of the pipeline the batch processor needs.
type Extractor interface {
	ExtractFile(ctx context.Context, path string) (*pipeline.Result, error)
}

// ExtractJob extracts one document.
type ExtractJob struct {
	Path      string
	Extractor Extractor
}

// Execute runs the extraction for the job's path.
func (j *ExtractJob) Execute(ctx context.Context) Result {
	result, err := j.Extractor.ExtractFile(ctx, j.Path)
	if err != nil {
		return &ExtractResult{Path: j.Path, Error: err}
	}
	return &ExtractResult{Path: j.Path, Report: result.Report}
}

// ExtractResult is the per-document outcome of a batch run.
type ExtractResult struct {
	Path   string
	Report *model.Report
	Error  error
}

// GetError returns the job error, if any.
func (r *ExtractResult) GetError() error {
	return r.Error
}

// BatchProcessor extracts multiple documents concurrently.
type BatchProcessor struct {
	extractor   Extractor
	concurrency int
}

// NewBatchProcessor creates a batch processor.
func NewBatchProcessor(extractor Extractor, concurrency int) *BatchProcessor {
	return &BatchProcessor{extractor: extractor, concurrency: concurrency}
}

// ProcessFiles runs extraction for every path through the pool.
func (b *BatchProcessor) ProcessFiles(ctx context.Context, paths []string) []*ExtractResult {
	if len(paths) == 0 {
		return []*ExtractResult{}
	}

	pool := NewPool(b.concurrency)
	pool.Start()

	// Submission runs beside collection so large batches cannot deadlock
	// on the bounded queue.
	go func() {
		defer pool.Finish()
		for _, path := range paths {
			select {
			case <-ctx.Done():
				return
			default:
				pool.Submit(&ExtractJob{Path: path, Extractor: b.extractor})
			}
		}
	}()

	// The pool preserves no ordering; callers key off ExtractResult.Path.
	results := make([]*ExtractResult, 0, len(paths))
	for _, result := range pool.Wait() {
		if er, ok := result.(*ExtractResult); ok {
			results = append(results, er)
		}
	}
	return results
}

// ReadFileList reads input paths from a list file, one per line. Blank
// lines and #-comments are skipped.
func ReadFileList(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open list file: %w", err)
	}
	defer f.Close()

	var paths []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		paths = append(paths, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read list file: %w", err)
	}
	return paths, nil
}
