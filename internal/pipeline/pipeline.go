// Package pipeline orchestrates the document flow: read → extract →
// stats → validate → optional LLM summary → render.
package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/tripod-nlp/tripod/internal/cache"
	"github.com/tripod-nlp/tripod/internal/extract"
	"github.com/tripod-nlp/tripod/internal/llm"
	"github.com/tripod-nlp/tripod/internal/model"
	"github.com/tripod-nlp/tripod/internal/seg"
	"github.com/tripod-nlp/tripod/internal/stats"
	"github.com/tripod-nlp/tripod/internal/validate"
)

// Pipeline bundles the extractor with caching, rendering and the optional
// summarizer. One pipeline serves any number of documents sequentially or
// from batch workers.
type Pipeline struct {
	extractor  *extract.Extractor
	store      cache.Cache // nil when caching is disabled
	renderer   *Renderer
	summarizer *llm.Summarizer
	config     *model.Config
}

// NewPipeline initializes the segmenter collaborator and assembles the
// pipeline. Segmenter initialization failure is fatal: the error is
// returned and nothing is constructed.
func NewPipeline(cfg *model.Config) (*Pipeline, error) {
	tagger, err := seg.NewGseTagger(seg.DomainVocab())
	if err != nil {
		return nil, fmt.Errorf("init segmenter: %w", err)
	}

	var store cache.Cache
	var tg seg.Tagger = tagger
	if cfg.Cache.Enabled {
		store = cache.NewLayeredCache(cfg.Cache.MemoryTTL, cfg.Cache.Dir, cfg.Cache.DiskTTL)
		tg = seg.NewCachedTagger(tg, store, cfg.Cache.MemoryTTL)
	}

	extractor := extract.NewExtractor(tg, extract.DefaultLexicon(),
		extract.WithSentenceWorkers(cfg.Concurrency.Sentences))

	var summarizer *llm.Summarizer
	if cfg.LLM.Provider != "" {
		s, err := llm.NewSummarizer(llm.ConfigFromModel(cfg.LLM))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to initialize LLM provider: %v\n", err)
		} else {
			summarizer = s
		}
	}

	return &Pipeline{
		extractor:  extractor,
		store:      store,
		renderer:   NewRenderer(cfg.Output.IncludeFooter),
		summarizer: summarizer,
		config:     cfg,
	}, nil
}

// Result contains the complete per-document outcome.
type Result struct {
	Report *model.Report
}

// ExtractFile extracts a document from a path ("-" for stdin) and builds
// its report. Unchanged documents are answered from the report cache when
// enabled.
func (p *Pipeline) ExtractFile(ctx context.Context, path string) (*Result, error) {
	doc, err := ReadDocument(path)
	if err != nil {
		return nil, err
	}
	return p.ExtractDocument(ctx, doc)
}

// ExtractDocument runs extraction and report assembly for one document.
func (p *Pipeline) ExtractDocument(ctx context.Context, doc *Document) (*Result, error) {
	key := cache.Key("report", doc.Text)
	if p.store != nil {
		if data, found := p.store.Get(key); found {
			var report model.Report
			if err := json.Unmarshal(data, &report); err == nil {
				report.Source = doc.Name // Same content may arrive under another name
				return &Result{Report: &report}, nil
			}
		}
	}

	res, err := p.extractor.ExtractText(ctx, doc.Text)
	if err != nil {
		return nil, fmt.Errorf("extract %s: %w", doc.Name, err)
	}

	report := &model.Report{
		Source:      doc.Name,
		ExtractedAt: time.Now().UTC(),
		Sentences:   res.Sentences,
		Triples:     res.Triples,
		Stats:       stats.Calculate(res),
		Findings:    validate.Strings(validate.Check(res.Triples)),
	}

	// LLM summary runs last and never feeds back into the report body.
	if p.summarizer.IsEnabled() {
		summary, err := p.summarizer.GenerateSummary(ctx, *report)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: LLM summary failed for %s: %v\n", doc.Name, err)
		} else if summary != nil {
			report.LLM = summary
		}
	}

	if p.store != nil {
		if data, err := json.Marshal(report); err == nil {
			_ = p.store.Set(key, data, p.config.Cache.DiskTTL)
		}
	}

	return &Result{Report: report}, nil
}

// RenderReport writes the report to the requested outputs.
func (p *Pipeline) RenderReport(report *model.Report, jsonPath, mdPath string, verbose bool) error {
	if jsonPath != "" {
		if err := p.renderer.RenderJSON(report, jsonPath); err != nil {
			return fmt.Errorf("render JSON: %w", err)
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "✓ Wrote JSON: %s\n", jsonPath)
		}
	}

	if mdPath != "" {
		if err := p.renderer.RenderMarkdown(report, mdPath); err != nil {
			return fmt.Errorf("render markdown: %w", err)
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "✓ Wrote Markdown: %s\n", mdPath)
		}
	}

	return nil
}
