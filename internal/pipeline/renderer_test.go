package pipeline

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/tripod-nlp/tripod/internal/model"
)

func sampleReport() *model.Report {
	return &model.Report{
		Source:      "doc.txt",
		ExtractedAt: time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC),
		Sentences:   2,
		Triples: []model.Triple{
			{
				Subject: "尼米兹号", Relation: "是", Object: "航空母舰",
				SubjectType: model.EntityMilitary, ObjectType: model.EntityMilitary,
				Confidence: 0.9, Rule: model.RuleAPPOS,
			},
			{
				Subject: "直升机", Relation: "坠毁", Object: "南海",
				SubjectType: model.EntityMilitary, ObjectType: model.EntityLocation,
				Confidence: 0.8, Rule: model.RuleSVO,
			},
		},
		Stats: model.Stats{
			TripleCount:    2,
			ByRule:         map[model.RuleKind]int{model.RuleAPPOS: 1, model.RuleSVO: 1},
			MeanConfidence: 0.85,
			Coverage:       1.0,
		},
		Findings: []string{"triple 1: out of confidence order"},
	}
}

func TestRenderJSON_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")

	if err := NewRenderer(true).RenderJSON(sampleReport(), path); err != nil {
		t.Fatalf("render: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}

	var got model.Report
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.Source != "doc.txt" || len(got.Triples) != 2 {
		t.Errorf("report did not survive the round trip: %+v", got)
	}
	if got.Triples[0].Rule != model.RuleAPPOS {
		t.Errorf("expected APPOS first after round trip, got %s", got.Triples[0].Rule)
	}
}

func TestMarkdown_Sections(t *testing.T) {
	md := NewRenderer(true).Markdown(sampleReport())

	for _, want := range []string{
		"# Triple Extraction Report: doc.txt",
		"| 1 | 尼米兹号 | 是 | 航空母舰 |",
		"## Rule breakdown",
		"- APPOS: 1",
		"## Findings",
		"triple 1: out of confidence order",
		"Generated by tripod",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown missing %q:\n%s", want, md)
		}
	}
}

func TestMarkdown_NoFooter(t *testing.T) {
	md := NewRenderer(false).Markdown(sampleReport())
	if strings.Contains(md, "Generated by tripod") {
		t.Error("footer rendered despite being disabled")
	}
}

func TestMarkdown_LLMSectionMarkedInformational(t *testing.T) {
	report := sampleReport()
	report.LLM = &model.LLMSummary{
		Enabled:   true,
		Provider:  "ollama",
		Model:     "qwen2.5:7b",
		SummaryMD: "文本指出「尼米兹号」部署于南海。",
		Warnings:  []string{"summary mentions entity not present in triples: 白宫"},
	}

	md := NewRenderer(true).Markdown(report)
	if !strings.Contains(md, "## LLM summary (informational only)") {
		t.Errorf("LLM section missing:\n%s", md)
	}
	if !strings.Contains(md, "never affects extraction") {
		t.Error("LLM section not marked as non-authoritative")
	}
	if !strings.Contains(md, "白宫") {
		t.Error("LLM warnings not rendered")
	}
}

func TestMarkdown_EmptyReport(t *testing.T) {
	report := &model.Report{Source: "empty.txt", ExtractedAt: time.Now().UTC()}

	md := NewRenderer(true).Markdown(report)
	if strings.Contains(md, "## Triples") {
		t.Error("triple table rendered for an empty report")
	}
	if !strings.Contains(md, "- Triples: 0") {
		t.Errorf("header counts missing:\n%s", md)
	}
}

func TestSummary_ListsTriples(t *testing.T) {
	out := NewRenderer(true).Summary(sampleReport())

	if !strings.Contains(out, "doc.txt: 2 sentences, 2 triples") {
		t.Errorf("header line missing:\n%s", out)
	}
	if !strings.Contains(out, "(直升机, 坠毁, 南海)") {
		t.Errorf("triple line missing:\n%s", out)
	}
}
