package llm

import (
	"context"
	"strings"
	"testing"

	"github.com/tripod-nlp/tripod/internal/model"
)

func testReport() model.Report {
	return model.Report{
		Triples: []model.Triple{
			{Subject: "尼米兹号", Relation: "是", Object: "航空母舰", Confidence: 0.9, Rule: model.RuleAPPOS},
			{Subject: "直升机", Relation: "坠毁", Object: "南海", Confidence: 0.8, Rule: model.RuleSVO},
			{Subject: "直升机", Relation: "的", Object: "南海", Confidence: 0.85, Rule: model.RuleATT},
		},
	}
}

func TestEntityAllowlist_FirstAppearanceOrder(t *testing.T) {
	entities := EntityAllowlist(testReport())

	want := []string{"尼米兹号", "航空母舰", "直升机", "南海"}
	if len(entities) != len(want) {
		t.Fatalf("expected %d entities, got %v", len(want), entities)
	}
	for i := range want {
		if entities[i] != want[i] {
			t.Errorf("position %d: expected %s, got %s", i, want[i], entities[i])
		}
	}
}

func TestBuildPrompt(t *testing.T) {
	report := testReport()
	prompt := BuildPrompt(report, EntityAllowlist(report))

	if !strings.Contains(prompt, "「尼米兹号」、「航空母舰」") {
		t.Errorf("allowlist not rendered with 「」 quoting:\n%s", prompt)
	}
	if !strings.Contains(prompt, "- (直升机, 坠毁, 南海) [SVO, 0.80]") {
		t.Errorf("triple line missing or malformed:\n%s", prompt)
	}
	if !strings.Contains(prompt, "Extracted triples (3, confidence-ranked):") {
		t.Errorf("triple count missing:\n%s", prompt)
	}
}

func TestCheckEntityLeaks(t *testing.T) {
	entities := []string{"尼米兹号", "南海"}

	summary := "据提取结果，「尼米兹号」部署于「南海」。另外「五角大楼」发表了评论，「五角大楼」随后补充。"
	leaks := CheckEntityLeaks(summary, entities)

	if len(leaks) != 1 || leaks[0] != "五角大楼" {
		t.Errorf("expected single leak 五角大楼, got %v", leaks)
	}
}

func TestCheckEntityLeaks_Clean(t *testing.T) {
	if leaks := CheckEntityLeaks("文本指出「南海」发生事故。", []string{"南海"}); leaks != nil {
		t.Errorf("expected no leaks, got %v", leaks)
	}
}

func TestNewProvider_Disabled(t *testing.T) {
	p, err := NewProvider(Config{})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if p != nil {
		t.Error("empty provider name should disable the LLM")
	}
}

func TestNewProvider_Unknown(t *testing.T) {
	if _, err := NewProvider(Config{Provider: "grok"}); err == nil {
		t.Error("expected an error for an unknown provider")
	}
}

// stubProvider returns a canned summary so the summarizer's grounding
// check can be exercised without a network.
type stubProvider struct {
	summary string
}

func (s stubProvider) Name() string { return "stub" }

func (s stubProvider) Summarize(ctx context.Context, req SummarizeRequest) (*SummarizeResponse, error) {
	return &SummarizeResponse{Summary: s.summary, Model: "stub-model"}, nil
}

func TestGenerateSummary_LeakWarning(t *testing.T) {
	s := &Summarizer{provider: stubProvider{summary: "「直升机」坠毁，「白宫」表示关注。"}}

	summary, err := s.GenerateSummary(context.Background(), testReport())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if summary == nil || !summary.Enabled {
		t.Fatal("expected an enabled summary")
	}
	if len(summary.Warnings) != 1 || !strings.Contains(summary.Warnings[0], "白宫") {
		t.Errorf("expected a leak warning for 白宫, got %v", summary.Warnings)
	}
}

func TestGenerateSummary_Disabled(t *testing.T) {
	var s *Summarizer
	if s.IsEnabled() {
		t.Error("nil summarizer must report disabled")
	}

	empty := &Summarizer{}
	summary, err := empty.GenerateSummary(context.Background(), testReport())
	if err != nil || summary != nil {
		t.Errorf("disabled summarizer should be a no-op, got %v, %v", summary, err)
	}
}

func TestGenerateSummary_SkipsEmptyReport(t *testing.T) {
	s := &Summarizer{provider: stubProvider{summary: "ignored"}}

	summary, err := s.GenerateSummary(context.Background(), model.Report{})
	if err != nil || summary != nil {
		t.Errorf("expected no summary for an empty report, got %v, %v", summary, err)
	}
}
