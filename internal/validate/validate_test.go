package validate

import (
	"strings"
	"testing"

	"github.com/tripod-nlp/tripod/internal/model"
)

func healthy() []model.Triple {
	return []model.Triple{
		{Subject: "尼米兹号", Relation: "是", Object: "航空母舰", Confidence: 0.9, Rule: model.RuleAPPOS},
		{Subject: "直升机", Relation: "坠毁", Object: "南海", Confidence: 0.8, Rule: model.RuleSVO},
		{Subject: "航母", Relation: "表示在", Object: "南海", Confidence: 0.7, Rule: model.RulePREP},
	}
}

func TestCheck_Healthy(t *testing.T) {
	if findings := Check(healthy()); findings != nil {
		t.Errorf("expected no findings, got %v", findings)
	}
}

func TestCheck_EmptyEndpoints(t *testing.T) {
	triples := []model.Triple{
		{Subject: "", Relation: "坠毁", Object: "", Confidence: 0.8, Rule: model.RuleSVO},
	}

	findings := Check(triples)
	if len(findings) != 2 {
		t.Fatalf("expected 2 findings, got %v", findings)
	}
	if findings[0].Detail != "empty subject" || findings[1].Detail != "empty object" {
		t.Errorf("unexpected details: %v", findings)
	}
}

func TestCheck_ConfidenceMismatch(t *testing.T) {
	triples := healthy()
	triples[1].Confidence = 0.9 // SVO should carry 0.8

	findings := Check(triples)
	found := false
	for _, f := range findings {
		if f.Index == 1 && strings.Contains(f.Detail, "does not match rule") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a confidence mismatch finding, got %v", findings)
	}
}

func TestCheck_Duplicate(t *testing.T) {
	triples := healthy()
	dup := triples[0]
	triples = append(triples, model.Triple{
		Subject: dup.Subject, Relation: dup.Relation, Object: dup.Object,
		Confidence: 0.7, Rule: model.RulePREP,
	})

	findings := Check(triples)
	found := false
	for _, f := range findings {
		if f.Index == 3 && strings.Contains(f.Detail, "duplicate of triple 0") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a duplicate finding against index 0, got %v", findings)
	}
}

func TestCheck_OutOfOrder(t *testing.T) {
	triples := healthy()
	triples[0], triples[2] = triples[2], triples[0] // ascending confidence now

	findings := Check(triples)
	found := false
	for _, f := range findings {
		if f.Detail == "out of confidence order" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected an ordering finding, got %v", findings)
	}
}

func TestStrings(t *testing.T) {
	if out := Strings(nil); out != nil {
		t.Errorf("expected nil for no findings, got %v", out)
	}

	out := Strings([]Finding{{Index: 2, Detail: "empty subject"}})
	if len(out) != 1 || out[0] != "triple 2: empty subject" {
		t.Errorf("unexpected rendering: %v", out)
	}
}
