package extract

import (
	"reflect"
	"testing"

	"github.com/tripod-nlp/tripod/internal/model"
)

func TestAggregate_DedupFirstWins(t *testing.T) {
	triples := []model.Triple{
		newTriple("直升机", "坠毁", "南海", model.RuleSVO),
		newTriple("直升机", "坠毁", "南海", model.RuleATT), // Same key, different provenance
	}

	out := Aggregate(triples)
	if len(out) != 1 {
		t.Fatalf("expected 1 triple after dedup, got %d", len(out))
	}
	if out[0].Rule != model.RuleSVO {
		t.Errorf("expected first-seen rule SVO to be kept, got %s", out[0].Rule)
	}
	if out[0].Confidence != 0.8 {
		t.Errorf("expected first-seen confidence 0.8, got %v", out[0].Confidence)
	}
}

func TestAggregate_TypeNotPartOfIdentity(t *testing.T) {
	a := newTriple("直升机", "坠毁", "南海", model.RuleSVO)
	b := a
	b.SubjectType = model.EntityGeneric // Divergent type, same key

	out := Aggregate([]model.Triple{a, b})
	if len(out) != 1 {
		t.Errorf("expected type to be excluded from identity, got %d triples", len(out))
	}
}

func TestAggregate_SortByConfidenceDescending(t *testing.T) {
	triples := []model.Triple{
		newTriple("航母", "表示在", "南海", model.RulePREP),   // 0.7
		newTriple("直升机", "坠毁", "南海", model.RuleSVO),    // 0.8
		newTriple("尼米兹号", "是", "航空母舰", model.RuleAPPOS), // 0.9
		newTriple("直升机", "的", "人员", model.RuleATT),     // 0.85
	}

	out := Aggregate(triples)
	for i := 1; i < len(out); i++ {
		if out[i-1].Confidence < out[i].Confidence {
			t.Errorf("output not sorted at %d: %v < %v", i, out[i-1].Confidence, out[i].Confidence)
		}
	}
	if out[0].Rule != model.RuleAPPOS {
		t.Errorf("expected APPOS first, got %s", out[0].Rule)
	}
}

func TestAggregate_StableForEqualConfidence(t *testing.T) {
	first := newTriple("直升机", "坠毁", "南海", model.RuleSVO)
	second := newTriple("战斗机", "坠毁", "南海", model.RuleSVO)

	out := Aggregate([]model.Triple{first, second})
	if len(out) != 2 {
		t.Fatalf("expected 2 triples, got %d", len(out))
	}
	if out[0].Subject != "直升机" || out[1].Subject != "战斗机" {
		t.Errorf("equal-confidence order not preserved: %s, %s", out[0].Subject, out[1].Subject)
	}
}

func TestAggregate_Idempotent(t *testing.T) {
	triples := []model.Triple{
		newTriple("尼米兹号", "是", "航空母舰", model.RuleAPPOS),
		newTriple("直升机", "坠毁", "南海", model.RuleSVO),
		newTriple("航母", "表示在", "南海", model.RulePREP),
	}

	once := Aggregate(triples)
	twice := Aggregate(once)
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("aggregation is not idempotent:\nonce:  %v\ntwice: %v", once, twice)
	}
}

func TestAggregate_Empty(t *testing.T) {
	if out := Aggregate(nil); len(out) != 0 {
		t.Errorf("expected empty output, got %d", len(out))
	}
}
