package model

// Token is one segmented word paired with its part-of-speech tag.
// Tokens are produced by the tagger and live only for the duration of one
// sentence's rule pass; their order is the original text order.
type Token struct {
	Surface string `json:"surface"`
	Tag     string `json:"tag"`
}

// RuleKind identifies the syntactic pattern that produced a triple.
type RuleKind string

const (
	RuleSVO   RuleKind = "SVO"   // verb-centered subject-object
	RulePREP  RuleKind = "PREP"  // prepositional-phrase relation
	RuleAPPOS RuleKind = "APPOS" // copula / apposition
	RuleATT   RuleKind = "ATT"   // attributive 的 construction
)

// ruleConfidence is the per-rule confidence table. Confidence is
// rule-determined: no other values ever appear on a Triple.
var ruleConfidence = map[RuleKind]float64{
	RuleSVO:   0.8,
	RulePREP:  0.7,
	RuleAPPOS: 0.9,
	RuleATT:   0.85,
}

// RuleConfidence returns the fixed confidence for a rule kind.
func RuleConfidence(rule RuleKind) float64 {
	return ruleConfidence[rule]
}

// EntityType is a coarse keyword-derived entity category.
type EntityType string

const (
	EntityMilitary     EntityType = "MILITARY"
	EntityLocation     EntityType = "LOCATION"
	EntityPerson       EntityType = "PERSON"
	EntityOrganization EntityType = "ORGANIZATION"
	EntityGeneric      EntityType = "ENTITY"
	EntityUnknown      EntityType = "UNKNOWN"
)

// Triple is one extracted (subject, relation, object) fact.
type Triple struct {
	Subject     string     `json:"subject"`
	Relation    string     `json:"relation"`
	Object      string     `json:"object"`
	SubjectType EntityType `json:"subject_type"`
	ObjectType  EntityType `json:"object_type"`
	Confidence  float64    `json:"confidence"`
	Rule        RuleKind   `json:"rule"`
}

// Key is the deduplication identity: subject, relation and object only.
// Types, confidence and rule are deliberately excluded, so two rules that
// produce the same surface triple collapse to the first-constructed one.
func (t Triple) Key() string {
	return t.Subject + "\x00" + t.Relation + "\x00" + t.Object
}
