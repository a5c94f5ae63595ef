package extract

// Lexicon is the fixed word data the pattern rules trigger on. It is
// injected at extractor construction and never mutated afterwards, so
// independently configured extractors can coexist in one process.
type Lexicon struct {
	// CoreVerbs trigger the SVO rule and anchor the PREP rule.
	CoreVerbs map[string]bool

	// Prepositions trigger the PREP rule.
	Prepositions map[string]bool

	// RelationVerbs are copulas; they trigger the APPOS rule and are
	// normalized to the literal relation 是.
	RelationVerbs map[string]bool
}

func wordSet(words ...string) map[string]bool {
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[w] = true
	}
	return set
}

// DefaultLexicon returns the built-in lexicon tuned for military and
// aerospace news.
func DefaultLexicon() Lexicon {
	return Lexicon{
		CoreVerbs: wordSet(
			"坠毁", "发射", "研制", "部署", "表示", "分析", "指出", "创立",
			"涉及", "进行", "执行", "成功", "取得", "推动", "救起", "逃生",
			"采用", "送入", "构建", "提供", "标志", "接受", "维持", "炫耀",
			"肩负", "导致", "震惊", "延续", "完善", "计划",
			"协同", "支撑", "迈上",
		),
		Prepositions: wordSet(
			"在", "于", "到", "从", "向", "为", "跟", "和", "与", "据",
			"根据", "按照", "通过", "沿着",
		),
		RelationVerbs: wordSet(
			"是", "为", "成为", "属于", "包括", "包含",
		),
	}
}
