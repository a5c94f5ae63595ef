package seg

// domainTerms are multi-character military/aerospace terms that the stock
// dictionary would otherwise split. They are registered with the nz tag
// (proper noun, other) so the span finder treats them as entity tokens.
var domainTerms = []string{
	"MH-60R", "海鹰直升机", "F/A-18F", "超级大黄蜂", "尼米兹号",
	"航空母舰", "舰载战斗机", "长征三号乙", "运载火箭", "高分十四号02星",
	"太阳同步轨道", "西昌卫星发射中心", "航天科技集团", "北斗导航系统",
	"美国海军", "太平洋舰队", "环球时报", "张军社", "宋忠平", "军事专家",
	"波音F/A-18F", "弹射逃生", "搜救队", "机组人员", "例行操作",
	"例行任务", "对地观测", "遥感应用", "高分辨率",
}

// DomainVocab returns the fixed domain vocabulary. The list is literal
// data: there is no runtime mechanism to extend it.
func DomainVocab() []VocabEntry {
	entries := make([]VocabEntry, 0, len(domainTerms))
	for _, term := range domainTerms {
		entries = append(entries, VocabEntry{Term: term, Tag: "nz"})
	}
	return entries
}
