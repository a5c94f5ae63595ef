package extract

import (
	"strings"

	"github.com/tripod-nlp/tripod/internal/model"
)

// Classifier keyword sets, checked in priority order: an entity naming
// both a weapon system and a place is MILITARY.
var (
	militaryKeywords = []string{"军机", "直升机", "战斗机", "航母", "火箭", "卫星", "舰队"}
	locationKeywords = []string{"南海", "西昌", "亚太", "中东", "加州", "全球"}
	personKeywords   = []string{"张军社", "宋忠平", "专家", "人员"}
	orgKeywords      = []string{"海军", "航天", "集团", "中心", "时报"}
)

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

// ClassifyEntity maps an entity string to a coarse type by keyword
// containment. No normalization, no multi-type entities: the first
// matching set wins.
func ClassifyEntity(entity string) model.EntityType {
	if entity == "" {
		return model.EntityUnknown
	}

	switch {
	case containsAny(entity, militaryKeywords):
		return model.EntityMilitary
	case containsAny(entity, locationKeywords):
		return model.EntityLocation
	case containsAny(entity, personKeywords):
		return model.EntityPerson
	case containsAny(entity, orgKeywords):
		return model.EntityOrganization
	}
	return model.EntityGeneric
}
