package rag

// Priority is the emergency-severity tier of a query.
type Priority string

const (
	PriorityCritical  Priority = "critical"
	PriorityUrgent    Priority = "urgent"
	PriorityImportant Priority = "important"
	PriorityNormal    Priority = "normal"
)

// Keyword families in evaluation order. A query matching several tiers gets
// the most severe one: "bleeding during the earthquake" is critical, not
// urgent.
var (
	criticalKeywords = []string{
		"bleeding", "blood", "unconscious", "can't breathe", "not breathing",
		"chest pain", "heart attack", "severe injury", "dying",
		"流血", "出血", "昏迷", "呼吸困难", "心脏病",
	}
	urgentKeywords = []string{
		"earthquake", "shaking", "tremor", "building collapse", "gas leak",
		"fire", "smoke", "explosion", "tsunami warning",
		"地震", "震动", "建筑倒塌", "煤气泄漏", "火灾", "海啸",
	}
	importantKeywords = []string{
		"trapped", "stuck", "water", "aftershock", "evacuation",
		"shelter", "food", "injury", "help",
		"被困", "余震", "撤离", "避难", "食物", "受伤",
	}
)

// Classify maps a query to its severity tier. Pure function of the query.
func Classify(query string) Priority {
	if matchesAny(query, criticalKeywords) {
		return PriorityCritical
	}
	if matchesAny(query, urgentKeywords) {
		return PriorityUrgent
	}
	if matchesAny(query, importantKeywords) {
		return PriorityImportant
	}
	return PriorityNormal
}
