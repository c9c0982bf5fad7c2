package rag

// scenario couples a keyword family with the fixed directives it triggers.
type scenario struct {
	keywords []string
	actions  []string
}

// Scenario evaluation order is fixed and defines the presentation order of
// the concatenated action lists.
var scenarios = []scenario{
	{
		keywords: []string{"earthquake", "shaking", "tremor", "quake", "地震", "震动"},
		actions: []string{
			"DROP, COVER, HOLD ON",
			"Stay where you are until shaking stops",
		},
	},
	{
		keywords: []string{"trapped", "stuck", "buried", "pinned", "crushed", "被困", "压住"},
		actions: []string{
			"Stay calm, conserve energy",
			"Tap on pipes to signal rescuers",
			"Cover mouth to avoid dust",
		},
	},
	{
		keywords: []string{"bleeding", "blood", "cut", "wound", "injury", "流血", "出血", "受伤"},
		actions: []string{
			"Apply direct pressure with clean cloth",
			"Elevate wound above heart if possible",
			"Do NOT remove embedded objects",
		},
	},
	{
		keywords: []string{"water", "thirsty", "drink", "dehydrated", "水", "口渴", "脱水"},
		actions: []string{
			"Check water heater tank (turn off power first)",
			"Toilet tank water is usually safe",
			"Ice cubes are a good source",
		},
	},
	{
		keywords: []string{"aftershock", "more shaking", "another quake", "余震"},
		actions: []string{
			"DROP, COVER, HOLD ON again",
			"Stay away from damaged buildings",
		},
	},
}

// QuickActions returns the concatenated directives of every scenario the
// query triggers. Scenarios are independent, so a query can collect several
// lists; order follows the fixed scenario order above.
func QuickActions(query string) []string {
	var actions []string
	for _, sc := range scenarios {
		if matchesAny(query, sc.keywords) {
			actions = append(actions, sc.actions...)
		}
	}
	return actions
}
