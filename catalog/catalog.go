// Package catalog holds the fixed safety-question checklist. The catalog is
// compile-time data: question order defines presentation order in both the
// answer flow and the generated report, and category order defines report
// sectioning. Nothing here is mutable at runtime.
package catalog

// SafetyQuestion is one weighted checklist item.
type SafetyQuestion struct {
	ID       string `json:"id"`
	Category string `json:"category"`
	Question string `json:"question"`
	Weight   int    `json:"weight"` // positive multiplier, max points per question = Weight * 5
}

// Category pairs a stable key with its report display name.
type Category struct {
	Key  string `json:"key"`
	Name string `json:"name"`
}

// Categories lists every question category in report order.
var Categories = []Category{
	{Key: "documentation", Name: "Documentation and Licenses"},
	{Key: "housekeeping", Name: "Housekeeping and Site Organization"},
	{Key: "collective_protection", Name: "Collective Protection"},
	{Key: "ppe", Name: "Personal Protective Equipment"},
	{Key: "work_at_height", Name: "Work at Height"},
	{Key: "electrical", Name: "Electrical Installations"},
	{Key: "machinery", Name: "Machinery and Equipment"},
	{Key: "fire_prevention", Name: "Fire Prevention"},
}

// Questions is the full checklist, grouped by category in category order.
var Questions = []SafetyQuestion{
	{ID: "doc-01", Category: "documentation", Question: "Work permits and licenses are available and valid on site", Weight: 3},
	{ID: "doc-02", Category: "documentation", Question: "Risk assessment for current activities is documented and signed", Weight: 3},
	{ID: "doc-03", Category: "documentation", Question: "Daily safety briefing records are up to date", Weight: 2},

	{ID: "hk-01", Category: "housekeeping", Question: "Access routes and walkways are clear of debris and materials", Weight: 2},
	{ID: "hk-02", Category: "housekeeping", Question: "Materials are stored in stable stacks within designated areas", Weight: 2},
	{ID: "hk-03", Category: "housekeeping", Question: "Waste is segregated and removed regularly", Weight: 1},

	{ID: "cp-01", Category: "collective_protection", Question: "Floor openings and shafts are covered or guarded", Weight: 3},
	{ID: "cp-02", Category: "collective_protection", Question: "Perimeter guardrails are installed at all exposed edges", Weight: 3},
	{ID: "cp-03", Category: "collective_protection", Question: "Safety nets are installed and in good condition where required", Weight: 2},

	{ID: "ppe-01", Category: "ppe", Question: "All workers wear helmets and safety footwear", Weight: 3},
	{ID: "ppe-02", Category: "ppe", Question: "Task-specific PPE (gloves, goggles, hearing protection) is in use", Weight: 2},
	{ID: "ppe-03", Category: "ppe", Question: "PPE is in good condition and within service life", Weight: 1},

	{ID: "wh-01", Category: "work_at_height", Question: "Scaffolds are complete, tagged and inspected", Weight: 3},
	{ID: "wh-02", Category: "work_at_height", Question: "Workers at height use harnesses anchored to suitable points", Weight: 3},
	{ID: "wh-03", Category: "work_at_height", Question: "Ladders are secured and extend above landing points", Weight: 2},

	{ID: "el-01", Category: "electrical", Question: "Temporary electrical panels are closed, labeled and grounded", Weight: 3},
	{ID: "el-02", Category: "electrical", Question: "Cables are protected from mechanical damage and moisture", Weight: 2},
	{ID: "el-03", Category: "electrical", Question: "Residual current devices are installed and tested", Weight: 2},

	{ID: "mq-01", Category: "machinery", Question: "Machine guards are in place on rotating and cutting equipment", Weight: 3},
	{ID: "mq-02", Category: "machinery", Question: "Lifting equipment has valid inspection certificates", Weight: 2},
	{ID: "mq-03", Category: "machinery", Question: "Operators are trained and authorized for their equipment", Weight: 2},

	{ID: "fp-01", Category: "fire_prevention", Question: "Fire extinguishers are accessible, signed and within inspection date", Weight: 2},
	{ID: "fp-02", Category: "fire_prevention", Question: "Flammable materials are stored away from ignition sources", Weight: 2},
	{ID: "fp-03", Category: "fire_prevention", Question: "Emergency exits and assembly points are marked and unobstructed", Weight: 2},
}

// MaxQuestionScore is the top of the 1..5 answer scale.
const MaxQuestionScore = 5

// QuestionByID returns the catalog question with the given id.
func QuestionByID(id string) (SafetyQuestion, bool) {
	for _, q := range Questions {
		if q.ID == id {
			return q, true
		}
	}
	return SafetyQuestion{}, false
}

// QuestionsByCategory returns the catalog questions of one category, in
// catalog order.
func QuestionsByCategory(categoryKey string) []SafetyQuestion {
	var out []SafetyQuestion
	for _, q := range Questions {
		if q.Category == categoryKey {
			out = append(out, q)
		}
	}
	return out
}

// CategoryByKey returns the category entry for a key.
func CategoryByKey(key string) (Category, bool) {
	for _, c := range Categories {
		if c.Key == key {
			return c, true
		}
	}
	return Category{}, false
}

// CategoryIndex returns the zero-based position of a category key in report
// order, or -1 if the key is unknown.
func CategoryIndex(key string) int {
	for i, c := range Categories {
		if c.Key == key {
			return i
		}
	}
	return -1
}

// TotalQuestions returns the checklist length.
func TotalQuestions() int {
	return len(Questions)
}
