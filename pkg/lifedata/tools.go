package lifedata

type FinancialToolCategory string

const (
	ToolIdentity   FinancialToolCategory = "Identity"
	ToolBanking    FinancialToolCategory = "Banking"
	ToolSalary     FinancialToolCategory = "Salary"
	ToolSafety     FinancialToolCategory = "Safety"
	ToolInvestment FinancialToolCategory = "Investment"
	ToolCredit     FinancialToolCategory = "Credit"
	ToolTax        FinancialToolCategory = "Tax"
	ToolLegacy     FinancialToolCategory = "Legacy"
)

type ToolStatus string

const (
	ToolComplete   ToolStatus = "Complete"
	ToolIncomplete ToolStatus = "Incomplete"
	ToolPending    ToolStatus = "Pending"
)

// FinancialTool is a checklist item in the financial setup. Fields is a
// free-form string map so the dashboard can attach arbitrary labeled values
// (PAN numbers, nominee names) without schema changes.
type FinancialTool struct {
	ID          string                `json:"id"`
	Category    FinancialToolCategory `json:"category"`
	Title       string                `json:"title"`
	Status      ToolStatus            `json:"status"`
	Fields      map[string]string     `json:"fields"`
	LastUpdated string                `json:"lastUpdated"`
	IsBasic     bool                  `json:"isBasic"`
}

// FinancialToolPatch carries a partial update; nil fields are left untouched.
// A non-nil Fields map replaces the whole map.
type FinancialToolPatch struct {
	Title  *string           `json:"title"`
	Status *ToolStatus       `json:"status"`
	Fields map[string]string `json:"fields"`
}

func (t FinancialTool) applyPatch(patch FinancialToolPatch, updatedAt string) FinancialTool {
	if patch.Title != nil {
		t.Title = *patch.Title
	}
	if patch.Status != nil {
		t.Status = *patch.Status
	}
	if patch.Fields != nil {
		fields := make(map[string]string, len(patch.Fields))
		for k, v := range patch.Fields {
			fields[k] = v
		}
		t.Fields = fields
	}
	t.LastUpdated = updatedAt
	return t
}

// ToolCompletion counts complete tools per tier for the readiness score.
func ToolCompletion(tools []FinancialTool) (basicTotal, basicComplete, advancedTotal, advancedComplete int) {
	for _, tool := range tools {
		if tool.IsBasic {
			basicTotal++
			if tool.Status == ToolComplete {
				basicComplete++
			}
		} else {
			advancedTotal++
			if tool.Status == ToolComplete {
				advancedComplete++
			}
		}
	}
	return basicTotal, basicComplete, advancedTotal, advancedComplete
}
