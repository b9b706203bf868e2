package lifedata

// LeadStage is the position of a contact in the pipeline, from New through
// Contacted and Processing to Won or Lost.
type LeadStage string

const (
	LeadNew        LeadStage = "New"
	LeadContacted  LeadStage = "Contacted"
	LeadProcessing LeadStage = "Processing"
	LeadWon        LeadStage = "Won"
	LeadLost       LeadStage = "Lost"
)

type Contact struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Company       string    `json:"company,omitempty"`
	Role          string    `json:"role,omitempty"`
	Email         string    `json:"email,omitempty"`
	Phone         string    `json:"phone,omitempty"`
	Stage         LeadStage `json:"stage"`
	DealValue     float64   `json:"dealValue,omitempty"`
	LastContacted string    `json:"lastContacted"`
}

// ContactPatch carries a partial update; nil fields are left untouched.
type ContactPatch struct {
	Name          *string    `json:"name"`
	Company       *string    `json:"company"`
	Role          *string    `json:"role"`
	Email         *string    `json:"email"`
	Phone         *string    `json:"phone"`
	Stage         *LeadStage `json:"stage"`
	DealValue     *float64   `json:"dealValue"`
	LastContacted *string    `json:"lastContacted"`
}

func (c Contact) applyPatch(patch ContactPatch) Contact {
	if patch.Name != nil {
		c.Name = *patch.Name
	}
	if patch.Company != nil {
		c.Company = *patch.Company
	}
	if patch.Role != nil {
		c.Role = *patch.Role
	}
	if patch.Email != nil {
		c.Email = *patch.Email
	}
	if patch.Phone != nil {
		c.Phone = *patch.Phone
	}
	if patch.Stage != nil {
		c.Stage = *patch.Stage
	}
	if patch.DealValue != nil {
		c.DealValue = *patch.DealValue
	}
	if patch.LastContacted != nil {
		c.LastContacted = *patch.LastContacted
	}
	return c
}
