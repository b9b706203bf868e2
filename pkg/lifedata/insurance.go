package lifedata

type InsuranceType string

const (
	InsuranceHealth   InsuranceType = "Health"
	InsuranceTermLife InsuranceType = "Term Life"
	InsuranceMotor    InsuranceType = "Motor"
	InsuranceULIP     InsuranceType = "ULIP/Endowment"
	InsuranceOther    InsuranceType = "Other"
)

type InsurancePolicy struct {
	ID           string        `json:"id"`
	Type         InsuranceType `json:"type"`
	Name         string        `json:"name"`
	PolicyNumber string        `json:"policyNumber"`
	Insurer      string        `json:"insurer"`
	SumAssured   float64       `json:"sumAssured"`
	Premium      float64       `json:"premium"`
	RenewalDate  string        `json:"renewalDate"`
	TPAContact   string        `json:"tpaContact,omitempty"`
	Nominee      string        `json:"nominee,omitempty"`
	IsCorporate  bool          `json:"isCorporate"`
}
