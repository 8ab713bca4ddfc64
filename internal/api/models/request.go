package models

// LineItemRequest is one consumption row in an API request.
type LineItemRequest struct {
	Carrier   string  `json:"carrier" binding:"required"`
	AnnualKWh float64 `json:"annual_kwh" binding:"required"`
	UnitPrice float64 `json:"unit_price"`
}

// ScenarioRequest describes one projection scenario. Fields are optional
// at the binding level so an alternative scenario can stay sparse and
// inherit from the base; the model layer validates the resolved request.
type ScenarioRequest struct {
	Name         string             `json:"name,omitempty"`
	Preset       string             `json:"preset,omitempty"`
	StartYear    int                `json:"start_year"`
	HorizonYears int                `json:"horizon_years"`
	Bill         []LineItemRequest  `json:"bill,omitempty"`
	Rates        map[string]float64 `json:"rates,omitempty"`
}

// ProjectRequest is the body for POST /api/v1/project.
type ProjectRequest struct {
	Scenario ScenarioRequest `json:"scenario" binding:"required"`
	Options  ProjectOptions  `json:"options,omitempty"`
}

// ProjectOptions contains optional projection parameters.
type ProjectOptions struct {
	IncludeRows   bool `json:"include_rows,omitempty"`   // default: false
	IncludeShares bool `json:"include_shares,omitempty"` // per-carrier cost shares
}

// CompareRequest is the body for POST /api/v1/project/compare.
// Fields the alternative leaves unset are inherited from the base.
type CompareRequest struct {
	Base        ScenarioRequest `json:"base" binding:"required"`
	Alternative ScenarioRequest `json:"alternative" binding:"required"`
	Options     ProjectOptions  `json:"options,omitempty"`
}
