package models

// Delivery is the second-stage bundle of a project. Stocks carry the same
// fields from creation on.
type Delivery struct {
	ExpectedDeliveryPeriod string `json:"expected_delivery_period,omitempty"`
	ExpectedDeliveryDate   string `json:"expected_delivery_date,omitempty"`
	ExpectedContractPeriod string `json:"expected_contract_period,omitempty"`
	ContractStartDate      string `json:"contract_start_date,omitempty"`
	ContractEndDate        string `json:"contract_end_date,omitempty"`
	DeliveryAddress        string `json:"delivery_address,omitempty"`
	SpecialRequirements    string `json:"special_requirements,omitempty"`
}

// Project as transmitted by the backend.
type Project struct {
	ID           string `json:"p_id"`
	Name         string `json:"p_name"`
	ContactName  string `json:"contact_name"`
	ContactPhone string `json:"contact_phone"`
	ContactEmail string `json:"contact_email"`
	Owner        string `json:"owner"`
	Remark       string `json:"remark"`
	CreatedTime  string `json:"created_time,omitempty"`
	UpdatedTime  string `json:"updated_time,omitempty"`
	Delivery
}

// Status is derived from the delivery bundle, never stored.
func (p Project) Status() Status {
	return DeriveStatus(p.Delivery)
}

// NewProject is the first-stage creation payload. Optional fields are sent
// as empty strings rather than omitted.
type NewProject struct {
	Name         string `json:"p_name"`
	ContactName  string `json:"contact_name"`
	ContactPhone string `json:"contact_phone"`
	ContactEmail string `json:"contact_email"`
	Owner        string `json:"owner"`
	Remark       string `json:"remark"`
}

type ProjectList struct {
	Projects []Project `json:"projects"`
	Total    int64     `json:"total"`
}
