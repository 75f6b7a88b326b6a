package models

// Stock is a single-stage record: base and delivery fields arrive together.
type Stock struct {
	ID           string `json:"s_id"`
	Name         string `json:"stock_name"`
	ContactName  string `json:"contact_name"`
	ContactPhone string `json:"contact_phone"`
	ContactEmail string `json:"contact_email"`
	Owner        string `json:"owner"`
	Remark       string `json:"remark"`
	CreatedTime  string `json:"created_time,omitempty"`
	UpdatedTime  string `json:"updated_time,omitempty"`
	Delivery
}

// NewStock is the creation payload; every field is sent, optional ones as
// empty strings.
type NewStock struct {
	Name                   string `json:"stock_name"`
	ContactName            string `json:"contact_name"`
	ContactEmail           string `json:"contact_email"`
	ContactPhone           string `json:"contact_phone"`
	Owner                  string `json:"owner"`
	ExpectedDeliveryPeriod string `json:"expected_delivery_period"`
	ExpectedDeliveryDate   string `json:"expected_delivery_date"`
	ExpectedContractPeriod string `json:"expected_contract_period"`
	ContractStartDate      string `json:"contract_start_date"`
	ContractEndDate        string `json:"contract_end_date"`
	DeliveryAddress        string `json:"delivery_address"`
	SpecialRequirements    string `json:"special_requirements"`
	Remark                 string `json:"remark"`
}

type StockList struct {
	Stocks []Stock `json:"stocks"`
	Total  int64   `json:"total"`
}
