package models

// Equipment belongs to exactly one project.
type Equipment struct {
	ID          string `json:"id"`
	ProjectID   string `json:"p_id"`
	PartNumber  string `json:"part_number"`
	Quantity    int    `json:"quantity"`
	Description string `json:"description"`
}

// StockEquipment belongs to exactly one stock record.
type StockEquipment struct {
	ID          string `json:"id"`
	StockID     string `json:"s_id"`
	PartNumber  string `json:"part_number"`
	Quantity    int    `json:"quantity"`
	Description string `json:"description"`
}

// EquipmentItem is one row of a batch create.
type EquipmentItem struct {
	PartNumber  string `json:"part_number"`
	Quantity    int    `json:"quantity"`
	Description string `json:"description"`
}

type EquipmentBatch struct {
	ProjectID  string          `json:"p_id"`
	Equipments []EquipmentItem `json:"equipments"`
}

type StockEquipmentBatch struct {
	StockID    string          `json:"s_id"`
	Equipments []EquipmentItem `json:"equipments"`
}
