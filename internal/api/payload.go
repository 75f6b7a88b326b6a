package api

// field is one wire key and the value it would carry.
type field struct {
	key   string
	value string
}

// partial keeps only the fields with a non-empty value, so a PATCH never
// sends a key the caller did not fill in.
func partial(fields ...field) map[string]any {
	out := make(map[string]any, len(fields))
	for _, f := range fields {
		if f.value != "" {
			out[f.key] = f.value
		}
	}
	return out
}

// DeliveryInput is the second-stage bundle in Go naming.
type DeliveryInput struct {
	ExpectedDeliveryPeriod string
	ExpectedDeliveryDate   string
	ExpectedContractPeriod string
	ContractStartDate      string
	ContractEndDate        string
	DeliveryAddress        string
	SpecialRequirements    string
}

func (d DeliveryInput) fields() []field {
	return []field{
		{"expected_delivery_period", d.ExpectedDeliveryPeriod},
		{"expected_delivery_date", d.ExpectedDeliveryDate},
		{"expected_contract_period", d.ExpectedContractPeriod},
		{"contract_start_date", d.ContractStartDate},
		{"contract_end_date", d.ContractEndDate},
		{"delivery_address", d.DeliveryAddress},
		{"special_requirements", d.SpecialRequirements},
	}
}

// Payload returns the partial-update body for the bundle alone.
func (d DeliveryInput) Payload() map[string]any {
	return partial(d.fields()...)
}
