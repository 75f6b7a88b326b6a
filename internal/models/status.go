package models

type Status string

const (
	StatusStep1     Status = "step1"
	StatusStep2     Status = "step2"
	StatusCompleted Status = "completed"
)

// DeriveStatus computes a project's stage from its delivery date and period:
// both present is completed, neither is step1, anything in between is step2.
func DeriveStatus(d Delivery) Status {
	hasDate := d.ExpectedDeliveryDate != ""
	hasPeriod := d.ExpectedDeliveryPeriod != ""
	switch {
	case hasDate && hasPeriod:
		return StatusCompleted
	case hasDate || hasPeriod:
		return StatusStep2
	default:
		return StatusStep1
	}
}

func (s Status) Label() string {
	switch s {
	case StatusStep2:
		return "Stage 2"
	case StatusCompleted:
		return "Completed"
	default:
		return "Stage 1"
	}
}
