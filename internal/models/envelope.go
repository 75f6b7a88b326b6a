package models

import "encoding/json"

// Envelope wraps every backend response. Body is endpoint specific: a raw
// identifier on create, a list wrapper on list, an array for equipment.
type Envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message,omitempty"`
	Body    json.RawMessage `json:"body,omitempty"`
}

// HasBody reports whether the envelope carries a non-null body.
func (e *Envelope) HasBody() bool {
	return len(e.Body) > 0 && string(e.Body) != "null"
}
