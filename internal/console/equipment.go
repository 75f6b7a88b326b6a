package console

import (
	"fmt"
	"strconv"
	"strings"

	"report-console/internal/api"
)

// EquipmentRow is one row of the equipment form as typed by the user.
type EquipmentRow struct {
	PartNumber  string
	Quantity    string
	Description string
}

// EquipmentRows is the editable row list of a form. It never drops below
// one row.
type EquipmentRows struct {
	Rows []EquipmentRow
}

func NewEquipmentRows(parts, quantities, descriptions []string) EquipmentRows {
	var rows EquipmentRows
	for i := range parts {
		rows.Rows = append(rows.Rows, EquipmentRow{
			PartNumber:  parts[i],
			Quantity:    at(quantities, i),
			Description: at(descriptions, i),
		})
	}
	if len(rows.Rows) == 0 {
		rows.Add()
	}
	return rows
}

func (r *EquipmentRows) Add() {
	r.Rows = append(r.Rows, EquipmentRow{})
}

// Remove drops row i unless it is the last remaining one.
func (r *EquipmentRows) Remove(i int) {
	if !r.CanRemove() || i < 0 || i >= len(r.Rows) {
		return
	}
	r.Rows = append(r.Rows[:i], r.Rows[i+1:]...)
}

// CanRemove controls whether the remove control is shown.
func (r EquipmentRows) CanRemove() bool {
	return len(r.Rows) > 1
}

// CollectEquipment turns the parallel form arrays into batch items. Rows
// missing a part number or a quantity are skipped; a quantity that is not a
// positive integer is an error naming the row.
func CollectEquipment(parts, quantities, descriptions []string) ([]api.EquipmentInput, error) {
	var items []api.EquipmentInput
	for i := range parts {
		part := strings.TrimSpace(parts[i])
		qty := strings.TrimSpace(at(quantities, i))
		if part == "" || qty == "" {
			continue
		}
		n, err := strconv.Atoi(qty)
		if err != nil || n < 1 {
			return nil, fmt.Errorf("equipment row %d: quantity must be a positive whole number, got %q", i+1, qty)
		}
		items = append(items, api.EquipmentInput{
			PartNumber:  part,
			Quantity:    n,
			Description: strings.TrimSpace(at(descriptions, i)),
		})
	}
	return items, nil
}

func at(s []string, i int) string {
	if i < len(s) {
		return s[i]
	}
	return ""
}
