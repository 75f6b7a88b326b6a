package console

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"report-console/internal/api"
)

type StockInput struct {
	Stock     api.StockInput
	Equipment []api.EquipmentInput
}

// SubmitStock creates a complete stock report in one call, then attaches
// its equipment with the same non-fatal policy as projects.
func SubmitStock(ctx context.Context, input StockInput, stocks StockCreator) (SubmitResult, error) {
	in := input.Stock
	in.Name = strings.TrimSpace(in.Name)
	in.ContactName = strings.TrimSpace(in.ContactName)
	if in.Name == "" {
		return SubmitResult{}, ErrNameRequired
	}
	if in.ContactName == "" {
		return SubmitResult{}, ErrContactRequired
	}

	id, err := stocks.CreateStock(ctx, in)
	if err != nil {
		return SubmitResult{}, fmt.Errorf("create stock: %w", err)
	}
	res := SubmitResult{ID: id}
	slog.Info("stock_event", "event", "created", "stock_id", id, "equipment", len(input.Equipment))

	if len(input.Equipment) == 0 {
		return res, nil
	}
	if err := stocks.CreateStockEquipmentBatch(ctx, id, input.Equipment); err != nil {
		slog.Warn("stock_event", "event", "equipment_failed", "stock_id", id, "err", err)
		res.EquipmentWarning = err
	}
	return res, nil
}
