package api

import (
	"context"
	"net/http"
	"net/url"

	"report-console/internal/models"
)

// StockInput is a complete single-stage stock report.
type StockInput struct {
	Name         string
	ContactName  string
	ContactPhone string
	ContactEmail string
	Owner        string
	Remark       string
	Delivery     DeliveryInput
}

func (in StockInput) wire() models.NewStock {
	return models.NewStock{
		Name:                   in.Name,
		ContactName:            in.ContactName,
		ContactEmail:           in.ContactEmail,
		ContactPhone:           in.ContactPhone,
		Owner:                  in.Owner,
		ExpectedDeliveryPeriod: in.Delivery.ExpectedDeliveryPeriod,
		ExpectedDeliveryDate:   in.Delivery.ExpectedDeliveryDate,
		ExpectedContractPeriod: in.Delivery.ExpectedContractPeriod,
		ContractStartDate:      in.Delivery.ContractStartDate,
		ContractEndDate:        in.Delivery.ContractEndDate,
		DeliveryAddress:        in.Delivery.DeliveryAddress,
		SpecialRequirements:    in.Delivery.SpecialRequirements,
		Remark:                 in.Remark,
	}
}

// StockUpdate is a partial update: empty fields are left untouched.
type StockUpdate StockInput

func (u StockUpdate) Payload() map[string]any {
	fields := []field{
		{"stock_name", u.Name},
		{"contact_name", u.ContactName},
		{"contact_phone", u.ContactPhone},
		{"contact_email", u.ContactEmail},
		{"owner", u.Owner},
		{"remark", u.Remark},
	}
	return partial(append(fields, u.Delivery.fields()...)...)
}

func (c *Client) CreateStock(ctx context.Context, in StockInput) (string, error) {
	return c.create(ctx, "/stocks", in.wire())
}

func (c *Client) ListStocks(ctx context.Context, page, limit int) (models.StockList, error) {
	var out models.StockList
	err := c.get(ctx, "/stocks", pageQuery(page, limit), &out)
	return out, err
}

func (c *Client) GetStock(ctx context.Context, id string) (models.Stock, error) {
	var out models.Stock
	err := c.get(ctx, "/stocks/"+url.PathEscape(id), nil, &out)
	return out, err
}

func (c *Client) UpdateStock(ctx context.Context, id string, u StockUpdate) error {
	return c.send(ctx, http.MethodPatch, "/stocks/"+url.PathEscape(id), u.Payload(), nil)
}

func (c *Client) DeleteStock(ctx context.Context, id string) error {
	return c.send(ctx, http.MethodDelete, "/stocks/"+url.PathEscape(id), nil, nil)
}

func (c *Client) CreateStockEquipmentBatch(ctx context.Context, stockID string, items []EquipmentInput) error {
	return c.send(ctx, http.MethodPost, "/stock-equipments/batch", models.StockEquipmentBatch{
		StockID:    stockID,
		Equipments: equipmentItems(items),
	}, nil)
}

func (c *Client) ListStockEquipments(ctx context.Context, stockID string) ([]models.StockEquipment, error) {
	var out []models.StockEquipment
	err := c.get(ctx, "/stock-equipments/stock/"+url.PathEscape(stockID), nil, &out)
	return out, err
}
