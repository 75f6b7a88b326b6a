package authority

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"report-console/internal/models"

	"github.com/gin-gonic/gin"
)

// API holds the handlers of the backend.
type API struct {
	store   Store
	tokens  *Tokens
	revoker Revoker
}

func NewAPI(store Store, tokens *Tokens, revoker Revoker) *API {
	return &API{store: store, tokens: tokens, revoker: revoker}
}

// audit journals a mutation by the caller. A failed write is logged only.
func (a *API) audit(c *gin.Context, entity, entityID, action, details string) {
	cl := claimsFrom(c)
	err := a.store.Audit(c.Request.Context(), models.AuditEntry{
		ActorID:  cl.Subject,
		Actor:    cl.Username,
		Entity:   entity,
		EntityID: entityID,
		Action:   action,
		Details:  details,
	})
	if err != nil {
		slog.Warn("audit write failed", "entity", entity, "entity_id", entityID, "action", action, "error", err)
	}
}

// patchFields keeps the allowed string keys of a merge-patch body.
func patchFields(body map[string]any, allowed map[string]bool) (map[string]any, error) {
	out := make(map[string]any, len(body))
	for k, v := range body {
		if !allowed[k] {
			continue
		}
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("field %s must be a string", k)
		}
		out[k] = s
	}
	return out, nil
}

var deliveryColumns = []string{
	"expected_delivery_period",
	"expected_delivery_date",
	"expected_contract_period",
	"contract_start_date",
	"contract_end_date",
	"delivery_address",
	"special_requirements",
}

func columnSet(base ...string) map[string]bool {
	set := make(map[string]bool, len(base)+len(deliveryColumns))
	for _, k := range base {
		set[k] = true
	}
	for _, k := range deliveryColumns {
		set[k] = true
	}
	return set
}

var (
	projectColumns = columnSet("p_name", "contact_name", "contact_phone", "contact_email", "owner", "remark")
	stockColumns   = columnSet("stock_name", "contact_name", "contact_phone", "contact_email", "owner", "remark")
)

// checkItems returns a message for the first invalid batch row.
func checkItems(items []models.EquipmentItem) string {
	if len(items) == 0 {
		return "equipments must not be empty"
	}
	for i, it := range items {
		if strings.TrimSpace(it.PartNumber) == "" {
			return fmt.Sprintf("equipments[%d]: part_number is required", i)
		}
		if it.Quantity < 1 {
			return fmt.Sprintf("equipments[%d]: quantity must be positive", i)
		}
	}
	return ""
}

func itemCount(items []models.EquipmentItem) string {
	return fmt.Sprintf("%d items", len(items))
}

// keys lists the updated columns for the audit trail.
func keys(fields map[string]any) string {
	out := make([]string, 0, len(fields))
	for k := range fields {
		out = append(out, k)
	}
	sort.Strings(out)
	return strings.Join(out, ",")
}
