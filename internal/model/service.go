package model

import "github.com/shopspring/decimal"

// Service is an optional extra a guest can attach to a reservation, such as
// breakfast, laundry or an airport transfer.  Its unit cost is billed per
// attached quantity.  This struct corresponds to a row in the `services`
// table.
//
// Fields:
//  ID          primary key identifier, assigned by the store on first save.
//  Name        name of the service.
//  Description free-form description, if recorded.
//  UnitCost    cost per unit, non-negative decimal money value.
type Service struct {
	ID          uint64          `json:"id"`                    // services.id
	Name        string          `json:"name"`                  // services.name
	Description *string         `json:"description,omitempty"` // services.description (nullable)
	UnitCost    decimal.Decimal `json:"unit_cost"`             // services.unit_cost DECIMAL(10,2)
}
