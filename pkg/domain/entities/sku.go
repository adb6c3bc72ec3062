package entities

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// MaterialID identifies a part in the generated history.
type MaterialID string

// MaterialIDForIndex formats the material identifier for a zero-based
// SKU index. Identifiers are 1-based and zero-padded to at least four
// digits, e.g. index 0 becomes SKU-0001.
func MaterialIDForIndex(index int) MaterialID {
	return MaterialID(fmt.Sprintf("SKU-%04d", index+1))
}

// SKU is one synthesized part: its demand profile plus the purchasing
// attributes exported in the catalog.
type SKU struct {
	Index        int
	ID           MaterialID
	Category     Category
	Params       ParameterSet
	Aging        AgingProfile
	UnitCost     decimal.Decimal
	LeadTimeDays int
}
