package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Company representa una empresa registrada en el portal (registro aprobable).
type Company struct {
	ID        string
	Name      string
	NIT       string // identificación tributaria, única
	Address   string
	Phone     string
	Email     string
	Sector    string
	Capital   decimal.Decimal // capital social declarado (NUMERIC en DB)
	CreatedBy string
	ManagedBy *string
	Approval
	CreatedAt time.Time
	UpdatedAt time.Time
}
