package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateCompanyRequest alta de empresa.
type CreateCompanyRequest struct {
	Name    string          `json:"name"`
	NIT     string          `json:"nit"`
	Address string          `json:"address"`
	Phone   string          `json:"phone"`
	Email   string          `json:"email"`
	Sector  string          `json:"sector"`
	Capital decimal.Decimal `json:"capital"`
}

// UpdateCompanyRequest edición de empresa (el NIT no se edita).
type UpdateCompanyRequest struct {
	Name    string          `json:"name"`
	Address string          `json:"address"`
	Phone   string          `json:"phone"`
	Email   string          `json:"email"`
	Sector  string          `json:"sector"`
	Capital decimal.Decimal `json:"capital"`
}

// CompanyResponse representación pública de una empresa.
type CompanyResponse struct {
	ID      string          `json:"id"`
	Name    string          `json:"name"`
	NIT     string          `json:"nit"`
	Address string          `json:"address"`
	Phone   string          `json:"phone"`
	Email   string          `json:"email"`
	Sector  string          `json:"sector"`
	Capital decimal.Decimal `json:"capital"`

	CreatedBy string  `json:"created_by"`
	ManagedBy *string `json:"managed_by,omitempty"`
	ApprovalState
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CompanyListResponse listado paginado de empresas.
type CompanyListResponse struct {
	Items []CompanyResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
