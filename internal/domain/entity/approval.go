package entity

import "time"

// RecordKind identifica el tipo de registro aprobable. Cada kind tiene su tag de
// notificación y un rango equivalente en la jerarquía de roles.
type RecordKind string

// Kinds de registros aprobables.
const (
	KindEmpresa  RecordKind = "empresa"
	KindAgente   RecordKind = "agente_territorial"
	KindBolsa    RecordKind = "bolsa_empleo"
	KindReporter RecordKind = "reportero"
	KindUsuario  RecordKind = "usuario"
)

// kindRanks rango equivalente de cada kind: el creador debe superar este rango
// estrictamente para poder crear el registro.
var kindRanks = map[RecordKind]int{
	KindEmpresa:  1,
	KindReporter: 1,
	KindBolsa:    2,
	KindAgente:   3,
}

// Rank devuelve el rango equivalente del kind (0 si no aplica, p. ej. usuario,
// cuyo rango depende del rol solicitado).
func (k RecordKind) Rank() int {
	return kindRanks[k]
}

// IsValid indica si el kind pertenece a la enumeración.
func (k RecordKind) IsValid() bool {
	switch k {
	case KindEmpresa, KindAgente, KindBolsa, KindReporter, KindUsuario:
		return true
	}
	return false
}

// Approval campos de aprobación compartidos por todo registro aprobable.
// Invariante: IsApproved y PendingApproval nunca son true a la vez; si ambos son
// false y ApprovedBy es nil, el registro fue auto-aprobado por un creador admin+.
type Approval struct {
	IsApproved      bool
	PendingApproval bool
	ApprovedBy      *string
	ApprovedAt      *time.Time
}

// AutoApproved estado inicial para creadores con rango admin o superior.
func AutoApproved() Approval {
	return Approval{IsApproved: true, PendingApproval: false}
}

// PendingInitial estado inicial para creadores por debajo del umbral de aprobación.
func PendingInitial() Approval {
	return Approval{IsApproved: false, PendingApproval: true}
}

// PendingRecord resumen de un registro en estado pendiente, para el listado de aprobadores.
type PendingRecord struct {
	Kind      RecordKind
	ID        string
	Name      string
	CreatedBy string
	CreatedAt time.Time
}
