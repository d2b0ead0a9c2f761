package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Errores de dominio (sin dependencias externas). Las fallas de autorización y de la
// máquina de estados son deterministas y se devuelven como valores, nunca como panics.
var (
	ErrUnauthenticated   = errors.New("no autenticado")
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrUserNotFound      = errors.New("usuario no encontrado")
	ErrInvalidTransition = errors.New("el registro no está pendiente de aprobación")
	ErrNotFoundOrRead    = errors.New("notificación no encontrada o ya leída")
	ErrUnauthorized      = errors.New("no autorizado")
	ErrForbidden         = errors.New("acceso denegado")
)

// AuthzDeniedError el guard rechazó la acción; Reason es el motivo exacto para el usuario.
type AuthzDeniedError struct {
	Reason string
}

func (e *AuthzDeniedError) Error() string {
	return "autorización denegada: " + e.Reason
}

// Denied construye un AuthzDeniedError.
func Denied(reason string) error {
	return &AuthzDeniedError{Reason: reason}
}

// ValidationError entrada inválida o faltante; Fields mapea campo -> motivo.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for f, m := range e.Fields {
		parts = append(parts, f+": "+m)
	}
	return "validación: " + strings.Join(parts, "; ")
}

// Invalid construye un ValidationError de un solo campo.
func Invalid(field, msg string) error {
	return &ValidationError{Fields: map[string]string{field: msg}}
}

// DuplicateError violación de constraint único en persistencia; Field nombra el campo.
type DuplicateError struct {
	Field string
}

func (e *DuplicateError) Error() string {
	return "valor duplicado en campo " + e.Field
}

// UpstreamError error inesperado de almacenamiento o colaborador externo.
// Se loguea con detalle pero al caller solo se expone el tipo.
type UpstreamError struct {
	Err error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("fallo de infraestructura: %v", e.Err)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

// Upstream envuelve un error de infraestructura; nil pasa de largo.
func Upstream(err error) error {
	if err == nil {
		return nil
	}
	return &UpstreamError{Err: err}
}
