package entity

import (
	"strconv"
	"strings"
	"time"
)

// LocalIDThreshold ids numéricos por encima de este valor pertenecen al espacio local.
const LocalIDThreshold = 1000

// Origin etiqueta de procedencia de un registro.
type Origin string

const (
	OriginRemote Origin = "remote"
	OriginLocal  Origin = "local"
)

// User representa un usuario del directorio durante la sesión actual.
type User struct {
	ID      string
	Name    string
	Email   string
	Company Company
	Phone   string
	Website string
	Address *Address // nil = sin dirección

	// Contabilidad local: nil en registros remotos.
	IsActive  *bool
	CreatedAt *time.Time
	LastLogin *time.Time

	Origin Origin
}

// IsLocal indica si el registro fue creado en esta sesión.
func (u User) IsLocal() bool {
	return u.Origin == OriginLocal
}

// Clone copia el usuario sin compartir punteros con el original.
func (u User) Clone() User {
	out := u
	if u.Address != nil {
		a := *u.Address
		out.Address = &a
	}
	if u.IsActive != nil {
		v := *u.IsActive
		out.IsActive = &v
	}
	if u.CreatedAt != nil {
		t := *u.CreatedAt
		out.CreatedAt = &t
	}
	if u.LastLogin != nil {
		t := *u.LastLogin
		out.LastLogin = &t
	}
	return out
}

// HasRequiredFields name y email no vacíos tras recortar espacios.
func (u User) HasRequiredFields() bool {
	return strings.TrimSpace(u.Name) != "" && strings.TrimSpace(u.Email) != ""
}

// ClassifyOrigin deduce la procedencia de un registro sin etiqueta: tiene
// createdAt o su id numérico supera LocalIDThreshold => local.
func ClassifyOrigin(id string, createdAt *time.Time) Origin {
	if createdAt != nil {
		return OriginLocal
	}
	if n, err := strconv.ParseInt(strings.TrimSpace(id), 10, 64); err == nil && n > LocalIDThreshold {
		return OriginLocal
	}
	return OriginRemote
}
