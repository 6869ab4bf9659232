package dto

import "time"

// CreateUserRequest entrada para crear un usuario local.
type CreateUserRequest struct {
	Name        string `json:"name" validate:"required"`
	Email       string `json:"email" validate:"required"`
	CompanyName string `json:"company_name"`
}

// EditDraftRequest campos editables de una sesión de edición.
type EditDraftRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required"`
}

// UserListQuery parámetros de la vista proyectada.
type UserListQuery struct {
	Search string `query:"search"`
	Sort   string `query:"sort"`
}

// AddressResponse dirección en respuestas.
type AddressResponse struct {
	Street  string `json:"street"`
	Suite   string `json:"suite"`
	City    string `json:"city"`
	Zipcode string `json:"zipcode"`
}

// UserResponse salida de un usuario.
type UserResponse struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Email       string           `json:"email"`
	CompanyName string           `json:"company_name"`
	Phone       string           `json:"phone,omitempty"`
	Website     string           `json:"website,omitempty"`
	Address     *AddressResponse `json:"address,omitempty"`
	IsActive    *bool            `json:"is_active,omitempty"`
	CreatedAt   *time.Time       `json:"created_at,omitempty"`
	LastLogin   *time.Time       `json:"last_login,omitempty"`
	Origin      string           `json:"origin"`
}

// UserListResponse vista proyectada más el estado del almacén.
type UserListResponse struct {
	Items   []UserResponse `json:"items"`
	Search  string         `json:"search"`
	Sort    string         `json:"sort"`
	Matched int            `json:"matched"`
	StatusResponse
}

// UserDetailResponse detalle de un usuario y de dónde se resolvió.
type UserDetailResponse struct {
	User        UserResponse `json:"user"`
	Source      string       `json:"source"` // store | remote
	AddressLine string       `json:"address_line,omitempty"`
}

// DeleteUserResponse resultado del borrado confirmado o cancelado.
type DeleteUserResponse struct {
	ID        string `json:"id"`
	Confirmed bool   `json:"confirmed"`
	Deleted   bool   `json:"deleted"`
}

// EditSessionResponse estado de una sesión de edición.
type EditSessionResponse struct {
	SessionID string           `json:"session_id"`
	UserID    string           `json:"user_id"`
	State     string           `json:"state"`
	Draft     EditDraftRequest `json:"draft"`
}
