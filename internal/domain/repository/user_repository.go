package repository

import "github.com/jhoicas/user-directory/internal/domain/entity"

// UserReader lectura del almacén de usuarios.
type UserReader interface {
	Snapshot() entity.UserState
	FindByID(id string) (entity.User, bool)
}

// UserWriter mutaciones enumeradas del almacén. Nadie fuera del almacén
// modifica la colección directamente.
type UserWriter interface {
	ReplaceAll(users []entity.User)
	Add(user entity.User) (entity.User, error)
	Update(user entity.User) bool
	Remove(id string) bool
	SetLoading(loading bool)
	SetError(msg string)
}

// UserStore define el puerto del almacén en memoria de la sesión (DIP).
type UserStore interface {
	UserReader
	UserWriter
}
