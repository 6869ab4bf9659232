package ports

import (
	"context"

	"github.com/jhoicas/user-directory/internal/application/dto"
	"github.com/jhoicas/user-directory/internal/domain/entity"
)

// UserLoader puerto de salida hacia la colección remota de usuarios.
// Un "no encontrado" remoto no se distingue de un fallo genérico.
type UserLoader interface {
	// FetchAll obtiene la colección completa.
	FetchAll(ctx context.Context) ([]dto.RemoteUser, error)
	// FetchByID obtiene un único registro por identificador.
	FetchByID(ctx context.Context, id string) (*dto.RemoteUser, error)
}

// Confirmer capacidad de confirmación para operaciones destructivas:
// se presenta un mensaje y se obtiene sí/no.
type Confirmer interface {
	Confirm(ctx context.Context, prompt string) (bool, error)
}

// ConfirmFunc adapta una función a Confirmer.
type ConfirmFunc func(ctx context.Context, prompt string) (bool, error)

// Confirm implementa Confirmer.
func (f ConfirmFunc) Confirm(ctx context.Context, prompt string) (bool, error) {
	return f(ctx, prompt)
}

// RosterPDFGenerator puerto para renderizar la vista proyectada a PDF.
type RosterPDFGenerator interface {
	GenerateRosterPDF(ctx context.Context, title string, users []entity.User) ([]byte, error)
}
