package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/user-directory/internal/application/dto"
	"github.com/jhoicas/user-directory/internal/application/ports"
)

// RosterUseCase exporta la vista proyectada a PDF.
type RosterUseCase struct {
	users *UserUseCase
	pdf   ports.RosterPDFGenerator
	title string
}

// NewRosterUseCase construye el caso de uso. title encabeza el documento.
func NewRosterUseCase(users *UserUseCase, pdf ports.RosterPDFGenerator, title string) *RosterUseCase {
	if title == "" {
		title = "Directorio de usuarios"
	}
	return &RosterUseCase{users: users, pdf: pdf, title: title}
}

// ExportPDF genera el PDF con la misma búsqueda y orden que List.
func (uc *RosterUseCase) ExportPDF(ctx context.Context, q dto.UserListQuery) ([]byte, error) {
	st := uc.users.store.Snapshot()
	view := uc.users.projector.Project(st.Users, q.Search, uc.users.sortFor(q.Sort))
	out, err := uc.pdf.GenerateRosterPDF(ctx, uc.title, view)
	if err != nil {
		return nil, fmt.Errorf("exportar directorio: %w", err)
	}
	return out, nil
}
