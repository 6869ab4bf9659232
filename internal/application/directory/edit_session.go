package directory

import (
	"strings"
	"sync"

	"github.com/jhoicas/user-directory/internal/domain"
	"github.com/jhoicas/user-directory/internal/domain/entity"
	"github.com/jhoicas/user-directory/internal/domain/repository"
)

// EditState estado de la sesión de edición.
type EditState string

const (
	EditIdle      EditState = "idle"
	EditEditing   EditState = "editing"
	EditSaved     EditState = "saved"
	EditCancelled EditState = "cancelled"
)

// EditDraft campos en edición, separados del registro autoritativo.
type EditDraft struct {
	Name  string
	Email string
}

// EditSession máquina de estados Idle -> Editing -> {Saved | Cancelled}.
type EditSession struct {
	ID string

	mu       sync.Mutex
	state    EditState
	original entity.User
	draft    EditDraft
}

// NewEditSession crea una sesión en estado Idle.
func NewEditSession(id string) *EditSession {
	return &EditSession{ID: id, state: EditIdle}
}

// State estado actual.
func (s *EditSession) State() EditState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Draft copia del borrador actual.
func (s *EditSession) Draft() EditDraft {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draft
}

// UserID id del registro en edición ("" si aún no comenzó).
func (s *EditSession) UserID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.original.ID
}

// Begin pasa de Idle a Editing con el borrador sembrado desde user.
func (s *EditSession) Begin(user entity.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != EditIdle {
		return domain.ErrInvalidTransition
	}
	s.original = user.Clone()
	s.draft = EditDraft{Name: user.Name, Email: user.Email}
	s.state = EditEditing
	return nil
}

// SetDraft reemplaza el borrador; solo en Editing.
func (s *EditSession) SetDraft(d EditDraft) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != EditEditing {
		return domain.ErrInvalidTransition
	}
	s.draft = d
	return nil
}

// Commit valida el borrador, lo aplica sobre el original con store.Update y
// pasa a Saved. Un borrador inválido deja la sesión en Editing. applied es
// false si el registro ya no existía (Update fue un no-op).
func (s *EditSession) Commit(store repository.UserWriter) (updated entity.User, applied bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != EditEditing {
		return entity.User{}, false, domain.ErrInvalidTransition
	}
	name := strings.TrimSpace(s.draft.Name)
	email := strings.TrimSpace(s.draft.Email)
	if name == "" || email == "" {
		return entity.User{}, false, domain.ErrInvalidInput
	}

	updated = s.original.Clone()
	updated.Name = name
	updated.Email = email
	applied = store.Update(updated)
	s.state = EditSaved
	return updated, applied, nil
}

// Cancel pasa de Editing a Cancelled sin tocar el almacén.
func (s *EditSession) Cancel() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != EditEditing {
		return domain.ErrInvalidTransition
	}
	s.state = EditCancelled
	return nil
}
