package usecase

import (
	"slices"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/jhoicas/user-directory/internal/application/directory"
	"github.com/jhoicas/user-directory/internal/application/dto"
	"github.com/jhoicas/user-directory/internal/domain"
	"github.com/jhoicas/user-directory/internal/domain/repository"
	"github.com/jhoicas/user-directory/pkg/idgen"
	"github.com/jhoicas/user-directory/pkg/logger"
)

// DefaultMaxOpenSessions tope de sesiones abiertas a la vez.
const DefaultMaxOpenSessions = 128

// EditUseCase administra las sesiones de edición abiertas. Una sesión se
// descarta al guardarse o cancelarse; al superar el tope se descarta la más
// antigua.
type EditUseCase struct {
	store    repository.UserStore
	validate *validator.Validate
	log      *logger.Logger

	mu          sync.Mutex
	sessions    map[string]*directory.EditSession
	order       []string // ids en orden de apertura
	maxSessions int
}

// NewEditUseCase construye el caso de uso.
func NewEditUseCase(store repository.UserStore, log *logger.Logger) *EditUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &EditUseCase{
		store:       store,
		validate:    NewValidator(),
		log:         log.Named("edits"),
		sessions:    make(map[string]*directory.EditSession),
		maxSessions: DefaultMaxOpenSessions,
	}
}

// WithMaxOpenSessions cambia el tope de sesiones abiertas (n <= 0 se ignora).
func (uc *EditUseCase) WithMaxOpenSessions(n int) *EditUseCase {
	if n > 0 {
		uc.mu.Lock()
		uc.maxSessions = n
		uc.mu.Unlock()
	}
	return uc
}

// Begin abre una sesión sobre un usuario del almacén.
func (uc *EditUseCase) Begin(userID string) (*dto.EditSessionResponse, error) {
	user, ok := uc.store.FindByID(userID)
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	s := directory.NewEditSession(idgen.NewKSUID())
	if err := s.Begin(user); err != nil {
		return nil, err
	}

	uc.mu.Lock()
	for len(uc.order) >= uc.maxSessions {
		oldest := uc.order[0]
		uc.order = uc.order[1:]
		delete(uc.sessions, oldest)
		uc.log.Debug().Str("session", oldest).Msg("sesión de edición descartada por tope")
	}
	uc.sessions[s.ID] = s
	uc.order = append(uc.order, s.ID)
	uc.mu.Unlock()

	uc.log.Debug().Str("session", s.ID).Str("user", userID).Msg("sesión de edición abierta")
	return sessionToResponse(s), nil
}

// Draft reemplaza el borrador de la sesión. No valida: el borrador puede
// quedar incompleto hasta el commit.
func (uc *EditUseCase) Draft(sessionID string, req dto.EditDraftRequest) (*dto.EditSessionResponse, error) {
	s, err := uc.session(sessionID)
	if err != nil {
		return nil, err
	}
	if err := s.SetDraft(directory.EditDraft{Name: req.Name, Email: req.Email}); err != nil {
		return nil, err
	}
	return sessionToResponse(s), nil
}

// Commit valida y aplica el borrador. Con un borrador inválido la sesión sigue
// abierta; si el usuario ya no existe devuelve ErrUserNotFound.
func (uc *EditUseCase) Commit(sessionID string) (*dto.UserResponse, error) {
	s, err := uc.session(sessionID)
	if err != nil {
		return nil, err
	}
	updated, applied, err := s.Commit(uc.store)
	if err != nil {
		return nil, err
	}
	uc.drop(sessionID)
	if !applied {
		return nil, domain.ErrUserNotFound
	}
	uc.log.Info().Str("id", updated.ID).Msg("usuario actualizado")
	out := entityToUserResponse(updated)
	return &out, nil
}

// Cancel descarta la sesión sin tocar el almacén.
func (uc *EditUseCase) Cancel(sessionID string) error {
	s, err := uc.session(sessionID)
	if err != nil {
		return err
	}
	if err := s.Cancel(); err != nil {
		return err
	}
	uc.drop(sessionID)
	return nil
}

// Apply abre, rellena y guarda una sesión en un solo paso.
func (uc *EditUseCase) Apply(userID string, req dto.EditDraftRequest) (*dto.UserResponse, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	if err := uc.validate.Struct(req); err != nil {
		return nil, validationError(err)
	}

	began, err := uc.Begin(userID)
	if err != nil {
		return nil, err
	}
	if _, err := uc.Draft(began.SessionID, req); err != nil {
		uc.drop(began.SessionID)
		return nil, err
	}
	out, err := uc.Commit(began.SessionID)
	if err != nil {
		uc.drop(began.SessionID)
		return nil, err
	}
	return out, nil
}

// Open número de sesiones abiertas.
func (uc *EditUseCase) Open() int {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return len(uc.sessions)
}

func (uc *EditUseCase) session(id string) (*directory.EditSession, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	s, ok := uc.sessions[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return s, nil
}

func (uc *EditUseCase) drop(id string) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if _, ok := uc.sessions[id]; !ok {
		return
	}
	delete(uc.sessions, id)
	uc.order = slices.DeleteFunc(uc.order, func(v string) bool { return v == id })
}

func sessionToResponse(s *directory.EditSession) *dto.EditSessionResponse {
	d := s.Draft()
	return &dto.EditSessionResponse{
		SessionID: s.ID,
		UserID:    s.UserID(),
		State:     string(s.State()),
		Draft:     dto.EditDraftRequest{Name: d.Name, Email: d.Email},
	}
}
