package memory

import (
	"strings"
	"sync"

	"github.com/jonboulle/clockwork"

	"github.com/jhoicas/user-directory/internal/domain"
	"github.com/jhoicas/user-directory/internal/domain/entity"
	"github.com/jhoicas/user-directory/internal/domain/repository"
)

var _ repository.UserStore = (*UserStore)(nil)

// UserStore almacén autoritativo de usuarios para la sesión actual.
// Un único escritor a la vez; las lecturas devuelven copias.
type UserStore struct {
	mu    sync.RWMutex
	clock clockwork.Clock
	state entity.UserState
}

// NewUserStore construye el almacén vacío. Con clock nil usa el reloj real.
func NewUserStore(clock clockwork.Clock) *UserStore {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &UserStore{clock: clock}
}

// ReplaceAll sobrescribe la colección completa. Los ids repetidos se descartan
// (gana el primero) y los registros sin etiqueta de origen se clasifican aquí.
func (s *UserStore) ReplaceAll(users []entity.User) {
	list := make([]entity.User, 0, len(users))
	seen := make(map[string]struct{}, len(users))
	for _, u := range users {
		if _, dup := seen[u.ID]; dup {
			continue
		}
		seen[u.ID] = struct{}{}
		u = u.Clone()
		if u.Origin == "" {
			u.Origin = entity.ClassifyOrigin(u.ID, u.CreatedAt)
		}
		list = append(list, u)
	}

	now := s.clock.Now()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Users = list
	s.state.TotalCount = len(list)
	s.state.LastUpdated = &now
}

// Add inserta una copia sellada (activo, createdAt=ahora, sin lastLogin) al inicio.
func (s *UserStore) Add(user entity.User) (entity.User, error) {
	if !user.HasRequiredFields() || strings.TrimSpace(user.ID) == "" {
		return entity.User{}, domain.ErrInvalidInput
	}

	stamped := user.Clone()
	active := true
	created := s.clock.Now()
	stamped.IsActive = &active
	stamped.CreatedAt = &created
	stamped.LastLogin = nil
	stamped.Origin = entity.OriginLocal

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.indexOf(stamped.ID) >= 0 {
		return entity.User{}, domain.ErrDuplicate
	}
	list := make([]entity.User, 0, len(s.state.Users)+1)
	list = append(list, stamped)
	list = append(list, s.state.Users...)
	s.state.Users = list
	s.state.TotalCount = len(list)
	return stamped.Clone(), nil
}

// Update reemplaza por completo el primer registro con el mismo id.
// Devuelve false (sin error) si no existe.
func (s *UserStore) Update(user entity.User) bool {
	u := user.Clone()
	if u.Origin == "" {
		u.Origin = entity.ClassifyOrigin(u.ID, u.CreatedAt)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(u.ID)
	if i < 0 {
		return false
	}
	s.state.Users[i] = u
	return true
}

// Remove elimina el registro con ese id; false si no existía.
func (s *UserStore) Remove(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(id)
	if i < 0 {
		return false
	}
	list := make([]entity.User, 0, len(s.state.Users)-1)
	list = append(list, s.state.Users[:i]...)
	list = append(list, s.state.Users[i+1:]...)
	s.state.Users = list
	s.state.TotalCount = len(list)
	return true
}

// SetLoading marca o desmarca la petición en curso.
func (s *UserStore) SetLoading(loading bool) {
	s.mu.Lock()
	s.state.Loading = loading
	s.mu.Unlock()
}

// SetError fija el último error; "" lo limpia.
func (s *UserStore) SetError(msg string) {
	s.mu.Lock()
	s.state.Error = msg
	s.mu.Unlock()
}

// Snapshot devuelve una copia profunda del estado.
func (s *UserStore) Snapshot() entity.UserState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := s.state
	out.Users = make([]entity.User, len(s.state.Users))
	for i, u := range s.state.Users {
		out.Users[i] = u.Clone()
	}
	if s.state.LastUpdated != nil {
		t := *s.state.LastUpdated
		out.LastUpdated = &t
	}
	return out
}

// FindByID busca por igualdad de cadena sobre el id.
func (s *UserStore) FindByID(id string) (entity.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := s.indexOf(id)
	if i < 0 {
		return entity.User{}, false
	}
	return s.state.Users[i].Clone(), true
}

// indexOf debe llamarse con s.mu tomado.
func (s *UserStore) indexOf(id string) int {
	for i := range s.state.Users {
		if s.state.Users[i].ID == id {
			return i
		}
	}
	return -1
}
