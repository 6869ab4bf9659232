package directory

import (
	"context"
	"fmt"
	"sync"

	"github.com/jhoicas/user-directory/internal/application/ports"
	"github.com/jhoicas/user-directory/internal/domain"
	"github.com/jhoicas/user-directory/internal/domain/repository"
	"github.com/jhoicas/user-directory/pkg/idgen"
	"github.com/jhoicas/user-directory/pkg/logger"
)

// Bootstrap coordina la carga remota de la colección hacia el almacén.
type Bootstrap struct {
	store  repository.UserStore
	loader ports.UserLoader
	log    *logger.Logger

	mu     sync.Mutex
	active map[string]*Activation
}

// NewBootstrap construye el coordinador.
func NewBootstrap(store repository.UserStore, loader ports.UserLoader, log *logger.Logger) *Bootstrap {
	if log == nil {
		log = logger.Nop()
	}
	return &Bootstrap{
		store:  store,
		loader: loader,
		log:    log.Named("bootstrap"),
		active: make(map[string]*Activation),
	}
}

// Activation una activación de la vista. Tras Dispose, ningún resultado
// pendiente puede modificar el almacén.
type Activation struct {
	token  string
	b      *Bootstrap
	ctx    context.Context
	cancel context.CancelFunc

	mu       sync.Mutex
	disposed bool
}

// Activate registra una nueva activación con su propio token. Las
// activaciones anteriores se desmontan: solo la más reciente escribe en el
// almacén.
func (b *Bootstrap) Activate(ctx context.Context) *Activation {
	b.DisposeAll()

	actx, cancel := context.WithCancel(ctx)
	a := &Activation{
		token:  idgen.NewUUID(),
		b:      b,
		ctx:    actx,
		cancel: cancel,
	}
	b.mu.Lock()
	b.active[a.token] = a
	b.mu.Unlock()
	return a
}

// Token identificador de la activación.
func (a *Activation) Token() string { return a.token }

// Disposed indica si la activación ya fue desmontada.
func (a *Activation) Disposed() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.disposed
}

// Run ejecuta un ciclo de carga: loading=true y error limpio, fetch,
// ReplaceAll o error, y loading=false. Si la activación se desmonta durante
// el fetch devuelve domain.ErrActivationDisposed sin tocar el almacén.
func (a *Activation) Run() error {
	if !a.apply(func() {
		a.b.store.SetLoading(true)
		a.b.store.SetError("")
	}) {
		return domain.ErrActivationDisposed
	}

	log := a.b.log.With().Str("activation", a.token).Logger()
	log.Debug().Msg("cargando colección remota")

	remote, err := a.b.loader.FetchAll(a.ctx)

	applied := a.apply(func() {
		defer a.b.store.SetLoading(false)
		if err != nil {
			a.b.store.SetError(fetchErrorMessage(err))
			return
		}
		a.b.store.ReplaceAll(NormalizeRemoteUsers(remote))
	})
	if !applied {
		log.Debug().Msg("resultado descartado: activación desmontada")
		return domain.ErrActivationDisposed
	}
	if err != nil {
		log.Warn().Err(err).Msg("fallo al cargar la colección remota")
		return fmt.Errorf("%w: %v", domain.ErrFetchFailed, err)
	}
	log.Info().Int("users", len(remote)).Msg("colección remota cargada")
	return nil
}

// Dispose desmonta la activación y cancela el fetch en curso.
func (a *Activation) Dispose() {
	a.mu.Lock()
	a.disposed = true
	a.mu.Unlock()
	a.cancel()

	a.b.mu.Lock()
	delete(a.b.active, a.token)
	a.b.mu.Unlock()
}

// apply ejecuta fn solo si la activación sigue viva; excluye a Dispose.
func (a *Activation) apply(fn func()) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.disposed {
		return false
	}
	fn()
	return true
}

// DisposeAll desmonta todas las activaciones vivas (apagado del proceso).
func (b *Bootstrap) DisposeAll() {
	b.mu.Lock()
	list := make([]*Activation, 0, len(b.active))
	for _, a := range b.active {
		list = append(list, a)
	}
	b.mu.Unlock()

	for _, a := range list {
		a.Dispose()
	}
}

// Load activa, ejecuta y desmonta en un solo paso (re-disparo explícito).
func (b *Bootstrap) Load(ctx context.Context) error {
	a := b.Activate(ctx)
	defer a.Dispose()
	return a.Run()
}

func fetchErrorMessage(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	if msg == "" {
		return "no se pudieron cargar los usuarios"
	}
	return msg
}
