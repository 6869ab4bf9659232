package directory

import (
	"context"
	"strings"

	"github.com/jhoicas/user-directory/internal/application/ports"
	"github.com/jhoicas/user-directory/internal/domain/entity"
	"github.com/jhoicas/user-directory/internal/domain/repository"
	"github.com/jhoicas/user-directory/pkg/logger"
)

// DetailStatus estado de la vista de detalle.
type DetailStatus string

const (
	DetailLoading  DetailStatus = "loading"
	DetailFound    DetailStatus = "found"
	DetailNotFound DetailStatus = "not_found"
)

// DetailSource de dónde salió el registro resuelto.
type DetailSource string

const (
	SourceStore  DetailSource = "store"
	SourceRemote DetailSource = "remote"
)

// Detail resultado (o estado intermedio) de una resolución.
type Detail struct {
	Status DetailStatus
	Source DetailSource
	User   *entity.User
}

// DetailResolver resuelve un registro prefiriendo el almacén y, si no está,
// consultando el origen remoto. El resultado remoto es efímero: no se escribe
// en el almacén.
type DetailResolver struct {
	store  repository.UserReader
	loader ports.UserLoader
	log    *logger.Logger
}

// NewDetailResolver construye el resolvedor.
func NewDetailResolver(store repository.UserReader, loader ports.UserLoader, log *logger.Logger) *DetailResolver {
	if log == nil {
		log = logger.Nop()
	}
	return &DetailResolver{store: store, loader: loader, log: log.Named("detail")}
}

// Resolve busca id en el almacén; si falta y es un entero positivo, emite
// Loading por observe y consulta el origen remoto. Fallo remoto => NotFound.
func (r *DetailResolver) Resolve(ctx context.Context, id string, observe func(Detail)) Detail {
	if u, ok := r.store.FindByID(id); ok {
		return Detail{Status: DetailFound, Source: SourceStore, User: &u}
	}
	if !IsRemoteID(id) {
		return Detail{Status: DetailNotFound}
	}

	if observe != nil {
		observe(Detail{Status: DetailLoading})
	}

	remote, err := r.loader.FetchByID(ctx, id)
	if err != nil || remote == nil {
		r.log.Debug().Err(err).Str("id", id).Msg("detalle remoto no disponible")
		return Detail{Status: DetailNotFound}
	}
	u := NormalizeRemoteUser(*remote)
	if u.ID == "" {
		u.ID = id
	}
	return Detail{Status: DetailFound, Source: SourceRemote, User: &u}
}

// IsRemoteID indica si id es sintácticamente un entero positivo simple.
func IsRemoteID(id string) bool {
	if id == "" {
		return false
	}
	for _, c := range id {
		if c < '0' || c > '9' {
			return false
		}
	}
	return strings.TrimLeft(id, "0") != ""
}
