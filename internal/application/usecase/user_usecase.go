package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jhoicas/user-directory/internal/application/directory"
	"github.com/jhoicas/user-directory/internal/application/dto"
	"github.com/jhoicas/user-directory/internal/application/ports"
	"github.com/jhoicas/user-directory/internal/domain/entity"
	"github.com/jhoicas/user-directory/internal/domain/repository"
	"github.com/jhoicas/user-directory/pkg/idgen"
	"github.com/jhoicas/user-directory/pkg/logger"
)

// UserUseCase aplica las reglas del directorio sobre el almacén de usuarios.
type UserUseCase struct {
	store       repository.UserStore
	bootstrap   *directory.Bootstrap
	resolver    *directory.DetailResolver
	projector   *directory.Projector
	ids         *idgen.Generator
	validate    *validator.Validate
	defaultSort directory.SortDirective
	log         *logger.Logger
}

// UserUseCaseDeps dependencias de UserUseCase.
type UserUseCaseDeps struct {
	Store       repository.UserStore
	Bootstrap   *directory.Bootstrap
	Resolver    *directory.DetailResolver
	Projector   *directory.Projector
	IDs         *idgen.Generator
	DefaultSort string
	Log         *logger.Logger
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(d UserUseCaseDeps) *UserUseCase {
	log := d.Log
	if log == nil {
		log = logger.Nop()
	}
	sort := directory.DefaultSort
	if strings.TrimSpace(d.DefaultSort) != "" {
		sort = directory.ParseSortDirective(d.DefaultSort)
	}
	return &UserUseCase{
		store:       d.Store,
		bootstrap:   d.Bootstrap,
		resolver:    d.Resolver,
		projector:   d.Projector,
		ids:         d.IDs,
		validate:    NewValidator(),
		defaultSort: sort,
		log:         log.Named("users"),
	}
}

// List devuelve la vista proyectada (búsqueda + orden + nuevos primero) y el
// estado de la última carga.
func (uc *UserUseCase) List(q dto.UserListQuery) dto.UserListResponse {
	st := uc.store.Snapshot()
	sort := uc.sortFor(q.Sort)
	view := uc.projector.Project(st.Users, q.Search, sort)
	return dto.UserListResponse{
		Items:          entitiesToUserResponses(view),
		Search:         q.Search,
		Sort:           sort.String(),
		Matched:        len(view),
		StatusResponse: stateToStatusResponse(st),
	}
}

// Status estado del almacén sin la colección.
func (uc *UserUseCase) Status() dto.StatusResponse {
	return stateToStatusResponse(uc.store.Snapshot())
}

// Create crea un usuario local: recorta y valida los campos, asigna un id
// derivado del tiempo y lo inserta al inicio de la colección.
func (uc *UserUseCase) Create(req dto.CreateUserRequest) (*dto.UserResponse, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.CompanyName = strings.TrimSpace(req.CompanyName)
	if err := uc.validate.Struct(req); err != nil {
		return nil, validationError(err)
	}

	company := req.CompanyName
	if company == "" {
		company = entity.LocalCompanyName
	}
	user, err := uc.store.Add(entity.User{
		ID:      uc.ids.NextUserID(),
		Name:    req.Name,
		Email:   req.Email,
		Company: entity.Company{Name: company},
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("id", user.ID).Msg("usuario local creado")
	out := entityToUserResponse(user)
	return &out, nil
}

// Delete pide confirmación y, si se confirma, elimina el registro. Cancelar
// no modifica el almacén; un id inexistente es un no-op.
func (uc *UserUseCase) Delete(ctx context.Context, id string, confirmer ports.Confirmer) (*dto.DeleteUserResponse, error) {
	out := &dto.DeleteUserResponse{ID: id}
	if confirmer == nil {
		return out, nil
	}
	ok, err := confirmer.Confirm(ctx, fmt.Sprintf("¿Eliminar el usuario %s?", id))
	if err != nil {
		return nil, fmt.Errorf("confirmación: %w", err)
	}
	if !ok {
		return out, nil
	}
	out.Confirmed = true
	out.Deleted = uc.store.Remove(id)
	if out.Deleted {
		uc.log.Info().Str("id", id).Msg("usuario eliminado")
	}
	return out, nil
}

// GetDetail resuelve un usuario desde el almacén o el origen remoto.
// Devuelve nil si no se encuentra.
func (uc *UserUseCase) GetDetail(ctx context.Context, id string) (*dto.UserDetailResponse, error) {
	d := uc.resolver.Resolve(ctx, id, func(s directory.Detail) {
		uc.log.Debug().Str("id", id).Str("status", string(s.Status)).Msg("resolviendo detalle")
	})
	if d.Status != directory.DetailFound || d.User == nil {
		return nil, nil
	}
	return &dto.UserDetailResponse{
		User:        entityToUserResponse(*d.User),
		Source:      string(d.Source),
		AddressLine: d.User.Address.Line(),
	}, nil
}

// Reload vuelve a cargar la colección remota (re-disparo explícito; no hay
// reintentos automáticos).
func (uc *UserUseCase) Reload(ctx context.Context) error {
	return uc.bootstrap.Load(ctx)
}

func (uc *UserUseCase) sortFor(s string) directory.SortDirective {
	if strings.TrimSpace(s) == "" {
		return uc.defaultSort
	}
	return directory.ParseSortDirective(s)
}
