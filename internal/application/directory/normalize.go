// Package directory contiene la capa de estado y derivación del directorio de
// usuarios: bootstrap remoto, proyección de la vista, resolución de detalle y
// sesiones de edición.
package directory

import (
	"strings"

	"github.com/jhoicas/user-directory/internal/application/dto"
	"github.com/jhoicas/user-directory/internal/domain/entity"
)

// NormalizeRemoteUser lleva un registro remoto a la forma de entity.User:
// id como cadena, empresa con placeholder y atributos opcionales tal cual.
// El origen se clasifica por el id: uno por encima de LocalIDThreshold es local.
func NormalizeRemoteUser(r dto.RemoteUser) entity.User {
	id := strings.TrimSpace(string(r.ID))
	u := entity.User{
		ID:      id,
		Name:    r.Name,
		Email:   r.Email,
		Company: entity.Company{Name: entity.CompanyPlaceholder},
		Phone:   r.Phone,
		Website: r.Website,
		Origin:  entity.ClassifyOrigin(id, nil),
	}
	if r.Company != nil && strings.TrimSpace(r.Company.Name) != "" {
		u.Company.Name = r.Company.Name
	}
	if r.Address != nil {
		u.Address = &entity.Address{
			Street:  r.Address.Street,
			Suite:   r.Address.Suite,
			City:    r.Address.City,
			Zipcode: r.Address.Zipcode,
		}
	}
	return u
}

// NormalizeRemoteUsers aplica NormalizeRemoteUser a toda la colección.
func NormalizeRemoteUsers(list []dto.RemoteUser) []entity.User {
	out := make([]entity.User, 0, len(list))
	for _, r := range list {
		out = append(out, NormalizeRemoteUser(r))
	}
	return out
}
