package usecase

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jhoicas/user-directory/internal/application/dto"
	"github.com/jhoicas/user-directory/internal/domain"
	"github.com/jhoicas/user-directory/internal/domain/entity"
)

// NewValidator validador con los nombres de campo tomados del tag json.
func NewValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validationError traduce los errores del validador a domain.ErrInvalidInput.
func validationError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, fe.Field())
		}
		return fmt.Errorf("%w: campos obligatorios: %s", domain.ErrInvalidInput, strings.Join(fields, ", "))
	}
	return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
}

func entityToUserResponse(u entity.User) dto.UserResponse {
	out := dto.UserResponse{
		ID:          u.ID,
		Name:        u.Name,
		Email:       u.Email,
		CompanyName: u.Company.Name,
		Phone:       u.Phone,
		Website:     u.Website,
		IsActive:    u.IsActive,
		CreatedAt:   u.CreatedAt,
		LastLogin:   u.LastLogin,
		Origin:      string(u.Origin),
	}
	if u.Address != nil {
		out.Address = &dto.AddressResponse{
			Street:  u.Address.Street,
			Suite:   u.Address.Suite,
			City:    u.Address.City,
			Zipcode: u.Address.Zipcode,
		}
	}
	return out
}

func entitiesToUserResponses(list []entity.User) []dto.UserResponse {
	out := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		out = append(out, entityToUserResponse(u))
	}
	return out
}

func stateToStatusResponse(st entity.UserState) dto.StatusResponse {
	out := dto.StatusResponse{
		Loading:    st.Loading,
		Error:      st.Error,
		TotalCount: st.TotalCount,
	}
	if st.LastUpdated != nil {
		ms := st.LastUpdated.UnixMilli()
		out.LastUpdated = &ms
	}
	return out
}
