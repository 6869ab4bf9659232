package directory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/user-directory/internal/application/directory"
	"github.com/jhoicas/user-directory/internal/application/dto"
	"github.com/jhoicas/user-directory/internal/domain/entity"
)

func TestNormalizeRemoteUser_EmpresaPlaceholder(t *testing.T) {
	u := directory.NormalizeRemoteUser(remoteUser("3", "Clementine", "c@x", ""))
	assert.Equal(t, "3", u.ID)
	assert.Equal(t, entity.CompanyPlaceholder, u.Company.Name)
	assert.Equal(t, entity.OriginRemote, u.Origin)
	assert.Nil(t, u.Address)
	assert.Nil(t, u.CreatedAt)
}

func TestNormalizeRemoteUser_CopiaDireccion(t *testing.T) {
	r := remoteUser("1", "Leanne", "l@x", "Romaguera-Crona")
	r.Phone = "1-770-736-8031"
	r.Address = &dto.RemoteAddress{Street: "Kulas Light", Suite: "Apt. 556", City: "Gwenborough", Zipcode: "92998-3874"}

	u := directory.NormalizeRemoteUser(r)
	assert.Equal(t, "Romaguera-Crona", u.Company.Name)
	assert.Equal(t, "1-770-736-8031", u.Phone)
	if assert.NotNil(t, u.Address) {
		assert.Equal(t, "Kulas Light, Apt. 556, Gwenborough - 92998-3874", u.Address.Line())
	}
}

func TestNormalizeRemoteUsers_ConservaOrden(t *testing.T) {
	out := directory.NormalizeRemoteUsers([]dto.RemoteUser{
		remoteUser("2", "B", "b@x", ""),
		remoteUser("1", "A", "a@x", ""),
	})
	assert.Equal(t, []string{"2", "1"}, []string{out[0].ID, out[1].ID})
}

func TestNormalizeRemoteUser_IdSobreUmbralEsLocal(t *testing.T) {
	assert.Equal(t, entity.OriginRemote, directory.NormalizeRemoteUser(remoteUser("1000", "Mil", "m@x", "")).Origin)
	assert.Equal(t, entity.OriginLocal, directory.NormalizeRemoteUser(remoteUser("1500", "Zed", "z@x", "")).Origin)
}
