package entity_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/user-directory/internal/domain/entity"
)

func TestClassifyOrigin(t *testing.T) {
	now := time.Now()

	assert.Equal(t, entity.OriginRemote, entity.ClassifyOrigin("1", nil))
	assert.Equal(t, entity.OriginRemote, entity.ClassifyOrigin("1000", nil), "el umbral es exclusivo")
	assert.Equal(t, entity.OriginLocal, entity.ClassifyOrigin("1001", nil))
	assert.Equal(t, entity.OriginLocal, entity.ClassifyOrigin("1712345678901", nil))
	assert.Equal(t, entity.OriginRemote, entity.ClassifyOrigin("abc", nil))
	assert.Equal(t, entity.OriginLocal, entity.ClassifyOrigin("3", &now), "createdAt marca registro local")
}

func TestClone_NoCompartePunteros(t *testing.T) {
	active := true
	created := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	u := entity.User{
		ID:        "1",
		Address:   &entity.Address{City: "Gwenborough"},
		IsActive:  &active,
		CreatedAt: &created,
	}

	c := u.Clone()
	c.Address.City = "Otra"
	*c.IsActive = false
	*c.CreatedAt = created.Add(time.Hour)

	assert.Equal(t, "Gwenborough", u.Address.City)
	assert.True(t, *u.IsActive)
	assert.Equal(t, created, *u.CreatedAt)
}

func TestHasRequiredFields(t *testing.T) {
	assert.True(t, entity.User{Name: "Ana", Email: "a@x.com"}.HasRequiredFields())
	assert.False(t, entity.User{Name: "   ", Email: "a@x.com"}.HasRequiredFields())
	assert.False(t, entity.User{Name: "Ana", Email: ""}.HasRequiredFields())
}

func TestAddressLine(t *testing.T) {
	a := &entity.Address{Street: "Kulas Light", Suite: "Apt. 556", City: "Gwenborough", Zipcode: "92998-3874"}
	assert.Equal(t, "Kulas Light, Apt. 556, Gwenborough - 92998-3874", a.Line())

	var none *entity.Address
	assert.Equal(t, "", none.Line())
}
