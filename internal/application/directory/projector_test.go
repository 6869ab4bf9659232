package directory_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/user-directory/internal/application/directory"
	"github.com/jhoicas/user-directory/internal/domain/entity"
)

func names(users []entity.User) []string {
	out := make([]string, 0, len(users))
	for _, u := range users {
		out = append(out, u.Name)
	}
	return out
}

func bobAlice() []entity.User {
	return []entity.User{
		{ID: "1", Name: "Bob", Email: "b@x.com", Origin: entity.OriginRemote},
		{ID: "2", Name: "Alice", Email: "a@x.com", Origin: entity.OriginRemote},
	}
}

func TestProject_OrdenaPorNombre(t *testing.T) {
	p := directory.NewProjector("en")
	got := p.Project(bobAlice(), "", directory.ParseSortDirective("name-asc"))
	assert.Equal(t, []string{"Alice", "Bob"}, names(got))
}

func TestProject_BusquedaSinMayusculas(t *testing.T) {
	p := directory.NewProjector("en")
	got := p.Project(bobAlice(), "bob", directory.DefaultSort)
	assert.Equal(t, []string{"Bob"}, names(got))

	got = p.Project(bobAlice(), "A@X", directory.DefaultSort)
	assert.Equal(t, []string{"Alice"}, names(got), "también busca en el email")
}

func TestProject_LocalesPrimero(t *testing.T) {
	store := newStore()
	store.ReplaceAll(bobAlice())
	_, err := store.Add(entity.User{ID: "1714560000000", Name: "Cara", Email: "c@x.com"})
	require.NoError(t, err)

	p := directory.NewProjector("en")
	got := p.Project(store.Snapshot().Users, "", directory.ParseSortDirective("name-asc"))
	assert.Equal(t, []string{"Cara", "Alice", "Bob"}, names(got))

	got = p.Project(store.Snapshot().Users, "", directory.ParseSortDirective("name-desc"))
	assert.Equal(t, []string{"Cara", "Bob", "Alice"}, names(got))
}

func TestProject_LocalesConservanOrdenDeInsercion(t *testing.T) {
	created := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	users := []entity.User{
		{ID: "2000", Name: "Zoe", Email: "z@x", CreatedAt: &created, Origin: entity.OriginLocal},
		{ID: "1999", Name: "Ana", Email: "a@x", CreatedAt: &created, Origin: entity.OriginLocal},
		{ID: "1", Name: "Bob", Email: "b@x", Origin: entity.OriginRemote},
	}
	got := directory.NewProjector("en").Project(users, "", directory.ParseSortDirective("name-asc"))
	assert.Equal(t, []string{"Zoe", "Ana", "Bob"}, names(got))
}

func TestProject_OrdenEstableYCampoDesconocido(t *testing.T) {
	users := []entity.User{
		{ID: "1", Name: "B", Email: "1@x", Company: entity.Company{Name: "Acme"}, Origin: entity.OriginRemote},
		{ID: "2", Name: "A", Email: "2@x", Company: entity.Company{Name: "Acme"}, Origin: entity.OriginRemote},
		{ID: "3", Name: "C", Email: "3@x", Company: entity.Company{Name: "Beta"}, Origin: entity.OriginRemote},
	}
	p := directory.NewProjector("en")

	got := p.Project(users, "", directory.ParseSortDirective("company-asc"))
	assert.Equal(t, []string{"B", "A", "C"}, names(got), "empates conservan el orden previo")

	got = p.Project(users, "", directory.ParseSortDirective("phone-asc"))
	assert.Equal(t, []string{"B", "A", "C"}, names(got), "campo desconocido no reordena")
}

func TestProject_ComparacionSensibleAlLocale(t *testing.T) {
	users := []entity.User{
		{ID: "1", Name: "zeta", Email: "z@x", Origin: entity.OriginRemote},
		{ID: "2", Name: "Ángel", Email: "a@x", Origin: entity.OriginRemote},
		{ID: "3", Name: "beto", Email: "b@x", Origin: entity.OriginRemote},
	}
	got := directory.NewProjector("es").Project(users, "", directory.DefaultSort)
	assert.Equal(t, []string{"Ángel", "beto", "zeta"}, names(got))
}

func TestProject_Propiedades(t *testing.T) {
	created := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	users := []entity.User{
		{ID: "5", Name: "Eve", Email: "e@x", Company: entity.Company{Name: "N/A"}, Origin: entity.OriginRemote},
		{ID: "3000", Name: "Local", Email: "l@x", CreatedAt: &created, Origin: entity.OriginLocal},
		{ID: "2", Name: "dan", Email: "d@x", Company: entity.Company{Name: "Zed"}, Origin: entity.OriginRemote},
		{ID: "9", Name: "Carl", Email: "c@x", Company: entity.Company{Name: "Acme"}, Origin: entity.OriginRemote},
	}
	p := directory.NewProjector("en")

	for _, s := range []string{"name-asc", "name-desc", "email-asc", "email-desc", "company-asc", "company-desc", "bogus"} {
		sort := directory.ParseSortDirective(s)
		once := p.Project(users, "", sort)

		assert.Len(t, once, len(users), "%s: es una permutación", s)
		assert.ElementsMatch(t, names(users), names(once), s)
		assert.Equal(t, "Local", once[0].Name, "%s: locales primero", s)

		twice := p.Project(once, "", sort)
		assert.Equal(t, names(once), names(twice), "%s: idempotente", s)
	}
}

func TestParseSortDirective(t *testing.T) {
	assert.Equal(t, directory.SortDirective{Field: directory.SortByEmail, Descending: true}, directory.ParseSortDirective("email-desc"))
	assert.Equal(t, directory.SortDirective{Field: directory.SortByName}, directory.ParseSortDirective(" Name "))
	assert.Equal(t, "company-asc", directory.ParseSortDirective("company").String())
}
