package directory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/user-directory/internal/application/directory"
	"github.com/jhoicas/user-directory/internal/domain"
)

func TestEditSession_FlujoCompleto(t *testing.T) {
	store := newStore()
	store.ReplaceAll(bobAlice())
	bob, _ := store.FindByID("1")

	s := directory.NewEditSession("s1")
	assert.Equal(t, directory.EditIdle, s.State())

	require.NoError(t, s.Begin(bob))
	assert.Equal(t, directory.EditEditing, s.State())
	assert.Equal(t, directory.EditDraft{Name: "Bob", Email: "b@x.com"}, s.Draft())
	assert.Equal(t, "1", s.UserID())

	require.NoError(t, s.SetDraft(directory.EditDraft{Name: "  Robert ", Email: "r@x.com"}))
	got, _ := store.FindByID("1")
	assert.Equal(t, "Bob", got.Name, "el borrador no toca el registro antes del commit")

	updated, applied, err := s.Commit(store)
	require.NoError(t, err)
	assert.True(t, applied)
	assert.Equal(t, "Robert", updated.Name)
	assert.Equal(t, directory.EditSaved, s.State())

	got, _ = store.FindByID("1")
	assert.Equal(t, "Robert", got.Name)
	assert.Equal(t, "r@x.com", got.Email)
}

func TestEditSession_BorradorInvalidoSigueEditando(t *testing.T) {
	store := newStore()
	store.ReplaceAll(bobAlice())
	bob, _ := store.FindByID("1")

	s := directory.NewEditSession("s1")
	require.NoError(t, s.Begin(bob))
	require.NoError(t, s.SetDraft(directory.EditDraft{Name: "   ", Email: "b@x.com"}))

	_, _, err := s.Commit(store)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, directory.EditEditing, s.State())

	got, _ := store.FindByID("1")
	assert.Equal(t, "Bob", got.Name)
}

func TestEditSession_CancelarNoMuta(t *testing.T) {
	store := newStore()
	store.ReplaceAll(bobAlice())
	bob, _ := store.FindByID("1")

	s := directory.NewEditSession("s1")
	require.NoError(t, s.Begin(bob))
	require.NoError(t, s.SetDraft(directory.EditDraft{Name: "X", Email: "x@x"}))
	require.NoError(t, s.Cancel())
	assert.Equal(t, directory.EditCancelled, s.State())

	got, _ := store.FindByID("1")
	assert.Equal(t, "Bob", got.Name)
}

func TestEditSession_TransicionesInvalidas(t *testing.T) {
	store := newStore()
	s := directory.NewEditSession("s1")

	assert.ErrorIs(t, s.SetDraft(directory.EditDraft{}), domain.ErrInvalidTransition)
	_, _, err := s.Commit(store)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	assert.ErrorIs(t, s.Cancel(), domain.ErrInvalidTransition)

	require.NoError(t, s.Begin(bobAlice()[0]))
	assert.ErrorIs(t, s.Begin(bobAlice()[0]), domain.ErrInvalidTransition)
	require.NoError(t, s.Cancel())
	assert.ErrorIs(t, s.Cancel(), domain.ErrInvalidTransition)
}

func TestEditSession_RegistroEliminadoNoAplica(t *testing.T) {
	store := newStore()
	store.ReplaceAll(bobAlice())
	bob, _ := store.FindByID("1")

	s := directory.NewEditSession("s1")
	require.NoError(t, s.Begin(bob))
	store.Remove("1")

	_, applied, err := s.Commit(store)
	require.NoError(t, err)
	assert.False(t, applied)
	assert.Equal(t, 1, store.Snapshot().TotalCount)
}
