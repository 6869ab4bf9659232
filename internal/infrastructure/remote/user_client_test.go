package remote_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/user-directory/internal/infrastructure/remote"
)

const usersJSON = `[
  {"id": 1, "name": "Leanne Graham", "email": "Sincere@april.biz",
   "company": {"name": "Romaguera-Crona"}, "phone": "1-770-736-8031",
   "address": {"street": "Kulas Light", "suite": "Apt. 556", "city": "Gwenborough", "zipcode": "92998-3874"}},
  {"id": "2", "name": "Ervin Howell", "email": "Shanna@melissa.tv"}
]`

func newServer(t *testing.T, h http.HandlerFunc) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return srv
}

func TestFetchAll_Exito(t *testing.T) {
	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(usersJSON))
	})

	users, err := remote.NewUserClient(srv.URL+"/", 0).FetchAll(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "1", string(users[0].ID), "id numérico normalizado a cadena")
	assert.Equal(t, "2", string(users[1].ID))
	assert.Equal(t, "Romaguera-Crona", users[0].Company.Name)
	assert.Nil(t, users[1].Company)
	assert.Equal(t, "Gwenborough", users[0].Address.City)
}

func TestFetchAll_Estado500(t *testing.T) {
	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := remote.NewUserClient(srv.URL, 0).FetchAll(context.Background())
	require.Error(t, err)
	var se *remote.StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, 500, se.StatusCode)
	assert.Equal(t, "remote: estado HTTP 500", err.Error())
}

func TestFetchByID(t *testing.T) {
	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/users/3" {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{}`))
			return
		}
		_, _ = w.Write([]byte(`{"id": 3, "name": "Clementine", "email": "Nathan@yesenia.net"}`))
	})
	c := remote.NewUserClient(srv.URL, 0)

	u, err := c.FetchByID(context.Background(), "3")
	require.NoError(t, err)
	assert.Equal(t, "Clementine", u.Name)

	_, err = c.FetchByID(context.Background(), "99")
	assert.EqualError(t, err, "remote: estado HTTP 404")
}

func TestFetchAll_JSONInvalido(t *testing.T) {
	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>`))
	})
	_, err := remote.NewUserClient(srv.URL, 0).FetchAll(context.Background())
	assert.ErrorContains(t, err, "deserializar")
}

func TestFetchAll_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	})
	defer close(release)

	_, err := remote.NewUserClient(srv.URL, 50*time.Millisecond).FetchAll(context.Background())
	assert.ErrorContains(t, err, "llamada HTTP fallida")
}
