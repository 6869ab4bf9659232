package directory_test

import (
	"context"
	"sync"

	"github.com/jhoicas/user-directory/internal/application/dto"
)

// fakeLoader origen remoto en memoria para los tests.
type fakeLoader struct {
	mu      sync.Mutex
	users   []dto.RemoteUser
	byID    map[string]dto.RemoteUser
	err     error
	block   chan struct{} // si no es nil, FetchAll espera a que se cierre
	calls   int
	byCalls int
}

func (f *fakeLoader) FetchAll(ctx context.Context) ([]dto.RemoteUser, error) {
	f.mu.Lock()
	f.calls++
	block, users, err := f.block, f.users, f.err
	f.mu.Unlock()

	if block != nil {
		<-block
	}
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (f *fakeLoader) FetchByID(ctx context.Context, id string) (*dto.RemoteUser, error) {
	f.mu.Lock()
	f.byCalls++
	f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	u, ok := f.byID[id]
	if !ok {
		return nil, errNotFoundRemote
	}
	return &u, nil
}

type remoteErr string

func (e remoteErr) Error() string { return string(e) }

const errNotFoundRemote = remoteErr("remote: estado HTTP 404")

func remoteUser(id, name, email, company string) dto.RemoteUser {
	r := dto.RemoteUser{ID: dto.RemoteID(id), Name: name, Email: email}
	if company != "" {
		r.Company = &dto.RemoteCompany{Name: company}
	}
	return r
}
