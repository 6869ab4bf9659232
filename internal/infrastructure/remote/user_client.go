package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/jhoicas/user-directory/internal/application/dto"
	"github.com/jhoicas/user-directory/internal/application/ports"
)

// Verificar en tiempo de compilación que UserClient implementa UserLoader.
var _ ports.UserLoader = (*UserClient)(nil)

// maxBody tope de lectura de una respuesta del origen remoto.
const maxBody = 4 << 20

// UserClient adaptador HTTP del origen remoto de usuarios (API estilo
// jsonplaceholder: GET /users y GET /users/{id}).
type UserClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewUserClient construye el adaptador. timeout 0 = sin límite de red.
func NewUserClient(baseURL string, timeout time.Duration) *UserClient {
	return &UserClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// StatusError respuesta no-2xx del origen remoto.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("remote: estado HTTP %d", e.StatusCode)
}

// FetchAll descarga la colección completa.
func (c *UserClient) FetchAll(ctx context.Context) ([]dto.RemoteUser, error) {
	var users []dto.RemoteUser
	if err := c.getJSON(ctx, c.baseURL+"/users", &users); err != nil {
		return nil, err
	}
	return users, nil
}

// FetchByID descarga un registro. Un 404 se reporta igual que cualquier otro
// estado no exitoso.
func (c *UserClient) FetchByID(ctx context.Context, id string) (*dto.RemoteUser, error) {
	var user dto.RemoteUser
	if err := c.getJSON(ctx, c.baseURL+"/users/"+url.PathEscape(id), &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *UserClient) getJSON(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("remote: crear HTTP request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("remote: timeout o cancelación: %w", ctx.Err())
		}
		return fmt.Errorf("remote: llamada HTTP fallida: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBody))
		return &StatusError{StatusCode: resp.StatusCode}
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return fmt.Errorf("remote: leer respuesta: %w", err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("remote: deserializar respuesta: %w", err)
	}
	return nil
}
