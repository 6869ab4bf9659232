package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// RemoteID id del origen remoto; acepta número o cadena en JSON.
type RemoteID string

// UnmarshalJSON normaliza el id remoto a su forma de cadena.
func (r *RemoteID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*r = ""
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*r = RemoteID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("id remoto inválido %s: %w", string(b), err)
	}
	*r = RemoteID(n.String())
	return nil
}

// RemoteCompany empresa tal como la envía el origen remoto.
type RemoteCompany struct {
	Name string `json:"name"`
}

// RemoteAddress dirección tal como la envía el origen remoto.
type RemoteAddress struct {
	Street  string `json:"street"`
	Suite   string `json:"suite"`
	City    string `json:"city"`
	Zipcode string `json:"zipcode"`
}

// RemoteUser registro crudo: {id, name, email, company?, phone?, website?, address?}.
type RemoteUser struct {
	ID      RemoteID       `json:"id"`
	Name    string         `json:"name"`
	Email   string         `json:"email"`
	Company *RemoteCompany `json:"company,omitempty"`
	Phone   string         `json:"phone,omitempty"`
	Website string         `json:"website,omitempty"`
	Address *RemoteAddress `json:"address,omitempty"`
}
