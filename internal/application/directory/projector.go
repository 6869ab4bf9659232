package directory

import (
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/jhoicas/user-directory/internal/domain/entity"
)

// SortField campo por el que se ordenan los registros remotos.
type SortField string

const (
	SortByName    SortField = "name"
	SortByEmail   SortField = "email"
	SortByCompany SortField = "company"
)

// SortDirective campo y sentido de ordenamiento.
type SortDirective struct {
	Field      SortField
	Descending bool
}

// DefaultSort orden inicial de la vista.
var DefaultSort = SortDirective{Field: SortByName}

// ParseSortDirective interpreta "name-asc", "email-desc", "company-asc"...
// Sin sufijo el sentido es ascendente. Un campo desconocido se conserva y
// luego se comporta como comparador neutro.
func ParseSortDirective(s string) SortDirective {
	s = strings.ToLower(strings.TrimSpace(s))
	field, dir, _ := strings.Cut(s, "-")
	return SortDirective{Field: SortField(field), Descending: dir == "desc"}
}

// String forma canónica "campo-sentido".
func (d SortDirective) String() string {
	if d.Descending {
		return string(d.Field) + "-desc"
	}
	return string(d.Field) + "-asc"
}

// Projector deriva la vista a renderizar; no tiene efectos secundarios.
type Projector struct {
	locale language.Tag
}

// NewProjector construye el proyector con el locale del collator ("en", "es"...).
// Un locale inválido cae a inglés.
func NewProjector(locale string) *Projector {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}
	return &Projector{locale: tag}
}

// Project filtra por búsqueda, separa locales de remotos, ordena solo los
// remotos (orden estable) y devuelve locales seguidos de remotos.
func (p *Projector) Project(users []entity.User, search string, sort SortDirective) []entity.User {
	fold := cases.Fold()
	term := fold.String(search)

	local := make([]entity.User, 0)
	remote := make([]entity.User, 0, len(users))
	for _, u := range users {
		if term != "" &&
			!strings.Contains(fold.String(u.Name), term) &&
			!strings.Contains(fold.String(u.Email), term) {
			continue
		}
		if u.IsLocal() {
			local = append(local, u)
		} else {
			remote = append(remote, u)
		}
	}

	if key := sortKey(sort.Field); key != nil {
		col := collate.New(p.locale)
		slices.SortStableFunc(remote, func(a, b entity.User) int {
			c := col.CompareString(key(a), key(b))
			if sort.Descending {
				return -c
			}
			return c
		})
	}

	return append(local, remote...)
}

func sortKey(f SortField) func(entity.User) string {
	switch f {
	case SortByName:
		return func(u entity.User) string { return u.Name }
	case SortByEmail:
		return func(u entity.User) string { return u.Email }
	case SortByCompany:
		return func(u entity.User) string { return u.Company.Name }
	default:
		return nil
	}
}
