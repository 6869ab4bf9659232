package entity

// Nombres de empresa por defecto.
const (
	// CompanyPlaceholder se muestra cuando el origen remoto no envía empresa.
	CompanyPlaceholder = "N/A"
	// LocalCompanyName se asigna a los usuarios creados localmente sin empresa.
	LocalCompanyName = "Local Company"
)

// Company atributo de visualización del usuario.
type Company struct {
	Name string
}

// Address dirección postal, solo presente en registros remotos.
type Address struct {
	Street  string
	Suite   string
	City    string
	Zipcode string
}

// Line devuelve la dirección en una sola línea: "calle, suite, ciudad - cp".
func (a *Address) Line() string {
	if a == nil {
		return ""
	}
	return a.Street + ", " + a.Suite + ", " + a.City + " - " + a.Zipcode
}
