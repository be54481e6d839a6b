package models

// Category is the closed set of product categories.
type Category string

const (
	CategoryElectronics Category = "Electronicos"
	CategoryClothing    Category = "Ropa"
	CategoryKitchen     Category = "Cocina"
	CategoryGeneral     Category = "General"
)

// Product represents a catalog product. The password field is accepted on
// input but never echoed back; handlers clear it before responding.
type Product struct {
	Nombre     string   `json:"nombre" validate:"required,min=1,max=45"`
	Categoria  Category `json:"categoria" validate:"omitempty,oneof=Electronicos Ropa Cocina General"`
	UID        string   `json:"uid"`
	Color      string   `json:"color,omitempty"`
	Precio     int      `json:"precio" validate:"required,gt=0"`
	Contrasena string   `json:"contrasena,omitempty" validate:"required,min=8"`
}

// SetDefaults fills the optional category the way the original API did.
func (p *Product) SetDefaults() {
	if p.Categoria == "" {
		p.Categoria = CategoryGeneral
	}
}

// Store represents the platform a product is sold on.
type Store struct {
	NombrePlat string `json:"nombre_plat" validate:"required,min=1,max=45"`
	Pais       string `json:"pais"`
	Envios     string `json:"envios" validate:"required"`
}

// SetDefaults defaults the country to the online storefront.
func (s *Store) SetDefaults() {
	if s.Pais == "" {
		s.Pais = "Online"
	}
}
