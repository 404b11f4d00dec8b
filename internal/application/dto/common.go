package dto

// ErrorResponse cuerpo de error HTTP con código estable y mensaje legible.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Page parámetros de paginación de los listados (page >= 1, page_size 1..100).
type Page struct {
	Page     int `query:"page"`
	PageSize int `query:"page_size"`
}

// Normalize aplica valores por defecto y límites.
func (p *Page) Normalize() {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize < 1 {
		p.PageSize = 20
	}
	if p.PageSize > 100 {
		p.PageSize = 100
	}
}

// Offset devuelve el offset SQL equivalente.
func (p Page) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// Pages calcula el total de páginas para un total de filas.
func (p Page) Pages(total int) int {
	if total <= 0 {
		return 1
	}
	pages := total / p.PageSize
	if total%p.PageSize != 0 {
		pages++
	}
	return pages
}
