package dto

// SearchParams búsqueda y paginación para listados. Search se aplica como
// texto libre sobre nombre de producto o código de lote (case-insensitive).
type SearchParams struct {
	Search        string `query:"search"`
	Page          int    `query:"page"`      // 1-based
	PageSize      int    `query:"page_size"` // máximo 100
	SortField     string `query:"sort_field"`
	SortDirection string `query:"sort_dir"` // asc | desc
}

// Defaults aplica valores por defecto: página 1, tamaño 20, orden descendente.
func (p *SearchParams) Defaults() {
	if p.Page <= 0 {
		p.Page = 1
	}
	if p.PageSize <= 0 {
		p.PageSize = 20
	}
	if p.PageSize > 100 {
		p.PageSize = 100
	}
	if p.SortDirection != "asc" {
		p.SortDirection = "desc"
	}
}

// Asc indica orden ascendente por fecha.
func (p SearchParams) Asc() bool { return p.SortDirection == "asc" }

// Offset devuelve el desplazamiento 0-based de la ventana solicitada.
func (p SearchParams) Offset() int { return (p.Page - 1) * p.PageSize }

// PageResponse metadatos de página en respuestas de listados.
type PageResponse struct {
	Page     int `json:"page"`
	PageSize int `json:"page_size"`
	Total    int `json:"total"`
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
