package dto

// PageRequest paginación para listados.
type PageRequest struct {
	Limit  int `query:"limit" validate:"min=1,max=100"`
	Offset int `query:"offset" validate:"min=0"`
}

// DefaultPage aplica valores por defecto si Limit/Offset son cero.
func (p *PageRequest) DefaultPage() {
	if p.Limit <= 0 {
		p.Limit = 20
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
}

// PageResponse metadatos de página en respuestas.
type PageResponse struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
	Total  int `json:"total"`
}

// ListResponse lista paginada.
type ListResponse[T any] struct {
	Items []T          `json:"items"`
	Page  PageResponse `json:"page"`
}

// Paginate recorta items según la página y arma la respuesta. Total es el tamaño antes de recortar.
func Paginate[T any](items []T, page PageRequest) ListResponse[T] {
	total := len(items)
	start := min(page.Offset, total)
	end := min(start+page.Limit, total)
	out := make([]T, 0, end-start)
	out = append(out, items[start:end]...)
	return ListResponse[T]{
		Items: out,
		Page:  PageResponse{Limit: page.Limit, Offset: page.Offset, Total: total},
	}
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
