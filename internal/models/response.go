package models

// DefaultResponse is the uniform payload shape for every endpoint.
// Exactly one of Data/Error carries a value; the other stays null.
type DefaultResponse struct {
	Success bool         `json:"success"`
	Code    int          `json:"code"`
	Meta    *Meta        `json:"meta"`
	Data    interface{}  `json:"data"`
	Error   *ErrorDetail `json:"error"`
}

// Meta carries free-form context for successful responses.
type Meta struct {
	Message string `json:"message"`
}

// ErrorDetail carries the client-facing error message.
type ErrorDetail struct {
	Message string `json:"message"`
}

// PaginationResult is the page slice plus the unfiltered total.
type PaginationResult struct {
	TotalRecords int64     `json:"recordsTotal"`
	Records      []Product `json:"records"`
}

// NewPaginationResult builds a page result, normalizing a nil slice so the
// JSON "records" field is always an array.
func NewPaginationResult(total int64, records []Product) *PaginationResult {
	if records == nil {
		records = []Product{}
	}
	return &PaginationResult{TotalRecords: total, Records: records}
}
