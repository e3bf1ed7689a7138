package response

// Error kinds clients can branch on.
const (
	KindValidation = "validation_error"
	KindNotFound   = "not_found"
	KindConflict   = "conflict"
	KindInternal   = "internal_error"
)

// FieldError describes a single invalid request field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ErrorDetail is the machine-checkable error payload.
type ErrorDetail struct {
	Kind   string       `json:"kind"`
	Fields []FieldError `json:"fields,omitempty"`
}

// APIResponse is the uniform envelope carried by every endpoint.
type APIResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Data    any          `json:"data,omitempty"`
	Error   *ErrorDetail `json:"error,omitempty"`
}

func Success(message string, data any) APIResponse {
	return APIResponse{Success: true, Message: message, Data: data}
}

func Error(kind, message string) APIResponse {
	return APIResponse{Success: false, Message: message, Error: &ErrorDetail{Kind: kind}}
}

func ValidationFailed(message string, fields []FieldError) APIResponse {
	return APIResponse{Success: false, Message: message, Error: &ErrorDetail{Kind: KindValidation, Fields: fields}}
}

// Pagination is the listing metadata block.
type Pagination struct {
	CurrentPage int   `json:"current_page"`
	TotalPages  int   `json:"total_pages"`
	TotalItems  int64 `json:"total_items"`
	HasNextPage bool  `json:"has_next_page"`
	HasPrevPage bool  `json:"has_prev_page"`
}

// ListData wraps one page of items together with pagination metadata.
type ListData struct {
	Items      any        `json:"items"`
	Pagination Pagination `json:"pagination"`
}

// NewPagination computes the metadata for a 1-based page of size limit.
func NewPagination(page, limit int, total int64) Pagination {
	totalPages := int((total + int64(limit) - 1) / int64(limit))
	if totalPages < 1 {
		totalPages = 1
	}
	return Pagination{
		CurrentPage: page,
		TotalPages:  totalPages,
		TotalItems:  total,
		HasNextPage: page < totalPages,
		HasPrevPage: page > 1,
	}
}
