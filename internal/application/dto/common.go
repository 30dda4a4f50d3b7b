package dto

// ErrorResponse badan error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ValidationErrorResponse error validasi dengan rincian per field.
type ValidationErrorResponse struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// MessageResponse balasan sederhana untuk operasi tanpa payload.
type MessageResponse struct {
	Message string `json:"message"`
}

// DateLayout format tanggal pada seluruh permukaan API.
const DateLayout = "2006-01-02"
