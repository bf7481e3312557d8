package dtos

type APIError struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Meta    map[string]string `json:"meta,omitempty"`
}

type LoginRequest struct {
	Email string `json:"email"`
}

type CommentRequest struct {
	Comment string `json:"comment"`
}
