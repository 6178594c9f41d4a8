package entity

// MessageResponse is the success body of every vectordb clear operation.
// Message is nil when the field is absent, which is not the same as empty.
type MessageResponse struct {
	Message *string `json:"message"`
}

func NewMessageResponse(message string) MessageResponse {
	return MessageResponse{Message: &message}
}

type UsersResponse struct {
	UserIDs []string `json:"user_ids"`
}

type SourcesResponse struct {
	Sources []string `json:"sources"`
}

// ErrorResponse is the body the server sends with non-200 statuses.
type ErrorResponse struct {
	Error string `json:"error"`
}
