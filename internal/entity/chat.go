package entity

type ChatRequest struct {
	UserID  string `json:"user_id"`
	Message string `json:"message"`
}

// ChatResponse keeps Response as a pointer so an absent field can be told
// apart from an empty reply.
type ChatResponse struct {
	Response *string `json:"response"`
}
