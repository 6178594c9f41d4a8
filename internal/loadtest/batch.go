package loadtest

import (
	"fmt"

	"github.com/futig/vectordb-client/internal/entity"
)

// NewBatch builds n chat requests spread over users distinct user ids:
// request i comes from "user_{i % users}" and says "Test message {i}".
func NewBatch(n, users int) []entity.ChatRequest {
	if users < 1 {
		users = 1
	}

	batch := make([]entity.ChatRequest, n)
	for i := range n {
		batch[i] = entity.ChatRequest{
			UserID:  fmt.Sprintf("user_%d", i%users),
			Message: fmt.Sprintf("Test message %d", i),
		}
	}
	return batch
}
