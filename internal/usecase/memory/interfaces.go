package memory

import (
	"context"

	"github.com/futig/vectordb-client/internal/entity"
)

type MemoryConnector interface {
	ClearAllMemory(ctx context.Context) (*entity.MessageResponse, error)
	ClearUserMemory(ctx context.Context, userID string) (*entity.MessageResponse, error)
	ClearAllPDFVectors(ctx context.Context) (*entity.MessageResponse, error)
	ClearPDFVectors(ctx context.Context, source string) (*entity.MessageResponse, error)
	ListUsers(ctx context.Context) ([]string, error)
	ListPDFSources(ctx context.Context) ([]string, error)
}

type Console interface {
	Prompt(label string) (string, error)
	Println(a ...any)
}
