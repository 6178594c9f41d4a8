package pdf

import (
	"context"

	"github.com/futig/vectordb-client/internal/entity"
)

type PDFConnector interface {
	Upload(ctx context.Context, files []entity.FileData) ([]string, error)
	DeleteAll(ctx context.Context) (*entity.DeleteResponse, error)
	Delete(ctx context.Context, filename string) (*entity.DeleteResponse, error)
	IngestAll(ctx context.Context) (entity.IngestResponse, error)
	Ingest(ctx context.Context, filename string) (entity.IngestResponse, error)
	List(ctx context.Context) ([]string, error)
}

type Console interface {
	Prompt(label string) (string, error)
	Println(a ...any)
}
