package pdf

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"os"
	"strings"

	"github.com/futig/vectordb-client/internal/config"
	"github.com/futig/vectordb-client/internal/entity"
	"github.com/futig/vectordb-client/internal/integration/common"
	pkghttp "github.com/futig/vectordb-client/pkg/http"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

const (
	pdfEndpoint    = "/pdf"
	uploadEndpoint = "/pdf/upload"
	ingestEndpoint = "/pdf/ingest"

	uploadFieldName = "files"
	pdfContentType  = "application/pdf"
)

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

// Connector manages raw PDFs in the server data folder and triggers their
// ingestion into the vector store.
type Connector struct {
	connector *pkghttp.Connector
	logger    *zap.Logger
}

func NewConnector(
	cfg config.HTTPClientConfig,
	creds common.Credentials,
	logger *zap.Logger,
) *Connector {
	return &Connector{
		connector: common.NewBaseConnector(cfg, creds, logger),
		logger:    logger,
	}
}

// Upload streams the given files as one multipart request.
// POST /pdf/upload with multipart/form-data, one "files" part per file.
// Every opened file is closed before Upload returns.
func (c *Connector) Upload(ctx context.Context, files []entity.FileData) ([]string, error) {
	if len(files) == 0 {
		return nil, entity.ErrNoValidFiles
	}

	handles := make([]*os.File, 0, len(files))
	defer func() {
		for _, h := range handles {
			h.Close()
		}
	}()

	for _, file := range files {
		h, err := os.Open(file.Path)
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", file.Path, err)
		}
		handles = append(handles, h)
	}

	ctxzap.Info(ctx, "uploading PDFs", zap.Int("file_count", len(files)))

	prepareBody := func(writer *multipart.Writer) error {
		for i, file := range files {
			header := make(textproto.MIMEHeader)
			header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
				uploadFieldName, quoteEscaper.Replace(file.Filename)))
			header.Set("Content-Type", pdfContentType)

			part, err := writer.CreatePart(header)
			if err != nil {
				return fmt.Errorf("create form file: %w", err)
			}

			if _, err := io.Copy(part, handles[i]); err != nil {
				return fmt.Errorf("write file content: %w", err)
			}
		}
		return nil
	}

	var resp entity.UploadResponse
	if err := c.connector.DoMultipartRequest(ctx, http.MethodPost, uploadEndpoint, prepareBody, &resp); err != nil {
		ctxzap.Error(ctx, "failed to upload PDFs", zap.Error(err))
		return nil, err
	}

	ctxzap.Info(ctx, "PDFs uploaded", zap.Strings("uploaded", resp.Uploaded))
	return resp.Uploaded, nil
}

// DeleteAll removes every PDF from the data folder.
// DELETE /pdf
func (c *Connector) DeleteAll(ctx context.Context) (*entity.DeleteResponse, error) {
	ctxzap.Info(ctx, "deleting all PDFs")
	return c.delete(ctx, pdfEndpoint)
}

// Delete removes one PDF from the data folder.
// DELETE /pdf/{filename}
func (c *Connector) Delete(ctx context.Context, filename string) (*entity.DeleteResponse, error) {
	if filename == "" {
		return nil, entity.ErrEmptyFilename
	}
	ctxzap.Info(ctx, "deleting PDF", zap.String("filename", filename))
	return c.delete(ctx, pdfEndpoint+"/"+url.PathEscape(filename))
}

// IngestAll asks the server to ingest every PDF in the data folder.
// POST /pdf/ingest
func (c *Connector) IngestAll(ctx context.Context) (entity.IngestResponse, error) {
	ctxzap.Info(ctx, "ingesting all PDFs")
	return c.ingest(ctx, ingestEndpoint)
}

// Ingest asks the server to ingest one PDF.
// POST /pdf/ingest/{filename}
func (c *Connector) Ingest(ctx context.Context, filename string) (entity.IngestResponse, error) {
	if filename == "" {
		return nil, entity.ErrEmptyFilename
	}
	ctxzap.Info(ctx, "ingesting PDF", zap.String("filename", filename))
	return c.ingest(ctx, ingestEndpoint+"/"+url.PathEscape(filename))
}

// List returns the PDFs currently in the data folder.
// GET /pdf
func (c *Connector) List(ctx context.Context) ([]string, error) {
	var resp entity.PDFListResponse
	if err := c.connector.DoRequest(ctx, http.MethodGet, pdfEndpoint, nil, &resp); err != nil {
		ctxzap.Error(ctx, "failed to list PDFs", zap.Error(err))
		return nil, err
	}

	ctxzap.Debug(ctx, "PDFs listed", zap.Int("count", len(resp.PDFs)))
	return resp.PDFs, nil
}

func (c *Connector) delete(ctx context.Context, endpoint string) (*entity.DeleteResponse, error) {
	var resp entity.DeleteResponse
	if err := c.connector.DoRequest(ctx, http.MethodDelete, endpoint, nil, &resp); err != nil {
		ctxzap.Error(ctx, "failed to delete PDFs", zap.String("endpoint", endpoint), zap.Error(err))
		return nil, err
	}
	return &resp, nil
}

func (c *Connector) ingest(ctx context.Context, endpoint string) (entity.IngestResponse, error) {
	resp := entity.IngestResponse{}
	if err := c.connector.DoRequest(ctx, http.MethodPost, endpoint, nil, &resp); err != nil {
		ctxzap.Error(ctx, "failed to ingest PDFs", zap.String("endpoint", endpoint), zap.Error(err))
		return nil, err
	}
	return resp, nil
}
