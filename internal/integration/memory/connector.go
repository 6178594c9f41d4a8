package memory

import (
	"context"
	"net/http"
	"net/url"

	"github.com/futig/vectordb-client/internal/config"
	"github.com/futig/vectordb-client/internal/entity"
	"github.com/futig/vectordb-client/internal/integration/common"
	pkghttp "github.com/futig/vectordb-client/pkg/http"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

const (
	memoryEndpoint     = "/vectordb/memory"
	pdfVectorsEndpoint = "/vectordb/pdf"
	sourcesEndpoint    = "/vectordb/pdf/sources"
	usersEndpoint      = "/users"
)

// Connector talks to the vectordb half of the service: chat memory,
// ingested PDF vectors and the users that own chat history.
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

// ClearAllMemory drops chat history for every user.
// DELETE /vectordb/memory
func (c *Connector) ClearAllMemory(ctx context.Context) (*entity.MessageResponse, error) {
	ctxzap.Info(ctx, "clearing chat memory for all users")
	return c.deleteWithMessage(ctx, memoryEndpoint)
}

// ClearUserMemory drops chat history for one user.
// DELETE /vectordb/memory/{user_id}
func (c *Connector) ClearUserMemory(ctx context.Context, userID string) (*entity.MessageResponse, error) {
	if userID == "" {
		return nil, entity.ErrEmptyUserID
	}
	ctxzap.Info(ctx, "clearing chat memory for user", zap.String("user_id", userID))
	return c.deleteWithMessage(ctx, memoryEndpoint+"/"+url.PathEscape(userID))
}

// ClearAllPDFVectors drops every ingested PDF from the vector store.
// DELETE /vectordb/pdf
func (c *Connector) ClearAllPDFVectors(ctx context.Context) (*entity.MessageResponse, error) {
	ctxzap.Info(ctx, "clearing all PDF vectors")
	return c.deleteWithMessage(ctx, pdfVectorsEndpoint)
}

// ClearPDFVectors drops the vectors of one ingested PDF.
// DELETE /vectordb/pdf/{source}
func (c *Connector) ClearPDFVectors(ctx context.Context, source string) (*entity.MessageResponse, error) {
	if source == "" {
		return nil, entity.ErrEmptySource
	}
	ctxzap.Info(ctx, "clearing PDF vectors", zap.String("source", source))
	return c.deleteWithMessage(ctx, pdfVectorsEndpoint+"/"+url.PathEscape(source))
}

// ListUsers returns the ids of users that have chat history.
// GET /users
func (c *Connector) ListUsers(ctx context.Context) ([]string, error) {
	var resp entity.UsersResponse
	if err := c.connector.DoRequest(ctx, http.MethodGet, usersEndpoint, nil, &resp); err != nil {
		ctxzap.Error(ctx, "failed to list users", zap.Error(err))
		return nil, err
	}

	ctxzap.Debug(ctx, "users listed", zap.Int("count", len(resp.UserIDs)))
	return resp.UserIDs, nil
}

// ListPDFSources returns the source paths of every ingested PDF.
// GET /vectordb/pdf/sources
func (c *Connector) ListPDFSources(ctx context.Context) ([]string, error) {
	var resp entity.SourcesResponse
	if err := c.connector.DoRequest(ctx, http.MethodGet, sourcesEndpoint, nil, &resp); err != nil {
		ctxzap.Error(ctx, "failed to list PDF sources", zap.Error(err))
		return nil, err
	}

	ctxzap.Debug(ctx, "PDF sources listed", zap.Int("count", len(resp.Sources)))
	return resp.Sources, nil
}

func (c *Connector) deleteWithMessage(ctx context.Context, endpoint string) (*entity.MessageResponse, error) {
	var resp entity.MessageResponse
	if err := c.connector.DoRequest(ctx, http.MethodDelete, endpoint, nil, &resp); err != nil {
		ctxzap.Error(ctx, "vectordb delete failed", zap.String("endpoint", endpoint), zap.Error(err))
		return nil, err
	}
	return &resp, nil
}
