package chat

import (
	"context"
	"net/http"

	"github.com/futig/vectordb-client/internal/config"
	"github.com/futig/vectordb-client/internal/entity"
	"github.com/futig/vectordb-client/internal/integration/common"
	pkghttp "github.com/futig/vectordb-client/pkg/http"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

type Connector struct {
	config    config.ChatConfig
	connector *pkghttp.Connector
	logger    *zap.Logger
}

// NewConnector builds a chat client that never reuses connections, so each
// request under load opens its own. creds are sent only when
// cfg.Authenticate is set.
func NewConnector(
	cfg config.ChatConfig,
	httpCfg config.HTTPClientConfig,
	creds common.Credentials,
	logger *zap.Logger,
) *Connector {
	noReuse := pkghttp.WithDisableKeepAlives(true)

	connector := common.NewAnonymousConnector(httpCfg, logger, noReuse)
	if cfg.Authenticate {
		connector = common.NewBaseConnector(httpCfg, creds, logger, noReuse)
	}

	return &Connector{
		config:    cfg,
		connector: connector,
		logger:    logger,
	}
}

// Send posts one chat message and returns the assistant reply.
// POST {chat_endpoint} {"user_id": ..., "message": ...}
func (c *Connector) Send(ctx context.Context, req entity.ChatRequest) (string, error) {
	ctxzap.Debug(ctx, "sending chat message", zap.String("user_id", req.UserID))

	var resp entity.ChatResponse
	if err := c.connector.DoRequest(ctx, http.MethodPost, c.config.Endpoint, req, &resp); err != nil {
		return "", err
	}

	if resp.Response == nil {
		return "", entity.ErrMissingResponse
	}

	return *resp.Response, nil
}
