package common

import (
	"github.com/futig/vectordb-client/internal/config"
	pkgHTTP "github.com/futig/vectordb-client/pkg/http"
	"go.uber.org/zap"
)

// Credentials are captured once and attached to every request the
// connector sends.
type Credentials struct {
	Username string
	Password string
}

// NewBaseConnector builds a connector that sends creds as HTTP Basic auth on
// every request, even when both are empty.
func NewBaseConnector(cfg config.HTTPClientConfig, creds Credentials, logger *zap.Logger, extra ...pkgHTTP.HttpOpts) *pkgHTTP.Connector {
	// Transports wrap in order: logging sees the auth and request id headers.
	opts := append(clientOpts(cfg),
		pkgHTTP.WithRequestLogging(),
		pkgHTTP.WithBasicAuth(creds.Username, creds.Password),
		pkgHTTP.WithRequestID(),
	)
	return newConnector(cfg, logger, append(opts, extra...))
}

// NewAnonymousConnector builds a connector that sends no Authorization header.
func NewAnonymousConnector(cfg config.HTTPClientConfig, logger *zap.Logger, extra ...pkgHTTP.HttpOpts) *pkgHTTP.Connector {
	opts := append(clientOpts(cfg),
		pkgHTTP.WithRequestLogging(),
		pkgHTTP.WithRequestID(),
	)
	return newConnector(cfg, logger, append(opts, extra...))
}

func clientOpts(cfg config.HTTPClientConfig) []pkgHTTP.HttpOpts {
	return []pkgHTTP.HttpOpts{
		pkgHTTP.WithRequestTimeout(cfg.RequestTimeout),
		pkgHTTP.WithConnClientTimeout(cfg.ConnTimeout),
		pkgHTTP.WithClientKeepAlive(cfg.KeepAlive),
		pkgHTTP.WithIdleConnTimeout(cfg.IdleConnTimeout),
		pkgHTTP.WithResponseHeaderTimeout(cfg.ResponseHeaderTimeout),
		pkgHTTP.WithInsecureSkipVerify(cfg.InsecureSkipVerify),
	}
}

func newConnector(cfg config.HTTPClientConfig, logger *zap.Logger, opts []pkgHTTP.HttpOpts) *pkgHTTP.Connector {
	return pkgHTTP.NewConnector(&pkgHTTP.ConnectorConfig{
		Logger:  logger,
		BaseURL: cfg.Url,
	}, opts...)
}
