package builder

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/futig/vectordb-client/internal/cli"
	"github.com/futig/vectordb-client/internal/config"
	"github.com/futig/vectordb-client/internal/integration/chat"
	"github.com/futig/vectordb-client/internal/integration/common"
	memoryconn "github.com/futig/vectordb-client/internal/integration/memory"
	pdfconn "github.com/futig/vectordb-client/internal/integration/pdf"
	"github.com/futig/vectordb-client/internal/loadtest"
	"github.com/futig/vectordb-client/internal/mockserver"
	"github.com/futig/vectordb-client/internal/pkg/logger"
	"go.uber.org/zap"
)

func setup() (*config.Config, *zap.Logger, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("setup logger: %w", err)
	}

	return cfg, log, nil
}

// BuildMemoryManager wires the chat memory / vectordb menu. Credentials
// missing from the configuration are read from in before the menu starts.
func BuildMemoryManager(in io.Reader, out io.Writer) (*CLI, error) {
	cfg, log, err := setup()
	if err != nil {
		return nil, err
	}

	console := cli.NewConsole(in, out)
	creds, err := cli.Credentials(console, cfg.APICfg)
	if err != nil {
		return nil, err
	}

	log.Info("Building memory manager",
		zap.String("environment", cfg.Environment),
		zap.String("base_url", cfg.APICfg.Url),
	)

	connector := memoryconn.NewConnector(cfg.APICfg.HTTPClientConfig, creds, log)

	return &CLI{
		menu:   NewMemoryMenu(console, connector),
		logger: log,
	}, nil
}

// BuildPDFManager wires the PDF data folder menu.
func BuildPDFManager(in io.Reader, out io.Writer) (*CLI, error) {
	cfg, log, err := setup()
	if err != nil {
		return nil, err
	}

	console := cli.NewConsole(in, out)
	creds, err := cli.Credentials(console, cfg.APICfg)
	if err != nil {
		return nil, err
	}

	log.Info("Building PDF manager",
		zap.String("environment", cfg.Environment),
		zap.String("base_url", cfg.APICfg.Url),
	)

	connector := pdfconn.NewConnector(cfg.APICfg.HTTPClientConfig, creds, log)

	return &CLI{
		menu:   NewPDFMenu(console, connector),
		logger: log,
	}, nil
}

// BuildLoadTest wires the chat load harness from LOADTEST_* settings.
func BuildLoadTest(out io.Writer) (*LoadTest, error) {
	cfg, log, err := setup()
	if err != nil {
		return nil, err
	}

	creds := common.Credentials{
		Username: cfg.APICfg.Username,
		Password: cfg.APICfg.Password,
	}
	connector := chat.NewConnector(cfg.ChatCfg, cfg.APICfg.HTTPClientConfig, creds, log)

	log.Info("Building chat load test",
		zap.String("environment", cfg.Environment),
		zap.String("base_url", cfg.APICfg.Url),
		zap.String("mode", cfg.LoadTestCfg.Mode),
		zap.Int("requests", cfg.LoadTestCfg.Requests),
		zap.Bool("chat_auth", cfg.ChatCfg.Authenticate),
	)

	return &LoadTest{
		cfg:     cfg.LoadTestCfg,
		harness: loadtest.NewHarness(connector),
		out:     out,
		logger:  log,
	}, nil
}

// BuildMockServer wires the in-memory stand-in service.
func BuildMockServer() (*App, error) {
	cfg, log, err := setup()
	if err != nil {
		return nil, err
	}

	mock := mockserver.NewServer(mockserver.Options{
		Username:      cfg.MockServerCfg.Username,
		Password:      cfg.MockServerCfg.Password,
		ChatRateLimit: cfg.MockServerCfg.ChatRateLimit,
		ChatRateBurst: cfg.MockServerCfg.ChatRateBurst,
		Logger:        log,
	})

	if cfg.MockServerCfg.Seed {
		if err := mockserver.Seed(mock.Store()); err != nil {
			return nil, fmt.Errorf("seed mock server: %w", err)
		}
		log.Info("Mock server seeded", zap.Strings("pdfs", mock.Store().PDFs()))
	}

	server := &http.Server{
		Addr:         cfg.MockServerCfg.Addr,
		Handler:      mock.Handler(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	log.Info("Mock server built successfully",
		zap.String("environment", cfg.Environment),
		zap.Bool("chat_rate_limited", cfg.MockServerCfg.ChatRateLimit > 0),
	)

	return &App{
		server: server,
		logger: log,
	}, nil
}
