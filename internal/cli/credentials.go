package cli

import (
	"fmt"

	"github.com/futig/vectordb-client/internal/cli/render"
	"github.com/futig/vectordb-client/internal/config"
	"github.com/futig/vectordb-client/internal/integration/common"
)

// Credentials returns the configured credentials, asking for whichever of
// username and password is missing.
func Credentials(console *Console, cfg config.APIConfig) (common.Credentials, error) {
	creds := common.Credentials{
		Username: cfg.Username,
		Password: cfg.Password,
	}

	if creds.Username == "" {
		username, err := console.Prompt(render.PromptUsername)
		if err != nil {
			return creds, fmt.Errorf("read username: %w", err)
		}
		creds.Username = username
	}

	if creds.Password == "" {
		password, err := console.Prompt(render.PromptPassword)
		if err != nil {
			return creds, fmt.Errorf("read password: %w", err)
		}
		creds.Password = password
	}

	return creds, nil
}
