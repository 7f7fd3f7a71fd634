package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/spenso-dev/spenso/internal/config"
	"github.com/spenso-dev/spenso/internal/gitops"
	"github.com/spenso-dev/spenso/internal/ledger"
)

// configFile is the project configuration file name.
const configFile = "spenso.yaml"

// loadConfig reads <dir>/spenso.yaml, falling back to defaults when the
// project has not been initialized.
func loadConfig(dir string) (*config.Config, error) {
	cfg, err := config.Load(filepath.Join(dir, configFile))
	if errors.Is(err, fs.ErrNotExist) {
		return config.Default(), nil
	}
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// newService builds the ledger Service for a project directory.
func newService(dir string) (*config.Config, *ledger.Service, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, nil, fmt.Errorf("resolving path: %w", err)
	}

	cfg, err := loadConfig(absDir)
	if err != nil {
		return nil, nil, err
	}

	store := ledger.NewStore(filepath.Join(absDir, cfg.Ledger.Path))

	var committer ledger.Committer
	if cfg.Git.AutoCommit {
		committer = &gitops.LedgerCommitter{
			Dir:         absDir,
			AuthorName:  cfg.Git.AuthorName,
			AuthorEmail: cfg.Git.AuthorEmail,
		}
	}

	return cfg, ledger.NewService(store, committer), nil
}
