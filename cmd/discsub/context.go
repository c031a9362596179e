package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"discsub/internal/config"
	"discsub/internal/identification"
	"discsub/internal/logging"
	"discsub/internal/matchcache"
	"discsub/internal/redump"
)

type commandContext struct {
	configFlag   *string
	logLevelFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
	loggerErr  error
}

func newCommandContext(configFlag, logLevelFlag *string) *commandContext {
	return &commandContext{
		configFlag:   configFlag,
		logLevelFlag: logLevelFlag,
	}
}

func (c *commandContext) configPath() string {
	if c.configFlag == nil {
		return ""
	}
	return strings.TrimSpace(*c.configFlag)
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		cfg, _, _, err := config.Load(c.configPath())
		if err != nil {
			c.configErr = err
			return
		}
		if c.logLevelFlag != nil && strings.TrimSpace(*c.logLevelFlag) != "" {
			cfg.Logging.Level = strings.TrimSpace(*c.logLevelFlag)
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) ensureLogger() (*slog.Logger, error) {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.loggerErr = err
			return
		}
		c.logger, c.loggerErr = logging.NewFromConfig(cfg)
	})
	return c.logger, c.loggerErr
}

// catalog builds a catalog client from the loaded configuration.
func (c *commandContext) catalog() (*redump.Client, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	logger, err := c.ensureLogger()
	if err != nil {
		return nil, err
	}
	client, err := redump.NewFromConfig(cfg.Redump, logger)
	if err != nil {
		return nil, fmt.Errorf("create catalog client: %w", err)
	}
	return client, nil
}

// searcher returns the catalog search, decorated with the match cache when
// it is enabled. The returned close function is always non-nil.
func (c *commandContext) searcher(client *redump.Client) (identification.Searcher, func(), error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, nil, err
	}
	logger, err := c.ensureLogger()
	if err != nil {
		return nil, nil, err
	}
	cache, err := matchcache.OpenFromConfig(cfg, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("open match cache: %w", err)
	}
	if cache == nil {
		return client, func() {}, nil
	}
	closeFn := func() {
		if err := cache.Close(); err != nil {
			logger.Warn("failed to close match cache", logging.Error(err))
		}
	}
	return cache.Wrap(client), closeFn, nil
}

// openCache opens the configured cache database regardless of whether
// lookups are enabled, for maintenance commands.
func (c *commandContext) openCache() (*matchcache.Cache, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	logger, err := c.ensureLogger()
	if err != nil {
		return nil, err
	}
	return matchcache.Open(cfg.MatchCache.Path, cfg.MatchCacheMaxAge(), logger)
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}

func isTerminal(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
