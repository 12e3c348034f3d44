package main

import (
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"hoarder/internal/config"
	"hoarder/internal/textutil"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configPath string
	configErr  error
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		cfg, path, _, err := config.Load(c.explicitConfigPath())
		if err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
		c.configPath = path
	})
	return c.config, c.configErr
}

func (c *commandContext) explicitConfigPath() string {
	if c.configFlag == nil {
		return ""
	}
	return strings.TrimSpace(*c.configFlag)
}

// targetConfigPath is where credentials get written: the explicit --config
// path, else the file Load resolved, else the default location.
func (c *commandContext) targetConfigPath() (string, error) {
	if explicit := c.explicitConfigPath(); explicit != "" {
		return config.ExpandPath(explicit)
	}
	if c.configPath != "" {
		return c.configPath, nil
	}
	return config.DefaultConfigPath()
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}

func yesNo(value bool) string {
	return textutil.Ternary(value, "yes", "no")
}
