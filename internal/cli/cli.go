// Package cli implements the cyjs command-line interface.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/cyjs/pkg/buildinfo"
	"github.com/matzehuels/cyjs/pkg/config"
	"github.com/matzehuels/cyjs/pkg/cyjs"
	"github.com/matzehuels/cyjs/pkg/errors"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for display.
const appName = "cyjs"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
	fields     fieldFlags
}

// fieldFlags are the attribute-key overrides given on the command line.
// Empty values leave the config file or default in place.
type fieldFlags struct {
	source string
	target string
	name   string
	id     string
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	build := buildinfo.Get()
	root := &cobra.Command{
		Use:          appName,
		Short:        "cyjs converts graphs to and from Cytoscape.js JSON",
		Long:         `cyjs exports attributed graphs to the Cytoscape.js JSON document format, imports such documents back into graphs, and renders them as node-link diagrams.`,
		Version:      build.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(build.Template())

	pf := root.PersistentFlags()
	pf.StringVar(&c.configPath, "config", "", "config file (TOML, or YAML by extension) with attrs and render tables")
	pf.StringVar(&c.fields.source, "source-field", "", "attribute holding edge sources (default \"source\")")
	pf.StringVar(&c.fields.target, "target-field", "", "attribute holding edge targets (default \"target\")")
	pf.StringVar(&c.fields.name, "name-field", "", "attribute holding node names (default \"name\")")
	pf.StringVar(&c.fields.id, "id-field", "", "attribute for the id role; validated but not consulted, ids always come from node identifiers")

	root.AddCommand(c.exportCommand())
	root.AddCommand(c.inspectCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Settings
// =============================================================================

// settings loads the config file, if any, and applies the field flags on
// top of it.
func (c *CLI) settings() (config.Config, error) {
	cfg := config.Default()
	if c.configPath != "" {
		loaded, err := config.Load(c.configPath)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
	}

	overrides := []struct {
		flag string
		val  string
		dst  *string
	}{
		{"source-field", c.fields.source, &cfg.Attrs.Source},
		{"target-field", c.fields.target, &cfg.Attrs.Target},
		{"name-field", c.fields.name, &cfg.Attrs.Name},
		{"id-field", c.fields.id, &cfg.Attrs.ID},
	}
	for _, o := range overrides {
		if o.val == "" {
			continue
		}
		if err := errors.ValidateFieldName(o.val); err != nil {
			return config.Config{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "--%s", o.flag)
		}
		*o.dst = o.val
	}
	return cfg, nil
}

// converterOptions builds the options shared by every conversion.
func (c *CLI) converterOptions(cfg config.Config) []cyjs.Option {
	return []cyjs.Option{
		cyjs.WithAttrKeys(cfg.AttrKeys()),
		cyjs.WithLogger(c.Logger),
	}
}
