package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/cyjs/pkg/config"
	"github.com/matzehuels/cyjs/pkg/cyjs"
	"github.com/matzehuels/cyjs/pkg/errors"
	"github.com/matzehuels/cyjs/pkg/io"
	"github.com/matzehuels/cyjs/pkg/nodelink"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output   string // output file path (stdout if empty)
	format   string // "dot" or "svg"; derived from output when empty
	detailed bool   // list attributes in labels
}

// renderCommand creates the render command, which imports a document and
// draws it as a node-link diagram.
//
// The output format comes from --format, then the output file extension,
// then the [render] table of the config file.
func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render <doc.json>",
		Short: "Render a Cytoscape.js JSON document as DOT or SVG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd, args[0], opts, cmd.Flags().Changed("detailed"))
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (stdout if empty)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "output format: svg, dot (default from output extension)")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "list node and edge attributes in labels")
	_ = cmd.RegisterFlagCompletionFunc("format", cobra.FixedCompletions(config.Formats, cobra.ShellCompDirectiveNoFileComp))

	return cmd
}

func (c *CLI) runRender(cmd *cobra.Command, path string, opts renderOpts, detailedSet bool) error {
	logger := loggerFromContext(cmd.Context())
	cfg, err := c.settings()
	if err != nil {
		return err
	}

	format := resolveFormat(opts.format, opts.output, cfg.Render.Format)
	if err := errors.ValidateFormat(format, config.Formats...); err != nil {
		return err
	}
	detailed := cfg.Render.Detailed
	if detailedSet {
		detailed = opts.detailed
	}

	prog := newProgress(logger)
	doc, err := io.ImportJSON(path)
	if err != nil {
		return err
	}
	g, err := cyjs.Graph[any](doc, c.converterOptions(cfg)...)
	if err != nil {
		return err
	}

	dot := nodelink.ToDOT(g, nodelink.Options{Detailed: detailed})
	out := []byte(dot)
	if format == "svg" {
		logger.Debug("rendering svg", "nodes", g.NodeCount(), "edges", g.EdgeCount())
		if out, err = nodelink.RenderSVG(cmd.Context(), dot); err != nil {
			return err
		}
	}

	if opts.output == "" {
		_, err := cmd.OutOrStdout().Write(out)
		return err
	}
	if err := os.WriteFile(opts.output, out, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", opts.output, err)
	}
	prog.done(fmt.Sprintf("Rendered %s", format))

	w := cmd.OutOrStdout()
	printSuccess(w, "Rendered %s", path)
	printFile(w, opts.output)
	return nil
}

// resolveFormat picks the output format from the flag, the output file
// extension, or the fallback, in that order.
func resolveFormat(flag, output, fallback string) string {
	if flag != "" {
		return strings.ToLower(flag)
	}
	if ext := strings.TrimPrefix(filepath.Ext(output), "."); ext != "" {
		return strings.ToLower(ext)
	}
	return fallback
}
