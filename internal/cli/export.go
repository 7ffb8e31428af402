package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/cyjs/pkg/cyjs"
	"github.com/matzehuels/cyjs/pkg/edgelist"
	"github.com/matzehuels/cyjs/pkg/io"
)

// exportCommand creates the export command, which converts a plain-text edge
// list into a Cytoscape.js JSON document.
func (c *CLI) exportCommand() *cobra.Command {
	var (
		output string
		opts   edgelist.Options
	)

	cmd := &cobra.Command{
		Use:   "export <edgelist>",
		Short: "Export an edge list as a Cytoscape.js JSON document",
		Long: `Export reads a plain-text edge list and writes it as a Cytoscape.js JSON document.

Each line of the edge list is one of:

  # comment
  graph key=value ...       graph attributes
  u v [key=value ...]       edge with attributes
  u [key=value ...]         node with attributes

The document is written to stdout unless --output is given.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runExport(cmd, args[0], output, opts)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (stdout if empty)")
	cmd.Flags().BoolVar(&opts.Directed, "directed", false, "treat edges as directed")
	cmd.Flags().BoolVar(&opts.Multigraph, "multigraph", false, "keep repeated edges as parallel edges")

	return cmd
}

func (c *CLI) runExport(cmd *cobra.Command, input, output string, opts edgelist.Options) error {
	logger := loggerFromContext(cmd.Context())
	cfg, err := c.settings()
	if err != nil {
		return err
	}

	prog := newProgress(logger)
	g, err := edgelist.ReadFile(input, opts)
	if err != nil {
		return err
	}
	logger.Debug("read edge list", "path", input, "nodes", g.NodeCount(), "edges", g.EdgeCount())

	doc, err := cyjs.Data(g, c.converterOptions(cfg)...)
	if err != nil {
		return err
	}

	if output == "" {
		return io.WriteJSON(doc, cmd.OutOrStdout())
	}
	if err := io.ExportJSON(doc, output); err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Exported %d nodes and %d edges", g.NodeCount(), g.EdgeCount()))

	w := cmd.OutOrStdout()
	printSuccess(w, "Exported %s", input)
	printFile(w, output)
	printNextStep(w, "Inspect it", appName+" inspect "+output)
	return nil
}
