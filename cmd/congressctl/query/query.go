package query

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/capitolhq/congressctl/internal/congress"
	"github.com/capitolhq/congressctl/internal/factories"
	"github.com/spf13/cobra"
)

// NewResourcesCmd lists the catalog so users can discover what the per-resource
// subcommands cover.
func NewResourcesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resources",
		Short: "List the available Congress.gov API resources",
		Run: func(cmd *cobra.Command, args []string) {
			for _, resource := range congress.Resources() {
				fmt.Fprintln(cmd.OutOrStdout(), resource)
			}
		},
	}
}

// NewResourceCmds builds one subcommand per catalog resource.
func NewResourceCmds(locator *factories.SharedServicesLocator) []*cobra.Command {
	resources := congress.Resources()
	cmds := make([]*cobra.Command, 0, len(resources))
	for _, resource := range resources {
		cmds = append(cmds, newResourceCmd(locator, resource))
	}
	return cmds
}

func printPayload(out io.Writer, payload []byte, pretty bool) error {
	if pretty {
		var buf bytes.Buffer
		if err := json.Indent(&buf, payload, "", "  "); err != nil {
			return fmt.Errorf("formatting payload: %w", err)
		}
		payload = buf.Bytes()
	}

	if _, err := fmt.Fprintln(out, string(payload)); err != nil {
		return fmt.Errorf("writing payload: %w", err)
	}
	return nil
}
