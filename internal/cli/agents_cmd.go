package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newAgentsCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "agents",
		Short: "List the agent catalog and whether each role document exists",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			d, docs, err := newDispatcher(cfg, log.Sub("dispatch"))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				text, err := d.ListAgents()
				if err != nil {
					return err
				}
				fmt.Fprintln(out, text)
				return nil
			}

			fmt.Fprintf(out, "Agents:  %s\n\n", docs.AgentsDir)
			for _, a := range d.Catalog().List() {
				path, err := d.AgentPath(a.Name)
				if err != nil {
					return err
				}
				state := "ok"
				if _, err := os.Stat(path); err != nil {
					state = "missing"
				}
				fmt.Fprintf(out, "  %-22s %-8s %s\n", a.Name, state, a.Description)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the catalog as list_agents returns it")
	return cmd
}
