package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/moqui-example/moqui-agents/internal/config"
	"github.com/spf13/cobra"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate configuration and report missing documents",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Config:  %s\n", paths.Config)

			if issues := config.Validate(&cfg); len(issues) > 0 {
				fmt.Fprintf(out, "\nValidation issues (%d):\n", len(issues))
				for _, issue := range issues {
					fmt.Fprintf(out, "  - %s\n", issue)
				}
				return errors.New("configuration is invalid")
			}

			d, docs, err := newDispatcher(cfg, log.Sub("dispatch"))
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Project: %s\n", docs.ProjectRoot)

			var problems []string
			if info, err := os.Stat(docs.ProjectRoot); err != nil {
				problems = append(problems, err.Error())
			} else if !info.IsDir() {
				problems = append(problems, docs.ProjectRoot+" is not a directory")
			}
			for _, name := range d.Catalog().Names() {
				path, err := d.AgentPath(name)
				if err != nil {
					return err
				}
				if _, err := os.Stat(path); err != nil {
					problems = append(problems, fmt.Sprintf("agent %s: %v", name, err))
				}
			}
			if _, err := os.Stat(d.CollaborationPath()); err != nil {
				problems = append(problems, fmt.Sprintf("collaboration framework: %v", err))
			}

			if len(problems) > 0 {
				fmt.Fprintf(out, "\nProblems (%d):\n", len(problems))
				for _, p := range problems {
					fmt.Fprintf(out, "  - %s\n", p)
				}
				return fmt.Errorf("%d document(s) unavailable", len(problems))
			}

			fmt.Fprintf(out, "All %d agent documents and the collaboration framework are present.\n", d.Catalog().Len())
			return nil
		},
	}
}
