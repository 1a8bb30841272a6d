package cli

import (
	"fmt"
	"os"

	"github.com/moqui-example/moqui-agents/internal/config"
	"github.com/moqui-example/moqui-agents/internal/logging"
	"github.com/spf13/cobra"
)

var (
	cfgFile     string
	logLevel    string
	projectRoot string
	agentsPath  string

	// loaded at init time
	paths config.Paths
	log   *logging.Logger
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "moqui-agents",
		Short: "Moqui agents MCP server",
		Long: "moqui-agents serves the Moqui project agent catalog, agent role documents, " +
			"and the agent collaboration framework to MCP clients over stdio.\n\n" +
			"Run without a subcommand to start the stdio server.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			paths, err = config.ResolvePaths()
			if err != nil {
				return err
			}
			if cfgFile != "" {
				paths.Config = config.ExpandHome(cfgFile)
			}
			level := logLevel
			if level == "" {
				level = "warn"
			}
			log = logging.New(nil, level)
			return nil
		},
		Args:          cobra.NoArgs,
		RunE:          runServe,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ~/.moqui-agents/config.yaml)")
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (trace, debug, info, warn, error, fatal, silent)")
	cmd.PersistentFlags().StringVar(&projectRoot, "project-root", "", "Moqui project root (overrides "+config.EnvProjectRoot+")")
	cmd.PersistentFlags().StringVar(&agentsPath, "agents-path", "", "agent documents directory, relative to the project root (overrides "+config.EnvAgentsPath+")")

	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newAgentsCmd())
	cmd.AddCommand(newCheckCmd())
	cmd.AddCommand(newConfigCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// loadConfig reads the config file and applies flag overrides on top of the
// file and environment.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(paths.Config)
	if err != nil {
		return cfg, err
	}
	if projectRoot != "" {
		cfg.ProjectRoot = projectRoot
	}
	if agentsPath != "" {
		cfg.AgentsPath = agentsPath
	}
	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}
	return cfg, nil
}

// Execute runs the root command.
func Execute() error {
	err := newRootCmd().Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	return err
}
