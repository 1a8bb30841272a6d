package cli

import (
	"context"
	"io"
	"os/signal"
	"syscall"

	"github.com/moqui-example/moqui-agents/internal/agents"
	"github.com/moqui-example/moqui-agents/internal/config"
	"github.com/moqui-example/moqui-agents/internal/dispatch"
	"github.com/moqui-example/moqui-agents/internal/logging"
	"github.com/moqui-example/moqui-agents/internal/mcpserver"
	"github.com/moqui-example/moqui-agents/internal/version"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve agent lookups to an MCP client over stdio",
		Args:  cobra.NoArgs,
		RunE:  runServe,
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if issues := config.Validate(&cfg); len(issues) > 0 {
		return config.IssuesError(issues)
	}

	fileLog := openServeLog(cfg)
	defer fileLog.Close()

	d, docs, err := newDispatcher(cfg, fileLog.Sub("dispatch"))
	if err != nil {
		return err
	}
	fileLog.Info().
		Str("projectRoot", docs.ProjectRoot).
		Str("agentsDir", docs.AgentsDir).
		Str("collaborationFile", docs.CollaborationFile).
		Str("version", version.ServerVersion()).
		Msg("moqui-agents server starting")

	srv := mcpserver.New(d,
		mcpserver.WithLogger(fileLog.Sub("mcpserver")),
		mcpserver.WithStatusWriter(cmd.ErrOrStderr()),
		mcpserver.WithVersion(version.ServerVersion()),
	)

	ctx, stop := signal.NotifyContext(cmdContext(cmd), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return srv.Serve(ctx, cmd.InOrStdin(), cmd.OutOrStdout())
}

// serveLog is the server's logger and the file behind it.
type serveLog struct {
	*logging.Logger
	closer io.Closer
}

func (l serveLog) Close() error {
	if l.closer == nil {
		return nil
	}
	return l.closer.Close()
}

// openServeLog opens the configured log file. stdout carries the protocol,
// so serve never logs to the console; without logging.file nothing is
// logged. An unwritable log file is reported and serving continues.
func openServeLog(cfg config.Config) serveLog {
	path := cfg.LogFile()
	l, closer, err := logging.OpenFile(path, cfg.Logging.Level)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("log file unavailable, continuing without file logging")
		return serveLog{Logger: logging.Nop()}
	}
	return serveLog{Logger: l, closer: closer}
}

// newDispatcher resolves document locations and builds the dispatcher over
// the default catalog.
func newDispatcher(cfg config.Config, l *logging.Logger) (*dispatch.Dispatcher, config.DocPaths, error) {
	docs, err := cfg.DocPaths()
	if err != nil {
		return nil, docs, err
	}
	d := dispatch.New(agents.Default(), dispatch.Config{
		AgentsDir:         docs.AgentsDir,
		CollaborationFile: docs.CollaborationFile,
	}, dispatch.WithLogger(l))
	return d, docs, nil
}

func cmdContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
