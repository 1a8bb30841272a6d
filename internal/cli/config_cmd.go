package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/moqui-example/moqui-agents/internal/config"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or edit the moqui-agents config file",
		Long: "Keys use dotted paths matching the config file: projectRoot, agentsPath, " +
			"collaborationPath, logging.level, logging.file.",
	}

	cmd.AddCommand(newConfigGetCmd())
	cmd.AddCommand(newConfigSetCmd())
	cmd.AddCommand(newConfigUnsetCmd())
	cmd.AddCommand(newConfigPathCmd())
	cmd.AddCommand(newConfigShowCmd())

	return cmd
}

func newConfigGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <key>",
		Short: "Print a value stored in the config file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := config.ParseConfigPath(args[0])
			if err != nil {
				return err
			}
			raw, err := config.LoadRaw(paths.Config)
			if err != nil {
				return err
			}
			val, ok := config.GetValueAtPath(raw, key)
			if !ok {
				return fmt.Errorf("key %q not set in %s", args[0], paths.Config)
			}
			return printValue(cmd.OutOrStdout(), val)
		},
	}
}

func newConfigSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Store a value in the config file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			value := parseValue(args[1])
			err := editConfig(args[0], func(raw map[string]any, key []string) error {
				config.SetValueAtPath(raw, key, value)
				return nil
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %v\n", args[0], value)
			return nil
		},
	}
}

func newConfigUnsetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "unset <key>",
		Short: "Remove a value from the config file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := editConfig(args[0], func(raw map[string]any, key []string) error {
				if !config.UnsetValueAtPath(raw, key) {
					return fmt.Errorf("key %q not set in %s", args[0], paths.Config)
				}
				return nil
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Unset %s\n", args[0])
			return nil
		},
	}
}

// editConfig loads the config file, applies edit at the dotted key, and
// saves the result only if it still decodes as a valid Config.
func editConfig(dotted string, edit func(raw map[string]any, key []string) error) error {
	key, err := config.ParseConfigPath(dotted)
	if err != nil {
		return err
	}
	raw, err := config.LoadRaw(paths.Config)
	if err != nil {
		return err
	}
	if err := edit(raw, key); err != nil {
		return err
	}
	if err := config.CheckRaw(raw); err != nil {
		return fmt.Errorf("refusing to save %s: %w", dotted, err)
	}
	log.Debug().Str("key", dotted).Str("path", paths.Config).Msg("saving config")
	return config.SaveRaw(paths.Config, raw)
}

func newConfigPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the config file path",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), paths.Config)
		},
	}
}

func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration after env and flag overrides",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			return writeYAML(cmd.OutOrStdout(), cfg)
		},
	}
}

// printValue writes scalars on one line and sections as YAML.
func printValue(w io.Writer, v any) error {
	switch val := v.(type) {
	case map[string]any, []any:
		return writeYAML(w, val)
	default:
		_, err := fmt.Fprintln(w, val)
		return err
	}
}

func writeYAML(w io.Writer, v any) error {
	data, err := yaml.Marshal(v)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// parseValue reads a command-line value as a bool, integer, or float when
// it parses as one, and as a string otherwise.
func parseValue(s string) any {
	switch strings.ToLower(s) {
	case "true":
		return true
	case "false":
		return false
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}
