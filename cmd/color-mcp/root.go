package main

import (
	"fmt"
	"os"
	"strings"

	cc "github.com/ivanpirog/coloredcobra"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ironsheep/color-tools-mcp/internal/config"
	"github.com/ironsheep/color-tools-mcp/internal/key"
	"github.com/ironsheep/color-tools-mcp/internal/log"
	"github.com/ironsheep/color-tools-mcp/internal/server"
)

var cfgFile string

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default "+config.App+".toml in the user config dir)")
	rootCmd.Flags().BoolP("version", "v", false, "Print version information")
}

var rootCmd = &cobra.Command{
	Use:   config.App,
	Short: "MCP server for color parsing, blending and image color sampling",
	Long: `color-mcp serves color tools over the Model Context Protocol.

It communicates via JSON-RPC over stdin/stdout; configure it in your MCP
client (e.g., Claude Desktop). Logs go to stderr.

Environment variables use the ` + config.EnvPrefix + `_ prefix, e.g. ` + config.EnvPrefix + `_LOG_LEVEL=debug.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cfgFile != "" {
			if err := config.Setup(cfgFile); err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
		}
		log.Setup()
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if v, _ := cmd.Flags().GetBool("version"); v {
			versionCmd.Run(versionCmd, args)
			return nil
		}

		log.Debugf("%s %s (built %s, commit %s)", server.Name, Version, BuildTime, GitCommit)

		srv := server.NewWithOptions(server.Options{
			Seed:         viper.GetUint64(key.RandomSeed),
			PaletteCount: viper.GetInt(key.PaletteCount),
		})
		if err := srv.Run(); err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	},
}

// Execute loads the default configuration and runs the command line.
func Execute() {
	handleErr(config.Setup(""))

	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintln(os.Stderr, strings.TrimSpace(err.Error()))
		os.Exit(1)
	}
}
