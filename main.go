package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"ownedstack/components"
	"ownedstack/pkg/util"
)

const (
	keyMaxItems = "max-items"
	keyLogLevel = "log-level"
	keyLogJSON  = "log-json"
)

func newRootCmd(v *viper.Viper, fs afero.Fs) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ownedstack [script]",
		Short: "Run stack commands against an integer stack",
		Long: `Reads one command per line (push <int>, pop, peek, size, empty, full, print)
from script file or stdin and executes them on an integer stack.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := components.NewLogger(cmd.ErrOrStderr(), v.GetString(keyLogLevel), v.GetBool(keyLogJSON))

			cfg := &components.RunConfigs{MaxItems: v.GetInt(keyMaxItems)}
			if len(args) == 1 {
				cfg.ScriptPath = args[0]
			}

			summary, err := components.Run(fs, cmd.InOrStdin(), cmd.OutOrStdout(), log, cfg)
			if err != nil {
				return err
			}
			log.WithField("left", summary.Left).Debug("stack destroyed")
			return nil
		},
	}

	flags := cmd.Flags()
	flags.Int(keyMaxItems, 0, "maximum stack size, pushes above it fail as allocation failures (0 - unlimited)")
	flags.String(keyLogLevel, "warn", "log level")
	flags.Bool(keyLogJSON, false, "log in json format")
	util.PanicIfErr(v.BindPFlags(flags))

	v.SetEnvPrefix("ownedstack")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return cmd
}

func main() {
	if err := newRootCmd(viper.New(), afero.NewOsFs()).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
