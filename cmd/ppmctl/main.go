// Package main provides ppmctl, the administration CLI for the prototype parts database.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"protoparts/internal/app"
	appctx "protoparts/internal/core/context"
	"protoparts/internal/infrastructure/config"
	"protoparts/pkg/logger"
)

// cli carries state shared by all commands.
type cli struct {
	configFile string
	cfg        *config.Config
	log        *logger.Logger
}

func main() {
	c := &cli{}
	if err := c.root().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func (c *cli) root() *cobra.Command {
	root := &cobra.Command{
		Use:           "ppmctl",
		Short:         "Administer the prototype parts database",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(c.configFile)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			log, err := logger.New(logger.Config{
				Level:   cfg.Log.Level,
				Format:  "console",
				Output:  "stderr",
				Service: "ppmctl",
			})
			if err != nil {
				return fmt.Errorf("create logger: %w", err)
			}
			c.cfg, c.log = cfg, log
			ctx := appctx.WithTrace(cmd.Context(), appctx.NewTraceContext("", "", ""))
			cmd.SetContext(logger.WithLogger(ctx, log))
			return nil
		},
	}
	root.PersistentFlags().StringVar(&c.configFile, "config", "", "path to config file")

	root.AddCommand(
		c.migrateCmd(),
		c.userCmd(),
		c.tokenCmd(),
		c.historyCmd(),
		c.seedCmd(),
		c.sequenceCmd(),
	)
	return root
}

// withApp connects to the database for the duration of fn.
func (c *cli) withApp(ctx context.Context, fn func(a *app.App) error) error {
	cfg := *c.cfg
	cfg.Database.AutoMigrate = false
	a, err := app.New(ctx, &cfg, c.log)
	if err != nil {
		return err
	}
	defer a.Close()
	return fn(a)
}
