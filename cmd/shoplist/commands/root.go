package commands

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"shopping-list/config"
	"shopping-list/internal/app"
	"shopping-list/internal/notification"
	"shopping-list/pkg/log"
)

const flushTimeout = 15 * time.Second

var (
	verbose bool
	appCtx  *app.App
	logger  log.Logger
)

func Execute() error {
	root := &cobra.Command{
		Use:           "shoplist",
		Short:         "Manage your shopping list from the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			level := "warn"
			if verbose {
				level = "debug"
			}
			logger = log.Init(log.ZapConfig{
				Level:        level,
				Mode:         cfg.Logger.Mode,
				Encoding:     log.EncodingConsole,
				ColorEnabled: cfg.Logger.ColorEnabled,
				Output:       log.OutputStderr,
			})

			appCtx, err = app.New(cmd.Context(), cfg, logger)
			if err != nil {
				return err
			}
			reportState(cmd)
			return nil
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log debug output to stderr")

	root.AddCommand(listCmd(), addCmd(), editCmd(), rmCmd(), toggleCmd(), statsCmd(), importCmd(), exportCmd())

	runErr := root.ExecuteContext(context.Background())
	closeErr := closeApp()
	if runErr != nil {
		fmt.Fprintln(os.Stderr, "Error:", runErr)
		return runErr
	}
	if closeErr != nil {
		fmt.Fprintln(os.Stderr, "Error:", closeErr)
	}
	return closeErr
}

// closeApp saves pending changes. Commands that did not reach the app are a no-op.
func closeApp() error {
	if appCtx == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), flushTimeout)
	defer cancel()
	return appCtx.Close(ctx)
}

// reportState prints a load failure before the command output.
func reportState(cmd *cobra.Command) {
	for _, n := range appCtx.UseCase.Notifications(cmd.Context()) {
		if n.Kind == notification.KindError {
			fmt.Fprintln(cmd.ErrOrStderr(), "warning:", n.Message)
		}
	}
}
