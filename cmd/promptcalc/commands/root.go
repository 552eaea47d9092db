package commands

import (
	"time"

	"github.com/spf13/cobra"

	"promptcalc/internal/app"
)

var (
	home    string
	baseURL string
	model   string
	timeout time.Duration

	wire *app.Wire
)

func Execute() error {
	root := &cobra.Command{
		Use:          "promptcalc",
		Short:        "Calculator that delegates arithmetic to the Gemini API",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.LoadConfig()
			if err != nil {
				return err
			}
			if home != "" {
				cfg.Home = home
			}
			if baseURL != "" {
				cfg.BaseURL = baseURL
			}
			if model != "" {
				cfg.Model = model
			}
			if timeout > 0 {
				cfg.HTTPTimeout = timeout
			}

			wire, err = app.NewWire(cmd.Context(), cfg)
			return err
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if wire == nil {
				return nil
			}
			return wire.Close()
		},
	}

	root.PersistentFlags().StringVar(&home, "home", "", "profile dir (default ~/.promptcalc)")
	root.PersistentFlags().StringVar(&baseURL, "base-url", "", "API base URL override")
	root.PersistentFlags().StringVar(&model, "model", "", "model name (default gemini-pro)")
	root.PersistentFlags().DurationVar(&timeout, "timeout", 0, "HTTP timeout (default 30s)")

	root.AddCommand(calcCmd(), apikeyCmd(), historyCmd())
	return root.Execute()
}
