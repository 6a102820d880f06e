package cli

import (
	"log/slog"

	"github.com/spf13/cobra"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"github.com/Thegreatvegan/Qura/internal/config"
	"github.com/Thegreatvegan/Qura/internal/contact"
	"github.com/Thegreatvegan/Qura/internal/handlers"
	"github.com/Thegreatvegan/Qura/internal/server"
	"github.com/Thegreatvegan/Qura/pkg/logger"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the web server",
	Long:  "Serve the landing page, contact endpoints and molecule images until interrupted.",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		// .env fills unset variables; .env.local overrides everything
		config.LoadDotEnv()
		fx.New(appOptions()...).Run()
	},
}

// appOptions assembles the server application.
func appOptions() []fx.Option {
	return []fx.Option{
		fx.WithLogger(func(log *slog.Logger) fxevent.Logger {
			return &fxevent.SlogLogger{Logger: log}
		}),

		// Infrastructure modules
		logger.Module,
		config.Module,
		server.Module,

		// Domain modules
		contact.Module,
		handlers.Module,
	}
}
