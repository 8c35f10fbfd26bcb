package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/et-services/quoterelay/internal/config"
	"github.com/et-services/quoterelay/internal/logging"
	"github.com/et-services/quoterelay/internal/mailer"
	"github.com/et-services/quoterelay/internal/mailer/mailersend"
	"github.com/et-services/quoterelay/internal/mailer/resend"
	"github.com/et-services/quoterelay/internal/server"
	"github.com/et-services/quoterelay/internal/service"
	"github.com/et-services/quoterelay/internal/telemetry"
	"github.com/et-services/quoterelay/internal/version"

	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the quote request HTTP server",
	Long: `Run the HTTP server that relays quote requests.

Configuration is read from the environment, optionally seeded from
.env.<ENV> and .env files in the working directory.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("error loading config: %w", err)
		}

		if port, _ := cmd.Flags().GetString("port"); port != "" {
			cfg.Port = port
		}

		logging.Configure(cfg.Logging())
		logger := logging.GetLogger()
		defer logger.Close()

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		return serve(ctx, cfg, logger)
	},
}

func init() {
	serveCmd.Flags().String("port", "", "Port to listen on (overrides PORT)")
}

func serve(ctx context.Context, cfg *config.Config, logger *logging.Logger) error {
	logger.Info("Starting quoterelay %s in %s mode", version.Version, cfg.Environment)

	shutdownTracing, err := telemetry.Setup(ctx, cfg.OTLPEndpoint, version.Version)
	if err != nil {
		return fmt.Errorf("failed to set up tracing: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(shutdownCtx); err != nil {
			logger.Error("Failed to flush traces: %v", err)
		}
	}()

	sender := newSender(cfg.Mail)
	if !cfg.Mail.Configured() {
		logger.Warn("%s API key is missing; quote requests will be rejected until it is set", sender.Name())
	}

	quotes := service.NewQuoteService(sender, cfg.Mail, logger)
	srv := server.NewServer(cfg, logger, quotes)

	if err := srv.Start(ctx); err != nil {
		logger.Error("Server error: %v", err)
		return err
	}
	logger.Info("Server stopped")
	return nil
}

func newSender(mail config.Mail) mailer.Sender {
	if mail.Provider == config.ProviderResend {
		return resend.New(mail.ResendKey)
	}
	return mailersend.New(mail.APIKey, mail.Endpoint)
}
