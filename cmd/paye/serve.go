package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/naijatax/paye/internal/api"
	"github.com/naijatax/paye/internal/config"
	"github.com/naijatax/paye/internal/logging"
	"github.com/naijatax/paye/internal/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the calculator over HTTP",
	Long: `Serve the calculator as a JSON API.

Settings come from the environment, after loading .env (or the files
given with --env-file):
  PAYE_ADDR        listen address (default :8080)
  PAYE_ENV         development or production
  PAYE_RULES_FILE  rules file overriding the built-in band table
`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		envFiles, _ := cmd.Flags().GetStringSlice("env-file")
		cfg, err := config.LoadServerConfig(envFiles...)
		if err != nil {
			return err
		}
		if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
			cfg.Addr = addr
		}
		if rulesFile, _ := cmd.Flags().GetString("rules"); rulesFile != "" {
			cfg.RulesFile = rulesFile
		}

		level, _ := cmd.Flags().GetString("log-level")
		logger, err := logging.New(logging.Config{Level: level, Stage: cfg.Stage})
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()

		rules, err := loadRules(cfg.RulesFile)
		if err != nil {
			logger.Error("failed to load rules", zap.String("file", cfg.RulesFile), zap.Error(err))
			return err
		}

		reg := prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)

		srv := api.New(
			api.WithLogger(logger),
			api.WithRules(rules),
			api.WithMetrics(metrics.New(reg), reg),
		)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		logger.Info("paye api configured",
			zap.String("stage", cfg.Stage),
			zap.String("rules", rulesSource(cfg.RulesFile)),
			zap.String("regime", rules.Metadata.Act),
		)
		return srv.ListenAndServe(ctx, cfg.Addr)
	},
}

func rulesSource(path string) string {
	if path == "" {
		return "built-in"
	}
	return path
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (overrides PAYE_ADDR)")
	serveCmd.Flags().StringSlice("env-file", nil, "Env files to load instead of .env")
	serveCmd.Flags().String("log-level", "info", "Log level (debug, info, warn, error)")
}
