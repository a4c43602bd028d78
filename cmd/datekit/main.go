package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/username/datekit/internal/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// app is the state shared by all subcommands once the root pre-run has
// loaded the config.
type app struct {
	configPath string
	output     string
	cfg        *config.Config
	logger     *zap.Logger
}

func main() {
	a := &app{logger: zap.NewNop()}
	rootCmd := newRootCmd(a)

	if err := rootCmd.Execute(); err != nil {
		a.logger.Warn("Command failed", zap.Strings("args", os.Args[1:]), zap.Error(err))
		_ = a.logger.Sync()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	_ = a.logger.Sync()
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "datekit",
		Short: "Calendar arithmetic for business dates",
		Long: "Month arithmetic with end-of-month clamping, Monday-start weeks, April fiscal halves,\n" +
			"HHMM time differences and labeled year/month lists.\n\n" +
			"Negative offsets need a -- separator, e.g. datekit months-later -- 20090331 -1",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.configPath)
			if err != nil {
				return err
			}
			a.cfg = cfg

			if a.output != "" {
				if err := config.ValidateOutputFormat(a.output); err != nil {
					return fmt.Errorf("--output: %w", err)
				}
			}

			if cfg.Log.File != "" {
				a.logger = initFileLogger(cfg.Log.File, cfg.Log.Level)
			} else {
				logger, err := initLogger(cfg.Log.Level)
				if err != nil {
					return err
				}
				a.logger = logger
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "Config file path (default: search ./datekit.yaml, $HOME/.datekit, /etc/datekit)")
	rootCmd.PersistentFlags().StringVarP(&a.output, "output", "o", "", "List output format: text, json or yaml (default from config)")

	rootCmd.AddCommand(
		monthsLaterCmd(a),
		monthsAgoCmd(a),
		firstDayCmd(a),
		lastDayCmd(a),
		mondayCmd(a),
		labelCmd(a),
		fiscalCmd(a),
		halfLabelCmd(a),
		timeLabelCmd(a),
		timeDiffCmd(a),
		timeAddCmd(a),
		yearsCmd(a),
		monthsCmd(a),
		yearMonthsCmd(a),
		yearMonthLabelCmd(a),
	)

	return rootCmd
}

func (a *app) outputFormat() string {
	if a.output != "" {
		return a.output
	}
	return a.cfg.Output.GetFormat()
}

func parseLevel(level string) zapcore.Level {
	var zapLevel zapcore.Level
	if err := zapLevel.UnmarshalText([]byte(level)); err != nil {
		zapLevel = zapcore.WarnLevel
	}
	return zapLevel
}

func initLogger(level string) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(parseLevel(level))
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

func initFileLogger(logFile string, level string) *zap.Logger {
	// Setup lumberjack for log rotation
	logWriter := &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    10, // MB
		MaxBackups: 3,
		MaxAge:     28, // days
		Compress:   true,
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(logWriter),
		parseLevel(level),
	)

	return zap.New(core)
}
