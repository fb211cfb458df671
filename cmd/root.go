// Package cmd contains all the commands included in the binary file.
package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"

	"github.com/benz9527/xlinear/xlog"
)

const (
	logLevelFlag  = "log-level"
	logLevelConf  = "log.level"
	logFormatFlag = "log-format"
	logFormatConf = "log.format"
)

// NewRootCommand enables all children commands to read flags from CLI flags, environment variables prefixed with XLINEAR, or config.yaml (in that order).
func NewRootCommand() *cobra.Command {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.SetEnvPrefix("XLINEAR")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	viper.AutomaticEnv()

	configPaths := []string{"/etc/xlinear", "$HOME/.xlinear", "."}
	for _, path := range configPaths {
		viper.AddConfigPath(path)
	}
	_ = viper.ReadInConfig()

	root := &cobra.Command{
		Use:   "xlinear",
		Short: "Checks brackets, converts and evaluates arithmetic expressions",
		Long: `Checks the balance of brackets, converts infix expressions into postfix or prefix
expressions and evaluates one-digit arithmetic expressions in any of the three notations.`,
		SilenceUsage: true,
	}

	flags := root.PersistentFlags()
	flags.String(logLevelFlag, xlog.LogLevelWarn.String(), "the log level to use (DEBUG, INFO, WARN, ERROR)")
	mustBindPFlag(logLevelConf, flags.Lookup(logLevelFlag))
	mustBindEnv(logLevelConf, "XLINEAR_LOG_LEVEL")

	flags.String(logFormatFlag, "text", "the log format to output logs in (json, text)")
	mustBindPFlag(logFormatConf, flags.Lookup(logFormatFlag))
	mustBindEnv(logFormatConf, "XLINEAR_LOG_FORMAT")

	return root
}

// newLogger builds the logger from the bound configuration. Logs go to
// stderr, stdout is kept for the results.
func newLogger() xlog.XLogger {
	enc := xlog.ParseLogEncoder(viper.GetString(logFormatConf))
	lvlEnc, tsEnc := logEncoders(enc)
	return xlog.NewXLogger(
		xlog.WithXLoggerWriter(xlog.StdErr),
		xlog.WithXLoggerLevel(xlog.ParseLogLevel(viper.GetString(logLevelConf))),
		xlog.WithXLoggerEncoder(enc),
		xlog.WithXLoggerLevelEncoder(lvlEnc),
		xlog.WithXLoggerTimeEncoder(tsEnc),
	)
}

// logEncoders keeps text logs readable and json logs machine friendly.
func logEncoders(enc xlog.LogEncoderType) (zapcore.LevelEncoder, zapcore.TimeEncoder) {
	if enc == xlog.JSON {
		return zapcore.LowercaseLevelEncoder, zapcore.RFC3339NanoTimeEncoder
	}
	return zapcore.CapitalLevelEncoder, zapcore.ISO8601TimeEncoder
}
