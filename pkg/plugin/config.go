package plugin

import (
	"os"
	"sync"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// A LADSPA host offers the plugin no configuration channel, so the
// bridge follows the LADSPA_PATH precedent and configures itself from
// the environment:
//
//	LADSPAGO_ENV       optional env file loaded before the other
//	                   variables are read
//	LADSPAGO_LOG       log level (debug, info, warn, error); empty
//	                   leaves logging disabled
//	LADSPAGO_LOG_FILE  log destination, for debugging a plugin inside a
//	                   host whose stderr is not visible
//
// Configuration is read once, on first descriptor access.

var configOnce sync.Once

func loadConfig() {
	configOnce.Do(func() {
		if envFile := os.Getenv("LADSPAGO_ENV"); envFile != "" {
			if err := godotenv.Load(envFile); err != nil {
				// Nothing is listening yet; stderr is the only channel.
				os.Stderr.WriteString("ladspago: cannot load env file " + envFile + ": " + err.Error() + "\n")
			}
		}

		levelStr := os.Getenv("LADSPAGO_LOG")
		if levelStr == "" {
			return
		}
		level, err := zapcore.ParseLevel(levelStr)
		if err != nil {
			level = zapcore.InfoLevel
		}

		cfg := zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(level)
		if file := os.Getenv("LADSPAGO_LOG_FILE"); file != "" {
			cfg.OutputPaths = []string{file}
			cfg.ErrorOutputPaths = []string{file}
		}

		l, err := cfg.Build()
		if err != nil {
			os.Stderr.WriteString("ladspago: cannot build logger: " + err.Error() + "\n")
			return
		}
		loggerMu.Lock()
		if logger == nil {
			logger = l.Named("ladspago")
		}
		loggerMu.Unlock()
	})
}
