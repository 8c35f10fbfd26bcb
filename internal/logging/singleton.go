package logging

import (
	"os"
	"sync"
)

var (
	instance  *Logger
	once      sync.Once
	mu        sync.RWMutex
	logConfig *Config
)

// Configure sets the logging configuration.
// This should be called before any logger usage.
func Configure(config *Config) {
	mu.Lock()
	defer mu.Unlock()
	logConfig = config
}

// GetLogger returns the process-wide logger.
// Without a prior Configure call it falls back to an info-level stdout logger.
func GetLogger() *Logger {
	once.Do(func() {
		mu.RLock()
		cfg := logConfig
		mu.RUnlock()

		if cfg == nil {
			instance = NewWithWriter(os.Stdout, LevelInfo)
			return
		}

		var err error
		instance, err = NewLogger(cfg)
		if err != nil {
			panic("failed to initialize logger: " + err.Error())
		}
	})

	return instance
}
