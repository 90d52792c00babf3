// Package schemagen generates XML Schema documents describing Android
// layout XML from the model built by the sdk package.
//
// Two documents are produced: a schema in the Android attribute
// namespace declaring every resource attribute and one attribute
// group per styleable, and a default-namespace schema declaring one
// element and complex type per widget class, wired to the attribute
// groups through the class hierarchy.
package schemagen

import "log"

const (
	schemaNS  = "http://www.w3.org/2001/XMLSchema"
	androidNS = "http://schemas.android.com/apk/res/android"

	// File names of the two generated documents.
	AttributesFile = "android-attributes.xsd"
	LayoutFile     = "android-layout.xsd"

	// Name of the attribute group holding attributes declared
	// outside any styleable.
	globalGroup = "__global__"
)

// A Config holds settings for schema generation.
type Config struct {
	logger   Logger
	loglevel int
}

// Types implementing the Logger interface can receive progress and
// debug information from the generation process. The Logger
// interface is implemented by *log.Logger.
type Logger interface {
	Printf(format string, v ...interface{})
}

func (cfg *Config) logf(format string, v ...interface{}) {
	if cfg.logger != nil {
		cfg.logger.Printf(format, v...)
	}
}

func (cfg *Config) debugf(format string, v ...interface{}) {
	if cfg.logger != nil && cfg.loglevel > 2 {
		cfg.logger.Printf(format, v...)
	}
}

// An Option is used to customize a Config.
type Option func(*Config) Option

// The Option method applies options to a configuration. Its return
// value can be used to revert the final option to its previous
// setting.
func (cfg *Config) Option(opts ...Option) (previous Option) {
	for _, opt := range opts {
		previous = opt(cfg)
	}
	return previous
}

// LogOutput sets the destination for progress messages.
func LogOutput(l Logger) Option {
	return func(cfg *Config) Option {
		prev := cfg.logger
		cfg.logger = l
		return LogOutput(prev)
	}
}

// LogLevel sets the verbosity of messages sent to the log configured
// with LogOutput. Levels above 2 dump the loaded model.
func LogLevel(level int) Option {
	return func(cfg *Config) Option {
		prev := cfg.loglevel
		cfg.loglevel = level
		return LogLevel(prev)
	}
}

var _ Logger = (*log.Logger)(nil)
