// Package rxlog is the package's ambient structured logger: a thin wrapper over
// zerolog's global logger in the same chained-call style the completion handler in the
// language-server example uses (log.Error().Err(err).Str(...).Msg(...)). Callers that
// never configure logging get zerolog's default (silent-below-Info, stderr) behavior;
// callers that want pattern compilation and matching traced call SetLevel or SetOutput.
package rxlog

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

var logger = zerolog.New(os.Stderr).With().Timestamp().Logger().Level(levelFromEnv())

// levelFromEnv reads REGEXBENCH_LOG_LEVEL (e.g. "debug", "info", "warn"), the one
// ambient logging knob the CLI exposes beyond its own -v flag. Defaults to InfoLevel
// when unset or unparseable.
func levelFromEnv() zerolog.Level {
	v := os.Getenv("REGEXBENCH_LOG_LEVEL")
	if v == "" {
		return zerolog.InfoLevel
	}
	level, err := zerolog.ParseLevel(v)
	if err != nil {
		return zerolog.InfoLevel
	}
	return level
}

// SetLevel adjusts the minimum level rxlog emits. regex.Compile and Machine.Match log at
// debug level, so SetLevel(zerolog.DebugLevel) turns on per-compile and per-match tracing.
func SetLevel(level zerolog.Level) {
	logger = logger.Level(level)
}

// SetOutput redirects log output, e.g. to a file when running under cmd/regexbench.
func SetOutput(w io.Writer) {
	logger = logger.Output(w)
}

// CompileStart logs that a pattern is about to be compiled.
func CompileStart(pattern string) {
	logger.Debug().Str("pattern", pattern).Msg("compiling pattern")
}

// CompileOK logs a successful compile with the resulting machine's size.
func CompileOK(pattern string, numStates int) {
	logger.Debug().Str("pattern", pattern).Int("states", numStates).Msg("compiled pattern")
}

// CompileError logs a failed compile.
func CompileError(pattern string, err error) {
	logger.Warn().Str("pattern", pattern).Err(err).Msg("failed to compile pattern")
}

// ExecuteResult logs the outcome of a match attempt at debug level, including input
// size so a caller tracing a benchmark run can correlate timing with input growth.
func ExecuteResult(inputLen int, matched bool) {
	logger.Debug().Int("input_len", inputLen).Bool("matched", matched).Msg("executed match")
}

// ExecuteCancelled logs a context-cancelled match attempt.
func ExecuteCancelled(inputLen int, err error) {
	logger.Warn().Int("input_len", inputLen).Err(err).Msg("match cancelled")
}
