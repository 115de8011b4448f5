package diag

import (
	"io"
	"os"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Level is the logging threshold. A logger emits every event at or above
// its level in the order None < Fatal < Error < Warn < Info < Debug < Trace,
// where None emits nothing.
type Level int32

const (
	LevelNone Level = iota
	LevelFatal
	LevelError
	LevelWarn
	LevelInfo
	LevelDebug
	LevelTrace
)

var levelNames = [...]string{"none", "fatal", "error", "warn", "info", "debug", "trace"}

// String returns the lower-case level name.
func (l Level) String() string {
	if l < LevelNone || int(l) >= len(levelNames) {
		return "unknown"
	}
	return levelNames[l]
}

// zapLevel maps l onto zap. Fatal is logged at DPanic so that it never
// exits the process; Trace shares zap's Debug level.
func (l Level) zapLevel() zapcore.Level {
	switch l {
	case LevelNone:
		return zapcore.FatalLevel + 1
	case LevelFatal:
		return zapcore.DPanicLevel
	case LevelError:
		return zapcore.ErrorLevel
	case LevelWarn:
		return zapcore.WarnLevel
	case LevelInfo:
		return zapcore.InfoLevel
	default:
		return zapcore.DebugLevel
	}
}

// Sink selects where a Logger writes. Combine sinks with |.
type Sink int

const (
	SinkStdout Sink = 1 << iota
	SinkColorStdout
	SinkFile
)

// DefaultLogFile is the file SinkFile writes to unless WithFilePath is given.
const DefaultLogFile = "rogue.log"

// LoggerOption customizes NewLogger.
type LoggerOption func(*loggerConfig)

type loggerConfig struct {
	name     string
	filePath string
	console  zapcore.WriteSyncer
}

// WithFilePath sets the file SinkFile truncates and writes to.
func WithFilePath(path string) LoggerOption {
	return func(c *loggerConfig) {
		c.filePath = path
	}
}

// WithName sets the logger name printed with every entry.
func WithName(name string) LoggerOption {
	return func(c *loggerConfig) {
		c.name = name
	}
}

// WithConsole redirects the stdout sinks to w.
func WithConsole(w io.Writer) LoggerOption {
	return func(c *loggerConfig) {
		c.console = zapcore.AddSync(w)
	}
}

// Logger is a leveled logger over one or more sinks.
type Logger struct {
	z       *zap.Logger
	atom    zap.AtomicLevel
	level   atomic.Int32
	closers []io.Closer
}

// NewLogger builds a Logger writing to sinks at the given level.
func NewLogger(level Level, sinks Sink, opts ...LoggerOption) (*Logger, error) {
	cfg := loggerConfig{
		name:     "rogue",
		filePath: DefaultLogFile,
		console:  zapcore.Lock(os.Stdout),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	l := &Logger{atom: zap.NewAtomicLevelAt(level.zapLevel())}
	l.level.Store(int32(level))

	var cores []zapcore.Core
	if sinks&SinkStdout != 0 {
		cores = append(cores, zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig(false)), cfg.console, l.atom))
	}
	if sinks&SinkColorStdout != 0 {
		cores = append(cores, zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig(true)), cfg.console, l.atom))
	}
	if sinks&SinkFile != 0 {
		f, err := os.OpenFile(cfg.filePath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
		if err != nil {
			return nil, errors.Wrapf(err, "diag: open log file %q", cfg.filePath)
		}
		cores = append(cores, zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig(false)), zapcore.AddSync(f), l.atom))
		l.closers = append(l.closers, f)
	}

	l.z = zap.New(zapcore.NewTee(cores...)).Named(cfg.name)
	return l, nil
}

// NopLogger returns a Logger that discards everything.
func NopLogger() *Logger {
	l := &Logger{z: zap.NewNop(), atom: zap.NewAtomicLevelAt(LevelNone.zapLevel())}
	l.level.Store(int32(LevelNone))
	return l
}

// Level returns the current threshold.
func (l *Logger) Level() Level {
	return Level(l.level.Load())
}

// SetLevel changes the threshold of every sink.
func (l *Logger) SetLevel(level Level) {
	l.level.Store(int32(level))
	l.atom.SetLevel(level.zapLevel())
}

// Zap exposes the underlying zap logger.
func (l *Logger) Zap() *zap.Logger {
	return l.z
}

// Critical logs msg at the fatal threshold. It never exits or panics.
func (l *Logger) Critical(msg string, fields ...zap.Field) {
	l.z.Log(zapcore.DPanicLevel, msg, fields...)
}

// Error logs msg at error level.
func (l *Logger) Error(msg string, fields ...zap.Field) {
	l.z.Error(msg, fields...)
}

// Warn logs msg at warn level.
func (l *Logger) Warn(msg string, fields ...zap.Field) {
	l.z.Warn(msg, fields...)
}

// Info logs msg at info level.
func (l *Logger) Info(msg string, fields ...zap.Field) {
	l.z.Info(msg, fields...)
}

// Debug logs msg at debug level.
func (l *Logger) Debug(msg string, fields ...zap.Field) {
	l.z.Debug(msg, fields...)
}

// Trace logs at zap's Debug level, but only when the threshold is LevelTrace.
func (l *Logger) Trace(msg string, fields ...zap.Field) {
	if l.Level() < LevelTrace {
		return
	}
	l.z.Debug(msg, fields...)
}

// Sync flushes buffered entries. Errors from syncing a terminal are ignored.
func (l *Logger) Sync() {
	_ = l.z.Sync()
}

// Close flushes the logger and closes any log file it opened.
func (l *Logger) Close() error {
	l.Sync()
	var first error
	for _, c := range l.closers {
		if err := c.Close(); err != nil && first == nil {
			first = errors.Wrap(err, "diag: close log sink")
		}
	}
	l.closers = nil
	return first
}

const (
	colorRed     = "\x1b[31m"
	colorYellow  = "\x1b[33m"
	colorGreen   = "\x1b[32m"
	colorCyan    = "\x1b[36m"
	colorMagenta = "\x1b[35m"
	colorReset   = "\x1b[0m"
)

func encoderConfig(color bool) zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		TimeKey:          "time",
		LevelKey:         "level",
		NameKey:          "logger",
		MessageKey:       "msg",
		LineEnding:       zapcore.DefaultLineEnding,
		EncodeTime:       encodeTime,
		EncodeLevel:      levelEncoder(color),
		EncodeDuration:   zapcore.StringDurationEncoder,
		EncodeName:       zapcore.FullNameEncoder,
		ConsoleSeparator: " ",
	}
}

func encodeTime(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString("[" + t.Format("15:04:05") + "]")
}

func levelName(l zapcore.Level) string {
	if l == zapcore.DPanicLevel {
		return "critical"
	}
	return l.String()
}

func levelEncoder(color bool) zapcore.LevelEncoder {
	return func(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
		name := levelName(l)
		if !color {
			enc.AppendString("[" + name + "]")
			return
		}
		c := colorCyan
		switch {
		case l >= zapcore.DPanicLevel:
			c = colorMagenta
		case l == zapcore.ErrorLevel:
			c = colorRed
		case l == zapcore.WarnLevel:
			c = colorYellow
		case l == zapcore.InfoLevel:
			c = colorGreen
		}
		enc.AppendString("[" + c + name + colorReset + "]")
	}
}
