package diag

import "sync"

var (
	procMu sync.Mutex
	proc   *Logger
	nop    = NopLogger()
)

// Init builds the process logger. Calling Init again replaces the previous
// logger and closes it.
func Init(level Level, sinks Sink, opts ...LoggerOption) error {
	l, err := NewLogger(level, sinks, opts...)
	if err != nil {
		return err
	}
	procMu.Lock()
	old := proc
	proc = l
	procMu.Unlock()
	if old != nil {
		return old.Close()
	}
	return nil
}

// Process returns the process logger, or a discarding logger before Init
// and after Teardown.
func Process() *Logger {
	procMu.Lock()
	defer procMu.Unlock()
	if proc == nil {
		return nop
	}
	return proc
}

// SetLevel changes the threshold of the process logger.
func SetLevel(level Level) {
	Process().SetLevel(level)
}

// Teardown flushes and closes the process logger.
func Teardown() error {
	procMu.Lock()
	l := proc
	proc = nil
	procMu.Unlock()
	if l == nil {
		return nil
	}
	return l.Close()
}
