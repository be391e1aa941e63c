package logger

import "log"

const (
	DEBUG int = iota
	INFO
	WARNING
	ERROR

	// SILENCE suppresses every level. Tests run with it.
	SILENCE
)

// Logger is the leveled interface the whole codebase logs through. The
// default implementation prints to the standard library logger; anything
// fancier can be swapped in behind this interface.
type Logger interface {
	Debugf(msg string, a ...any)
	Infof(msg string, a ...any)
	Warnf(msg string, a ...any)
	Errorf(msg string, a ...any)
}

type defaultLogger struct {
	level int
}

// NewLogger returns a logger printing everything at or above level.
func NewLogger(level int) *defaultLogger {
	return &defaultLogger{level: level}
}

func (l *defaultLogger) Debugf(msg string, a ...any) { l.logf(DEBUG, msg, a...) }
func (l *defaultLogger) Infof(msg string, a ...any)  { l.logf(INFO, msg, a...) }
func (l *defaultLogger) Warnf(msg string, a ...any)  { l.logf(WARNING, msg, a...) }
func (l *defaultLogger) Errorf(msg string, a ...any) { l.logf(ERROR, msg, a...) }

func (l *defaultLogger) logf(level int, msg string, a ...any) {
	if level < l.level {
		return
	}

	log.Printf(msg+"\n", a...)
}
