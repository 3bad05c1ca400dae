// File: logger.go
// Title: Core Logger Implementation
// Description: Implements the Logger type with leveled methods, derived
//              contextual loggers, correlation IDs, and integration with
//              the coded errors of core/error.
// Version: v0.1.0
// Created: 2026-08-26
// Modified: 2026-08-26
//
// Change History:
// - 2026-08-26 v0.1.0: Initial implementation

package log

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"

	sverror "github.com/mbertram/sview/core/error"
)

// Logger represents a structured logger with contextual information
type Logger struct {
	level         Level
	formatter     Formatter
	output        io.Writer
	name          string
	contextFields Fields
	correlationID string

	mutex *sync.Mutex

	// exit is swapped in tests of Fatal.
	exit func(int)
}

// New creates a new logger with default configuration: info level, JSON
// output to stdout.
func New() *Logger {
	return &Logger{
		level:         DefaultLevel(),
		formatter:     NewJSONFormatter(),
		output:        os.Stdout,
		contextFields: make(Fields),
		mutex:         &sync.Mutex{},
		exit:          os.Exit,
	}
}

// clone returns a copy sharing the output mutex, so derived loggers still
// serialize their writes.
func (l *Logger) clone() *Logger {
	c := *l
	c.contextFields = make(Fields, len(l.contextFields))
	for k, v := range l.contextFields {
		c.contextFields[k] = v
	}
	return &c
}

// WithLevel returns a derived logger with the given minimum level
func (l *Logger) WithLevel(level Level) *Logger {
	c := l.clone()
	c.level = level
	return c
}

// WithFormatter returns a derived logger using the given formatter
func (l *Logger) WithFormatter(formatter Formatter) *Logger {
	c := l.clone()
	c.formatter = formatter
	return c
}

// WithOutput returns a derived logger writing to the given writer
func (l *Logger) WithOutput(output io.Writer) *Logger {
	c := l.clone()
	c.output = output
	return c
}

// WithName returns a derived logger with the given name
func (l *Logger) WithName(name string) *Logger {
	c := l.clone()
	c.name = name
	return c
}

// WithField returns a derived logger with an additional context field
func (l *Logger) WithField(key string, value interface{}) *Logger {
	c := l.clone()
	c.contextFields[key] = value
	return c
}

// WithFields returns a derived logger with additional context fields
func (l *Logger) WithFields(fields Fields) *Logger {
	c := l.clone()
	for k, v := range fields {
		c.contextFields[k] = v
	}
	return c
}

// WithCorrelationID returns a derived logger tagging entries with the ID
func (l *Logger) WithCorrelationID(id string) *Logger {
	c := l.clone()
	c.correlationID = id
	return c
}

// WithNewCorrelationID returns a derived logger with a freshly generated
// correlation ID
func (l *Logger) WithNewCorrelationID() *Logger {
	return l.WithCorrelationID(uuid.NewString())
}

// CorrelationID returns the logger's correlation ID, if any
func (l *Logger) CorrelationID() string {
	return l.correlationID
}

// IsLevelEnabled reports whether messages at the level would be written
func (l *Logger) IsLevelEnabled(level Level) bool {
	return level >= l.level
}

// Trace logs a message at trace level
func (l *Logger) Trace(message string, fields ...Fields) {
	l.log(LevelTrace, message, nil, fields)
}

// Debug logs a message at debug level
func (l *Logger) Debug(message string, fields ...Fields) {
	l.log(LevelDebug, message, nil, fields)
}

// Info logs a message at info level
func (l *Logger) Info(message string, fields ...Fields) {
	l.log(LevelInfo, message, nil, fields)
}

// Warn logs a message at warn level
func (l *Logger) Warn(message string, fields ...Fields) {
	l.log(LevelWarn, message, nil, fields)
}

// Error logs a message at error level
func (l *Logger) Error(message string, fields ...Fields) {
	l.log(LevelError, message, nil, fields)
}

// Fatal logs a message at fatal level and terminates the program
func (l *Logger) Fatal(message string, fields ...Fields) {
	l.log(LevelFatal, message, nil, fields)
	l.exit(1)
}

// ErrorWithErr logs a message with an attached error at error level
func (l *Logger) ErrorWithErr(message string, err error, fields ...Fields) {
	l.log(LevelError, message, err, fields)
}

// LogError logs a coded error at the level matching its severity, carrying
// its code, category and details as fields. Non-coded errors log at error
// level.
func (l *Logger) LogError(err error) {
	if err == nil {
		return
	}

	svErr, ok := err.(*sverror.Error)
	if !ok {
		l.log(LevelError, err.Error(), err, nil)
		return
	}

	level := LevelError
	switch svErr.Severity() {
	case sverror.SeverityLow:
		level = LevelWarn
	case sverror.SeverityMedium, sverror.SeverityHigh:
		level = LevelError
	}

	fields := Fields{
		"code":     svErr.Code().String(),
		"category": svErr.Code().Category(),
		"severity": svErr.Severity().String(),
	}
	if op := svErr.Operation(); op != "" {
		fields["operation"] = op
	}
	for k, v := range svErr.Details() {
		fields[k] = v
	}

	l.log(level, svErr.Error(), svErr, []Fields{fields})
}

func (l *Logger) log(level Level, message string, err error, extra []Fields) {
	if !l.IsLevelEnabled(level) {
		return
	}

	entry := &Entry{
		Timestamp:     time.Now(),
		Level:         level,
		Message:       message,
		Logger:        l.name,
		CorrelationID: l.correlationID,
		Fields:        merge(l.contextFields, extra),
		Error:         err,
	}

	out, ferr := l.formatter.Format(entry)
	if ferr != nil {
		return
	}

	l.mutex.Lock()
	defer l.mutex.Unlock()
	_, _ = l.output.Write(out)
}
