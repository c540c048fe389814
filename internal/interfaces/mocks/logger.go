package mocks

import "github.com/Gio-ZA/task-manager-project/internal/interfaces"

// Logger is a no-op implementation of interfaces.Logger for tests.
type Logger struct{}

func (l *Logger) Info(msg string, keyvals ...interface{})  {}
func (l *Logger) Warn(msg string, keyvals ...interface{})  {}
func (l *Logger) Error(msg string, keyvals ...interface{}) {}
func (l *Logger) Debug(msg string, keyvals ...interface{}) {}
func (l *Logger) SetLevel(level string)                    {}

func (l *Logger) WithContext(ctx map[string]interface{}) interfaces.Logger { return l }
