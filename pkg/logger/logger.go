package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
)

// Logger é a interface para logging
type Logger interface {
	Info(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
	Debug(msg string, keysAndValues ...interface{})
	Warn(msg string, keysAndValues ...interface{})
}

// Level é o nível mínimo de mensagens emitidas
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// ParseLevel interpreta debug, info, warn ou error. Valores
// desconhecidos viram info.
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	}
	return LevelInfo
}

// SimpleLogger é uma implementação simples de Logger
type SimpleLogger struct {
	level       Level
	infoLogger  *log.Logger
	errorLogger *log.Logger
	debugLogger *log.Logger
	warnLogger  *log.Logger
}

// NewLogger cria uma nova instância de Logger no nível informado
func NewLogger(level Level) Logger {
	return NewWithWriters(level, os.Stdout, os.Stderr)
}

// NewWithWriters cria um Logger escrevendo mensagens comuns em out e
// erros em errOut
func NewWithWriters(level Level, out, errOut io.Writer) Logger {
	flags := log.Ldate | log.Ltime
	return &SimpleLogger{
		level:       level,
		infoLogger:  log.New(out, "INFO: ", flags),
		errorLogger: log.New(errOut, "ERROR: ", flags),
		debugLogger: log.New(out, "DEBUG: ", flags),
		warnLogger:  log.New(out, "WARN: ", flags),
	}
}

// Info registra uma mensagem de informação
func (l *SimpleLogger) Info(msg string, keysAndValues ...interface{}) {
	l.print(LevelInfo, l.infoLogger, msg, keysAndValues)
}

// Error registra uma mensagem de erro
func (l *SimpleLogger) Error(msg string, keysAndValues ...interface{}) {
	l.print(LevelError, l.errorLogger, msg, keysAndValues)
}

// Debug registra uma mensagem de debug
func (l *SimpleLogger) Debug(msg string, keysAndValues ...interface{}) {
	l.print(LevelDebug, l.debugLogger, msg, keysAndValues)
}

// Warn registra uma mensagem de aviso
func (l *SimpleLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.print(LevelWarn, l.warnLogger, msg, keysAndValues)
}

func (l *SimpleLogger) print(level Level, target *log.Logger, msg string, kv []interface{}) {
	if level < l.level {
		return
	}
	target.Print(msg + formatPairs(kv))
}

// formatPairs escreve os pares chave/valor como " chave=valor"
func formatPairs(kv []interface{}) string {
	var b strings.Builder
	for i := 0; i < len(kv); i += 2 {
		if i+1 < len(kv) {
			fmt.Fprintf(&b, " %v=%v", kv[i], kv[i+1])
		} else {
			fmt.Fprintf(&b, " %v", kv[i])
		}
	}
	return b.String()
}

// Nop descarta todas as mensagens
type Nop struct{}

func (Nop) Info(string, ...interface{})  {}
func (Nop) Error(string, ...interface{}) {}
func (Nop) Debug(string, ...interface{}) {}
func (Nop) Warn(string, ...interface{})  {}
