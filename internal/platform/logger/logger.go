package logger

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"
	"time"
)

type Level int

const (
	Debug Level = iota
	Info
	Warn
	Error
)

func (l Level) String() string {
	switch l {
	case Debug:
		return "debug"
	case Warn:
		return "warn"
	case Error:
		return "error"
	default:
		return "info"
	}
}

func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return Debug
	case "warn", "warning":
		return Warn
	case "error":
		return Error
	default:
		return Info
	}
}

// Fields son pares clave/valor adjuntos a una línea de log.
type Fields map[string]any

type Logger interface {
	With(fields Fields) Logger

	Debug(msg string, fields Fields)
	Info(msg string, fields Fields)
	Warn(msg string, fields Fields)
	Error(msg string, fields Fields)
}

type Options struct {
	Level Level
	JSON  bool
	App   string
	Out   io.Writer // default os.Stdout
}

type stdLogger struct {
	mu    *sync.Mutex
	out   io.Writer
	level Level
	json  bool
	base  Fields
}

func New(opts Options) Logger {
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}

	base := Fields{}
	if app := strings.TrimSpace(opts.App); app != "" {
		base["app"] = app
	}

	return &stdLogger{
		mu:    &sync.Mutex{},
		out:   out,
		level: opts.Level,
		json:  opts.JSON,
		base:  base,
	}
}

// NewFromEnv crea un logger desde LOG_LEVEL, LOG_FORMAT y APP_NAME.
func NewFromEnv() Logger {
	return New(Options{
		Level: ParseLevel(os.Getenv("LOG_LEVEL")),
		JSON:  strings.EqualFold(strings.TrimSpace(os.Getenv("LOG_FORMAT")), "json"),
		App:   os.Getenv("APP_NAME"),
	})
}

func (l *stdLogger) With(fields Fields) Logger {
	if len(fields) == 0 {
		return l
	}

	merged := Fields{}
	for k, v := range l.base {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
	}

	// comparte mutex y salida; solo cambia el contexto base
	return &stdLogger{
		mu:    l.mu,
		out:   l.out,
		level: l.level,
		json:  l.json,
		base:  merged,
	}
}

func (l *stdLogger) Debug(msg string, fields Fields) { l.write(Debug, msg, fields) }
func (l *stdLogger) Info(msg string, fields Fields)  { l.write(Info, msg, fields) }
func (l *stdLogger) Warn(msg string, fields Fields)  { l.write(Warn, msg, fields) }
func (l *stdLogger) Error(msg string, fields Fields) { l.write(Error, msg, fields) }

func (l *stdLogger) write(lvl Level, msg string, fields Fields) {
	if lvl < l.level {
		return
	}

	entry := Fields{
		"ts":    time.Now().Format(time.RFC3339Nano),
		"level": lvl.String(),
		"msg":   msg,
	}
	for k, v := range l.base {
		entry[k] = v
	}
	for k, v := range fields {
		entry[k] = v
	}

	var line string
	if l.json {
		b, _ := json.Marshal(entry)
		line = string(b)
	} else {
		// keys ordenadas para salida estable
		keys := make([]string, 0, len(entry))
		for k := range entry {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		parts := make([]string, 0, len(keys))
		for _, k := range keys {
			parts = append(parts, fmt.Sprintf("%s=%v", k, entry[k]))
		}
		line = strings.Join(parts, " ")
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.out, line)
}
