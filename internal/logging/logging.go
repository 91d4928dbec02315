// Package logging writes structured logs to a rotated file. The terminal
// belongs to the TUI, so nothing is ever written to stdout or stderr.
package logging

import (
	"errors"
	"os"
	"path/filepath"
	"sync"

	"github.com/adrg/xdg"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config holds configuration for the Manager.
type Config struct {
	FilePath   string // empty means DefaultPath()
	MaxSizeMB  int    // Max size in MB before rotation
	MaxBackups int    // Max number of old log files to keep
	MaxAgeDays int    // Max days to keep old log files
	Level      string // Minimum log level (debug, info, warn, error)
}

// DefaultPath returns the log file location under the XDG state dir.
func DefaultPath() (string, error) {
	return xdg.StateFile(filepath.Join("portrait", "portrait.log"))
}

// Manager owns the base logger and hands out named child loggers.
type Manager struct {
	base       *zap.Logger
	fileWriter *lumberjack.Logger
	loggers    map[string]*zap.Logger
	mu         sync.Mutex
}

// New creates a manager writing JSON lines to a rotated file.
func New(cfg Config) (*Manager, error) {
	if cfg.FilePath == "" {
		path, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		cfg.FilePath = path
	}
	if cfg.MaxSizeMB == 0 {
		cfg.MaxSizeMB = 10
	}
	if cfg.MaxBackups == 0 {
		cfg.MaxBackups = 3
	}
	if cfg.MaxAgeDays == 0 {
		cfg.MaxAgeDays = 28
	}

	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	if err := os.MkdirAll(filepath.Dir(cfg.FilePath), 0o755); err != nil {
		return nil, err
	}

	fileWriter := &lumberjack.Logger{
		Filename:   cfg.FilePath,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
		Compress:   true,
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "ts"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.EncodeLevel = zapcore.LowercaseLevelEncoder

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderCfg),
		zapcore.AddSync(fileWriter),
		level,
	)

	return &Manager{
		base:       zap.New(core),
		fileWriter: fileWriter,
		loggers:    make(map[string]*zap.Logger),
	}, nil
}

// Nop returns a manager that discards everything.
func Nop() *Manager {
	return &Manager{
		base:    zap.NewNop(),
		loggers: make(map[string]*zap.Logger),
	}
}

// For returns the logger for scope. Loggers are cached per scope.
func (m *Manager) For(scope string) *zap.Logger {
	m.mu.Lock()
	defer m.mu.Unlock()

	if l, ok := m.loggers[scope]; ok {
		return l
	}
	l := m.base.Named(scope)
	m.loggers[scope] = l
	return l
}

// Close flushes and closes the log file.
func (m *Manager) Close() error {
	// Sync on a plain file can fail with EINVAL on some platforms; the
	// writer close below still flushes.
	_ = m.base.Sync()
	if m.fileWriter == nil {
		return nil
	}
	return m.fileWriter.Close()
}

// ErrNoFile is returned by Path for a manager without a file.
var ErrNoFile = errors.New("logging: no log file")

// Path returns the file being written.
func (m *Manager) Path() (string, error) {
	if m.fileWriter == nil {
		return "", ErrNoFile
	}
	return m.fileWriter.Filename, nil
}
