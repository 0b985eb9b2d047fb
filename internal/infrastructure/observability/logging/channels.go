// Package logging provides structured logging channels for the SAUNTRIX
// content service.
package logging

import (
	"io"
	"log/slog"
	"os"
	"sync"
)

// Channel represents a logical logging channel for different system components
type Channel string

const (
	ChannelSystem   Channel = "system"   // General system operations
	ChannelStartup  Channel = "startup"  // Application startup and initialization
	ChannelShutdown Channel = "shutdown" // Application shutdown and cleanup

	ChannelAuth    Channel = "auth"    // Authentication and authorization
	ChannelContent Channel = "content" // Content mutations and moderation
	ChannelCache   Channel = "cache"   // Content cache operations

	ChannelStore    Channel = "store"    // Remote store reads/writes
	ChannelRealtime Channel = "realtime" // Change-stream subscriptions
	ChannelSSE      Channel = "sse"      // Server-sent events fan-out
)

// LoggerConfig contains configuration options for the channeled logger
type LoggerConfig struct {
	Output        io.Writer
	JSONFormat    bool
	DefaultLevel  slog.Level
	ChannelLevels map[Channel]slog.Level
}

// DefaultLoggerConfig returns a sensible default configuration
func DefaultLoggerConfig() *LoggerConfig {
	return &LoggerConfig{
		Output:        os.Stdout,
		JSONFormat:    true,
		DefaultLevel:  slog.LevelInfo,
		ChannelLevels: make(map[Channel]slog.Level),
	}
}

// ChanneledLogger provides structured logging with a named channel attribute
// per component. Channel loggers are created lazily and cached.
type ChanneledLogger struct {
	config   *LoggerConfig
	channels map[Channel]*slog.Logger
	mu       sync.Mutex
}

// NewChanneledLogger creates a new channeled logger with the given configuration
func NewChanneledLogger(config *LoggerConfig) *ChanneledLogger {
	if config == nil {
		config = DefaultLoggerConfig()
	}
	if config.Output == nil {
		config.Output = os.Stdout
	}
	return &ChanneledLogger{
		config:   config,
		channels: make(map[Channel]*slog.Logger),
	}
}

func (l *ChanneledLogger) channel(ch Channel) *slog.Logger {
	l.mu.Lock()
	defer l.mu.Unlock()

	if logger, ok := l.channels[ch]; ok {
		return logger
	}

	level := l.config.DefaultLevel
	if override, ok := l.config.ChannelLevels[ch]; ok {
		level = override
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if l.config.JSONFormat {
		handler = slog.NewJSONHandler(l.config.Output, opts)
	} else {
		handler = slog.NewTextHandler(l.config.Output, opts)
	}

	logger := slog.New(handler).With("channel", string(ch))
	l.channels[ch] = logger
	return logger
}

func (l *ChanneledLogger) System() *slog.Logger   { return l.channel(ChannelSystem) }
func (l *ChanneledLogger) Startup() *slog.Logger  { return l.channel(ChannelStartup) }
func (l *ChanneledLogger) Shutdown() *slog.Logger { return l.channel(ChannelShutdown) }
func (l *ChanneledLogger) Auth() *slog.Logger     { return l.channel(ChannelAuth) }
func (l *ChanneledLogger) Content() *slog.Logger  { return l.channel(ChannelContent) }
func (l *ChanneledLogger) Cache() *slog.Logger    { return l.channel(ChannelCache) }
func (l *ChanneledLogger) Store() *slog.Logger    { return l.channel(ChannelStore) }
func (l *ChanneledLogger) Realtime() *slog.Logger { return l.channel(ChannelRealtime) }
func (l *ChanneledLogger) SSE() *slog.Logger      { return l.channel(ChannelSSE) }
