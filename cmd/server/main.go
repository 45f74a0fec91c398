package main

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gowebdriver/webdriverd/internal/config"
	"github.com/gowebdriver/webdriverd/internal/httpapi"
	"github.com/gowebdriver/webdriverd/internal/protocol"
)

func setupLogger() *slog.Logger {
	var handler slog.Handler

	if os.Getenv("ENV") == "production" {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	} else {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
			ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
				if a.Key == slog.TimeKey {
					t := a.Value.Time()
					return slog.String("time", t.Format(time.DateTime))
				}
				return a
			},
		})
	}

	return slog.New(handler)
}

// echoHandler answers every command with its own re-encoded form. It
// performs no browser work, which makes the daemon usable for
// wire-protocol conformance testing.
type echoHandler struct{}

func (echoHandler) HandleCommand(ctx context.Context, msg *protocol.Message) (*protocol.Response, error) {
	if msg.Command.Kind == protocol.NewSession {
		id, err := newSessionID()
		if err != nil {
			return nil, err
		}
		slog.Info("session created", "session_id", id)
		return &protocol.Response{SessionID: id, Value: map[string]any{}}, nil
	}
	slog.Debug("echoing command", "kind", msg.Command.Kind.String(), "session_id", msg.SessionID)
	return &protocol.Response{Value: msg.ToJSON()}, nil
}

func newSessionID() (string, error) {
	randomBytes := make([]byte, 16)
	if _, err := rand.Read(randomBytes); err != nil {
		return "", fmt.Errorf("failed to generate session id: %w", err)
	}
	return base64.URLEncoding.EncodeToString(randomBytes), nil
}

func main() {
	logger := setupLogger()
	slog.SetDefault(logger)

	cfg := config.Load()
	slog.Info("WebDriver server starting", "server_port", cfg.ServerPort)

	server := httpapi.NewServer(cfg.ServerPort, echoHandler{})

	go func() {
		if err := server.Start(); err != nil {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	sig := <-quit
	slog.Info("shutdown initiated", "signal", sig.String())

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
	}

	slog.Info("shutdown complete")
}
