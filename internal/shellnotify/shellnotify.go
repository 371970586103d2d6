// Package shellnotify pushes best-effort notifications to the desktop
// shell over a unix socket. The shell is optional; when it is absent or
// unreachable the notification is dropped and only logged.
package shellnotify

import (
	"encoding/json"
	"log/slog"
	"net"
	"time"

	"aniweek/internal/config"
	"aniweek/internal/logging"
)

const dialTimeout = time.Second

// Notifier is the shell-facing side of theme changes.
type Notifier interface {
	ChangeIcon(themeID string)
}

type message struct {
	Type  string `json:"type"`
	Theme string `json:"theme"`
}

// Service writes notifications to the configured shell socket.
type Service struct {
	socket string
	logger *slog.Logger
}

// New returns a notifier for the configured shell socket, or a no-op one
// when no socket is configured.
func New(cfg *config.Config, logger *slog.Logger) Notifier {
	if logger == nil {
		logger = logging.NewNop()
	}
	if cfg == nil || cfg.Paths.ShellSocket == "" {
		return noop{}
	}
	return &Service{
		socket: cfg.Paths.ShellSocket,
		logger: logger.With(logging.String(logging.FieldComponent, "shellnotify")),
	}
}

// ChangeIcon tells the shell to swap its tray icon for the theme. The call
// never fails; delivery problems are logged and dropped.
func (s *Service) ChangeIcon(themeID string) {
	if err := s.send(message{Type: "change-icon", Theme: themeID}); err != nil {
		s.logger.Debug("shell notification dropped",
			logging.String("theme", themeID),
			logging.Error(err))
	}
}

func (s *Service) send(msg message) error {
	conn, err := net.DialTimeout("unix", s.socket, dialTimeout)
	if err != nil {
		return err
	}
	defer conn.Close()
	if err := conn.SetWriteDeadline(time.Now().Add(dialTimeout)); err != nil {
		return err
	}
	return json.NewEncoder(conn).Encode(msg)
}

type noop struct{}

func (noop) ChangeIcon(string) {}
