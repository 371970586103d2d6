package ipc

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"os"
	"sync"
	"time"

	"log/slog"

	"aniweek/internal/daemon"
	"aniweek/internal/logging"
	"aniweek/internal/theme"
	"aniweek/internal/transfer"
)

// Server exposes daemon control via JSON-RPC over a Unix domain socket.
type Server struct {
	path      string
	daemon    *daemon.Daemon
	logger    *slog.Logger
	listener  net.Listener
	rpcServer *rpc.Server

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewServer configures the IPC server at the given socket path.
func NewServer(ctx context.Context, path string, d *daemon.Daemon, logger *slog.Logger) (*Server, error) {
	if d == nil {
		return nil, errors.New("ipc server requires daemon")
	}
	if logger == nil {
		logger = logging.NewNop()
	}

	if err := os.RemoveAll(path); err != nil {
		return nil, fmt.Errorf("remove existing socket: %w", err)
	}

	listener, err := net.Listen("unix", path)
	if err != nil {
		return nil, fmt.Errorf("listen on socket: %w", err)
	}

	rpcServer := rpc.NewServer()
	srv := &service{daemon: d, logger: logger, ctx: ctx}
	if err := rpcServer.RegisterName("Aniweek", srv); err != nil {
		listener.Close()
		return nil, fmt.Errorf("register rpc service: %w", err)
	}

	serverCtx, cancel := context.WithCancel(ctx)
	return &Server{
		path:      path,
		daemon:    d,
		logger:    logger,
		listener:  listener,
		rpcServer: rpcServer,
		ctx:       serverCtx,
		cancel:    cancel,
	}, nil
}

// Serve starts accepting RPC connections until the context is canceled.
func (s *Server) Serve() {
	s.logger.Debug("IPC server listening", logging.String("socket", s.path))
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		for {
			conn, err := s.listener.Accept()
			if err != nil {
				select {
				case <-s.ctx.Done():
					return
				default:
				}
				s.logger.Warn("accept failed", logging.Error(err))
				continue
			}
			s.wg.Add(1)
			go func(c net.Conn) {
				defer s.wg.Done()
				s.rpcServer.ServeCodec(jsonrpc.NewServerCodec(c))
			}(conn)
		}
	}()
}

// Close stops the server and removes the socket file.
func (s *Server) Close() {
	s.cancel()
	if s.listener != nil {
		_ = s.listener.Close()
	}
	s.wg.Wait()
	if err := os.RemoveAll(s.path); err != nil {
		s.logger.Warn("failed to remove socket",
			logging.String("socket", s.path),
			logging.Error(err))
	}
}

type service struct {
	daemon *daemon.Daemon
	logger *slog.Logger
	ctx    context.Context
}

func (s *service) log() *slog.Logger {
	if s.logger == nil {
		return logging.NewNop()
	}
	return s.logger.With(logging.String(logging.FieldComponent, "ipc"))
}

func (s *service) Stop(_ StopRequest, resp *StopResponse) error {
	s.log().Debug("daemon stop requested")
	s.daemon.Stop()
	resp.Stopped = true
	return nil
}

func (s *service) Status(_ StatusRequest, resp *StatusResponse) error {
	status := s.daemon.Status(s.ctx)
	resp.Running = status.Running
	resp.DatabasePath = status.DatabasePath
	resp.LockPath = status.LockPath
	resp.PID = status.PID
	resp.Entries = status.Entries
	return nil
}

func (s *service) List(req ListRequest, resp *ListResponse) error {
	snapshot := s.daemon.Collection().Snapshot()
	switch {
	case req.Archived:
		resp.Entries = snapshot.Archived()
	case req.Favorites:
		resp.Entries = snapshot.Favorites()
	case req.Day != "":
		resp.Entries = snapshot.ByDay(req.Day)
	default:
		resp.Entries = snapshot.Entries()
	}
	return nil
}

func (s *service) Add(req AddRequest, resp *AddResponse) error {
	entry, err := s.daemon.Collection().Add(s.ctx, req.Entry)
	if err != nil {
		return err
	}
	resp.Entry = entry
	return nil
}

func (s *service) ToggleFavorite(req EntryRequest, resp *EntryResponse) error {
	mgr := s.daemon.Collection()
	if err := mgr.ToggleFavorite(s.ctx, req.ID); err != nil {
		return err
	}
	resp.Entry, _ = mgr.Snapshot().Find(req.ID)
	return nil
}

func (s *service) Archive(req EntryRequest, resp *EntryResponse) error {
	mgr := s.daemon.Collection()
	if err := mgr.Archive(s.ctx, req.ID); err != nil {
		return err
	}
	resp.Entry, _ = mgr.Snapshot().Find(req.ID)
	return nil
}

func (s *service) Restore(req EntryRequest, resp *EntryResponse) error {
	mgr := s.daemon.Collection()
	if err := mgr.Restore(s.ctx, req.ID); err != nil {
		return err
	}
	resp.Entry, _ = mgr.Snapshot().Find(req.ID)
	return nil
}

func (s *service) Delete(req EntryRequest, _ *EntryResponse) error {
	return s.daemon.Collection().Delete(s.ctx, req.ID)
}

func (s *service) Update(req UpdateRequest, resp *EntryResponse) error {
	mgr := s.daemon.Collection()
	if err := mgr.Update(s.ctx, req.ID, req.Entry); err != nil {
		return err
	}
	resp.Entry, _ = mgr.Snapshot().Find(req.ID)
	return nil
}

func (s *service) SetCover(req SetCoverRequest, resp *EntryResponse) error {
	mgr := s.daemon.Collection()
	if err := mgr.SetCover(s.ctx, req.ID, req.Cover); err != nil {
		return err
	}
	resp.Entry, _ = mgr.Snapshot().Find(req.ID)
	return nil
}

func (s *service) Stats(_ StatsRequest, resp *StatsResponse) error {
	stats := s.daemon.Store().Stats(s.ctx)
	resp.Total = stats.Total
	resp.Favorites = stats.Favorites
	resp.ByDay = stats.ByDay
	return nil
}

func (s *service) Search(req SearchRequest, resp *SearchResponse) error {
	resp.Results = s.daemon.Metadata().Search(s.ctx, req.Query)
	return nil
}

func (s *service) SeasonPreview(_ SeasonRequest, resp *SeasonResponse) error {
	season, year, entries := s.daemon.SeasonPreview(s.ctx)
	resp.Season = string(season)
	resp.Year = year
	resp.Entries = entries
	return nil
}

func (s *service) SeasonImport(_ SeasonRequest, resp *SeasonResponse) error {
	season, year, entries, err := s.daemon.SeasonImport(s.ctx)
	if err != nil {
		return err
	}
	resp.Season = string(season)
	resp.Year = year
	resp.Entries = entries
	s.log().Info("seasonal import via IPC", logging.Int("added", len(entries)))
	return nil
}

func (s *service) UpgradeCovers(_ UpgradeCoversRequest, resp *UpgradeCoversResponse) error {
	result, err := s.daemon.UpgradeCovers(s.ctx)
	if err != nil {
		return err
	}
	resp.Upgraded = result.Upgraded
	resp.Skipped = result.Skipped
	resp.Failed = result.Failed
	return nil
}

func (s *service) Export(_ ExportRequest, resp *ExportResponse) error {
	entries := s.daemon.Collection().Snapshot().Entries()
	doc, err := transfer.ExportDocument(entries)
	if err != nil {
		return err
	}
	resp.Document = string(doc)
	resp.Filename = transfer.ExportFilename(time.Now())
	return nil
}

func (s *service) Import(req ImportRequest, resp *ImportResponse) error {
	entries, err := transfer.ImportDocument([]byte(req.Document))
	if err != nil {
		return err
	}
	if err := s.daemon.Collection().Import(s.ctx, entries); err != nil {
		return err
	}
	resp.Imported = len(entries)
	s.log().Info("collection imported via IPC", logging.Int("entries", len(entries)))
	return nil
}

func (s *service) RestoreBackup(_ RestoreBackupRequest, resp *RestoreBackupResponse) error {
	found, err := s.daemon.Collection().RestoreFromBackup(s.ctx)
	if err != nil {
		return err
	}
	resp.Found = found
	if found {
		resp.Restored = s.daemon.Collection().Snapshot().Len()
	}
	return nil
}

func (s *service) Clear(_ ClearRequest, resp *ClearResponse) error {
	if err := s.daemon.Collection().Clear(s.ctx); err != nil {
		return err
	}
	resp.Cleared = true
	return nil
}

func (s *service) Themes(_ ThemesRequest, resp *ThemesResponse) error {
	resp.Themes = theme.All()
	resp.Active = s.daemon.Themes().Current(s.ctx).ID
	return nil
}

func (s *service) SetTheme(req SetThemeRequest, resp *SetThemeResponse) error {
	applied, err := s.daemon.Themes().Set(s.ctx, req.ID)
	if err != nil {
		return err
	}
	resp.Theme = applied
	return nil
}
