package preview

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"ciclo-integrado/core/logger"
	"ciclo-integrado/core/middleware/rayid"
	"ciclo-integrado/core/server"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/browser"
	"go.uber.org/zap"
)

// ErrRootNotFound is returned when the document root is missing or not a directory.
var ErrRootNotFound = errors.New("document root not found")

// Opener opens a URL in the operator's browser.
type Opener func(url string) error

// Server serves the pages directory for local preview.
type Server struct {
	cfg    server.Config
	root   string
	logger *zap.Logger
	out    io.Writer
	open   Opener
	app    *fiber.App

	// serve guards handler execution.
	serve sync.Mutex

	state atomic.Int32
	addr  atomic.Pointer[net.TCPAddr]
}

// New validates the document root and prepares the static file handler.
func New(cfg server.Config, logg *zap.Logger) (*Server, error) {
	root, err := filepath.Abs(cfg.Root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve document root %s: %w", cfg.Root, err)
	}

	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrRootNotFound, root)
	}

	s := &Server{
		cfg:    cfg,
		root:   root,
		logger: logg,
		out:    os.Stdout,
		open:   browser.OpenURL,
	}

	s.app = fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})

	s.app.Use(rayid.New())
	s.app.Use(s.serialize)
	s.app.Use(s.logRequest)

	s.app.Static("/", root, fiber.Static{
		Index:         "index.html",
		Browse:        true,
		CacheDuration: -1,
	})

	return s, nil
}

// Root returns the absolute document root.
func (s *Server) Root() string {
	return s.root
}

// App returns the underlying fiber app.
func (s *Server) App() *fiber.App {
	return s.app
}

// State returns the current lifecycle state.
func (s *Server) State() State {
	return State(s.state.Load())
}

// Addr returns the bound address, or nil before the listener is bound.
func (s *Server) Addr() *net.TCPAddr {
	return s.addr.Load()
}

// Run binds the listener, opens the browser and serves until ctx is done.
// It returns nil once a cancellation has shut the server down.
func (s *Server) Run(ctx context.Context) error {
	address := s.cfg.Address()

	ln, err := net.Listen("tcp", address)
	if err != nil {
		s.setState(StateFailed)
		fmt.Fprintln(s.out, "❌ ERRO: Não foi possível iniciar o servidor")
		fmt.Fprintf(s.out, "   Motivo: %v\n", err)
		return fmt.Errorf("failed to bind %s: %w", address, err)
	}

	bound := s.cfg
	if tcp, ok := ln.Addr().(*net.TCPAddr); ok {
		s.addr.Store(tcp)
		bound.Port = tcp.Port
	}
	s.setState(StateBound)

	url := bound.EntryURL()
	fmt.Fprintln(s.out, "✅ Servidor iniciado com sucesso!")
	fmt.Fprintf(s.out, "📍 %s\n\n", url)

	s.openBrowser(url)

	fmt.Fprintln(s.out, "\n⏳ Aguardando requisições... (Ctrl+C para parar)")

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.app.Listener(ln)
	}()
	s.setState(StateServing)
	s.logger.Info("Serving pages",
		zap.String("root", s.root),
		zap.String("address", ln.Addr().String()),
	)

	select {
	case <-ctx.Done():
		if err := s.app.Shutdown(); err != nil {
			s.logger.Warn("Shutdown did not complete cleanly", zap.Error(err))
		}
		// Shutdown only closes listeners the server has already picked up.
		if err := ln.Close(); err != nil {
			s.logger.Debug("Listener already closed", zap.Error(err))
		}

		s.setState(StateStopped)
		fmt.Fprintln(s.out, "\n\n👋 Servidor parado com sucesso!")
		s.logger.Info("Server stopped")
		return nil

	case err := <-errCh:
		s.setState(StateFailed)
		if err == nil {
			err = errors.New("listener closed")
		}
		return fmt.Errorf("server stopped unexpectedly: %w", err)
	}
}

func (s *Server) openBrowser(url string) {
	if !s.cfg.OpenBrowser {
		fmt.Fprintln(s.out, "💡 Abra manualmente em seu navegador")
		return
	}

	if err := s.open(url); err != nil {
		s.logger.Warn("Failed to open browser", zap.String("url", url), zap.Error(err))
		fmt.Fprintln(s.out, "💡 Abra manualmente em seu navegador")
		return
	}
	fmt.Fprintln(s.out, "🌐 Navegador aberto automaticamente...")
}

func (s *Server) setState(st State) {
	s.state.Store(int32(st))
}

// serialize runs one handler at a time. Streamed file bodies are written by
// fasthttp after the handler returns, outside the lock.
func (s *Server) serialize(c *fiber.Ctx) error {
	s.serve.Lock()
	defer s.serve.Unlock()
	return c.Next()
}

// logRequest emits one line per request once the response status is known.
func (s *Server) logRequest(c *fiber.Ctx) error {
	start := time.Now()
	err := c.Next()

	status := c.Response().StatusCode()
	var fe *fiber.Error
	if errors.As(err, &fe) {
		status = fe.Code
	}

	l := logger.WithRayID(s.logger, c)
	l.Info("request",
		zap.String("request", fmt.Sprintf("%s %s %s", c.Method(), c.OriginalURL(), c.Request().Header.Protocol())),
		zap.Int("status", status),
		zap.Int("bytes", c.Response().Header.ContentLength()),
		zap.String("ip", c.IP()),
		zap.Duration("latency", time.Since(start)),
	)
	return err
}
