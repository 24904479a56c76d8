// tile-roguelike-server serves the game over SSH. Every connection gets its
// own map and world. Build:
//
//	go build -o tile-roguelike-server ./cmd/server
//
// Usage:
//
//	./tile-roguelike-server [-config roguelike.yaml] [-addr :2222] [-key server_host_key]
//
// Connect with:
//
//	ssh -t -p 2222 localhost
package main

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"encoding/pem"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"
	"unicode"
	"unicode/utf8"

	gossh "github.com/gliderlabs/ssh"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	xssh "golang.org/x/crypto/ssh"

	"tile-roguelike/internal/config"
	"tile-roguelike/internal/game"
	"tile-roguelike/internal/logging"
	internalssh "tile-roguelike/internal/ssh"
	"tile-roguelike/internal/telemetry"
)

func main() {
	configPath := flag.String("config", "", "Path to the YAML config (defaults when empty)")
	addr := flag.String("addr", "", "Listen address, overrides server.addr")
	keyFile := flag.String("key", "", "PEM host key path, overrides server.host_key (generated if absent)")
	flag.Parse()

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "warning: .env: %v\n", err)
	}
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	if *addr != "" {
		cfg.Server.Addr = *addr
	}
	if *keyFile != "" {
		cfg.Server.HostKeyPath = *keyFile
	}

	logger, closer, err := logging.Setup(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: logging: %v\n", err)
		os.Exit(1)
	}
	defer closer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	defer telemetry.Start(ctx, cfg.Telemetry.Enabled, logger)()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("server stopped", "error", err)
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	signer, err := loadOrCreateHostKey(cfg.Server.HostKeyPath, logger)
	if err != nil {
		return err
	}

	h := newHost(cfg, logger)
	srv := &gossh.Server{
		Addr:    cfg.Server.Addr,
		Handler: h.handleSession,
		// Accept PTY requests from any client.
		PtyCallback: func(_ gossh.Context, _ gossh.Pty) bool { return true },
		// No authentication: every user gets a fresh, private run.
		HostSigners: []gossh.Signer{signer},
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()
	logger.Info("ssh server listening", "addr", cfg.Server.Addr, "max_sessions", cfg.Server.MaxSessions)
	fmt.Fprintf(os.Stderr, "listening on %s, connect with: ssh -t -p <port> localhost\n", cfg.Server.Addr)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, gossh.ErrServerClosed) {
		return err
	}
	logger.Info("ssh server shut down")
	return nil
}

// host runs one independent game per SSH session.
type host struct {
	cfg    *config.Config
	logger *slog.Logger
	slots  chan struct{}
}

func newHost(cfg *config.Config, logger *slog.Logger) *host {
	return &host{
		cfg:    cfg,
		logger: logger,
		slots:  make(chan struct{}, max(cfg.Server.MaxSessions, 1)),
	}
}

// handleSession is the gliderlabs SSH handler for one connection. It blocks
// for the duration of the game so the SSH session stays open.
func (h *host) handleSession(s gossh.Session) {
	log := h.logger.With("session", uuid.NewString(), "user", sanitizeName(s.User()), "remote", s.RemoteAddr().String())

	select {
	case h.slots <- struct{}{}:
		defer func() { <-h.slots }()
	default:
		log.Warn("session rejected, server full")
		fmt.Fprintln(s, "Server is full, try again later.")
		return
	}

	tty, err := internalssh.NewTty(s)
	if err != nil {
		log.Info("session without pty", "error", err)
		fmt.Fprintln(s, "This game requires a PTY. Connect with: ssh -t -p <port> <host>")
		return
	}
	term := internalssh.Term(s)
	if !allowedTerms[term] {
		log.Warn("unsupported TERM, using default", "term", term)
		term = internalssh.DefaultTerm
	}
	screen, err := internalssh.NewScreen(tty, term)
	if err != nil {
		log.Error("terminal setup failed", "error", err)
		fmt.Fprintf(s, "Terminal setup failed: %v\n", err)
		return
	}

	state, err := game.NewState(s.Context(), h.cfg, log)
	if err != nil {
		screen.Fini()
		log.Error("new run failed", "error", err)
		return
	}
	log.Info("session started", "term", term, "seed", state.Seed())
	err = game.New(screen, state, h.cfg.Game.FrameInterval, log).Run(s.Context())
	log.Info("session ended", "ticks", state.Ticks(), "error", err)
}

// allowedTerms lists the terminal types a client may select. Anything else
// falls back to the default rather than reaching terminfo lookup.
var allowedTerms = map[string]bool{
	"xterm":                 true,
	"xterm-256color":        true,
	"screen":                true,
	"screen-256color":       true,
	"tmux":                  true,
	"tmux-256color":         true,
	"linux":                 true,
	"vt100":                 true,
	"vt220":                 true,
	"rxvt-unicode":          true,
	"rxvt-unicode-256color": true,
}

// maxNameBytes bounds a user name as it appears in logs.
const maxNameBytes = 16

// sanitizeName drops non-printable runes from an SSH user name and truncates
// it to maxNameBytes without splitting a rune.
func sanitizeName(name string) string {
	out := make([]byte, 0, maxNameBytes)
	for _, r := range name {
		if r == utf8.RuneError || !unicode.IsPrint(r) {
			continue
		}
		if len(out)+utf8.RuneLen(r) > maxNameBytes {
			break
		}
		out = utf8.AppendRune(out, r)
	}
	return string(out)
}

// loadOrCreateHostKey loads a PEM private key from path, or generates and
// persists a new ed25519 key if the file is absent or unreadable.
func loadOrCreateHostKey(path string, logger *slog.Logger) (gossh.Signer, error) {
	if data, err := os.ReadFile(path); err == nil {
		if signer, err := xssh.ParsePrivateKey(data); err == nil {
			logger.Info("loaded host key", "path", path)
			return signer, nil
		}
	}

	logger.Info("generating ed25519 host key", "path", path)
	_, key, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("generate host key: %w", err)
	}
	signer, err := xssh.NewSignerFromKey(key)
	if err != nil {
		return nil, fmt.Errorf("create signer: %w", err)
	}
	// Persisting is best effort; the server can run with an ephemeral key.
	pemBlock, err := xssh.MarshalPrivateKey(key, "tile-roguelike server")
	if err == nil {
		err = os.WriteFile(path, pem.EncodeToMemory(pemBlock), 0o600)
	}
	if err != nil {
		logger.Warn("host key not persisted", "path", path, "error", err)
	}
	return signer, nil
}
