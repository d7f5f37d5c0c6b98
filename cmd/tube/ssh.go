package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/gliderlabs/ssh"
	"github.com/google/uuid"
	"github.com/muesli/termenv"

	"github.com/stlalpha/ansitube/internal/config"
	"github.com/stlalpha/ansitube/internal/sshserver"
	"github.com/stlalpha/ansitube/internal/table"
	"github.com/stlalpha/ansitube/internal/terminal"
	"github.com/stlalpha/ansitube/internal/tube"
)

const shutdownTimeout = 5 * time.Second

// sessions tracks the running viewer of every SSH session.
type sessions struct {
	mu       sync.Mutex
	programs map[string]*tea.Program
}

func newSessions() *sessions {
	return &sessions{programs: make(map[string]*tea.Program)}
}

func (s *sessions) add(id string, p *tea.Program) {
	s.mu.Lock()
	s.programs[id] = p
	s.mu.Unlock()
}

func (s *sessions) remove(id string) {
	s.mu.Lock()
	delete(s.programs, id)
	s.mu.Unlock()
}

// Send delivers msg to every session.
func (s *sessions) Send(msg tea.Msg) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.programs {
		go p.Send(msg)
	}
}

// quitAll asks every viewer to exit.
func (s *sessions) quitAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.programs {
		p.Quit()
	}
}

func runSSH(cfg config.Config, doc document) error {
	log.Printf("INFO: Configuring SSH server on %s:%d...", cfg.SSHHost, cfg.SSHPort)
	live := newSessions()

	server, err := sshserver.NewServer(sshserver.Config{
		HostKeyPath:         cfg.HostKeyPath,
		Host:                cfg.SSHHost,
		Port:                cfg.SSHPort,
		LegacySSHAlgorithms: cfg.LegacySSHAlgos,
		SessionHandler: func(s ssh.Session) {
			serveSession(s, cfg, doc, live)
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create SSH server: %w", err)
	}

	stop := startReload(cfg, doc, live.Send)
	defer stop()

	errCh := make(chan error, 1)
	go func() { errCh <- server.ListenAndServe() }()
	log.Printf("INFO: SSH server ready - connect via: ssh -p %d <user>@%s", cfg.SSHPort, cfg.SSHHost)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sig)

	select {
	case err := <-errCh:
		return fmt.Errorf("SSH server error: %w", err)
	case s := <-sig:
		log.Printf("INFO: Received %s, shutting down", s)
	}

	live.quitAll()
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
		return fmt.Errorf("SSH shutdown: %w", err)
	}
	return nil
}

// colorProfile picks the colour depth forced on a session's renderer. The
// renderer cannot query a remote terminal, so TERM decides.
func colorProfile(term string) termenv.Profile {
	switch {
	case strings.Contains(term, "truecolor") || strings.Contains(term, "24bit"):
		return termenv.TrueColor
	case strings.Contains(term, "256color"):
		return termenv.ANSI256
	}
	return termenv.ANSI
}

func serveSession(s ssh.Session, cfg config.Config, doc document, live *sessions) {
	id := uuid.NewString()
	pty, winCh, err := sshserver.RequirePty(s)
	if err != nil {
		log.Printf("WARN: SSH session %s from %s rejected: %v", id, s.RemoteAddr(), err)
		io.WriteString(s, "tube needs an interactive terminal, connect with ssh -t\r\n")
		s.Exit(1)
		return
	}
	log.Printf("INFO: SSH session %s: %s from %s (%s, %dx%d)",
		id, s.User(), s.RemoteAddr(), pty.Term, pty.Window.Width, pty.Window.Height)

	mode := terminal.ResolveOutputMode(terminal.ParseOutputMode(cfg.OutputMode), pty.Term)
	renderer := lipgloss.NewRenderer(s)
	renderer.SetColorProfile(colorProfile(pty.Term))

	size := terminal.NewSize(pty.Window.Width, pty.Window.Height)
	opts := tube.Options{Renderer: renderer, NoColor: cfg.NoColor, Overwrite: cfg.ScrollOverwrite}
	model, cleanup, err := doc.model(size, table.NewFormatter(renderer), opts)
	if err != nil {
		log.Printf("ERROR: SSH session %s: %v", id, err)
		io.WriteString(s, "cannot open "+doc.name()+"\r\n")
		s.Exit(1)
		return
	}
	defer cleanup()

	// Interrupting reads stops the program's input loop once it exits.
	input := sshserver.WrapSession(s)
	done := make(chan struct{})
	input.SetReadInterrupt(done)

	programOpts := []tea.ProgramOption{
		tea.WithInput(input),
		tea.WithOutput(terminal.NewWriter(s, mode)),
		tea.WithContext(s.Context()),
		tea.WithoutSignalHandler(),
	}
	if doc.altScreen(cfg.ScrollOverwrite) {
		programOpts = append(programOpts, tea.WithAltScreen())
	}
	program := tea.NewProgram(model, programOpts...)
	live.add(id, program)
	defer live.remove(id)

	go func() {
		for {
			select {
			case w, ok := <-winCh:
				if !ok {
					return
				}
				program.Send(tea.WindowSizeMsg{Width: w.Width, Height: w.Height})
			case <-done:
				return
			}
		}
	}()

	_, err = program.Run()
	close(done)
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		log.Printf("WARN: SSH session %s: %v", id, err)
	}
	log.Printf("INFO: SSH session %s ended", id)
	s.Exit(0)
}
