// Package sshserver serves the viewer over SSH. It wraps gliderlabs/ssh,
// loads or generates the host key, optionally offers the older algorithms
// retro terminal clients still need, and makes session input interruptible
// so a finished viewer stops reading from the channel.
package sshserver

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"encoding/pem"
	"errors"
	"fmt"
	"log"
	"net"
	"os"
	"path/filepath"
	"strconv"

	"github.com/gliderlabs/ssh"
	gossh "golang.org/x/crypto/ssh"

	"github.com/stlalpha/ansitube/internal/logging"
)

// ErrNoPty is returned by RequirePty for sessions opened without a terminal.
var ErrNoPty = errors.New("session has no pty")

// DefaultVersion is the server banner version used when Config.Version is empty.
const DefaultVersion = "tube"

// Config holds SSH server configuration.
type Config struct {
	HostKeyPath         string
	Host                string
	Port                int
	LegacySSHAlgorithms bool
	SessionHandler      func(ssh.Session)
	Version             string
}

// Server wraps a gliderlabs/ssh server.
type Server struct {
	inner *ssh.Server
}

// NewServer creates the server, generating a host key at cfg.HostKeyPath
// when none exists yet. Clients are not authenticated.
func NewServer(cfg Config) (*Server, error) {
	signer, err := LoadOrCreateHostKey(cfg.HostKeyPath)
	if err != nil {
		return nil, err
	}

	version := cfg.Version
	if version == "" {
		version = DefaultVersion
	}

	srv := &ssh.Server{
		Addr:        net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		Handler:     cfg.SessionHandler,
		HostSigners: []ssh.Signer{signer},
		Version:     version,
		ConnectionFailedCallback: func(conn net.Conn, err error) {
			log.Printf("WARN: SSH connection failed from %s: %v", conn.RemoteAddr(), err)
		},
	}

	legacy := cfg.LegacySSHAlgorithms
	srv.ServerConfigCallback = func(ctx ssh.Context) *gossh.ServerConfig {
		sc := &gossh.ServerConfig{}
		if legacy {
			logging.Debug("sshserver: offering legacy algorithms to %s", ctx.RemoteAddr())
			sc.Config.KeyExchanges = legacyKeyExchanges
			sc.Config.Ciphers = legacyCiphers
			sc.Config.MACs = legacyMACs
		}
		return sc
	}

	return &Server{inner: srv}, nil
}

// Older algorithms (group1 key exchange, CBC ciphers, SHA-1 MACs) come last
// so modern clients still negotiate the strong ones.
var (
	legacyKeyExchanges = []string{
		"curve25519-sha256",
		"curve25519-sha256@libssh.org",
		"ecdh-sha2-nistp256",
		"ecdh-sha2-nistp384",
		"ecdh-sha2-nistp521",
		"diffie-hellman-group14-sha256",
		"diffie-hellman-group16-sha512",
		"diffie-hellman-group14-sha1",
		"diffie-hellman-group1-sha1",
	}
	legacyCiphers = []string{
		"chacha20-poly1305@openssh.com",
		"aes128-gcm@openssh.com",
		"aes256-gcm@openssh.com",
		"aes128-ctr",
		"aes192-ctr",
		"aes256-ctr",
		"aes128-cbc",
		"aes256-cbc",
		"3des-cbc",
	}
	legacyMACs = []string{
		"hmac-sha2-256-etm@openssh.com",
		"hmac-sha2-512-etm@openssh.com",
		"hmac-sha2-256",
		"hmac-sha2-512",
		"hmac-sha1",
	}
)

// Addr returns the configured listen address.
func (s *Server) Addr() string { return s.inner.Addr }

// ListenAndServe binds to the configured address and serves SSH connections.
// It blocks until the server is closed.
func (s *Server) ListenAndServe() error {
	return s.inner.ListenAndServe()
}

// Serve serves SSH connections on l. It blocks until the server is closed.
func (s *Server) Serve(l net.Listener) error {
	return s.inner.Serve(l)
}

// Shutdown stops accepting connections and waits for open ones to finish
// or for ctx to end.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.inner.Shutdown(ctx)
}

// Close shuts down the server and all active connections.
func (s *Server) Close() error {
	return s.inner.Close()
}

// LoadOrCreateHostKey reads the PEM private key at path. A missing key is
// generated (ed25519) and written with owner-only permissions.
func LoadOrCreateHostKey(path string) (gossh.Signer, error) {
	keyBytes, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		keyBytes, err = generateHostKey(path)
	}
	if err != nil {
		return nil, fmt.Errorf("host key %s: %w", path, err)
	}

	signer, err := gossh.ParsePrivateKey(keyBytes)
	if err != nil {
		return nil, fmt.Errorf("parse host key %s: %w", path, err)
	}
	return signer, nil
}

func generateHostKey(path string) ([]byte, error) {
	_, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("generate: %w", err)
	}
	block, err := gossh.MarshalPrivateKey(priv, "tube host key")
	if err != nil {
		return nil, fmt.Errorf("marshal: %w", err)
	}
	keyBytes := pem.EncodeToMemory(block)

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, err
	}
	if err := os.WriteFile(path, keyBytes, 0o600); err != nil {
		return nil, err
	}
	log.Printf("INFO: Generated SSH host key %s", path)
	return keyBytes, nil
}

// RequirePty returns the terminal of s, or ErrNoPty when the client did not
// request one.
func RequirePty(s ssh.Session) (ssh.Pty, <-chan ssh.Window, error) {
	pty, winCh, ok := s.Pty()
	if !ok {
		return ssh.Pty{}, nil, ErrNoPty
	}
	return pty, winCh, nil
}
