// shadowfov-server hosts the visibility viewer over SSH so anyone with a
// terminal can connect and explore a freshly generated map. Build:
//
//	go build -o shadowfov-server ./cmd/server
//
// Usage:
//
//	./shadowfov-server [--port 2222] [--key server_host_key]
//
// Connect from any terminal:
//
//	ssh -p 2222 localhost
package main

import (
	cryptorand "crypto/rand"
	"crypto/ed25519"
	"encoding/pem"
	"flag"
	"fmt"
	"log"
	"log/slog"
	mathrand "math/rand"
	"os"
	"strings"
	"sync"
	"time"
	"unicode"

	"shadowfov/internal/demo"
	internalssh "shadowfov/internal/ssh"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
	xssh "golang.org/x/crypto/ssh"
)

// allowedTerms is the set of TERM values we accept from SSH clients.
// Anything not in this set is replaced with "xterm-256color".
var allowedTerms = map[string]bool{
	"xterm-256color":        true,
	"xterm":                 true,
	"xterm-color":           true,
	"screen-256color":       true,
	"screen":                true,
	"tmux-256color":         true,
	"tmux":                  true,
	"linux":                 true,
	"vt100":                 true,
	"rxvt-unicode-256color": true,
}

const maxUsernameLen = 16

// sanitizeName cleans a username for display: strips non-printable runes and
// stops adding runes once the result reaches maxUsernameLen bytes, so a
// result ending in a multi-byte rune can be a few bytes longer.
func sanitizeName(name string) string {
	var b strings.Builder
	for _, r := range name {
		if unicode.IsPrint(r) && !unicode.IsControl(r) {
			b.WriteRune(r)
			if b.Len() >= maxUsernameLen {
				break
			}
		}
	}
	s := b.String()
	runes := []rune(s)
	if len(runes) > maxUsernameLen {
		runes = runes[:maxUsernameLen]
	}
	return string(runes)
}

func main() {
	port := flag.Int("port", 2222, "SSH server port")
	keyFile := flag.String("key", "server_host_key", "Path to the PEM-encoded host key (auto-generated if absent)")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	signer := loadOrCreateHostKey(*keyFile, logger)
	rng := mathrand.New(mathrand.NewSource(time.Now().UnixNano()))

	sshSrv := &gossh.Server{
		Addr:        fmt.Sprintf(":%d", *port),
		IdleTimeout: 10 * time.Minute,
		MaxTimeout:  4 * time.Hour,
		Handler: func(s gossh.Session) {
			handleSession(s, rng.Int63(), logger)
		},
		PtyCallback: func(_ gossh.Context, _ gossh.Pty) bool { return true },
		HostSigners: []gossh.Signer{signer},
	}

	log.Printf("shadowfov server listening on :%d", *port)
	log.Printf("Connect with:  ssh -p %d -o StrictHostKeyChecking=no localhost", *port)
	log.Fatal(sshSrv.ListenAndServe())
}

// termMu serializes os.Setenv("TERM") around tcell screen creation.
// Multiple goroutines may create screens concurrently.
var termMu sync.Mutex

// handleSession is the gliderlabs SSH handler for one connection. Each
// session gets its own seeded map and its own independent viewer loop.
func handleSession(s gossh.Session, seed int64, logger *slog.Logger) {
	pty, winCh, hasPTY := s.Pty()
	if !hasPTY {
		fmt.Fprintln(s, "This demo requires a PTY. Connect with: ssh -t -p 2222 <host>")
		return
	}

	term := "xterm-256color"
	for _, env := range s.Environ() {
		if strings.HasPrefix(env, "TERM=") {
			candidate := env[5:]
			if allowedTerms[candidate] {
				term = candidate
			}
			break
		}
	}

	tty := internalssh.NewSessionTty(s, pty, winCh)
	termMu.Lock()
	_ = os.Setenv("TERM", term)
	screen, err := tcell.NewTerminfoScreenFromTty(tty)
	termMu.Unlock()
	if err != nil {
		fmt.Fprintf(s, "Terminal setup failed: %v\n", err)
		return
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(s, "Screen init failed: %v\n", err)
		return
	}
	defer screen.Fini()

	name := sanitizeName(s.User())
	if name == "" {
		name = sanitizeName(s.RemoteAddr().String())
	}
	logger.Info("session started", "user", name, "remote", s.RemoteAddr().String())
	defer logger.Info("session ended", "user", name)

	demo.NewSession(screen, mathrand.New(mathrand.NewSource(seed))).Run(logger)
}

// ─── host key ────────────────────────────────────────────────────────────────

func loadOrCreateHostKey(path string, logger *slog.Logger) gossh.Signer {
	if data, err := os.ReadFile(path); err == nil {
		if signer, err := xssh.ParsePrivateKey(data); err == nil {
			logger.Info("loaded host key", "path", path)
			return signer
		}
	}

	logger.Info("generating new host key", "path", path)
	_, key, err := ed25519.GenerateKey(cryptorand.Reader)
	if err != nil {
		logger.Error("generate host key", "error", err)
		os.Exit(1)
	}
	signer, err := xssh.NewSignerFromKey(key)
	if err != nil {
		logger.Error("create signer", "error", err)
		os.Exit(1)
	}
	if pemBlock, err := xssh.MarshalPrivateKey(key, "shadowfov server"); err == nil {
		_ = os.WriteFile(path, pem.EncodeToMemory(pemBlock), 0600)
	}
	return signer
}
