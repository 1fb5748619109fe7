// ABOUTME: PTY harness for end-to-end tests: builds the spomo binary once and drives it
// ABOUTME: Sessions capture everything the binary writes and report its exit status

package e2e

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/creack/pty"
)

var (
	binPath  string
	buildErr error
)

func TestMain(m *testing.M) {
	flag.Parse()
	if testing.Short() {
		os.Exit(m.Run())
	}

	dir, err := os.MkdirTemp("", "spomo-e2e-")
	if err != nil {
		fmt.Fprintf(os.Stderr, "creating build dir: %v\n", err)
		os.Exit(1)
	}
	binPath = filepath.Join(dir, "spomo")
	build := exec.Command("go", "build", "-o", binPath, "./cmd/spomo")
	build.Dir = ".."
	if out, err := build.CombinedOutput(); err != nil {
		buildErr = fmt.Errorf("building spomo: %w\n%s", err, out)
	}

	code := m.Run()
	_ = os.RemoveAll(dir)
	os.Exit(code)
}

// session is a running spomo process attached to a pseudo-terminal.
type session struct {
	cmd  *exec.Cmd
	ptmx *os.File

	mu   sync.Mutex
	out  bytes.Buffer
	done chan struct{}
}

func requireBinary(t *testing.T) {
	t.Helper()
	if testing.Short() {
		t.Skip("e2e tests skipped in short mode")
	}
	if buildErr != nil {
		t.Fatal(buildErr)
	}
}

// spomoEnv isolates the binary from the user's config and audio device.
func spomoEnv(t *testing.T) []string {
	return append(os.Environ(),
		"HOME="+t.TempDir(),
		"SPOMO_SOUND=none",
		"TERM=xterm-256color",
	)
}

func startSpomo(t *testing.T, args ...string) *session {
	t.Helper()
	requireBinary(t)

	cmd := exec.Command(binPath, args...)
	cmd.Env = spomoEnv(t)
	ptmx, err := pty.StartWithSize(cmd, &pty.Winsize{Rows: 24, Cols: 80})
	if err != nil {
		t.Skipf("pty unavailable: %v", err)
	}

	s := &session{cmd: cmd, ptmx: ptmx, done: make(chan struct{})}
	go s.readLoop()
	return s
}

func (s *session) readLoop() {
	defer close(s.done)
	buf := make([]byte, 4096)
	for {
		n, err := s.ptmx.Read(buf)
		if n > 0 {
			s.mu.Lock()
			s.out.Write(buf[:n])
			s.mu.Unlock()
		}
		if err != nil {
			return
		}
	}
}

func (s *session) output() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.out.String()
}

func (s *session) expectStringTimeout(t *testing.T, want string, timeout time.Duration) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if strings.Contains(s.output(), want) {
			return
		}
		time.Sleep(20 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %q; output:\n%q", want, s.output())
}

func (s *session) send(t *testing.T, text string) {
	t.Helper()
	if _, err := io.WriteString(s.ptmx, text); err != nil {
		t.Fatalf("writing to pty: %v", err)
	}
}

func (s *session) sendCtrl(t *testing.T, c byte) {
	t.Helper()
	s.send(t, string([]byte{c & 0x1f}))
}

// waitExit waits for the process and returns its exit status, then
// drains whatever output is still buffered in the pty.
func (s *session) waitExit(t *testing.T, timeout time.Duration) int {
	t.Helper()

	waitCh := make(chan error, 1)
	go func() { waitCh <- s.cmd.Wait() }()

	var err error
	select {
	case err = <-waitCh:
	case <-time.After(timeout):
		_ = s.cmd.Process.Kill()
		t.Fatalf("process did not exit within %v; output:\n%q", timeout, s.output())
	}

	select {
	case <-s.done:
	case <-time.After(time.Second):
	}

	var ee *exec.ExitError
	switch {
	case err == nil:
		return 0
	case errors.As(err, &ee):
		return ee.ExitCode()
	}
	t.Fatalf("waiting for process: %v", err)
	return -1
}

func (s *session) close() {
	if s.cmd.ProcessState == nil {
		_ = s.cmd.Process.Kill()
		_ = s.cmd.Wait()
	}
	_ = s.ptmx.Close()
}
