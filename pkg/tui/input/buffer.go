// ABOUTME: StdinBuffer reads raw bytes from an io.Reader and dispatches parsed key events.
// ABOUTME: Holds back incomplete escape sequences and UTF-8 runes; a lone ESC fires after ~50ms.

package input

import (
	"context"
	"io"
	"time"
	"unicode/utf8"

	"github.com/mauromedda/spomo-go/pkg/tui/key"
)

const (
	readBufSize = 64
	escTimeout  = 50 * time.Millisecond
)

// StdinBuffer reads from a reader and dispatches parsed key events via onKey.
// All dispatching happens on the goroutine that calls Start.
type StdinBuffer struct {
	reader  io.Reader
	onKey   func(key.Key)
	buf     []byte
	timeout time.Duration
}

// NewStdinBuffer creates a StdinBuffer that reads from r and calls onKey for each parsed key.
func NewStdinBuffer(r io.Reader, onKey func(key.Key)) *StdinBuffer {
	return &StdinBuffer{
		reader:  r,
		onKey:   onKey,
		buf:     make([]byte, 0, readBufSize),
		timeout: escTimeout,
	}
}

// Start reads from the underlying reader until ctx is cancelled or the reader returns an error.
// It blocks until completion; call it in a goroutine if non-blocking behavior is needed.
func (b *StdinBuffer) Start(ctx context.Context) {
	readCh := make(chan readResult)
	done := make(chan struct{})

	go b.readLoop(readCh, done)
	defer close(done)

	var pending <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return
		case <-pending:
			pending = nil
			b.flush()
		case result, ok := <-readCh:
			if !ok || result.err != nil {
				b.flush()
				return
			}
			b.buf = append(b.buf, result.data...)
			if b.dispatch() {
				pending = time.After(b.timeout)
			} else {
				pending = nil
			}
		}
	}
}

// readResult holds the outcome of a single Read call.
type readResult struct {
	data []byte
	err  error
}

// readLoop continuously reads from the reader and sends data on ch.
// It stops when done is closed, preventing goroutine leaks on context cancellation.
func (b *StdinBuffer) readLoop(ch chan<- readResult, done <-chan struct{}) {
	defer close(ch)
	tmp := make([]byte, readBufSize)
	for {
		n, err := b.reader.Read(tmp)
		if n > 0 {
			data := make([]byte, n)
			copy(data, tmp[:n])
			select {
			case ch <- readResult{data: data}:
			case <-done:
				return
			}
		}
		if err != nil {
			if n == 0 {
				select {
				case ch <- readResult{err: err}:
				case <-done:
				}
			}
			return
		}
	}
}

// dispatch emits every complete key at the front of the buffer. It reports
// whether an incomplete sequence is left waiting for more bytes.
func (b *StdinBuffer) dispatch() bool {
	for len(b.buf) > 0 {
		if incomplete(b.buf) {
			return true
		}
		n := key.SeqLen(b.buf)
		k := key.ParseKey(string(b.buf[:n]))
		b.buf = b.buf[n:]
		b.onKey(k)
	}
	return false
}

// flush dispatches complete keys and then whatever is left as a single
// key: a lone ESC becomes Escape, a truncated sequence becomes Unknown.
func (b *StdinBuffer) flush() {
	b.dispatch()
	if len(b.buf) == 0 {
		return
	}
	k := key.ParseKey(string(b.buf))
	b.buf = b.buf[:0]
	b.onKey(k)
}

// incomplete reports whether buf starts with a key whose bytes have not all arrived.
func incomplete(buf []byte) bool {
	if buf[0] != 0x1b {
		return !utf8.FullRune(buf)
	}
	if len(buf) == 1 {
		return true
	}
	switch buf[1] {
	case '[':
		for _, c := range buf[2:] {
			if c >= 0x40 && c <= 0x7e {
				return false
			}
		}
		return true
	case 'O':
		return len(buf) < 3
	}
	return false
}
