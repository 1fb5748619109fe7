// ABOUTME: Defines the Key type and ParseKey for terminal keyboard input parsing.
// ABOUTME: Splits raw input chunks into keys and recognizes the countdown's quit keys.

package key

import (
	"fmt"
	"unicode/utf8"
)

// Key represents a parsed keyboard input event.
type Key struct {
	Type KeyType
	Rune rune // For printable characters
	Alt  bool
	Ctrl bool
}

// KeyType enumerates the kinds of key events the display can receive.
type KeyType int

const (
	KeyRune      KeyType = iota // Printable character
	KeyEnter                    // Enter / Return
	KeyTab                      // Tab
	KeyBackspace                // Backspace / DEL (0x7F)
	KeyEscape                   // Escape
	KeyCtrlC                    // Ctrl+C
	KeyCtrlD                    // Ctrl+D
	KeyCtrlZ                    // Ctrl+Z
	KeyUnknown                  // Unrecognized input
)

var ctrlKeys = map[byte]Key{
	0x03: {Type: KeyCtrlC, Ctrl: true},
	0x04: {Type: KeyCtrlD, Ctrl: true},
	0x1a: {Type: KeyCtrlZ, Ctrl: true},
}

// ParseKey parses raw terminal input data holding exactly one key.
func ParseKey(data string) Key {
	if len(data) == 0 {
		return Key{Type: KeyUnknown}
	}

	if len(data) == 1 {
		return parseSingleByte(data[0])
	}

	if data[0] == 0x1b {
		return parseEscapeSequence(data)
	}

	r, size := utf8.DecodeRuneInString(data)
	if r == utf8.RuneError || size != len(data) {
		return Key{Type: KeyUnknown}
	}
	return Key{Type: KeyRune, Rune: r}
}

// Split breaks a chunk read from the terminal into individual keys.
// Escape sequences (CSI, SS3, Alt+byte) stay together so that an arrow
// key is never mistaken for a lone Escape.
func Split(data []byte) []Key {
	var keys []Key
	for i := 0; i < len(data); {
		n := SeqLen(data[i:])
		keys = append(keys, ParseKey(string(data[i:i+n])))
		i += n
	}
	return keys
}

// SeqLen returns the byte length of the key starting at b[0]. b must be
// non-empty. An unterminated CSI sequence spans the rest of b.
func SeqLen(b []byte) int {
	if b[0] != 0x1b {
		if b[0] < utf8.RuneSelf {
			return 1
		}
		_, size := utf8.DecodeRune(b)
		return size
	}
	if len(b) == 1 {
		return 1
	}
	switch b[1] {
	case '[':
		// CSI: parameters and intermediates up to a final byte in 0x40..0x7e.
		for j := 2; j < len(b); j++ {
			if b[j] >= 0x40 && b[j] <= 0x7e {
				return j + 1
			}
		}
		return len(b)
	case 'O':
		return min(3, len(b))
	default:
		return 2
	}
}

func parseSingleByte(b byte) Key {
	switch {
	case b == 0x0d || b == 0x0a:
		return Key{Type: KeyEnter}
	case b == 0x09:
		return Key{Type: KeyTab}
	case b == 0x7f:
		return Key{Type: KeyBackspace}
	case b == 0x1b:
		return Key{Type: KeyEscape}
	case b >= 0x20 && b <= 0x7e:
		return Key{Type: KeyRune, Rune: rune(b)}
	}

	if k, ok := ctrlKeys[b]; ok {
		return k
	}
	return Key{Type: KeyUnknown}
}

func parseEscapeSequence(data string) Key {
	// Alt+letter: ESC followed by a single printable byte (0x20..0x7e)
	if len(data) == 2 && data[1] >= 0x20 && data[1] <= 0x7e && data[1] != '[' {
		return Key{Type: KeyRune, Rune: rune(data[1]), Alt: true}
	}
	return Key{Type: KeyUnknown}
}

// IsQuit reports whether k asks the countdown to stop: q, Q, Escape or Ctrl+C.
func IsQuit(k Key) bool {
	switch k.Type {
	case KeyEscape, KeyCtrlC:
		return true
	case KeyRune:
		return !k.Alt && (k.Rune == 'q' || k.Rune == 'Q')
	}
	return false
}

var keyTypeNames = map[KeyType]string{
	KeyEnter:     "Enter",
	KeyTab:       "Tab",
	KeyBackspace: "Backspace",
	KeyEscape:    "Escape",
	KeyCtrlC:     "Ctrl+C",
	KeyCtrlD:     "Ctrl+D",
	KeyCtrlZ:     "Ctrl+Z",
	KeyUnknown:   "Unknown",
}

// String returns a human-readable representation of the Key for debug display.
func (k Key) String() string {
	if k.Type == KeyRune {
		s := string(k.Rune)
		if k.Alt {
			s = fmt.Sprintf("Alt+%s", s)
		}
		return s
	}
	if name, ok := keyTypeNames[k.Type]; ok {
		return name
	}
	return "Unknown"
}
