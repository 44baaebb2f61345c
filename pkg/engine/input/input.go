// Package input turns device events into high-level intents and reads
// key presses from a raw-mode terminal.
package input

import (
	"bufio"
	"io"
	"os"
	"time"

	"golang.org/x/term"
)

// EnterRawMode puts stdin into raw mode so single key presses can be read
// without waiting for Enter. The returned function restores the terminal.
// When stdin is not a terminal nothing is changed and ok is false.
func EnterRawMode() (restore func(), ok bool, err error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return func() {}, false, nil
	}
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return func() {}, false, err
	}
	return func() { term.Restore(fd, oldState) }, true, nil
}

// ReadKeys reads key presses from r and sends one RawInput per key to out
// until r returns an error. It is meant to run in its own goroutine; the
// channel is closed on return.
func ReadKeys(r io.Reader, out chan<- RawInput) {
	defer close(out)
	br := bufio.NewReader(r)
	for {
		b, err := br.ReadByte()
		if err != nil {
			return
		}
		code := decodeKey(b, br)
		if code == "" {
			continue
		}
		out <- RawInput{Device: DeviceTerminal, Code: code, Timestamp: time.Now()}
	}
}

// decodeKey converts the byte b, plus any escape sequence that follows it,
// into a key code. Unknown sequences decode to "".
func decodeKey(b byte, br *bufio.Reader) string {
	switch {
	case b == 3:
		return "ctrl_c"
	case b == ' ':
		return "space"
	case b == '\r' || b == '\n':
		return "enter"
	case b == 127 || b == 8:
		return "backspace"
	case b == 0x1b:
		return decodeEscape(br)
	case b >= 'A' && b <= 'Z':
		return string(b + ('a' - 'A'))
	case b > 32 && b < 127:
		return string(b)
	}
	return ""
}

// decodeEscape reads the rest of an escape sequence. A lone ESC (nothing
// buffered behind it) is the escape key.
func decodeEscape(br *bufio.Reader) string {
	if br.Buffered() == 0 {
		return "escape"
	}
	b2, err := br.ReadByte()
	if err != nil {
		return "escape"
	}

	// Handle both CSI sequences (ESC [) and SS3 sequences (ESC O)
	if b2 != '[' && b2 != 'O' {
		return ""
	}
	b3, err := br.ReadByte()
	if err != nil {
		return ""
	}

	switch b3 {
	case 'A':
		return "arrow_up"
	case 'B':
		return "arrow_down"
	case 'C':
		return "arrow_right"
	case 'D':
		return "arrow_left"
	case 'P':
		return "f1"
	case 'Q':
		return "f2"
	case 'R':
		return "f3"
	case 'S':
		return "f4"
	}

	// VT-style function keys: ESC [ 1 1 ~ .. ESC [ 1 4 ~
	if b2 == '[' && b3 >= '0' && b3 <= '9' {
		seq := []byte{b3}
		for {
			c, err := br.ReadByte()
			if err != nil || c == '~' {
				break
			}
			seq = append(seq, c)
		}
		switch string(seq) {
		case "11":
			return "f1"
		case "12":
			return "f2"
		case "13":
			return "f3"
		case "14":
			return "f4"
		}
	}
	return ""
}
