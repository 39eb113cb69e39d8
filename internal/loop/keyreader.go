package loop

import (
	"bufio"
	"strconv"
	"strings"

	"github.com/lectorterm/lector/internal/actions"
)

// DecodedKey pairs the parsed key with the exact bytes it came from, so an
// unhandled key can be forwarded to the child verbatim instead of through
// a lossy re-encoding.
type DecodedKey struct {
	Key actions.Key
	Raw []byte
}

// KeyDecoder turns raw TTY bytes into actions.Key values, decoding the
// ESC/CSI sequences a real terminal sends for arrows, function keys, and
// Alt/Ctrl modifiers.
type KeyDecoder struct {
	reader *bufio.Reader
}

func NewKeyDecoder(r *bufio.Reader) *KeyDecoder {
	return &KeyDecoder{reader: r}
}

// ReadKey blocks for exactly one key. It is meant to run on its own
// producer goroutine, per the loop's single-reader-per-source design.
func (d *KeyDecoder) ReadKey() (DecodedKey, error) {
	b, err := d.reader.ReadByte()
	if err != nil {
		return DecodedKey{}, err
	}
	raw := []byte{b}

	if b == 0x1b {
		next, err := d.reader.Peek(1)
		if err != nil || len(next) == 0 {
			return DecodedKey{Key: actions.Key{Name: "Escape"}, Raw: raw}, nil
		}
		if next[0] == '[' {
			d.reader.ReadByte()
			raw = append(raw, '[')
			return d.parseCSI(raw)
		}
		// Alt+<char>: ESC immediately followed by a printable byte.
		alt, err := d.reader.ReadByte()
		if err != nil {
			return DecodedKey{Key: actions.Key{Name: "Escape"}, Raw: raw}, nil
		}
		raw = append(raw, alt)
		k := d.parseRegular(alt)
		k.Modifiers |= actions.ModAlt
		return DecodedKey{Key: k, Raw: raw}, nil
	}

	return DecodedKey{Key: d.parseRegular(b), Raw: raw}, nil
}

func (d *KeyDecoder) parseCSI(prefix []byte) (DecodedKey, error) {
	raw := append([]byte(nil), prefix...)
	var seq []byte
	for {
		b, err := d.reader.ReadByte()
		if err != nil {
			return DecodedKey{}, err
		}
		raw = append(raw, b)
		seq = append(seq, b)
		if (b >= 'A' && b <= 'Z') || b == '~' {
			break
		}
	}
	return DecodedKey{Key: decodeCSI(string(seq)), Raw: raw}, nil
}

func decodeCSI(s string) actions.Key {
	switch s {
	case "A":
		return actions.Key{Name: "Up"}
	case "B":
		return actions.Key{Name: "Down"}
	case "C":
		return actions.Key{Name: "Right"}
	case "D":
		return actions.Key{Name: "Left"}
	case "H":
		return actions.Key{Name: "Home"}
	case "F":
		return actions.Key{Name: "End"}
	case "3~":
		return actions.Key{Name: "Delete"}
	}

	if strings.Contains(s, ";") {
		parts := strings.SplitN(s, ";", 2)
		if len(parts) == 2 && len(parts[1]) > 0 {
			modDigit := parts[1][:len(parts[1])-1]
			final := parts[1][len(parts[1])-1:]
			n, _ := strconv.Atoi(modDigit)
			mod := csiModifier(n)
			switch final {
			case "A":
				return actions.Key{Name: "Up", Modifiers: mod}
			case "B":
				return actions.Key{Name: "Down", Modifiers: mod}
			case "C":
				return actions.Key{Name: "Right", Modifiers: mod}
			case "D":
				return actions.Key{Name: "Left", Modifiers: mod}
			}
		}
	}

	return actions.Key{Name: "Unknown"}
}

func csiModifier(n int) actions.Modifier {
	switch n {
	case 2:
		return actions.ModShift
	case 3:
		return actions.ModAlt
	case 4:
		return actions.ModShift | actions.ModAlt
	case 5:
		return actions.ModCtrl
	case 6:
		return actions.ModCtrl | actions.ModShift
	case 7:
		return actions.ModCtrl | actions.ModAlt
	case 8:
		return actions.ModCtrl | actions.ModAlt | actions.ModShift
	default:
		return actions.ModNone
	}
}

func (d *KeyDecoder) parseRegular(b byte) actions.Key {
	switch {
	case b == '\r' || b == '\n':
		return actions.Key{Name: "Enter"}
	case b == '\t':
		return actions.Key{Name: "Tab"}
	case b == 127 || b == 8:
		return actions.Key{Name: "Backspace"}
	case b < 0x20:
		// C0 control byte: Ctrl+<letter>, where the letter is byte+0x60.
		return actions.Key{Rune: rune(b + 0x60), Modifiers: actions.ModCtrl}
	default:
		return actions.Key{Rune: rune(b)}
	}
}
