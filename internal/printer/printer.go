// Package printer is the raw pass-through channel to a print device.
// Command buffers are written verbatim; nothing is parsed, buffered or
// retried, and channel failures propagate as-is.
package printer

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"go.bug.st/serial"
)

var ErrNotConnected = errors.New("printer not connected")

// Language is a printer command language.
type Language string

const (
	ZPL Language = "ZPL"
	EPL Language = "EPL"
)

// Guess picks the command language from a printer model name. The
// LP2844 family and other Eltron-era models speak EPL; everything else
// defaults to ZPL.
func Guess(name string) Language {
	lower := strings.ToLower(name)
	switch {
	case strings.Contains(lower, "2844"),
		strings.Contains(lower, "eltron"),
		strings.Contains(lower, "epl"):
		return EPL
	default:
		return ZPL
	}
}

// ParseLanguage resolves a user-facing language selection. "auto" and
// "" defer to Guess on the printer name.
func ParseLanguage(s, printerName string) (Language, error) {
	switch strings.ToLower(s) {
	case "", "auto":
		return Guess(printerName), nil
	case "zpl":
		return ZPL, nil
	case "epl":
		return EPL, nil
	default:
		return "", fmt.Errorf("unknown printer language %q", s)
	}
}

// Printer is an open raw channel: either a serial port or a writable
// device node / spool file.
type Printer struct {
	port serial.Port
	file *os.File
	name string
}

// Open connects to a device. Serial paths get the usual label-printer
// port settings; anything else is opened as a plain writable device
// node (e.g. /dev/usb/lp0) or spool file.
func Open(device string) (*Printer, error) {
	if strings.HasPrefix(device, "/dev/tty") || strings.HasPrefix(device, "COM") {
		mode := &serial.Mode{
			BaudRate: 115200,
			DataBits: 8,
			Parity:   serial.NoParity,
			StopBits: serial.OneStopBit,
		}
		port, err := serial.Open(device, mode)
		if err != nil {
			return nil, fmt.Errorf("open port %s: %w", device, err)
		}
		port.SetReadTimeout(3 * time.Second)
		return &Printer{port: port, name: device}, nil
	}

	f, err := os.OpenFile(device, os.O_WRONLY|os.O_CREATE, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open device %s: %w", device, err)
	}
	return &Printer{file: f, name: device}, nil
}

// Send writes a command buffer to the device unmodified.
func (p *Printer) Send(data []byte) error {
	switch {
	case p.port != nil:
		if _, err := p.port.Write(data); err != nil {
			return fmt.Errorf("write to %s: %w", p.name, err)
		}
		return nil
	case p.file != nil:
		if _, err := p.file.Write(data); err != nil {
			return fmt.Errorf("write to %s: %w", p.name, err)
		}
		return nil
	default:
		return ErrNotConnected
	}
}

// Close releases the device.
func (p *Printer) Close() error {
	switch {
	case p.port != nil:
		return p.port.Close()
	case p.file != nil:
		return p.file.Close()
	default:
		return nil
	}
}

// Name returns the device path this printer was opened with.
func (p *Printer) Name() string {
	return p.name
}
