// Package frame reads and writes NUL-terminated text records over a byte
// stream.
//
// Wire format:
//
//	<utf-8 text>\x00<utf-8 text>\x00...
//
// The terminator is mandatory for every record except possibly the last one
// before end of stream. There is no length prefix and no maximum record size.
// Records are decoded lossily: invalid UTF-8 is replaced with U+FFFD rather
// than rejected.
package frame

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
)

// Terminator ends every record on the wire.
const Terminator byte = 0x00

const bufferSize = 64 * 1024

// Reader splits a byte stream into records.
type Reader struct {
	br  *bufio.Reader
	dec *encoding.Decoder
	eof bool
}

// NewReader wraps r with buffered record framing.
func NewReader(r io.Reader) *Reader {
	return &Reader{
		br:  bufio.NewReaderSize(r, bufferSize),
		dec: unicode.UTF8.NewDecoder(),
	}
}

// ReadRecord returns the next record without its terminator.
//
// A trailing record that is cut off by end of stream is returned with a nil
// error; the call after it returns io.EOF. Any other error from the
// underlying reader is returned as is, wrapped.
func (r *Reader) ReadRecord() (string, error) {
	if r.eof {
		return "", io.EOF
	}
	raw, err := r.br.ReadBytes(Terminator)
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("read record: %w", err)
		}
		r.eof = true
		if len(raw) == 0 {
			return "", io.EOF
		}
	} else {
		raw = raw[:len(raw)-1]
	}
	return r.decode(raw)
}

func (r *Reader) decode(raw []byte) (string, error) {
	text, err := r.dec.Bytes(raw)
	if err != nil {
		return "", fmt.Errorf("decode record: %w", err)
	}
	return string(text), nil
}

// Writer writes framed records and flushes each one immediately so that a
// reader on the other end never waits on buffered output.
type Writer struct {
	bw *bufio.Writer
}

// NewWriter wraps w with record framing.
func NewWriter(w io.Writer) *Writer {
	return &Writer{bw: bufio.NewWriterSize(w, bufferSize)}
}

// WriteRecord writes text followed by the terminator and flushes.
func (w *Writer) WriteRecord(text string) error {
	if _, err := w.bw.WriteString(text); err != nil {
		return fmt.Errorf("write record: %w", err)
	}
	if err := w.bw.WriteByte(Terminator); err != nil {
		return fmt.Errorf("write record: %w", err)
	}
	if err := w.bw.Flush(); err != nil {
		return fmt.Errorf("flush record: %w", err)
	}
	return nil
}
