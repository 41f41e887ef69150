package engine

import "encoding/binary"

// Reader decodes little-endian values from an engine buffer.
// The first out-of-range read records an error; later reads return zero values,
// so a decoder can read a whole record and check Err once.
type Reader struct {
	buf []byte
	off int
	err error
}

// NewReader returns a Reader positioned at the start of buf.
func NewReader(buf []byte) *Reader {
	return &Reader{buf: buf}
}

// Err returns the first read error, if any.
func (r *Reader) Err() error { return r.err }

// Offset returns the number of bytes consumed.
func (r *Reader) Offset() int { return r.off }

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int { return len(r.buf) - r.off }

func (r *Reader) take(n int) []byte {
	if r.err != nil {
		return nil
	}
	if n > len(r.buf)-r.off {
		r.err = &BufferError{Offset: r.off, Want: n, Len: len(r.buf)}
		return nil
	}
	b := r.buf[r.off : r.off+n]
	r.off += n
	return b
}

func (r *Reader) U8() uint8 {
	b := r.take(1)
	if b == nil {
		return 0
	}
	return b[0]
}

func (r *Reader) U16() uint16 {
	b := r.take(2)
	if b == nil {
		return 0
	}
	return binary.LittleEndian.Uint16(b)
}

func (r *Reader) U32() uint32 {
	b := r.take(4)
	if b == nil {
		return 0
	}
	return binary.LittleEndian.Uint32(b)
}

func (r *Reader) I32() int32 { return int32(r.U32()) }

// Skip advances past n bytes.
func (r *Reader) Skip(n int) { r.take(n) }

// readCardLoc reads the common (code, controller, location, sequence) header
// shared by most selection messages.
func (r *Reader) readCardLoc() (CardCode, PlayerID, Location, uint8) {
	code := CardCode(r.U32())
	con := PlayerID(r.U8())
	loc := Location(r.U8())
	seq := r.U8()
	return code, con, loc, seq
}
