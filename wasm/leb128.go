package wasm

import "errors"

// LEB128 decoding over a byte slice. Every reader returns the decoded value
// and the number of bytes consumed.

// ErrOverflow is returned when a LEB128 value exceeds its maximum bit width.
var ErrOverflow = errors.New("wasm: leb128 overflow")

// ErrUnexpectedEOF is returned when a value runs past the end of input.
var ErrUnexpectedEOF = errors.New("wasm: unexpected end of input")

func readU32(b []byte) (uint32, int, error) {
	var result uint32
	var shift uint
	for i := 0; i < len(b); i++ {
		c := b[i]
		if shift == 28 && c > 0x0f {
			return 0, 0, ErrOverflow
		}
		result |= uint32(c&0x7f) << shift
		if c&0x80 == 0 {
			return result, i + 1, nil
		}
		shift += 7
		if shift >= 35 {
			return 0, 0, ErrOverflow
		}
	}
	return 0, 0, ErrUnexpectedEOF
}

func readU64(b []byte) (uint64, int, error) {
	var result uint64
	var shift uint
	for i := 0; i < len(b); i++ {
		c := b[i]
		result |= uint64(c&0x7f) << shift
		if c&0x80 == 0 {
			return result, i + 1, nil
		}
		shift += 7
		if shift >= 70 {
			return 0, 0, ErrOverflow
		}
	}
	return 0, 0, ErrUnexpectedEOF
}

func readS32(b []byte) (int32, int, error) {
	v, n, err := readS64(b)
	if err != nil {
		return 0, 0, err
	}
	if v < -1<<31 || v >= 1<<31 {
		return 0, 0, ErrOverflow
	}
	return int32(v), n, nil
}

func readS64(b []byte) (int64, int, error) {
	var result int64
	var shift uint
	for i := 0; i < len(b); i++ {
		c := b[i]
		result |= int64(c&0x7f) << shift
		shift += 7
		if c&0x80 == 0 {
			if shift < 64 && c&0x40 != 0 {
				result |= -1 << shift
			}
			return result, i + 1, nil
		}
		if shift >= 70 {
			return 0, 0, ErrOverflow
		}
	}
	return 0, 0, ErrUnexpectedEOF
}

// readS33 reads the s33 encoding used by block types and heap types.
func readS33(b []byte) (int64, int, error) {
	v, n, err := readS64(b)
	if err != nil {
		return 0, 0, err
	}
	if v < -1<<32 || v >= 1<<32 {
		return 0, 0, ErrOverflow
	}
	return v, n, nil
}

// Exported readers for packages that walk raw expression bytes (the
// translator and the constant-expression evaluator).

func ReadU32(b []byte) (uint32, int, error) { return readU32(b) }
func ReadU64(b []byte) (uint64, int, error) { return readU64(b) }
func ReadS32(b []byte) (int32, int, error) { return readS32(b) }
func ReadS64(b []byte) (int64, int, error) { return readS64(b) }
func ReadS33(b []byte) (int64, int, error) { return readS33(b) }

// AppendU32 writes an unsigned LEB128 value; tooling and tests use it to
// assemble raw bodies.
func AppendU32(out []byte, v uint32) []byte { return appendU32(out, v) }

// AppendS32 writes a signed LEB128 value.
func AppendS32(out []byte, v int32) []byte { return appendS32(out, v) }

// AppendS64 writes a signed 64-bit LEB128 value.
func AppendS64(out []byte, v int64) []byte { return appendS64(out, v) }

// Append writers used by the encoder.

func appendU32(out []byte, v uint32) []byte {
	return appendU64(out, uint64(v))
}

func appendU64(out []byte, v uint64) []byte {
	for {
		c := byte(v & 0x7f)
		v >>= 7
		if v != 0 {
			c |= 0x80
		}
		out = append(out, c)
		if v == 0 {
			return out
		}
	}
}

func appendS64(out []byte, v int64) []byte {
	for {
		c := byte(v & 0x7f)
		v >>= 7
		last := (v == 0 && c&0x40 == 0) || (v == -1 && c&0x40 != 0)
		if !last {
			c |= 0x80
		}
		out = append(out, c)
		if last {
			return out
		}
	}
}

func appendS32(out []byte, v int32) []byte {
	return appendS64(out, int64(v))
}
