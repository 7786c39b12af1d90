// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"encoding/binary"
	"fmt"
	"io"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// uint32Time represents a unix timestamp encoded with a uint32.  It is used
// as a way to signal the readElement function how to decode a timestamp into
// a Go time.Time since it is otherwise ambiguous.
type uint32Time time.Time

const (
	// MaxVarIntPayload is the maximum payload size for a variable length
	// integer.
	MaxVarIntPayload = 9
)

var (
	// littleEndian is a convenience variable since binary.LittleEndian is
	// quite long.
	littleEndian = binary.LittleEndian
)

// readElement reads the next sequence of bytes from r using little endian
// depending on the concrete type of element pointed to.
func readElement(r io.Reader, element interface{}) error {
	var scratch [8]byte

	// Attempt to read the element based on the concrete type via fast
	// type assertions first.
	switch e := element.(type) {
	case *int32:
		b := scratch[0:4]
		if _, err := io.ReadFull(r, b); err != nil {
			return err
		}
		*e = int32(littleEndian.Uint32(b))
		return nil

	case *uint32:
		b := scratch[0:4]
		if _, err := io.ReadFull(r, b); err != nil {
			return err
		}
		*e = littleEndian.Uint32(b)
		return nil

	case *int64:
		b := scratch[0:8]
		if _, err := io.ReadFull(r, b); err != nil {
			return err
		}
		*e = int64(littleEndian.Uint64(b))
		return nil

	case *uint64:
		b := scratch[0:8]
		if _, err := io.ReadFull(r, b); err != nil {
			return err
		}
		*e = littleEndian.Uint64(b)
		return nil

	case *uint8:
		b := scratch[0:1]
		if _, err := io.ReadFull(r, b); err != nil {
			return err
		}
		*e = b[0]
		return nil

	case *uint32Time:
		b := scratch[0:4]
		if _, err := io.ReadFull(r, b); err != nil {
			return err
		}
		*e = uint32Time(time.Unix(int64(littleEndian.Uint32(b)), 0))
		return nil

	case *chainhash.Hash:
		if _, err := io.ReadFull(r, e[:]); err != nil {
			return err
		}
		return nil

	case *RodNet:
		b := scratch[0:4]
		if _, err := io.ReadFull(r, b); err != nil {
			return err
		}
		*e = RodNet(littleEndian.Uint32(b))
		return nil
	}

	return fmt.Errorf("unhandled element type %T", element)
}

// readElements reads multiple items from r.  It is equivalent to multiple
// calls to readElement.
func readElements(r io.Reader, elements ...interface{}) error {
	for _, element := range elements {
		err := readElement(r, element)
		if err != nil {
			return err
		}
	}
	return nil
}

// writeElement writes the little endian representation of element to w.
func writeElement(w io.Writer, element interface{}) error {
	var scratch [8]byte

	// Attempt to write the element based on the concrete type via fast
	// type assertions first.
	switch e := element.(type) {
	case int32:
		b := scratch[0:4]
		littleEndian.PutUint32(b, uint32(e))
		_, err := w.Write(b)
		return err

	case uint32:
		b := scratch[0:4]
		littleEndian.PutUint32(b, e)
		_, err := w.Write(b)
		return err

	case int64:
		b := scratch[0:8]
		littleEndian.PutUint64(b, uint64(e))
		_, err := w.Write(b)
		return err

	case uint64:
		b := scratch[0:8]
		littleEndian.PutUint64(b, e)
		_, err := w.Write(b)
		return err

	case uint8:
		b := scratch[0:1]
		b[0] = e
		_, err := w.Write(b)
		return err

	case *chainhash.Hash:
		_, err := w.Write(e[:])
		return err

	case RodNet:
		b := scratch[0:4]
		littleEndian.PutUint32(b, uint32(e))
		_, err := w.Write(b)
		return err
	}

	return fmt.Errorf("unhandled element type %T", element)
}

// writeElements writes multiple items to w.  It is equivalent to multiple
// calls to writeElement.
func writeElements(w io.Writer, elements ...interface{}) error {
	for _, element := range elements {
		err := writeElement(w, element)
		if err != nil {
			return err
		}
	}
	return nil
}

// ReadVarInt reads a variable length integer from r and returns it as a
// uint64.
func ReadVarInt(r io.Reader, pver uint32) (uint64, error) {
	var scratch [8]byte
	b := scratch[0:1]
	if _, err := io.ReadFull(r, b); err != nil {
		return 0, err
	}
	discriminant := b[0]

	var rv uint64
	switch discriminant {
	case 0xff:
		b := scratch[0:8]
		if _, err := io.ReadFull(r, b); err != nil {
			return 0, err
		}
		rv = littleEndian.Uint64(b)

		// The encoding is not canonical if the value could have been
		// encoded using fewer bytes.
		if rv < 0x100000000 {
			return 0, fmt.Errorf("ReadVarInt: non-canonical varint %d", rv)
		}

	case 0xfe:
		b := scratch[0:4]
		if _, err := io.ReadFull(r, b); err != nil {
			return 0, err
		}
		rv = uint64(littleEndian.Uint32(b))

		if rv < 0x10000 {
			return 0, fmt.Errorf("ReadVarInt: non-canonical varint %d", rv)
		}

	case 0xfd:
		b := scratch[0:2]
		if _, err := io.ReadFull(r, b); err != nil {
			return 0, err
		}
		rv = uint64(littleEndian.Uint16(b))

		if rv < 0xfd {
			return 0, fmt.Errorf("ReadVarInt: non-canonical varint %d", rv)
		}

	default:
		rv = uint64(discriminant)
	}

	return rv, nil
}

// WriteVarInt serializes val to w using a variable number of bytes depending
// on its value.
func WriteVarInt(w io.Writer, pver uint32, val uint64) error {
	if val < 0xfd {
		return writeElement(w, uint8(val))
	}

	if val <= 1<<16-1 {
		var buf [3]byte
		buf[0] = 0xfd
		littleEndian.PutUint16(buf[1:], uint16(val))
		_, err := w.Write(buf[:])
		return err
	}

	if val <= 1<<32-1 {
		var buf [5]byte
		buf[0] = 0xfe
		littleEndian.PutUint32(buf[1:], uint32(val))
		_, err := w.Write(buf[:])
		return err
	}

	var buf [9]byte
	buf[0] = 0xff
	littleEndian.PutUint64(buf[1:], val)
	_, err := w.Write(buf[:])
	return err
}

// VarIntSerializeSize returns the number of bytes it would take to serialize
// val as a variable length integer.
func VarIntSerializeSize(val uint64) int {
	// The value is small enough to be represented by itself, so it's
	// just 1 byte.
	if val < 0xfd {
		return 1
	}

	// Discriminant 1 byte plus 2 bytes for the uint16.
	if val <= 1<<16-1 {
		return 3
	}

	// Discriminant 1 byte plus 4 bytes for the uint32.
	if val <= 1<<32-1 {
		return 5
	}

	// Discriminant 1 byte plus 8 bytes for the uint64.
	return 9
}

// ReadVarBytes reads a variable length byte array.  A byte array is encoded
// as a varInt containing the length of the array followed by the bytes
// themselves.  An error is returned if the length is greater than the passed
// maxAllowed parameter which helps protect against memory exhaustion attacks
// and forced panics through malformed messages.  The fieldName parameter is
// only used for the error message so it provides more context in the error.
func ReadVarBytes(r io.Reader, pver uint32, maxAllowed uint32,
	fieldName string) ([]byte, error) {

	count, err := ReadVarInt(r, pver)
	if err != nil {
		return nil, err
	}

	// Prevent byte array larger than the max message size.  It would
	// be possible to cause memory exhaustion and panics without a sane
	// upper bound on this count.
	if count > uint64(maxAllowed) {
		return nil, fmt.Errorf("%s is larger than the max allowed size "+
			"[count %d, max %d]", fieldName, count, maxAllowed)
	}

	b := make([]byte, count)
	_, err = io.ReadFull(r, b)
	if err != nil {
		return nil, err
	}
	return b, nil
}

// WriteVarBytes serializes a variable length byte array to w as a varInt
// containing the number of bytes, followed by the bytes themselves.
func WriteVarBytes(w io.Writer, pver uint32, bytes []byte) error {
	slen := uint64(len(bytes))
	err := WriteVarInt(w, pver, slen)
	if err != nil {
		return err
	}

	_, err = w.Write(bytes)
	return err
}
