package radiotap

import (
	"encoding/binary"
	"fmt"
)

// Reverse returns a copy of b with its bytes in reverse order. Applied to a
// little-endian wire value it yields the big-endian form Uint32 and Uint64
// expect.
func Reverse(b []byte) []byte {
	out := make([]byte, len(b))
	for i, v := range b {
		out[len(b)-1-i] = v
	}
	return out
}

// Uint32 interprets b as a big-endian unsigned integer of at most 4 bytes.
func Uint32(b []byte) (uint32, error) {
	if len(b) > 4 {
		return 0, fmt.Errorf("radiotap: %d bytes overflow uint32", len(b))
	}
	var v uint32
	for _, x := range b {
		v = v<<8 | uint32(x)
	}
	return v, nil
}

// Uint64 interprets b as a big-endian unsigned integer of at most 8 bytes.
func Uint64(b []byte) (uint64, error) {
	if len(b) > 8 {
		return 0, fmt.Errorf("radiotap: %d bytes overflow uint64", len(b))
	}
	var v uint64
	for _, x := range b {
		v = v<<8 | uint64(x)
	}
	return v, nil
}

func littleEndian16(b []byte) uint16 {
	return binary.LittleEndian.Uint16(b)
}

func littleEndian32(b []byte) uint32 {
	return binary.LittleEndian.Uint32(b)
}
