package radiotap

import "encoding/binary"

// buildFrame prepends a fixed header declaring payload as the whole field
// area, then appends body after it.
func buildFrame(present uint32, payload []byte, body ...byte) []byte {
	b := make([]byte, FixedHeaderLen, FixedHeaderLen+len(payload)+len(body))
	binary.LittleEndian.PutUint16(b[2:4], uint16(FixedHeaderLen+len(payload)))
	binary.LittleEndian.PutUint32(b[4:8], present)
	b = append(b, payload...)
	return append(b, body...)
}

func bits(ids ...FieldID) uint32 {
	var v uint32
	for _, id := range ids {
		v |= 1 << id
	}
	return v
}
