package radiotap

import "bytes"

// FixedHeaderLen is the size of the version, pad, length and presence words.
const FixedHeaderLen = 8

// Header is one decoded RadioTap header.
type Header struct {
	// Revision is expected to be 0; other values are reported, not rejected.
	Revision uint8
	Pad      uint8
	// Length covers the fixed header and the field payload.
	Length uint16
	// RawPresent is the first presence word as read, unknown bits included.
	// Extended presence words (bit 31) are not followed.
	RawPresent uint32
	Present    Present
	Fields     Fields
	// Body is everything after the RadioTap header, normally the 802.11
	// frame. It is not decoded.
	Body []byte
}

// Decode parses the RadioTap header at the start of frame.
func Decode(frame []byte) (*Header, error) {
	if len(frame) < FixedHeaderLen {
		return nil, malformed("%d bytes, need at least %d", len(frame), FixedHeaderLen)
	}
	h := &Header{
		Revision:   frame[0],
		Pad:        frame[1],
		Length:     littleEndian16(frame[2:4]),
		RawPresent: littleEndian32(frame[4:8]),
	}
	if h.Length < FixedHeaderLen {
		return nil, malformed("header length %d smaller than fixed header", h.Length)
	}
	if len(frame) < int(h.Length) {
		return nil, malformed("header length %d exceeds frame length %d", h.Length, len(frame))
	}

	fields, present, err := DecodeFields(h.RawPresent, frame[FixedHeaderLen:h.Length])
	if err != nil {
		return nil, err
	}
	h.Fields = fields
	h.Present = present
	h.Body = bytes.Clone(frame[h.Length:])
	return h, nil
}
