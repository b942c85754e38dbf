package radiotap

import (
	"bytes"
	"errors"
	"testing"

	"github.com/gopacket/gopacket"
	"github.com/gopacket/gopacket/layers"
)

func TestDecodeShortFrameIsMalformed(t *testing.T) {
	for n := 0; n < FixedHeaderLen; n++ {
		_, err := Decode(make([]byte, n))
		if !errors.Is(err, ErrMalformedHeader) {
			t.Fatalf("len %d: expected ErrMalformedHeader, got %v", n, err)
		}
	}
}

func TestDecodeHeaderLengthExceedsFrame(t *testing.T) {
	frame := buildFrame(bits(FieldAntenna), []byte{0x01})
	_, err := Decode(frame[:len(frame)-1])
	if !errors.Is(err, ErrMalformedHeader) {
		t.Fatalf("expected ErrMalformedHeader, got %v", err)
	}
}

func TestDecodeHeaderLengthSmallerThanFixedHeader(t *testing.T) {
	frame := buildFrame(0, nil, 0xaa, 0xbb)
	frame[2] = 0x04
	_, err := Decode(frame)
	if !errors.Is(err, ErrMalformedHeader) {
		t.Fatalf("expected ErrMalformedHeader, got %v", err)
	}
}

func TestDecodeEmptyPayload(t *testing.T) {
	h, err := Decode(buildFrame(0, nil))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if h.Revision != 0 || h.Length != FixedHeaderLen || h.Present != 0 {
		t.Fatalf("unexpected header: %+v", h)
	}
	if len(h.Fields.Payload) != 0 || h.Fields.Consumed != 0 || len(h.Body) != 0 {
		t.Fatalf("expected empty payload and body, got %+v", h.Fields)
	}
	if h.Fields.TSFT != -1 || h.Fields.Channel.Number != -1 {
		t.Fatalf("expected sentinel defaults, got tsft=%d channel=%d", h.Fields.TSFT, h.Fields.Channel.Number)
	}
}

func TestDecodePayloadLengthMatchesHeaderLength(t *testing.T) {
	for n := 0; n < 40; n++ {
		h, err := Decode(buildFrame(0, make([]byte, n), 0xde, 0xad))
		if err != nil {
			t.Fatalf("payload %d: %v", n, err)
		}
		if int(h.Length) != FixedHeaderLen+n {
			t.Fatalf("payload %d: header length %d", n, h.Length)
		}
		if len(h.Fields.Payload) != int(h.Length)-FixedHeaderLen {
			t.Fatalf("payload %d: got %d payload bytes", n, len(h.Fields.Payload))
		}
		if !bytes.Equal(h.Body, []byte{0xde, 0xad}) {
			t.Fatalf("payload %d: unexpected body %x", n, h.Body)
		}
	}
}

func TestDecodeReportsRevisionAndRawPresent(t *testing.T) {
	frame := buildFrame(bits(FieldAntenna)|1<<25, []byte{0x03})
	frame[0] = 0x01
	frame[1] = 0x7f
	h, err := Decode(frame)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if h.Revision != 0x01 || h.Pad != 0x7f {
		t.Fatalf("unexpected revision/pad: %d/%d", h.Revision, h.Pad)
	}
	if h.RawPresent != bits(FieldAntenna)|1<<25 {
		t.Fatalf("unexpected raw present: 0x%08X", h.RawPresent)
	}
	if uint32(h.Present) != bits(FieldAntenna) || h.Fields.Antenna != 0x03 {
		t.Fatalf("unexpected decode: present=0x%08X antenna=%d", uint32(h.Present), h.Fields.Antenna)
	}
}

func TestDecodePropagatesTruncatedField(t *testing.T) {
	_, err := Decode(buildFrame(bits(FieldLockQuality), []byte{0x01}, 0x00, 0x00, 0x00))
	var trunc *TruncatedFieldError
	if !errors.As(err, &trunc) || trunc.Field != FieldLockQuality {
		t.Fatalf("expected lock quality truncation, got %v", err)
	}
}

// Where the quirky offsets coincide with natural alignment the result must
// match gopacket's decoder.
func TestDecodeAgreesWithGopacket(t *testing.T) {
	payload := []byte{
		0x02,       // flags: short preamble
		0x16,       // rate 11 Mb/s
		0x6c, 0x09, // 2412 MHz
		0xa0, 0x00, // cck | 2ghz
		0xc4, // -60 dBm
		0x01, // antenna 1
	}
	body := []byte{0x80, 0x00, 0x00, 0x00}
	frame := buildFrame(bits(FieldFlags, FieldRate, FieldChannel, FieldDBMAntennaSignal, FieldAntenna), payload, body...)

	var rt layers.RadioTap
	if err := rt.DecodeFromBytes(frame, gopacket.NilDecodeFeedback); err != nil {
		t.Fatalf("gopacket decode: %v", err)
	}
	h, err := Decode(frame)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	if h.Length != rt.Length {
		t.Fatalf("length: got %d gopacket %d", h.Length, rt.Length)
	}
	if h.RawPresent != uint32(rt.Present) {
		t.Fatalf("present: got 0x%08X gopacket 0x%08X", h.RawPresent, uint32(rt.Present))
	}
	if h.Fields.Flags != uint8(rt.Flags) {
		t.Fatalf("flags: got 0x%02X gopacket 0x%02X", h.Fields.Flags, uint8(rt.Flags))
	}
	if h.Fields.Rate != uint32(rt.Rate)*500 {
		t.Fatalf("rate: got %d kbps gopacket %d units", h.Fields.Rate, rt.Rate)
	}
	if h.Fields.Channel.Frequency != uint16(rt.ChannelFrequency) {
		t.Fatalf("frequency: got %d gopacket %d", h.Fields.Channel.Frequency, rt.ChannelFrequency)
	}
	if uint16(h.Fields.Channel.Flags) != uint16(rt.ChannelFlags) {
		t.Fatalf("channel flags: got 0x%04X gopacket 0x%04X", uint16(h.Fields.Channel.Flags), uint16(rt.ChannelFlags))
	}
	if h.Fields.DBMAntennaSignal != rt.DBMAntennaSignal || h.Fields.Antenna != rt.Antenna {
		t.Fatalf("signal/antenna: got %d/%d gopacket %d/%d",
			h.Fields.DBMAntennaSignal, h.Fields.Antenna, rt.DBMAntennaSignal, rt.Antenna)
	}
	if !bytes.Equal(h.Body, rt.Payload) {
		t.Fatalf("body: got %x gopacket %x", h.Body, rt.Payload)
	}
	if h.Fields.Channel.Number != 1 {
		t.Fatalf("expected channel 1, got %d", h.Fields.Channel.Number)
	}
}
