package radiotap

// ChannelFlags is the host-order bitmask carried in the second half of the
// Channel field.
type ChannelFlags uint16

const (
	ChannelTurbo          ChannelFlags = 0x0010
	ChannelCCK            ChannelFlags = 0x0020
	ChannelOFDM           ChannelFlags = 0x0040
	ChannelSpectrum2GHz   ChannelFlags = 0x0080
	ChannelSpectrum5GHz   ChannelFlags = 0x0100
	ChannelPassiveOnly    ChannelFlags = 0x0200
	ChannelDynamicCCKOFDM ChannelFlags = 0x0400
	ChannelGFSK           ChannelFlags = 0x0800
)

func (f ChannelFlags) Turbo() bool          { return f&ChannelTurbo != 0 }
func (f ChannelFlags) CCK() bool            { return f&ChannelCCK != 0 }
func (f ChannelFlags) OFDM() bool           { return f&ChannelOFDM != 0 }
func (f ChannelFlags) Spectrum2GHz() bool   { return f&ChannelSpectrum2GHz != 0 }
func (f ChannelFlags) Spectrum5GHz() bool   { return f&ChannelSpectrum5GHz != 0 }
func (f ChannelFlags) PassiveOnly() bool    { return f&ChannelPassiveOnly != 0 }
func (f ChannelFlags) DynamicCCKOFDM() bool { return f&ChannelDynamicCCKOFDM != 0 }
func (f ChannelFlags) GFSK() bool           { return f&ChannelGFSK != 0 }

// Channel is the decoded Channel field.
type Channel struct {
	// Frequency in MHz.
	Frequency uint16
	// Number is the conventional channel number, -1 when Frequency is not
	// in the 2.4 GHz or 5 GHz plan.
	Number int
	Flags  ChannelFlags
}

// 802.11b/g/n
var channels2GHz = map[uint16]int{
	2412: 1, 2417: 2, 2422: 3, 2427: 4, 2432: 5, 2437: 6, 2442: 7,
	2447: 8, 2452: 9, 2457: 10, 2462: 11, 2467: 12, 2472: 13, 2484: 14,
}

// 802.11a/h/j/n/ac
var channels5GHz = map[uint16]int{
	4915: 183, 4920: 184, 4925: 185, 4935: 187, 4940: 188, 4945: 189,
	4960: 192, 4980: 196,
	5035: 7, 5040: 8, 5045: 9, 5055: 11, 5060: 12, 5080: 16,
	5170: 34, 5180: 36, 5190: 38, 5200: 40, 5210: 42, 5220: 44,
	5230: 46, 5240: 48, 5260: 52, 5280: 56, 5300: 60, 5320: 64,
	5500: 100, 5520: 104, 5540: 108, 5560: 112, 5580: 116, 5600: 120,
	5620: 124, 5640: 128, 5660: 132, 5680: 136, 5700: 140,
	5745: 149, 5765: 153, 5785: 157, 5805: 161, 5825: 165,
}

// ChannelNumber maps an exact center frequency in MHz to its channel number,
// or -1 when the frequency is not in either plan.
func ChannelNumber(frequency uint16) int {
	if n, ok := channels2GHz[frequency]; ok {
		return n
	}
	if n, ok := channels5GHz[frequency]; ok {
		return n
	}
	return -1
}

// DecodeChannel builds a Channel from the host-order frequency and flag
// words of the Channel field.
func DecodeChannel(frequency, flags uint16) Channel {
	return Channel{
		Frequency: frequency,
		Number:    ChannelNumber(frequency),
		Flags:     ChannelFlags(flags),
	}
}
