package radiotap

// rxFlagsPLCPCRC is compared for equality against the low-order rx flags
// byte, so other bits set alongside it clear the error.
const rxFlagsPLCPCRC = 0x02

// cursor reads fields from one payload in bit order. It lives for a single
// DecodeFields call.
type cursor struct {
	buf []byte
	off int
	// flagsSeen is set once Flags consumed its padded two byte slot.
	flagsSeen bool
}

func (c *cursor) take(id FieldID, n int) ([]byte, error) {
	if have := len(c.buf) - c.off; n > have {
		return nil, &TruncatedFieldError{Field: id, Offset: c.off, Need: n, Have: have}
	}
	b := c.buf[c.off : c.off+n]
	c.off += n
	return b, nil
}

func (c *cursor) tsft(f *Fields) error {
	b, err := c.take(FieldTSFT, 4)
	if err != nil {
		return err
	}
	f.TSFT = int64(littleEndian32(b))
	return nil
}

func (c *cursor) flags(f *Fields) error {
	b, err := c.take(FieldFlags, 2)
	if err != nil {
		return err
	}
	f.Flags = b[0]
	c.flagsSeen = true
	return nil
}

// rate reuses the Flags pad byte when Flags was present.
func (c *cursor) rate(f *Fields) error {
	if c.flagsSeen {
		c.off--
	}
	b, err := c.take(FieldRate, 1)
	if err != nil {
		return err
	}
	f.Rate = uint32(b[0]) * 500
	return nil
}

func (c *cursor) channel(f *Fields) error {
	b, err := c.take(FieldChannel, 4)
	if err != nil {
		return err
	}
	f.Channel = DecodeChannel(littleEndian16(b[0:2]), littleEndian16(b[2:4]))
	return nil
}

// fhss keeps the hop set; the hop pattern byte is skipped.
func (c *cursor) fhss(f *Fields) error {
	b, err := c.take(FieldFHSS, 2)
	if err != nil {
		return err
	}
	f.FHSS = b[0]
	return nil
}

func (c *cursor) dbmAntennaSignal(f *Fields) error {
	b, err := c.take(FieldDBMAntennaSignal, 1)
	if err != nil {
		return err
	}
	f.DBMAntennaSignal = int8(b[0])
	return nil
}

func (c *cursor) dbmAntennaNoise(f *Fields) error {
	b, err := c.take(FieldDBMAntennaNoise, 1)
	if err != nil {
		return err
	}
	f.DBMAntennaNoise = int8(b[0])
	return nil
}

func (c *cursor) lockQuality(f *Fields) error {
	b, err := c.take(FieldLockQuality, 2)
	if err != nil {
		return err
	}
	f.LockQuality = littleEndian16(b)
	return nil
}

func (c *cursor) txAttenuation(f *Fields) error {
	b, err := c.take(FieldTxAttenuation, 2)
	if err != nil {
		return err
	}
	f.TxAttenuation = littleEndian16(b)
	return nil
}

func (c *cursor) dbTxAttenuation(f *Fields) error {
	b, err := c.take(FieldDBTxAttenuation, 2)
	if err != nil {
		return err
	}
	f.DBTxAttenuation = littleEndian16(b)
	return nil
}

func (c *cursor) dbmTxPower(f *Fields) error {
	b, err := c.take(FieldDBMTxPower, 1)
	if err != nil {
		return err
	}
	f.DBMTxPower = int8(b[0])
	return nil
}

func (c *cursor) antenna(f *Fields) error {
	b, err := c.take(FieldAntenna, 1)
	if err != nil {
		return err
	}
	f.Antenna = b[0]
	return nil
}

func (c *cursor) dbAntennaSignal(f *Fields) error {
	b, err := c.take(FieldDBAntennaSignal, 1)
	if err != nil {
		return err
	}
	f.DBAntennaSignal = b[0]
	return nil
}

func (c *cursor) dbAntennaNoise(f *Fields) error {
	b, err := c.take(FieldDBAntennaNoise, 1)
	if err != nil {
		return err
	}
	f.DBAntennaNoise = b[0]
	return nil
}

func (c *cursor) rxFlags(f *Fields) error {
	b, err := c.take(FieldRxFlags, 2)
	if err != nil {
		return err
	}
	host := Reverse(b)
	f.RxFlags = uint16(host[0])<<8 | uint16(host[1])
	f.PLCPCRCError = host[1] == rxFlagsPLCPCRC
	return nil
}

func (c *cursor) mcs(f *Fields) error {
	b, err := c.take(FieldMCS, 3)
	if err != nil {
		return err
	}
	f.MCS = MCS{Known: b[0], Flags: b[1], Rate: b[2]}
	return nil
}

func (c *cursor) ampduStatus(f *Fields) error {
	b, err := c.take(FieldAMPDUStatus, 8)
	if err != nil {
		return err
	}
	copy(f.AMPDUStatus[:], b)
	return nil
}

func (c *cursor) vht(f *Fields) error {
	b, err := c.take(FieldVHT, 9)
	if err != nil {
		return err
	}
	copy(f.VHT[:], b)
	return nil
}
