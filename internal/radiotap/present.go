package radiotap

import "bytes"

// Present records which known fields were flagged in the presence bitmask.
// Bit i is set exactly when field i is known and its presence bit was set.
type Present uint32

var knownPresent = func() Present {
	var p Present
	for _, e := range fieldTable {
		p |= 1 << e.id
	}
	return p
}()

func (p Present) Has(id FieldID) bool {
	return id < 32 && p&(1<<id) != 0
}

// IDs lists the present fields in decode order.
func (p Present) IDs() []FieldID {
	ids := make([]FieldID, 0, len(fieldTable))
	for _, e := range fieldTable {
		if p.Has(e.id) {
			ids = append(ids, e.id)
		}
	}
	return ids
}

func (p Present) TSFT() bool             { return p.Has(FieldTSFT) }
func (p Present) Flags() bool            { return p.Has(FieldFlags) }
func (p Present) Rate() bool             { return p.Has(FieldRate) }
func (p Present) Channel() bool          { return p.Has(FieldChannel) }
func (p Present) FHSS() bool             { return p.Has(FieldFHSS) }
func (p Present) DBMAntennaSignal() bool { return p.Has(FieldDBMAntennaSignal) }
func (p Present) DBMAntennaNoise() bool  { return p.Has(FieldDBMAntennaNoise) }
func (p Present) LockQuality() bool      { return p.Has(FieldLockQuality) }
func (p Present) TxAttenuation() bool    { return p.Has(FieldTxAttenuation) }
func (p Present) DBTxAttenuation() bool  { return p.Has(FieldDBTxAttenuation) }
func (p Present) DBMTxPower() bool       { return p.Has(FieldDBMTxPower) }
func (p Present) Antenna() bool          { return p.Has(FieldAntenna) }
func (p Present) DBAntennaSignal() bool  { return p.Has(FieldDBAntennaSignal) }
func (p Present) DBAntennaNoise() bool   { return p.Has(FieldDBAntennaNoise) }
func (p Present) RxFlags() bool          { return p.Has(FieldRxFlags) }
func (p Present) MCS() bool              { return p.Has(FieldMCS) }
func (p Present) AMPDUStatus() bool      { return p.Has(FieldAMPDUStatus) }
func (p Present) VHT() bool              { return p.Has(FieldVHT) }

// DecodeFields walks the known field table in bit order and decodes every
// field whose bit is set in present from payload. Unknown bits are ignored.
// A field running past the end of payload aborts the whole decode with a
// *TruncatedFieldError.
func DecodeFields(present uint32, payload []byte) (Fields, Present, error) {
	c := &cursor{buf: payload}
	f := newFields()
	for _, e := range fieldTable {
		if present&(1<<e.id) == 0 {
			continue
		}
		if err := e.decode(c, &f); err != nil {
			return Fields{}, 0, err
		}
	}
	f.Payload = bytes.Clone(payload)
	f.Trailing = bytes.Clone(payload[c.off:])
	f.Consumed = c.off
	return f, Present(present) & knownPresent, nil
}
