package radiotap

import "strconv"

// FieldID is the presence bit index of a RadioTap field.
type FieldID uint8

const (
	FieldTSFT FieldID = iota
	FieldFlags
	FieldRate
	FieldChannel
	FieldFHSS
	FieldDBMAntennaSignal
	FieldDBMAntennaNoise
	FieldLockQuality
	FieldTxAttenuation
	FieldDBTxAttenuation
	FieldDBMTxPower
	FieldAntenna
	FieldDBAntennaSignal
	FieldDBAntennaNoise
	FieldRxFlags
)

// Bits 15-18 (tx flags, retries, xchannel) are not decoded.
const (
	FieldMCS FieldID = 19 + iota
	FieldAMPDUStatus
	FieldVHT
)

var fieldNames = map[FieldID]string{
	FieldTSFT:             "tsft",
	FieldFlags:            "flags",
	FieldRate:             "rate",
	FieldChannel:          "channel",
	FieldFHSS:             "fhss",
	FieldDBMAntennaSignal: "dbm_antenna_signal",
	FieldDBMAntennaNoise:  "dbm_antenna_noise",
	FieldLockQuality:      "lock_quality",
	FieldTxAttenuation:    "tx_attenuation",
	FieldDBTxAttenuation:  "db_tx_attenuation",
	FieldDBMTxPower:       "dbm_tx_power",
	FieldAntenna:          "antenna",
	FieldDBAntennaSignal:  "db_antenna_signal",
	FieldDBAntennaNoise:   "db_antenna_noise",
	FieldRxFlags:          "rx_flags",
	FieldMCS:              "mcs",
	FieldAMPDUStatus:      "ampdu_status",
	FieldVHT:              "vht",
}

func (id FieldID) String() string {
	if name, ok := fieldNames[id]; ok {
		return name
	}
	return "bit" + strconv.Itoa(int(id))
}

// FieldSpec describes one known field.
type FieldSpec struct {
	ID   FieldID
	Name string
	// Width is the number of bytes the field occupies at the cursor. Flags
	// and FHSS include their trailing byte; Rate steps back onto the Flags
	// pad byte when both are present.
	Width int
}

type fieldEntry struct {
	id     FieldID
	width  int
	decode func(*cursor, *Fields) error
}

// fieldTable is walked in order; entries must stay sorted by bit index
// since every decode routine reads from where the previous one stopped.
var fieldTable = [...]fieldEntry{
	{FieldTSFT, 4, (*cursor).tsft},
	{FieldFlags, 2, (*cursor).flags},
	{FieldRate, 1, (*cursor).rate},
	{FieldChannel, 4, (*cursor).channel},
	{FieldFHSS, 2, (*cursor).fhss},
	{FieldDBMAntennaSignal, 1, (*cursor).dbmAntennaSignal},
	{FieldDBMAntennaNoise, 1, (*cursor).dbmAntennaNoise},
	{FieldLockQuality, 2, (*cursor).lockQuality},
	{FieldTxAttenuation, 2, (*cursor).txAttenuation},
	{FieldDBTxAttenuation, 2, (*cursor).dbTxAttenuation},
	{FieldDBMTxPower, 1, (*cursor).dbmTxPower},
	{FieldAntenna, 1, (*cursor).antenna},
	{FieldDBAntennaSignal, 1, (*cursor).dbAntennaSignal},
	{FieldDBAntennaNoise, 1, (*cursor).dbAntennaNoise},
	{FieldRxFlags, 2, (*cursor).rxFlags},
	{FieldMCS, 3, (*cursor).mcs},
	{FieldAMPDUStatus, 8, (*cursor).ampduStatus},
	{FieldVHT, 9, (*cursor).vht},
}

// KnownFields returns the decodable fields in decode order.
func KnownFields() []FieldSpec {
	out := make([]FieldSpec, 0, len(fieldTable))
	for _, e := range fieldTable {
		out = append(out, FieldSpec{ID: e.id, Name: e.id.String(), Width: e.width})
	}
	return out
}

// MCS keeps the three raw bytes of the MCS field. Bandwidth, guard
// interval, HT format and FEC bits in Known/Flags are not interpreted.
type MCS struct {
	Known uint8
	Flags uint8
	Rate  uint8
}

// Fields holds one value per known field. Values of absent fields are left
// at their zero value, except TSFT and Channel.Number which default to -1;
// consult Present to tell the two apart.
type Fields struct {
	TSFT  int64
	Flags uint8
	// Rate in kbps.
	Rate             uint32
	Channel          Channel
	FHSS             uint8
	DBMAntennaSignal int8
	DBMAntennaNoise  int8
	LockQuality      uint16
	TxAttenuation    uint16
	DBTxAttenuation  uint16
	DBMTxPower       int8
	// Antenna index, the first antenna is 0.
	Antenna         uint8
	DBAntennaSignal uint8
	DBAntennaNoise  uint8
	RxFlags         uint16
	PLCPCRCError    bool
	MCS             MCS
	AMPDUStatus     [8]byte
	VHT             [9]byte

	// Payload is the RadioTap payload following the fixed header.
	Payload []byte
	// Trailing is the part of Payload left after the last decoded field.
	Trailing []byte
	// Consumed is the final cursor offset into Payload.
	Consumed int
}

func newFields() Fields {
	return Fields{
		TSFT:    -1,
		Channel: Channel{Number: -1},
	}
}
