package capture

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/gopacket/gopacket"
	"github.com/gopacket/gopacket/layers"
	"github.com/gopacket/gopacket/pcapgo"
)

// pcapng section header block type; the same bytes in either byte order.
const ngSectionMagic uint32 = 0x0a0d0d0a

type Format string

const (
	FormatPcap   Format = "pcap"
	FormatPcapNG Format = "pcapng"
)

var ErrUnsupportedLinkType = errors.New("capture: unsupported link type")

type packetReader interface {
	ReadPacketData() ([]byte, gopacket.CaptureInfo, error)
	LinkType() layers.LinkType
}

// Record is one captured packet. Data starts with the RadioTap header.
type Record struct {
	Index int
	Info  gopacket.CaptureInfo
	Data  []byte
}

// Source iterates the records of one capture whose link type is 802.11
// with RadioTap headers.
type Source struct {
	r      packetReader
	format Format
	next   int
	closer io.Closer
}

// Open detects pcap or pcapng from the leading magic and validates the
// link type.
func Open(r io.Reader) (*Source, error) {
	br := bufio.NewReader(r)
	magic, err := br.Peek(4)
	if err != nil {
		return nil, fmt.Errorf("capture: read magic: %w", err)
	}

	var (
		pr     packetReader
		format Format
	)
	if binary.BigEndian.Uint32(magic) == ngSectionMagic {
		ng, err := pcapgo.NewNgReader(br, pcapgo.DefaultNgReaderOptions)
		if err != nil {
			return nil, fmt.Errorf("capture: open pcapng: %w", err)
		}
		pr, format = ng, FormatPcapNG
	} else {
		pc, err := pcapgo.NewReader(br)
		if err != nil {
			return nil, fmt.Errorf("capture: open pcap: %w", err)
		}
		pr, format = pc, FormatPcap
	}

	if lt := pr.LinkType(); lt != layers.LinkTypeIEEE80211Radio {
		return nil, fmt.Errorf("%w: %s (%d)", ErrUnsupportedLinkType, lt, lt)
	}
	return &Source{r: pr, format: format}, nil
}

// OpenFile opens path with Open; Close releases the file.
func OpenFile(path string) (*Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("capture: %w", err)
	}
	src, err := Open(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	src.closer = f
	return src, nil
}

func (s *Source) Format() Format {
	return s.format
}

func (s *Source) LinkType() layers.LinkType {
	return s.r.LinkType()
}

// Next returns the next record, or io.EOF after the last one.
func (s *Source) Next() (Record, error) {
	data, ci, err := s.r.ReadPacketData()
	if err != nil {
		return Record{}, err
	}
	rec := Record{Index: s.next, Info: ci, Data: data}
	s.next++
	return rec, nil
}

func (s *Source) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}
