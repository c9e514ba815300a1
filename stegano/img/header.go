package img
import (
	"fmt"
	"strconv"
)

const (
	FieldBits = 16
	HeaderBits = 2 * FieldBits
	MaxField = 1 << FieldBits - 1
	// the message may not be longer than MaxField bits
	MaxMessageBytes = MaxField / 8
)

// Header is the descriptor stored in the parity of the first HeaderBits
// payload bytes.
type Header struct {
	MsgBitLength	uint16
	BodyOffset	uint16
}

func BuildHeader( msgBitLength, bodyOffset int ) (string, error) {
	if msgBitLength < 0 || msgBitLength > MaxField {
		return "", fmt.Errorf("%w: message is %d bits, at most %d fit in the header",
			ErrOverflow, msgBitLength, MaxField)
	}
	if bodyOffset < 0 || bodyOffset > MaxField {
		return "", fmt.Errorf("%w: body offset %d, at most %d fit in the header",
			ErrOverflow, bodyOffset, MaxField)
	}
	return fmt.Sprintf("%016b%016b", msgBitLength, bodyOffset), nil
}

func (h Header) String() string {
	s, _ := BuildHeader( int(h.MsgBitLength), int(h.BodyOffset) )
	return s
}

func ParseHeader( bits string ) (Header, error) {
	if len(bits) != HeaderBits {
		return Header{}, fmt.Errorf("%w: header has %d digits, want %d", ErrParse, len(bits), HeaderBits)
	}
	length, err := strconv.ParseUint( bits[:FieldBits], 2, FieldBits )
	if err != nil {
		return Header{}, fmt.Errorf("%w: message length field: %v", ErrParse, err)
	}
	offset, err := strconv.ParseUint( bits[FieldBits:], 2, FieldBits )
	if err != nil {
		return Header{}, fmt.Errorf("%w: body offset field: %v", ErrParse, err)
	}
	return Header{
		MsgBitLength: uint16(length),
		BodyOffset: uint16(offset),
	}, nil
}

// BodyOffset converts a user supplied depth, the number of bytes skipped after
// the header, into the absolute payload index where the message starts.
func BodyOffset( depth int ) (int, error) {
	if depth < 0 {
		return 0, fmt.Errorf("%w: negative depth %d", ErrRange, depth)
	}
	offset := HeaderBits + depth
	if offset > MaxField {
		return 0, fmt.Errorf("%w: depth %d gives body offset %d", ErrOverflow, depth, offset)
	}
	return offset, nil
}

// Capacity returns how many message bytes fit in a payload of payloadLen
// bytes when the body starts at bodyOffset.
func Capacity( payloadLen, bodyOffset int ) int {
	if bodyOffset < HeaderBits || payloadLen <= bodyOffset {
		return 0
	}
	n := (payloadLen - bodyOffset) / 8
	if n > MaxMessageBytes {
		n = MaxMessageBytes
	}
	return n
}
