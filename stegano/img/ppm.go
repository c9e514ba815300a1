package img
import (
	"fmt"
	"ppmsteg/stegano/util"
)

/*
 * Hiding text in the parity of pixel bytes. The first HeaderBits bytes of the
 * payload carry the header (message length in bits, body offset), the message
 * itself starts at the body offset. Nothing else in the payload is touched.
 */

// Report describes what an encoding did to the payload.
type Report struct {
	PayloadSize	int
	MessageBits	int
	BodyOffset	int
	Changed		int	// bytes whose value differs from the source
	Saturated	[]int	// positions of 255 left as is under PolicySaturate
	SourceDigest	uint64
	OutputDigest	uint64
}

func embed( dst []byte, at int, bits string, policy Policy, report *Report ) error {
	for i := 0; i < len(bits); i++ {
		pos := at + i
		v, err := EncodeBit( dst[pos], bits[i], policy )
		if err != nil {
			return fmt.Errorf("payload byte %d: %w", pos, err)
		}
		if v == dst[pos] && DecodeBit( v ) != bits[i] {
			report.Saturated = append( report.Saturated, pos )
		}
		dst[pos] = v
	}
	return nil
}

// HideInPPM returns the whole file with msg embedded at bodyOffset.
// The source image is not modified.
func HideInPPM( img *Image, msg string, bodyOffset int, policy Policy ) ([]byte, *Report, error) {
	bits := util.StringToBits( msg )
	header, err := BuildHeader( len(bits), bodyOffset )
	if err != nil {
		return nil, nil, err
	}
	if bodyOffset < HeaderBits {
		return nil, nil, fmt.Errorf("%w: body offset %d overlaps the %d byte header",
			ErrRange, bodyOffset, HeaderBits)
	}
	need := bodyOffset + len(bits)
	if len(img.Payload) < need {
		return nil, nil, fmt.Errorf("%w: %d bytes needed, payload has %d (room for %d message bytes)",
			ErrRange, need, len(img.Payload), Capacity( len(img.Payload), bodyOffset ))
	}

	payload := make( []byte, len(img.Payload) )
	copy( payload, img.Payload )
	report := &Report{
		PayloadSize: len(payload),
		MessageBits: len(bits),
		BodyOffset: bodyOffset,
	}
	if err = embed( payload, 0, header, policy, report ); err != nil {
		return nil, nil, err
	}
	if err = embed( payload, bodyOffset, bits, policy, report ); err != nil {
		return nil, nil, err
	}
	report.Changed = util.CountChanged( img.Payload, payload )
	report.SourceDigest = util.Digest( img.Payload )
	report.OutputDigest = util.Digest( payload )
	return img.WithPayload( payload ), report, nil
}

func ReadHeader( img *Image ) (Header, error) {
	if len(img.Payload) < HeaderBits {
		return Header{}, fmt.Errorf("%w: payload has %d bytes, header needs %d",
			ErrRange, len(img.Payload), HeaderBits)
	}
	return ParseHeader( DecodeBits( img.Payload[:HeaderBits] ) )
}

// RevealFromPPM extracts the message. Images that were never encoded give
// back whatever their parity spells, or an error if that is not valid text.
func RevealFromPPM( img *Image ) (string, error) {
	h, err := ReadHeader( img )
	if err != nil {
		return "", err
	}
	start := int(h.BodyOffset)
	end := start + int(h.MsgBitLength)
	if len(img.Payload) < end {
		return "", fmt.Errorf("%w: header points at bytes [%d,%d), payload has %d",
			ErrRange, start, end, len(img.Payload))
	}
	return util.BitsToString( DecodeBits( img.Payload[start:end] ) )
}
