package img
import (
	"fmt"
	"strings"
)

// Policy decides what happens when byte 255 has to carry a zero bit,
// the only case where forcing even parity upwards would overflow.
type Policy uint8

const (
	// 255 becomes 254: parity is right and the change stays within 1
	PolicyStepDown Policy = iota
	// 255 is left as is, the bit is lost and reads back as '1'
	PolicySaturate
	// encoding fails with ErrUnusableByte
	PolicyReject
)

func (p Policy) String() string {
	switch p {
	case PolicySaturate:
		return "saturate"
	case PolicyReject:
		return "reject"
	default:
		return "step-down"
	}
}

func ParsePolicy( s string ) (Policy, error) {
	switch strings.ToLower( s ) {
	case "", "step-down", "stepdown":
		return PolicyStepDown, nil
	case "saturate":
		return PolicySaturate, nil
	case "reject":
		return PolicyReject, nil
	}
	return PolicyStepDown, fmt.Errorf("unknown overflow policy %q (want step-down, saturate or reject)", s)
}

func EncodeBit( value byte, bit byte, policy Policy ) (byte, error) {
	switch bit {
	case '0':
		// make even
		if value % 2 == 0 {
			return value, nil
		}
		if value == 255 {
			switch policy {
			case PolicySaturate:
				return value, nil
			case PolicyReject:
				return value, ErrUnusableByte
			default:
				return value - 1, nil
			}
		}
		return value + 1, nil
	case '1':
		// make odd
		if value % 2 == 1 {
			return value, nil
		}
		if value == 255 {
			// unreachable, 255 is odd
			return value - 1, nil
		}
		return value + 1, nil
	}
	return value, fmt.Errorf("%w: %q is not a binary digit", ErrParse, bit)
}

func DecodeBit( value byte ) byte {
	if value % 2 == 0 {
		return '0'
	}
	return '1'
}

// DecodeBits reads one parity bit from every byte of data.
func DecodeBits( data []byte ) string {
	var sb strings.Builder
	sb.Grow( len(data) )
	for _, b := range data {
		sb.WriteByte( DecodeBit( b ) )
	}
	return sb.String()
}
