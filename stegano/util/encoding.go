package util
import (
	"fmt"
	"errors"
	"strings"
	"unicode/utf8"
)

/*
 * transform data from/to textual binary form.
 * every byte is written as exactly 8 digits, most significant bit first.
 */

var (
	ErrParse = errors.New("malformed binary digits")
	ErrUtf8 = errors.New("invalid utf-8")
)

const (
	BitsPerByte = 8
)

func ToBin( x byte ) string {
	result := make( []byte, BitsPerByte )
	for i := BitsPerByte - 1; i >= 0; i-- {
		result[i] = '0' + x % 2
		x /= 2
	}
	return string(result)
}

func FromBin( x string ) (byte, error) {
	if len(x) != BitsPerByte {
		return 0, fmt.Errorf("%w: group %q has %d digits, want %d", ErrParse, x, len(x), BitsPerByte)
	}
	result := byte(0)
	for i := 0; i < BitsPerByte; i++ {
		if x[i] != '0' && x[i] != '1' {
			return 0, fmt.Errorf("%w: %q is not a binary digit", ErrParse, x[i])
		}
		result *= 2
		result += x[i] - '0'
	}
	return result, nil
}

func BytesToBits( data []byte ) string {
	var sb strings.Builder
	sb.Grow( len(data) * BitsPerByte )
	for _, b := range data {
		sb.WriteString( ToBin( b ) )
	}
	return sb.String()
}

// StringToBits encodes the utf-8 bytes of s.
func StringToBits( s string ) string {
	return BytesToBits( []byte(s) )
}

func BitsToBytes( bits string ) ([]byte, error) {
	if len(bits) % BitsPerByte != 0 {
		return nil, fmt.Errorf("%w: %d digits is not a multiple of %d", ErrParse, len(bits), BitsPerByte)
	}
	result := make( []byte, 0, len(bits) / BitsPerByte )
	for i := 0; i < len(bits); i += BitsPerByte {
		b, err := FromBin( bits[i:i+BitsPerByte] )
		if err != nil {
			return nil, err
		}
		result = append( result, b )
	}
	return result, nil
}

func BitsToString( bits string ) (string, error) {
	data, err := BitsToBytes( bits )
	if err != nil {
		return "", err
	}
	if utf8.Valid( data ) == false {
		return "", fmt.Errorf("%w: %d decoded bytes", ErrUtf8, len(data))
	}
	return string(data), nil
}
