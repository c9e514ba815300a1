package img
import (
	"fmt"
	"bytes"
	"strings"
)

const (
	LineFeed = 0x0a
)

type LocatorMode uint8

const (
	LocateAuto LocatorMode = iota
	LocateLines
	LocatePNM
)

func (m LocatorMode) String() string {
	switch m {
	case LocateLines:
		return "lines"
	case LocatePNM:
		return "pnm"
	default:
		return "auto"
	}
}

func ParseLocatorMode( s string ) (LocatorMode, error) {
	switch strings.ToLower( s ) {
	case "", "auto":
		return LocateAuto, nil
	case "lines":
		return LocateLines, nil
	case "pnm":
		return LocatePNM, nil
	}
	return LocateAuto, fmt.Errorf("unknown locator %q (want auto, lines or pnm)", s)
}

// Image is a raw file split into its text header lines and the pixel payload.
// Header lines end with and include a line feed, the only exception being the
// last line of a netpbm header closed by other whitespace.
type Image struct {
	Header	[][]byte
	Payload	[]byte
}

// Bytes reassembles the file.
func (i *Image) Bytes() []byte {
	return i.WithPayload( i.Payload )
}

// WithPayload reassembles the file around a replacement payload.
func (i *Image) WithPayload( payload []byte ) []byte {
	size := len(payload)
	for _, line := range i.Header {
		size += len(line)
	}
	result := make( []byte, 0, size )
	for _, line := range i.Header {
		result = append( result, line... )
	}
	return append( result, payload... )
}

func Locate( data []byte, mode LocatorMode ) (*Image, error) {
	switch mode {
	case LocateLines:
		return SplitLines( data ), nil
	case LocatePNM:
		return ScanPNM( data )
	}
	if IsPNM( data ) {
		return ScanPNM( data )
	}
	return SplitLines( data ), nil
}

/*
 * SplitLines treats every run of bytes ending in a line feed as a header line
 * and whatever follows the last line feed as the payload. Pixel data that
 * contains 0x0a is cut into extra "lines", so prefer ScanPNM for real images.
 */
func SplitLines( data []byte ) *Image {
	img := &Image{ Header: [][]byte{} }
	rest := data
	for {
		idx := bytes.IndexByte( rest, LineFeed )
		if idx < 0 {
			break
		}
		img.Header = append( img.Header, rest[:idx+1] )
		rest = rest[idx+1:]
	}
	img.Payload = rest
	return img
}

func IsPNM( data []byte ) bool {
	return len(data) >= 2 && data[0] == 'P' && data[1] >= '1' && data[1] <= '7'
}

func isSpace( b byte ) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r' || b == '\v' || b == '\f'
}

/*
 * ScanPNM reads exactly the text fields of a netpbm header: magic, width,
 * height and, except for bitmaps, maxval. Comments may appear between the
 * fields. The header ends after the single whitespace byte that follows the
 * last field, everything after it is payload whatever bytes it contains.
 */
func ScanPNM( data []byte ) (*Image, error) {
	if IsPNM( data ) == false {
		return nil, fmt.Errorf("%w: no netpbm magic number", ErrFormat)
	}
	fields := 3
	if data[1] == '1' || data[1] == '4' {
		fields = 2
	}
	// P7 keeps its header in keyword lines up to ENDHDR
	if data[1] == '7' {
		idx := bytes.Index( data, []byte("ENDHDR\n") )
		if idx < 0 {
			return nil, fmt.Errorf("%w: P7 header without ENDHDR", ErrFormat)
		}
		return splitAt( data, idx + len("ENDHDR\n") ), nil
	}

	pos := 2
	for i := 0; i < fields; i++ {
		// skip whitespace and comments
		for pos < len(data) {
			if isSpace( data[pos] ) {
				pos++
				continue
			}
			if data[pos] == '#' {
				end := bytes.IndexByte( data[pos:], LineFeed )
				if end < 0 {
					return nil, fmt.Errorf("%w: unterminated comment", ErrFormat)
				}
				pos += end + 1
				continue
			}
			break
		}
		start := pos
		for pos < len(data) && data[pos] >= '0' && data[pos] <= '9' {
			pos++
		}
		if start == pos {
			return nil, fmt.Errorf("%w: header field %d is not a number", ErrFormat, i + 1)
		}
	}
	if pos >= len(data) || isSpace( data[pos] ) == false {
		return nil, fmt.Errorf("%w: no whitespace after the last header field", ErrFormat)
	}
	return splitAt( data, pos + 1 ), nil
}

func splitAt( data []byte, boundary int ) *Image {
	head := SplitLines( data[:boundary] )
	// a header that does not end in a line feed (e.g. "P6 3 2 255 ") still
	// belongs to the header, not to the payload
	if len(head.Payload) > 0 {
		head.Header = append( head.Header, head.Payload )
	}
	return &Image{
		Header: head.Header,
		Payload: data[boundary:],
	}
}
