package img
import (
	"fmt"
	"errors"
	"ppmsteg/stegano/util"
)

/*
 * error kinds of the codec. every operation returns one of these wrapped
 * with context, callers match them with errors.Is.
 */
var (
	ErrIO = errors.New("i/o failure")
	ErrOverflow = errors.New("value exceeds 16-bit range")
	ErrRange = errors.New("payload too short")
	ErrUtf8 = util.ErrUtf8
	ErrParse = util.ErrParse
	ErrFormat = errors.New("malformed image header")
	ErrUnusableByte = fmt.Errorf("%w: byte 255 cannot carry a zero bit", ErrRange)
)

func ioError( op, path string, err error ) error {
	return fmt.Errorf("%w: %s %s: %v", ErrIO, op, path, err)
}
