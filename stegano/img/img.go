package img
import (
	"os"
	"fmt"

	stegutil "ppmsteg/stegano/util"
	"ppmsteg/util"
)

type Logger interface {
	LogInfo( info string )
	LogWarning( warning string )
}

type nopLogger struct{}

func (nopLogger) LogInfo( string ) {}
func (nopLogger) LogWarning( string ) {}

// Codec ties the locator, the parity policy and file handling together.
// The zero value locates automatically and steps 255 down.
type Codec struct {
	Policy		Policy
	Locator		LocatorMode
	Normalize	bool	// NFC-normalize messages before hiding them
	Log		Logger
}

func (c *Codec) logger() Logger {
	if c.Log == nil {
		return nopLogger{}
	}
	return c.Log
}

func (c *Codec) Hide( data []byte, msg string, bodyOffset int ) ([]byte, *Report, error) {
	img, err := Locate( data, c.Locator )
	if err != nil {
		return nil, nil, err
	}
	if c.Normalize {
		msg = stegutil.FixUnicode( msg )
	}
	out, report, err := HideInPPM( img, msg, bodyOffset, c.Policy )
	if err != nil {
		return nil, nil, err
	}
	if len(report.Saturated) > 0 {
		c.logger().LogWarning( fmt.Sprintf("%d saturated byte(s) will not decode correctly, first at payload offset %d",
			len(report.Saturated), report.Saturated[0]) )
	}
	return out, report, nil
}

func (c *Codec) Reveal( data []byte ) (string, error) {
	img, err := Locate( data, c.Locator )
	if err != nil {
		return "", err
	}
	return RevealFromPPM( img )
}

// EncodeFile hides msg in src and writes the result to dst. The message body
// starts depth bytes after the header. dst is only created once the whole
// image is ready and is replaced in one step.
func (c *Codec) EncodeFile( src, dst, msg string, depth int ) (*Report, error) {
	bodyOffset, err := BodyOffset( depth )
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile( src )
	if err != nil {
		return nil, ioError( "read", src, err )
	}
	c.logger().LogInfo( fmt.Sprintf("hiding %d bytes in %s at body offset %d", len(msg), src, bodyOffset) )
	out, report, err := c.Hide( data, msg, bodyOffset )
	if err != nil {
		return nil, err
	}
	perm := os.FileMode(0644)
	if info, err := os.Stat( src ); err == nil {
		perm = info.Mode().Perm()
	}
	if err = util.WriteFileAtomic( dst, out, perm ); err != nil {
		return nil, ioError( "write", dst, err )
	}
	c.logger().LogInfo( fmt.Sprintf("wrote %s: %d payload bytes, %d changed, digest %016x -> %016x",
		dst, report.PayloadSize, report.Changed, report.SourceDigest, report.OutputDigest) )
	return report, nil
}

func (c *Codec) DecodeFile( path string ) (string, error) {
	data, err := os.ReadFile( path )
	if err != nil {
		return "", ioError( "read", path, err )
	}
	c.logger().LogInfo( fmt.Sprintf("revealing message from %s", path) )
	return c.Reveal( data )
}

// CapacityOf reports how many message bytes path can hold at depth.
func (c *Codec) CapacityOf( path string, depth int ) (int, error) {
	bodyOffset, err := BodyOffset( depth )
	if err != nil {
		return 0, err
	}
	data, err := os.ReadFile( path )
	if err != nil {
		return 0, ioError( "read", path, err )
	}
	img, err := Locate( data, c.Locator )
	if err != nil {
		return 0, err
	}
	return Capacity( len(img.Payload), bodyOffset ), nil
}
