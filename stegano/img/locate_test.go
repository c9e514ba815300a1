package img
import (
	"bytes"
	"errors"
	"testing"
)

func TestSplitLines( t *testing.T ) {
	data := []byte("P6\n# made by hand\n2 1\n255\n\x01\x02\x03\x04\x05\x06")
	img := SplitLines( data )
	want := []string{ "P6\n", "# made by hand\n", "2 1\n", "255\n" }
	if len(img.Header) != len(want) {
		t.Fatalf("Got %d header lines, want %d", len(img.Header), len(want))
	}
	for i, line := range want {
		if string(img.Header[i]) != line {
			t.Errorf("Header line %d = %q, want %q", i, img.Header[i], line)
		}
	}
	if bytes.Equal( img.Payload, []byte{1, 2, 3, 4, 5, 6} ) == false {
		t.Errorf("Unexpected payload %v", img.Payload)
	}
	if bytes.Equal( img.Bytes(), data ) == false {
		t.Errorf("Reassembled file differs from the source")
	}
}

func TestSplitLinesNoLineFeed( t *testing.T ) {
	data := []byte{1, 2, 3}
	img := SplitLines( data )
	if len(img.Header) != 0 {
		t.Errorf("Got %d header lines, want none", len(img.Header))
	}
	if bytes.Equal( img.Payload, data ) == false {
		t.Errorf("Whole file should be the payload, got %v", img.Payload)
	}
}

func TestSplitLinesPayloadWithLineFeed( t *testing.T ) {
	// the known limitation: a 0x0a in the pixels ends a "line"
	img := SplitLines( []byte("P6\n1 1\n255\n\x01\x0a\x02") )
	if len(img.Header) != 4 || bytes.Equal( img.Payload, []byte{2} ) == false {
		t.Errorf("Unexpected split: %d lines, payload %v", len(img.Header), img.Payload)
	}
}

func TestScanPNM( t *testing.T ) {
	tests := []struct{
		data	string
		header	int
		payload	string
	}{
		{ "P6\n2 1\n255\n\x0a\x0a\x0a\x0a\x0a\x0a", 3, "\x0a\x0a\x0a\x0a\x0a\x0a" },
		{ "P6\n# comment\n2 1\n# another\n255\nabcdef", 5, "abcdef" },
		{ "P6 2 1 255 abcdef", 1, "abcdef" },
		{ "P5\n3\n2\n255\n\x00\x01\x02\x03\x04\x05", 4, "\x00\x01\x02\x03\x04\x05" },
		{ "P4\n8 2\n\xff\x0a", 2, "\xff\x0a" },
		{ "P7\nWIDTH 1\nHEIGHT 1\nDEPTH 3\nMAXVAL 255\nTUPLTYPE RGB\nENDHDR\n\x0a\x0a\x0a", 7, "\x0a\x0a\x0a" },
	}
	for _, test := range tests {
		img, err := ScanPNM( []byte(test.data) )
		if err != nil {
			t.Errorf("ScanPNM(%q) failed: %s", test.data, err.Error())
			continue
		}
		if len(img.Header) != test.header {
			t.Errorf("ScanPNM(%q): %d header lines, want %d", test.data, len(img.Header), test.header)
		}
		if string(img.Payload) != test.payload {
			t.Errorf("ScanPNM(%q): payload %q, want %q", test.data, img.Payload, test.payload)
		}
		if string(img.Bytes()) != test.data {
			t.Errorf("ScanPNM(%q): reassembled file differs", test.data)
		}
	}
}

func TestScanPNMMalformed( t *testing.T ) {
	tests := []string{
		"",
		"GIF89a",
		"P6\nwide 1\n255\n",
		"P6\n2 1\n255",
		"P6\n# never ends",
		"P7\nWIDTH 1\n",
	}
	for _, data := range tests {
		if _, err := ScanPNM( []byte(data) ); errors.Is( err, ErrFormat ) == false {
			t.Errorf("ScanPNM(%q) error = %v, want ErrFormat", data, err)
		}
	}
}

func TestLocate( t *testing.T ) {
	pnm := []byte("P6\n1 1\n255\n\x0a\x0a\x0a")
	img, err := Locate( pnm, LocateAuto )
	if err != nil || len(img.Payload) != 3 {
		t.Errorf("Auto locator on a netpbm file: %v, %v", img, err)
	}
	img, err = Locate( pnm, LocateLines )
	if err != nil || len(img.Payload) != 0 {
		t.Errorf("Line locator should lose the payload here: %v, %v", img, err)
	}
	raw := []byte("header\n\x01\x02")
	img, err = Locate( raw, LocateAuto )
	if err != nil || len(img.Header) != 1 || len(img.Payload) != 2 {
		t.Errorf("Auto locator on a non-netpbm file: %v, %v", img, err)
	}
	if _, err = Locate( raw, LocatePNM ); errors.Is( err, ErrFormat ) == false {
		t.Errorf("Forced netpbm locator on a non-netpbm file: %v", err)
	}
}

func TestParseLocatorMode( t *testing.T ) {
	for _, mode := range []LocatorMode{ LocateAuto, LocateLines, LocatePNM } {
		parsed, err := ParseLocatorMode( mode.String() )
		if err != nil || parsed != mode {
			t.Errorf("ParseLocatorMode(%s) = %v, %v", mode, parsed, err)
		}
	}
	if _, err := ParseLocatorMode( "bmp" ); err == nil {
		t.Errorf("Unknown locator was accepted")
	}
}
