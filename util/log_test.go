package util
import (
	"os"
	"bytes"
	"errors"
	"strings"
	"testing"
	"path/filepath"
)

func TestLoggerMode( t *testing.T ) {
	buf := new(bytes.Buffer)
	l := NewLoggerTo( &LoggerInfo{ Mode: Error | Info }, buf )
	l.LogError( errors.New("boom") )
	l.LogWarning( "ignored" )
	l.LogInfo( "hello" )

	lines := strings.Split( strings.TrimSpace( buf.String() ), "\n" )
	if len(lines) != 2 {
		t.Fatalf("Expected 2 lines, got %d: %q", len(lines), buf.String())
	}
	if lines[0] != "[ERROR] boom" {
		t.Errorf("Unexpected error line: %q", lines[0])
	}
	if lines[1] != "[INFO] hello" {
		t.Errorf("Unexpected info line: %q", lines[1])
	}
}

func TestLoggerColors( t *testing.T ) {
	buf := new(bytes.Buffer)
	l := NewLoggerTo( &LoggerInfo{ Mode: Warning, IsColored: true }, buf )
	l.LogWarning( "careful" )
	want := YellowColor + "[WARNING]" + ResetColor + " careful\n"
	if buf.String() != want {
		t.Errorf("Got %q, want %q", buf.String(), want)
	}
}

func TestLoggerFile( t *testing.T ) {
	filename := filepath.Join( t.TempDir(), "log.log" )
	l := NewLogger( &LoggerInfo{ Filename: filename, Mode: Info, IsColored: true } )
	l.LogInfo( "first" )
	l.LogInfo( "second" )

	data, err := os.ReadFile( filename )
	if err != nil {
		t.Fatalf("Failed to read log file: %s", err.Error())
	}
	if string(data) != "[INFO] first\n[INFO] second\n" {
		t.Errorf("Unexpected log content: %q", string(data))
	}
}
