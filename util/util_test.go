package util
import (
	"os"
	"errors"
	"strings"
	"testing"
	"path/filepath"
)

func TestLogger( t *testing.T ) {
	filename := filepath.Join( t.TempDir(), "test.log" )
	logger := NewLogger( &LoggerInfo{
		Filename: filename,
		IsColored: false,
		SaveTime: false,
		Mode: Error | Warning,
	})

	logger.LogError( errors.New("boom") )
	logger.LogWarning( "careful" )
	logger.LogInfo( "filtered out" )

	data, err := os.ReadFile( filename )
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	content := string(data)
	if !strings.Contains( content, "[ERROR] boom" ) {
		t.Errorf("Error line missing from log: %q", content)
	}
	if !strings.Contains( content, "[WARNING] careful" ) {
		t.Errorf("Warning line missing from log: %q", content)
	}
	if strings.Contains( content, "filtered out" ) {
		t.Errorf("Info line written despite the mode mask")
	}
}

func TestCreateAndShredTempfile( t *testing.T ) {
	name, err := CreateTempfile( []byte("short lived"), "stealthy-test-*" )
	if err != nil {
		t.Fatalf("Failed to create temporary file: %v", err)
	}
	data, err := os.ReadFile( name )
	if err != nil || string(data) != "short lived" {
		t.Fatalf("Temporary file content spoiled: %q %v", data, err)
	}

	if err = ShredFile( name ); err != nil {
		t.Fatalf("Failed to shred file: %v", err)
	}
	if _, err = os.Stat( name ); err == nil {
		t.Errorf("Shredded file still exists")
	}
}

func TestFixUnicode( t *testing.T ) {
	// e + combining acute collapses to the precomposed form
	if got := FixUnicode( "é" ); got != "é" {
		t.Errorf("Normalization failed: %q", got)
	}
	if got := FixUnicode( "plain ascii" ); got != "plain ascii" {
		t.Errorf("Ascii changed by normalization: %q", got)
	}
}
