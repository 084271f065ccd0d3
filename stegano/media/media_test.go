package media
import (
	"os"
	"bytes"
	"encoding/base64"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/mewkiz/flac/meta"
)

const testLabel = "stealthy-test"

func TestMP3( t *testing.T ) {
	// id3v2 does not care whether the audio frames are real
	decoy := append( []byte{ 0xff, 0xfb, 0x90, 0x00 }, bytes.Repeat( []byte{ 0xaa }, 512 )... )

	enc, err := HideInMP3( testLabel, decoy, "in plain hearing" )
	if err != nil {
		t.Fatalf("Failed to hide in mp3: %v", err)
	}
	got, ok, err := RevealFromMP3( testLabel, enc )
	if err != nil {
		t.Fatalf("Failed to reveal from mp3: %v", err)
	}
	if !ok || got != "in plain hearing" {
		t.Errorf("Tagging spoiled the message: got %q (found = %v)", got, ok)
	}

	// another label must not match
	if _, ok, err = RevealFromMP3( "other-label", enc ); err != nil {
		t.Fatalf("Failed to reveal: %v", err)
	} else if ok {
		t.Errorf("Message revealed under the wrong label")
	}
}

func TestPickComment( t *testing.T ) {
	vc := &meta.VorbisComment{
		Vendor: "stealthy",
		Tags: [][2]string{
			{ "TITLE", testLabel },
			{ "COMMENT", base64.StdEncoding.EncodeToString( []byte("tagged") ) },
		},
	}
	if msg, ok := pickComment( vc, testLabel ); !ok || msg != "tagged" {
		t.Errorf("Failed to pick comment: %q (found = %v)", msg, ok)
	}
	if _, ok := pickComment( vc, "someone else" ); ok {
		t.Errorf("Comment picked under the wrong label")
	}

	broken := &meta.VorbisComment{
		Tags: [][2]string{
			{ "TITLE", testLabel },
			{ "COMMENT", "not base64 at all!!!" },
		},
	}
	if _, ok := pickComment( broken, testLabel ); ok {
		t.Errorf("Undecodable comment accepted")
	}
}

func TestFlac( t *testing.T ) {
	tr, err := Tool()
	if err != nil {
		t.Skipf("transcoder not available: %v", err)
	}

	// synthesize a short lossless decoy; no binary fixtures in the repo
	decoyFile := filepath.Join( t.TempDir(), "decoy.flac" )
	out, synthErr := exec.Command( tr.FFmpeg, "-y", "-f", "lavfi",
		"-i", "sine=frequency=440:duration=1", decoyFile ).CombinedOutput()
	if synthErr != nil {
		t.Skipf("failed to synthesize decoy: %v (%s)", synthErr, out)
	}
	decoy, err := os.ReadFile( decoyFile )
	if err != nil {
		t.Fatalf("Failed to read decoy: %v", err)
	}

	enc, err := HideInFlac( testLabel, decoy, "lossless ride" )
	if err != nil {
		t.Fatalf("Failed to hide in flac: %v", err)
	}
	got, ok, err := RevealFromFlac( testLabel, enc )
	if err != nil {
		t.Fatalf("Failed to reveal from flac: %v", err)
	}
	if !ok || got != "lossless ride" {
		t.Errorf("Tagging spoiled the message: got %q (found = %v)", got, ok)
	}

	if _, ok, err = RevealFromFlac( "other-label", enc ); err != nil {
		t.Fatalf("Failed to reveal: %v", err)
	} else if ok {
		t.Errorf("Message revealed under the wrong label")
	}
}

func TestRevealFromFlacGarbage( t *testing.T ) {
	if _, _, err := RevealFromFlac( testLabel, []byte("not a flac stream") ); err == nil {
		t.Errorf("Garbage accepted as flac")
	}
}

func TestTranscoder( t *testing.T ) {
	tr, err := Tool()
	if err != nil {
		t.Skipf("transcoder not available: %v", err)
	}

	// synthesize a short decoy with the tool itself
	out, err := exec.Command( tr.FFmpeg, "-y", "-f", "lavfi",
		"-i", "sine=frequency=440:duration=1",
		"-f", "wav", "-" ).Output()
	if err != nil {
		t.Skipf("failed to synthesize decoy: %v", err)
	}

	enc, err := tr.Conceal( out, ".wav", testLabel, "off the record" )
	if err != nil {
		t.Fatalf("Failed to conceal: %v", err)
	}
	got, ok, err := tr.Reveal( enc, ".wav", testLabel )
	if err != nil {
		t.Fatalf("Failed to reveal: %v", err)
	}
	if !ok || got != "off the record" {
		t.Errorf("Tagging spoiled the message: got %q (found = %v)", got, ok)
	}
}
