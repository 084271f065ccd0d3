package frame
import (
	"strings"
	"testing"
)

func TestFrameUnframe( t *testing.T ) {
	messages := []string{
		"",
		"a",
		"Hello world!",
		strings.Repeat( "secret ", 512 ),
		"with <angle> brackets < > <<",
	}

	for _, msg := range messages {
		recovered, ok := Unframe( FrameText( msg ) )
		if !ok {
			t.Errorf("Failed to unframe message %q", msg)
		} else if recovered != msg {
			t.Errorf("Framing spoiled the message: %q != %q", msg, recovered)
		}
	}
}

func TestUnframeNotFound( t *testing.T ) {
	inputs := []string{
		"",
		"no markers at all",
		"<<START>>never closed",
		"never opened<<END>>",
		"<<END>>wrong way around<<START>>",
		"<START>almost<END>",
	}
	for _, in := range inputs {
		if msg, ok := Unframe( in ); ok {
			t.Errorf("Unexpected match in %q: got %q", in, msg)
		}
	}
}

func TestUnframeFirstMatchWins( t *testing.T ) {
	text := FrameText("first") + FrameText("second")
	msg, ok := Unframe( text )
	if !ok || msg != "first" {
		t.Errorf("Expected first message, got %q (found = %v)", msg, ok)
	}
}

func TestFrameBits( t *testing.T ) {
	bits := Frame( "A" )
	wantLen := ( len(StartMarker) + 1 + len(EndMarker) ) * 8
	if len(bits) != wantLen {
		t.Fatalf("Invalid bit count: %d != %d", len(bits), wantLen)
	}
	// the stream starts with '<' = 0x3c, msb first
	first := []uint8{ 0, 0, 1, 1, 1, 1, 0, 0 }
	for i, b := range first {
		if bits[i] != b {
			t.Fatalf("Invalid bit %d: %d != %d", i, bits[i], b)
		}
	}
}

func TestBitsRoundTrip( t *testing.T ) {
	texts := []string{ "", "x", "some longer chunk of text 0123456789" }
	for _, text := range texts {
		if got := BitsToText( TextToBits( text ) ); got != text {
			t.Errorf("Bit conversion spoiled the text: %q != %q", text, got)
		}
	}
}

func TestTextToBitsTruncatesHighBits( t *testing.T ) {
	// U+0141 has the same low byte as 'A' (0x41)
	a := TextToBits( "A" )
	l := TextToBits( "Ł" )
	if len(a) != len(l) {
		t.Fatalf("Expected one byte per character, got %d and %d bits", len(a), len(l))
	}
	for i := range a {
		if a[i] != l[i] {
			t.Fatalf("Expected identical low-byte encodings, differ at bit %d", i)
		}
	}
}
