package frame
import (
	"strings"
)

/*
 * message framing: the payload travels between two fixed sentinels so
 * the extractor can recognise it inside an otherwise meaningless bit
 * stream. the literals are a wire-level contract; an independent
 * implementation has to produce the same bits for the same message.
 */
const (
	StartMarker = "<<START>>"
	EndMarker = "<<END>>"
)

// FrameText wraps the message between the two sentinels.
func FrameText( message string ) string {
	return StartMarker + message + EndMarker
}

// Frame wraps the message between the sentinels and flattens the result
// into bits, one byte per character. Only the low 8 bits of each code
// point are kept, so characters outside latin-1 will not survive a
// round trip; callers wanting full unicode have to escape the message
// themselves before handing it over.
func Frame( message string ) []uint8 {
	return TextToBits( FrameText( message ) )
}

// Unframe looks for the first start sentinel and, after it, the first
// end sentinel. Exact literal matches only, no fuzzy recovery of a
// damaged marker.
func Unframe( text string ) (string, bool) {
	start := strings.Index( text, StartMarker )
	if start < 0 {
		return "", false
	}
	rest := text[ start + len(StartMarker) : ]
	end := strings.Index( rest, EndMarker )
	if end < 0 {
		return "", false
	}
	return rest[ :end ], true
}

// TextToBits expands every character into 8 bits, most significant bit
// first, keeping only the low byte of the code point.
func TextToBits( text string ) []uint8 {
	bits := make( []uint8, 0, len(text) * 8 )
	for _, c := range text {
		b := byte( c )
		for i := 7; i >= 0; i-- {
			bits = append( bits, ( b >> uint(i) ) & 1 )
		}
	}
	return bits
}

// BitsToText is the inverse of TextToBits; trailing bits that do not
// fill a whole byte are ignored.
func BitsToText( bits []uint8 ) string {
	var sb strings.Builder
	for i := 0; i + 8 <= len(bits); i += 8 {
		b := byte(0)
		for j := 0; j < 8; j++ {
			b = ( b << 1 ) | bits[ i + j ]
		}
		sb.WriteByte( b )
	}
	return sb.String()
}
