package pixel
import (
	"github.com/MohamedMouloudj/Stealthy-Communicator/stegano/frame"
)

// the smallest accumulation that could possibly contain the start
// marker; no point decoding anything shorter.
const minFrameBits = len( frame.StartMarker ) * 8

// Extract reads channel LSBs in the exact order Embed writes them and
// returns the first message found between the framing markers. A buffer
// with nothing embedded in it yields found == false; that is a normal
// outcome, not an error.
func Extract( buf *PixelBuffer ) (string, bool, error) {
	return ExtractWithLimit( buf, DefaultScanLimit )
}

// ExtractWithLimit is Extract with an explicit ceiling on how many
// pixels are visited before giving up. A non-positive limit falls back
// to DefaultScanLimit.
func ExtractWithLimit( buf *PixelBuffer, maxPixels int ) (string, bool, error) {
	if err := buf.Validate(); err != nil {
		return "", false, err
	}
	if maxPixels <= 0 {
		maxPixels = DefaultScanLimit
	}

	pixels := buf.Width * buf.Height
	if pixels > maxPixels {
		pixels = maxPixels
	}

	bits := make( []uint8, 0, pixels * ChannelsPerPixel )
	for i := 0; i < pixels; i++ {
		offset := i * PixelStride
		for ch := 0; ch < ChannelsPerPixel; ch++ {
			bits = append( bits, buf.Pix[ offset + ch ] & 1 )
		}
		// markers can only line up on a byte boundary, so a decode
		// attempt is only worth it when one has just been completed.
		if n := len(bits); n % 8 == 0 && n >= minFrameBits {
			if msg, ok := frame.Unframe( frame.BitsToText( bits ) ); ok {
				return msg, true, nil
			}
		}
	}
	// the scan may stop between byte boundaries; one last attempt over
	// everything gathered.
	if len(bits) >= minFrameBits {
		if msg, ok := frame.Unframe( frame.BitsToText( bits ) ); ok {
			return msg, true, nil
		}
	}
	return "", false, nil
}
