package pixel
import (
	"errors"
)

/*
 * the pixel codec: hides a bit sequence in the least significant bit of
 * the color channels of an RGBA buffer and recovers it later. it only
 * works on decoded pixels; file containers are someone else's problem.
 */
const (
	// bytes per pixel in a decoded buffer
	PixelStride = 4
	// usable color channels per pixel; the alpha channel is never
	// written to and never read from
	ChannelsPerPixel = 3
)

// DefaultScanLimit bounds how many pixels extraction visits before
// giving up, so decode latency stays flat on very large images.
const DefaultScanLimit = 100000

var (
	// ErrCapacityExceeded means the framed message needs more bits than
	// the image has color channels to hold it.
	ErrCapacityExceeded = errors.New("pixel: message does not fit into image capacity")

	// ErrInvalidBuffer means the buffer length does not match its stated
	// width * height * 4 layout.
	ErrInvalidBuffer = errors.New("pixel: buffer length does not match dimensions")
)

// PixelBuffer is a decoded image: row-major pixels, 4 bytes per pixel
// in r, g, b, a order. The codec never resizes it.
type PixelBuffer struct {
	Width	int
	Height	int
	Pix	[]byte
}

func(p *PixelBuffer) Validate() error {
	if p == nil || p.Width < 0 || p.Height < 0 {
		return ErrInvalidBuffer
	}
	if len(p.Pix) != p.Width * p.Height * PixelStride {
		return ErrInvalidBuffer
	}
	return nil
}

func(p *PixelBuffer) Clone() *PixelBuffer {
	pix := make( []byte, len(p.Pix) )
	copy( pix, p.Pix )
	return &PixelBuffer{ p.Width, p.Height, pix }
}

// Capacity returns how many payload bits an image of the given size can
// carry: one bit in each of the three color channels of every pixel.
func Capacity( width, height int ) int {
	return width * height * ChannelsPerPixel
}

// Fits reports whether a bit sequence fits into an image of the given
// size. This is the single gate before any mutation happens; oversized
// messages are rejected, never truncated.
func Fits( bits []uint8, width, height int ) bool {
	return len(bits) <= Capacity( width, height )
}
