package img
import (
	"bytes"
	"image"
	"image/png"

	"github.com/MohamedMouloudj/Stealthy-Communicator/stegano/frame"
	"github.com/MohamedMouloudj/Stealthy-Communicator/stegano/pixel"
)

// ToPixelBuffer flattens a decoded image into the RGBA byte layout the
// codec works on. NRGBA keeps channel bytes exactly as stored, so LSBs
// survive the round trip even when the image carries transparency.
func ToPixelBuffer( src image.Image ) *pixel.PixelBuffer {
	bounds := src.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	nrgba := image.NewNRGBA( image.Rect( 0, 0, width, height ) )
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			nrgba.Set( x, y, src.At( bounds.Min.X + x, bounds.Min.Y + y ) )
		}
	}
	return &pixel.PixelBuffer{ Width: width, Height: height, Pix: nrgba.Pix }
}

// FromPixelBuffer turns a codec buffer back into an image ready for a
// lossless encoder.
func FromPixelBuffer( buf *pixel.PixelBuffer ) *image.NRGBA {
	out := image.NewNRGBA( image.Rect( 0, 0, buf.Width, buf.Height ) )
	copy( out.Pix, buf.Pix )
	return out
}

func HideInPng( decoy []byte, message string ) ([]byte, error) {
	src, _, err := image.Decode( bytes.NewReader( decoy ) )
	if err != nil {
		return nil, err
	}

	encoded, err := pixel.Embed( ToPixelBuffer( src ), frame.Frame( message ) )
	if err != nil {
		return nil, err
	}

	buf := new(bytes.Buffer)
	if err = png.Encode( buf, FromPixelBuffer( encoded ) ); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func RevealFromPng( decoy []byte, scanLimit int ) (string, bool, error) {
	src, _, err := image.Decode( bytes.NewReader( decoy ) )
	if err != nil {
		return "", false, err
	}
	return pixel.ExtractWithLimit( ToPixelBuffer( src ), scanLimit )
}
