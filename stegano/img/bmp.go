package img
import (
	"bytes"

	"golang.org/x/image/bmp"

	"github.com/MohamedMouloudj/Stealthy-Communicator/stegano/frame"
	"github.com/MohamedMouloudj/Stealthy-Communicator/stegano/pixel"
)

// basically the same as with png, just another container package.
func HideInBMP( decoy []byte, message string ) ([]byte, error) {
	src, err := bmp.Decode( bytes.NewReader( decoy ) )
	if err != nil {
		return nil, err
	}

	encoded, err := pixel.Embed( ToPixelBuffer( src ), frame.Frame( message ) )
	if err != nil {
		return nil, err
	}

	buf := new(bytes.Buffer)
	if err = bmp.Encode( buf, FromPixelBuffer( encoded ) ); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func RevealFromBMP( decoy []byte, scanLimit int ) (string, bool, error) {
	src, err := bmp.Decode( bytes.NewReader( decoy ) )
	if err != nil {
		return "", false, err
	}
	return pixel.ExtractWithLimit( ToPixelBuffer( src ), scanLimit )
}
