package img
import (
	"bytes"
	"image/jpeg"

	"lukechampine.com/jsteg"

	"github.com/MohamedMouloudj/Stealthy-Communicator/stegano/frame"
	"github.com/MohamedMouloudj/Stealthy-Communicator/stegano/pixel"
)

// pixel LSBs do not survive jpeg recompression, so this container hides
// the framed text in the DCT coefficients instead. the payload is the
// same marker-framed byte stream as everywhere else.
func HideInJpeg( decoy []byte, message string ) ([]byte, error) {
	src, err := jpeg.Decode( bytes.NewReader( decoy ) )
	if err != nil {
		return nil, err
	}

	payload := []byte( frame.FrameText( message ) )
	if jsteg.Capacity( src, nil ) < len(payload) {
		return nil, pixel.ErrCapacityExceeded
	}

	buf := new(bytes.Buffer)
	if err = jsteg.Hide( buf, src, payload, nil ); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func RevealFromJpeg( decoy []byte ) (string, bool, error) {
	hidden, err := jsteg.Reveal( bytes.NewReader( decoy ) )
	if err != nil {
		return "", false, err
	}
	// jsteg returns every hidden byte it can read; the markers pick the
	// payload out of the trailing garbage.
	msg, ok := frame.Unframe( string(hidden) )
	return msg, ok, nil
}
