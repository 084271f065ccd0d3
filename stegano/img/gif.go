package img
import (
	"bytes"
	"image/gif"

	"github.com/MohamedMouloudj/Stealthy-Communicator/stegano/frame"
	"github.com/MohamedMouloudj/Stealthy-Communicator/stegano/pixel"
)

// gif stores palette indices, not channels, so the bits go into the
// index bytes themselves, across frames. decoys with palettes shorter
// than 256 colors may show a one-step color shift where a flipped index
// lands on a neighbouring palette entry.
func HideInGif( decoy []byte, message string ) ([]byte, error) {
	g, err := gif.DecodeAll( bytes.NewReader( decoy ) )
	if err != nil {
		return nil, err
	}

	bits := frame.Frame( message )
	bitIdx := 0
	for _, fr := range g.Image {
		for i := range fr.Pix {
			if bitIdx >= len(bits) {
				break
			}
			fr.Pix[i] = ( fr.Pix[i] & 0xfe ) | bits[ bitIdx ]
			bitIdx++
		}
		if bitIdx >= len(bits) {
			break
		}
	}
	if bitIdx < len(bits) {
		return nil, pixel.ErrCapacityExceeded
	}

	buf := new(bytes.Buffer)
	if err = gif.EncodeAll( buf, g ); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func RevealFromGif( decoy []byte, scanLimit int ) (string, bool, error) {
	g, err := gif.DecodeAll( bytes.NewReader( decoy ) )
	if err != nil {
		return "", false, err
	}
	if scanLimit <= 0 {
		scanLimit = pixel.DefaultScanLimit
	}

	// one bit per index byte; the same ceiling bounds the scan here too
	bits := []uint8{}
	for _, fr := range g.Image {
		for _, p := range fr.Pix {
			if len(bits) >= scanLimit {
				break
			}
			bits = append( bits, p & 1 )
		}
		if len(bits) >= scanLimit {
			break
		}
	}
	msg, ok := frame.Unframe( frame.BitsToText( bits ) )
	return msg, ok, nil
}
