package img
import (
	"bytes"
	"fmt"
)

/*
 * container-level entry points: sniff the image format from its magic
 * bytes, run the pixel codec (or the format-specific path for gif and
 * jpeg) and re-encode into the same container.
 *
 * only png and bmp are lossless pixel containers; they are the ones
 * that go through the LSB codec. jpeg recompression destroys pixel
 * LSBs, so that container gets a DCT-domain path instead. any lossy
 * re-encode of the output by another tool will destroy the payload.
 */
var (
	magicPng = []byte{ 0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a }
	magicGif = []byte{ 0x47, 0x49, 0x46 }
	magicJpeg = []byte{ 0xff, 0xd8, 0xff }
	magicBmp = []byte{ 0x42, 0x4d }
)

// Hide embeds the message into the decoy image and returns the bytes of
// the re-encoded file, same container as the input.
func Hide( decoy []byte, message string ) ([]byte, error) {
	switch {
	case bytes.HasPrefix( decoy, magicGif ):
		return HideInGif( decoy, message )
	case bytes.HasPrefix( decoy, magicPng ):
		return HideInPng( decoy, message )
	case bytes.HasPrefix( decoy, magicJpeg ):
		return HideInJpeg( decoy, message )
	case bytes.HasPrefix( decoy, magicBmp ):
		return HideInBMP( decoy, message )
	}
	return nil, fmt.Errorf("Unsupported image format.")
}

// Reveal recovers a message hidden by Hide. A scanLimit <= 0 falls back
// to the codec default.
func Reveal( decoy []byte, scanLimit int ) (string, bool, error) {
	switch {
	case bytes.HasPrefix( decoy, magicGif ):
		return RevealFromGif( decoy, scanLimit )
	case bytes.HasPrefix( decoy, magicPng ):
		return RevealFromPng( decoy, scanLimit )
	case bytes.HasPrefix( decoy, magicJpeg ):
		return RevealFromJpeg( decoy )
	case bytes.HasPrefix( decoy, magicBmp ):
		return RevealFromBMP( decoy, scanLimit )
	}
	return "", false, fmt.Errorf("Unsupported image format.")
}
