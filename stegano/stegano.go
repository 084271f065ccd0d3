package stegano
import (
	"fmt"
	"strings"
	"path/filepath"

	"github.com/MohamedMouloudj/Stealthy-Communicator/stegano/img"
	"github.com/MohamedMouloudj/Stealthy-Communicator/stegano/media"
	"github.com/MohamedMouloudj/Stealthy-Communicator/util"
)

/*
 * top-level dispatch: the file extension decides which concealment
 * family handles the decoy. images go through the pixel codec, audio
 * and video through metadata tagging.
 */

// DefaultLabel is written into the title field of tagged audio/video so
// the reveal side knows the comment is ours.
const DefaultLabel = "stealthy-communicator"

// Carrier is the closed set of media kinds a message can hide in.
type Carrier interface {
	isCarrier()
}

type ImageCarrier struct {
	Format	string	// png, bmp, gif or jpeg
}

type AudioCarrier struct {
	Ext	string	// with the dot, ".mp3"
}

type VideoCarrier struct {
	Ext	string	// with the dot, ".mp4"
}

func( ImageCarrier ) isCarrier() {}
func( AudioCarrier ) isCarrier() {}
func( VideoCarrier ) isCarrier() {}

// DetectCarrier maps a file name to its carrier kind. Unknown
// extensions are an error, not a fallback.
func DetectCarrier( path string ) (Carrier, error) {
	ext := strings.ToLower( filepath.Ext( path ) )
	switch ext {
	case ".png", ".bmp", ".gif":
		return ImageCarrier{ ext[1:] }, nil
	case ".jpg", ".jpeg":
		return ImageCarrier{ "jpeg" }, nil
	case ".mp3", ".flac", ".wav", ".ogg", ".m4a":
		return AudioCarrier{ ext }, nil
	case ".mp4", ".mkv", ".avi", ".webm", ".mov":
		return VideoCarrier{ ext }, nil
	}
	return nil, fmt.Errorf("Unsupported file extension: %q", ext)
}

// Options tune concealment without touching the wire format.
type Options struct {
	// ScanLimit bounds how many pixels image extraction visits;
	// non-positive means the codec default.
	ScanLimit	int
	// Label is the title field written into tagged audio/video.
	Label		string
}

func( o Options ) label() string {
	if o.Label == "" {
		return DefaultLabel
	}
	return o.Label
}

// Conceal hides the message in the decoy and returns the bytes of the
// resulting file, same container as the input.
func Conceal( carrier Carrier, decoy []byte, message string, opts Options ) ([]byte, error) {
	message = util.FixUnicode( message )

	switch c := carrier.(type) {
	case ImageCarrier:
		return img.Hide( decoy, message )
	case AudioCarrier:
		switch c.Ext {
		case ".mp3":
			return media.HideInMP3( opts.label(), decoy, message )
		case ".flac":
			return media.HideInFlac( opts.label(), decoy, message )
		}
		t, err := media.Tool()
		if err != nil {
			return nil, err
		}
		return t.Conceal( decoy, c.Ext, opts.label(), message )
	case VideoCarrier:
		t, err := media.Tool()
		if err != nil {
			return nil, err
		}
		return t.Conceal( decoy, c.Ext, opts.label(), message )
	}
	return nil, fmt.Errorf("Unknown carrier %T", carrier)
}

// Reveal recovers a message hidden by Conceal. A decoy with nothing in
// it yields found == false.
func Reveal( carrier Carrier, decoy []byte, opts Options ) (string, bool, error) {
	switch c := carrier.(type) {
	case ImageCarrier:
		return img.Reveal( decoy, opts.ScanLimit )
	case AudioCarrier:
		switch c.Ext {
		case ".mp3":
			return media.RevealFromMP3( opts.label(), decoy )
		case ".flac":
			return media.RevealFromFlac( opts.label(), decoy )
		}
		t, err := media.Tool()
		if err != nil {
			return "", false, err
		}
		return t.Reveal( decoy, c.Ext, opts.label() )
	case VideoCarrier:
		t, err := media.Tool()
		if err != nil {
			return "", false, err
		}
		return t.Reveal( decoy, c.Ext, opts.label() )
	}
	return "", false, fmt.Errorf("Unknown carrier %T", carrier)
}
