package media
import (
	"os"
	"bytes"
	"encoding/base64"

	id3 "github.com/bogem/id3v2/v2"

	"github.com/MohamedMouloudj/Stealthy-Communicator/util"
)

// mp3 gets a direct id3v2 path so tagging works even without the
// external transcoder installed.
func HideInMP3( label string, decoy []byte, message string ) ([]byte, error) {
	tempfile, err := util.CreateTempfile( decoy, "decoy-*.mp3" )
	if err != nil {
		return nil, err
	}
	defer util.ShredFile( tempfile )

	tag, err := id3.Open( tempfile, id3.Options{ Parse: true } )
	if err != nil {
		return nil, err
	}
	defer tag.Close()

	// just add a comment
	comment := id3.CommentFrame{
		Encoding: id3.EncodingUTF8,
		Language: "eng",
		Description: label,
		Text: base64.StdEncoding.EncodeToString( []byte(message) ),
	}
	tag.AddCommentFrame( comment )

	if err = tag.Save(); err != nil {
		return nil, err
	}
	return os.ReadFile( tempfile )
}

func RevealFromMP3( label string, decoy []byte ) (string, bool, error) {
	tag, err := id3.ParseReader( bytes.NewReader( decoy ), id3.Options{ Parse: true } )
	if err != nil {
		return "", false, err
	}

	comments := tag.GetFrames( tag.CommonID("Comments") )
	for _, f := range comments {
		comment, ok := f.(id3.CommentFrame)
		if !ok || comment.Description != label {
			continue
		}
		msg, err := base64.StdEncoding.DecodeString( comment.Text )
		if err != nil {
			continue
		}
		return string(msg), true, nil
	}
	return "", false, nil
}
