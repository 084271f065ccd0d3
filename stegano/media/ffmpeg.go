package media
import (
	"os"
	"fmt"
	"bytes"
	"os/exec"
	"strings"
	"sync"
	"path/filepath"
	"encoding/json"
	"encoding/base64"

	"github.com/MohamedMouloudj/Stealthy-Communicator/util"
)

/*
 * audio and video "concealment" is plain metadata tagging: the message
 * rides in the comment field of the container, written and read by an
 * external transcoder. this has nothing to do with the pixel codec and
 * shares no code with it.
 */

// Transcoder is the process-wide handle to the external tool. It is
// resolved once on first use, reused for the whole session and never
// torn down.
type Transcoder struct {
	FFmpeg	string
	FFprobe	string
}

var (
	tool		*Transcoder
	toolErr		error
	toolOnce	sync.Once
	toolPath	string
)

// SetToolPath overrides where the ffmpeg binary is looked up. It only
// has an effect before the first Tool call.
func SetToolPath( path string ) {
	toolPath = path
}

// Tool returns the singleton transcoder handle, resolving the binaries
// on the first call.
func Tool() (*Transcoder, error) {
	toolOnce.Do( func() {
		ffmpeg := toolPath
		if ffmpeg == "" {
			ffmpeg, toolErr = util.PathToProgram( "ffmpeg" )
			if toolErr != nil {
				toolErr = fmt.Errorf("Failed to locate ffmpeg: %s", toolErr.Error())
				return
			}
		}
		// ffprobe ships next to ffmpeg
		ffprobe := filepath.Join( filepath.Dir( ffmpeg ), "ffprobe" )
		if _, err := os.Stat( ffprobe ); err != nil {
			ffprobe, err = util.PathToProgram( "ffprobe" )
			if err != nil {
				toolErr = fmt.Errorf("Failed to locate ffprobe: %s", err.Error())
				return
			}
		}
		tool = &Transcoder{ ffmpeg, ffprobe }
	})
	return tool, toolErr
}

// Tag rewrites the container with the two metadata fields set, streams
// copied untouched. ext must carry the dot (".mp4").
func(t *Transcoder) Tag( in []byte, ext, title, comment string ) ([]byte, error) {
	src, err := util.CreateTempfile( in, "decoy-*" + ext )
	if err != nil {
		return nil, err
	}
	defer util.ShredFile( src )

	dst := strings.TrimSuffix( src, ext ) + "-tagged" + ext
	defer util.ShredFile( dst )

	stderr := new(bytes.Buffer)
	cmd := exec.Command( t.FFmpeg, "-y", "-i", src,
		"-metadata", "title=" + title,
		"-metadata", "comment=" + comment,
		"-codec", "copy", dst )
	cmd.Stderr = stderr
	if err = cmd.Run(); err != nil {
		return nil, fmt.Errorf("Failed to tag media: %s", firstLine( stderr.String() ))
	}
	return os.ReadFile( dst )
}

type probeOutput struct {
	Format struct {
		Tags map[string]string `json:"tags"`
	} `json:"format"`
}

// ReadTags returns the title and comment fields of the container.
func(t *Transcoder) ReadTags( in []byte, ext string ) (string, string, error) {
	src, err := util.CreateTempfile( in, "decoy-*" + ext )
	if err != nil {
		return "", "", err
	}
	defer util.ShredFile( src )

	out, err := exec.Command( t.FFprobe, "-v", "quiet",
		"-print_format", "json", "-show_format", src ).Output()
	if err != nil {
		return "", "", fmt.Errorf("Failed to probe media: %s", err.Error())
	}

	var probe probeOutput
	if err = json.Unmarshal( out, &probe ); err != nil {
		return "", "", err
	}
	// tag keys come back in whatever case the muxer chose
	title, comment := "", ""
	for k, v := range probe.Format.Tags {
		switch strings.ToLower( k ) {
		case "title":
			title = v
		case "comment":
			comment = v
		}
	}
	return title, comment, nil
}

// Conceal hides the message in the comment field, base64 encoded so the
// container never chokes on the content; the title carries the label
// the reveal side matches on.
func(t *Transcoder) Conceal( decoy []byte, ext, label, message string ) ([]byte, error) {
	encoded := base64.StdEncoding.EncodeToString( []byte(message) )
	return t.Tag( decoy, ext, label, encoded )
}

// Reveal recovers a message hidden by Conceal. A container without the
// label, or without a decodable comment, yields found == false.
func(t *Transcoder) Reveal( decoy []byte, ext, label string ) (string, bool, error) {
	title, comment, err := t.ReadTags( decoy, ext )
	if err != nil {
		return "", false, err
	}
	if title != label || comment == "" {
		return "", false, nil
	}
	msg, err := base64.StdEncoding.DecodeString( comment )
	if err != nil {
		return "", false, nil
	}
	return string(msg), true, nil
}

func firstLine( s string ) string {
	s = strings.TrimSpace( s )
	if i := strings.IndexByte( s, '\n' ); i >= 0 {
		s = s[:i]
	}
	return s
}
