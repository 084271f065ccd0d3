package util
import (
	"os"
	"errors"
	"os/exec"
	"crypto/rand"
	"golang.org/x/text/unicode/norm"
)

const (
	ShredingCount = 10
)

// FixUnicode collapses user text to its NFC form so the same visible
// message always produces the same byte stream.
func FixUnicode( in string ) string {
	return norm.NFC.String( in )
}

// ShredFile overwrites the file content with random bytes a few times
// and removes it; decoys and payloads should not linger in temporary
// storage.
func ShredFile( filename string ) error {

	fileInfo, err := os.Stat( filename )
	if err != nil {
		return err
	}

	buf := make( []byte, fileInfo.Size() )

	for i := 0; i < ShredingCount; i++ {

		// just generate random bytes and write them as file content.
		// todo: optimize this function for working with large files.
		if _, err := rand.Read( buf ); err != nil {
			return err
		}
		if err = os.WriteFile( filename, buf, 0660 ); err != nil {
			return err
		}
	}
	return os.Remove( filename )
}

// CreateTempfile writes data into a fresh temporary file. The pattern
// should carry the media extension (e.g. "decoy-*.mp4") because the
// transcoder picks its container from it.
func CreateTempfile( data []byte, pattern string ) (string, error) {
	f, err := os.CreateTemp( "", pattern )
	if err != nil {
		return "", err
	}
	defer f.Close()
	if data != nil {
		if _, err := f.Write(data); err != nil {
			return "", err
		}
	}
	return f.Name(), nil
}

func PathToProgram( prog string ) (string, error) {
	path, err := exec.LookPath( prog )
	if errors.Is(err, exec.ErrDot) {
		err = nil
	}
	return path, err
}
