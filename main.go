package main
import (
	"io"
	"os"
	"fmt"
	"image"
	"strings"
	"path/filepath"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	_ "golang.org/x/image/bmp"

	"github.com/MohamedMouloudj/Stealthy-Communicator/config"
	"github.com/MohamedMouloudj/Stealthy-Communicator/stegano"
	"github.com/MohamedMouloudj/Stealthy-Communicator/stegano/frame"
	"github.com/MohamedMouloudj/Stealthy-Communicator/stegano/media"
	"github.com/MohamedMouloudj/Stealthy-Communicator/stegano/pixel"
	"github.com/MohamedMouloudj/Stealthy-Communicator/util"
)

const (
	StealthyFolder = ".stealthy"
	ConfigFilename = "config.yaml"
	LogFilename = "log.log"
)

func main() {

	if len( os.Args ) < 2 || os.Args[1] == "-h" || os.Args[1] == "--help" {
		help()
		return
	}

	home, err := os.UserHomeDir()
	if err != nil {
		fatal("Failed to get home directory:", err)
	}
	folder := filepath.Join( home, StealthyFolder )
	if _, err = os.ReadDir( folder ); err != nil {
		// folder unexistent, creating it.
		if err = os.Mkdir( folder, 0760 ); err != nil {
			fatal("Failed to create application directory in user's home folder:", err)
		}
	}

	configFile := filepath.Join( folder, ConfigFilename )
	// defaults are only written on the first run; a present but broken
	// config is an error, not something to overwrite.
	conf, err := config.LoadOrCreate( configFile, config.DefaultConfig( filepath.Join( folder, LogFilename ) ) )
	if err != nil {
		fatal("Failed to load configuration:", err)
	}

	logger := util.NewLogger( &conf.Logger )
	if conf.Stegano.FFmpegPath != "" {
		media.SetToolPath( conf.Stegano.FFmpegPath )
	}
	opts := stegano.Options{
		ScanLimit: conf.Stegano.ScanLimit,
		Label: conf.Stegano.MetadataLabel,
	}

	switch os.Args[1] {
	case "hide":
		err = hide( os.Args[2:], opts, logger )
	case "reveal":
		err = reveal( os.Args[2:], opts, logger )
	case "capacity":
		err = capacity( os.Args[2:] )
	case "genconf":
		// rewrite the defaults over whatever is there
		err = config.SaveConfig( configFile, config.DefaultConfig( filepath.Join( folder, LogFilename ) ) )
	default:
		help()
		return
	}
	if err != nil {
		logger.LogError( err )
		fatal( err )
	}
}

func hide( args []string, opts stegano.Options, logger *util.Logger ) error {
	if len(args) < 2 {
		return fmt.Errorf("Usage: hide <decoy> <output> [message]")
	}
	decoyFile, outFile := args[0], args[1]

	var message string
	if len(args) > 2 {
		message = strings.Join( args[2:], " " )
	} else {
		// no message on the command line, take stdin
		data, err := io.ReadAll( os.Stdin )
		if err != nil {
			return fmt.Errorf("Failed to read message from stdin: %s", err.Error())
		}
		message = strings.TrimRight( string(data), "\n" )
	}

	carrier, err := stegano.DetectCarrier( decoyFile )
	if err != nil {
		return err
	}
	decoy, err := os.ReadFile( decoyFile )
	if err != nil {
		return fmt.Errorf("Failed to read decoy: %s", err.Error())
	}

	encoded, err := stegano.Conceal( carrier, decoy, message, opts )
	if err != nil {
		return fmt.Errorf("Failed to conceal message: %s", err.Error())
	}
	if err = os.WriteFile( outFile, encoded, 0660 ); err != nil {
		return fmt.Errorf("Failed to write output: %s", err.Error())
	}
	logger.LogInfo( fmt.Sprintf("hid %d characters in %s", len(message), outFile) )
	return nil
}

func reveal( args []string, opts stegano.Options, logger *util.Logger ) error {
	if len(args) < 1 {
		return fmt.Errorf("Usage: reveal <file>")
	}

	carrier, err := stegano.DetectCarrier( args[0] )
	if err != nil {
		return err
	}
	data, err := os.ReadFile( args[0] )
	if err != nil {
		return fmt.Errorf("Failed to read file: %s", err.Error())
	}

	message, found, err := stegano.Reveal( carrier, data, opts )
	if err != nil {
		return fmt.Errorf("Failed to reveal message: %s", err.Error())
	}
	if !found {
		fmt.Println("No hidden message found.")
		return nil
	}
	logger.LogInfo( fmt.Sprintf("revealed %d characters from %s", len(message), args[0]) )
	fmt.Println( message )
	return nil
}

func capacity( args []string ) error {
	if len(args) < 1 {
		return fmt.Errorf("Usage: capacity <image>")
	}
	f, err := os.Open( args[0] )
	if err != nil {
		return fmt.Errorf("Failed to open image: %s", err.Error())
	}
	defer f.Close()

	cfg, format, err := image.DecodeConfig( f )
	if err != nil {
		return fmt.Errorf("Failed to decode image: %s", err.Error())
	}

	bits := pixel.Capacity( cfg.Width, cfg.Height )
	// the markers eat into the capacity before the payload does
	markers := len( frame.StartMarker ) + len( frame.EndMarker )
	maxChars := bits / 8 - markers
	if maxChars < 0 {
		maxChars = 0
	}

	fmt.Printf("%s: %dx%d %s\n", args[0], cfg.Width, cfg.Height, format)
	fmt.Printf("capacity: %d bits, up to %d message characters\n", bits, maxChars)
	if format == "jpeg" {
		fmt.Println("note: jpeg uses the DCT path; actual capacity depends on the image content")
	}
	return nil
}

func fatal( args ...any ) {
	fmt.Println( args... )
	os.Exit(-1)
}

func help() {
	line := `Usage: ./stealthy <command> [arguments]

The following commands are supported:
	hide <decoy> <output> [message]	hide a message in a copy of the decoy
					(message is read from stdin when omitted)
	reveal <file>			recover a hidden message
	capacity <image>		show how much a decoy image can carry
	genconf				write the default configuration

Supported decoys: png, bmp, gif, jpeg images; mp3, flac, wav, ogg, m4a
audio; mp4, mkv, avi, webm, mov video. Audio and video carry the message
in container metadata and need ffmpeg on the path (except mp3 and flac).
Only lossless image containers survive further re-encoding.
`
	fmt.Printf("%s", line)
}
