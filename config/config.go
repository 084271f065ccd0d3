package config

import (
	"os"
	"gopkg.in/yaml.v3"

	"github.com/MohamedMouloudj/Stealthy-Communicator/stegano"
	"github.com/MohamedMouloudj/Stealthy-Communicator/stegano/pixel"
	"github.com/MohamedMouloudj/Stealthy-Communicator/util"
)

// knobs of the concealment layer
type SteganoConfig struct {
	// ceiling on pixels visited during image extraction
	ScanLimit	int	`yaml:"scan_limit"`
	// title field written into tagged audio/video
	MetadataLabel	string	`yaml:"metadata_label"`
	// explicit path to the ffmpeg binary; empty means $PATH lookup
	FFmpegPath	string	`yaml:"ffmpeg_path"`
}

type FullConfig struct {
	Stegano	SteganoConfig	`yaml:"stegano"`
	Logger	util.LoggerInfo	`yaml:"logger"`
}

func DefaultConfig( logFilename string ) *FullConfig {
	return &FullConfig{
		Stegano: SteganoConfig{
			ScanLimit: pixel.DefaultScanLimit,
			MetadataLabel: stegano.DefaultLabel,
			FFmpegPath: "",
		},
		Logger: util.LoggerInfo{
			Filename: logFilename,
			IsColored: true,
			SaveTime: true,
			Mode: util.Error | util.Warning,
		},
	}
}

func LoadConfig( filename string ) (*FullConfig, error) {
	data, err := os.ReadFile( filename )
	if err != nil {
		return nil, err
	}
	conf := &FullConfig{}
	if err = yaml.Unmarshal( data, conf ); err != nil {
		return nil, err
	}
	return conf, nil
}

// LoadOrCreate reads the configuration, writing the defaults only when
// the file does not exist yet. A present but unreadable or malformed
// file is surfaced as an error, never overwritten; a hand-edited config
// with a typo should not lose its settings.
func LoadOrCreate( filename string, defaults *FullConfig ) (*FullConfig, error) {
	if _, err := os.Stat( filename ); err != nil {
		if !os.IsNotExist( err ) {
			return nil, err
		}
		if err = SaveConfig( filename, defaults ); err != nil {
			return nil, err
		}
		return defaults, nil
	}
	return LoadConfig( filename )
}

func SaveConfig( filename string, conf *FullConfig ) error {
	data, err := yaml.Marshal( conf )
	if err != nil {
		return err
	}
	return os.WriteFile( filename, data, 0660 )
}
