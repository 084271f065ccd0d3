package media
import (
	"io"
	"bytes"
	"encoding/base64"

	"github.com/mewkiz/flac"
	"github.com/mewkiz/flac/meta"
)

// flac carries the message in a vorbis comment block; again no external
// transcoder required.
func HideInFlac( label string, decoy []byte, message string ) ([]byte, error) {
	stream, err := flac.Parse( bytes.NewReader( decoy ) )
	if err != nil {
		return nil, err
	}
	defer stream.Close()

	vc := &meta.VorbisComment{
		Vendor: "stealthy",
		Tags: [][2]string{
			{ "TITLE", label },
			{ "COMMENT", base64.StdEncoding.EncodeToString( []byte(message) ) },
		},
	}
	blocks := append( stream.Blocks, &meta.Block{
		Header: meta.Header{ Type: meta.TypeVorbisComment },
		Body: vc,
	})

	output := bytes.NewBuffer( []byte{} )
	encoder, err := flac.NewEncoder( output, stream.Info, blocks... )
	if err != nil {
		return nil, err
	}
	defer encoder.Close()

	for {
		frame, err := stream.Next()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, err
		}
		if err = frame.Parse(); err != nil {
			return nil, err
		}
		if err = encoder.WriteFrame( frame ); err != nil {
			return nil, err
		}
	}
	return output.Bytes(), nil
}

func RevealFromFlac( label string, decoy []byte ) (string, bool, error) {
	stream, err := flac.Parse( bytes.NewReader( decoy ) )
	if err != nil {
		return "", false, err
	}
	defer stream.Close()

	for _, block := range stream.Blocks {
		vc, ok := block.Body.(*meta.VorbisComment)
		if !ok {
			continue
		}
		if msg, found := pickComment( vc, label ); found {
			return msg, true, nil
		}
	}
	return "", false, nil
}

// pickComment returns the decoded COMMENT tag of a block whose TITLE
// matches the label.
func pickComment( vc *meta.VorbisComment, label string ) (string, bool) {
	matched := false
	comment := ""
	for _, tag := range vc.Tags {
		switch tag[0] {
		case "TITLE":
			matched = tag[1] == label
		case "COMMENT":
			comment = tag[1]
		}
	}
	if !matched || comment == "" {
		return "", false
	}
	msg, err := base64.StdEncoding.DecodeString( comment )
	if err != nil {
		return "", false
	}
	return string(msg), true
}
