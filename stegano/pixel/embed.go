package pixel

// Embed writes the bit sequence into the least significant bit of the
// red, green and blue channels, pixel by pixel in row-major order. It
// operates on a copy; the caller's buffer is never touched. Channels
// past the last consumed bit keep their original values, which keeps
// the tail of the image statistically identical to the unmodified
// original.
func Embed( buf *PixelBuffer, bits []uint8 ) (*PixelBuffer, error) {
	if err := buf.Validate(); err != nil {
		return nil, err
	}
	if !Fits( bits, buf.Width, buf.Height ) {
		return nil, ErrCapacityExceeded
	}

	out := buf.Clone()
	bitIndex := 0
	for offset := 0; offset < len(out.Pix) && bitIndex < len(bits); offset += PixelStride {
		for ch := 0; ch < ChannelsPerPixel && bitIndex < len(bits); ch++ {
			out.Pix[ offset + ch ] = ( out.Pix[ offset + ch ] & 0xfe ) | bits[ bitIndex ]
			bitIndex++
		}
	}
	return out, nil
}
