package encoder

import (
	"errors"
	"fmt"
	"strings"
)

// DefaultFourCC is the codec used when none, or a malformed one, is
// configured.
const DefaultFourCC = "MJPG"

// ErrUnknownCodec is returned for a four-character code with no encoder.
var ErrUnknownCodec = errors.New("encoder: unknown codec")

// codecs maps four-character codes to ffmpeg encoder names.
var codecs = map[string]string{
	"MJPG": "mjpeg",
	"XVID": "mpeg4",
	"MP4V": "mpeg4",
	"H264": "libx264",
	"AVC1": "libx264",
	"X264": "libx264",
	"VP80": "libvpx",
	"VP90": "libvpx-vp9",
	"FFV1": "ffv1",
}

// NormalizeFourCC upper-cases code. Anything that is not exactly four
// characters becomes DefaultFourCC.
func NormalizeFourCC(code string) string {
	code = strings.TrimSpace(code)
	if len(code) != 4 {
		return DefaultFourCC
	}
	return strings.ToUpper(code)
}

// FFmpegCodec returns the ffmpeg encoder for a four-character code.
func FFmpegCodec(fourcc string) (string, error) {
	fourcc = NormalizeFourCC(fourcc)
	if name, ok := codecs[fourcc]; ok {
		return name, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCodec, fourcc)
}

// outputPixFmt returns the pixel format passed to the encoder.
func outputPixFmt(codec string) string {
	switch codec {
	case "mjpeg":
		return "yuvj420p"
	case "ffv1":
		return "bgr0"
	default:
		return "yuv420p"
	}
}
