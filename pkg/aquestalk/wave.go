package aquestalk

import (
	"encoding/binary"
	"errors"
	"fmt"
	"time"
)

// ErrBadWave reports WAV data whose RIFF structure cannot be read.
var ErrBadWave = errors.New("aquestalk: malformed WAV data")

// WaveInfo summarises the PCM stream in a WAV file.
type WaveInfo struct {
	Channels      int
	SampleRate    int
	BitsPerSample int
	DataBytes     int
}

// Duration is the playback length of the data chunk.
func (w WaveInfo) Duration() time.Duration {
	bytesPerSec := w.SampleRate * w.Channels * w.BitsPerSample / 8
	if bytesPerSec == 0 {
		return 0
	}
	return time.Duration(w.DataBytes) * time.Second / time.Duration(bytesPerSec)
}

// ParseWaveHeader walks the RIFF chunks of wav and reports the format and
// the size of the data chunk.
func ParseWaveHeader(wav []byte) (WaveInfo, error) {
	var info WaveInfo
	if len(wav) < 12 || string(wav[0:4]) != "RIFF" || string(wav[8:12]) != "WAVE" {
		return info, fmt.Errorf("%w: missing RIFF/WAVE header", ErrBadWave)
	}

	var haveFmt, haveData bool
	for off := 12; off+8 <= len(wav); {
		id := string(wav[off : off+4])
		size := int(binary.LittleEndian.Uint32(wav[off+4 : off+8]))
		body := off + 8
		if size < 0 || body+size > len(wav) {
			if id == "data" {
				// Some writers leave the data size unpatched; take the rest.
				size = len(wav) - body
			} else {
				return info, fmt.Errorf("%w: chunk %q overruns buffer", ErrBadWave, id)
			}
		}

		switch id {
		case "fmt ":
			if size < 16 {
				return info, fmt.Errorf("%w: fmt chunk too short", ErrBadWave)
			}
			info.Channels = int(binary.LittleEndian.Uint16(wav[body+2:]))
			info.SampleRate = int(binary.LittleEndian.Uint32(wav[body+4:]))
			info.BitsPerSample = int(binary.LittleEndian.Uint16(wav[body+14:]))
			haveFmt = true
		case "data":
			info.DataBytes = size
			haveData = true
		}

		off = body + size + size&1
	}

	if !haveFmt || !haveData {
		return info, fmt.Errorf("%w: missing fmt or data chunk", ErrBadWave)
	}
	return info, nil
}
