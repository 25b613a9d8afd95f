package assets

import (
	"math"
	"time"
)

const SampleRate = 44100

// Blip renders a square wave at freq Hz with a linear fade-out as 16-bit
// little-endian stereo PCM, ready for audio.Context.NewPlayerFromBytes.
func Blip(freq float64, d time.Duration) []byte {
	frames := int(d.Seconds() * SampleRate)
	buf := make([]byte, frames*4)

	for i := 0; i < frames; i++ {
		env := 1 - float64(i)/float64(frames)
		phase := int(float64(i) * freq * 2 / SampleRate)
		val := 0.25 * env
		if phase%2 == 1 {
			val = -val
		}

		v := int16(math.Round(val * 32767))
		buf[4*i] = byte(v)
		buf[4*i+1] = byte(v >> 8)
		buf[4*i+2] = byte(v)
		buf[4*i+3] = byte(v >> 8)
	}
	return buf
}
