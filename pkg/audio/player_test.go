package audio

import (
	"encoding/binary"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSynthesizeLength(t *testing.T) {
	pcm := Synthesize([]Tone{{Frequency: 440, Duration: 100 * time.Millisecond}}, 8000)
	assert.Len(t, pcm, 800*2)

	pcm = Synthesize(ArrivalChime, SampleRate)
	assert.Len(t, pcm, (int(0.18*SampleRate)+int(0.32*SampleRate))*2)
}

func TestSynthesizeFadesAndStaysInRange(t *testing.T) {
	pcm := Synthesize([]Tone{{Frequency: 440, Duration: 50 * time.Millisecond}}, 8000)
	require.NotEmpty(t, pcm)

	first := int16(binary.LittleEndian.Uint16(pcm[0:2]))
	last := int16(binary.LittleEndian.Uint16(pcm[len(pcm)-2:]))
	assert.Zero(t, first)
	assert.Zero(t, last)

	peak := 0
	for i := 0; i < len(pcm); i += 2 {
		v := int(int16(binary.LittleEndian.Uint16(pcm[i : i+2])))
		if v < 0 {
			v = -v
		}
		if v > peak {
			peak = v
		}
	}
	assert.Greater(t, peak, 1000)
	assert.LessOrEqual(t, peak, 10000)
}

func TestStopNilPlayer(t *testing.T) {
	var p *Player
	assert.NotPanics(t, p.Stop)
}
