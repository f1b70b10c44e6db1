package audio

import (
	"bytes"
	"encoding/binary"
	"math"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"

	"github.com/borgmon/event-tracker/pkg/logger"
)

// Chime output format
const (
	SampleRate   = 44100
	ChannelCount = 1
)

// Global audio context singleton
var (
	globalAudioCtx     *oto.Context
	globalAudioCtxOnce sync.Once
)

// Player plays one chime and can be stopped early
type Player struct {
	stopChan chan struct{}
	player   *oto.Player
	stopped  bool
	mu       sync.Mutex
}

// Tone describes a single note of the chime
type Tone struct {
	Frequency float64
	Duration  time.Duration
}

// ArrivalChime is the two-note tone played when an event arrives
var ArrivalChime = []Tone{
	{Frequency: 880, Duration: 180 * time.Millisecond},
	{Frequency: 1318.5, Duration: 320 * time.Millisecond},
}

// initAudioContext initializes the global audio context once
func initAudioContext() bool {
	globalAudioCtxOnce.Do(func() {
		op := &oto.NewContextOptions{
			SampleRate:   SampleRate,
			ChannelCount: ChannelCount,
			Format:       oto.FormatSignedInt16LE,
		}

		ctx, readyChan, err := oto.NewContext(op)
		if err != nil {
			logger.For("audio").Error().Err(err).Msg("failed to initialize audio context")
			return
		}

		// Wait for the hardware audio devices to be ready
		<-readyChan

		globalAudioCtx = ctx
		logger.For("audio").Debug().Msg("audio context initialized")
	})
	return globalAudioCtx != nil
}

// PlayChime plays the given tones once in the background
func PlayChime(tones []Tone) *Player {
	if !initAudioContext() {
		return nil
	}

	p := &Player{
		stopChan: make(chan struct{}),
	}
	pcm := Synthesize(tones, SampleRate)

	p.mu.Lock()
	p.player = globalAudioCtx.NewPlayer(bytes.NewReader(pcm))
	p.player.Play()
	p.mu.Unlock()

	go p.wait()
	return p
}

func (p *Player) wait() {
	for p.player.IsPlaying() {
		select {
		case <-p.stopChan:
			p.player.Pause()
			p.closePlayer()
			return
		case <-time.After(10 * time.Millisecond):
		}
	}
	p.closePlayer()
}

func (p *Player) closePlayer() {
	if err := p.player.Close(); err != nil {
		logger.For("audio").Error().Err(err).Msg("failed to close audio player")
	}
}

// Stop stops the playback
func (p *Player) Stop() {
	if p == nil {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.stopped {
		p.stopped = true
		close(p.stopChan)
	}
}

// Synthesize renders tones as mono signed 16-bit little-endian PCM.
// Each note fades in and out to avoid clicks.
func Synthesize(tones []Tone, sampleRate int) []byte {
	var buf bytes.Buffer
	const amplitude = 0.3 * math.MaxInt16

	for _, tone := range tones {
		n := int(tone.Duration.Seconds() * float64(sampleRate))
		fade := sampleRate / 100
		if fade*2 > n {
			fade = n / 2
		}

		for i := 0; i < n; i++ {
			envelope := 1.0
			switch {
			case fade > 0 && i < fade:
				envelope = float64(i) / float64(fade)
			case fade > 0 && i >= n-fade:
				envelope = float64(n-1-i) / float64(fade)
			}
			v := math.Sin(2*math.Pi*tone.Frequency*float64(i)/float64(sampleRate)) * amplitude * envelope
			binary.Write(&buf, binary.LittleEndian, int16(v))
		}
	}

	return buf.Bytes()
}
