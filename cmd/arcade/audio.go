// audio.go - oto-backed playback of the Machine's sound events

package main

import (
	"math"

	"github.com/ebitengine/oto/v3"

	"github.com/gocade/invaders"
)

const sampleRate = 44100

// soundLine is one of the board's nine independent playback lines.
// Play restarts the waveform from phase 0; Stop silences it in place,
// matching the original discrete sound board's behavior where a
// release simply cuts the gate rather than fading out.
type soundLine struct {
	freq    float64
	looping bool
	playing bool
	phase   float64
}

// newSoundLines mirrors the arcade board's fixed assignment of a tone
// to each Sound: the UFO hum loops for as long as its gate is held,
// the rest are one-shot bursts that stop on their own after half a
// waveform period (or earlier, if a port write silences them).
func newSoundLines() [9]*soundLine {
	return [9]*soundLine{
		invaders.SoundUFO:        {freq: 180, looping: true},
		invaders.SoundShoot:      {freq: 900},
		invaders.SoundPlayerDie:  {freq: 110},
		invaders.SoundInvaderDie: {freq: 440},
		invaders.SoundBomp1:      {freq: 220},
		invaders.SoundBomp2:      {freq: 247},
		invaders.SoundBomp3:      {freq: 277},
		invaders.SoundBomp4:      {freq: 311},
		invaders.SoundUFOExplode: {freq: 60},
	}
}

type audioPlayer struct {
	ctx    *oto.Context
	player *oto.Player
	lines  [9]*soundLine
}

func newAudioPlayer() (*audioPlayer, error) {
	op := &oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 1,
		Format:       oto.FormatFloat32LE,
		BufferSize:   0,
	}
	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return nil, err
	}
	<-ready

	ap := &audioPlayer{ctx: ctx, lines: newSoundLines()}
	ap.player = ctx.NewPlayer(ap)
	ap.player.Play()
	return ap, nil
}

func (ap *audioPlayer) play(s invaders.Sound) {
	line := ap.lines[s]
	line.phase = 0
	line.playing = true
}

func (ap *audioPlayer) stop(s invaders.Sound) {
	ap.lines[s].playing = false
}

// Read mixes every active line into a flat float32 PCM stream for oto.
func (ap *audioPlayer) Read(p []byte) (int, error) {
	samples := len(p) / 4
	for i := 0; i < samples; i++ {
		var mix float32
		for _, line := range ap.lines {
			if !line.playing {
				continue
			}
			mix += float32(math.Sin(line.phase) * 0.15)
			line.phase += 2 * math.Pi * line.freq / sampleRate
			if line.phase > 2*math.Pi {
				line.phase -= 2 * math.Pi
			}
			if !line.looping {
				line.playing = line.phase < math.Pi // a short one-shot burst
			}
		}
		putFloat32LE(p[i*4:], mix)
	}
	return len(p), nil
}

func (ap *audioPlayer) Close() error {
	if ap.player != nil {
		return ap.player.Close()
	}
	return nil
}

func putFloat32LE(b []byte, f float32) {
	bits := math.Float32bits(f)
	b[0] = byte(bits)
	b[1] = byte(bits >> 8)
	b[2] = byte(bits >> 16)
	b[3] = byte(bits >> 24)
}
