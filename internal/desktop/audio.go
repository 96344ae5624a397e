package desktop

import (
	"bytes"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2/audio"

	"snakeplus/internal/game"
)

const (
	sampleRate = 44100
	noteSec    = 0.25
)

type tone struct {
	freq  float64
	dur   float64
	gain  float64
	decay float64
}

var soundTones = map[game.Sound]tone{
	game.SoundFood:     {freq: 880, dur: 0.1, gain: 4000, decay: 3},
	game.SoundPowerUp:  {freq: 1320, dur: 0.2, gain: 4000, decay: 3},
	game.SoundEnemy:    {freq: 330, dur: 0.3, gain: 4500, decay: 2},
	game.SoundGameOver: {freq: 220, dur: 0.6, gain: 5000, decay: 1.5},
}

// C major arpeggio, looped as background music.
var melody = []float64{261.63, 329.63, 392.00, 523.25}

// Audio plays game sounds through ebiten's audio context. Music speed is
// changed by switching between loops rendered at each rate.
type Audio struct {
	mu     sync.Mutex
	ctx    *audio.Context
	sounds map[game.Sound]*audio.Player
	loops  map[float64]*audio.Player
	music  *audio.Player
	rate   float64
}

func NewAudio() (*Audio, error) {
	ctx := audio.CurrentContext()
	if ctx == nil {
		ctx = audio.NewContext(sampleRate)
	}
	a := &Audio{
		ctx:    ctx,
		sounds: make(map[game.Sound]*audio.Player, len(soundTones)),
		loops:  make(map[float64]*audio.Player),
	}
	for snd, t := range soundTones {
		a.sounds[snd] = ctx.NewPlayerFromBytes(synthTone(t))
	}
	music, err := a.loop(1)
	if err != nil {
		return nil, err
	}
	a.music = music
	a.rate = 1
	return a, nil
}

func (a *Audio) PlaySound(snd game.Sound) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	p, ok := a.sounds[snd]
	if !ok {
		return fmt.Errorf("no %s sound loaded", snd)
	}
	if err := p.Rewind(); err != nil {
		return fmt.Errorf("rewind %s: %w", snd, err)
	}
	p.Play()
	return nil
}

func (a *Audio) StartMusic() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.music.Play()
	return nil
}

func (a *Audio) StopMusic() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.music.Pause()
	if err := a.music.Rewind(); err != nil {
		return fmt.Errorf("rewind music: %w", err)
	}
	return nil
}

// SetMusicRate swaps to the loop rendered at rate, keeping the same place in
// the melody.
func (a *Audio) SetMusicRate(rate float64) error {
	if rate <= 0 {
		return fmt.Errorf("invalid playback rate %v", rate)
	}
	a.mu.Lock()
	defer a.mu.Unlock()

	if rate == a.rate {
		return nil
	}
	next, err := a.loop(rate)
	if err != nil {
		return err
	}
	playing := a.music.IsPlaying()
	offset := rescale(a.music.Position(), a.rate, rate)
	a.music.Pause()
	if err := next.SetPosition(offset); err != nil {
		return fmt.Errorf("seek music: %w", err)
	}
	if playing {
		next.Play()
	}
	a.music = next
	a.rate = rate
	return nil
}

// Close releases every player.
func (a *Audio) Close() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	for _, p := range a.sounds {
		p.Close()
	}
	for _, p := range a.loops {
		p.Close()
	}
	return nil
}

func (a *Audio) loop(rate float64) (*audio.Player, error) {
	if p, ok := a.loops[rate]; ok {
		return p, nil
	}
	buf := synthMelody(rate)
	p, err := a.ctx.NewPlayer(audio.NewInfiniteLoop(bytes.NewReader(buf), int64(len(buf))))
	if err != nil {
		return nil, fmt.Errorf("music loop at %.2fx: %w", rate, err)
	}
	a.loops[rate] = p
	return p, nil
}

// rescale maps a position in a loop played at from to the same point in the
// loop played at to.
func rescale(pos time.Duration, from, to float64) time.Duration {
	loopLen := time.Duration(noteSec * float64(len(melody)) / to * float64(time.Second))
	return time.Duration(float64(pos)*from/to) % loopLen
}

// synthTone renders a decaying sine as 16-bit stereo PCM.
func synthTone(t tone) []byte {
	n := int(sampleRate * t.dur)
	buf := make([]byte, 0, n*4)
	for i := range n {
		sec := float64(i) / sampleRate
		v := int16(math.Sin(2*math.Pi*t.freq*sec) * t.gain * math.Exp(-t.decay*sec))
		buf = appendSample(buf, v)
	}
	return buf
}

// synthMelody renders the background arpeggio as if played back at rate:
// notes are shorter and higher above 1, longer and lower below.
func synthMelody(rate float64) []byte {
	var buf []byte
	for _, freq := range melody {
		buf = append(buf, synthTone(tone{freq: freq * rate, dur: noteSec / rate, gain: 2000, decay: 2 * rate})...)
	}
	return buf
}

func appendSample(buf []byte, v int16) []byte {
	for range 2 {
		buf = append(buf, byte(v), byte(v>>8))
	}
	return buf
}
