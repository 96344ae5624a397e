package term

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"snakeplus/internal/game"
)

const sampleRate = beep.SampleRate(44100)

type note struct {
	freq float64
	dur  time.Duration
}

var soundNotes = map[game.Sound][]note{
	game.SoundFood:     {{880, 100 * time.Millisecond}},
	game.SoundPowerUp:  {{990, 80 * time.Millisecond}, {1320, 120 * time.Millisecond}},
	game.SoundEnemy:    {{330, 150 * time.Millisecond}, {247, 150 * time.Millisecond}},
	game.SoundGameOver: {{392, 200 * time.Millisecond}, {294, 200 * time.Millisecond}, {220, 400 * time.Millisecond}},
}

var melody = []note{
	{261.63, 250 * time.Millisecond},
	{329.63, 250 * time.Millisecond},
	{392.00, 250 * time.Millisecond},
	{523.25, 250 * time.Millisecond},
}

// Audio plays sounds on the system speaker through beep. Music runs through
// a resampler so its playback rate can change while it plays.
type Audio struct {
	mixer  *beep.Mixer
	sounds map[game.Sound]*beep.Buffer
	music  *beep.Buffer

	// guarded by speaker.Lock
	ctrl      *beep.Ctrl
	resampler *beep.Resampler
	rate      float64
}

func NewAudio() (*Audio, error) {
	a := &Audio{
		mixer:  &beep.Mixer{},
		sounds: make(map[game.Sound]*beep.Buffer, len(soundNotes)),
		rate:   1,
	}
	for snd, notes := range soundNotes {
		buf, err := renderNotes(notes, -1)
		if err != nil {
			return nil, fmt.Errorf("render %s sound: %w", snd, err)
		}
		a.sounds[snd] = buf
	}
	music, err := renderNotes(melody, -2)
	if err != nil {
		return nil, fmt.Errorf("render music: %w", err)
	}
	a.music = music

	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(a.mixer)
	return a, nil
}

func (a *Audio) PlaySound(snd game.Sound) error {
	buf, ok := a.sounds[snd]
	if !ok {
		return fmt.Errorf("no %s sound loaded", snd)
	}
	speaker.Lock()
	a.mixer.Add(buf.Streamer(0, buf.Len()))
	speaker.Unlock()
	return nil
}

func (a *Audio) StartMusic() error {
	speaker.Lock()
	defer speaker.Unlock()

	if a.ctrl != nil {
		a.ctrl.Paused = false
		return nil
	}
	loop := beep.Loop(-1, a.music.Streamer(0, a.music.Len()))
	a.resampler = beep.ResampleRatio(4, a.rate, loop)
	a.ctrl = &beep.Ctrl{Streamer: a.resampler}
	a.mixer.Add(a.ctrl)
	return nil
}

// StopMusic drops the current loop; the next StartMusic begins from the top.
func (a *Audio) StopMusic() error {
	speaker.Lock()
	defer speaker.Unlock()

	if a.ctrl != nil {
		a.ctrl.Streamer = nil
	}
	a.ctrl = nil
	a.resampler = nil
	return nil
}

func (a *Audio) SetMusicRate(rate float64) error {
	if rate <= 0 {
		return fmt.Errorf("invalid playback rate %v", rate)
	}
	speaker.Lock()
	defer speaker.Unlock()

	a.rate = rate
	if a.resampler != nil {
		a.resampler.SetRatio(rate)
	}
	return nil
}

// Close silences everything still playing.
func (a *Audio) Close() {
	speaker.Lock()
	a.mixer.Clear()
	speaker.Unlock()
}

// renderNotes plays notes back to back into a buffer at the given volume
// (base 2 exponent, so -1 is half amplitude).
func renderNotes(notes []note, volume float64) (*beep.Buffer, error) {
	buf := beep.NewBuffer(beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2})
	for _, n := range notes {
		sine, err := generators.SineTone(sampleRate, n.freq)
		if err != nil {
			return nil, err
		}
		buf.Append(&effects.Volume{
			Streamer: beep.Take(sampleRate.N(n.dur), sine),
			Base:     2,
			Volume:   volume,
		})
	}
	return buf, nil
}
