// Package audio plays the dotmaze theme music and sound effects through
// beep. Sounds are decoded into memory once at load time; a missing file
// only silences its cue.
package audio

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/mp3"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"
)

const (
	sampleRate = beep.SampleRate(44100)
	// resampleQuality is passed to beep.Resample for files at other rates.
	resampleQuality = 4
)

// Cue identifies a sound effect.
type Cue int

const (
	CuePowerUp Cue = iota
	CueLevelUp
	CueWin
	CueGameOver // also used on time out
	CueDeath
	CueEnemyKilled
)

// MusicFile is the theme, relative to the audio directory.
const MusicFile = "music/theme.mp3"

var cueFiles = map[Cue]string{
	CuePowerUp:     "sfx/power_up_sound.wav",
	CueLevelUp:     "sfx/newthingget.wav",
	CueWin:         "sfx/sboe.wav",
	CueGameOver:    "sfx/Funeral March.wav",
	CueDeath:       "sfx/death.wav",
	CueEnemyKilled: "sfx/deathd.wav",
}

func (c Cue) String() string {
	if f, ok := cueFiles[c]; ok {
		return strings.TrimSuffix(filepath.Base(f), filepath.Ext(f))
	}
	return "unknown"
}

// Options tunes playback. Volumes are log2 gains: 0 plays the file as is,
// -1 halves it.
type Options struct {
	MusicVolume float64
	SfxVolume   float64
}

// Player owns the decoded sounds and the speaker mixer.
type Player struct {
	mu      sync.Mutex
	opts    Options
	logger  *log.Logger
	sfx     map[Cue]*beep.Buffer
	music   *beep.Buffer
	theme   *beep.Ctrl
	mixer   *beep.Mixer
	missing []string
	started bool
}

// Load decodes every sound under dir. Files that cannot be read are logged
// as warnings and reported by Missing.
func Load(dir string, opts Options, logger *log.Logger) *Player {
	p := &Player{
		opts:   opts,
		logger: logger,
		sfx:    make(map[Cue]*beep.Buffer, len(cueFiles)),
		mixer:  &beep.Mixer{},
	}

	for cue, name := range cueFiles {
		buf, err := decodeFile(filepath.Join(dir, name))
		if err != nil {
			p.warn(name, err)
			continue
		}
		p.sfx[cue] = buf
	}

	buf, err := decodeFile(filepath.Join(dir, MusicFile))
	if err != nil {
		p.warn(MusicFile, err)
	} else {
		p.music = buf
	}
	return p
}

func (p *Player) warn(name string, err error) {
	p.missing = append(p.missing, name)
	if p.logger != nil {
		p.logger.Warn("sound unavailable", "file", name, "err", err)
	}
}

// Missing lists the sound files that could not be loaded.
func (p *Player) Missing() []string {
	return append([]string(nil), p.missing...)
}

// Start opens the audio device and begins streaming the mixer. Until Start
// succeeds every play call is a no-op.
func (p *Player) Start() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.started {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return fmt.Errorf("audio: init speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.started = true
	return nil
}

// Play starts a sound effect on top of whatever is playing.
func (p *Player) Play(cue Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	buf := p.sfx[cue]
	if !p.started || buf == nil {
		return
	}
	p.add(volume(buf.Streamer(0, buf.Len()), p.opts.SfxVolume))
}

// PlayMusic starts the looping theme, or resumes it if paused.
func (p *Player) PlayMusic() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.started || p.music == nil {
		return
	}
	if p.theme != nil {
		speaker.Lock()
		p.theme.Paused = false
		speaker.Unlock()
		return
	}
	p.theme = &beep.Ctrl{Streamer: beep.Loop(-1, p.music.Streamer(0, p.music.Len())), Paused: false}
	p.add(volume(p.theme, p.opts.MusicVolume))
}

// PauseMusic pauses the theme where it is.
func (p *Player) PauseMusic() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.theme == nil {
		return
	}
	speaker.Lock()
	p.theme.Paused = true
	speaker.Unlock()
}

// HaltMusic stops the theme; the next PlayMusic starts from the beginning.
func (p *Player) HaltMusic() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.theme == nil {
		return
	}
	speaker.Lock()
	// a nil streamer ends the ctrl, so the mixer drops it
	p.theme.Streamer = nil
	speaker.Unlock()
	p.theme = nil
}

// Close stops all sounds.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.started {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.theme = nil
	p.started = false
}

func (p *Player) add(s beep.Streamer) {
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

func volume(s beep.Streamer, v float64) beep.Streamer {
	if v == 0 {
		return s
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: v, Silent: false}
}

// decodeFile reads a wav or mp3 file into a buffer at the mixer rate.
func decodeFile(path string) (*beep.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav":
		streamer, format, err = wav.Decode(f)
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	default:
		f.Close()
		return nil, fmt.Errorf("unsupported sound format %q", filepath.Ext(path))
	}
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	defer streamer.Close()

	var s beep.Streamer = streamer
	if format.SampleRate != sampleRate {
		s = beep.Resample(resampleQuality, format.SampleRate, sampleRate, streamer)
	}

	buf := beep.NewBuffer(beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2})
	buf.Append(s)
	if err := streamer.Err(); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return buf, nil
}

// Silent satisfies the same calls as Player and plays nothing. It is used
// with --mute and for SSH sessions.
type Silent struct{}

func (Silent) Play(Cue)    {}
func (Silent) PlayMusic()  {}
func (Silent) PauseMusic() {}
func (Silent) HaltMusic()  {}
