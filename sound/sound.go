// Package sound plays short tones for gameplay events.
package sound

import (
	"log"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Player implements game.Cues. A Player that failed to open the speaker
// stays silent.
type Player struct {
	enabled bool
}

// New opens the speaker. Audio is optional: on failure the returned Player
// is silent and the error is only worth logging.
func New() (*Player, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return &Player{}, err
	}
	return &Player{enabled: true}, nil
}

// Silent returns a Player that never touches the speaker.
func Silent() *Player {
	return &Player{}
}

func (p *Player) Eat() {
	p.play(note{880, 50 * time.Millisecond})
}

func (p *Player) Die() {
	p.play(
		note{330, 120 * time.Millisecond},
		note{220, 120 * time.Millisecond},
		note{110, 240 * time.Millisecond},
	)
}

func (p *Player) Close() {
	if p.enabled {
		speaker.Close()
		p.enabled = false
	}
}

type note struct {
	freq float64
	dur  time.Duration
}

func (p *Player) play(notes ...note) {
	if !p.enabled {
		return
	}
	s, err := melody(notes...)
	if err != nil {
		log.Printf("sound: %v", err)
		return
	}
	speaker.Play(s)
}

// melody joins the notes into one finite streamer.
func melody(notes ...note) (beep.Streamer, error) {
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		sine, err := generators.SineTone(sampleRate, n.freq)
		if err != nil {
			return nil, err
		}
		parts = append(parts, beep.Take(sampleRate.N(n.dur), sine))
	}
	return beep.Seq(parts...), nil
}
