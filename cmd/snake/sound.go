package main

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// sounds plays short tones; a nil *sounds is silent
type sounds struct{}

func newSounds() (*sounds, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, err
	}
	return &sounds{}, nil
}

func (s *sounds) eat() {
	s.tone(880, 50*time.Millisecond)
}

func (s *sounds) die() {
	s.tone(220, 300*time.Millisecond)
}

func (s *sounds) tone(freq int, d time.Duration) {
	if s == nil {
		return
	}
	sine, err := generators.SineTone(sampleRate, float64(freq))
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(d), sine))
}

func (s *sounds) close() {
	if s == nil {
		return
	}
	speaker.Close()
}
