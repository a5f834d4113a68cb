// Package builtin provides the reference object types shipped with the
// factory: an oscillator, a gain stage and a metronome.
//
// Register installs all of them under their default names:
//
//	r := objfactory.New()
//	builtin.Register(r)
//	obj := r.Create(builtin.NameOsc, payload.Parse("osc 220"))
package builtin

import (
	"math"
	"time"

	"github.com/randalmurphal/objfactory/pkg/objfactory"
	"github.com/randalmurphal/objfactory/pkg/objfactory/dico"
	"github.com/randalmurphal/objfactory/pkg/objfactory/payload"
	"github.com/randalmurphal/objfactory/pkg/objfactory/symbol"
)

// Default names.
var (
	NameOsc   = symbol.Intern("osc")
	NameGain  = symbol.Intern("gain")
	NameMetro = symbol.Intern("metro")
)

// Defaults applied when the payload does not override them.
const (
	DefaultFrequency = 440.0
	DefaultWaveform  = "sine"
	DefaultGain      = 1.0
	DefaultInterval  = 500 * time.Millisecond
)

// Register adds every builtin type to r under its default name.
func Register(r *objfactory.Registry) {
	objfactory.Register(r, symbol.Empty, NewOsc)
	objfactory.Register(r, symbol.Empty, NewGain)
	objfactory.Register(r, symbol.Empty, NewMetro)
}

// firstArg returns the first positional argument of p as a number.
func firstArg(p payload.Payload) (float64, bool) {
	args := p.Args()
	if len(args) == 0 {
		return 0, false
	}
	f, ok := args[0].(float64)
	return f, ok
}

// Osc is a periodic signal generator.
type Osc struct {
	objfactory.Box
	Frequency float64
	Waveform  string
}

// NewOsc builds an oscillator. The first creation argument, if numeric,
// sets the frequency.
func NewOsc(p payload.Payload) *Osc {
	o := &Osc{Box: objfactory.NewBox(), Frequency: DefaultFrequency, Waveform: DefaultWaveform}
	if f, ok := firstArg(p); ok && f > 0 {
		o.Frequency = f
	}
	return o
}

func (o *Osc) Name() symbol.Name { return NameOsc }

// Initialize reads "frequency", "waveform" and the box bounds.
func (o *Osc) Initialize(d dico.Dico) {
	if f := d.Float("frequency", o.Frequency); f > 0 {
		o.Frequency = f
	}
	o.Waveform = d.String("waveform", o.Waveform)
	o.ReadBounds(d)
}

// Gain scales a signal by a linear factor.
type Gain struct {
	objfactory.Box
	Gain float64
}

// NewGain builds a gain stage. The first creation argument, if numeric,
// sets the linear gain.
func NewGain(p payload.Payload) *Gain {
	g := &Gain{Box: objfactory.NewBox(), Gain: DefaultGain}
	if f, ok := firstArg(p); ok {
		g.Gain = f
	}
	return g
}

func (g *Gain) Name() symbol.Name { return NameGain }

// Initialize reads "gain". When "db" is true the value is in decibels.
func (g *Gain) Initialize(d dico.Dico) {
	if d.Has("gain") {
		v := d.Float("gain", g.Gain)
		if d.Bool("db", false) {
			v = math.Pow(10, v/20)
		}
		g.Gain = v
	}
	g.ReadBounds(d)
}

// Metro emits a tick at a fixed interval.
type Metro struct {
	objfactory.Box
	Interval time.Duration
}

// NewMetro builds a metronome. The first creation argument, if numeric,
// is the interval in milliseconds.
func NewMetro(p payload.Payload) *Metro {
	m := &Metro{Box: objfactory.NewBox(), Interval: DefaultInterval}
	if ms, ok := firstArg(p); ok && ms > 0 {
		m.Interval = time.Duration(ms * float64(time.Millisecond))
	}
	return m
}

func (m *Metro) Name() symbol.Name { return NameMetro }

// Initialize reads "interval", as a duration string or milliseconds.
func (m *Metro) Initialize(d dico.Dico) {
	if v := d.Duration("interval", m.Interval); v > 0 {
		m.Interval = v
	}
	m.ReadBounds(d)
}
