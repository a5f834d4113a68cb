// Package payload defines the bundle handed to object constructors.
package payload

import (
	"strconv"
	"strings"

	"github.com/randalmurphal/objfactory/pkg/objfactory/dico"
	"github.com/randalmurphal/objfactory/pkg/objfactory/symbol"
)

// ArgsKey is the dico key Parse stores positional arguments under.
const ArgsKey = "args"

// Payload carries everything needed to build and initialize an object.
type Payload struct {
	// Name is the name hint, usually the registered name being created.
	Name symbol.Name
	// Text is the creation text as typed, e.g. "osc 440".
	Text string
	// Dico is the configuration consumed by Object.Initialize.
	Dico dico.Dico
}

// Empty returns the minimal payload used to build prototypes.
func Empty() Payload {
	return Payload{Dico: dico.New(nil)}
}

// New returns a payload with a name hint and configuration.
func New(name symbol.Name, d dico.Dico) Payload {
	return Payload{Name: name, Text: name.String(), Dico: d}
}

// Parse builds a payload from creation text. The first word is the name
// hint and the remaining words become positional arguments under ArgsKey,
// numbers decoded as float64.
//
//	p := payload.Parse("osc 440 saw")
//	p.Name.String()               // "osc"
//	p.Dico.Any(payload.ArgsKey, nil) // []any{440.0, "saw"}
func Parse(text string) Payload {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return Empty()
	}

	args := make([]any, 0, len(fields)-1)
	for _, f := range fields[1:] {
		if n, err := strconv.ParseFloat(f, 64); err == nil {
			args = append(args, n)
		} else {
			args = append(args, f)
		}
	}

	data := map[string]any{}
	if len(args) > 0 {
		data[ArgsKey] = args
	}
	return Payload{
		Name: symbol.Intern(fields[0]),
		Text: strings.Join(fields, " "),
		Dico: dico.New(data),
	}
}

// WithDico returns a copy of p whose configuration is p.Dico merged with d.
func (p Payload) WithDico(d dico.Dico) Payload {
	p.Dico = p.Dico.Merge(d)
	return p
}

// Args returns the positional arguments, or nil.
func (p Payload) Args() []any {
	if args, ok := p.Dico.Any(ArgsKey, nil).([]any); ok {
		return args
	}
	return nil
}
