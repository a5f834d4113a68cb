/*
Package dico holds the configuration section of an object payload.

# Overview

A Dico wraps a map[string]any and exposes typed accessors that fall back to a
caller-supplied default when a key is missing or holds an incompatible value.
Objects read their settings from a Dico in Initialize:

	func (o *Osc) Initialize(d dico.Dico) {
	    o.frequency = d.Float("frequency", 440)
	    o.waveform = d.String("waveform", "sine")
	}

# Conversions

  - Float accepts float64, float32, int and int64
  - Int accepts whole float64 values, int and int64
  - Duration accepts strings ("250ms", "1s"), numbers as milliseconds, and time.Duration
  - Strings and Floats accept typed slices or []any with homogeneous elements

# Loading

Dicos can be decoded from YAML, JSON or HCL attribute files:

	d, err := dico.FromFile("osc.yaml")
	d, err = dico.FromHCL([]byte(`frequency = 220`))

A Dico is never mutated after construction. With and Merge return copies, so
a Dico may be shared between goroutines.
*/
package dico
