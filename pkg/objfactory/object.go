package objfactory

import (
	"github.com/randalmurphal/objfactory/pkg/objfactory/dico"
	"github.com/randalmurphal/objfactory/pkg/objfactory/payload"
	"github.com/randalmurphal/objfactory/pkg/objfactory/symbol"
)

// Object is a constructible domain object.
type Object interface {
	// Name returns the object's default name. Register uses it when no
	// explicit name is given.
	Name() symbol.Name

	// Initialize applies the configuration section of the creation payload.
	// It runs once, right after construction.
	Initialize(d dico.Dico)
}

// Model is a presentable object: something an editor can place and size.
type Model interface {
	Position() Point
	Size() Size
}

// Registrable is the constraint every registered type must satisfy.
type Registrable interface {
	Object
	Model
}

// Constructor builds a T from a payload. Returning nil (including a typed
// nil pointer) means construction failed.
type Constructor[T Registrable] func(p payload.Payload) T

// Point is a position in model coordinates.
type Point struct {
	X, Y float64
}

// Size is an extent in model coordinates.
type Size struct {
	Width, Height float64
}

// DefaultSize is the size a Box starts with.
var DefaultSize = Size{Width: 60, Height: 20}

// Box is a minimal Model. Embed it to satisfy the Model half of Registrable.
type Box struct {
	pos  Point
	size Size
}

// NewBox returns a Box at the origin with DefaultSize.
func NewBox() Box {
	return Box{size: DefaultSize}
}

// Position implements Model.
func (b Box) Position() Point { return b.pos }

// Size implements Model.
func (b Box) Size() Size { return b.size }

// SetPosition moves the box.
func (b *Box) SetPosition(p Point) { b.pos = p }

// SetSize resizes the box. Non-positive dimensions are ignored.
func (b *Box) SetSize(s Size) {
	if s.Width > 0 {
		b.size.Width = s.Width
	}
	if s.Height > 0 {
		b.size.Height = s.Height
	}
}

// ReadBounds applies the "position" and "size" entries of d, each a
// two-element number list.
func (b *Box) ReadBounds(d dico.Dico) {
	if p := d.Floats("position", nil); len(p) == 2 {
		b.SetPosition(Point{X: p[0], Y: p[1]})
	}
	if s := d.Floats("size", nil); len(s) == 2 {
		b.SetSize(Size{Width: s[0], Height: s[1]})
	}
}
