// Package objfactory provides a thread-safe registry of creatable object
// types, indexed by name.
//
// An editor or patch loader registers every type it knows once at startup,
// then builds instances from a textual name and a payload. Each registered
// type must be both a constructible domain object (Object) and a
// presentable model (Model); the Registrable constraint enforces this at
// compile time.
//
// # Registration
//
// Register a type under its self-reported default name, or under an
// explicit alias:
//
//	r := objfactory.New()
//	objfactory.Register(r, symbol.Empty, builtin.NewOsc)          // "osc"
//	objfactory.Register(r, symbol.Intern("sine~"), builtin.NewOsc) // alias
//
// Registration never returns an error. A rejected registration (duplicate
// name, interface type, nil or panicking constructor) is reported to the
// registry's console.Sink and the existing entry is left untouched. Use
// MustRegister during bootstrap to turn rejections into panics.
//
// Register always builds one prototype from payload.Empty() to validate the
// constructor and to read its default name. Constructors should therefore
// have no side effects; configuration belongs in Initialize.
//
// # Creation
//
// Create looks up a name, constructs a new instance and calls Initialize
// with the payload's Dico:
//
//	p := payload.Parse("osc 220")
//	obj := r.Create(p.Name, p)
//	if obj == nil {
//	    // unknown name, or construction failed; a diagnostic was reported
//	}
//
// # Default Registry
//
// Default returns a process-wide registry created lazily on first use.
// InitDefault configures it explicitly before first use. The package-level
// Add, MustAdd, Create, Has, Remove and Names functions operate on it.
//
// # Thread Safety
//
// All operations may be called from any goroutine. One mutex guards the
// registry, and Create holds it while constructing and initializing, so
// constructors and Initialize must not call back into the same registry.
package objfactory
