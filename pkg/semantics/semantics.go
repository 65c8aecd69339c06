// Package semantics provides the accessibility configuration reported by
// loading indicators to a hosting toolkit's assistive-technology bridge.
package semantics

// Role describes what kind of UI element a semantics node represents.
type Role int

const (
	// RoleNone is an element with no particular role.
	RoleNone Role = iota
	// RoleProgressIndicator is an element conveying ongoing progress.
	RoleProgressIndicator
)

// Flags is a bit set of boolean semantic properties.
type Flags uint32

const (
	// FlagLiveRegion marks an element whose value updates periodically and
	// should be announced by assistive technology without focus changes.
	FlagLiveRegion Flags = 1 << iota
)

// Has reports whether flag is set.
func (f Flags) Has(flag Flags) bool {
	return f&flag != 0
}

// Set returns a copy with flag set.
func (f Flags) Set(flag Flags) Flags {
	return f | flag
}

// Configuration describes the semantic properties of a render element.
type Configuration struct {
	// Role is the element's semantic role.
	Role Role

	// Label names the element ("Loading").
	Label string

	// Value describes the element's current state ("In progress").
	Value string

	// Flags carries boolean semantic properties.
	Flags Flags
}

// IsEmpty reports whether the configuration contains any semantic information.
func (c Configuration) IsEmpty() bool {
	return c.Role == RoleNone && c.Label == "" && c.Value == "" && c.Flags == 0
}
