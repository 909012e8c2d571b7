package models

// Unit is the measure an amount is expressed in.
type Unit string

const (
	UnitServing Unit = "serving"
	UnitGram    Unit = "g"
	UnitMl      Unit = "ml"
	UnitPiece   Unit = "piece"
)

// Valid reports whether u is one of the supported units
func (u Unit) Valid() bool {
	switch u {
	case UnitServing, UnitGram, UnitMl, UnitPiece:
		return true
	}
	return false
}

// OrDefault returns u, or UnitServing when u is empty
func (u Unit) OrDefault() Unit {
	if u == "" {
		return UnitServing
	}
	return u
}
