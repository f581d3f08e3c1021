package cpu

// Register is a 16-bit general-purpose register with independently
// addressable low and high bytes, like AX splitting into AL and AH.
// The byte views are masked accessors, not overlapping storage.
type Register struct {
	x uint16
}

// Get returns the full 16-bit value.
func (r *Register) Get() uint16 {
	return r.x
}

// Set replaces the full 16-bit value.
func (r *Register) Set(value uint16) {
	r.x = value
}

// Low returns the low byte.
func (r *Register) Low() byte {
	return byte(r.x & 0x00FF)
}

// High returns the high byte.
func (r *Register) High() byte {
	return byte(r.x >> 8)
}

// SetLow replaces the low byte, leaving the high byte untouched.
func (r *Register) SetLow(value byte) {
	r.x = (r.x & 0xFF00) | uint16(value)
}

// SetHigh replaces the high byte, leaving the low byte untouched.
func (r *Register) SetHigh(value byte) {
	r.x = (r.x & 0x00FF) | (uint16(value) << 8)
}
