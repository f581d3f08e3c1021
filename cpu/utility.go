package cpu

import "encoding/binary"

// Word transfers. The 8086 stores words little-endian, least significant
// byte at the lower address. Each word moves as two byte bus cycles so
// every access still goes through the latched bus.

// ReadWord reads a little-endian 16-bit word starting at addr.
func (b *BusInterfaceUnit) ReadWord(addr uint32) uint16 {
	var buf [2]byte
	buf[0] = b.ReadByte(addr)
	buf[1] = b.ReadByte(addr + 1)
	return binary.LittleEndian.Uint16(buf[:])
}

// WriteWord writes a 16-bit word starting at addr in little-endian order.
func (b *BusInterfaceUnit) WriteWord(addr uint32, value uint16) {
	var buf [2]byte
	binary.LittleEndian.PutUint16(buf[:], value)
	b.WriteByte(addr, buf[0])
	b.WriteByte(addr+1, buf[1])
}
