// Package bus defines the word-level transport consumed by MAC400 register
// users, and the caller-side glue that combines registry lookup, codecs, and
// a transport into typed register reads and writes.
//
// The mac400 package itself never touches the bus; callers hold a Conn (a
// real field-bus client, or the in-memory Sim for tests and offline use) and
// go through Device:
//
//	dev := bus.NewDevice(bus.NewSim(), mac400.DefaultRegistry())
//	v, err := dev.ReadRegister("V_IST")
//
// Conn implementations are expected to serialize access to the physical link
// themselves; Device adds no locking of its own.
package bus
