package bus

import (
	"fmt"

	"github.com/vhaggans/JVL-mac400-testing/pkg/mac400"
)

// Device binds a register registry to a connection, giving typed access to a
// single drive. It is the composition the mac400 package expects its callers
// to make: resolve the register, move the word pair over the bus, run the
// register's codec.
type Device struct {
	conn Conn
	regs *mac400.Registry
}

// NewDevice returns a Device reading and writing through conn using the
// given registry.
func NewDevice(conn Conn, regs *mac400.Registry) *Device {
	return &Device{conn: conn, regs: regs}
}

// ReadRegister reads and decodes the named register.
func (d *Device) ReadRegister(name string) (mac400.Value, error) {
	reg, err := d.regs.ForName(name)
	if err != nil {
		return mac400.Value{}, err
	}
	addr, _ := reg.Addr()
	lo, hi, err := d.conn.ReadWords(addr)
	if err != nil {
		return mac400.Value{}, fmt.Errorf("bus: failed to read %s: %w", reg, err)
	}
	return reg.Decode(lo, hi)
}

// WriteRegister encodes and writes the named register.
func (d *Device) WriteRegister(name string, v mac400.Value) error {
	reg, err := d.regs.ForName(name)
	if err != nil {
		return err
	}
	lo, hi, err := reg.Encode(v)
	if err != nil {
		return err
	}
	addr, _ := reg.Addr()
	if err := d.conn.WriteWords(addr, lo, hi); err != nil {
		return fmt.Errorf("bus: failed to write %s: %w", reg, err)
	}
	return nil
}

// ReadAddress resolves a word address to its register, then reads and
// decodes it. Either of the register's two word addresses selects it.
func (d *Device) ReadAddress(addr uint16) (mac400.Register, mac400.Value, error) {
	reg, err := d.regs.ForAddress(addr)
	if err != nil {
		return mac400.Register{}, mac400.Value{}, err
	}
	regAddr, _ := reg.Addr()
	lo, hi, err := d.conn.ReadWords(regAddr)
	if err != nil {
		return mac400.Register{}, mac400.Value{}, fmt.Errorf("bus: failed to read %s: %w", reg, err)
	}
	v, err := reg.Decode(lo, hi)
	if err != nil {
		return mac400.Register{}, mac400.Value{}, err
	}
	return reg, v, nil
}
