package bus

import (
	"bytes"
	"errors"
	"testing"

	"github.com/vhaggans/JVL-mac400-testing/pkg/mac400"
)

func TestDeviceReadWriteRoundTrip(t *testing.T) {
	dev := NewDevice(NewSim(), mac400.DefaultRegistry())

	if err := dev.WriteRegister("P_SOLL", mac400.IntValue(-2048)); err != nil {
		t.Fatalf("WriteRegister returned error: %v", err)
	}
	v, err := dev.ReadRegister("P_SOLL")
	if err != nil {
		t.Fatalf("ReadRegister returned error: %v", err)
	}
	if v.Int != -2048 {
		t.Fatalf("P_SOLL read back %d, want -2048", v.Int)
	}
}

func TestDeviceScaledRegister(t *testing.T) {
	dev := NewDevice(NewSim(), mac400.DefaultRegistry())

	if err := dev.WriteRegister("V_SOLL", mac400.FloatValue(1200)); err != nil {
		t.Fatalf("WriteRegister returned error: %v", err)
	}
	v, err := dev.ReadRegister("V_SOLL")
	if err != nil {
		t.Fatalf("ReadRegister returned error: %v", err)
	}
	if v.Float < 1199 || v.Float > 1201 {
		t.Fatalf("V_SOLL read back %g RPM, want ~1200", v.Float)
	}
}

func TestDeviceUnknownRegister(t *testing.T) {
	dev := NewDevice(NewSim(), mac400.DefaultRegistry())

	if _, err := dev.ReadRegister("NOPE"); !errors.Is(err, mac400.ErrUnknownRegister) {
		t.Fatalf("ReadRegister error = %v, want ErrUnknownRegister", err)
	}
	if _, _, err := dev.ReadAddress(300); !errors.Is(err, mac400.ErrUnknownRegister) {
		t.Fatalf("ReadAddress(300) error = %v, want ErrUnknownRegister", err)
	}
}

func TestDeviceReadAddress(t *testing.T) {
	sim := NewSim()
	dev := NewDevice(sim, mac400.DefaultRegistry())

	if err := dev.WriteRegister("U_BUS", mac400.FloatValue(888)); err != nil {
		t.Fatalf("WriteRegister returned error: %v", err)
	}

	// Both word addresses of register 198 resolve to it.
	for _, addr := range []uint16{396, 397} {
		reg, v, err := dev.ReadAddress(addr)
		if err != nil {
			t.Fatalf("ReadAddress(%d) returned error: %v", addr, err)
		}
		if reg.Name != "U_BUS" {
			t.Fatalf("ReadAddress(%d) = %s, want U_BUS", addr, reg)
		}
		if v.Float < 887 || v.Float > 889 {
			t.Fatalf("U_BUS via address = %g, want ~888", v.Float)
		}
	}
}

func TestSimStateRoundTrip(t *testing.T) {
	sim := NewSim()
	if err := sim.WriteWords(10, 0x1234, 0x5678); err != nil {
		t.Fatalf("WriteWords returned error: %v", err)
	}

	var buf bytes.Buffer
	if err := sim.SaveState(&buf); err != nil {
		t.Fatalf("SaveState returned error: %v", err)
	}

	restored := NewSim()
	if err := restored.LoadState(&buf); err != nil {
		t.Fatalf("LoadState returned error: %v", err)
	}
	lo, hi, err := restored.ReadWords(10)
	if err != nil {
		t.Fatalf("ReadWords returned error: %v", err)
	}
	if lo != 0x1234 || hi != 0x5678 {
		t.Fatalf("restored words = (%#x, %#x), want (0x1234, 0x5678)", lo, hi)
	}
}
