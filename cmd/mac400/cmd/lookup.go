package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/vhaggans/JVL-mac400-testing/pkg/mac400"
)

var lookupCmd = &cobra.Command{
	Use:   "lookup <name-or-address>",
	Short: "Resolve a register by name or bus word address",
	Long: `Resolve a register and show its number, bus word addresses, and codec kind.
A numeric argument is treated as a bus word address, anything else as a
register name.

Examples:
  mac400 lookup U_BUS
  mac400 lookup 396`,
	Args: cobra.ExactArgs(1),
	RunE: runLookup,
}

func init() {
	rootCmd.AddCommand(lookupCmd)
}

// resolveRegister resolves an argument as a word address if numeric,
// otherwise as a register name.
func resolveRegister(arg string) (mac400.Register, error) {
	regs := mac400.DefaultRegistry()
	if addr, err := strconv.ParseUint(arg, 0, 16); err == nil {
		return regs.ForAddress(uint16(addr))
	}
	return regs.ForName(arg)
}

func runLookup(cmd *cobra.Command, args []string) error {
	reg, err := resolveRegister(args[0])
	if err != nil {
		return err
	}

	lo, hi := reg.Addr()
	fmt.Printf("Register: %s\n", reg.Name)
	fmt.Printf("Number:   %d\n", reg.Num)
	fmt.Printf("Address:  %d,%d\n", lo, hi)
	fmt.Printf("Kind:     %s\n", reg.Codec.Kind)
	if reg.Codec.Kind == mac400.KindScaled {
		fmt.Printf("Factor:   %g counts per unit (signed=%v)\n", reg.Codec.Factor, reg.Codec.Signed)
	}
	return nil
}
