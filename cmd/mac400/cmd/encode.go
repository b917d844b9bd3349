package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var encodeCmd = &cobra.Command{
	Use:   "encode <register> <value>",
	Short: "Encode a typed value into its raw word pair",
	Long: `Encode a typed value into the two bus words the register holds on the
wire. Scaled registers take physical values (RPM, volts, ...), mode
registers take a mode name or number.

Examples:
  mac400 encode V_SOLL 1200
  mac400 encode MODE_REG velocity
  mac400 encode P_SOLL -40000`,
	Args: cobra.ExactArgs(2),
	RunE: runEncode,
}

func init() {
	rootCmd.AddCommand(encodeCmd)
}

func runEncode(cmd *cobra.Command, args []string) error {
	reg, err := resolveRegister(args[0])
	if err != nil {
		return err
	}
	v, err := parseValue(reg, args[1])
	if err != nil {
		return err
	}

	lo, hi, err := reg.Encode(v)
	if err != nil {
		return err
	}

	addrLo, addrHi := reg.Addr()
	fmt.Printf("%s: lo=%#04x hi=%#04x (addresses %d,%d)\n", reg, lo, hi, addrLo, addrHi)
	return nil
}
