package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vhaggans/JVL-mac400-testing/pkg/bus"
	"github.com/vhaggans/JVL-mac400-testing/pkg/mac400"
)

var writeStateFile string

var writeCmd = &cobra.Command{
	Use:   "write <register> <value>",
	Short: "Write a register on the simulated drive",
	Long: `Encode a typed value and write it to the simulated drive. With --state,
the simulator's word store is loaded from the file first and saved back
afterwards, so a later read sees the value.

Examples:
  mac400 write MODE_REG velocity --state drive.json
  mac400 write V_SOLL 1200 --state drive.json`,
	Args: cobra.ExactArgs(2),
	RunE: runWrite,
}

func init() {
	rootCmd.AddCommand(writeCmd)

	writeCmd.Flags().StringVar(&writeStateFile, "state", "", "simulator state file (JSON)")
}

func runWrite(cmd *cobra.Command, args []string) error {
	reg, err := resolveRegister(args[0])
	if err != nil {
		return err
	}
	v, err := parseValue(reg, args[1])
	if err != nil {
		return err
	}

	sim, err := openSim(writeStateFile)
	if err != nil {
		return err
	}
	dev := bus.NewDevice(sim, mac400.DefaultRegistry())

	if err := dev.WriteRegister(reg.Name, v); err != nil {
		return err
	}
	if verbose {
		addrLo, _ := reg.Addr()
		fmt.Printf("wrote %s at address %d\n", reg, addrLo)
	}

	if writeStateFile != "" {
		if err := saveSim(sim, writeStateFile); err != nil {
			return err
		}
	}
	fmt.Printf("%s = %s\n", reg, v)
	return nil
}
