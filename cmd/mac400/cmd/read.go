package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/vhaggans/JVL-mac400-testing/pkg/bus"
	"github.com/vhaggans/JVL-mac400-testing/pkg/mac400"
)

var stateFile string

var readCmd = &cobra.Command{
	Use:   "read <register>...",
	Short: "Read registers from the simulated drive",
	Long: `Read one or more registers from the simulated drive and decode them.
The simulator's word store is loaded from the --state file if given;
unwritten registers read as zero.

Examples:
  mac400 read MODE_REG U_BUS
  mac400 read V_IST --state drive.json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRead,
}

func init() {
	rootCmd.AddCommand(readCmd)

	readCmd.Flags().StringVar(&stateFile, "state", "", "simulator state file (JSON)")
}

// openSim builds the simulated drive, preloading state when a file is given.
func openSim(path string) (*bus.Sim, error) {
	sim := bus.NewSim()
	if path == "" {
		return sim, nil
	}
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return sim, nil
		}
		return nil, err
	}
	defer f.Close()
	if err := sim.LoadState(f); err != nil {
		return nil, err
	}
	return sim, nil
}

func saveSim(sim *bus.Sim, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return sim.SaveState(f)
}

func runRead(cmd *cobra.Command, args []string) error {
	sim, err := openSim(stateFile)
	if err != nil {
		return err
	}
	dev := bus.NewDevice(sim, mac400.DefaultRegistry())

	for _, name := range args {
		reg, err := resolveRegister(name)
		if err != nil {
			return err
		}
		v, err := dev.ReadRegister(reg.Name)
		if err != nil {
			return err
		}
		fmt.Printf("%s = %s\n", reg, v)
	}
	return nil
}
