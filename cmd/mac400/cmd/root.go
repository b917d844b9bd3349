package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "mac400",
	Short: "JVL MAC400 register map inspector",
	Long: `Inspect the JVL MAC400 servo motor register map and convert register
values between raw bus words and typed physical values.

Examples:
  mac400 list                          # Show the full register map
  mac400 lookup V_SOLL                 # Show one register's number and addresses
  mac400 lookup 396                    # Resolve a bus word address
  mac400 decode MODE_REG 1 0           # Decode a raw word pair
  mac400 encode V_SOLL 1200            # Encode 1200 RPM into bus words
  mac400 write U_BUS 325 --state s.json && mac400 read U_BUS --state s.json`,
	Version: "0.1.0",
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
