package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/vhaggans/JVL-mac400-testing/pkg/mac400"
)

var listJSON bool

// RegisterInfo represents one register for structured output
type RegisterInfo struct {
	Num    uint16 `json:"num"`
	Name   string `json:"name"`
	AddrLo uint16 `json:"addr_lo"`
	AddrHi uint16 `json:"addr_hi"`
	Kind   string `json:"kind"`
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the full MAC400 register map",
	Long: `List every register with its number, bus word addresses, and codec kind.

Examples:
  mac400 list
  mac400 list --json`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().BoolVar(&listJSON, "json", false, "output as JSON")
}

func runList(cmd *cobra.Command, args []string) error {
	regs := mac400.DefaultRegistry().Registers()

	if listJSON {
		infos := make([]RegisterInfo, len(regs))
		for i, reg := range regs {
			lo, hi := reg.Addr()
			infos[i] = RegisterInfo{
				Num:    reg.Num,
				Name:   reg.Name,
				AddrLo: lo,
				AddrHi: hi,
				Kind:   reg.Codec.Kind.String(),
			}
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(infos)
	}

	fmt.Printf("%-5s %-9s %-17s %s\n", "NUM", "ADDR", "NAME", "KIND")
	for _, reg := range regs {
		lo, hi := reg.Addr()
		fmt.Printf("%-5d %3d,%-5d %-17s %s\n", reg.Num, lo, hi, reg.Name, reg.Codec.Kind)
	}
	fmt.Printf("\n%d registers\n", len(regs))
	return nil
}
