package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var (
	drawCount int
	drawFloat bool
	drawHex   bool

	belowCount int
)

// drawCmd represents the draw command
var drawCmd = &cobra.Command{
	Use:   "draw",
	Short: "Print raw 64-bit draws",
	Long: `Print raw 64-bit draws, one per line, For example:
  pcg64dxsm draw -n 3 --state=0x0 --inc=0x1 --hex
  pcg64dxsm draw -n 3 --float`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := newGenerator()
		if err != nil {
			return err
		}
		w := cmd.OutOrStdout()
		for i := 0; i < drawCount; i++ {
			switch {
			case drawFloat:
				fmt.Fprintln(w, strconv.FormatFloat(g.Float64(), 'g', -1, 64))
			case drawHex:
				fmt.Fprintf(w, "0x%016x\n", g.NextUint64())
			default:
				fmt.Fprintln(w, g.NextUint64())
			}
		}
		return nil
	},
}

// belowCmd represents the below command
var belowCmd = &cobra.Command{
	Use:   "below BOUND",
	Short: "Print unbiased integers in [0, BOUND)",
	Long: `Print unbiased integers in [0, BOUND), For example:
  pcg64dxsm below 6 -n 10`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		bound, err := strconv.ParseUint(args[0], 0, 64)
		if err != nil {
			return fmt.Errorf("bound: %w", err)
		}
		g, err := newGenerator()
		if err != nil {
			return err
		}
		w := cmd.OutOrStdout()
		for i := 0; i < belowCount; i++ {
			v, err := g.IntBelow(bound)
			if err != nil {
				return err
			}
			fmt.Fprintln(w, v)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(drawCmd)
	rootCmd.AddCommand(belowCmd)

	flags := drawCmd.Flags()
	flags.IntVarP(&drawCount, "count", "n", 1, "number of draws")
	flags.BoolVar(&drawFloat, "float", false, "print floats in [0, 1)")
	flags.BoolVar(&drawHex, "hex", false, "print 0x-prefixed hex")

	belowCmd.Flags().IntVarP(&belowCount, "count", "n", 1, "number of values")
}
