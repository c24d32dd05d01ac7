package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/colocohen/pcg64dxsm/random"
)

var (
	uuidCount int

	stringLength int
	stringPool   string

	hexLength int
	hexUpper  bool
)

// uuidCmd represents the uuid command
var uuidCmd = &cobra.Command{
	Use:   "uuid",
	Short: "Print version 4 UUIDs",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := newGenerator()
		if err != nil {
			return err
		}
		r := random.New(g)
		for i := 0; i < uuidCount; i++ {
			fmt.Fprintln(cmd.OutOrStdout(), r.UUID4())
		}
		return nil
	},
}

// stringCmd represents the string command
var stringCmd = &cobra.Command{
	Use:   "string",
	Short: "Print a random string",
	Long: `Print a random string drawn from a character pool, For example:
  pcg64dxsm string -n 16
  pcg64dxsm string -n 8 --pool=ACGT`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := newGenerator()
		if err != nil {
			return err
		}
		s, err := random.New(g).StringFrom(stringPool, stringLength)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), s)
		return nil
	},
}

// hexCmd represents the hex command
var hexCmd = &cobra.Command{
	Use:   "hex",
	Short: "Print random hex digits",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := newGenerator()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), random.New(g).Hex(hexLength, hexUpper))
		return nil
	},
}

// diceCmd represents the dice command
var diceCmd = &cobra.Command{
	Use:   "dice SIDES [COUNT]",
	Short: "Roll dice",
	Long: `Roll COUNT dice with SIDES sides each, For example:
  pcg64dxsm dice 6 3`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		sides, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("sides: %w", err)
		}
		count := 1
		if len(args) == 2 {
			if count, err = strconv.Atoi(args[1]); err != nil {
				return fmt.Errorf("count: %w", err)
			}
		}
		g, err := newGenerator()
		if err != nil {
			return err
		}
		rolls := random.New(g).Dice(sides, count)
		out := make([]string, len(rolls))
		for i, v := range rolls {
			out[i] = strconv.Itoa(v)
		}
		fmt.Fprintln(cmd.OutOrStdout(), strings.Join(out, " "))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(uuidCmd)
	rootCmd.AddCommand(stringCmd)
	rootCmd.AddCommand(hexCmd)
	rootCmd.AddCommand(diceCmd)

	uuidCmd.Flags().IntVarP(&uuidCount, "count", "n", 1, "number of UUIDs")

	flags := stringCmd.Flags()
	flags.IntVarP(&stringLength, "length", "n", 16, "string length")
	flags.StringVar(&stringPool, "pool", random.DefaultPool, "character pool")

	flags = hexCmd.Flags()
	flags.IntVarP(&hexLength, "length", "n", 32, "number of hex digits")
	flags.BoolVar(&hexUpper, "upper", false, "use upper case digits")
}
