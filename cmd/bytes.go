package cmd

import (
	"encoding/hex"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/colocohen/pcg64dxsm/random"
)

var (
	bytesCount int
	bytesDump  bool
)

// bytesCmd represents the bytes command
var bytesCmd = &cobra.Command{
	Use:   "bytes",
	Short: "Write random bytes",
	Long: `Write random bytes to stdout. Raw bytes go to pipes and files, a hex dump
goes to a terminal, For example:
  pcg64dxsm bytes -n 1024 > blob.bin
  pcg64dxsm bytes -n 64`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := newGenerator()
		if err != nil {
			return err
		}
		w := cmd.OutOrStdout()
		src := io.LimitReader(random.New(g).Reader(), int64(bytesCount))
		if bytesDump || isTerminal(w) {
			d := hex.Dumper(w)
			defer d.Close()
			w = d
		}
		_, err = io.Copy(w, src)
		return err
	},
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func init() {
	rootCmd.AddCommand(bytesCmd)

	flags := bytesCmd.Flags()
	flags.IntVarP(&bytesCount, "count", "n", 32, "number of bytes")
	flags.BoolVar(&bytesDump, "dump", false, "always write a hex dump")
}
