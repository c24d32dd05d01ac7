package cmd

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/colocohen/pcg64dxsm/crypt/xor"
	"github.com/colocohen/pcg64dxsm/uint128"
)

var (
	cryptKey    string
	cryptStream string
)

// cryptCmd represents the crypt command
var cryptCmd = &cobra.Command{
	Use:   "crypt",
	Short: "XOR stdin with a keystream",
	Long: `XOR stdin with the generator keystream for a key and write it to stdout.
Running it twice with the same key restores the input. Not for secrets: the
generator is not cryptographically secure. For example:
  pcg64dxsm crypt --crypt-key=816559 < in > out`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		key, err := uint128.Parse(cryptKey)
		if err != nil {
			return err
		}
		stream := xor.DefaultStream
		if cryptStream != "" {
			if stream, err = uint128.Parse(cryptStream); err != nil {
				return err
			}
		}
		dec := xor.NewCrypt(key).NewDecoder(cmd.InOrStdin(), xor.WithDecoderStream(stream))
		_, err = io.Copy(cmd.OutOrStdout(), dec)
		return err
	},
}

func init() {
	rootCmd.AddCommand(cryptCmd)

	flags := cryptCmd.Flags()
	flags.StringVarP(&cryptKey, "crypt-key", "k", "98545715754651", "crypt key")
	flags.StringVar(&cryptStream, "stream", "", "keystream increment (default built in)")
}
