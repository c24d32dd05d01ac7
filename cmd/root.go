package cmd

import (
	"encoding/hex"
	"fmt"
	"math/big"
	"os"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/colocohen/pcg64dxsm"
	"github.com/colocohen/pcg64dxsm/logger"
)

var (
	cfgFile string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "pcg64dxsm",
	Short: "PCG64-DXSM random number tool.",
	Long: `PCG64-DXSM random number tool.
Draw numbers, UUIDs and strings from a seeded generator, position it exactly,
export its state or serve it over WebSocket. For example:
  pcg64dxsm draw -n 4 --state=0x0 --inc=0x1
  pcg64dxsm below 6 -n 10 --seed-hex=000102030405060708090a0b0c0d0e0f
  pcg64dxsm state --state=42 --inc=54 --position=1000000
  pcg64dxsm serve --listen=ws://0.0.0.0:8080/draws`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return logger.Configure(os.Stderr, viper.GetString("log-format"), viper.GetString("log-level"))
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logger.Log().Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.pcg64dxsm.yaml)")
	flags.String("state", "", "seed state (decimal, 0x-hex or bare hex); entropy when empty")
	flags.String("inc", "1", "seed increment, used with --state")
	flags.String("seed-hex", "", "16 or 32 seed bytes as hex")
	flags.String("position", "0", "seek to this position before drawing")
	flags.String("log-format", "console", "log format: console or json")
	flags.String("log-level", "info", "log level")

	for _, name := range []string{"state", "inc", "seed-hex", "position", "log-format", "log-level"} {
		viper.BindPFlag(name, flags.Lookup(name))
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			logger.Log().Warn().Err(err).Msg("no home directory")
			return
		}

		// Search config in home directory with name ".pcg64dxsm" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigName(".pcg64dxsm")
	}

	viper.SetEnvPrefix("PCG64DXSM")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		logger.Log().Debug().Str("file", viper.ConfigFileUsed()).Msg("using config file")
	}
}

// seedFromConfig picks the seed variant from --state/--inc, --seed-hex or
// falls back to entropy.
func seedFromConfig() (pcg64dxsm.Seed, error) {
	if state := viper.GetString("state"); state != "" {
		return pcg64dxsm.ParsePair(state, viper.GetString("inc"))
	}
	if s := viper.GetString("seed-hex"); s != "" {
		b, err := hex.DecodeString(strings.TrimPrefix(strings.ToLower(s), "0x"))
		if err != nil {
			return nil, fmt.Errorf("seed-hex: %w", err)
		}
		return pcg64dxsm.Bytes(b), nil
	}
	return pcg64dxsm.Entropy(), nil
}

// newGenerator builds the generator described by the persistent flags.
func newGenerator() (*pcg64dxsm.Generator, error) {
	seed, err := seedFromConfig()
	if err != nil {
		return nil, err
	}
	g, err := pcg64dxsm.New(pcg64dxsm.WithSeed(seed))
	if err != nil {
		return nil, err
	}

	pos, ok := new(big.Int).SetString(viper.GetString("position"), 10)
	if !ok {
		return nil, fmt.Errorf("invalid position %q", viper.GetString("position"))
	}
	g.Seek(pos)

	logger.Log().Debug().
		Str("increment", g.Increment().Hex()).
		Str("position", pos.String()).
		Msg("generator ready")
	return g, nil
}
