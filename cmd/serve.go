package cmd

import (
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/colocohen/pcg64dxsm/counter/period"
	"github.com/colocohen/pcg64dxsm/logger"
	"github.com/colocohen/pcg64dxsm/stream"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve draws over WebSocket",
	Long: `Serve draws over WebSocket. Every connection gets its own generator,
jumped from the seeded root, For example:
  pcg64dxsm serve --listen=ws://0.0.0.0:8080/draws --state=42`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := newGenerator()
		if err != nil {
			return err
		}
		s, err := stream.NewServer(
			stream.WithListenAddress(viper.GetString("serve.listen")),
			stream.WithGenerator(g),
			stream.WithServedCounter(period.New(time.Second)),
		)
		if err != nil {
			return err
		}

		// backoff
		var tempDelay time.Duration
		for {
			if err := s.ListenAndServe(); err != nil {
				if tempDelay == 0 {
					tempDelay = 5 * time.Millisecond
				} else {
					tempDelay *= 2
				}
				if max := 1 * time.Second; tempDelay > max {
					tempDelay = max
				}
				logger.Log().Error().Err(err).Dur("retry", tempDelay).Msg("stream server stopped")
				time.Sleep(tempDelay)
				continue
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	flags := serveCmd.Flags()
	flags.StringP("listen", "l", stream.DefaultListenAddress, "websocket listen address")
	viper.BindPFlag("serve.listen", flags.Lookup("listen"))
}
