package main

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/labelsynth/labelsynth/pkg/version"
)

func main() {
	logger := log.New()

	var rootCmd = &cobra.Command{
		Use:   "labelsynth",
		Short: "labelsynth",
		Long:  `Synthesizes filter programs that reproduce the precise labels of annotated images.`,

		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if debug, _ := cmd.Flags().GetBool("debug"); debug {
				logger.SetLevel(log.DebugLevel)
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(newSynthesizeCmd(logger))
	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the labelsynth version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprint(cmd.OutOrStdout(), version.String())
		},
	})

	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	if err := rootCmd.PersistentFlags().MarkHidden("debug"); err != nil {
		logger.Panic(err.Error())
	}

	if err := rootCmd.Execute(); err != nil {
		logger.Fatal(err)
	}
}
