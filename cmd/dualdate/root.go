package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:           "dualdate",
		Short:         "Inspect and convert offset-free API timestamps",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	cmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		logger.SetOutput(cmd.ErrOrStderr())
		if verbose {
			logger.SetLevel(logrus.DebugLevel)
		}
	}

	cmd.AddCommand(newShowCmd(logger))
	cmd.AddCommand(newConvertCmd(logger))
	return cmd
}

func execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "dualdate:", err.Error())
		os.Exit(1)
	}
}
