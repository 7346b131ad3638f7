/*
Copyright Scoir Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/scoir/canis-exchange/pkg/agent"
	"github.com/scoir/canis-exchange/pkg/apiserver"
	"github.com/scoir/canis-exchange/pkg/controller"
)

var debug bool

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Starts the agent",
	Long:  `Starts the agent: consumes its endpoint queue and serves the admin API`,
	Run:   runStart,
}

func runStart(_ *cobra.Command, _ []string) {
	if debug {
		logrus.SetLevel(logrus.DebugLevel)
	}

	sctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := agent.NewAgent(sctx, ctx)
	if err != nil {
		logrus.WithError(err).Fatal("error initializing agent")
	}

	err = a.Start(sctx)
	if err != nil {
		logrus.WithError(err).Fatal("unable to start agent")
	}

	runner, err := controller.New(ctx, apiserver.New(a).Handler())
	if err != nil {
		logrus.WithError(err).Fatal("unable to start admin API")
	}

	err = runner.Launch(sctx)
	if err != nil {
		logrus.WithError(err).Fatal("launch errored")
	}

	logrus.Info("Shutdown")
}

func init() {
	rootCmd.AddCommand(startCmd)
	startCmd.Flags().BoolVar(&debug, "debug", false, "log protocol artifacts at debug level")
}
