/*
Copyright Scoir Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/scoir/canis-exchange/pkg/config"
	"github.com/scoir/canis-exchange/pkg/framework/context"
)

var (
	cfgFile       string
	datastoreFile string
	ledgerFile    string
	amqpFile      string
)

var ctx *context.Provider

var rootCmd = &cobra.Command{
	Use:   "canis-exchange",
	Short: "The canis credential and proof exchange agent.",
	Long: `"The canis credential and proof exchange agent.

 Issues Indy credentials to, and requests proofs from, agents it holds a pairwise relationship with.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is /etc/canis/canis-exchange.yaml)")
	rootCmd.PersistentFlags().StringVar(&datastoreFile, "datastore-config", "", "separate datastore config file")
	rootCmd.PersistentFlags().StringVar(&ledgerFile, "ledger-config", "", "separate ledger config file")
	rootCmd.PersistentFlags().StringVar(&amqpFile, "amqp-config", "", "separate AMQP config file")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	vp := &config.ViperConfigProvider{
		DefaultConfigName: "canis-exchange",
	}

	conf := vp.Load(cfgFile)
	if datastoreFile != "" {
		conf = conf.WithDatastore(config.WithFile(datastoreFile))
	}
	if ledgerFile != "" {
		conf = conf.WithLedger(config.WithFile(ledgerFile))
	}
	if amqpFile != "" {
		conf = conf.WithAMQP(config.WithFile(amqpFile))
	}

	ctx = context.NewProvider(conf)
}
