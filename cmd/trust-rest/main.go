/*
Copyright Trustmesh Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package trust-rest Agent trust REST API.
//
// Terms Of Service:
//
//	Schemes: http, https
//	Version: 0.1.0
//	License: SPDX-License-Identifier: Apache-2.0
//
//	Consumes:
//	- application/json
//
//	Produces:
//	- application/json
//
// swagger:meta
package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/trustmesh/agenttrust/cmd/trust-rest/startcmd"
)

var logger = log.New("trust-rest")
var Version string // will be embedded during build

func main() {
	rootCmd := &cobra.Command{
		Use: "trust-rest",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.HelpFunc()(cmd, args)
		},
	}

	rootCmd.AddCommand(startcmd.GetStartCmd(&startcmd.HTTPServer{},
		startcmd.WithVersion(Version),
		startcmd.WithServerVersion(os.Getenv("TRUST_SERVER_VERSION")),
	))

	if err := rootCmd.Execute(); err != nil {
		logger.Fatal("Failed to run trust-rest", log.WithError(err))
	}
}
