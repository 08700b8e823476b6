// Copyright 2021-present The Atlas Authors. All rights reserved.
// This source code is licensed under the Apache 2.0 license found
// in the LICENSE file in the root directory of this source tree.

package main

import (
	"context"
	"os"
	"os/signal"

	"ariga.io/structwire/cmd/structwire/internal/cmdapi"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	cmdapi.Root.SetOut(os.Stdout)
	if err := cmdapi.Root.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
