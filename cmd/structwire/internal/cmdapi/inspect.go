// Copyright 2021-present The Atlas Authors. All rights reserved.
// This source code is licensed under the Apache 2.0 license found
// in the LICENSE file in the root directory of this source tree.

package cmdapi

import (
	"ariga.io/structwire/cmd/structwire/internal/cmdlog"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func inspectCmd() *cobra.Command {
	var flags targetFlags
	cmd := &cobra.Command{
		Use:   "inspect [flags]",
		Short: "Print the wire layout of the structs of a schema file.",
		Example: `  structwire inspect --src structs.h
  structwire inspect --env protocol`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			targets, logc, err := selectTargets(&flags)
			if err != nil {
				return err
			}
			logger, err := cmdlog.NewLogger(logc, cmd.OutOrStdout(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer logger.Sync()
			for _, t := range targets {
				r := cmdlog.NewReporter(logger.With(zap.String("src", t.Src)))
				plans, err := loadPlans(t.Src, r)
				if err != nil {
					return err
				}
				if err := cmdlog.InspectTemplate.Execute(cmd.OutOrStdout(), &cmdlog.InspectReport{Plans: plans, Diags: r.Count()}); err != nil {
					return err
				}
			}
			return nil
		},
	}
	addFlagSrc(cmd.Flags(), &flags.src)
	addGlobalFlags(cmd.Flags())
	cmd.MarkFlagsMutuallyExclusive(flagSrc, flagEnv)
	cmd.MarkFlagsMutuallyExclusive(flagSrc, flagConfig)
	return cmd
}
