package main

import (
	"github.com/spf13/cobra"

	"github.com/everhub/taskmeta/pkg/composables"
)

func newSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Seed the built-in default taxonomy sets",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, pool, err := bootstrap(cmd.Context())
			if err != nil {
				return err
			}
			defer pool.Close()

			ctx := composables.WithPool(cmd.Context(), pool)
			return app.Seeder().Seed(ctx, app)
		},
	}
}
