package main

import (
	"context"

	"github.com/spf13/cobra"
)

var seedMembers int

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create ATEAM, BTEAM and sample members",
	Long: `Creates teams ATEAM and BTEAM and members member1..memberN aged i+10,
even i in ATEAM and odd i in BTEAM. Fails if the teams already exist.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := setup()
		if err != nil {
			return err
		}

		ctx := context.Background()
		b, err := openBackend(ctx, cfg, logger)
		if err != nil {
			return err
		}
		defer b.close()

		if err := b.migrateUp(logger); err != nil {
			return err
		}

		n := cfg.Seed.Members
		if cmd.Flags().Changed("members") {
			n = seedMembers
		}
		return b.seeder(logger).Run(ctx, n)
	},
}

func init() {
	seedCmd.Flags().IntVar(&seedMembers, "members", 0, "number of members to create (default: seed.members)")
	rootCmd.AddCommand(seedCmd)
}
