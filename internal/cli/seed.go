package cli

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/hbnb/rental-directory/internal/core/domain"
	"github.com/hbnb/rental-directory/internal/core/ports"
	"github.com/hbnb/rental-directory/internal/core/service"
	"github.com/hbnb/rental-directory/internal/infrastructure/memory"
	"github.com/hbnb/rental-directory/internal/infrastructure/seed"
)

func newSeedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Work with YAML seed fixtures",
	}
	cmd.AddCommand(newSeedValidateCmd())
	return cmd
}

// newSeedValidateCmd loads a fixture into a throwaway in-memory facade so
// every entry goes through the same rules the API enforces.
func newSeedValidateCmd() *cobra.Command {
	var textMax int

	cmd := &cobra.Command{
		Use:   "validate <file>",
		Short: "Check that a seed fixture loads cleanly",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if textMax < 0 {
				return fmt.Errorf("--review-text-max must be >= 0, got %d", textMax)
			}
			facade := service.NewFacade(
				memory.NewRepositories(),
				domain.ReviewPolicy{TextMax: textMax},
				ports.NopMetrics{},
				zerolog.Nop(),
			)
			stats, err := seed.ApplyFile(cmd.Context(), facade, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "OK: %d users, %d amenities, %d places, %d reviews\n",
				stats.Users, stats.Amenities, stats.Places, stats.Reviews)
			return nil
		},
	}

	cmd.Flags().IntVar(&textMax, "review-text-max", domain.DefaultReviewTextMax, "review text cap to validate against (0 disables)")
	return cmd
}
