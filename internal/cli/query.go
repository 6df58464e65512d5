package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ppiankov/kapa/internal/logger"
	"github.com/ppiankov/kapa/internal/pipeline"
)

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all languages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, pipeline.Command{Kind: pipeline.KindList})
		},
	}
}

func newSearchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "search <name>",
		Short: "Search for a specific language",
		Long: `Search lists every language whose name contains <name>, ignoring case.

Example:
  kapa search ru
  kapa search script -o json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, pipeline.Command{Kind: pipeline.KindSearch, Query: args[0]})
		},
	}
}

func newYearCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "year <year>",
		Short: "Display languages created in a specific year",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, err := strconv.ParseUint(args[0], 10, 32)
			if err != nil {
				return fmt.Errorf("invalid year %q: must be a non-negative integer", args[0])
			}
			return a.run(cmd, pipeline.Command{Kind: pipeline.KindYear, Year: uint32(year)})
		},
	}
}

func newCreatorCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "creator <name>",
		Short: "Display languages by creator",
		Long: `Creator lists every language with at least one creator whose name
contains <name>, ignoring case.

Example:
  kapa creator thompson`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, pipeline.Command{Kind: pipeline.KindCreator, Query: args[0]})
		},
	}
}

func newStatsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Display statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, pipeline.Command{Kind: pipeline.KindStats})
		},
	}
}

// run builds a pipeline from the resolved configuration and executes one query
func (a *app) run(cmd *cobra.Command, q pipeline.Command) error {
	cfg, err := a.config()
	if err != nil {
		return err
	}

	log := logger.New(cfg.Verbose, cmd.ErrOrStderr())
	p := pipeline.NewPipeline(cfg,
		pipeline.WithLogger(log),
		pipeline.WithNotices(cmd.ErrOrStderr()),
	)

	return p.Run(cmd.OutOrStdout(), q)
}
