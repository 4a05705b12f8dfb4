package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/mholgate/shelfsearch/internal/cache"
	"github.com/mholgate/shelfsearch/internal/config"
	"github.com/mholgate/shelfsearch/internal/loader"
	"github.com/mholgate/shelfsearch/internal/locator"
	"github.com/mholgate/shelfsearch/internal/search"
)

// app holds the wired dependencies shared by all commands.
type app struct {
	cfg    *config.Config
	log    zerolog.Logger
	loader *loader.Loader
}

func newRootCmd(log zerolog.Logger) *cobra.Command {
	a := &app{log: log}

	root := &cobra.Command{
		Use:           "shelfsearch",
		Short:         "Fuzzy search over the local Atheneum library catalog",
		Version:       fmt.Sprintf("%s (built %s)", version, buildTime),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
	}

	root.AddCommand(newSearchCmd(a))
	root.AddCommand(newRefreshCmd(a))
	root.AddCommand(newPathCmd(a))
	return root
}

func (a *app) init() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	a.cfg = cfg

	store := cache.NewStore(cfg.CacheFile(), a.log)
	loc := locator.New(cfg.BaseDir, a.log)
	a.loader = loader.New(loc, store, cfg.CatalogPath, a.log)
	return nil
}

func newSearchCmd(a *app) *cobra.Command {
	var (
		limit   int
		refresh bool
	)

	cmd := &cobra.Command{
		Use:   "search [query...]",
		Short: "Search catalog resources by title, author, abbreviation, or id",
		Long: "Search loads the catalog (from cache when the source file is unchanged)\n" +
			"and ranks resources against the query. Without a query it lists the\n" +
			"catalog head in title order.",
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.loader.Load(cmd.Context(), refresh)
			if err != nil {
				return err
			}

			ix := search.NewIndex(res.Records, search.Options{
				Threshold: a.cfg.FuzzyThreshold,
				PageSize:  search.DefaultPageSize,
			})
			hits := ix.Search(strings.Join(args, " "), limit)

			if len(hits) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no matches")
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 4, 2, ' ', 0)
			for _, r := range hits {
				author := r.Author
				if author == "" {
					author = "-"
				}
				abbrev := r.Abbrev
				if abbrev == "" {
					abbrev = "-"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", r.ID, r.Title, author, abbrev)
			}
			return w.Flush()
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "maximum results per page (0 uses the default page size)")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "rebuild the catalog cache before searching")
	return cmd
}

func newRefreshCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "refresh",
		Short: "Re-extract the catalog, bypassing and rewriting the cache",
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.loader.Refresh(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "rebuilt catalog cache: %d resources from %s\n",
				len(res.Records), res.SourcePath)
			return nil
		},
	}
}

func newPathCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the resolved catalog database path",
		RunE: func(cmd *cobra.Command, args []string) error {
			loc, err := a.loader.Resolve()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), loc.Path)
			return nil
		},
	}
}
