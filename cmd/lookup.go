package cmd

import (
	"fmt"
	"strings"

	"github.com/brogergvhs/mangaso/internal/client"
	"github.com/brogergvhs/mangaso/internal/comics"
	"github.com/brogergvhs/mangaso/internal/config"
	"github.com/brogergvhs/mangaso/internal/ui"

	"github.com/spf13/cobra"
)

var (
	flagRange        string
	flagList         string
	flagExcludeRange string
	flagExcludeList  string
)

func init() {
	searchCmd := &cobra.Command{
		Use:   "search <keyword>",
		Short: "Search comics through the relay and print the list",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			keyword := strings.TrimSpace(strings.Join(args, " "))
			if keyword == "" {
				return nil
			}

			c, err := newRelayClient()
			if err != nil {
				return err
			}

			list, err := c.Search(cmd.Context(), keyword)
			if err != nil {
				return err
			}

			fmt.Print(ui.FormatList(list))
			return nil
		},
	}

	hotCmd := &cobra.Command{
		Use:   "hot",
		Short: "Print the hot comic list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newRelayClient()
			if err != nil {
				return err
			}

			list, err := c.Hot(cmd.Context())
			if err != nil {
				return err
			}

			for _, comic := range list {
				fmt.Printf("%s\t%s\n", comic.Name, comic.DetailURL)
			}
			return nil
		},
	}

	detailCmd := &cobra.Command{
		Use:   "detail <url>",
		Short: "Print a comic's detail and chapters",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newRelayClient()
			if err != nil {
				return err
			}

			d, err := c.Detail(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			d.Chapters = comics.SelectChapters(d.Chapters, comics.Selection{
				Range:        flagRange,
				List:         flagList,
				ExcludeRange: flagExcludeRange,
				ExcludeList:  flagExcludeList,
			})
			fmt.Print(ui.FormatDetail(d))
			return nil
		},
	}
	detailCmd.Flags().StringVar(&flagRange, "range", "", "only show chapters in a 1-based range (e.g. 5-12)")
	detailCmd.Flags().StringVar(&flagList, "list", "", "only show specific chapter indices (e.g. 1,3,5)")
	detailCmd.Flags().StringVar(&flagExcludeRange, "exclude-range", "", "hide chapters in a 1-based range (e.g. 1-3)")
	detailCmd.Flags().StringVar(&flagExcludeList, "exclude-list", "", "hide specific chapter indices (e.g. 2,4)")

	for _, c := range []*cobra.Command{searchCmd, hotCmd, detailCmd} {
		c.Flags().StringVar(&flagProxyURL, "proxy", "", "relay base URL (default http://localhost:8787)")
		rootCmd.AddCommand(c)
	}
}

func newRelayClient() (*client.Client, error) {
	cfg, _, err := loadConfig(config.Options{ProxyURL: flagProxyURL})
	if err != nil {
		return nil, err
	}

	return client.New(cfg.ProxyURL, cfg.Timeout), nil
}
