package cmd

import (
	"errors"
	"fmt"

	"github.com/brogergvhs/mangaso/internal/app"
	"github.com/brogergvhs/mangaso/internal/client"
	"github.com/brogergvhs/mangaso/internal/config"
	"github.com/brogergvhs/mangaso/internal/ui"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
)

var flagProxyURL string

const (
	itemSearch = "[搜索]"
	itemQuit   = "[退出]"
	itemBack   = "[返回]"
)

func init() {
	browseCmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse hot comics, search and open details through the relay",
		RunE:  runBrowse,
	}

	browseCmd.Flags().StringVar(&flagProxyURL, "proxy", "", "relay base URL (default http://localhost:8787)")

	rootCmd.AddCommand(browseCmd)
}

func runBrowse(cmd *cobra.Command, _ []string) error {
	cfg, _, err := loadConfig(config.Options{ProxyURL: flagProxyURL})
	if err != nil {
		return err
	}

	logSvc := ui.NewLogger(cfg.Debug)
	logSvc.Debugf("Relay: %s\n", cfg.ProxyURL)

	ctx := cmd.Context()
	a := app.New(client.New(cfg.ProxyURL, cfg.Timeout), ui.NewTerminalView(nil, nil), logSvc)
	a.Start(ctx)

	for {
		st := a.State()

		if st.Pane == app.PaneDetail && st.Detail != nil {
			items := []string{itemBack}
			for _, ch := range st.Detail.Chapters {
				items = append(items, ch.Name)
			}

			idx, err := choose(st.Detail.Title, items)
			if err != nil {
				return quitOrFail(err)
			}
			if idx == 0 {
				a.Back()
				continue
			}

			a.OpenChapter(st.Detail.Chapters[idx-1])
			continue
		}

		items := []string{itemSearch}
		for _, c := range st.Comics {
			items = append(items, fmt.Sprintf("%s  (%s)", c.Name, c.DisplayAuthor()))
		}
		items = append(items, itemQuit)

		idx, err := choose("漫画", items)
		if err != nil {
			return quitOrFail(err)
		}

		switch {
		case idx == 0:
			prompt := promptui.Prompt{Label: "搜索"}
			keyword, err := prompt.Run()
			if err != nil {
				if errors.Is(err, promptui.ErrInterrupt) {
					continue
				}
				return quitOrFail(err)
			}
			a.Search(ctx, keyword)
		case idx == len(items)-1:
			return nil
		default:
			a.OpenComic(ctx, st.Comics[idx-1])
		}
	}
}

func choose(label string, items []string) (int, error) {
	sel := promptui.Select{
		Label: label,
		Items: items,
		Size:  15,
	}

	idx, _, err := sel.Run()
	return idx, err
}

// quitOrFail treats Ctrl-C and Ctrl-D as a normal exit.
func quitOrFail(err error) error {
	if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
		return nil
	}
	return err
}
