package cmd

import (
	"fmt"
	"strings"

	"github.com/brogergvhs/mangaso/internal/config"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
)

var addFrom string

var configAddCmd = &cobra.Command{
	Use:   "add [label]",
	Short: "Create a new profile from the defaults or an existing YAML file",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var label string

		if len(args) == 1 {
			label = args[0]
		} else {
			prompt := promptui.Prompt{Label: "Label for new config"}
			in, err := prompt.Run()
			if err != nil {
				fmt.Println("Aborted.")
				return nil
			}
			label = in
		}
		label = strings.TrimSpace(label)

		if addFrom != "" {
			if err := config.AddConfig(label, addFrom); err != nil {
				return err
			}
			fmt.Printf("Added config %q from %s\n", label, addFrom)
			return nil
		}

		path, err := config.CreateEmptyConfig(label)
		if err != nil {
			return err
		}

		fmt.Printf("Created new config: %s\n", path)
		return nil
	},
}

func init() {
	configAddCmd.Flags().StringVar(&addFrom, "from", "", "copy an existing YAML config instead of the defaults")
	configCmd.AddCommand(configAddCmd)
}
