package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/brogergvhs/mangaso/internal/config"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
)

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the Default profile and make it active",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("Default configuration:")
		config.DefaultConfig().Print()
		fmt.Println()

		confirm := promptui.Prompt{
			Label:     "Create Default profile in " + config.ConfigsDir(),
			IsConfirm: true,
		}
		if _, err := confirm.Run(); err != nil {
			fmt.Println("Aborted.")
			return nil
		}

		path, err := config.InitDefaultConfig()
		if errors.Is(err, os.ErrExist) {
			fmt.Println("Default profile already exists at:", path)
			fmt.Println("It is now active. Use `mangaso config reset` to recreate it.")
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to create default profile: %w", err)
		}

		fmt.Println("Config created at:", path)
		fmt.Println("This config is now active (label: Default).")
		return nil
	},
}

func init() {
	configCmd.AddCommand(configInitCmd)
}
