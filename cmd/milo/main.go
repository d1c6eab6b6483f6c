package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"codeberg.org/snonux/milo/internal/cli"
	"codeberg.org/snonux/milo/internal/gui"
	"codeberg.org/snonux/milo/internal/render"
)

func main() {
	// Create flags instance
	flags := cli.NewFlags()

	// Create root command
	rootCmd := cli.CreateRootCommand(flags)

	// Set up command initialization
	cobra.OnInitialize(func() {
		cli.InitConfig(flags.CfgFile)
	})

	// Set the run function
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runCommand(cmd, args, flags)
	}

	// Execute command
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runCommand(cmd *cobra.Command, args []string, flags *cli.Flags) error {
	// The positional argument wins over --data and the config file
	if len(args) > 0 {
		flags.DataFile = args[0]
	}
	if flags.DataFile == "" && !cmd.Flags().Changed("data") {
		flags.DataFile = cli.DataFileFromConfig()
	}
	if flags.DataFile == "" {
		return fmt.Errorf("no word list given (pass a CSV path or set data.file in the config)")
	}

	spec := render.DefaultSpec()
	spec.FrontTitle = flags.FrontTitle
	spec.BackTitle = flags.BackTitle
	spec.TitleColor = flags.TitleColor
	spec.WordColor = flags.WordColor

	app, err := gui.New(&gui.Config{
		DataFile:     flags.DataFile,
		ThemeDir:     flags.ThemeDir,
		FlipDelay:    flags.FlipDelay,
		Policy:       flags.Policy,
		Seed:         flags.Seed,
		Spec:         spec,
		Background:   flags.Background,
		DisableCache: flags.NoCache,
	})
	if err != nil {
		return err
	}

	app.Run()
	return nil
}
