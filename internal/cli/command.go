package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"codeberg.org/snonux/milo/internal"
)

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "milo [words.csv]",
		Short: "French Flashcard Viewer",
		Long: `milo shows French/English flashcards from a CSV word list.

Each card shows the French word first and flips to the English
translation after a fixed delay. Click a button or press space to
advance to the next card.

Examples:
  milo french_words.csv             # View a word list
  milo -d words.csv --policy no-repeat
  milo words.csv --flip-delay 3s --seed 42`,
		Args:    cobra.MaximumNArgs(1),
		Version: internal.Version,
	}

	// Set up flags
	setupFlags(rootCmd, flags)

	return rootCmd
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	// Global flags
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.milo.yaml)")

	// Local flags
	cmd.Flags().StringVarP(&flags.DataFile, "data", "d", "", "CSV word list with French,English header columns")
	cmd.Flags().StringVarP(&flags.ThemeDir, "theme", "t", "", "Theme resource directory (default: built-in theme)")
	cmd.Flags().DurationVar(&flags.FlipDelay, "flip-delay", flags.FlipDelay, "Delay before a card auto-flips to its back")
	cmd.Flags().StringVar(&flags.Policy, "policy", flags.Policy, "Card selection policy: random, no-repeat or sequential")
	cmd.Flags().Int64Var(&flags.Seed, "seed", 0, "Random seed for card selection (0 = seed from the clock)")
	cmd.Flags().BoolVar(&flags.NoCache, "no-render-cache", false, "Disable card render memoization")

	// Theme flags
	cmd.Flags().StringVar(&flags.FrontTitle, "front-title", flags.FrontTitle, "Face title drawn on the card front")
	cmd.Flags().StringVar(&flags.BackTitle, "back-title", flags.BackTitle, "Face title drawn on the card back")
	cmd.Flags().StringVar(&flags.TitleColor, "title-color", flags.TitleColor, "Face title color (name or #rrggbb)")
	cmd.Flags().StringVar(&flags.WordColor, "word-color", flags.WordColor, "Word color (name or #rrggbb)")
	cmd.Flags().StringVar(&flags.Background, "background", flags.Background, "Window background color (name or #rrggbb)")

	// Bind flags to viper
	bindFlagsToViper(cmd.Flags())
}

func bindFlagsToViper(fs *pflag.FlagSet) {
	viper.BindPFlag("data.file", fs.Lookup("data"))
	viper.BindPFlag("theme.directory", fs.Lookup("theme"))
	viper.BindPFlag("card.flip_delay", fs.Lookup("flip-delay"))
	viper.BindPFlag("card.policy", fs.Lookup("policy"))
	viper.BindPFlag("card.seed", fs.Lookup("seed"))
	viper.BindPFlag("theme.front_title", fs.Lookup("front-title"))
	viper.BindPFlag("theme.back_title", fs.Lookup("back-title"))
	viper.BindPFlag("theme.title_color", fs.Lookup("title-color"))
	viper.BindPFlag("theme.word_color", fs.Lookup("word-color"))
	viper.BindPFlag("theme.background", fs.Lookup("background"))
}

// InitConfig initializes viper configuration
func InitConfig(cfgFile string) {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting home directory: %v\n", err)
			return
		}

		// Search config in home directory with name ".milo" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".milo")
	}

	// Environment variables
	viper.SetEnvPrefix("MILO")
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// DataFileFromConfig returns the word list path from the config file or
// environment when the flag was not set on the command line.
func DataFileFromConfig() string {
	return viper.GetString("data.file")
}
