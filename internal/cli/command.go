package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"codeberg.org/snonux/koelner/internal"
)

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "koelner [words...]",
		Short: "Cologne phonetics encoder and phonetic word index",
		Long: `koelner encodes German text into Cologne phonetics codes.

Words that are pronounced alike map to the same code, so the codes can
be used to find a name in a list no matter how it was spelled. Codes
can optionally be kept in a SQLite index for sounds-like lookups.

Examples:
  koelner Müller                       # Print the code for one word
  koelner < text.txt                   # Encode stdin
  koelner --batch names.txt            # Encode a word list
  koelner --index names.db --add --batch names.txt
  koelner --index names.db --lookup Mueller`,
		Version: internal.Version,
	}

	// Set up flags
	setupFlags(rootCmd, flags)

	return rootCmd
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	// Global flags
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.koelner.yaml)")

	// Local flags
	cmd.Flags().StringVarP(&flags.InputFile, "file", "f", "", "Encode the contents of a file instead of arguments")
	cmd.Flags().StringVar(&flags.BatchFile, "batch", "", "Process words from file (one per line, # comments)")
	cmd.Flags().BoolVar(&flags.ShowCodes, "codes", false, "Print codes as space-separated class numbers instead of the compact string")

	// Index flags
	cmd.Flags().StringVar(&flags.IndexPath, "index", "", "Path to the phonetic index database")
	cmd.Flags().BoolVar(&flags.AddWords, "add", false, "Add words to the index instead of printing codes")
	cmd.Flags().BoolVar(&flags.Lookup, "lookup", false, "Look up words that sound like the given ones")
	cmd.Flags().BoolVar(&flags.ListWords, "list", false, "List all indexed words and their codes")
	cmd.Flags().BoolVar(&flags.Remove, "remove", false, "Remove the given words from the index")

	// Explain flags
	cmd.Flags().BoolVar(&flags.Explain, "explain", false, "Fetch an IPA pronunciation breakdown via OpenAI")
	cmd.Flags().StringVar(&flags.OpenAIModel, "openai-model", flags.OpenAIModel, "OpenAI model for --explain")
	cmd.Flags().IntVar(&flags.ExplainMaxTok, "explain-max-tokens", flags.ExplainMaxTok, "Response token limit for --explain")

	// Bind flags to viper
	bindFlagsToViper(cmd)
}

func bindFlagsToViper(cmd *cobra.Command) {
	viper.BindPFlag("index.path", cmd.Flags().Lookup("index"))
	viper.BindPFlag("output.codes", cmd.Flags().Lookup("codes"))
	viper.BindPFlag("explain.openai_model", cmd.Flags().Lookup("openai-model"))
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

		// Search config in home directory with name ".koelner" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".koelner")
	}

	// Environment variables
	viper.SetEnvPrefix("KOELNER")
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// GetOpenAIKey retrieves the OpenAI API key from environment or config
func GetOpenAIKey() string {
	// First check environment variable
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		return key
	}

	// Then check config file
	return viper.GetString("explain.openai_key")
}
