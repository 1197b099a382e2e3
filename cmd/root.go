package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "spidy",
		Short:         "Spidy: a wake-word voice command interpreter",
		Long:          "spidy listens for the wake word, matches the next spoken command against a catalog of templates, speaks a reply and opens the app or web page it names.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newListenCmd(app),
		newMatchCmd(app),
		newTemplatesCmd(app),
		newSayCmd(app),
	)

	return rootCmd
}
