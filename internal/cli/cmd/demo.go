package cmd

import (
	"github.com/spf13/cobra"

	"dashring/internal/scenario"
	"dashring/internal/ui"
)

func newDemoCmd() *cobra.Command {
	var outcome string

	cmd := &cobra.Command{
		Use:           "demo",
		Short:         "Play a scripted download scenario",
		Long:          "Runs one of the scripted scenarios against the indicator: success downloads to 100%, failure dies at the halfway mark, unknown errors out immediately. Without --outcome the demo starts idle and the s/f/u keys pick the scenario.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts := optionsFromViper()
			opts.Outcome = outcome

			var src ui.Source
			if outcome != "" {
				plan, err := scenario.ForOutcome(outcome)
				if err != nil {
					return &ExitError{Code: ExitCLIError, Err: err}
				}
				src = plan.Run
			}
			return ui.Run(cmd.Context(), opts, src)
		},
	}

	cmd.Flags().StringVarP(&outcome, "outcome", "O", "",
		"Scenario to play immediately: success, failure, or unknown")
	_ = cmd.RegisterFlagCompletionFunc("outcome",
		func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
			return scenario.Outcomes(), cobra.ShellCompDirectiveNoFileComp
		})

	return cmd
}
