package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/jetup/internal/catalog"
)

var stepsCmd = &cobra.Command{
	Use:   "steps",
	Short: "List the plan's steps",
	Long: `Steps prints the index and description of every registered step and
exits. The progress marker is not read or written.`,
	RunE: runSteps,
}

func init() {
	rootCmd.AddCommand(stepsCmd)
}

func runSteps(cmd *cobra.Command, _ []string) error {
	plan, err := catalog.Load(planFile)
	if err != nil {
		return &usageError{err: err}
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, styleTitle.Render("Registered steps"))
	for i, def := range plan.Steps {
		marker := ""
		if def.RequiresReboot {
			marker = " " + styleWarning.Render("(reboot)")
		}
		fmt.Fprintf(out, "%s %s%s\n", styleIndex.Render(fmt.Sprintf("%3d.", i+1)), def.Description, marker)
	}
	return nil
}
