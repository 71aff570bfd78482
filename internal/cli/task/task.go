package task

import "github.com/spf13/cobra"

// Commands returns the task verbs registered on the root command
func Commands() []*cobra.Command {
	return []*cobra.Command{
		ListInProgressCmd(),
		AddTaskCmd(),
		UpdateStatusCmd(),
	}
}
