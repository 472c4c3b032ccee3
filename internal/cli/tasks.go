package cli

import (
	"strings"

	"github.com/spf13/cobra"
)

func tasksCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "tasks",
		Aliases: []string{"task"},
		Short:   "List, add and move tasks",
	}

	var statusFilter string
	list := &cobra.Command{
		Use:   "list",
		Short: "List tasks by due date",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if statusFilter != "" {
				normalized, err := normalizeStatus(statusFilter)
				if err != nil {
					return err
				}
				statusFilter = normalized
			}
			tasks, err := a.client.ListTasksByStatus(cmd.Context(), statusFilter)
			if err != nil {
				return err
			}
			printTasks(cmd.OutOrStdout(), tasks)
			return nil
		},
	}
	list.Flags().StringVar(&statusFilter, "status", "", "only show tasks in this status (todo, doing, done)")
	cmd.AddCommand(list)

	cmd.AddCommand(&cobra.Command{
		Use:   "add <title>",
		Short: "Create a task due now",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			task, err := a.client.CreateTask(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			ok.Fprintf(cmd.OutOrStdout(), "Task created (%s)\n", task.Id)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "status <id> <Todo|Doing|Done>",
		Short: "Move a task to another status",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			status, err := normalizeStatus(args[1])
			if err != nil {
				return err
			}
			task, err := a.client.UpdateTaskStatus(cmd.Context(), id, status)
			if err != nil {
				return err
			}
			ok.Fprintf(cmd.OutOrStdout(), "%s is now %s\n", task.Title, task.Status)
			return nil
		},
	})

	return cmd
}
