package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/theirongolddev/lifedash/internal/cli"
	"github.com/theirongolddev/lifedash/internal/model"

	"github.com/spf13/cobra"
)

var flagClearDone bool

var todoCmd = &cobra.Command{
	Use:     "todo",
	Aliases: []string{"todos"},
	Short:   "Manage today's to-do list",
	Args:    cobra.NoArgs,
	RunE:    runTodoList,
}

var todoListCmd = &cobra.Command{
	Use:   "list",
	Short: "List to-dos",
	Args:  cobra.NoArgs,
	RunE:  runTodoList,
}

var todoAddCmd = &cobra.Command{
	Use:   "add <text...>",
	Short: "Add a to-do",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runTodoAdd,
}

var todoDoneCmd = &cobra.Command{
	Use:   "done <n>",
	Short: "Toggle to-do n between done and open",
	Args:  cobra.ExactArgs(1),
	RunE:  runTodoDone,
}

var todoRmCmd = &cobra.Command{
	Use:     "rm <n>",
	Aliases: []string{"delete"},
	Short:   "Delete to-do n",
	Args:    cobra.ExactArgs(1),
	RunE:    runTodoRm,
}

var todoClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all to-dos",
	Args:  cobra.NoArgs,
	RunE:  runTodoClear,
}

func init() {
	todoClearCmd.Flags().BoolVar(&flagClearDone, "done", false, "Only remove completed to-dos")

	todoCmd.AddCommand(todoListCmd, todoAddCmd, todoDoneCmd, todoRmCmd, todoClearCmd)
	rootCmd.AddCommand(todoCmd)
}

func runTodoList(_ *cobra.Command, _ []string) error {
	return withSession(func(s *session) error {
		todos, err := s.svc.Todos()
		if err != nil {
			return err
		}
		printTodos(todos)
		return nil
	})
}

func runTodoAdd(_ *cobra.Command, args []string) error {
	text := strings.Join(args, " ")
	return withSession(func(s *session) error {
		before, err := s.svc.Todos()
		if err != nil {
			return err
		}
		todos, err := s.svc.AddTodo(text)
		if err != nil {
			return err
		}
		if len(todos) == len(before) {
			logf("  Nothing to add\n")
		}
		printTodos(todos)
		return nil
	})
}

func runTodoDone(_ *cobra.Command, args []string) error {
	return todoAt(args[0], func(s *session, i int) ([]model.Todo, error) {
		return s.svc.ToggleTodo(i)
	})
}

func runTodoRm(_ *cobra.Command, args []string) error {
	return todoAt(args[0], func(s *session, i int) ([]model.Todo, error) {
		return s.svc.DeleteTodo(i)
	})
}

func runTodoClear(_ *cobra.Command, _ []string) error {
	return withSession(func(s *session) error {
		todos, err := s.svc.ClearTodos(flagClearDone)
		if err != nil {
			return err
		}
		printTodos(todos)
		return nil
	})
}

// todoAt runs op against the 0-based index of a 1-based CLI argument.
// Indices past the end are passed through; the list treats them as no-ops.
func todoAt(arg string, op func(*session, int) ([]model.Todo, error)) error {
	idx, err := parseIndex(arg)
	if err != nil {
		return err
	}
	return withSession(func(s *session) error {
		before, err := s.svc.Todos()
		if err != nil {
			return err
		}
		if idx >= len(before) {
			logf("  No to-do #%d\n", idx+1)
		}
		todos, err := op(s, idx)
		if err != nil {
			return err
		}
		printTodos(todos)
		return nil
	})
}

// parseIndex converts a 1-based position to a 0-based index.
func parseIndex(arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("to-do number %q: want a positive whole number", arg)
	}
	return n - 1, nil
}

func printTodos(todos []model.Todo) {
	fmt.Println()
	if len(todos) == 0 {
		fmt.Println("  No to-dos yet. Add one with `lifedash todo add <text>`.")
		fmt.Println()
		return
	}

	done := 0
	rows := make([][]string, 0, len(todos))
	for i, t := range todos {
		if t.Done {
			done++
		}
		rows = append(rows, []string{strconv.Itoa(i + 1), cli.FormatCheck(t.Done), cli.Truncate(t.Text, 60)})
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Title:      fmt.Sprintf("To-dos  %d/%d done", done, len(todos)),
		Headers:    []string{"#", "", "Task"},
		Rows:       rows,
		RightAlign: []int{0},
	}))
}
