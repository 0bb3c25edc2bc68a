package cmd

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/keycoach/keycoach/pkg/content"
	"github.com/keycoach/keycoach/pkg/secrand"
	"github.com/keycoach/keycoach/pkg/tui"
)

var (
	practiceLength  int
	practiceClasses []string
	practiceLesson  string
)

// practiceCmd launches the interactive TUI session.
var practiceCmd = &cobra.Command{
	Use:   "practice",
	Short: "Launch the interactive practice session",
	Long: `Launch an interactive terminal session with three tabs: generate
passwords, rate candidates as you type, and take the curriculum quiz.

Key bindings:
  Tab / Shift+Tab  Move between tabs
  1 / 2 / 3        Jump directly to Generate / Rate / Quiz
  j / k            Move the cursor
  space / enter    Toggle or confirm
  q / Ctrl+C       Quit`,
	RunE: func(cmd *cobra.Command, args []string) error {
		lib, err := loadLibrary()
		if err != nil {
			return err
		}
		length := practiceLength
		if length == 0 {
			length = cfg.DefaultLength
		}
		classes, err := resolveClasses(practiceClasses)
		if err != nil {
			return err
		}

		var questions []content.Question
		if practiceLesson != "" {
			lesson, err := lib.Lesson(practiceLesson)
			if err != nil {
				return err
			}
			questions = lesson.Questions
		}

		p := tea.NewProgram(tui.New(lib, tui.Options{
			Length:    length,
			Classes:   classes,
			Source:    secrand.Crypto(),
			Questions: questions,
		}), tea.WithAltScreen())
		_, err = p.Run()
		return err
	},
}

func init() {
	practiceCmd.Flags().IntVarP(&practiceLength, "length", "l", 0, "starting password length (default from config, 16)")
	practiceCmd.Flags().StringSliceVarP(&practiceClasses, "classes", "c", nil, "starting character classes (default from config)")
	practiceCmd.Flags().StringVar(&practiceLesson, "lesson", "", "quiz only the questions of one lesson id")
	rootCmd.AddCommand(practiceCmd)
}
