package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// lessonRow is one curriculum entry in the lesson list.
type lessonRow struct {
	ID        string `json:"id" yaml:"id"`
	Title     string `json:"title" yaml:"title"`
	Questions int    `json:"questions" yaml:"questions"`
	Summary   string `json:"summary" yaml:"summary"`
}

type lessonList []lessonRow

func (lessonList) Headers() []string {
	return []string{"id", "title", "questions", "summary"}
}

func (ls lessonList) Rows() [][]string {
	out := make([][]string, 0, len(ls))
	for _, l := range ls {
		out = append(out, []string{l.ID, l.Title, strconv.Itoa(l.Questions), l.Summary})
	}
	return out
}

var lessonCmd = &cobra.Command{
	Use:   "lesson",
	Short: "Browse the coaching curriculum",
	Long:  "List and read the password coaching lessons bundled with keycoach.",
}

var lessonListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all lessons",
	RunE: func(cmd *cobra.Command, args []string) error {
		lib, err := loadLibrary()
		if err != nil {
			return err
		}
		rows := make(lessonList, 0, lib.Len())
		for _, l := range lib.Lessons() {
			rows = append(rows, lessonRow{
				ID:        l.ID,
				Title:     l.Title,
				Questions: len(l.Questions),
				Summary:   l.Summary,
			})
		}
		fmt.Fprint(cmd.OutOrStdout(), formatter.Format(rows))
		return nil
	},
}

var lessonShowCmd = &cobra.Command{
	Use:   "show <lesson-id>",
	Short: "Read one lesson",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		lib, err := loadLibrary()
		if err != nil {
			return err
		}
		lesson, err := lib.Lesson(args[0])
		if err != nil {
			return err
		}

		// Lesson bodies are prose; the table formatter is for rows.
		if cfg.OutputFormat == "json" || cfg.OutputFormat == "yaml" {
			fmt.Fprint(cmd.OutOrStdout(), formatter.Format(lesson))
			return nil
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s\n\n%s", lesson.Title, lesson.Body)
		if lesson.Takeaway != "" {
			fmt.Fprintf(out, "\nTakeaway: %s\n", lesson.Takeaway)
		}
		if n := len(lesson.Questions); n > 0 {
			fmt.Fprintf(out, "\nThis lesson has %d quiz question(s). Try them with: keycoach practice --lesson %s\n", n, lesson.ID)
		}
		return nil
	},
}

func init() {
	lessonCmd.AddCommand(lessonListCmd)
	lessonCmd.AddCommand(lessonShowCmd)
	rootCmd.AddCommand(lessonCmd)
}
