package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathpath/internal/curriculum"
	"github.com/abhisek/mathpath/internal/ui/theme"
)

var topicsCmd = &cobra.Command{
	Use:   "topics",
	Short: "List the topics taught at each grade",
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, err := loadCatalog()
		if err != nil {
			return err
		}

		grades := catalog.Grades()
		if g, _ := cmd.Flags().GetString("grade"); g != "" {
			grade, err := curriculum.ParseGrade(g)
			if err != nil {
				return err
			}
			grades = []curriculum.GradeLevel{grade}
		}

		out := cmd.OutOrStdout()
		for _, g := range grades {
			fmt.Fprintln(out, theme.Title.Render(g.DisplayName()))
			topics := catalog.TopicsForGrade(g)
			if len(topics) == 0 {
				fmt.Fprintln(out, theme.Hint.Render("  no topics"))
				continue
			}
			for _, t := range topics {
				fmt.Fprintf(out, "  %s %s\n", theme.ID.Render(string(t)), theme.Hint.Render(t.DisplayName()))
			}
		}
		return nil
	},
}

var lessonsCmd = &cobra.Command{
	Use:   "lessons",
	Short: "List lessons for a topic",
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, err := loadCatalog()
		if err != nil {
			return err
		}

		t, _ := cmd.Flags().GetString("topic")
		topic, err := curriculum.ParseTopic(t)
		if err != nil {
			return err
		}
		var grade *curriculum.GradeLevel
		if g, _ := cmd.Flags().GetString("grade"); g != "" {
			parsed, err := curriculum.ParseGrade(g)
			if err != nil {
				return err
			}
			grade = &parsed
		}

		lessons := catalog.LessonsForTopic(topic, grade)
		out := cmd.OutOrStdout()
		if len(lessons) == 0 {
			fmt.Fprintln(out, theme.Hint.Render("No lessons for "+topic.DisplayName()))
			return nil
		}
		for _, l := range lessons {
			fmt.Fprintf(out, "%s  %s %s\n",
				theme.ID.Render(l.ID),
				theme.Body.Render(l.Title),
				theme.Hint.Render(fmt.Sprintf("(%s, %d min)", l.GradeLevel.DisplayName(), l.DurationMinutes)))
			if len(l.Objectives) > 0 {
				fmt.Fprintln(out, theme.Hint.Render("    "+strings.Join(l.Objectives, "; ")))
			}
		}
		return nil
	},
}

func init() {
	topicsCmd.Flags().String("grade", "", "Only show this grade (K, 1..12)")

	lessonsCmd.Flags().String("topic", "", "Topic id, e.g. fractions")
	lessonsCmd.Flags().String("grade", "", "Only lessons for this grade")
	_ = lessonsCmd.MarkFlagRequired("topic")
}
