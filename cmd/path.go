package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"maps"
	"slices"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathpath/internal/curriculum"
	"github.com/abhisek/mathpath/internal/learningpath"
	"github.com/abhisek/mathpath/internal/prediction"
	"github.com/abhisek/mathpath/internal/store"
	"github.com/abhisek/mathpath/internal/ui/components"
	"github.com/abhisek/mathpath/internal/ui/theme"
)

var errPathNotFound = errors.New("learning path not found")

var pathCmd = &cobra.Command{
	Use:   "path",
	Short: "Create and follow adaptive learning paths",
}

// pathSession bundles what every path subcommand needs.
type pathSession struct {
	catalog *curriculum.Catalog
	engine  *learningpath.Engine
	store   *store.Store
	repo    store.PathRepo
}

func openPathSession() (*pathSession, error) {
	catalog, err := loadCatalog()
	if err != nil {
		return nil, err
	}
	st, err := openStore()
	if err != nil {
		return nil, err
	}
	engine := learningpath.New(catalog, cfg.Path,
		learningpath.WithPredictor(prediction.DefaultMasteryModel()))
	return &pathSession{catalog: catalog, engine: engine, store: st, repo: st.PathRepo()}, nil
}

func (s *pathSession) Close() error { return s.store.Close() }

func (s *pathSession) load(cmd *cobra.Command) (*learningpath.LearningPath, error) {
	id, _ := cmd.Flags().GetString("id")
	p, err := s.repo.Get(cmd.Context(), id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fmt.Errorf("%w: %s", errPathNotFound, id)
	}
	return p, nil
}

// withPath opens a session, loads the --id path and, when fn reports a
// change, saves it back.
func withPath(fn func(cmd *cobra.Command, s *pathSession, p *learningpath.LearningPath) (bool, error)) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		s, err := openPathSession()
		if err != nil {
			return err
		}
		defer s.Close()

		p, err := s.load(cmd)
		if err != nil {
			return err
		}
		changed, err := fn(cmd, s, p)
		if err != nil {
			return err
		}
		if !changed {
			return nil
		}
		if err := s.repo.Save(cmd.Context(), p); err != nil {
			return fmt.Errorf("saving path: %w", err)
		}
		return nil
	}
}

var pathCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a learning path from assessment scores",
	Example: "  mathpath path create --student s1 --grade 3 \\\n" +
		"    --score multiplication=0.5 --score division=0.3 --score fractions=0.9",
	RunE: func(cmd *cobra.Command, args []string) error {
		student, _ := cmd.Flags().GetString("student")
		grade, _ := cmd.Flags().GetString("grade")
		style, _ := cmd.Flags().GetString("style")
		goals, _ := cmd.Flags().GetStringSlice("goal")
		raw, _ := cmd.Flags().GetStringToString("score")
		scores, err := parseScores(raw)
		if err != nil {
			return err
		}

		s, err := openPathSession()
		if err != nil {
			return err
		}
		defer s.Close()

		p, err := s.engine.CreatePath(learningpath.CreateInput{
			StudentID:         student,
			Grade:             grade,
			AssessmentResults: scores,
			LearningStyle:     style,
			Goals:             goals,
		})
		if err != nil {
			return err
		}
		if err := s.repo.Save(cmd.Context(), p); err != nil {
			return fmt.Errorf("saving path: %w", err)
		}
		return printPath(cmd, s.catalog, p)
	},
}

var pathShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show a learning path, or list a student's paths",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openPathSession()
		if err != nil {
			return err
		}
		defer s.Close()

		if student, _ := cmd.Flags().GetString("student"); student != "" {
			paths, err := s.repo.ListByStudent(cmd.Context(), student)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, p := range paths {
				fmt.Fprintf(out, "%s  %s  %s\n", theme.ID.Render(p.ID),
					p.GradeLevel.DisplayName(), theme.Hint.Render(string(p.State())))
			}
			return nil
		}

		p, err := s.load(cmd)
		if err != nil {
			return err
		}
		return printPath(cmd, s.catalog, p)
	},
}

var pathNextCmd = &cobra.Command{
	Use:   "next",
	Short: "Print the next lesson on a path",
	RunE: withPath(func(cmd *cobra.Command, s *pathSession, p *learningpath.LearningPath) (bool, error) {
		out := cmd.OutOrStdout()
		id, ok := s.engine.NextLesson(p)
		if !ok {
			fmt.Fprintln(out, theme.Correct.Render("Path complete!"))
			return false, nil
		}
		if l, found := s.catalog.Lesson(id); found {
			fmt.Fprintf(out, "%s  %s %s\n", theme.ID.Render(id), theme.Body.Render(l.Title),
				theme.Hint.Render(fmt.Sprintf("(%d min)", l.DurationMinutes)))
			return false, nil
		}
		fmt.Fprintln(out, theme.ID.Render(id))
		return false, nil
	}),
}

var pathCompleteCmd = &cobra.Command{
	Use:   "complete",
	Short: "Record a lesson result",
	RunE: withPath(func(cmd *cobra.Command, s *pathSession, p *learningpath.LearningPath) (bool, error) {
		lesson, _ := cmd.Flags().GetString("lesson")
		score, _ := cmd.Flags().GetFloat64("score")
		if lesson == "" {
			next, ok := s.engine.NextLesson(p)
			if !ok {
				return false, errors.New("path is already complete")
			}
			lesson = next
		}

		if !s.engine.CompleteLesson(p, lesson, score) {
			return false, fmt.Errorf("lesson %s is not on path %s", lesson, p.ID)
		}
		out := cmd.OutOrStdout()
		if next, ok := s.engine.NextLesson(p); ok {
			fmt.Fprintln(out, theme.Field("next", theme.ID.Render(next)))
		} else {
			fmt.Fprintln(out, theme.Correct.Render("Path complete!"))
		}
		return true, nil
	}),
}

var pathUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Adapt a path to new topic performance",
	RunE: withPath(func(cmd *cobra.Command, s *pathSession, p *learningpath.LearningPath) (bool, error) {
		raw, _ := cmd.Flags().GetStringToString("score")
		scores, err := parseScores(raw)
		if err != nil {
			return false, err
		}
		before := len(p.Adjustments)
		s.engine.UpdatePath(p, scores)

		out := cmd.OutOrStdout()
		for _, a := range p.Adjustments[before:] {
			fmt.Fprintf(out, "%s %s %s\n", theme.Current.Render(a.Action),
				theme.Body.Render(string(a.Topic)), theme.Hint.Render(a.Reason))
		}
		return true, nil
	}),
}

var pathRecommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Suggest a practice difficulty for a topic",
	RunE: withPath(func(cmd *cobra.Command, s *pathSession, p *learningpath.LearningPath) (bool, error) {
		t, _ := cmd.Flags().GetString("topic")
		topic, err := curriculum.ParseTopic(t)
		if err != nil {
			return false, err
		}
		d := s.engine.RecommendDifficulty(cmd.Context(), p, topic)
		fmt.Fprintln(cmd.OutOrStdout(), theme.Field(topic.DisplayName(), string(d)))
		return false, nil
	}),
}

var pathLogCmd = &cobra.Command{
	Use:   "log",
	Short: "Print every adaptation across all paths in order",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		recs, err := st.PathRepo().Adjustments(cmd.Context())
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		for _, r := range recs {
			fmt.Fprintf(out, "%6d  %s  %s  %s %s\n", r.Sequence,
				r.Timestamp.Format("2006-01-02 15:04:05"), theme.ID.Render(r.PathID),
				theme.Current.Render(r.Action), theme.Hint.Render(r.Reason))
		}
		return nil
	},
}

// parseScores converts topic=score flag pairs into assessment results.
func parseScores(raw map[string]string) (map[string]float64, error) {
	scores := make(map[string]float64, len(raw))
	for k, v := range raw {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("score for %s: %w", k, err)
		}
		if f < 0 || f > 1 {
			return nil, fmt.Errorf("score for %s must be in [0, 1], got %v", k, f)
		}
		scores[k] = f
	}
	return scores, nil
}

func printPath(cmd *cobra.Command, catalog *curriculum.Catalog, p *learningpath.LearningPath) error {
	out := cmd.OutOrStdout()
	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(p)
	}

	fmt.Fprintln(out, theme.Title.Render("Learning path "+p.ID))
	fmt.Fprintln(out, theme.Field("student", p.StudentID))
	fmt.Fprintln(out, theme.Field("grade", p.GradeLevel.DisplayName()))
	fmt.Fprintln(out, theme.Field("state", string(p.State())))
	fmt.Fprintln(out, theme.Field("finish by", p.EstimatedCompletion.Format("2006-01-02")))
	fmt.Fprintln(out, components.NewProgressBar("progress", p.ProgressRatio(), true, 40).View())
	fmt.Fprintln(out)

	printLessons(out, catalog, p)

	if len(p.MasteryScores) > 0 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, theme.Title.Render("Mastery"))
		topics := slices.SortedFunc(maps.Keys(p.MasteryScores), func(a, b curriculum.MathTopic) int {
			return a.Order() - b.Order()
		})
		for _, t := range topics {
			fmt.Fprintln(out, components.NewProgressBar(fmt.Sprintf("%-22s", t.DisplayName()), p.MasteryScores[t], true, 50).View())
		}
	}
	return nil
}

func printLessons(out io.Writer, catalog *curriculum.Catalog, p *learningpath.LearningPath) {
	for i, id := range p.Lessons {
		title := id
		if l, ok := catalog.Lesson(id); ok {
			title = l.Title
		}
		line := fmt.Sprintf("%2d. %-28s %s", i+1, id, title)
		switch {
		case i < p.CurrentLesson:
			fmt.Fprintln(out, theme.Done.Render(line))
		case i == p.CurrentLesson:
			fmt.Fprintln(out, theme.Current.Render(line+"  ◂"))
		default:
			fmt.Fprintln(out, theme.Body.Render(line))
		}
	}
}

func init() {
	f := pathCreateCmd.Flags()
	f.String("student", "", "Student id")
	f.String("grade", "", "Grade level (K, 1..12)")
	f.String("style", "visual", "Learning style: visual, auditory, kinesthetic, reading_writing")
	f.StringSlice("goal", nil, "Learning goal (repeatable)")
	f.StringToString("score", nil, "Assessment score as topic=0..1 (repeatable)")
	f.Bool("json", false, "Print the path as JSON")
	_ = pathCreateCmd.MarkFlagRequired("student")
	_ = pathCreateCmd.MarkFlagRequired("grade")

	pathShowCmd.Flags().String("id", "", "Path id")
	pathShowCmd.Flags().String("student", "", "List this student's paths instead")
	pathShowCmd.Flags().Bool("json", false, "Print the path as JSON")
	pathShowCmd.MarkFlagsOneRequired("id", "student")

	pathNextCmd.Flags().String("id", "", "Path id")
	_ = pathNextCmd.MarkFlagRequired("id")

	f = pathCompleteCmd.Flags()
	f.String("id", "", "Path id")
	f.String("lesson", "", "Lesson id (defaults to the current lesson)")
	f.Float64("score", 0, "Lesson performance in [0, 1]")
	_ = pathCompleteCmd.MarkFlagRequired("id")
	_ = pathCompleteCmd.MarkFlagRequired("score")

	f = pathUpdateCmd.Flags()
	f.String("id", "", "Path id")
	f.StringToString("score", nil, "Topic performance as topic=0..1 (repeatable)")
	_ = pathUpdateCmd.MarkFlagRequired("id")
	_ = pathUpdateCmd.MarkFlagRequired("score")

	pathRecommendCmd.Flags().String("id", "", "Path id")
	pathRecommendCmd.Flags().String("topic", "", "Topic id")
	_ = pathRecommendCmd.MarkFlagRequired("id")
	_ = pathRecommendCmd.MarkFlagRequired("topic")

	pathCmd.AddCommand(pathCreateCmd, pathShowCmd, pathNextCmd, pathCompleteCmd,
		pathUpdateCmd, pathRecommendCmd, pathLogCmd)
}
