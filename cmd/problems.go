package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathpath/internal/curriculum"
	"github.com/abhisek/mathpath/internal/problemgen"
	"github.com/abhisek/mathpath/internal/ui/theme"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate practice problems",
	RunE: func(cmd *cobra.Command, args []string) error {
		topic, _ := cmd.Flags().GetString("topic")
		difficulty, _ := cmd.Flags().GetInt("difficulty")
		grade, _ := cmd.Flags().GetString("grade")
		count, _ := cmd.Flags().GetInt("count")
		if count < 1 {
			return fmt.Errorf("count must be at least 1, got %d", count)
		}

		engine := problemgen.New(problemgen.DefaultConfig())
		problems := make([]curriculum.Problem, 0, count)
		for range count {
			p, err := engine.Generate(topic, difficulty, grade)
			if err != nil {
				return err
			}
			problems = append(problems, p)
		}
		return saveAndPrint(cmd, problems)
	},
}

var practiceCmd = &cobra.Command{
	Use:   "practice",
	Short: "Generate a practice set for a topic",
	RunE: func(cmd *cobra.Command, args []string) error {
		t, _ := cmd.Flags().GetString("topic")
		topic, err := curriculum.ParseTopic(t)
		if err != nil {
			return err
		}
		d, _ := cmd.Flags().GetString("difficulty")
		difficulty, err := curriculum.ParseDifficulty(d)
		if err != nil {
			return err
		}
		count, _ := cmd.Flags().GetInt("count")

		engine := problemgen.New(problemgen.DefaultConfig())
		return saveAndPrint(cmd, engine.GeneratePracticeSet(topic, count, difficulty))
	},
}

// saveAndPrint stores problems so `check` can verify answers later, then
// prints them.
func saveAndPrint(cmd *cobra.Command, problems []curriculum.Problem) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	ctx := cmd.Context()
	repo := st.ProblemRepo()
	for _, p := range problems {
		if err := repo.Save(ctx, p); err != nil {
			return fmt.Errorf("saving problem %s: %w", p.ID, err)
		}
	}

	out := cmd.OutOrStdout()
	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(problems)
	}
	for i, p := range problems {
		printProblem(out, i+1, p)
	}
	return nil
}

func printProblem(out io.Writer, n int, p curriculum.Problem) {
	fmt.Fprintf(out, "%s %s\n", theme.Title.Render(fmt.Sprintf("%d.", n)), theme.Body.Render(p.Question))
	fmt.Fprintln(out, theme.Field("  id", theme.ID.Render(p.ID)))
	fmt.Fprintln(out, theme.Field("  level", fmt.Sprintf("%s, %s", p.GradeLevel.DisplayName(), p.Difficulty)))
	for _, h := range p.Hints {
		fmt.Fprintln(out, theme.Hint.Render("  hint: "+h))
	}
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check an answer to a generated problem",
	RunE: func(cmd *cobra.Command, args []string) error {
		id, _ := cmd.Flags().GetString("problem-id")
		answer, _ := cmd.Flags().GetString("answer")
		showSteps, _ := cmd.Flags().GetBool("show-steps")

		problem, err := lookupProblem(cmd.Context(), id)
		if err != nil {
			return err
		}

		engine := problemgen.New(problemgen.DefaultConfig())
		var res problemgen.CheckResult
		if problem != nil {
			res = engine.CheckProblem(*problem, answer, showSteps)
		} else {
			res = engine.Check(id, answer, showSteps)
		}

		out := cmd.OutOrStdout()
		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			return json.NewEncoder(out).Encode(res)
		}
		if res.Correct {
			fmt.Fprintln(out, theme.Correct.Render("✓ "+res.Feedback))
		} else {
			fmt.Fprintln(out, theme.Incorrect.Render("✗ "+res.Feedback))
		}
		if res.Hint != "" {
			fmt.Fprintln(out, theme.Hint.Render("hint: "+res.Hint))
		}
		if res.NextStep != "" {
			fmt.Fprintln(out, theme.Hint.Render("next: "+res.NextStep))
		}
		if showSteps && problem != nil && !res.Correct {
			for i, s := range problem.SolutionSteps {
				fmt.Fprintln(out, theme.Hint.Render(fmt.Sprintf("%d. %s", i+1, s)))
			}
		}
		return nil
	},
}

// lookupProblem returns the catalog problem or the stored generated problem
// with id, or nil when neither has it.
func lookupProblem(ctx context.Context, id string) (*curriculum.Problem, error) {
	catalog, err := loadCatalog()
	if err != nil {
		return nil, err
	}
	if p, ok := catalog.Problem(id); ok {
		return &p, nil
	}

	st, err := openStore()
	if err != nil {
		return nil, err
	}
	defer st.Close()

	p, err := st.ProblemRepo().Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("loading problem %s: %w", id, err)
	}
	if p == nil {
		slog.Debug("problem not found, checking answer format only", "problem_id", id)
	}
	return p, nil
}

func init() {
	f := generateCmd.Flags()
	f.String("topic", "", "Topic id, e.g. multiplication")
	f.Int("difficulty", 1, "Difficulty 1 (beginner) to 4 (expert)")
	f.String("grade", "3", "Grade level (K, 1..12)")
	f.Int("count", 1, "Number of problems")
	f.Bool("json", false, "Print problems as JSON")
	_ = generateCmd.MarkFlagRequired("topic")

	f = practiceCmd.Flags()
	f.String("topic", "", "Topic id")
	f.String("difficulty", "intermediate", "beginner, intermediate, advanced or expert")
	f.Int("count", 5, "Number of problems")
	f.Bool("json", false, "Print problems as JSON")
	_ = practiceCmd.MarkFlagRequired("topic")

	f = checkCmd.Flags()
	f.String("problem-id", "", "Problem id printed by generate or practice")
	f.String("answer", "", "Your answer, e.g. 12 or 3/4")
	f.Bool("show-steps", false, "Show hints and solution steps for wrong answers")
	f.Bool("json", false, "Print the result as JSON")
	_ = checkCmd.MarkFlagRequired("problem-id")
	_ = checkCmd.MarkFlagRequired("answer")
}
