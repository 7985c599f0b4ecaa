package problemgen

import (
	"regexp"
	"strings"

	"github.com/abhisek/mathpath/internal/curriculum"
)

// answerPattern accepts an optionally signed integer or a simple a/b fraction.
var answerPattern = regexp.MustCompile(`^-?\d+(/\d+)?$`)

const (
	feedbackCorrect   = "Great job! That's correct!"
	feedbackIncorrect = "Not quite. Try again! You can do it!"
	hintCheckWork     = "Remember to check your work step by step"
	nextStepBreakDown = "Try breaking down the problem into smaller parts"
)

// Check grades a submitted answer for problemID.
//
// Only the answer's shape is verified: any well-formed integer or a/b
// fraction is reported as correct, whatever the problem. The problem id is
// accepted for callers that track attempts but is not looked up. Use
// CheckAgainst when the problem itself is at hand.
func (e *Engine) Check(problemID, answer string, showSteps bool) CheckResult {
	answer = strings.TrimSpace(answer)
	ok := answerPattern.MatchString(answer)

	res := CheckResult{Correct: ok, Feedback: feedbackIncorrect}
	if ok {
		res.Feedback = feedbackCorrect
	}
	if showSteps && !ok {
		res.Hint = hintCheckWork
		res.NextStep = nextStepBreakDown
	}

	e.logger.Debug("answer checked", "problem_id", problemID, "correct", ok)
	return res
}

// CheckProblem grades answer against the problem's own answer. Equivalent
// fractions and whole-number fractions are accepted. With showSteps, a wrong
// answer also carries the first hint.
func (e *Engine) CheckProblem(problem curriculum.Problem, answer string, showSteps bool) CheckResult {
	answer = strings.TrimSpace(answer)
	ok := answerPattern.MatchString(answer) && CheckAgainst(problem, answer)

	res := CheckResult{Correct: ok, Feedback: feedbackIncorrect}
	if ok {
		res.Feedback = feedbackCorrect
	}
	if showSteps && !ok {
		res.Hint = hintCheckWork
		if len(problem.Hints) > 0 {
			res.Hint = problem.Hints[0]
		}
		res.NextStep = nextStepBreakDown
	}

	e.logger.Debug("answer verified", "problem_id", problem.ID, "correct", ok)
	return res
}
