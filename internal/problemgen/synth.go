package problemgen

import (
	"fmt"
	"strconv"

	"github.com/abhisek/mathpath/internal/curriculum"
)

// defaultSynthesizers maps topics to their generators. Topics without an
// entry use the engine's fallback.
func defaultSynthesizers() map[curriculum.MathTopic]Synthesizer {
	return map[curriculum.MathTopic]Synthesizer{
		curriculum.TopicBasicAddition:    synthAddition,
		curriculum.TopicBasicSubtraction: synthSubtraction,
		curriculum.TopicMultiplication:   synthMultiplication,
		curriculum.TopicDivision:         synthDivision,
		curriculum.TopicFractions:        synthFractions,
		curriculum.TopicAlgebra1:         synthAlgebra,
	}
}

func synthAddition(r Rand, d curriculum.DifficultyLevel) Synthesis {
	lo, hi := 1, 10
	switch d {
	case curriculum.Intermediate:
		lo, hi = 10, 50
	case curriculum.Advanced:
		lo, hi = 50, 100
	case curriculum.Expert:
		lo, hi = 100, 1000
	}
	a, b := between(r, lo, hi), between(r, lo, hi)
	answer := strconv.Itoa(a + b)

	return Synthesis{
		Question: fmt.Sprintf("What is %d + %d?", a, b),
		Answer:   answer,
		Steps: []string{
			fmt.Sprintf("We need to add %d and %d", a, b),
			fmt.Sprintf("Starting with %d", a),
			fmt.Sprintf("Adding %d", b),
			fmt.Sprintf("%d + %d = %s", a, b, answer),
		},
		Hints: []string{
			"Line up the numbers vertically",
			"Start adding from the ones place",
			fmt.Sprintf("Think: what do you get when you combine %d and %d?", a, b),
		},
		Explanation: fmt.Sprintf("Addition combines two numbers. %d plus %d equals %s.", a, b, answer),
	}
}

func synthSubtraction(r Rand, d curriculum.DifficultyLevel) Synthesis {
	var a, b int
	switch d {
	case curriculum.Beginner:
		a, b = between(r, 5, 20), between(r, 1, 10)
	case curriculum.Intermediate:
		a, b = between(r, 20, 100), between(r, 10, 50)
	default:
		a, b = between(r, 100, 1000), between(r, 50, 500)
	}
	// Larger operand first so the difference is never negative.
	if b > a {
		a, b = b, a
	}
	answer := strconv.Itoa(a - b)

	return Synthesis{
		Question: fmt.Sprintf("What is %d - %d?", a, b),
		Answer:   answer,
		Steps: []string{
			fmt.Sprintf("We need to subtract %d from %d", b, a),
			fmt.Sprintf("Starting with %d", a),
			fmt.Sprintf("Taking away %d", b),
			fmt.Sprintf("%d - %d = %s", a, b, answer),
		},
		Hints: []string{
			"Think of subtraction as taking away",
			fmt.Sprintf("Start with %d and remove %d", a, b),
			"You can use a number line to help",
		},
		Explanation: fmt.Sprintf("Subtraction finds the difference. %d minus %d equals %s.", a, b, answer),
	}
}

func synthMultiplication(r Rand, d curriculum.DifficultyLevel) Synthesis {
	lo, hi := 5, 20
	switch d {
	case curriculum.Beginner:
		lo, hi = 1, 5
	case curriculum.Intermediate:
		lo, hi = 2, 10
	}
	a, b := between(r, lo, hi), between(r, lo, hi)
	answer := strconv.Itoa(a * b)

	return Synthesis{
		Question: fmt.Sprintf("What is %d × %d?", a, b),
		Answer:   answer,
		Steps: []string{
			fmt.Sprintf("We need to multiply %d by %d", a, b),
			fmt.Sprintf("This means %d groups of %d", a, b),
			fmt.Sprintf("Or adding %d to itself %d times", b, a),
			fmt.Sprintf("%d × %d = %s", a, b, answer),
		},
		Hints: []string{
			fmt.Sprintf("Think of %d groups with %d items in each", a, b),
			fmt.Sprintf("You can add %d + %d + ... (%d times)", b, b, a),
			"Draw an array to visualize",
		},
		Explanation: fmt.Sprintf("Multiplication is repeated addition. %d times %d equals %s.", a, b, answer),
	}
}

func synthDivision(r Rand, d curriculum.DifficultyLevel) Synthesis {
	lo, hi := 5, 20
	switch d {
	case curriculum.Beginner:
		lo, hi = 1, 5
	case curriculum.Intermediate:
		lo, hi = 2, 10
	}
	// Pick the divisor first and build the dividend from it so the
	// quotient is always a whole number.
	divisor := between(r, lo, hi)
	dividend := divisor * between(r, lo, hi)
	answer := strconv.Itoa(dividend / divisor)

	return Synthesis{
		Question: fmt.Sprintf("What is %d ÷ %d?", dividend, divisor),
		Answer:   answer,
		Steps: []string{
			fmt.Sprintf("We need to divide %d by %d", dividend, divisor),
			fmt.Sprintf("How many groups of %d fit in %d?", divisor, dividend),
			fmt.Sprintf("Or: If we share %d items among %d groups equally", dividend, divisor),
			fmt.Sprintf("%d ÷ %d = %s", dividend, divisor, answer),
		},
		Hints: []string{
			fmt.Sprintf("Think: how many %ds are in %d?", divisor, dividend),
			"Division is the opposite of multiplication",
			fmt.Sprintf("Try: %d × ? = %d", divisor, dividend),
		},
		Explanation: fmt.Sprintf("Division splits a number into equal groups. %d divided by %d equals %s.", dividend, divisor, answer),
	}
}

func synthFractions(r Rand, d curriculum.DifficultyLevel) Synthesis {
	var question, answer string
	if d == curriculum.Beginner {
		n, den := between(r, 1, 5), between(r, 2, 10)
		question = fmt.Sprintf("Simplify the fraction %d/%d", n, den)
		answer = FormatFraction(Reduce(n, den))
	} else {
		n1, d1 := between(r, 1, 5), between(r, 2, 8)
		n2, d2 := between(r, 1, 5), between(r, 2, 8)
		question = fmt.Sprintf("What is %d/%d + %d/%d?", n1, d1, n2, d2)
		lcd := LCM(d1, d2)
		sum := n1*(lcd/d1) + n2*(lcd/d2)
		answer = FormatFraction(Reduce(sum, lcd))
	}

	return Synthesis{
		Question: question,
		Answer:   answer,
		Steps: []string{
			"Identify the numerator and denominator",
			"Find common factors if simplifying",
			"Or find common denominator if adding",
			"The answer is " + answer,
		},
		Hints: []string{
			"Look for common factors",
			"Remember to simplify your answer",
			"Use visual aids like pie charts",
		},
		Explanation: "Fractions represent parts of a whole.",
	}
}

func synthAlgebra(r Rand, d curriculum.DifficultyLevel) Synthesis {
	var question, answer string
	var steps []string
	if d == curriculum.Beginner {
		a, b := between(r, 1, 10), between(r, 1, 20)
		question = fmt.Sprintf("Solve for x: x + %d = %d", a, b)
		answer = strconv.Itoa(b - a)
		steps = []string{
			fmt.Sprintf("We have x + %d = %d", a, b),
			fmt.Sprintf("Subtract %d from both sides", a),
			fmt.Sprintf("x = %d - %d", b, a),
			"x = " + answer,
		}
	} else {
		a, b := between(r, 2, 10), between(r, 10, 50)
		question = fmt.Sprintf("Solve for x: %dx = %d", a, b)
		answer = formatQuotient(b, a)
		steps = []string{
			fmt.Sprintf("We have %dx = %d", a, b),
			fmt.Sprintf("Divide both sides by %d", a),
			fmt.Sprintf("x = %d/%d", b, a),
			"x = " + answer,
		}
	}

	return Synthesis{
		Question: question,
		Answer:   answer,
		Steps:    steps,
		Hints: []string{
			"Isolate the variable x",
			"What operation undoes the one in the equation?",
			"Check your answer by substituting back",
		},
		Explanation: "To solve for x, we isolate it on one side of the equation.",
	}
}
