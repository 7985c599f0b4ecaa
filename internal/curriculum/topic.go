package curriculum

import "strings"

// MathTopic is one entry of the fixed topic taxonomy.
type MathTopic string

const (
	// Early math
	TopicCounting          MathTopic = "counting"
	TopicNumberRecognition MathTopic = "number_recognition"
	TopicBasicAddition     MathTopic = "basic_addition"
	TopicBasicSubtraction  MathTopic = "basic_subtraction"
	TopicShapes            MathTopic = "shapes"
	TopicPatterns          MathTopic = "patterns"
	TopicMeasurement       MathTopic = "measurement"
	TopicTime              MathTopic = "time"
	TopicMoney             MathTopic = "money"

	// Elementary
	TopicMultiplication MathTopic = "multiplication"
	TopicDivision       MathTopic = "division"
	TopicFractions      MathTopic = "fractions"
	TopicDecimals       MathTopic = "decimals"
	TopicGeometry       MathTopic = "geometry"
	TopicDataGraphs     MathTopic = "data_graphs"
	TopicWordProblems   MathTopic = "word_problems"

	// Middle school
	TopicPreAlgebra         MathTopic = "pre_algebra"
	TopicRatios             MathTopic = "ratios"
	TopicProportions        MathTopic = "proportions"
	TopicStatistics         MathTopic = "statistics"
	TopicProbability        MathTopic = "probability"
	TopicCoordinateGeometry MathTopic = "coordinate_geometry"
	TopicAlgebraicThinking  MathTopic = "algebraic_thinking"

	// High school
	TopicAlgebra1         MathTopic = "algebra_1"
	TopicAlgebra2         MathTopic = "algebra_2"
	TopicGeometryAdvanced MathTopic = "geometry_advanced"
	TopicTrigonometry     MathTopic = "trigonometry"
	TopicPreCalculus      MathTopic = "pre_calculus"
	TopicCalculus         MathTopic = "calculus"
)

var allTopics = []MathTopic{
	TopicCounting, TopicNumberRecognition, TopicBasicAddition, TopicBasicSubtraction,
	TopicShapes, TopicPatterns, TopicMeasurement, TopicTime, TopicMoney,
	TopicMultiplication, TopicDivision, TopicFractions, TopicDecimals,
	TopicGeometry, TopicDataGraphs, TopicWordProblems,
	TopicPreAlgebra, TopicRatios, TopicProportions, TopicStatistics,
	TopicProbability, TopicCoordinateGeometry, TopicAlgebraicThinking,
	TopicAlgebra1, TopicAlgebra2, TopicGeometryAdvanced, TopicTrigonometry,
	TopicPreCalculus, TopicCalculus,
}

var topicIndex = func() map[MathTopic]int {
	m := make(map[MathTopic]int, len(allTopics))
	for i, t := range allTopics {
		m[t] = i
	}
	return m
}()

// AllTopics returns the taxonomy in its canonical order.
func AllTopics() []MathTopic {
	out := make([]MathTopic, len(allTopics))
	copy(out, allTopics)
	return out
}

// ParseTopic resolves a topic name. Matching is exact.
func ParseTopic(s string) (MathTopic, error) {
	t := MathTopic(s)
	if _, ok := topicIndex[t]; !ok {
		return "", &InvalidEnumError{Kind: ErrInvalidTopic, Value: s}
	}
	return t, nil
}

// Valid reports whether t is part of the taxonomy.
func (t MathTopic) Valid() bool {
	_, ok := topicIndex[t]
	return ok
}

// Order returns the topic's position in the taxonomy, or -1 if unknown.
// Used to iterate topic-keyed maps deterministically.
func (t MathTopic) Order() int {
	if i, ok := topicIndex[t]; ok {
		return i
	}
	return -1
}

// DisplayName turns "coordinate_geometry" into "Coordinate Geometry".
func (t MathTopic) DisplayName() string {
	words := strings.Split(string(t), "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
