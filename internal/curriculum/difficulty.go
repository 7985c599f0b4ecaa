package curriculum

import "strconv"

// DifficultyLevel is an ordered difficulty tier.
type DifficultyLevel string

const (
	Beginner     DifficultyLevel = "beginner"
	Intermediate DifficultyLevel = "intermediate"
	Advanced     DifficultyLevel = "advanced"
	Expert       DifficultyLevel = "expert"
)

// AllDifficulties returns the tiers from easiest to hardest.
func AllDifficulties() []DifficultyLevel {
	return []DifficultyLevel{Beginner, Intermediate, Advanced, Expert}
}

// DifficultyFromIndex maps 1..4 to beginner..expert.
func DifficultyFromIndex(i int) (DifficultyLevel, error) {
	if i < 1 || i > 4 {
		return "", &InvalidEnumError{Kind: ErrInvalidDifficulty, Value: strconv.Itoa(i)}
	}
	return AllDifficulties()[i-1], nil
}

// ParseDifficulty accepts either the tier name or its index ("1".."4").
func ParseDifficulty(s string) (DifficultyLevel, error) {
	for _, d := range AllDifficulties() {
		if string(d) == s {
			return d, nil
		}
	}
	if i, err := strconv.Atoi(s); err == nil {
		return DifficultyFromIndex(i)
	}
	return "", &InvalidEnumError{Kind: ErrInvalidDifficulty, Value: s}
}

// Index returns 1 for beginner through 4 for expert, 0 if unknown.
func (d DifficultyLevel) Index() int {
	for i, v := range AllDifficulties() {
		if v == d {
			return i + 1
		}
	}
	return 0
}

// LearningStyle is a student's preferred modality.
type LearningStyle string

const (
	StyleVisual         LearningStyle = "visual"
	StyleAuditory       LearningStyle = "auditory"
	StyleKinesthetic    LearningStyle = "kinesthetic"
	StyleReadingWriting LearningStyle = "reading_writing"
)

// ParseLearningStyle parses a style name. The empty string means visual.
func ParseLearningStyle(s string) (LearningStyle, error) {
	switch LearningStyle(s) {
	case "":
		return StyleVisual, nil
	case StyleVisual, StyleAuditory, StyleKinesthetic, StyleReadingWriting:
		return LearningStyle(s), nil
	}
	return "", &InvalidEnumError{Kind: ErrInvalidLearningStyle, Value: s}
}
