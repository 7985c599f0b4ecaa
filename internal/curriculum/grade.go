package curriculum

import "strconv"

// GradeLevel is a school grade, K through 12.
type GradeLevel string

const (
	GradeK  GradeLevel = "K"
	Grade1  GradeLevel = "1"
	Grade2  GradeLevel = "2"
	Grade3  GradeLevel = "3"
	Grade4  GradeLevel = "4"
	Grade5  GradeLevel = "5"
	Grade6  GradeLevel = "6"
	Grade7  GradeLevel = "7"
	Grade8  GradeLevel = "8"
	Grade9  GradeLevel = "9"
	Grade10 GradeLevel = "10"
	Grade11 GradeLevel = "11"
	Grade12 GradeLevel = "12"
)

// AllGrades returns every grade in ascending order.
func AllGrades() []GradeLevel {
	return []GradeLevel{
		GradeK, Grade1, Grade2, Grade3, Grade4, Grade5, Grade6,
		Grade7, Grade8, Grade9, Grade10, Grade11, Grade12,
	}
}

// ParseGrade parses "K" (or "k", "0") and "1".."12".
func ParseGrade(s string) (GradeLevel, error) {
	switch s {
	case "K", "k", "0":
		return GradeK, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return "", &InvalidEnumError{Kind: ErrInvalidGrade, Value: s}
	}
	return GradeFromInt(n)
}

// GradeFromInt maps 0 to K and 1..12 to the matching grade.
func GradeFromInt(n int) (GradeLevel, error) {
	if n < 0 || n > 12 {
		return "", &InvalidEnumError{Kind: ErrInvalidGrade, Value: strconv.Itoa(n)}
	}
	return AllGrades()[n], nil
}

// Number returns the grade as an integer, with K as 0.
func (g GradeLevel) Number() int {
	if g == GradeK {
		return 0
	}
	n, _ := strconv.Atoi(string(g))
	return n
}

// Valid reports whether g is a known grade.
func (g GradeLevel) Valid() bool {
	for _, v := range AllGrades() {
		if v == g {
			return true
		}
	}
	return false
}

// DisplayName returns "Kindergarten" or "Grade N".
func (g GradeLevel) DisplayName() string {
	if g == GradeK {
		return "Kindergarten"
	}
	return "Grade " + string(g)
}
