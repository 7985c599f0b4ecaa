package curriculum

// Problem is a single practice problem. Generated problems are never mutated
// after construction.
type Problem struct {
	ID            string          `json:"id" yaml:"id"`
	Topic         MathTopic       `json:"topic" yaml:"topic"`
	GradeLevel    GradeLevel      `json:"grade_level" yaml:"grade_level"`
	Difficulty    DifficultyLevel `json:"difficulty" yaml:"difficulty"`
	Question      string          `json:"question" yaml:"question"`
	Answer        string          `json:"answer" yaml:"answer"`
	SolutionSteps []string        `json:"solution_steps" yaml:"solution_steps"`
	Hints         []string        `json:"hints" yaml:"hints"`
	Explanation   string          `json:"explanation" yaml:"explanation"`
}

// ContentBlock is an opaque piece of lesson content (introduction, example,
// practice, ...). The catalog does not interpret it.
type ContentBlock map[string]any

// Lesson is a unit of instruction owned by the Catalog.
type Lesson struct {
	ID               string         `json:"id" yaml:"id"`
	Title            string         `json:"title" yaml:"title"`
	Topic            MathTopic      `json:"topic" yaml:"topic"`
	GradeLevel       GradeLevel     `json:"grade_level" yaml:"grade_level"`
	DurationMinutes  int            `json:"duration_minutes" yaml:"duration_minutes"`
	Objectives       []string       `json:"objectives" yaml:"objectives"`
	ContentBlocks    []ContentBlock `json:"content_blocks" yaml:"content_blocks"`
	PracticeProblems []string       `json:"practice_problems" yaml:"practice_problems"`

	// Assessment is the id of an optional end-of-lesson assessment.
	// Empty when the lesson has none.
	Assessment string `json:"assessment,omitempty" yaml:"assessment,omitempty"`
}
