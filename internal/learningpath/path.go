package learningpath

import (
	"time"

	"github.com/abhisek/mathpath/internal/curriculum"
)

// State is a path's position in its lifecycle. It is derived from the
// lesson cursor, never stored.
type State string

const (
	StateCreated    State = "created"
	StateInProgress State = "in_progress"
	StateCompleted  State = "completed"
)

// Adjustment actions.
const (
	ActionAddedRemedial   = "added_remedial"
	ActionAcceleratedPath = "accelerated_path"
)

// Adjustment is one entry of a path's append-only adaptation log.
type Adjustment struct {
	Timestamp time.Time            `json:"timestamp"`
	Action    string               `json:"action"`
	Topic     curriculum.MathTopic `json:"topic,omitempty"`
	Reason    string               `json:"reason"`
}

// LearningPath is a student's ordered lesson sequence plus the mastery
// estimates that drive its adaptation. A path has a single writer.
type LearningPath struct {
	ID                  string                           `json:"id"`
	StudentID           string                           `json:"student_id"`
	GradeLevel          curriculum.GradeLevel            `json:"grade_level"`
	LearningStyle       curriculum.LearningStyle         `json:"learning_style"`
	CurrentLesson       int                              `json:"current_lesson"`
	Lessons             []string                         `json:"lessons"`
	Progress            map[string]float64               `json:"progress"`
	MasteryScores       map[curriculum.MathTopic]float64 `json:"mastery_scores"`
	RecommendedTopics   []curriculum.MathTopic           `json:"recommended_topics"`
	LearningGoals       []string                         `json:"learning_goals"`
	EstimatedCompletion time.Time                        `json:"estimated_completion_date"`
	Adjustments         []Adjustment                     `json:"adaptive_adjustments"`
	CreatedAt           time.Time                        `json:"created_at"`
	UpdatedAt           time.Time                        `json:"updated_at"`
}

// State reports where the path is in its lifecycle. A path with no
// lessons is already completed.
func (p *LearningPath) State() State {
	switch {
	case p.CurrentLesson >= len(p.Lessons):
		return StateCompleted
	case p.CurrentLesson == 0 && len(p.Progress) == 0:
		return StateCreated
	default:
		return StateInProgress
	}
}

// Completed reports whether every lesson has been passed.
func (p *LearningPath) Completed() bool {
	return p.State() == StateCompleted
}

// ProgressRatio is the fraction of lessons passed, in [0, 1].
func (p *LearningPath) ProgressRatio() float64 {
	if len(p.Lessons) == 0 {
		return 0
	}
	return float64(min(p.CurrentLesson, len(p.Lessons))) / float64(len(p.Lessons))
}

// appendAdjustment is the only way entries are added to the log.
func (p *LearningPath) appendAdjustment(a Adjustment) {
	p.Adjustments = append(p.Adjustments, a)
}

func (p *LearningPath) hasLesson(id string) bool {
	for _, l := range p.Lessons {
		if l == id {
			return true
		}
	}
	return false
}

// insertLesson places id at index i, clamped to the end of the list.
func (p *LearningPath) insertLesson(i int, id string) {
	i = min(max(i, 0), len(p.Lessons))
	p.Lessons = append(p.Lessons, "")
	copy(p.Lessons[i+1:], p.Lessons[i:])
	p.Lessons[i] = id
}
