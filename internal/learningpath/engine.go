// Package learningpath builds and adapts per-student lesson sequences from
// assessed mastery.
package learningpath

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/mathpath/internal/curriculum"
	"github.com/abhisek/mathpath/internal/prediction"
)

// Engine creates and adapts learning paths against a catalog.
// It keeps no per-path state and is safe for concurrent use; the paths
// themselves are not.
type Engine struct {
	catalog   *curriculum.Catalog
	cfg       Config
	predictor prediction.Predictor
	now       func() time.Time
	newID     func(studentID string) string
	logger    *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock sets the time source.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithIDFunc sets the path id generator.
func WithIDFunc(f func(studentID string) string) Option {
	return func(e *Engine) { e.newID = f }
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// WithPredictor sets the success predictor consulted by RecommendDifficulty.
func WithPredictor(p prediction.Predictor) Option {
	return func(e *Engine) { e.predictor = p }
}

// New creates an Engine.
func New(catalog *curriculum.Catalog, cfg Config, opts ...Option) *Engine {
	e := &Engine{
		catalog:   catalog,
		cfg:       cfg,
		predictor: prediction.Neutral{},
		now:       func() time.Time { return time.Now().UTC() },
		newID:     defaultPathID,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.predictor = prediction.Safe(e.predictor, e.logger)
	return e
}

func defaultPathID(studentID string) string {
	return "path_" + studentID + "_" + uuid.NewString()
}

// CreateInput is the input to CreatePath.
type CreateInput struct {
	StudentID         string
	Grade             string
	AssessmentResults map[string]float64
	LearningStyle     string
	Goals             []string
}

// CreatePath builds a new path for a student from assessment results.
// Only an invalid grade or learning style is an error; unknown topics in
// the assessment are skipped.
func (e *Engine) CreatePath(in CreateInput) (*LearningPath, error) {
	grade, err := curriculum.ParseGrade(in.Grade)
	if err != nil {
		return nil, fmt.Errorf("create path: %w", err)
	}
	style, err := curriculum.ParseLearningStyle(in.LearningStyle)
	if err != nil {
		return nil, fmt.Errorf("create path: %w", err)
	}

	class := e.Classify(in.AssessmentResults)
	topics := e.catalog.TopicsForGrade(grade)
	lessons := e.lessonSequence(grade, topics, class)

	mastery := make(map[curriculum.MathTopic]float64, len(topics))
	for _, t := range topics {
		mastery[t] = clamp01(in.AssessmentResults[string(t)])
	}

	// Only weaknesses in the grade's curriculum are recommended.
	recommended := make([]curriculum.MathTopic, 0, e.cfg.MaxRecommended)
	for _, t := range class.Weaknesses {
		if len(recommended) == e.cfg.MaxRecommended {
			break
		}
		if slices.Contains(topics, t) {
			recommended = append(recommended, t)
		}
	}

	now := e.now()
	path := &LearningPath{
		ID:                  e.newID(in.StudentID),
		StudentID:           in.StudentID,
		GradeLevel:          grade,
		LearningStyle:       style,
		Lessons:             lessons,
		Progress:            make(map[string]float64),
		MasteryScores:       mastery,
		RecommendedTopics:   recommended,
		LearningGoals:       slices.Clone(in.Goals),
		EstimatedCompletion: e.estimateCompletion(now, len(lessons)),
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	if path.LearningGoals == nil {
		path.LearningGoals = []string{}
	}

	e.logger.Info("learning path created",
		"path_id", path.ID,
		"student_id", in.StudentID,
		"grade", string(grade),
		"lessons", len(lessons),
		"weaknesses", len(class.Weaknesses),
		"strengths", len(class.Strengths),
	)
	return path, nil
}

// lessonSequence orders lessons as: weak topics (shortest first), then one
// lesson per neutral curriculum topic, then an advanced lesson per strength.
func (e *Engine) lessonSequence(grade curriculum.GradeLevel, topics []curriculum.MathTopic, class Classification) []string {
	lessons := []string{}

	for _, t := range class.Weaknesses {
		ls := e.catalog.LessonsForTopic(t, &grade)
		slices.SortStableFunc(ls, func(a, b curriculum.Lesson) int {
			return a.DurationMinutes - b.DurationMinutes
		})
		for _, l := range ls[:min(len(ls), e.cfg.MaxWeakLessons)] {
			lessons = append(lessons, l.ID)
		}
	}

	for _, t := range topics {
		if class.IsStrength(t) || class.IsWeakness(t) {
			continue
		}
		if ls := e.catalog.LessonsForTopic(t, &grade); len(ls) > 0 {
			lessons = append(lessons, ls[0].ID)
		}
	}

	for _, t := range class.Strengths {
		for _, l := range e.catalog.LessonsForTopic(t, &grade) {
			if strings.Contains(strings.ToLower(l.Title), "advanced") {
				lessons = append(lessons, l.ID)
				break
			}
		}
	}

	return lessons
}

// estimateCompletion assumes a fixed number of lessons per week.
func (e *Engine) estimateCompletion(from time.Time, lessons int) time.Time {
	weeks := float64(lessons) / float64(e.cfg.LessonsPerWeek)
	return from.Add(time.Duration(weeks * float64(7*24*time.Hour)))
}

// UpdatePath blends observed performance into the path's mastery scores and
// adapts the lesson sequence. The path is mutated and returned.
func (e *Engine) UpdatePath(path *LearningPath, performance map[string]float64) *LearningPath {
	if path.MasteryScores == nil {
		path.MasteryScores = make(map[curriculum.MathTopic]float64)
	}

	for k, observed := range performance {
		topic, err := curriculum.ParseTopic(k)
		if err != nil {
			e.logger.Debug("ignoring unknown topic in performance data", "path_id", path.ID, "topic", k)
			continue
		}
		old := path.MasteryScores[topic]
		path.MasteryScores[topic] = blend(old, observed, e.cfg.RecencyWeight)
	}

	now := e.now()

	// Topics without lessons still use up a remedial slot.
	struggling := e.strugglingTopics(path)
	for _, topic := range struggling[:min(len(struggling), e.cfg.MaxRemedial)] {
		lessonID, ok := e.remedialLesson(path.GradeLevel, topic)
		if !ok {
			e.logger.Debug("no remedial lesson available", "path_id", path.ID, "topic", string(topic))
			continue
		}
		path.insertLesson(path.CurrentLesson+1, lessonID)
		path.appendAdjustment(Adjustment{
			Timestamp: now,
			Action:    ActionAddedRemedial,
			Topic:     topic,
			Reason:    fmt.Sprintf("mastery_score_%.2f", path.MasteryScores[topic]),
		})
		e.logger.Info("remedial lesson added", "path_id", path.ID, "topic", string(topic), "lesson_id", lessonID)
	}

	excelling := 0
	for _, score := range path.MasteryScores {
		if score > e.cfg.ExcellenceThreshold {
			excelling++
		}
	}
	if 2*excelling > len(path.MasteryScores) {
		path.appendAdjustment(Adjustment{
			Timestamp: now,
			Action:    ActionAcceleratedPath,
			Reason:    "high_mastery_scores",
		})
		e.logger.Info("path marked for acceleration", "path_id", path.ID, "excelling", excelling)
	}

	path.UpdatedAt = now
	return path
}

// blend mixes an observation into a prior estimate and clamps to [0, 1].
func blend(old, observed, weight float64) float64 {
	v := (1-weight)*old + weight*observed
	return clamp01(v)
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

// strugglingTopics returns tracked topics below the advancement threshold:
// the grade's curriculum topics in curriculum order, then any other
// tracked topics in taxonomy order.
func (e *Engine) strugglingTopics(path *LearningPath) []curriculum.MathTopic {
	curriculumTopics := e.catalog.TopicsForGrade(path.GradeLevel)

	var out, extra []curriculum.MathTopic
	for _, topic := range curriculumTopics {
		if score, ok := path.MasteryScores[topic]; ok && score < e.cfg.AdvancementThreshold {
			out = append(out, topic)
		}
	}
	for topic, score := range path.MasteryScores {
		if score < e.cfg.AdvancementThreshold && !slices.Contains(curriculumTopics, topic) {
			extra = append(extra, topic)
		}
	}
	slices.SortFunc(extra, func(a, b curriculum.MathTopic) int {
		return a.Order() - b.Order()
	})
	return append(out, extra...)
}

// remedialLesson picks the first lesson for topic, preferring the path's grade.
func (e *Engine) remedialLesson(grade curriculum.GradeLevel, topic curriculum.MathTopic) (string, bool) {
	if grade.Valid() {
		if ls := e.catalog.LessonsForTopic(topic, &grade); len(ls) > 0 {
			return ls[0].ID, true
		}
	}
	if ls := e.catalog.LessonsForTopic(topic, nil); len(ls) > 0 {
		return ls[0].ID, true
	}
	return "", false
}

// NextLesson returns the lesson at the path's cursor, if any.
func (e *Engine) NextLesson(path *LearningPath) (string, bool) {
	if path.CurrentLesson >= 0 && path.CurrentLesson < len(path.Lessons) {
		return path.Lessons[path.CurrentLesson], true
	}
	return "", false
}

// CompleteLesson records performance on a lesson of the path and advances
// the cursor when performance meets the advancement threshold. It reports
// whether the cursor moved. Lessons not in the path are ignored.
func (e *Engine) CompleteLesson(path *LearningPath, lessonID string, performance float64) bool {
	if !path.hasLesson(lessonID) {
		e.logger.Debug("ignoring completion for lesson not in path", "path_id", path.ID, "lesson_id", lessonID)
		return false
	}
	if path.Progress == nil {
		path.Progress = make(map[string]float64)
	}
	path.Progress[lessonID] = performance

	advanced := performance >= e.cfg.AdvancementThreshold
	if advanced {
		path.CurrentLesson++
	} else {
		e.logger.Info("lesson needs repeating", "path_id", path.ID, "lesson_id", lessonID, "performance", performance)
	}
	path.UpdatedAt = e.now()
	return advanced
}

// RecommendDifficulty picks the hardest difficulty whose predicted success
// meets the configured target, falling back to beginner.
func (e *Engine) RecommendDifficulty(ctx context.Context, path *LearningPath, topic curriculum.MathTopic) curriculum.DifficultyLevel {
	profile := prediction.Profile{
		StudentID:     path.StudentID,
		Grade:         path.GradeLevel,
		LearningStyle: path.LearningStyle,
		Mastery:       path.MasteryScores,
	}
	levels := curriculum.AllDifficulties()
	for i := len(levels) - 1; i > 0; i-- {
		p, _ := e.predictor.Predict(ctx, profile, topic, levels[i])
		if p >= e.cfg.SuccessTarget {
			return levels[i]
		}
	}
	return curriculum.Beginner
}
