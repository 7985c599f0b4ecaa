package curriculum

import (
	"slices"
	"sort"
)

// Catalog is the read-only curriculum: the grade-to-topic table plus the
// lesson and problem content store. It is built once and never mutated,
// so it is safe for concurrent reads without locking.
type Catalog struct {
	topicsByGrade map[GradeLevel][]MathTopic
	lessons       map[string]Lesson
	problems      map[string]Problem

	// sorted ids for deterministic filter output
	lessonIDs  []string
	problemIDs []string
}

// NewCatalog builds a catalog from a grade table and content. Later entries
// with a duplicate id replace earlier ones.
func NewCatalog(table map[GradeLevel][]MathTopic, lessons []Lesson, problems []Problem) *Catalog {
	c := &Catalog{
		topicsByGrade: make(map[GradeLevel][]MathTopic, len(table)),
		lessons:       make(map[string]Lesson, len(lessons)),
		problems:      make(map[string]Problem, len(problems)),
	}
	for g, topics := range table {
		c.topicsByGrade[g] = slices.Clone(topics)
	}
	for _, l := range lessons {
		c.lessons[l.ID] = l
	}
	for _, p := range problems {
		c.problems[p.ID] = p
	}

	for id := range c.lessons {
		c.lessonIDs = append(c.lessonIDs, id)
	}
	sort.Strings(c.lessonIDs)
	for id := range c.problems {
		c.problemIDs = append(c.problemIDs, id)
	}
	sort.Strings(c.problemIDs)

	return c
}

// TopicsForGrade returns the grade's ordered topic list. An unmapped grade
// yields an empty list.
func (c *Catalog) TopicsForGrade(grade GradeLevel) []MathTopic {
	return slices.Clone(c.topicsByGrade[grade])
}

// Grades returns the grades that have a topic list, in K..12 order.
func (c *Catalog) Grades() []GradeLevel {
	var out []GradeLevel
	for _, g := range AllGrades() {
		if _, ok := c.topicsByGrade[g]; ok {
			out = append(out, g)
		}
	}
	return out
}

// Lesson returns the lesson with the given id.
func (c *Catalog) Lesson(id string) (Lesson, bool) {
	l, ok := c.lessons[id]
	return l, ok
}

// Problem returns the problem with the given id.
func (c *Catalog) Problem(id string) (Problem, bool) {
	p, ok := c.problems[id]
	return p, ok
}

// LessonsForTopic returns lessons for topic, ordered by id. When grade is
// non-nil both topic and grade must match.
func (c *Catalog) LessonsForTopic(topic MathTopic, grade *GradeLevel) []Lesson {
	var out []Lesson
	for _, id := range c.lessonIDs {
		l := c.lessons[id]
		if l.Topic != topic {
			continue
		}
		if grade != nil && l.GradeLevel != *grade {
			continue
		}
		out = append(out, l)
	}
	return out
}

// ProblemsForTopic returns problems for topic, ordered by id. When difficulty
// is non-nil both topic and difficulty must match.
func (c *Catalog) ProblemsForTopic(topic MathTopic, difficulty *DifficultyLevel) []Problem {
	var out []Problem
	for _, id := range c.problemIDs {
		p := c.problems[id]
		if p.Topic != topic {
			continue
		}
		if difficulty != nil && p.Difficulty != *difficulty {
			continue
		}
		out = append(out, p)
	}
	return out
}

// LessonCount returns the number of lessons in the store.
func (c *Catalog) LessonCount() int { return len(c.lessons) }

// ProblemCount returns the number of problems in the store.
func (c *Catalog) ProblemCount() int { return len(c.problems) }
