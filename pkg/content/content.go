// Package content loads the coaching curriculum: ordered lessons, each
// with an optional quiz. A Library is read-only after loading and safe
// for concurrent use; accessors return copies so callers cannot mutate
// the shared curriculum.
package content

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed lessons.yaml
var embedded []byte

// ErrNotFound reports a lesson id with no matching lesson.
var ErrNotFound = errors.New("content: lesson not found")

// Lesson is one unit of the curriculum. Lessons keep the order they were
// written in the source document. Takeaway is the one-line rule worth
// remembering after the body is forgotten.
type Lesson struct {
	ID        string     `yaml:"id" json:"id"`
	Title     string     `yaml:"title" json:"title"`
	Summary   string     `yaml:"summary" json:"summary"`
	Body      string     `yaml:"body" json:"body"`
	Takeaway  string     `yaml:"takeaway,omitempty" json:"takeaway,omitempty"`
	Questions []Question `yaml:"questions,omitempty" json:"questions,omitempty"`
}

// Question is a multiple-choice quiz item. Answer is the index into
// Options. Option text may repeat within a question, so the answer is
// always tracked by position, never by comparing text. Explain is shown
// after answering, whether the pick was right or not.
type Question struct {
	Prompt  string   `yaml:"prompt" json:"prompt"`
	Options []string `yaml:"options" json:"options"`
	Answer  int      `yaml:"answer" json:"answer"`
	Explain string   `yaml:"explain,omitempty" json:"explain,omitempty"`
}

type document struct {
	Lessons []Lesson `yaml:"lessons"`
}

// Library holds a validated curriculum.
type Library struct {
	lessons []Lesson
	byID    map[string]int
}

// Default loads the curriculum embedded in the binary.
func Default() (*Library, error) {
	return Load(embedded)
}

// LoadFile reads and validates a curriculum from a YAML file.
func LoadFile(path string) (*Library, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("content: read curriculum: %w", err)
	}
	return Load(data)
}

// Load parses and validates a YAML curriculum document.
func Load(data []byte) (*Library, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("content: parse curriculum: %w", err)
	}
	if err := validate(doc.Lessons); err != nil {
		return nil, err
	}
	lib := &Library{
		lessons: doc.Lessons,
		byID:    make(map[string]int, len(doc.Lessons)),
	}
	for i, l := range doc.Lessons {
		lib.byID[l.ID] = i
	}
	return lib, nil
}

func validate(lessons []Lesson) error {
	if len(lessons) == 0 {
		return fmt.Errorf("content: curriculum has no lessons")
	}
	seen := make(map[string]bool, len(lessons))
	for i, l := range lessons {
		if l.ID == "" {
			return fmt.Errorf("content: lesson[%d]: id is required", i)
		}
		if seen[l.ID] {
			return fmt.Errorf("content: lesson[%d]: duplicate id %q", i, l.ID)
		}
		seen[l.ID] = true
		if l.Title == "" {
			return fmt.Errorf("content: lesson %q: title is required", l.ID)
		}
		if l.Body == "" {
			return fmt.Errorf("content: lesson %q: body is required", l.ID)
		}
		for j, q := range l.Questions {
			if q.Prompt == "" {
				return fmt.Errorf("content: lesson %q: question[%d]: prompt is required", l.ID, j)
			}
			if len(q.Options) < 2 {
				return fmt.Errorf("content: lesson %q: question[%d]: needs at least two options", l.ID, j)
			}
			if q.Answer < 0 || q.Answer >= len(q.Options) {
				return fmt.Errorf("content: lesson %q: question[%d]: answer index %d out of range", l.ID, j, q.Answer)
			}
		}
	}
	return nil
}

// Len reports the number of lessons.
func (l *Library) Len() int { return len(l.lessons) }

// Lessons returns every lesson in curriculum order.
func (l *Library) Lessons() []Lesson {
	out := make([]Lesson, len(l.lessons))
	for i, lesson := range l.lessons {
		out[i] = copyLesson(lesson)
	}
	return out
}

// Lesson returns the lesson with the given id.
func (l *Library) Lesson(id string) (*Lesson, error) {
	i, ok := l.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	lesson := copyLesson(l.lessons[i])
	return &lesson, nil
}

// Questions returns every quiz question across all lessons, in
// curriculum order.
func (l *Library) Questions() []Question {
	var out []Question
	for _, lesson := range l.lessons {
		for _, q := range lesson.Questions {
			out = append(out, copyQuestion(q))
		}
	}
	return out
}

func copyLesson(l Lesson) Lesson {
	out := l
	out.Questions = make([]Question, len(l.Questions))
	for i, q := range l.Questions {
		out.Questions[i] = copyQuestion(q)
	}
	return out
}

func copyQuestion(q Question) Question {
	out := q
	out.Options = append([]string(nil), q.Options...)
	return out
}
