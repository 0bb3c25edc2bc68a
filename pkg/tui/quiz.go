package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/keycoach/keycoach/pkg/content"
	"github.com/keycoach/keycoach/pkg/secrand"
	"github.com/keycoach/keycoach/pkg/shuffle"
)

// quizTab walks the curriculum's quiz questions in order, shuffling the
// options of each question as it is presented.
type quizTab struct {
	questions []content.Question
	index     int
	options   []string
	correct   int
	cursor    int
	answered  bool
	chosen    int
	score     int
	done      bool
}

func newQuizTab(lib *content.Library) quizTab {
	var qs []content.Question
	if lib != nil {
		qs = lib.Questions()
	}
	return quizTab{questions: qs}
}

// present shuffles the options of the current question. The correct
// answer is tracked by position through the shuffle, so questions with
// repeated option text stay answerable.
func (q quizTab) present(src secrand.Source) (quizTab, error) {
	if q.index >= len(q.questions) {
		q.done = true
		return q, nil
	}
	cur := q.questions[q.index]
	options, correct, err := shuffle.Remap(src, cur.Options, cur.Answer)
	if err != nil {
		return q, fmt.Errorf("tui: shuffle options: %w", err)
	}
	q.options = options
	q.correct = correct
	q.cursor = 0
	q.answered = false
	return q, nil
}

func (m Model) updateQuiz(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "r" {
		m.quiz = quizTab{questions: m.quiz.questions}
		m.quiz, m.err = m.quiz.present(m.src)
		return m, nil
	}
	if m.quiz.done || len(m.quiz.questions) == 0 {
		return m, nil
	}

	switch msg.String() {
	case "up", "k":
		if !m.quiz.answered && m.quiz.cursor > 0 {
			m.quiz.cursor--
		}
	case "down", "j":
		if !m.quiz.answered && m.quiz.cursor < len(m.quiz.options)-1 {
			m.quiz.cursor++
		}
	case "enter", " ":
		if !m.quiz.answered {
			m.quiz.answered = true
			m.quiz.chosen = m.quiz.cursor
			if m.quiz.chosen == m.quiz.correct {
				m.quiz.score++
			}
		} else {
			m.quiz.index++
			m.quiz, m.err = m.quiz.present(m.src)
		}
	}
	return m, nil
}

func (m Model) viewQuiz() string {
	if len(m.quiz.questions) == 0 {
		return dimStyle.Render("  There are no quiz questions to practice.")
	}
	if m.quiz.done {
		return fmt.Sprintf("\n  Quiz complete: %d/%d correct.\n\n%s",
			m.quiz.score, len(m.quiz.questions),
			dimStyle.Render("  Press r to try again."))
	}

	cur := m.quiz.questions[m.quiz.index]
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Question %d of %d\n\n", m.quiz.index+1, len(m.quiz.questions)))
	sb.WriteString(labelStyle.Render(cur.Prompt))
	sb.WriteString("\n\n")

	for i, opt := range m.quiz.options {
		cursor := "  "
		if i == m.quiz.cursor && !m.quiz.answered {
			cursor = "▸ "
		}
		line := cursor + opt
		switch {
		case m.quiz.answered && i == m.quiz.correct:
			line = correctStyle.Render(line + "  ✓")
		case m.quiz.answered && i == m.quiz.chosen:
			line = wrongStyle.Render(line + "  ✗")
		case i == m.quiz.cursor && !m.quiz.answered:
			line = selectedStyle.Render(line)
		}
		sb.WriteString(line)
		sb.WriteString("\n")
	}

	if m.quiz.answered {
		sb.WriteString("\n")
		if m.quiz.chosen == m.quiz.correct {
			sb.WriteString(correctStyle.Render("  Correct!"))
		} else {
			sb.WriteString(wrongStyle.Render("  Not quite."))
		}
		sb.WriteString("\n")
		if cur.Explain != "" {
			sb.WriteString("  " + strings.TrimSpace(cur.Explain))
			sb.WriteString("\n")
		}
		sb.WriteString(dimStyle.Render("  Press enter for the next question."))
	}
	sb.WriteString(fmt.Sprintf("\n\n  Score: %d", m.quiz.score))
	return sb.String()
}
