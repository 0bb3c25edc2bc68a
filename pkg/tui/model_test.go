package tui

import (
	"strings"
	"testing"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/keycoach/keycoach/pkg/charset"
	"github.com/keycoach/keycoach/pkg/content"
	"github.com/keycoach/keycoach/pkg/password"
	"github.com/keycoach/keycoach/pkg/secrand"
)

const quizDoc = `
lessons:
  - id: demo
    title: Demo
    summary: One lesson.
    body: Body text.
    questions:
      - prompt: Pick the odd one out.
        options: [same, right, same]
        answer: 1
        explain: Only one option differs.
`

const twoLessonDoc = `
lessons:
  - id: first
    title: First
    summary: One.
    body: Body text.
    questions:
      - prompt: First prompt.
        options: [a, b]
        answer: 0
  - id: second
    title: Second
    summary: Two.
    body: Body text.
    questions:
      - prompt: Second prompt.
        options: [c, d]
        answer: 1
`

const quizlessDoc = `
lessons:
  - id: demo
    title: Demo
    summary: One lesson.
    body: Body text.
`

func key(s string) tea.KeyMsg {
	switch s {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func newTestModel(t *testing.T, doc string) Model {
	t.Helper()
	lib, err := content.Load([]byte(doc))
	if err != nil {
		t.Fatal(err)
	}
	m := New(lib, Options{Source: secrand.Seeded(1)})
	return update(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
}

func update(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		m = update(t, m, key(k))
	}
	return m
}

func TestViewBeforeFirstResize(t *testing.T) {
	lib, err := content.Load([]byte(quizDoc))
	if err != nil {
		t.Fatal(err)
	}
	m := New(lib, Options{Source: secrand.Seeded(1)})
	if got := m.View(); got != "Loading…" {
		t.Errorf("View() = %q before the first WindowSizeMsg", got)
	}
}

func TestDefaults(t *testing.T) {
	m := newTestModel(t, quizDoc)
	if m.gen.length != 16 {
		t.Errorf("default length = %d, want 16", m.gen.length)
	}
	if n := m.gen.enabledCount(); n != 4 {
		t.Errorf("enabled classes = %d, want 4", n)
	}
	if m.src == nil {
		t.Error("source not set")
	}
}

func TestTabSwitching(t *testing.T) {
	m := newTestModel(t, quizDoc)
	if !strings.Contains(m.View(), "Character classes") {
		t.Fatal("expected Generate tab first")
	}
	m = press(t, m, "tab")
	if !strings.Contains(m.View(), "Rate a candidate") {
		t.Error("tab did not reach the Rate tab")
	}
	m = press(t, m, "tab")
	if !strings.Contains(m.View(), "Question 1 of 1") {
		t.Error("tab did not reach the Quiz tab")
	}
	m = press(t, m, "tab")
	if !strings.Contains(m.View(), "Character classes") {
		t.Error("tab did not wrap back to Generate")
	}
	m = press(t, m, "shift+tab")
	if !strings.Contains(m.View(), "Question 1 of 1") {
		t.Error("shift+tab did not wrap back to Quiz")
	}
	m = press(t, m, "shift+tab", "shift+tab", "3")
	if !strings.Contains(m.View(), "Question 1 of 1") {
		t.Error("3 did not jump to the Quiz tab")
	}
}

func TestGenerateFlow(t *testing.T) {
	m := newTestModel(t, quizDoc)
	m = press(t, m, "g")
	if m.err != nil {
		t.Fatalf("generate: %v", m.err)
	}
	if n := utf8.RuneCountInString(m.gen.value); n != 16 {
		t.Errorf("generated %d runes, want 16", n)
	}
	for _, c := range charset.All() {
		present := false
		for _, r := range m.gen.value {
			if c.Contains(r) {
				present = true
				break
			}
		}
		if !present {
			t.Errorf("%s missing from generated password", c)
		}
	}
	if !strings.Contains(m.View(), "bits") {
		t.Error("strength estimate missing from view")
	}

	m = press(t, m, "+", "+", "g")
	if n := utf8.RuneCountInString(m.gen.value); n != 18 {
		t.Errorf("after ++: generated %d runes, want 18", n)
	}
}

func TestGenerateLengthClamps(t *testing.T) {
	m := newTestModel(t, quizDoc)
	for i := 0; i < password.MaxLength+10; i++ {
		m = press(t, m, "+")
	}
	if m.gen.length != password.MaxLength {
		t.Errorf("length = %d, want cap %d", m.gen.length, password.MaxLength)
	}
	for i := 0; i < password.MaxLength+10; i++ {
		m = press(t, m, "-")
	}
	if m.gen.length != 1 {
		t.Errorf("length = %d, want floor 1", m.gen.length)
	}
}

func TestGenerateToggleKeepsLastClass(t *testing.T) {
	m := newTestModel(t, quizDoc)
	m = press(t, m, " ", "down", " ", "down", " ", "down", " ")
	if n := m.gen.enabledCount(); n != 1 {
		t.Fatalf("enabled classes = %d, want the last one kept", n)
	}
	if !m.gen.enabled[charset.Symbol] {
		t.Fatal("symbol should have survived as the last enabled class")
	}
	m = press(t, m, "g")
	if m.err != nil {
		t.Fatalf("generate: %v", m.err)
	}
	for _, r := range m.gen.value {
		if !charset.Symbol.Contains(r) {
			t.Errorf("rune %q is not a symbol", r)
		}
	}
}

func TestQuizTracksAnswerByPosition(t *testing.T) {
	m := newTestModel(t, quizDoc)
	m = press(t, m, "3")

	// "right" is unique in the option text, so its shuffled position
	// must be the tracked correct index.
	want := -1
	for i, opt := range m.quiz.options {
		if opt == "right" {
			want = i
		}
	}
	if want == -1 {
		t.Fatalf("options = %v, expected to find %q", m.quiz.options, "right")
	}
	if m.quiz.correct != want {
		t.Fatalf("correct = %d, want %d (options %v)", m.quiz.correct, want, m.quiz.options)
	}

	for i := 0; i < want; i++ {
		m = press(t, m, "down")
	}
	m = press(t, m, "enter")
	if m.quiz.score != 1 {
		t.Errorf("score = %d, want 1", m.quiz.score)
	}
	if !strings.Contains(m.View(), "Correct!") {
		t.Error("view missing correct-answer feedback")
	}
	if !strings.Contains(m.View(), "Only one option differs.") {
		t.Error("view missing the answer explanation")
	}

	m = press(t, m, "enter")
	if !m.quiz.done {
		t.Error("quiz should be done after the last question")
	}
	if !strings.Contains(m.View(), "Quiz complete: 1/1") {
		t.Errorf("view = %q", m.View())
	}
}

func TestQuizWrongAnswer(t *testing.T) {
	m := newTestModel(t, quizDoc)
	m = press(t, m, "3")

	wrong := (m.quiz.correct + 1) % len(m.quiz.options)
	for i := 0; i < wrong; i++ {
		m = press(t, m, "down")
	}
	m = press(t, m, "enter")
	if m.quiz.score != 0 {
		t.Errorf("score = %d, want 0", m.quiz.score)
	}
	if !strings.Contains(m.View(), "Not quite.") {
		t.Error("view missing wrong-answer feedback")
	}
	if !strings.Contains(m.View(), "Only one option differs.") {
		t.Error("explanation should show for wrong answers too")
	}
}

func TestQuizScopedToLesson(t *testing.T) {
	lib, err := content.Load([]byte(twoLessonDoc))
	if err != nil {
		t.Fatal(err)
	}
	lesson, err := lib.Lesson("second")
	if err != nil {
		t.Fatal(err)
	}
	m := New(lib, Options{Source: secrand.Seeded(1), Questions: lesson.Questions})
	m = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
	m = press(t, m, "3")

	if len(m.quiz.questions) != 1 {
		t.Fatalf("quiz has %d questions, want 1", len(m.quiz.questions))
	}
	view := m.View()
	if !strings.Contains(view, "Second prompt.") {
		t.Errorf("view = %q, want the scoped lesson's prompt", view)
	}
	if strings.Contains(view, "First prompt.") {
		t.Error("question from an out-of-scope lesson leaked in")
	}
}

func TestQuizRestart(t *testing.T) {
	m := newTestModel(t, quizDoc)
	m = press(t, m, "3", "enter", "enter")
	if !m.quiz.done {
		t.Fatal("quiz should be done")
	}
	m = press(t, m, "r")
	if m.quiz.done || m.quiz.index != 0 || m.quiz.score != 0 {
		t.Errorf("restart left index=%d score=%d done=%v", m.quiz.index, m.quiz.score, m.quiz.done)
	}
	if len(m.quiz.options) != 3 {
		t.Errorf("options = %v after restart", m.quiz.options)
	}
}

func TestQuizWithoutQuestions(t *testing.T) {
	m := newTestModel(t, quizlessDoc)
	m = press(t, m, "3")
	if !strings.Contains(m.View(), "no quiz questions") {
		t.Errorf("view = %q", m.View())
	}
	// No questions to answer; these must not panic or change anything.
	m = press(t, m, "enter", "down", "r")
	if m.quiz.score != 0 {
		t.Errorf("score = %d", m.quiz.score)
	}
}

func TestRateTabTyping(t *testing.T) {
	m := newTestModel(t, quizDoc)
	m = press(t, m, "2")
	m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("Aa1!")})
	if got := m.rate.input.Value(); got != "Aa1!" {
		t.Fatalf("input value = %q", got)
	}
	view := m.View()
	if !strings.Contains(view, "26.2 bits over a pool of 94") {
		t.Errorf("view missing estimate: %q", view)
	}
	if !strings.Contains(view, "very weak") {
		t.Errorf("view missing level label: %q", view)
	}

	m = press(t, m, "esc")
	if got := m.rate.input.Value(); got != "" {
		t.Errorf("esc left input value %q", got)
	}
	if !strings.Contains(m.View(), "never stored") {
		t.Error("empty rate tab should show the privacy hint")
	}
}

func TestRateTabLettersAreTypingNotHotkeys(t *testing.T) {
	m := newTestModel(t, quizDoc)
	m = press(t, m, "2")
	next, cmd := m.Update(key("q"))
	m = next.(Model)
	if cmd != nil {
		if _, quit := cmd().(tea.QuitMsg); quit {
			t.Fatal("q must type into the input, not quit")
		}
	}
	if got := m.rate.input.Value(); got != "q" {
		t.Errorf("input value = %q, want %q", got, "q")
	}
}

func TestQuitKeys(t *testing.T) {
	m := newTestModel(t, quizDoc)
	_, cmd := m.Update(key("q"))
	if cmd == nil {
		t.Fatal("q on the Generate tab should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q did not produce a quit")
	}

	m = press(t, m, "2")
	_, cmd = m.Update(key("ctrl+c"))
	if cmd == nil {
		t.Fatal("ctrl+c should always quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("ctrl+c did not produce a quit")
	}
}
