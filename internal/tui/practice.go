package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/studytrail/studytrail/internal/evaluation"
	"github.com/studytrail/studytrail/internal/mastery"
	"github.com/studytrail/studytrail/internal/quizgen"
)

type practicePhase int

const (
	phaseAnswering practicePhase = iota
	phaseSubmitting
	phaseResult
)

// answered pairs one quiz question with the student's response.
type answered struct {
	question quizgen.Question
	given    string
	correct  bool
}

// submittedMsg carries the submission outcome back into the model.
type submittedMsg struct {
	answers []answered
	outcome *mastery.SubmissionOutcome
	err     error
}

// PracticeModel runs one practice test: it collects answers, grades them,
// reviews short-answer reasoning, and applies the submission to the
// student's mastery record.
type PracticeModel struct {
	quiz       *quizgen.Quiz
	objectives []string
	masterySv  *mastery.Service
	reviewSv   *evaluation.Service
	studentID  string
	sessionID  string

	phase   practicePhase
	index   int
	cursor  int
	input   textinput.Model
	answers []string

	result submittedMsg
	width  int
	height int
}

// NewPractice creates a practice session model. objectives is the module's
// objective list, used to give reasoning reviews the objective wording.
func NewPractice(quiz *quizgen.Quiz, objectives []string, masterySv *mastery.Service, reviewSv *evaluation.Service, studentID, sessionID string) PracticeModel {
	ti := textinput.New()
	ti.Placeholder = "Type your answer"
	ti.Focus()

	return PracticeModel{
		quiz:       quiz,
		objectives: objectives,
		masterySv:  masterySv,
		reviewSv:   reviewSv,
		studentID:  studentID,
		sessionID:  sessionID,
		input:      ti,
		answers:    make([]string, 0, len(quiz.Questions)),
	}
}

func (m PracticeModel) Init() tea.Cmd {
	return m.input.Focus()
}

func (m PracticeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.phase {
		case phaseAnswering:
			return m.updateAnswering(msg)
		case phaseResult:
			switch msg.String() {
			case "q", "enter", "esc":
				return m, tea.Quit
			}
			return m, nil
		}
		return m, nil

	case submittedMsg:
		m.result = msg
		m.phase = phaseResult
		return m, nil
	}

	if m.phase == phaseAnswering && !m.currentIsChoice() {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m PracticeModel) updateAnswering(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	q := m.quiz.Questions[m.index]

	if m.currentIsChoice() {
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case "down", "j":
			if m.cursor < len(q.Choices)-1 {
				m.cursor++
			}
			return m, nil
		case "enter":
			return m.recordAnswer(q.Choices[m.cursor])
		}
		return m, nil
	}

	if msg.String() == "enter" {
		return m.recordAnswer(m.input.Value())
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m PracticeModel) recordAnswer(given string) (tea.Model, tea.Cmd) {
	m.answers = append(m.answers, given)

	if m.index+1 < len(m.quiz.Questions) {
		m.index++
		m.cursor = 0
		m.input.Reset()
		return m, nil
	}

	m.phase = phaseSubmitting
	return m, m.submitCmd()
}

// submitCmd grades every answer, reviews short-answer reasoning, and applies
// the submission under the waterfall policy.
func (m PracticeModel) submitCmd() tea.Cmd {
	quiz := m.quiz
	answers := m.answers
	masterySv := m.masterySv
	reviewSv := m.reviewSv
	studentID := m.studentID
	sessionID := m.sessionID
	moduleObjectives := m.objectives

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()

		results := make([]answered, len(quiz.Questions))
		graded := make([]mastery.GradedQuestion, len(quiz.Questions))

		for i, q := range quiz.Questions {
			given := answers[i]
			correct := quizgen.CheckAnswer(given, &q)
			results[i] = answered{question: q, given: given, correct: correct}

			att := mastery.Attempt{
				Format:     q.Format,
				Correct:    correct,
				AnsweredAt: time.Now(),
			}

			// Short answers get a reasoning review. Review failure is not
			// fatal: the attempt is recorded unreviewed.
			if q.Format == mastery.FormatShortAnswer && reviewSv != nil {
				objective := ""
				if len(q.Objectives) > 0 && q.Objectives[0] < len(moduleObjectives) {
					objective = moduleObjectives[q.Objectives[0]]
				}
				review, err := reviewSv.Review(ctx, &evaluation.ReviewInput{
					Objective:     objective,
					QuestionText:  q.Text,
					CorrectAnswer: q.Answer,
					GivenAnswer:   given,
					Correct:       correct,
				})
				if err == nil && review != nil {
					att.Evaluation = &mastery.Evaluation{
						Score:        review.Score,
						MajorMistake: review.MajorMistake,
					}
				}
			}

			graded[i] = mastery.GradedQuestion{
				Attempt:       att,
				Objectives:    q.Objectives,
				QuestionText:  q.Text,
				GivenAnswer:   given,
				CorrectAnswer: q.Answer,
			}
		}

		outcome, err := masterySv.ApplySubmission(ctx, studentID, quiz.ModuleID, sessionID, graded)
		return submittedMsg{answers: results, outcome: outcome, err: err}
	}
}

func (m PracticeModel) currentIsChoice() bool {
	return m.quiz.Questions[m.index].Format == mastery.FormatMultipleChoice
}

func (m PracticeModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	switch m.phase {
	case phaseAnswering:
		v.SetContent(m.viewQuestion())
	case phaseSubmitting:
		v.SetContent(hintStyle.Render("Grading your answers..."))
	case phaseResult:
		v.SetContent(m.viewResult())
	}
	return v
}

func (m PracticeModel) viewQuestion() string {
	q := m.quiz.Questions[m.index]

	var b strings.Builder
	b.WriteString(titleStyle.Render(m.quiz.Title))
	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render(fmt.Sprintf("Question %d of %d", m.index+1, len(m.quiz.Questions))))
	b.WriteString("\n\n")
	b.WriteString(cardStyle.Render(bodyStyle.Render(q.Text)))
	b.WriteString("\n\n")

	if m.currentIsChoice() {
		for i, choice := range q.Choices {
			cursor := "  "
			style := bodyStyle
			if i == m.cursor {
				cursor = "▸ "
				style = selectedStyle
			}
			fmt.Fprintf(&b, "%s%s\n", cursor, style.Render(choice))
		}
		b.WriteString("\n")
		b.WriteString(hintStyle.Render("↑↓ select · enter submit"))
	} else {
		b.WriteString(m.input.View())
		b.WriteString("\n\n")
		b.WriteString(hintStyle.Render("enter submit"))
	}
	return b.String()
}

func (m PracticeModel) viewResult() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Results"))
	b.WriteString("\n\n")

	if m.result.err != nil {
		b.WriteString(incorrectStyle.Render("Could not record this session: " + m.result.err.Error()))
		b.WriteString("\n\n")
		b.WriteString(hintStyle.Render("q quit"))
		return b.String()
	}

	correct := 0
	for _, a := range m.result.answers {
		if a.correct {
			correct++
		}
	}
	fmt.Fprintf(&b, "%s\n\n", bodyStyle.Render(fmt.Sprintf("You got %d of %d correct.", correct, len(m.result.answers))))

	for i, a := range m.result.answers {
		mark := correctStyle.Render("✓")
		if !a.correct {
			mark = incorrectStyle.Render("✗")
		}
		fmt.Fprintf(&b, "%s %s\n", mark, bodyStyle.Render(a.question.Text))
		if !a.correct {
			fmt.Fprintf(&b, "   %s\n", subtitleStyle.Render("Answer: "+a.question.Answer))
		}
		if i == len(m.result.answers)-1 {
			b.WriteString("\n")
		}
	}

	if out := m.result.outcome; out != nil {
		if out.AllMastered {
			b.WriteString(correctStyle.Render("Every objective this test covers is already mastered."))
			b.WriteString("\n")
		} else {
			fmt.Fprintf(&b, "%s\n", bodyStyle.Render(fmt.Sprintf(
				"Objective %d: %s", out.Objective+1, string(out.After.Status))))
			if tr := out.Transition; tr != nil {
				fmt.Fprintf(&b, "%s\n", statusStyle(string(tr.To)).Render(fmt.Sprintf(
					"%s %s → %s", statusIcon(string(tr.To)), tr.From, tr.To)))
			}
			fmt.Fprintf(&b, "%s\n", hintStyle.Render(out.After.Recommendation))
		}
	}

	b.WriteString("\n")
	b.WriteString(hintStyle.Render("q quit"))
	return b.String()
}

// RunPractice starts the practice session program.
func RunPractice(model PracticeModel) error {
	p := tea.NewProgram(model)
	_, err := p.Run()
	return err
}
