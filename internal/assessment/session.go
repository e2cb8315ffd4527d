// Package assessment holds the state of one assessment run: the ordered
// question list, answers collected so far, and the position of the
// respondent in the flow. Each session is an explicit value; nothing is
// shared between sessions, so any number can run side by side.
package assessment

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/riskcheck/internal/catalog"
	"github.com/abhisek/riskcheck/internal/scoring"
)

// ErrFinished is returned when a mutation is attempted on a session
// whose result has already been computed.
var ErrFinished = errors.New("assessment already finished")

// ErrOptionOutOfRange is returned by SetAnswer for an invalid option index.
var ErrOptionOutOfRange = errors.New("option index out of range")

// Session is the mutable state of a single assessment run. Answers are
// collected one by one; once Finish computes the result the session is
// frozen and further answers are rejected.
type Session struct {
	ID        string
	Org       string // optional organization name, echoed into reports
	StartedAt time.Time

	questions []catalog.Question
	answers   map[string]int // question ID -> chosen option index
	index     int            // current question position
	result    *scoring.Result
}

// New creates a fresh session over the full question catalog.
func New(org string) *Session {
	return &Session{
		ID:        uuid.New().String(),
		Org:       org,
		StartedAt: time.Now(),
		questions: catalog.Questions(),
		answers:   make(map[string]int, catalog.NumQuestions()),
	}
}

// Current returns the question at the session's current position.
func (s *Session) Current() catalog.Question {
	return s.questions[s.index]
}

// Index returns the zero-based position of the current question.
func (s *Session) Index() int {
	return s.index
}

// Total returns the number of questions in the assessment.
func (s *Session) Total() int {
	return len(s.questions)
}

// Selected returns the option index previously chosen for the current
// question, if any.
func (s *Session) Selected() (int, bool) {
	idx, ok := s.answers[s.Current().ID]
	return idx, ok
}

// SetAnswer records the chosen option for the current question.
// Re-answering before Finish overwrites the previous choice.
func (s *Session) SetAnswer(optionIndex int) error {
	if s.result != nil {
		return ErrFinished
	}
	if optionIndex < 0 || optionIndex >= catalog.OptionsPerQuestion {
		return ErrOptionOutOfRange
	}
	s.answers[s.Current().ID] = optionIndex
	return nil
}

// Next advances to the following question. It refuses to move past an
// unanswered question and reports whether the position changed.
func (s *Session) Next() bool {
	if _, answered := s.answers[s.Current().ID]; !answered {
		return false
	}
	if s.index >= len(s.questions)-1 {
		return false
	}
	s.index++
	return true
}

// Prev moves back to the previous question, reporting whether the
// position changed.
func (s *Session) Prev() bool {
	if s.index == 0 {
		return false
	}
	s.index--
	return true
}

// AnsweredCount returns how many questions have an answer recorded.
func (s *Session) AnsweredCount() int {
	return len(s.answers)
}

// Progress returns the answered fraction in [0, 1].
func (s *Session) Progress() float64 {
	return float64(len(s.answers)) / float64(len(s.questions))
}

// Complete reports whether every question has an answer.
func (s *Session) Complete() bool {
	return len(s.answers) == len(s.questions)
}

// Answers converts the recorded option choices into the scoring
// engine's input: question ID to risk value.
func (s *Session) Answers() scoring.Answers {
	out := make(scoring.Answers, len(s.answers))
	for _, q := range s.questions {
		optIdx, ok := s.answers[q.ID]
		if !ok {
			continue
		}
		out[q.ID] = q.Options[optIdx].Risk
	}
	return out
}

// Finish runs the scoring engine over the collected answers, memoizes
// the result and freezes the session. Finishing an incomplete session
// surfaces the engine's ValidationError. Calling Finish again returns
// the memoized result.
func (s *Session) Finish() (*scoring.Result, error) {
	if s.result != nil {
		return s.result, nil
	}
	res, err := scoring.Score(s.Answers())
	if err != nil {
		return nil, err
	}
	s.result = res
	return res, nil
}

// Result returns the memoized result, or nil before Finish.
func (s *Session) Result() *scoring.Result {
	return s.result
}
