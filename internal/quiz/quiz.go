// Package quiz drills a user on quaternion multiplication over a text
// stream: it asks for the four components of random products and scores
// the answers.
package quiz

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/Faultbox/quatkit/pkg/quat"
)

// Result is the outcome of a quiz run.
type Result struct {
	Questions int
	Correct   int
}

// Percent returns the score as a percentage. A quiz with no questions
// scores 0.
func (r Result) Percent() float64 {
	if r.Questions == 0 {
		return 0
	}
	return 100.0 * float64(r.Correct) / float64(r.Questions)
}

// Quiz reads answers from in and writes prompts to out.
type Quiz struct {
	in  *bufio.Scanner
	out io.Writer
	src quat.IntSource
	rng quat.Range
	log *zap.Logger
}

// Option configures a Quiz.
type Option func(*Quiz)

// WithRange sets the interval question components are drawn from.
func WithRange(r quat.Range) Option {
	return func(q *Quiz) { q.rng = r }
}

// WithLogger sets the logger used for per-answer records.
func WithLogger(l *zap.Logger) Option {
	return func(q *Quiz) { q.log = l }
}

// New creates a quiz drawing questions from src.
func New(in io.Reader, out io.Writer, src quat.IntSource, opts ...Option) *Quiz {
	q := &Quiz{
		in:  bufio.NewScanner(in),
		out: out,
		src: src,
		rng: quat.QuizRange,
		log: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(q)
	}
	return q
}

// AskCount asks how many questions to run.
func (q *Quiz) AskCount() (int, error) {
	fmt.Fprintln(q.out, "How many questions would you like?")
	return q.readInt()
}

// Run asks count questions and prints the final score. A negative count
// is an error.
func (q *Quiz) Run(count int) (Result, error) {
	if count < 0 {
		return Result{}, fmt.Errorf("question count must not be negative, got %d", count)
	}
	if err := q.rng.Validate(); err != nil {
		return Result{}, err
	}

	res := Result{Questions: count}
	for n := 1; n <= count; n++ {
		ok, err := q.ask(n)
		if err != nil {
			return res, fmt.Errorf("question %d: %w", n, err)
		}
		if ok {
			res.Correct++
		}
	}

	fmt.Fprintf(q.out, "You scored a %v\n", res.Percent())
	q.log.Info("quiz finished",
		zap.Int("questions", res.Questions),
		zap.Int("correct", res.Correct),
		zap.Float64("percent", res.Percent()))
	return res, nil
}

func (q *Quiz) ask(n int) (bool, error) {
	a := quat.Random(q.src, q.rng)
	b := quat.Random(q.src, q.rng)
	answer := a.Mul(b)

	fmt.Fprintf(q.out, "Question #%d: %v * %v = r.\n", n, a, b)

	var guess [4]float64
	for i := range guess {
		fmt.Fprintf(q.out, "What is r_%d?\n", i)
		v, err := q.readInt()
		if err != nil {
			return false, err
		}
		guess[i] = float64(v)
	}

	input := quat.New(guess[0], guess[1], guess[2], guess[3])
	correct := answer.Equal(input)
	if correct {
		fmt.Fprintln(q.out, "Correct!")
	} else {
		fmt.Fprintf(q.out, "Wrong. The correct answer was %v\n", answer)
	}

	q.log.Debug("answer",
		zap.Int("question", n),
		zap.Stringer("left", a),
		zap.Stringer("right", b),
		zap.Stringer("expected", answer),
		zap.Stringer("given", input),
		zap.Bool("correct", correct))
	return correct, nil
}

func (q *Quiz) readInt() (int, error) {
	if !q.in.Scan() {
		if err := q.in.Err(); err != nil {
			return 0, err
		}
		return 0, fmt.Errorf("reading answer: %w", io.ErrUnexpectedEOF)
	}
	return parseLeadingInt(q.in.Text()), nil
}

// parseLeadingInt returns the integer prefix of s after trimming space,
// or 0 when there is none. "12abc" is 12, "abc" is 0.
func parseLeadingInt(s string) int {
	s = strings.TrimSpace(s)
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0
	}
	v, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	return v
}
