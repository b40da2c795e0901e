package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

type Question int

const (
	AskImage Question = iota
	AskWatermark
	AskUseAlpha
	AskUseKey
	AskKey
	AskWeight
	AskMethod
	AskPosition
	AskOutput
)

// Asker answers the dialog's questions. ok is false when it has no answer.
type Asker interface {
	Ask(q Question, text string) (answer string, ok bool)
}

func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{in: bufio.NewScanner(in), out: out}
}

// Console prints each question and reads the answer from the next input line.
type Console struct {
	in  *bufio.Scanner
	out io.Writer
}

func (c *Console) Ask(_ Question, text string) (string, bool) {
	_, _ = fmt.Fprintln(c.out, text)
	if !c.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(c.in.Text()), true
}

// Chain asks each asker in turn and returns the first answer.
type Chain []Asker

func (c Chain) Ask(q Question, text string) (string, bool) {
	for _, a := range c {
		if answer, ok := a.Ask(q, text); ok {
			return answer, true
		}
	}
	return "", false
}

func NewRecorder(a Asker) *Recorder {
	return &Recorder{asker: a}
}

// Recorder passes questions through and keeps every answer in a Preset.
type Recorder struct {
	asker  Asker
	preset Preset
}

func (r *Recorder) Ask(q Question, text string) (string, bool) {
	answer, ok := r.asker.Ask(q, text)
	if ok {
		r.preset.set(q, answer)
	}
	return answer, ok
}

func (r *Recorder) Preset() Preset {
	return r.preset
}
