// Package prompt renders the interactive questions the commands ask.
package prompt

import (
	"fmt"
	"strings"

	"github.com/AlecAivazis/survey/v2"

	"github.com/dimasma0305/linearcli/internal/linearcli/errors"
)

var errNoChoices = errors.New(errors.KindValidation, "no options to select from")

// Choice is one entry of a single-choice list: Name is shown, Value is returned.
type Choice struct {
	Name  string
	Value string
}

// Prompter asks the user for input.
type Prompter interface {
	// Input asks for free text, re-prompting with requiredMessage while the answer is empty.
	Input(message, requiredMessage string) (string, error)
	// Select asks the user to pick one of choices and returns its Value.
	Select(message string, choices []Choice) (string, error)
}

// AskFunc has the signature of survey.AskOne.
type AskFunc func(p survey.Prompt, response interface{}, opts ...survey.AskOpt) error

// Survey is the terminal Prompter.
type Survey struct {
	ask  AskFunc
	opts []survey.AskOpt
}

// NewSurvey returns a Prompter backed by survey. opts are passed to every question.
func NewSurvey(opts ...survey.AskOpt) *Survey {
	return &Survey{ask: survey.AskOne, opts: opts}
}

// Required returns a survey validator that rejects empty answers with message.
func Required(message string) survey.Validator {
	return func(ans interface{}) error {
		s, ok := ans.(string)
		if !ok || s == "" {
			return errors.New(errors.KindValidation, message)
		}
		return nil
	}
}

// Input implements Prompter.
func (s *Survey) Input(message, requiredMessage string) (string, error) {
	var answer string
	opts := append([]survey.AskOpt{survey.WithValidator(Required(requiredMessage))}, s.opts...)
	if err := s.ask(&survey.Input{Message: message}, &answer, opts...); err != nil {
		return "", fmt.Errorf("prompt canceled: %w", err)
	}
	return answer, nil
}

// Select implements Prompter.
func (s *Survey) Select(message string, choices []Choice) (string, error) {
	if len(choices) == 0 {
		return "", errNoChoices
	}

	options := make([]string, len(choices))
	for i, c := range choices {
		options[i] = c.Name
	}

	var index int
	if err := s.ask(&survey.Select{Message: message, Options: options}, &index, s.opts...); err != nil {
		return "", fmt.Errorf("prompt canceled: %w", err)
	}
	if index < 0 || index >= len(choices) {
		return "", fmt.Errorf("selection %d out of range", index)
	}
	return choices[index].Value, nil
}

// Names returns the display names of choices, for logging.
func Names(choices []Choice) string {
	names := make([]string, len(choices))
	for i, c := range choices {
		names[i] = c.Name
	}
	return strings.Join(names, ", ")
}
