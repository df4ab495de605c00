package team

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/dimasma0305/linearcli/internal/linearcli/errors"
	"github.com/dimasma0305/linearcli/internal/linearcli/linearapi"
	"github.com/dimasma0305/linearcli/internal/linearcli/prompt"
)

type fakeLister struct {
	teams []linearapi.Team
	err   error
	calls int
}

func (f *fakeLister) Teams(context.Context) ([]linearapi.Team, error) {
	f.calls++
	return f.teams, f.err
}

type pickByName struct {
	name     string
	messages []string
	choices  []prompt.Choice
}

func (p *pickByName) Input(string, string) (string, error) {
	return "", fmt.Errorf("unexpected input prompt")
}

func (p *pickByName) Select(message string, choices []prompt.Choice) (string, error) {
	p.messages = append(p.messages, message)
	p.choices = choices
	for _, c := range choices {
		if c.Name == p.name {
			return c.Value, nil
		}
	}
	return "", fmt.Errorf("no choice named %q", p.name)
}

var coreAndGrowth = []linearapi.Team{{ID: "T1", Name: "Core"}, {ID: "T2", Name: "Growth"}}

func TestFetch(t *testing.T) {
	l := &fakeLister{teams: coreAndGrowth}
	if diff := cmp.Diff(coreAndGrowth, Fetch(context.Background(), l)); diff != "" {
		t.Errorf("Fetch() mismatch (-want +got):\n%s", diff)
	}
}

func TestFetch_ErrorBecomesEmptyList(t *testing.T) {
	l := &fakeLister{err: fmt.Errorf("Authentication required")}

	got := Fetch(context.Background(), l)
	if got == nil || len(got) != 0 {
		t.Errorf("Fetch() = %#v, want empty list", got)
	}
}

func TestChoices(t *testing.T) {
	want := []prompt.Choice{{Name: "Core", Value: "T1"}, {Name: "Growth", Value: "T2"}}
	if diff := cmp.Diff(want, Choices(coreAndGrowth)); diff != "" {
		t.Errorf("Choices() mismatch (-want +got):\n%s", diff)
	}
}

func TestChoose(t *testing.T) {
	l := &fakeLister{teams: coreAndGrowth}
	p := &pickByName{name: "Growth"}

	got, err := Choose(context.Background(), l, p, MsgDefaultTeam)
	if err != nil {
		t.Fatalf("Choose() failed: %v", err)
	}
	if diff := cmp.Diff(&linearapi.Team{ID: "T2", Name: "Growth"}, got); diff != "" {
		t.Errorf("Choose() mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{MsgDefaultTeam}, p.messages); diff != "" {
		t.Errorf("prompt messages mismatch (-want +got):\n%s", diff)
	}
}

func TestChoose_NoTeams(t *testing.T) {
	l := &fakeLister{err: fmt.Errorf("offline")}
	p := &pickByName{name: "Core"}

	_, err := Choose(context.Background(), l, p, MsgIssueTeam)
	if !errors.Is(err, errors.ErrNoTeams) {
		t.Fatalf("Choose() error = %v, want ErrNoTeams", err)
	}
	if len(p.messages) != 0 {
		t.Error("no prompt should be shown when there are no teams")
	}
}

func TestChoose_PromptFailure(t *testing.T) {
	l := &fakeLister{teams: coreAndGrowth}
	p := &pickByName{name: "Nope"}

	_, err := Choose(context.Background(), l, p, MsgIssueTeam)
	if err == nil {
		t.Fatal("expected error")
	}
	if errors.KindOf(err) != errors.KindValidation {
		t.Errorf("KindOf() = %v, want %v", errors.KindOf(err), errors.KindValidation)
	}
}
