// Package team resolves which Linear team an issue is created in.
package team

import (
	"context"

	"github.com/dimasma0305/linearcli/internal/linearcli/errors"
	"github.com/dimasma0305/linearcli/internal/linearcli/linearapi"
	"github.com/dimasma0305/linearcli/internal/linearcli/prompt"
	"github.com/dimasma0305/linearcli/internal/log"
)

// Prompt messages for each flow that picks a team.
const (
	MsgDefaultTeam    = "Select your default team:"
	MsgNewDefaultTeam = "Select your new default team:"
	MsgIssueTeam      = "Select a team for this issue:"
)

// Lister lists the teams visible to the API key.
type Lister interface {
	Teams(ctx context.Context) ([]linearapi.Team, error)
}

// Fetch lists teams. Failures are logged and reported as an empty list.
func Fetch(ctx context.Context, l Lister) []linearapi.Team {
	teams, err := l.Teams(ctx)
	if err != nil {
		log.Error("Failed to fetch teams: %v", err)
		return []linearapi.Team{}
	}
	log.Debug("Fetched %d teams", len(teams))
	return teams
}

// Choices maps teams to prompt choices showing the name and returning the id.
func Choices(teams []linearapi.Team) []prompt.Choice {
	choices := make([]prompt.Choice, len(teams))
	for i, t := range teams {
		choices[i] = prompt.Choice{Name: t.Name, Value: t.ID}
	}
	return choices
}

// Choose fetches teams and asks the user to pick one.
func Choose(ctx context.Context, l Lister, p prompt.Prompter, message string) (*linearapi.Team, error) {
	teams := Fetch(ctx, l)
	if len(teams) == 0 {
		return nil, &errors.Error{Kind: errors.KindRemote, Message: errors.ErrNoTeams.Error(), Err: errors.ErrNoTeams}
	}

	choices := Choices(teams)
	log.Debug("Team choices: %s", prompt.Names(choices))

	id, err := p.Select(message, choices)
	if err != nil {
		return nil, errors.Classify(errors.KindValidation, err)
	}
	for i := range teams {
		if teams[i].ID == id {
			return &teams[i], nil
		}
	}
	return &linearapi.Team{ID: id}, nil
}
