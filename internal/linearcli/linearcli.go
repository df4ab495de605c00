// Package linearcli wires the credential store, the Linear client, the
// prompts and git together into the login, fix and update-team flows.
package linearcli

import (
	"context"

	"github.com/dimasma0305/linearcli/internal/linearcli/config"
	"github.com/dimasma0305/linearcli/internal/linearcli/errors"
	"github.com/dimasma0305/linearcli/internal/linearcli/issue"
	"github.com/dimasma0305/linearcli/internal/linearcli/keystore"
	"github.com/dimasma0305/linearcli/internal/linearcli/linearapi"
	"github.com/dimasma0305/linearcli/internal/linearcli/prompt"
	"github.com/dimasma0305/linearcli/internal/linearcli/team"
	"github.com/dimasma0305/linearcli/internal/linearcli/vcs"
	"github.com/dimasma0305/linearcli/internal/log"
)

// Guidance shown when a flow cannot start.
const (
	MsgNoAPIKeyLogin  = "No API key found. Please login using `000 login`."
	MsgNoAPIKeyFirst  = "No API key found. Please use `000 login` first."
	MsgNoDefaultTeam  = "No default team found. Please use `000 update-team` to set your default team."
	MsgNoTitle        = "Please provide a brief issue title for the fix command."
	MsgAPIKeyPrompt   = "Enter your Linear API key:"
	MsgAPIKeyRequired = "API key is required!"
)

// CredentialStore persists the API key and default team.
type CredentialStore interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
}

// Tracker is everything the flows call on Linear.
type Tracker interface {
	team.Lister
	issue.Tracker
}

// TrackerFactory builds a Tracker for an API key.
type TrackerFactory func(apiKey string) (Tracker, error)

// App runs the commands against its collaborators.
type App struct {
	Config     *config.Config
	Store      CredentialStore
	Prompt     prompt.Prompter
	Git        vcs.Brancher
	NewTracker TrackerFactory
}

// New builds an App on the OS keyring, the terminal, git and the Linear API.
func New(conf *config.Config) *App {
	return &App{
		Config: conf,
		Store:  keystore.New(conf.ServiceName),
		Prompt: prompt.NewSurvey(),
		Git:    vcs.NewGit(conf.GitBinary),
		NewTracker: func(apiKey string) (Tracker, error) {
			return linearapi.New(apiKey,
				linearapi.WithURL(conf.APIURL),
				linearapi.WithTimeout(conf.Timeout),
			)
		},
	}
}

func (a *App) tracker(apiKey string) (Tracker, error) {
	tr, err := a.NewTracker(apiKey)
	if err != nil {
		return nil, errors.Classify(errors.KindValidation, err)
	}
	return tr, nil
}

// apiKey returns the stored key, or a missing-credential error carrying guidance.
func (a *App) apiKey(guidance string) (string, error) {
	key, ok, err := a.Store.Get(keystore.APIKey)
	if err != nil {
		return "", err
	}
	if !ok || key == "" {
		return "", errors.New(errors.KindMissingCredential, guidance)
	}
	return key, nil
}

// Login asks for an API key, stores it, then asks for and stores a default team.
func (a *App) Login(ctx context.Context) error {
	key, err := a.Prompt.Input(MsgAPIKeyPrompt, MsgAPIKeyRequired)
	if err != nil {
		return errors.Classify(errors.KindValidation, err)
	}
	if err := a.Store.Set(keystore.APIKey, key); err != nil {
		return err
	}
	log.Info("Linear API key stored successfully.")

	tr, err := a.tracker(key)
	if err != nil {
		return err
	}
	chosen, err := team.Choose(ctx, tr, a.Prompt, team.MsgDefaultTeam)
	if err != nil {
		return err
	}
	if err := a.Store.Set(keystore.DefaultTeam, chosen.ID); err != nil {
		return err
	}
	log.InfoH2("Default team set to %s.", displayName(chosen))
	return nil
}

// UpdateTeam replaces the stored default team.
func (a *App) UpdateTeam(ctx context.Context) error {
	key, err := a.apiKey(MsgNoAPIKeyFirst)
	if err != nil {
		return err
	}
	tr, err := a.tracker(key)
	if err != nil {
		return err
	}
	chosen, err := team.Choose(ctx, tr, a.Prompt, team.MsgNewDefaultTeam)
	if err != nil {
		return err
	}
	if err := a.Store.Set(keystore.DefaultTeam, chosen.ID); err != nil {
		return err
	}
	log.Info("Default team updated successfully.")
	return nil
}

// Fix creates an issue titled by words and checks out its branch. With
// selectTeam the team is picked interactively for this issue only.
func (a *App) Fix(ctx context.Context, words []string, selectTeam bool) (*linearapi.Issue, error) {
	key, err := a.apiKey(MsgNoAPIKeyLogin)
	if err != nil {
		return nil, err
	}

	title := issue.Title(words)
	if title == "" {
		return nil, errors.New(errors.KindValidation, MsgNoTitle)
	}

	var teamID string
	var tr Tracker
	if selectTeam {
		if tr, err = a.tracker(key); err != nil {
			return nil, err
		}
		chosen, err := team.Choose(ctx, tr, a.Prompt, team.MsgIssueTeam)
		if err != nil {
			return nil, err
		}
		teamID = chosen.ID
	} else {
		id, ok, err := a.Store.Get(keystore.DefaultTeam)
		if err != nil {
			return nil, err
		}
		if !ok || id == "" {
			return nil, errors.New(errors.KindMissingCredential, MsgNoDefaultTeam)
		}
		teamID = id
	}

	if tr == nil {
		if tr, err = a.tracker(key); err != nil {
			return nil, err
		}
	}

	log.Debug("Creating %q in team %s", title, teamID)
	return issue.CreateAndCheckout(ctx, tr, a.Git, issue.Options{
		TeamID:      teamID,
		Title:       title,
		Description: a.Config.Description,
		StateMatch:  a.Config.StateMatch,
		Estimate:    a.Config.Estimate,
		Priority:    a.Config.Priority,
	})
}

func displayName(t *linearapi.Team) string {
	if t.Name != "" {
		return t.Name
	}
	return t.ID
}
