// Package issue creates a Linear issue and checks out the branch Linear names for it.
package issue

import (
	"context"
	"strings"

	"github.com/dimasma0305/linearcli/internal/linearcli/errors"
	"github.com/dimasma0305/linearcli/internal/linearcli/linearapi"
	"github.com/dimasma0305/linearcli/internal/linearcli/vcs"
	"github.com/dimasma0305/linearcli/internal/log"
)

// Tracker is the part of the Linear API issue creation needs.
type Tracker interface {
	Viewer(ctx context.Context) (*linearapi.User, error)
	TeamStates(ctx context.Context, teamID string) ([]linearapi.WorkflowState, error)
	CreateIssue(ctx context.Context, input linearapi.IssueCreateInput) (*linearapi.Issue, error)
}

// Options describes the issue to create.
type Options struct {
	TeamID      string
	Title       string
	Description string
	// StateMatch selects the initial state by substring; empty leaves the tracker default.
	StateMatch string
	Estimate   int
	Priority   int
}

// FindState returns the id of the first state whose name contains match
// (case-sensitive), or "" when none does.
func FindState(states []linearapi.WorkflowState, match string) string {
	if match == "" {
		return ""
	}
	for _, s := range states {
		if strings.Contains(s.Name, match) {
			return s.ID
		}
	}
	return ""
}

// Title joins argument words with single spaces, collapsing any whitespace
// inside or around them.
func Title(words []string) string {
	return strings.Join(strings.Fields(strings.Join(words, " ")), " ")
}

// Create resolves the assignee and initial state, then creates the issue.
func Create(ctx context.Context, tr Tracker, opts Options) (*linearapi.Issue, error) {
	viewer, err := tr.Viewer(ctx)
	if err != nil {
		return nil, errors.Classify(errors.KindRemote, err)
	}
	log.Debug("Assigning to %s (%s)", viewer.Name, viewer.ID)

	states, err := tr.TeamStates(ctx, opts.TeamID)
	if err != nil {
		return nil, errors.Classify(errors.KindRemote, err)
	}
	stateID := FindState(states, opts.StateMatch)
	if stateID == "" {
		log.Debug("No state matching %q, using the team default", opts.StateMatch)
	}

	input := linearapi.IssueCreateInput{
		TeamID:      opts.TeamID,
		Title:       opts.Title,
		Description: opts.Description,
		AssigneeID:  viewer.ID,
		StateID:     stateID,
		Estimate:    linearapi.Int(opts.Estimate),
		Priority:    linearapi.Int(opts.Priority),
	}
	created, err := tr.CreateIssue(ctx, input)
	if err != nil {
		return nil, errors.Classify(errors.KindRemote, err)
	}
	if created == nil {
		return nil, &errors.Error{Kind: errors.KindRemote, Message: errors.ErrIssueNotCreated.Error(), Err: errors.ErrIssueNotCreated}
	}
	return created, nil
}

// CreateAndCheckout creates the issue, then switches to a new local branch
// named exactly as Linear returned it.
func CreateAndCheckout(ctx context.Context, tr Tracker, b vcs.Brancher, opts Options) (*linearapi.Issue, error) {
	created, err := Create(ctx, tr, opts)
	if err != nil {
		return nil, err
	}

	log.Info("Issue created: %s with ID %s", created.Title, created.Identifier)

	if err := b.CheckoutNewBranch(ctx, created.BranchName); err != nil {
		return created, errors.Classify(errors.KindSubprocess, err)
	}

	log.Info("Issue URL: %s", created.URL)
	return created, nil
}
