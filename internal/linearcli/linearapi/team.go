package linearapi

import (
	"context"
	"fmt"
)

// Team represents a Linear team
type Team struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Key  string `json:"key"`
}

// WorkflowState is one column of a team's workflow (Backlog, In Progress, ...)
type WorkflowState struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

type pageInfo struct {
	HasNextPage bool   `json:"hasNextPage"`
	EndCursor   string `json:"endCursor"`
}

const teamsPageSize = 100

const teamsQuery = `query Teams($first: Int!, $after: String) {
  teams(first: $first, after: $after) {
    nodes { id name key }
    pageInfo { hasNextPage endCursor }
  }
}`

// Teams lists every team the API key can see, following pagination.
func (c *Client) Teams(ctx context.Context) ([]Team, error) {
	var teams []Team
	var after any
	for {
		var data struct {
			Teams struct {
				Nodes    []Team   `json:"nodes"`
				PageInfo pageInfo `json:"pageInfo"`
			} `json:"teams"`
		}
		vars := map[string]any{"first": teamsPageSize, "after": after}
		if err := c.do(ctx, "teams", teamsQuery, vars, &data); err != nil {
			return nil, err
		}
		teams = append(teams, data.Teams.Nodes...)
		if !data.Teams.PageInfo.HasNextPage || data.Teams.PageInfo.EndCursor == "" {
			break
		}
		after = data.Teams.PageInfo.EndCursor
	}
	if teams == nil {
		teams = []Team{}
	}
	return teams, nil
}

const teamStatesQuery = `query TeamStates($id: String!) {
  team(id: $id) {
    states { nodes { id name type } }
  }
}`

// TeamStates returns the workflow states of a team in the order the API lists them.
func (c *Client) TeamStates(ctx context.Context, teamID string) ([]WorkflowState, error) {
	var data struct {
		Team *struct {
			States struct {
				Nodes []WorkflowState `json:"nodes"`
			} `json:"states"`
		} `json:"team"`
	}
	if err := c.do(ctx, "team", teamStatesQuery, map[string]any{"id": teamID}, &data); err != nil {
		return nil, err
	}
	if data.Team == nil {
		return nil, fmt.Errorf("team %s not found", teamID)
	}
	return data.Team.States.Nodes, nil
}
