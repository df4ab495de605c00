package linearapi

import "context"

// Issue is a Linear issue as returned by issueCreate
type Issue struct {
	ID         string `json:"id"`
	Identifier string `json:"identifier"`
	Title      string `json:"title"`
	URL        string `json:"url"`
	BranchName string `json:"branchName"`
}

// IssueCreateInput mirrors Linear's IssueCreateInput. Nil/empty optional
// fields are omitted so the server applies its defaults.
type IssueCreateInput struct {
	TeamID      string `json:"teamId"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	AssigneeID  string `json:"assigneeId,omitempty"`
	StateID     string `json:"stateId,omitempty"`
	Estimate    *int   `json:"estimate,omitempty"`
	Priority    *int   `json:"priority,omitempty"`
}

const issueCreateMutation = `mutation IssueCreate($input: IssueCreateInput!) {
  issueCreate(input: $input) {
    success
    issue { id identifier title url branchName }
  }
}`

// CreateIssue creates an issue. A nil issue with a nil error means the API
// reported success=false.
func (c *Client) CreateIssue(ctx context.Context, input IssueCreateInput) (*Issue, error) {
	var data struct {
		IssueCreate struct {
			Success bool   `json:"success"`
			Issue   *Issue `json:"issue"`
		} `json:"issueCreate"`
	}
	if err := c.do(ctx, "issueCreate", issueCreateMutation, map[string]any{"input": input}, &data); err != nil {
		return nil, err
	}
	if !data.IssueCreate.Success {
		return nil, nil
	}
	return data.IssueCreate.Issue, nil
}

// Int returns a pointer to v, for the optional numeric input fields.
func Int(v int) *int {
	return &v
}
