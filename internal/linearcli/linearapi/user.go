package linearapi

import "context"

// User is a Linear user
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

const viewerQuery = `query Viewer { viewer { id name email } }`

// Viewer returns the user the API key belongs to.
func (c *Client) Viewer(ctx context.Context) (*User, error) {
	var data struct {
		Viewer *User `json:"viewer"`
	}
	if err := c.do(ctx, "viewer", viewerQuery, nil, &data); err != nil {
		return nil, err
	}
	if data.Viewer == nil || data.Viewer.ID == "" {
		return nil, &GraphQLError{Operation: "viewer"}
	}
	return data.Viewer, nil
}
