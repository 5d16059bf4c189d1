package gist

import (
	"context"
	"fmt"
	"net/http"
)

// Delete removes the gist with the given ID. The API answers 204 No Content
// on success; any other status is returned as a *StatusError.
func (c *Client) Delete(ctx context.Context, id string) error {
	resp, err := c.gh.Gists.Delete(ctx, id)
	if err := checkStatus(resp, err, http.StatusNoContent); err != nil {
		return fmt.Errorf("deleting gist %s: %w", id, err)
	}
	return nil
}
