package client

import "github.com/movaro/console/pkg/validate"

// checkPayload validates an outgoing payload against its struct tags so
// obviously bad input is rejected with a readable message before a request
// is spent on it.
func (c *Client) checkPayload(v any) error {
	if err := c.validate.Struct(v); err != nil {
		return validate.Message(err)
	}
	return nil
}
