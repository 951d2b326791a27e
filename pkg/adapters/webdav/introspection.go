package webdav

import (
	"net/url"

	"github.com/aretw0/introspection"
)

// ClientState exposes internal state for observability.
type ClientState struct {
	Host     string `json:"host"`
	Username string `json:"username"`
	Timeout  string `json:"timeout,omitempty"`
}

// State implements introspection.Introspectable. The password is never exposed.
func (c *Client) State() any {
	host := c.config.URL
	if u, err := url.Parse(c.config.URL); err == nil {
		u.User = nil
		host = u.String()
	}
	state := ClientState{Host: host, Username: c.config.Username}
	if c.config.Timeout > 0 {
		state.Timeout = c.config.Timeout.String()
	}
	return state
}

// ComponentType implements introspection.Component.
func (c *Client) ComponentType() string {
	return "webdav"
}

var _ introspection.Introspectable = (*Client)(nil)
var _ introspection.Component = (*Client)(nil)
