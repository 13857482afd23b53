package models

import "time"

// Namespace is a named partition on the x0 server.
type Namespace struct {
	ID     string `json:"id"`
	Active bool   `json:"active"`

	// Seconds since the unix epoch. Not sent by every server generation.
	Created int64 `json:"created,omitempty"`
}

// CreatedAt returns the creation time, or the zero time if the server did not report one.
func (n *Namespace) CreatedAt() time.Time {
	if n.Created == 0 {
		return time.Time{}
	}
	return time.Unix(n.Created, 0).UTC()
}
