package types

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Recipient identifies a chat either by numeric ID or by the @username of a
// channel or supergroup.
type Recipient struct {
	ID       int64
	Username string
}

// ID returns a Recipient for the chat with the given identifier.
func ID(id int64) Recipient { return Recipient{ID: id} }

// Channel returns a Recipient for a public chat username. The leading @ is
// optional.
func Channel(username string) Recipient {
	return Recipient{Username: "@" + strings.TrimPrefix(username, "@")}
}

// IsGroup reports whether r looks like a group, supergroup or channel rather
// than a private chat.
func (r Recipient) IsGroup() bool { return r.Username != "" || r.ID < 0 }

func (r Recipient) String() string {
	if r.Username != "" {
		return r.Username
	}
	return strconv.FormatInt(r.ID, 10)
}

func (r Recipient) MarshalJSON() ([]byte, error) {
	if r.Username != "" {
		return json.Marshal(r.Username)
	}
	return []byte(strconv.FormatInt(r.ID, 10)), nil
}

func (r *Recipient) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		if id, err := strconv.ParseInt(s, 10, 64); err == nil {
			*r = Recipient{ID: id}
			return nil
		}
		*r = Channel(s)
		return nil
	}
	id, err := strconv.ParseInt(string(b), 10, 64)
	if err != nil {
		return fmt.Errorf("invalid recipient %s: %w", b, err)
	}
	*r = Recipient{ID: id}
	return nil
}
