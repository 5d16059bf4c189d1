package gist

import (
	"fmt"
	"strings"
)

const (
	// NoDescription replaces an empty gist description in Format.
	NoDescription = "No description"

	displayTimeLayout = "2006-01-02 15:04:05"
)

// Format renders a gist as a short multi-line summary:
//
//	ID: aa5a315d61ae9438b18d
//	  Created: 2020-01-02 03:04:05
//	  Files: a.txt, b.py
//	  Description: No description
func Format(g Gist) string {
	description := g.Description
	if description == "" {
		description = NoDescription
	}
	return fmt.Sprintf("ID: %s\n  Created: %s\n  Files: %s\n  Description: %s",
		g.ID,
		g.CreatedAt.Format(displayTimeLayout),
		strings.Join(g.Files, ", "),
		description,
	)
}
