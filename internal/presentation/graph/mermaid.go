package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/zerohour/pkg/domain"
)

// Overlay marks the position of the engine on the diagram.
type Overlay struct {
	Current domain.State
}

// GenerateMermaid produces a Mermaid flowchart of the escalation sequence.
// Consecutive states are joined by solid arrows; every later state gets a
// dotted "reset" arrow back to the first one. With an overlay, states before
// the current one are styled as passed and the current one is highlighted.
func GenerateMermaid(states []domain.State, overlay *Overlay) string {
	var sb strings.Builder
	sb.WriteString("graph LR\n")

	for i, s := range states {
		opener, closer := "[", "]"
		switch {
		case i == 0:
			opener, closer = "((", "))"
		case i == len(states)-1:
			opener, closer = "{{", "}}"
		}
		fmt.Fprintf(&sb, "    %s%s\"%s\"%s\n", sanitizeMermaidID(string(s)), opener, s, closer)
	}

	for i := 1; i < len(states); i++ {
		fmt.Fprintf(&sb, "    %s --> %s\n", sanitizeMermaidID(string(states[i-1])), sanitizeMermaidID(string(states[i])))
	}
	for i := 1; i < len(states); i++ {
		fmt.Fprintf(&sb, "    %s -. reset .-> %s\n", sanitizeMermaidID(string(states[i])), sanitizeMermaidID(string(states[0])))
	}

	if overlay == nil {
		return sb.String()
	}

	sb.WriteString("\n    classDef passed fill:#fde68a,stroke:#b45309\n")
	sb.WriteString("    classDef current fill:#fca5a5,stroke:#b91c1c,stroke-width:3px\n")
	for _, s := range states {
		if s == overlay.Current {
			fmt.Fprintf(&sb, "    class %s current\n", sanitizeMermaidID(string(s)))
			break
		}
		fmt.Fprintf(&sb, "    class %s passed\n", sanitizeMermaidID(string(s)))
	}
	return sb.String()
}

// sanitizeMermaidID keeps identifiers to the characters Mermaid accepts unquoted.
func sanitizeMermaidID(id string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			return r
		}
		return '_'
	}, id)
}
