package tui

import "strings"

// commandKind enumerates what one line of interactive input asks for.
type commandKind int

const (
	cmdEmpty commandKind = iota
	cmdQuit
	cmdList
	cmdHelp
	cmdIndex // 1-based index into the listing
	cmdQuery // anything else: a name query for the dispatcher
)

type command struct {
	kind  commandKind
	index int
	query string
}

// parseCommand implements the interactive input grammar. A sequence of
// digits selects by listing number; the reserved words select actions;
// everything else is a name query.
func parseCommand(raw string) command {
	input := strings.ToLower(strings.TrimSpace(raw))
	switch input {
	case "":
		return command{kind: cmdEmpty}
	case "quit", "q", "exit":
		return command{kind: cmdQuit}
	case "list", "l":
		return command{kind: cmdList}
	case "help", "h":
		return command{kind: cmdHelp}
	}
	if index, ok := parseIndex(input); ok {
		return command{kind: cmdIndex, index: index}
	}
	return command{kind: cmdQuery, query: input}
}

func parseIndex(input string) (int, bool) {
	value := 0
	for _, r := range input {
		if r < '0' || r > '9' {
			return 0, false
		}
		value = value*10 + int(r-'0')
	}
	return value, true
}
