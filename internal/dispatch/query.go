// Package dispatch turns command-line arguments into a single query and runs
// it against the adapter.
package dispatch

import (
	"fmt"
	"strings"
)

// Command names one of the supported queries.
type Command string

const (
	CommandFundamentals Command = "fundamentals"
	CommandFredSeries   Command = "fred_series"
	CommandQuote        Command = "quote"
	CommandProfile      Command = "profile"
	CommandCheck        Command = "check"
)

// Usage strings reported when a command is missing its required argument.
const (
	UsageRoot         = "Usage: marketadapter <command> <args>"
	UsageFundamentals = "Usage: fundamentals <ticker> [provider]"
	UsageFredSeries   = "Usage: fred_series <series_id> [start_date] [end_date]"
	UsageQuote        = "Usage: quote <ticker> [provider]"
	UsageProfile      = "Usage: profile <ticker> [provider]"
)

var usage = map[Command]string{
	CommandFundamentals: UsageFundamentals,
	CommandFredSeries:   UsageFredSeries,
	CommandQuote:        UsageQuote,
	CommandProfile:      UsageProfile,
}

// Query is a parsed command with its positional arguments. Primary is the
// ticker or series id; Optional holds the provider or the date range.
type Query struct {
	Command  Command
	Primary  string
	Optional []string
}

// Arg returns the i-th optional argument, or "" when it was not supplied.
func (q Query) Arg(i int) string {
	if i < 0 || i >= len(q.Optional) {
		return ""
	}
	return q.Optional[i]
}

// UsageError reports a malformed command line.
type UsageError struct {
	Message string
}

func (e *UsageError) Error() string {
	return e.Message
}

// Parse builds a Query from args, where args[0] is the command name. Arguments
// beyond those a command accepts are ignored.
func Parse(args []string) (Query, error) {
	if len(args) == 0 {
		return Query{}, &UsageError{Message: UsageRoot}
	}

	cmd := Command(args[0])
	rest := args[1:]

	switch cmd {
	case CommandCheck:
		return Query{Command: cmd}, nil
	case CommandFundamentals, CommandQuote, CommandProfile, CommandFredSeries:
	default:
		return Query{}, &UsageError{Message: fmt.Sprintf("Unknown command: %s", args[0])}
	}

	if len(rest) == 0 {
		return Query{}, &UsageError{Message: usage[cmd]}
	}

	q := Query{Command: cmd}
	if cmd == CommandFredSeries {
		q.Primary = strings.TrimSpace(rest[0])
		q.Optional = trimAll(limit(rest[1:], 2))
	} else {
		q.Primary = sanitizeTicker(rest[0])
		q.Optional = trimAll(limit(rest[1:], 1))
	}
	if q.Primary == "" {
		return Query{}, &UsageError{Message: usage[cmd]}
	}
	return q, nil
}

func sanitizeTicker(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

func limit(s []string, n int) []string {
	if len(s) > n {
		return s[:n]
	}
	return s
}

func trimAll(s []string) []string {
	out := make([]string, len(s))
	for i, v := range s {
		out[i] = strings.TrimSpace(v)
	}
	return out
}
