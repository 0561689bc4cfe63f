// Package input parses the board's command prompt.
package input

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownCommand is returned for a prompt line naming no known command.
var ErrUnknownCommand = errors.New("unknown command")

// PromptCommand describes a command suggestion entry.
type PromptCommand struct {
	Name        string
	Args        string
	Description string
}

// Commands are the commands the board prompt understands.
var Commands = []PromptCommand{
	{Name: "/save", Args: "NAME", Description: "Save under a new name"},
	{Name: "/export", Args: "PATH", Description: "Write a strategy document"},
	{Name: "/activity", Args: "NAME #RRGGBB", Description: "Add an activity"},
	{Name: "/begin", Args: "HH:MM", Description: "Move the strategy start"},
}

// Invocation is a parsed prompt line.
type Invocation struct {
	Command string
	Args    []string
}

// Arg returns argument i or "".
func (inv Invocation) Arg(i int) string {
	if i < 0 || i >= len(inv.Args) {
		return ""
	}
	return inv.Args[i]
}

// Rest joins the arguments from i on with single spaces.
func (inv Invocation) Rest(i int) string {
	if i >= len(inv.Args) {
		return ""
	}
	return strings.Join(inv.Args[i:], " ")
}

// Parse splits a prompt line into a known command and its arguments.
func Parse(line string, commands []PromptCommand) (Invocation, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Invocation{}, fmt.Errorf("%w: empty input", ErrUnknownCommand)
	}

	name := strings.ToLower(fields[0])
	for _, cmd := range commands {
		if cmd.Name == name {
			return Invocation{Command: name, Args: fields[1:]}, nil
		}
	}
	return Invocation{}, fmt.Errorf("%w: %s", ErrUnknownCommand, fields[0])
}

// PromptMatchingCommands returns commands that match the current input prefix.
func PromptMatchingCommands(input string, commands []PromptCommand) []PromptCommand {
	if !strings.HasPrefix(strings.TrimSpace(input), "/") {
		return nil
	}
	if strings.Contains(input, " ") {
		return nil
	}

	prefix := strings.ToLower(strings.TrimSpace(input))
	matches := make([]PromptCommand, 0, len(commands))
	for _, cmd := range commands {
		if strings.HasPrefix(cmd.Name, prefix) {
			matches = append(matches, cmd)
		}
	}
	return matches
}

// PromptAutocomplete returns the first matching command and whether it exists.
func PromptAutocomplete(input string, commands []PromptCommand) (string, bool) {
	matches := PromptMatchingCommands(input, commands)
	if len(matches) == 0 {
		return "", false
	}
	return matches[0].Name + " ", true
}
