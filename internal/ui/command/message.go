// Package command maps discrete messages onto the navigation model.
package command

import "fmt"

// Message is a discrete instruction for the navigation model.
type Message int

const (
	None Message = iota
	Init
	Quit
	NextEntry
	PreviousEntry
	Enter
	Back
)

var messageNames = map[Message]string{
	None:          "none",
	Init:          "init",
	Quit:          "quit",
	NextEntry:     "next-entry",
	PreviousEntry: "previous-entry",
	Enter:         "enter",
	Back:          "back",
}

func (m Message) String() string {
	if name, ok := messageNames[m]; ok {
		return name
	}
	return fmt.Sprintf("message(%d)", int(m))
}
