// Package ui contains the Bubble Tea program that presents the command menu.
// The navigation rules live in internal/ui/state and the message fold in
// internal/ui/command; this package only translates terminal events into
// command.Message values and renders the read-only navigation state.
//
// Message flow:
//   - Init emits the bootstrap message (Init) for an Empty model so the entry
//     file is loaded before any key is read, and arms a redraw tick.
//   - Key presses are matched against bubbles/key bindings and forwarded to
//     command.Process. Once the state reaches Done, Update returns tea.Quit.
//   - Load or save failures are fatal: they are recorded on the model
//     (see Model.Err) and the program exits.
//
// Rendering:
//   - The main screen lists groups with a preview of their entries.
//   - The secondary screen lists a group's entries with the long description
//     of the highlighted entry.
package ui
