// Package ui contains the Bubble Tea program that renders the command
// dashboard. The Model focuses on message orchestration while dedicated files
// own navigation, filter input, layout, rendering and clipboard copies.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages, which are routed
//     through a typed handler registry so each tea.Msg is handled by a focused
//     function (keys, mouse clicks, resizes, copy results).
//   - Activating a list item dispatches its nav.Action to the nav.Machine.
//     The model never edits navigation or output state itself.
//   - The model subscribes to the machine. Every successful dispatch delivers
//     a nav.Change, and handleChange rebuilds the on-screen lists from the new
//     state (internal/ui/navigation.go).
//
// State ownership:
//   - Navigation and output state live in internal/nav.Machine.
//   - Per-list cursor, filter and viewport state live in
//     internal/ui/state.Level. There are at most two lists: the side menu and,
//     in a command list, the commands of the chosen group.
//   - Clipboard writes run off the event loop through internal/ui/command.Bus
//     and report back with a command.CopyResult.
//
// Layout geometry is computed once per frame by Model.layout and shared by
// View and the mouse hit test so a click always lands on what was drawn.
package ui
