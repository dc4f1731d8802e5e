// Package ui contains the Bubble Tea model of the tabbed package picker.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages. Messages are
//     routed through a typed handler registry so each tea.Msg is handled by a
//     focused function.
//   - Key presses are not acted on directly. handleKeyMsg pushes them into the
//     event.Handler queue, and a single outstanding waitForEvent command pulls
//     events back out one at a time. Input events are translated into
//     application commands (quit, next tab, toggle, ...) which are queued
//     again and applied when they come back around, so every state change
//     happens in queue order.
//   - Ticks from the handler only expire status messages.
//
// State ownership:
//   - Which tab is shown, whether the picker is still running and whether the
//     user submitted live on Model and are only changed by apply.
//   - Each category tab owns a state.Level holding its cursor, viewport,
//     filter and checked entries.
//
// Rendering (view.go) reads the model and never changes it; viewport offsets
// are brought up to date by syncViewport at the end of every dispatch.
package ui
