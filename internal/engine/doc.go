// Package engine contains the application core: the immutable Model, the
// pure flip/advance transitions, the event bus that serializes input and
// timer intents, the auto-flip scheduler, and the reducer loop that folds
// events into new Models and pushes the result to the view. The engine
// never touches the window toolkit; it talks to the UI through the small
// View port and is driven by whatever edge publishes events on its bus.
package engine
