// Package budget relates a token breakdown to the context-window ceiling
// of the model answering the follow-up question.
//
// The breakdown package reports how many tokens a question and its review
// context cost; this package answers the caller's next question, "how much
// of the window is that?". A Tracker holds the ceiling (explicit, or looked
// up from the model identifier), computes utilization, and fires alert
// handlers when usage crosses a configurable threshold, which is what the
// sidebar uses to disable the submit button and color the progress bar.
//
// This is a static per-conversation ceiling, not billing: there are no
// time windows and no cost tracking.
package budget
