// Package task runs delayed continuations for the UI event loop.
//
// A task is started on the event loop, waits in a tea.Cmd goroutine on an
// injectable Clock and comes back as a Fired message. Cancelling a task
// releases its waiting command and makes any late firing stale; Settle is the
// single gate the event loop uses to tell live firings from stale ones.
package task
