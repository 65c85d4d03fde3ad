// Package app contains the event loop that powers gridpop. App owns the
// active page; everything below it is reached only through that page.
//
// Event flow:
//   - A backend.Source (the terminal driver and the clock share one
//     backend.Stream) yields raw events. Loop blocks on Next and hands each
//     event to Step.
//   - Step asks the active page to classify the event into an action, queues
//     it on the action.Bus and drains the bus. Handlers may queue further
//     actions while the drain runs (a page asking for ChangePage or Quit);
//     Drain keeps going until the bus is empty, so those take effect in the
//     same cycle.
//   - Render, Quit and ChangePage are handled here. Every other action goes
//     to the page, which offers it to its focused component first and only
//     interprets it itself when the component answered Handled.
//
// State ownership:
//   - The grid matrix lives in the Home page's component.Grid. Committed
//     edits and deletions are snapshotted into a store.Writer, which saves
//     them on its own goroutine and reports outcomes as notices that App
//     shows on the status line.
//   - Pages are rebuilt from the page.Factory on every switch, so overlays
//     and focus never outlive the page that owned them. The writer's latest
//     snapshot is what a rebuilt page loads.
//
// Run wires the concrete adapters (bubbletea terminal, ticker clock, CSV or
// SQLite store) around the loop; tests drive App through Harness instead.
package app
