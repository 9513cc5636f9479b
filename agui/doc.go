// Package agui converts wayfinder events to AG-UI protocol events.
//
// AG-UI (Agent-User Interface) is an open, event-based protocol that
// standardizes how AI agents connect to user-facing applications. The
// [Mapper] here converts wayfinder's unified event stream to AG-UI
// events 1:1 for SSE delivery to a browser.
//
// The package does not provide HTTP handlers or transports; see
// cmd/server for the SSE surface built on top of it.
//
// The Mapper is not safe for concurrent use. Create one per run.
package agui
