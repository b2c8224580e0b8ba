package loader

// Package loader runs the one-shot background load: authorize, list, then
// fetch and decode each image in order. Per-image failures are logged and
// skipped; authorization and listing failures end the load. Progress is
// reported through an update callback and the decoded slides through a
// completion callback, both invoked from the loader goroutine.
