// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package arena holds the application state and its mutation entry points.

An Arena is built once in main and passed to the HTTP handlers and the
commentary refresher:

	a := arena.New(st, ai,
		arena.WithSlot(commentary.NewSlot(commentary.LastSettled)),
		arena.WithNotifier(hub),
	)

Operations:

  - Vote: one vote for a candidate, unknown ids are ignored
  - GenerateSlogan: AI slogan for a candidate, pushed into the cheer log
  - Cheer: manual fan message, pushed into the cheer log
  - RefreshCommentary: AI commentary about the current top two
  - Snapshot: candidates, ranking, cheers and commentary in one value

The ranking is recomputed from the store on every read. Every successful
mutation publishes a state event to the Notifier.
*/
package arena
