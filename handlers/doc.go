// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers implements the HTTP handlers for StarVote.

Handlers are grouped by concern and share the arena:

  - CandidateHandler: candidate list, votes, ranking and state
  - CheerHandler: fan cheers and AI slogans
  - CommentaryHandler: reading and refreshing the commentary line
  - ShareHandler: share link and QR image URL
  - PageHandler: the server-rendered display page
  - LiveHandler: the /ws state feed

# Errors

JSON endpoints report failures with models.ErrorResponse:

	400 - malformed JSON, non-integer candidate id, invalid cheer
	404 - slogan requested for an unknown candidate
	500 - store failure

Voting for an unknown candidate is not an error. It returns 200 with
"applied": false.

AI failures never surface as errors. The aitext service substitutes a
fallback line and the request succeeds.

# Live feed

LiveHandler writes the current state on connect and then every state
event the hub delivers. A client that falls behind is dropped by the hub
and closed with CloseTryAgainLater. On shutdown every client gets
CloseGoingAway instead. The page script reconnects with backoff.
*/
package handlers
