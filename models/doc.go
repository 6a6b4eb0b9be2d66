// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

  - CheerRequest: message
  - SloganRequest: candidate_id

# Response Types

  - VoteResponse: applied, candidate
  - CommentaryResponse: text, updated_at
  - ShareResponse: url, qr_image_url
  - ErrorResponse: error, message

# Domain Types

  - Candidate: votable entity with name, image, color tag and vote count
  - CheerMessage: short fan message kept in the cheer log
  - Standing: a candidate with its rank and bar-chart share
  - State: full snapshot (candidates, ranking, cheers, commentary)
  - Event: envelope pushed to websocket clients

# Constants

Color tags:

	ColorRed    = "red"
	ColorBlue   = "blue"
	ColorGreen  = "green"
	ColorPurple = "purple"
*/
package models
