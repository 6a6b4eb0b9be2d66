// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// Display color tags used by the seed list. Cosmetic only.
const (
	ColorRed    = "red"
	ColorBlue   = "blue"
	ColorGreen  = "green"
	ColorPurple = "purple"
)

// Event types pushed over the live feed
const (
	EventState = "state"
)

// CheerFanLabel is the originating label attached to generated cheers.
const CheerFanLabel = "粉丝"

// Request types

type CheerRequest struct {
	Message string `json:"message"`
}

type SloganRequest struct {
	CandidateID int `json:"candidate_id"`
}

// Response types

type VoteResponse struct {
	Applied   bool       `json:"applied"`
	Candidate *Candidate `json:"candidate,omitempty"`
}

type CommentaryResponse struct {
	Text      string    `json:"text"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ShareResponse struct {
	URL        string `json:"url"`
	QRImageURL string `json:"qr_image_url"`
}

// Domain types

type Candidate struct {
	ID    int    `json:"id" yaml:"id"`
	Name  string `json:"name" yaml:"name"`
	Votes int    `json:"votes" yaml:"votes"`
	Image string `json:"image" yaml:"image"`
	Color string `json:"color" yaml:"color"`
}

type CheerMessage struct {
	ID            string    `json:"id"`
	CandidateName string    `json:"candidate_name"`
	Message       string    `json:"message"`
	Timestamp     time.Time `json:"timestamp"`
}

// Standing is one leaderboard row
type Standing struct {
	Candidate Candidate `json:"candidate"`
	Rank      int       `json:"rank"`  // 1-indexed position in the ranking
	Share     float64   `json:"share"` // votes relative to the leader, 0..1
	Leading   bool      `json:"leading"`
}

// State is the full snapshot rendered by the page and pushed to live clients
type State struct {
	Candidates []Candidate        `json:"candidates"`
	Ranking    []Standing         `json:"ranking"`
	Cheers     []CheerMessage     `json:"cheers"`
	Commentary CommentaryResponse `json:"commentary"`
}

type Event struct {
	Type  string `json:"type"`
	State State  `json:"state"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
