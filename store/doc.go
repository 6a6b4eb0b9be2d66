// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store holds the candidate list.

Two implementations satisfy Store:

  - Memory: a mutex-guarded slice, the default
  - SQL: a candidate table in sqlite or postgres, reseeded on open

Both return candidates in seed order and treat a vote for an unknown id
as a no-op rather than an error. There is no vote cap and no duplicate
vote detection; every call adds one vote.

	s := store.NewMemory(seed.Default())
	applied, err := s.Vote(ctx, 3)
*/
package store
