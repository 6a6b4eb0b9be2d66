// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package commentary keeps the single commentary line shown in the banner
and refreshes it periodically.

# Slot

Slot stores one string, overwritten wholesale. Each refresh takes a
sequence number with Issue and hands its result to Settle. Under the
default LastSettled policy whichever call returns last wins, even if it
was issued first. LastIssued discards such stale results.

# Refresher

	r := commentary.NewRefresher(arena, 30*time.Second)
	r.Start(ctx)
	defer r.Stop()

Ticks never wait for the previous refresh and failed refreshes are not
retried.
*/
package commentary
