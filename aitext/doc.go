// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package aitext produces the decorative text shown next to the leaderboard:
fan slogans for a single candidate and short match commentary about the
top two.

# Generators

A Generator sends one prompt to a text model:

  - GeminiGenerator: google.golang.org/genai against the Gemini API
  - Unavailable: always fails, used when no API key is configured

# Service

Service builds the prompts and absorbs every generator failure:

	svc := aitext.NewService(gen, aitext.WithModel("gemini-2.5-flash"))
	slogan := svc.GenerateSlogan(ctx, "李丹阳", 1245)
	line := svc.GenerateCommentary(ctx, "李丹阳", "张靖童", 89)

Callers always get a displayable string. A failed call yields one of three
slogan fallbacks (chosen at random) or the fixed commentary fallback. An
empty response yields a per-operation default sentence.

Slogans are generated with temperature 1.1 and at most 60 output tokens,
in one of four randomly picked Styles. Inject WithRand to make style and
fallback selection deterministic.
*/
package aitext
