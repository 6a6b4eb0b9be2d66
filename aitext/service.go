// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package aitext

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
)

// Style biases the tone of a generated slogan.
type Style struct {
	Name string
	Hint string
}

func (s Style) String() string {
	return fmt.Sprintf("%s (%s)", s.Name, s.Hint)
}

// Styles are the slogan tones, picked uniformly at random per call.
var Styles = []Style{
	{Name: "霸气王者风", Hint: "强调登顶、无敌、断层领先"},
	{Name: "深情文艺风", Hint: "强调陪伴、星光、梦想"},
	{Name: "可爱彩虹屁", Hint: "夸赞颜值、才华、全能"},
	{Name: "幽默玩梗风", Hint: "押韵、顺口溜、网络热梗"},
}

// CommentaryFallback replaces commentary when the model call fails.
const CommentaryFallback = "战况十分焦灼，差距正在缩小，快来支持你的偶像！"

// CommentaryDefault replaces commentary when the model returns no text.
const CommentaryDefault = "比赛进入白热化阶段，大家快来投票！"

const (
	sloganTemperature float32 = 1.1
	sloganMaxTokens   int32   = 60
)

// SloganFallbacks lists the texts used when slogan generation fails.
func SloganFallbacks(name string) []string {
	return []string{
		fmt.Sprintf("%s 勇敢飞，我们永相随！", name),
		fmt.Sprintf("始于颜值，陷于才华，忠于 %s！", name),
		fmt.Sprintf("全世界最好的 %s，送你出道！", name),
	}
}

// SloganDefault is used when the model returns no text.
func SloganDefault(name string) string {
	return fmt.Sprintf("%s 冲鸭！入股不亏，未来可期！", name)
}

// Service wraps a Generator and never returns an error: failures turn
// into fixed fallback texts.
type Service struct {
	gen     Generator
	model   string
	rnd     Rand
	timeout time.Duration
}

type Option func(*Service)

func WithModel(model string) Option {
	return func(s *Service) {
		if model != "" {
			s.model = model
		}
	}
}

// WithRand sets the source used for style and fallback selection.
func WithRand(r Rand) Option {
	return func(s *Service) { s.rnd = r }
}

// WithTimeout bounds each model call. Zero means no limit.
func WithTimeout(d time.Duration) Option {
	return func(s *Service) { s.timeout = d }
}

func NewService(gen Generator, opts ...Option) *Service {
	s := &Service{
		gen:   gen,
		model: DefaultModel,
		rnd:   globalRand{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) generate(ctx context.Context, req Request) (string, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}
	req.Model = s.model
	return s.gen.Generate(ctx, req)
}

// GenerateSlogan writes a short fan slogan for the candidate.
func (s *Service) GenerateSlogan(ctx context.Context, name string, votes int) string {
	style := Styles[s.rnd.IntN(len(Styles))]
	temp := sloganTemperature

	text, err := s.generate(ctx, Request{
		Prompt:          sloganPrompt(name, votes, style),
		Temperature:     &temp,
		MaxOutputTokens: sloganMaxTokens,
	})
	if err != nil {
		slog.Warn("slogan generation failed", "candidate", name, "error", err)
		fallbacks := SloganFallbacks(name)
		return fallbacks[s.rnd.IntN(len(fallbacks))]
	}

	text = stripQuotes(strings.TrimSpace(text))
	if text == "" {
		return SloganDefault(name)
	}
	return text
}

// GenerateCommentary writes one line of match commentary about the top two.
func (s *Service) GenerateCommentary(ctx context.Context, leader, runnerUp string, gap int) string {
	text, err := s.generate(ctx, Request{
		Prompt: commentaryPrompt(leader, runnerUp, gap),
	})
	if err != nil {
		slog.Warn("commentary generation failed", "leader", leader, "runner_up", runnerUp, "error", err)
		return CommentaryFallback
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return CommentaryDefault
	}
	return text
}

func sloganPrompt(name string, votes int, style Style) string {
	return fmt.Sprintf(`角色设定：你是一位资深的饭圈“粉头”（粉丝后援会会长），极其擅长写各种风格的控评文案。
任务：请为候选人 "%s" 写一句中国饭圈风格的打榜应援语。
当前背景：他/她目前拥有 %d 票。

要求：
1. 风格限定：%s。
2. 词汇参考：可以使用如“走花路”、“未来可期”、“神颜”、“入股不亏”、“YYDS”、“绝绝子”、“断层出道”等饭圈常用语。
3. 长度：20字以内，短小精悍，极具煽动性和感染力。
4. 格式：不要加引号，不要带解释，直接输出那句口号。`, name, votes, style)
}

func commentaryPrompt(leader, runnerUp string, gap int) string {
	return fmt.Sprintf(`请用中文写一句“体育解说”或“电竞解说”风格的短评，描述第一名 %s 和第二名 %s 之间的激烈竞争。
目前的票数差距是 %d 票。让评论充满戏剧性和紧迫感。不要超过50个字。`, leader, runnerUp, gap)
}

var quotePairs = [][2]string{
	{`"`, `"`},
	{"“", "”"},
	{"「", "」"},
	{"『", "』"},
}

func stripQuotes(s string) string {
	for _, q := range quotePairs {
		if len(s) > len(q[0])+len(q[1]) && strings.HasPrefix(s, q[0]) && strings.HasSuffix(s, q[1]) {
			return strings.TrimSpace(s[len(q[0]) : len(s)-len(q[1])])
		}
	}
	return s
}
