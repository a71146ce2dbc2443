package service

import (
	"context"
	"math/rand"
	"strings"

	"Woorigil/config"
	"Woorigil/pkg/log"
	"Woorigil/types"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"go.uber.org/zap"
)

var _ IPromptService = (*PromptService)(nil)

type IPromptService interface {
	List(ctx context.Context, category string) *types.PromptListResp
	Random(ctx context.Context, category string) *types.PromptResp
	Categories() []string
}

// PromptService serves diary writing prompts for couples. The curated pool
// covers the known categories; an unknown category falls through to a
// one-shot LLM generation when a key is configured.
type PromptService struct {
	Config *config.Config

	client *openai.Client
}

// curatedPrompts is the built-in question pool, grouped by category.
var curatedPrompts = []types.PromptResp{
	{Category: "추억", Question: "우리가 처음 만난 날, 서로의 첫인상은 어땠나요?"},
	{Category: "추억", Question: "함께한 순간 중 가장 많이 웃었던 기억은 무엇인가요?"},
	{Category: "추억", Question: "다시 돌아가고 싶은 우리만의 하루가 있다면 언제인가요?"},
	{Category: "여행", Question: "함께 가보고 싶은 여행지는 어디인가요? 그 이유는요?"},
	{Category: "여행", Question: "지금까지의 여행 중 가장 기억에 남는 장소는 어디였나요?"},
	{Category: "음식", Question: "서로에게 꼭 먹여주고 싶은 음식이 있다면 무엇인가요?"},
	{Category: "음식", Question: "우리의 단골집이 된 곳은 어디이고, 왜 좋아하게 됐나요?"},
	{Category: "미래", Question: "10년 뒤 우리는 어떤 모습일까요?"},
	{Category: "미래", Question: "함께 꼭 이루고 싶은 버킷리스트 한 가지는 무엇인가요?"},
	{Category: "일상", Question: "오늘 하루 중 상대방에게 가장 고마웠던 순간은 언제인가요?"},
	{Category: "일상", Question: "요즘 상대방에게 해주고 싶은 말이 있다면 무엇인가요?"},
}

func (s *PromptService) List(ctx context.Context, category string) *types.PromptListResp {
	prompts := s.byCategory(ctx, category)
	return &types.PromptListResp{Total: len(prompts), Prompts: prompts}
}

func (s *PromptService) Random(ctx context.Context, category string) *types.PromptResp {
	prompts := s.byCategory(ctx, category)
	if len(prompts) == 0 {
		return nil
	}
	p := prompts[rand.Intn(len(prompts))]
	return &p
}

func (s *PromptService) Categories() []string {
	seen := map[string]bool{}
	var out []string
	for _, p := range curatedPrompts {
		if !seen[p.Category] {
			seen[p.Category] = true
			out = append(out, p.Category)
		}
	}
	return out
}

func (s *PromptService) byCategory(ctx context.Context, category string) []types.PromptResp {
	if category == "" {
		return curatedPrompts
	}

	var out []types.PromptResp
	for _, p := range curatedPrompts {
		if p.Category == category {
			out = append(out, p)
		}
	}
	if len(out) > 0 {
		return out
	}

	if generated := s.generate(ctx, category); generated != nil {
		return []types.PromptResp{*generated}
	}
	return nil
}

// generate asks the model for one question in the requested category.
// Failures are logged and swallowed; prompts are never load-bearing.
func (s *PromptService) generate(ctx context.Context, category string) *types.PromptResp {
	if s.Config.OpenAI == nil || s.Config.OpenAI.APIKey == "" {
		return nil
	}
	if s.client == nil {
		opts := []option.RequestOption{option.WithAPIKey(s.Config.OpenAI.APIKey)}
		if s.Config.OpenAI.BaseURL != "" {
			opts = append(opts, option.WithBaseURL(s.Config.OpenAI.BaseURL))
		}
		c := openai.NewClient(opts...)
		s.client = &c
	}

	prompt := "커플이 함께 쓰는 교환일기의 질문을 만들어 주세요. 주제: " + category +
		". 질문 한 문장만 출력하고 다른 말은 하지 마세요."
	userMessage := openai.ChatCompletionUserMessageParam{
		Content: openai.ChatCompletionUserMessageParamContentUnion{
			OfString: openai.String(prompt),
		},
	}
	completion, err := s.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: s.Config.OpenAI.Model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			{OfUser: &userMessage},
		},
	})
	if err != nil {
		log.L.Warn("prompt generation failed", zap.String("category", category), zap.Error(err))
		return nil
	}
	if len(completion.Choices) == 0 {
		return nil
	}
	question := strings.TrimSpace(completion.Choices[0].Message.Content)
	if question == "" {
		return nil
	}
	return &types.PromptResp{Category: category, Question: question}
}
