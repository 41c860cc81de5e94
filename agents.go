package main

import (
	"context"
	"encoding/json"
	"fmt"
	"iter"
	"strings"

	"golang.org/x/time/rate"
	"google.golang.org/adk/agent"
	"google.golang.org/adk/agent/llmagent"
	"google.golang.org/adk/model/gemini"
	"google.golang.org/adk/runner"
	"google.golang.org/adk/session"
	"google.golang.org/genai"
)

const reviewerAgentName = "resume reviewer"

func GetAgent(apiKey, geminiModel, agentName string) (agent.Agent, error) {
	ctx := context.Background()
	model, err := gemini.NewModel(ctx, geminiModel, &genai.ClientConfig{
		APIKey: apiKey,
	})

	if err != nil {
		return nil, fmt.Errorf("failed to create model: %v", err)
	}

	customAgent, err := llmagent.New(llmagent.Config{
		Name:        agentName,
		Model:       model,
		Description: "Review screened resumes",
		Instruction: prompt(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create agent: %v", err)
	}

	return customAgent, err
}

// Reviewer runs the Gemini agent behind a rate limiter. Gemini calls are
// serialized per screening session, so one limiter covers the worker.
type Reviewer struct {
	runner   *runner.Runner
	sessions session.Service
	name     string
	limiter  *rate.Limiter
}

func NewReviewer(ai AIConfig) (*Reviewer, error) {
	reviewerAgent, err := GetAgent(ai.APIKey, ai.Model, reviewerAgentName)
	if err != nil {
		return nil, err
	}
	sessionService := session.InMemoryService()
	agentRunner, err := runner.New(runner.Config{
		AppName:        reviewerAgent.Name(),
		Agent:          reviewerAgent,
		SessionService: sessionService,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create runner: %v", err)
	}
	return &Reviewer{
		runner:   agentRunner,
		sessions: sessionService,
		name:     reviewerAgent.Name(),
		limiter:  rate.NewLimiter(rate.Limit(ai.RequestsPerSecond), 1),
	}, nil
}

// OpenSession creates one agent session for a screening session so the
// reviewer keeps candidate context across the batch.
func (rv *Reviewer) OpenSession(ctx context.Context, userID, sessionID string) error {
	_, err := rv.sessions.Create(ctx, &session.CreateRequest{
		AppName:   rv.name,
		UserID:    userID,
		SessionID: sessionID,
	})
	return err
}

func (rv *Reviewer) CloseSession(ctx context.Context, userID, sessionID string) error {
	return rv.sessions.Delete(ctx, &session.DeleteRequest{
		AppName:   rv.name,
		UserID:    userID,
		SessionID: sessionID,
	})
}

// Review asks the agent for a verdict on one candidate and parses the
// JSON reply.
func (rv *Reviewer) Review(ctx context.Context, userID, sessionID, msg string) (*ReviewerVerdict, error) {
	if err := rv.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	genaiMsg := &genai.Content{
		Role:  "user",
		Parts: []*genai.Part{{Text: msg}},
	}

	output, err := finalResponseText(rv.runner.Run(ctx, userID, sessionID, genaiMsg, agent.RunConfig{}))
	if err != nil {
		return nil, err
	}

	verdict := &ReviewerVerdict{}
	if err := json.Unmarshal([]byte(CleanJson(output)), verdict); err != nil {
		return nil, fmt.Errorf("error unmarshalling agent response: %v", err)
	}
	return verdict, nil
}

// finalResponseText drains an agent event stream and keeps the text of
// the last final response. Streams can yield nil events, and a final
// event can arrive with no content or no parts.
func finalResponseText(events iter.Seq2[*session.Event, error]) (string, error) {
	output := ""
	for event, err := range events {
		if err != nil {
			return "", fmt.Errorf("error running agent: %v", err)
		}
		if event != nil && event.IsFinalResponse() && event.Content != nil && len(event.Content.Parts) > 0 {
			output = event.Content.Parts[0].Text
		}
	}
	if strings.TrimSpace(output) == "" {
		return "", fmt.Errorf("empty agent response")
	}
	return output, nil
}
