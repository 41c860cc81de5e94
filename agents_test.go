package main

import (
	"errors"
	"iter"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/adk/session"
	"google.golang.org/genai"
)

func eventStream(events ...*session.Event) iter.Seq2[*session.Event, error] {
	return func(yield func(*session.Event, error) bool) {
		for _, ev := range events {
			if !yield(ev, nil) {
				return
			}
		}
	}
}

func textEvent(text string) *session.Event {
	ev := &session.Event{}
	ev.Content = &genai.Content{Parts: []*genai.Part{{Text: text}}}
	return ev
}

func TestFinalResponseText(t *testing.T) {
	t.Run("returns the final response text", func(t *testing.T) {
		out, err := finalResponseText(eventStream(textEvent(`{"summary":"solid"}`)))
		require.NoError(t, err)
		assert.Equal(t, `{"summary":"solid"}`, out)
	})

	t.Run("last final response wins", func(t *testing.T) {
		out, err := finalResponseText(eventStream(textEvent("draft"), textEvent("verdict")))
		require.NoError(t, err)
		assert.Equal(t, "verdict", out)
	})

	t.Run("skips nil, empty and partial events", func(t *testing.T) {
		noContent := &session.Event{}

		noParts := &session.Event{}
		noParts.Content = &genai.Content{}

		partial := textEvent("stream chunk")
		partial.Partial = true

		out, err := finalResponseText(eventStream(nil, noContent, noParts, partial, textEvent("verdict")))
		require.NoError(t, err)
		assert.Equal(t, "verdict", out)
	})

	t.Run("no final response errors", func(t *testing.T) {
		noParts := &session.Event{}
		noParts.Content = &genai.Content{}

		_, err := finalResponseText(eventStream(nil, noParts))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "empty agent response")
	})

	t.Run("empty stream errors", func(t *testing.T) {
		_, err := finalResponseText(eventStream())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "empty agent response")
	})

	t.Run("stream error aborts", func(t *testing.T) {
		stream := func(yield func(*session.Event, error) bool) {
			yield(nil, errors.New("quota exhausted"))
		}
		_, err := finalResponseText(stream)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "quota exhausted")
	})
}
