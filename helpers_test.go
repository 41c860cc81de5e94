package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanJson(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"json fence", "```json\n{\"summary\":\"ok\"}\n```", `{"summary":"ok"}`},
		{"bare fence", "```\n{}\n```", "{}"},
		{"no fence", "  {\"a\":1}  ", `{"a":1}`},
		{"trailing fence only", "{}```", "{}"},
		{"windows newlines", "```json\r\n{}\r\n```", "{}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanJson(tt.input))
		})
	}
}
