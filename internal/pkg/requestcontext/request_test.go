package requestcontext

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidID(t *testing.T) {
	tests := []struct {
		id   string
		want bool
	}{
		{"req-123", true},
		{"6f1c2a8e-3b7d-4c55-9a10-2f4e8d7c1b90", true},
		{"trace.v1:abc_2", true},
		{"", false},
		{strings.Repeat("x", 64), true},
		{strings.Repeat("x", 65), false},
		{"has space", false},
		{"line\nbreak", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ValidID(tt.id), tt.id)
	}
}

func TestWithRequestContext(t *testing.T) {
	ctx := WithRequestContext(context.Background(), &RequestContext{RequestID: "req-1", TraceID: "trace-1"})

	assert.Equal(t, "req-1", GetRequestID(ctx))
	assert.Equal(t, "trace-1", GetTraceID(ctx))
	assert.Empty(t, GetRequestID(context.Background()))
}
