package kickbase

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		outcome Outcome
		kind    ResponseKind
		message string
	}{
		{
			name:    "blank body",
			outcome: Outcome{StatusCode: 200, Body: "  \n "},
			kind:    KindEmpty,
		},
		{
			name:    "html error page",
			outcome: Outcome{StatusCode: 502, Body: "<!DOCTYPE html><html><body>Bad gateway</body></html>"},
			kind:    KindHTMLPayload,
		},
		{
			name:    "html without doctype",
			outcome: Outcome{StatusCode: 200, Body: "<HTML><head></head></HTML>"},
			kind:    KindHTMLPayload,
		},
		{
			name:    "truncated json",
			outcome: Outcome{StatusCode: 200, Body: `{"it": [`},
			kind:    KindMalformedJSON,
		},
		{
			name:    "stale client wins over status",
			outcome: Outcome{StatusCode: 500, Body: `{"err": 11, "errMsg": "ClientTooOld"}`},
			kind:    KindUpstreamStaleClient,
			message: "ClientTooOld",
		},
		{
			name:    "err code 11 alone is not stale client",
			outcome: Outcome{StatusCode: 400, Body: `{"err": 11, "errMsg": "Other"}`},
			kind:    KindUpstreamError,
			message: "Other",
		},
		{
			name:    "ClientTooOld alone is not stale client",
			outcome: Outcome{StatusCode: 400, Body: `{"err": 3, "errMsg": "ClientTooOld"}`},
			kind:    KindUpstreamError,
			message: "ClientTooOld",
		},
		{
			name:    "upstream error uses message field",
			outcome: Outcome{StatusCode: 403, Body: `{"errMsg": "denied", "message": "Forbidden league"}`},
			kind:    KindUpstreamError,
			message: "Forbidden league",
		},
		{
			name:    "upstream error falls back to errMsg",
			outcome: Outcome{StatusCode: 404, Body: `{"err": 3, "errMsg": "NotFound"}`},
			kind:    KindUpstreamError,
			message: "NotFound",
		},
		{
			name:    "upstream error default message",
			outcome: Outcome{StatusCode: 418, Body: `{"foo": 1}`},
			kind:    KindUpstreamError,
			message: "upstream responded with status 418",
		},
		{
			name:    "non-object error body",
			outcome: Outcome{StatusCode: 500, Body: `["x"]`},
			kind:    KindUpstreamError,
			message: "upstream responded with status 500",
		},
		{
			name:    "json with markup inside a string",
			outcome: Outcome{StatusCode: 200, Body: `{"note": "<html> is fine here"}`},
			kind:    KindOk,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := Classify(tc.outcome)
			assert.Equal(t, tc.kind, got.Kind)
			assert.Equal(t, tc.outcome.StatusCode, got.Status)
			if tc.message != "" {
				assert.Equal(t, tc.message, got.Message)
			}
			if tc.kind != KindOk {
				assert.Nil(t, got.Data)
				assert.NotEmpty(t, got.Message)
			}
		})
	}
}

func TestClassifyOkDecodesNumbersExactly(t *testing.T) {
	t.Parallel()

	got := Classify(Outcome{StatusCode: 200, Body: `{"mv": 12345678901, "i": 42}`})
	require.Equal(t, KindOk, got.Kind)

	obj, ok := asObject(got.Data)
	require.True(t, ok)
	assert.Equal(t, json.Number("12345678901"), obj["mv"])
	assert.Equal(t, int64(12345678901), obj.int64("mv"))
	assert.Equal(t, "42", obj.str("i"))
}

func TestResponseKindRetryable(t *testing.T) {
	t.Parallel()

	for _, kind := range []ResponseKind{KindEmpty, KindHTMLPayload, KindMalformedJSON, KindTransportFailure} {
		assert.True(t, kind.Retryable(), kind.String())
	}
	for _, kind := range []ResponseKind{KindOk, KindUpstreamStaleClient, KindUpstreamError, KindCircuitOpen, KindCanceled} {
		assert.False(t, kind.Retryable(), kind.String())
	}
}

func TestAbbreviateBoundsPreview(t *testing.T) {
	t.Parallel()

	long := make([]byte, 1000)
	for i := range long {
		long[i] = 'a'
	}
	got := abbreviate(string(long))
	assert.LessOrEqual(t, len(got), 170)
	assert.Contains(t, got, "...")
	assert.Equal(t, "a b", abbreviate("a\nb"))
}
