package kickbase

import (
	"net/http"
	"strconv"
	"strings"

	sonic "github.com/bytedance/sonic"
	"github.com/valyala/bytebufferpool"
)

// ResponseKind is the verdict on one upstream exchange.
type ResponseKind int

const (
	KindOk ResponseKind = iota
	KindEmpty
	KindHTMLPayload
	KindMalformedJSON
	KindUpstreamStaleClient
	KindUpstreamError
	KindTransportFailure
	KindCircuitOpen
	KindCanceled
)

func (k ResponseKind) String() string {
	switch k {
	case KindOk:
		return "ok"
	case KindEmpty:
		return "empty"
	case KindHTMLPayload:
		return "html_payload"
	case KindMalformedJSON:
		return "malformed_json"
	case KindUpstreamStaleClient:
		return "upstream_stale_client"
	case KindUpstreamError:
		return "upstream_error"
	case KindTransportFailure:
		return "transport_failure"
	case KindCircuitOpen:
		return "circuit_open"
	case KindCanceled:
		return "canceled"
	default:
		return "unknown"
	}
}

// Retryable reports whether another attempt may produce a different answer.
func (k ResponseKind) Retryable() bool {
	switch k {
	case KindEmpty, KindHTMLPayload, KindMalformedJSON, KindTransportFailure:
		return true
	default:
		return false
	}
}

// Classification is the classifier output. Data is set only for KindOk.
type Classification struct {
	Kind    ResponseKind
	Status  int
	Data    any
	Message string
}

var decodeAPI = sonic.Config{UseNumber: true}.Froze()

var upstreamMessageKeys = []string{"message", "errMsg", "error", "msg", "detail"}

// Classify inspects a raw outcome. Checks run in a fixed order: empty body,
// HTML payload, malformed JSON, stale client signature, non-2xx status, ok.
// It never panics and never fails.
func Classify(outcome Outcome) Classification {
	status := outcome.StatusCode
	trimmed := strings.TrimSpace(outcome.Body)

	if trimmed == "" {
		return Classification{Kind: KindEmpty, Status: status, Message: "empty response body (status " + strconv.Itoa(status) + ")"}
	}
	if looksLikeHTML(trimmed) {
		return Classification{Kind: KindHTMLPayload, Status: status, Message: "html payload instead of JSON (status " + strconv.Itoa(status) + "): " + abbreviate(trimmed)}
	}

	var data any
	if err := decodeAPI.UnmarshalFromString(trimmed, &data); err != nil {
		return Classification{Kind: KindMalformedJSON, Status: status, Message: "malformed JSON (status " + strconv.Itoa(status) + "): " + abbreviate(trimmed)}
	}

	if obj, ok := asObject(data); ok {
		if isStaleClient(obj) {
			return Classification{Kind: KindUpstreamStaleClient, Status: status, Message: upstreamMessage(obj, status)}
		}
		if !isSuccess(status) {
			return Classification{Kind: KindUpstreamError, Status: status, Message: upstreamMessage(obj, status)}
		}
	} else if !isSuccess(status) {
		return Classification{Kind: KindUpstreamError, Status: status, Message: defaultUpstreamMessage(status)}
	}

	return Classification{Kind: KindOk, Status: status, Data: data}
}

func isSuccess(status int) bool {
	return status >= http.StatusOK && status < http.StatusMultipleChoices
}

// looksLikeHTML only fires when the body is not JSON-shaped, so a JSON string
// field containing markup is not mistaken for an HTML error page.
func looksLikeHTML(trimmed string) bool {
	if trimmed[0] == '{' || trimmed[0] == '[' {
		return false
	}
	lower := strings.ToLower(trimmed)
	return strings.Contains(lower, "<!doctype") || strings.Contains(lower, "<html")
}

func isStaleClient(obj object) bool {
	code, ok := obj.lookup("err")
	if !ok {
		return false
	}
	n, ok := toInt64(code)
	if !ok || n != staleClientCode {
		return false
	}
	return obj.str("errMsg", "message") == staleClientMessage
}

func upstreamMessage(obj object, status int) string {
	if msg := obj.str(upstreamMessageKeys...); msg != "" {
		return msg
	}
	return defaultUpstreamMessage(status)
}

func defaultUpstreamMessage(status int) string {
	return "upstream responded with status " + strconv.Itoa(status)
}

func abbreviate(body string) string {
	const limit = 160

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	for _, r := range body {
		if buf.Len() >= limit {
			_, _ = buf.WriteString("...")
			break
		}
		if r == '\n' || r == '\r' || r == '\t' {
			r = ' '
		}
		_, _ = buf.WriteString(string(r))
	}
	return buf.String()
}
