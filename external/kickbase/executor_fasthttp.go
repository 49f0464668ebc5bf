package kickbase

import (
	"context"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/valyala/fasthttp"
)

// FastHTTPExecutor runs requests on a pooled fasthttp client.
type FastHTTPExecutor struct {
	client  *fasthttp.Client
	timeout time.Duration
}

func NewFastHTTPExecutor(client *fasthttp.Client, timeout time.Duration) *FastHTTPExecutor {
	if client == nil {
		client = &fasthttp.Client{
			Name:                     "fantasy-dashboard",
			MaxResponseBodySize:      maxResponseBytes,
			NoDefaultUserAgentHeader: true,
		}
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &FastHTTPExecutor{client: client, timeout: timeout}
}

func (e *FastHTTPExecutor) Execute(ctx context.Context, req Request) (Outcome, error) {
	if err := ctx.Err(); err != nil {
		return Outcome{}, &TransportError{Op: "send request", Err: err}
	}

	httpReq := fasthttp.AcquireRequest()
	httpResp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(httpReq)
	defer fasthttp.ReleaseResponse(httpResp)

	httpReq.SetRequestURI(req.URL)
	httpReq.Header.SetMethod(req.Method)
	for key, values := range req.Header {
		for _, value := range values {
			httpReq.Header.Add(key, value)
		}
	}
	if len(req.Body) > 0 {
		httpReq.SetBody(req.Body)
	}

	var err error
	if deadline, ok := ctx.Deadline(); ok {
		err = e.client.DoDeadline(httpReq, httpResp, deadline)
	} else {
		err = e.client.DoTimeout(httpReq, httpResp, e.timeout)
	}
	if err != nil {
		return Outcome{}, &TransportError{Op: "send request", Err: crerr.WithStack(err)}
	}

	// Body() aliases pooled memory, copy before release.
	return Outcome{StatusCode: httpResp.StatusCode(), Body: string(httpResp.Body())}, nil
}
