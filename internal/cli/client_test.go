package cli

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/jarcoal/httpmock"

	"github.com/me/gosched/internal/logging"
	"github.com/me/gosched/pkg/model"
)

func mockedClient(t *testing.T) *Client {
	t.Helper()
	c := NewClient("http://gosched.test", logging.Discard())
	httpmock.ActivateNonDefault(c.HTTPClient)
	t.Cleanup(httpmock.DeactivateAndReset)
	return c
}

func TestClientParsesEnvelope(t *testing.T) {
	c := mockedClient(t)
	httpmock.RegisterResponder("GET", "http://gosched.test/healthz",
		httpmock.NewStringResponder(200,
			`{"status":"ok","request_id":"req_abc12345","data":{"status":"healthy"},"error":null}`))

	resp, err := c.Get("/healthz")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if resp.RequestID != "req_abc12345" {
		t.Errorf("request_id = %q, want req_abc12345", resp.RequestID)
	}
	var data map[string]string
	if err := json.Unmarshal(resp.Data, &data); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if data["status"] != "healthy" {
		t.Errorf("data.status = %q, want healthy", data["status"])
	}
}

func TestClientReturnsAPIError(t *testing.T) {
	c := mockedClient(t)
	httpmock.RegisterResponder("POST", "http://gosched.test/api/v1/sessions/sess_x/runs/sjf",
		httpmock.NewStringResponder(422,
			`{"status":"error","request_id":"req_1","data":null,"error":{"code":"EMPTY_INPUT","message":"no jobs registered"}}`))

	_, err := c.Post("/api/v1/sessions/sess_x/runs/sjf", nil)
	if !model.IsCode(err, model.ErrEmptyInput) {
		t.Fatalf("err = %v, want EMPTY_INPUT", err)
	}
}

func TestClientSendsJSONBody(t *testing.T) {
	c := mockedClient(t)
	httpmock.RegisterResponder("POST", "http://gosched.test/api/v1/sessions/sess_x/jobs",
		func(req *http.Request) (*http.Response, error) {
			if ct := req.Header.Get("Content-Type"); ct != "application/json" {
				t.Errorf("Content-Type = %q, want application/json", ct)
			}
			var body map[string]int
			if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
				t.Fatalf("decode request body: %v", err)
			}
			if body["burst_time"] != 4 {
				t.Errorf("burst_time = %d, want 4", body["burst_time"])
			}
			return httpmock.NewStringResponse(201,
				`{"status":"ok","request_id":"req_2","data":{"pid":1},"error":null}`), nil
		})

	if _, err := c.Post("/api/v1/sessions/sess_x/jobs",
		map[string]int{"arrival_time": 0, "burst_time": 4, "priority": 1}); err != nil {
		t.Fatalf("Post: %v", err)
	}
}

func TestClientMalformedResponse(t *testing.T) {
	c := mockedClient(t)
	httpmock.RegisterResponder("GET", "http://gosched.test/healthz",
		httpmock.NewStringResponder(500, "not json"))

	if _, err := c.Get("/healthz"); err == nil {
		t.Fatal("expected parse error for non-JSON body")
	}
}
