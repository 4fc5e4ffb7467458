package helpers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/isometry/fitbit-webhook-app/internal/helpers"
	"github.com/isometry/fitbit-webhook-app/internal/models"
	"github.com/stretchr/testify/assert"
)

type testCase struct {
	Name     string
	Response models.Response
	Expected expectedResponse
}

type expectedResponse struct {
	StatusCode int
	Body       string
	Header     string
}

func TestRespondHTTP(t *testing.T) {
	testCases := []testCase{
		{
			Name: "with_body_and_headers",
			Response: models.Response{
				StatusCode: http.StatusOK,
				Body:       `{"message":"ok"}`,
				Headers:    map[string]string{"Content-Type": "application/json"},
			},
			Expected: expectedResponse{
				StatusCode: http.StatusOK,
				Body:       `{"message":"ok"}`,
				Header:     "application/json",
			},
		},
		{
			Name:     "no_content",
			Response: models.Response{StatusCode: http.StatusNoContent},
			Expected: expectedResponse{StatusCode: http.StatusNoContent},
		},
		{
			Name: "no_content_drops_body",
			Response: models.Response{
				StatusCode: http.StatusNoContent,
				Body:       `{"message":"ignored"}`,
			},
			Expected: expectedResponse{StatusCode: http.StatusNoContent},
		},
		{
			Name:     "not_found",
			Response: models.Response{StatusCode: http.StatusNotFound},
			Expected: expectedResponse{StatusCode: http.StatusNotFound},
		},
		{
			Name:     "empty_response",
			Response: models.Response{},
			Expected: expectedResponse{StatusCode: http.StatusOK},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			rw := httptest.NewRecorder()

			helpers.RespondHTTP(tc.Response, rw)

			assert.Equal(t, tc.Expected.StatusCode, rw.Code)
			assert.Equal(t, tc.Expected.Header, rw.Header().Get("Content-Type"))
			assert.Equal(t, tc.Expected.Body, rw.Body.String())
		})
	}
}

func TestQueryParameters(t *testing.T) {
	testCases := []struct {
		Name     string
		RawQuery string
		Expected map[string]string
	}{
		{
			Name:     "empty",
			RawQuery: "",
			Expected: nil,
		},
		{
			Name:     "single",
			RawQuery: "verify=abc123",
			Expected: map[string]string{"verify": "abc123"},
		},
		{
			Name:     "empty_value",
			RawQuery: "verify=",
			Expected: map[string]string{"verify": ""},
		},
		{
			Name:     "repeated_keeps_first",
			RawQuery: "verify=first&verify=second",
			Expected: map[string]string{"verify": "first"},
		},
		{
			Name:     "escaped",
			RawQuery: "verify=a%2Bb%20c",
			Expected: map[string]string{"verify": "a+b c"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			assert.Equal(t, tc.Expected, helpers.QueryParameters(tc.RawQuery))
		})
	}
}

func TestNormaliseHeaders(t *testing.T) {
	h := http.Header{}
	h.Add("Content-Type", "application/json")
	h.Add("X-Request-Id", "one")
	h.Add("X-Request-Id", "two")

	assert.Equal(t, map[string]string{
		"content-type": "application/json",
		"x-request-id": "one",
	}, helpers.NormaliseHeaders(h))
}
