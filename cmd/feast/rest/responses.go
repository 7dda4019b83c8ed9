package rest

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	apierr "github.com/feastworks/feast-api-types/errors"
	cerr "github.com/feastworks/feast/cmd/feast/errors"
)

type MessageFor map[StatusCodeRange]string

// unmarshal http response which has json content.
//
// args:
//   - resp: http response to be processed.
//   - v: value which response should be.
//   - messageFor: title of error message for HTTP status code range.
//
// return:
//
//	error if...
//	- the status code is 401 (wrapping ErrUnauthorized)
//	- can not read response body
//	- response body is not shaped of v
//	- status code is in 4xx or 5xx
func unmarshalJsonResponse[T any](resp *http.Response, v *T, messageFor MessageFor) error {
	scr := StatusCodeRangeOf(resp)
	if scr <= Status2xx {
		if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
			message := fmt.Sprintf("unexpected error: %s (status code = %d)", err.Error(), resp.StatusCode)
			return cerr.NewCUIError(message, cerr.WithCause(err))
		}
		return nil
	}

	if resp.StatusCode == http.StatusUnauthorized {
		return cerr.NewCUIError(
			"not authenticated",
			cerr.WithCause(ErrUnauthorized),
		)
	}

	message, ok := messageFor[scr]
	if !ok {
		message = scr.String()
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		e := cerr.NewCUIError(
			fmt.Sprintf(
				"%s\ncannot read server message: %s",
				message, err.Error(),
			),
			cerr.WithCause(err),
		)
		return e
	}

	detail := parseErrorMessage(body)
	return cerr.NewCUIError(
		message,
		cerr.WithDetail(func(summary string) (string, error) {
			if detail == "" {
				return summary, nil
			}
			return summary + ": " + detail, nil
		}),
	)
}

func jsonUnmarshal[T any](buf []byte) (*T, error) {
	ret := new(T)
	if err := json.Unmarshal(buf, ret); err != nil {
		return nil, err
	}
	return ret, nil
}

// unmarshalResponseDiscardingPayload drains the body without decoding it.
// Some endpoints (DELETE) answer with an empty body on success.
func unmarshalResponseDiscardingPayload(resp *http.Response, messageFor MessageFor) error {
	if StatusCodeRangeOf(resp) <= Status2xx {
		io.Copy(io.Discard, resp.Body)
		return nil
	}

	var ignore json.RawMessage
	return unmarshalJsonResponse(resp, &ignore, messageFor)
}

// parseErrorMessage digs the human-readable message out of an error body.
//
// The platform sends {"message": ...}; anything else is passed through as-is.
func parseErrorMessage(body []byte) string {
	if eresp, err := jsonUnmarshal[apierr.ErrorMessage](body); err == nil {
		return eresp.String()
	}
	return string(body)
}
