package agent

import (
	"encoding/json"
	"fmt"
)

// NewSuccessResponse wraps the JSON encoding of payload in a success
// envelope for the given invocation.
func NewSuccessResponse(inv *Invocation, payload any) (*Response, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode function payload: %w", err)
	}
	return newResponse(inv, "", string(body)), nil
}

// NewFailureResponse wraps an error message in a failure envelope for the
// given invocation.
func NewFailureResponse(inv *Invocation, message string) *Response {
	body, _ := json.Marshal(ErrorPayload{Error: message})
	return newResponse(inv, ResponseStateFailure, string(body))
}

func newResponse(inv *Invocation, state, body string) *Response {
	return &Response{
		MessageVersion: MessageVersion,
		Response: ActionResult{
			ActionGroup: inv.ActionGroup,
			Function:    inv.Function,
			FunctionResponse: FunctionResponse{
				ResponseState: state,
				ResponseBody: ResponseBody{
					Text: TextBody{Body: body},
				},
			},
		},
	}
}
