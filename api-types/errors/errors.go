package errors

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ErrorMessage is the JSON body the platform sends with 4xx/5xx responses.
//
// Only "message" is guaranteed; the other fields appear on framework-generated
// errors.
type ErrorMessage struct {
	Message string `json:"message"`
	Status  int    `json:"status,omitempty"`
	Error_  string `json:"error,omitempty"`
	Path    string `json:"path,omitempty"`
	Cause   error  `json:"-"`
}

func (em *ErrorMessage) UnmarshalJSON(bytes []byte) error {
	f := new(struct {
		Message *string `json:"message"`
		Status  *int    `json:"status"`
		Error   *string `json:"error"`
		Path    *string `json:"path"`
	})
	if err := json.Unmarshal(bytes, f); err != nil {
		return err
	}

	if f.Message == nil {
		return fmt.Errorf(`required field missing: "message"`)
	}
	em.Message = *f.Message

	if f.Status != nil {
		em.Status = *f.Status
	}
	if f.Error != nil {
		em.Error_ = *f.Error
	}
	if f.Path != nil {
		em.Path = *f.Path
	}

	return nil
}

func (e ErrorMessage) String() string {
	lines := []string{e.Message}
	if e.Error_ != "" {
		lines = append(lines, fmt.Sprintf("(%s)", e.Error_))
	}
	if e.Cause != nil {
		lines = append(lines, " caused by:"+e.Cause.Error())
	}
	return strings.Join(lines, "\n")
}

func (e ErrorMessage) Error() string {
	return e.String()
}

func (e ErrorMessage) Unwrap() error {
	return e.Cause
}
