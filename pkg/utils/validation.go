package utils

import "strings"

// ValidationError describes one rejected request field. Location is the path to
// the field, starting with where it was read from ("body", "query").
type ValidationError struct {
	Location []string `json:"loc"`
	Message  string   `json:"msg"`
	Type     string   `json:"type"`
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Location, ".") + ": " + e.Message
}

// ValidationErrors collects every problem found in one request.
type ValidationErrors []*ValidationError

func (errs ValidationErrors) Error() string {
	msgs := make([]string, 0, len(errs))
	for _, e := range errs {
		msgs = append(msgs, e.Error())
	}
	return strings.Join(msgs, "; ")
}

// MissingField reports a required field that was absent.
func MissingField(loc ...string) *ValidationError {
	return &ValidationError{Location: loc, Message: "Field required", Type: "missing"}
}

// NotAString reports a field that should have been a string.
func NotAString(loc ...string) *ValidationError {
	return &ValidationError{Location: loc, Message: "Input should be a valid string", Type: "string_type"}
}

// NotAnInteger reports a field that could not be parsed as an integer.
func NotAnInteger(loc ...string) *ValidationError {
	return &ValidationError{
		Location: loc,
		Message:  "Input should be a valid integer, unable to parse string as an integer",
		Type:     "int_parsing",
	}
}

// NotAnObject reports a body that parsed but is not a JSON object.
func NotAnObject(loc ...string) *ValidationError {
	return &ValidationError{
		Location: loc,
		Message:  "Input should be a valid dictionary or object to extract fields from",
		Type:     "model_attributes_type",
	}
}

// InvalidJSON reports a body that is not valid JSON.
func InvalidJSON() *ValidationError {
	return &ValidationError{Location: []string{"body"}, Message: "JSON decode error", Type: "json_invalid"}
}
