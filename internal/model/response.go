package model

import "encoding/json"

// Response is one candidate answer to one question. Answer carries an
// option index, an array of indices, or free text depending on the
// question type; coercion is tolerant and malformed values simply fail
// to resolve (the scoring pass records them as skipped).
type Response struct {
	QuestionID string          `json:"questionId" bson:"questionId"`
	Answer     json.RawMessage `json:"answer" bson:"answer"`
}

// OptionIndex extracts a single option index from the raw answer.
// Accepts a JSON number or a single-element array. Returns ok=false for
// anything else, including out-of-range handling left to the caller.
func (r *Response) OptionIndex() (int, bool) {
	if len(r.Answer) == 0 {
		return 0, false
	}
	var idx int
	if err := json.Unmarshal(r.Answer, &idx); err == nil {
		return idx, true
	}
	var idxs []int
	if err := json.Unmarshal(r.Answer, &idxs); err == nil && len(idxs) > 0 {
		return idxs[0], true
	}
	// Numbers occasionally arrive as strings from form encodings
	var s string
	if err := json.Unmarshal(r.Answer, &s); err == nil {
		var n int
		if err := json.Unmarshal([]byte(s), &n); err == nil {
			return n, true
		}
	}
	return 0, false
}

// OptionIndices extracts all selected option indices (multi-choice).
func (r *Response) OptionIndices() ([]int, bool) {
	if len(r.Answer) == 0 {
		return nil, false
	}
	var idxs []int
	if err := json.Unmarshal(r.Answer, &idxs); err == nil {
		return idxs, true
	}
	if idx, ok := r.OptionIndex(); ok {
		return []int{idx}, true
	}
	return nil, false
}

// Text extracts a free-text answer.
func (r *Response) Text() (string, bool) {
	if len(r.Answer) == 0 {
		return "", false
	}
	var s string
	if err := json.Unmarshal(r.Answer, &s); err != nil {
		return "", false
	}
	return s, true
}
