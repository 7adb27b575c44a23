// Copyright (c) 2026 Affine Team
// Affine - affine cipher toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package server

// TransformRequest is the body of /encrypt and /decrypt.
type TransformRequest struct {
	Text string `json:"text"`
	A    *int   `json:"a" binding:"required"`
	B    *int   `json:"b" binding:"required"`
}

// TransformResponse carries the full transformed text, or an error.
type TransformResponse struct {
	Success bool   `json:"success"`
	Result  string `json:"result,omitempty"`
	Message string `json:"message,omitempty"`
	Code    string `json:"code,omitempty"`
}

// KeyCheckRequest is the body of /keys/check.
type KeyCheckRequest struct {
	A *int `json:"a" binding:"required"`
	B *int `json:"b" binding:"required"`
}

// KeyCheckResponse reports whether a key passes validation and, if so,
// the inverse of a.
type KeyCheckResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
	Inverse int    `json:"inverse,omitempty"`
}

// KeySpaceResponse lists the usable multipliers.
type KeySpaceResponse struct {
	Multipliers []int       `json:"multipliers"`
	Inverses    map[int]int `json:"inverses"`
	Count       int         `json:"count"`
}

// ErrorResponse is returned for malformed requests.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Code    string `json:"code"`
}
