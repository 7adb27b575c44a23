// Copyright (c) 2026 Affine Team
// Affine - affine cipher toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/payveri/affine/core/affine"
	"github.com/payveri/affine/internal/i18n"
	"github.com/payveri/affine/internal/ui"
	"github.com/payveri/affine/util/slicest"
)

// CipherHandler serves the cipher endpoints. It holds only configuration;
// every request is a pure function of its body.
type CipherHandler struct {
	strictB bool
	version string
}

func NewCipherHandler(strictB bool, version string) *CipherHandler {
	return &CipherHandler{strictB: strictB, version: version}
}

func (h *CipherHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"message": i18n.T("api.healthy"),
		"version": h.version,
	})
}

func (h *CipherHandler) Encrypt(c *gin.Context) {
	h.transform(c, func(k affine.Key, text string) (string, error) {
		return k.Encrypt(text), nil
	})
}

func (h *CipherHandler) Decrypt(c *gin.Context) {
	h.transform(c, func(k affine.Key, text string) (string, error) {
		return k.Decrypt(text)
	})
}

func (h *CipherHandler) transform(c *gin.Context, fn func(affine.Key, string) (string, error)) {
	var req TransformRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	k, err := ui.CheckKey(affine.Key{A: *req.A, B: *req.B}, h.strictB)
	if err != nil {
		c.JSON(http.StatusBadRequest, TransformResponse{
			Success: false,
			Message: ui.Message(err, k),
			Code:    ui.Code(err),
		})
		return
	}

	out, err := fn(k, req.Text)
	if err != nil {
		c.JSON(http.StatusBadRequest, TransformResponse{
			Success: false,
			Message: ui.Message(err, k),
			Code:    ui.Code(err),
		})
		return
	}

	c.JSON(http.StatusOK, TransformResponse{Success: true, Result: out})
}

func (h *CipherHandler) CheckKey(c *gin.Context) {
	var req KeyCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	k, err := ui.CheckKey(affine.Key{A: *req.A, B: *req.B}, h.strictB)
	if err != nil {
		c.JSON(http.StatusBadRequest, KeyCheckResponse{
			Success: false,
			Message: ui.Message(err, k),
			Code:    ui.Code(err),
		})
		return
	}
	inv, _ := k.Inverse()
	c.JSON(http.StatusOK, KeyCheckResponse{
		Success: true,
		Message: i18n.T("status.key_valid", k.A, k.B),
		Inverse: inv,
	})
}

func (h *CipherHandler) ListKeys(c *gin.Context) {
	ms := affine.ValidMultipliers()
	inv := slicest.ToMap(ms, func(a int) (int, int) {
		x, _ := affine.ModInverse(a, affine.AlphabetSize)
		return a, x
	})
	c.JSON(http.StatusOK, KeySpaceResponse{
		Multipliers: ms,
		Inverses:    inv,
		Count:       affine.KeySpaceSize,
	})
}

// badRequest reports a body that could not be bound. A key given as a
// non-integer is reported as invalid_key_format.
func badRequest(c *gin.Context, err error) {
	code := ui.CodeBadRequest
	msg := err.Error()
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && (typeErr.Field == "a" || typeErr.Field == "b") {
		code = ui.CodeInvalidKeyFormat
		msg = i18n.T("error.key_format")
	}
	c.JSON(http.StatusBadRequest, ErrorResponse{Success: false, Message: msg, Code: code})
}
