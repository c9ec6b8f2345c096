/*
Copyright Trustmesh Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package resterr

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/trustbloc/logutil-go/pkg/log"
	"go.uber.org/zap"
)

var logger = log.New("rest-err")

// HTTPErrorHandler renders any error escaping a handler as a JSON error
// response. Register it as the echo server's error handler.
func HTTPErrorHandler(err error, c echo.Context) {
	code, message := processError(err)

	logger.Error("http error", zap.String("uri", c.Request().RequestURI),
		zap.Int("code", code), zap.Any("message", message))

	sendResponse(c, code, message)
}

func sendResponse(c echo.Context, code int, message interface{}) {
	var err error

	if !c.Response().Committed {
		if c.Request().Method == http.MethodHead {
			err = c.NoContent(code)
		} else {
			err = c.JSON(code, message)
		}

		if err != nil {
			logger.Error("write http response", log.WithError(err))
		}
	}
}

func processError(err error) (int, interface{}) {
	switch v := err.(type) { //nolint: errorlint
	case *echo.HTTPError:
		code, message := v.Code, v.Message
		if v.Internal != nil {
			message = err.Error()
		}

		if strMsg, ok := message.(string); ok {
			message = map[string]interface{}{
				"message": strMsg,
			}
		}

		return code, message

	case *CustomError:
		return v.HTTPCodeMsg()
	default:
		return http.StatusInternalServerError, map[string]interface{}{
			"code":    "generic-error",
			"message": err.Error(),
		}
	}
}
