package http

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	apperrors "task-tracker.com/task-tracker/internal/errors"
	middleware "task-tracker.com/task-tracker/internal/http/middlewares"
)

func Register(e *echo.Echo, h *Handler, rateLimitPerMinute int) {
	e.HTTPErrorHandler = jsonErrorHandler

	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.RateLimiter(rateLimitPerMinute, time.Minute))

	e.POST("/tasks", h.CreateTask)
	e.GET("/tasks", h.ListTasks)
	e.GET("/tasks/:id", h.GetTask)
	e.PUT("/tasks/:id", h.UpdateTask)
	e.DELETE("/tasks/:id", h.DeleteTask)
}

// jsonErrorHandler renders every failure as {"error": <message>}.
// Exceptions keep their message and status; unmatched routes collapse
// to a generic 404; anything else is logged and reported as a generic
// 500 so internals never leak to clients.
func jsonErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := "internal server error"

	var appErr *apperrors.Exception
	var httpErr *echo.HTTPError

	switch {
	case errors.As(err, &appErr):
		code = appErr.StatusCode
		message = appErr.Message
	case errors.As(err, &httpErr):
		code = httpErr.Code
		if code == http.StatusNotFound || code == http.StatusMethodNotAllowed {
			code = http.StatusNotFound
			message = "resource not found"
		} else if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}
	default:
		log.Printf("unhandled error on %s %s: %v", c.Request().Method, c.Request().URL.Path, err)
	}

	if jsonErr := c.JSON(code, echo.Map{"error": message}); jsonErr != nil {
		log.Printf("failed to write error response: %v", jsonErr)
	}
}
