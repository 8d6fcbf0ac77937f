package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"logistics/api"
	"logistics/internal/generated/servers"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/getkin/kin-openapi/routers/legacy"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// NewEcho builds the echo instance serving the registry API: request logging,
// panic recovery, OpenAPI request validation, the Swagger UI under /swagger/
// and every operation of the embedded document.
func NewEcho(server *Server, logger *slog.Logger) (*echo.Echo, error) {
	doc, err := api.Load()
	if err != nil {
		return nil, fmt.Errorf("load openapi document: %w", err)
	}

	validation, err := openAPIValidator(doc)
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.JSONSerializer = jsonSerializer{}
	e.Validator = newRequestValidator()
	e.HTTPErrorHandler = httpErrorHandler

	e.Use(middleware.RequestLoggerWithConfig(requestLogger(logger)))
	e.Use(middleware.Recover())
	e.Use(validation)

	e.GET("/swagger/*", echoSwagger.WrapHandler)
	servers.RegisterHandlers(e, server)

	return e, nil
}

func requestLogger(logger *slog.Logger) middleware.RequestLoggerConfig {
	logger = logger.With("component", "http")

	return middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(ctx echo.Context, v middleware.RequestLoggerValues) error {
			level := slog.LevelInfo
			if v.Status >= http.StatusInternalServerError {
				level = slog.LevelError
			}

			attrs := []slog.Attr{
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
			}
			if v.Error != nil {
				attrs = append(attrs, slog.String("error", v.Error.Error()))
			}

			logger.LogAttrs(ctx.Request().Context(), level, "request", attrs...)
			return nil
		},
	}
}

// openAPIValidator rejects requests that do not match the document. Requests
// for paths the document does not describe are passed on untouched.
func openAPIValidator(doc *openapi3.T) (echo.MiddlewareFunc, error) {
	router, err := legacy.NewRouter(doc)
	if err != nil {
		return nil, fmt.Errorf("build openapi router: %w", err)
	}

	options := &openapi3filter.Options{
		AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			req := ctx.Request()

			route, pathParams, err := router.FindRoute(req)
			if err != nil {
				return next(ctx)
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    req,
				PathParams: pathParams,
				Route:      route,
				Options:    options,
			}
			if err = openapi3filter.ValidateRequest(req.Context(), input); err != nil {
				return echo.NewHTTPError(http.StatusBadRequest, describe(err)).SetInternal(err)
			}

			return next(ctx)
		}
	}, nil
}

// describe shortens kin-openapi errors, whose Error text embeds the whole
// offending schema.
func describe(err error) string {
	var reqErr *openapi3filter.RequestError
	if errors.As(err, &reqErr) && reqErr.Parameter != nil {
		return fmt.Sprintf("parameter %q: %s", reqErr.Parameter.Name, describe(reqErr.Err))
	}

	var schemaErr *openapi3.SchemaError
	if errors.As(err, &schemaErr) {
		if pointer := schemaErr.JSONPointer(); len(pointer) > 0 {
			return fmt.Sprintf("%s: %s", strings.Join(pointer, "."), schemaErr.Reason)
		}
		return schemaErr.Reason
	}

	if reqErr != nil && reqErr.Reason != "" {
		return reqErr.Reason
	}

	var routeErr *routers.RouteError
	if errors.As(err, &routeErr) {
		return routeErr.Reason
	}

	if err == nil {
		return "invalid request"
	}
	return err.Error()
}
