// Package api exposes the tool registry over HTTP so host frameworks that
// prefer a network boundary can list and invoke tools remotely.
package api

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/stocktake/stocktake/internal/domain/entities"
	"github.com/stocktake/stocktake/internal/domain/errors"
)

type Server struct {
	echo   *echo.Echo
	tools  []entities.Tool
	byName map[string]entities.Tool
	logger *zap.Logger
}

type toolView struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Parameters  []parameterView `json:"parameters"`
}

type parameterView struct {
	Name        string   `json:"name"`
	Type        string   `json:"type"`
	Enum        []string `json:"enum,omitempty"`
	Description string   `json:"description"`
	Required    bool     `json:"required"`
}

func NewServer(toolList []entities.Tool, logger *zap.Logger) *Server {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())

	s := &Server{
		echo:   e,
		tools:  toolList,
		byName: make(map[string]entities.Tool, len(toolList)),
		logger: logger,
	}
	for _, tool := range toolList {
		s.byName[tool.Name()] = tool
	}

	e.GET("/api/tools", s.listToolsHandler)
	e.POST("/api/tools/:name", s.executeToolHandler)

	return s
}

func (s *Server) Start(addr string) error {
	s.logger.Info("Starting tool server", zap.String("addr", addr))
	return s.echo.Start(addr)
}

func (s *Server) listToolsHandler(eCtx echo.Context) error {
	views := make([]toolView, 0, len(s.tools))
	for _, tool := range s.tools {
		view := toolView{
			Name:        tool.Name(),
			Description: tool.Description(),
			Parameters:  make([]parameterView, 0, len(tool.Parameters())),
		}
		for _, param := range tool.Parameters() {
			view.Parameters = append(view.Parameters, parameterView{
				Name:        param.Name,
				Type:        param.Type,
				Enum:        param.Enum,
				Description: param.Description,
				Required:    param.Required,
			})
		}
		views = append(views, view)
	}
	return eCtx.JSON(http.StatusOK, views)
}

func (s *Server) executeToolHandler(eCtx echo.Context) error {
	name := eCtx.Param("name")
	tool, exists := s.byName[name]
	if !exists {
		return eCtx.JSON(http.StatusNotFound, map[string]string{"error": "tool not found: " + name})
	}

	body, err := io.ReadAll(eCtx.Request().Body)
	if err != nil {
		return eCtx.JSON(http.StatusBadRequest, map[string]string{"error": "failed to read request body"})
	}
	arguments := strings.TrimSpace(string(body))
	if arguments == "" {
		arguments = "{}"
	}
	if !strings.HasPrefix(arguments, "{") || !json.Valid([]byte(arguments)) {
		return eCtx.JSON(http.StatusBadRequest, map[string]string{"error": "request body must be a JSON object of tool arguments"})
	}

	result, err := tool.Execute(arguments)
	if err != nil {
		s.logger.Warn("Tool execution failed", zap.String("tool", name), zap.Error(err))
		status := http.StatusInternalServerError
		if apiErr, ok := err.(*errors.APIError); ok {
			status = apiErr.StatusCode
		}
		return eCtx.JSON(status, map[string]string{"error": err.Error()})
	}

	return eCtx.JSON(http.StatusOK, map[string]string{"result": result})
}
