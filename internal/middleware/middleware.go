package middleware

import (
	"context"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/sirupsen/logrus"
)

func Logging(next server.ToolHandlerFunc) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (cr *mcp.CallToolResult, err error) {
		start := time.Now()

		sessionID := ""
		if sessionClient := server.ClientSessionFromContext(ctx); sessionClient != nil {
			sessionID = sessionClient.SessionID()
		}

		l := logrus.WithFields(logrus.Fields{
			"session": sessionID,
			"tool":    req.Params.Name,
		})

		defer func() {
			duration := time.Since(start)
			if err != nil {
				l.WithField("duration", duration).Errorf("Tool call failed, %v", err)
			} else if cr != nil && cr.IsError {
				l.WithField("duration", duration).Errorf("Tool call failed, %#+v", cr)
			} else {
				l.WithField("duration", duration).Info("Tool call completed")
			}
		}()

		return next(ctx, req)
	}
}
