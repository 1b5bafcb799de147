package controller

import (
	"os"

	"lecture-lens-be/internal/pkg/logger"
	"lecture-lens-be/internal/service"
	internalWS "lecture-lens-be/internal/websocket"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type ITranscribeController interface {
	RegisterRoutes(r fiber.Router)
	Stream(ctx *fiber.Ctx) error
}

type transcribeController struct {
	streamService  service.IStreamService
	sessionService service.ISessionService
	hub            *internalWS.Hub
	logger         logger.ILogger
}

func NewTranscribeController(
	streamService service.IStreamService,
	sessionService service.ISessionService,
	hub *internalWS.Hub,
	log logger.ILogger,
) ITranscribeController {
	return &transcribeController{
		streamService:  streamService,
		sessionService: sessionService,
		hub:            hub,
		logger:         log,
	}
}

func (c *transcribeController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/transcribe/v1")
	h.Get("stream/:sessionId", c.Stream)
}

// Stream upgrades to a websocket and runs the live transcript loop for
// one session. Browsers cannot set headers on websocket handshakes, so
// the token is accepted from the query string as well.
func (c *transcribeController) Stream(ctx *fiber.Ctx) error {
	tokenStr := ctx.Query("token")
	if tokenStr == "" {
		authHeader := ctx.Get("Authorization")
		if len(authHeader) > 7 && authHeader[:7] == "Bearer " {
			tokenStr = authHeader[7:]
		}
	}
	if tokenStr == "" {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Missing token (Query 'token' or Header 'Authorization')"})
	}

	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.ErrUnauthorized
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		c.logger.Warn("TranscribeController", "Invalid token in WS handshake", map[string]interface{}{"error": err})
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token claims"})
	}
	userIdStr, ok := claims["user_id"].(string)
	if !ok {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Token missing user_id"})
	}
	userId, err := uuid.Parse(userIdStr)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid user ID format in token"})
	}

	sessionParam := ctx.Params("sessionId")
	sessionId, err := uuid.Parse(sessionParam)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid session id")
	}

	// Ownership check before the upgrade so a stranger's handshake is
	// rejected with a proper HTTP status.
	session, err := c.sessionService.Show(ctx.Context(), userId, sessionId)
	if err != nil {
		return err
	}
	if session == nil {
		return fiber.NewError(fiber.StatusNotFound, "Session not found")
	}

	processor, err := c.streamService.NewProcessor(sessionId)
	if err != nil {
		return err
	}

	if websocket.IsWebSocketUpgrade(ctx) {
		return websocket.New(func(conn *websocket.Conn) {
			c.logger.Info("TranscribeController", "Starting transcript stream", map[string]interface{}{"session_id": sessionId})
			internalWS.ServeWs(c.hub, conn, sessionId, processor)
			c.logger.Info("TranscribeController", "Transcript stream ended", map[string]interface{}{"session_id": sessionId})
		})(ctx)
	}
	return fiber.ErrUpgradeRequired
}
