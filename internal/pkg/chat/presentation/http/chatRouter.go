package http

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	busport "github.com/StefanoAtzeni2001/adottaTO/internal/infrastructure/eventbus/port"
	"github.com/StefanoAtzeni2001/adottaTO/internal/pkg/chat/application/usecase"
	repository "github.com/StefanoAtzeni2001/adottaTO/internal/pkg/chat/persistence/repository/port"
	"github.com/StefanoAtzeni2001/adottaTO/internal/pkg/chat/presentation/controller"
)

// RegisterRoutes registers chat-related HTTP endpoints under the given router group
// It constructs per-endpoint controllers and binds them directly to routes.
func RegisterRoutes(g *gin.RouterGroup, repo repository.ChatRepository, bus busport.Publisher, log *slog.Logger) {
	sendMsgCtl := controller.NewSendMessageController(usecase.NewSendMessageUseCase(repo, bus, log))
	listCtl := controller.NewListChatsController(usecase.NewListChatsUseCase(repo))
	historyCtl := controller.NewGetHistoryController(usecase.NewGetHistoryUseCase(repo, log))
	unreadCtl := controller.NewGetUnreadController(usecase.NewGetUnreadUseCase(repo, log))
	sendReqCtl := controller.NewRequestActionController(usecase.NewSendRequestUseCase(repo, bus, log), "request sent")
	cancelReqCtl := controller.NewRequestActionController(usecase.NewCancelRequestUseCase(repo, bus, log), "request cancelled")
	acceptReqCtl := controller.NewRequestActionController(usecase.NewAcceptRequestUseCase(repo, bus, log), "request accepted")
	rejectReqCtl := controller.NewRequestActionController(usecase.NewRejectRequestUseCase(repo, bus, log), "request rejected")

	// POST /api/v1/chat/send -> send a message into a new or existing chat
	g.POST("/chat/send", sendMsgCtl.Handle())

	// GET /api/v1/chat/chats -> list the caller's conversations
	g.GET("/chat/chats", listCtl.Handle())

	// GET /api/v1/chat/:chatId/history -> full history, marking unread as seen
	g.GET("/chat/:chatId/history", historyCtl.Handle())

	// GET /api/v1/chat/:chatId/unread -> unread messages, marking them seen
	g.GET("/chat/:chatId/unread", unreadCtl.Handle())

	// POST /api/v1/chat/:chatId/... -> adoption request lifecycle
	g.POST("/chat/:chatId/send-request", sendReqCtl.Handle())
	g.POST("/chat/:chatId/cancel-request", cancelReqCtl.Handle())
	g.POST("/chat/:chatId/accept-request", acceptReqCtl.Handle())
	g.POST("/chat/:chatId/reject-request", rejectReqCtl.Handle())
}
