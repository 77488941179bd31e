package notify

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/polymix/polymix/pkg/types"
)

// TelegramNotifier pushes trade alerts to a Telegram chat.
type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
	logger *zap.Logger
}

// NewTelegramNotifier creates a Telegram notifier and verifies the token
// against the Bot API.
func NewTelegramNotifier(token string, chatID int64, logger *zap.Logger) (*TelegramNotifier, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}
	bot.Debug = false

	me, err := bot.GetMe()
	if err != nil {
		return nil, fmt.Errorf("verify telegram bot: %w", err)
	}

	logger.Info("telegram-notifier-initialized",
		zap.String("bot", me.UserName),
		zap.Int64("chat-id", chatID))

	return &TelegramNotifier{
		bot:    bot,
		chatID: chatID,
		logger: logger,
	}, nil
}

// Notify sends the trade alert to the configured chat.
func (t *TelegramNotifier) Notify(_ context.Context, trade *types.TradeRecord) error {
	msg := tgbotapi.NewMessage(t.chatID, FormatTrade(trade))

	_, err := t.bot.Send(msg)
	if err != nil {
		NotificationsFailedTotal.WithLabelValues("telegram").Inc()
		return fmt.Errorf("send telegram message: %w", err)
	}

	NotificationsSentTotal.WithLabelValues("telegram").Inc()
	t.logger.Debug("telegram-alert-sent",
		zap.String("trade-id", trade.ID),
		zap.String("game-key", trade.GameKey))
	return nil
}
