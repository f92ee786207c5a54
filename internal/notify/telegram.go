package notify

import (
	"context"
	"fmt"

	"github.com/go-telegram/bot"
	"go.uber.org/zap"
)

// Telegram отправляет уведомления в служебный чат персонала
type Telegram struct {
	bot    *bot.Bot
	chatID string
	logger *zap.Logger
}

// NewTelegram создаёт нотификатор поверх бота
func NewTelegram(token, chatID string, logger *zap.Logger) (*Telegram, error) {
	b, err := bot.New(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &Telegram{
		bot:    b,
		chatID: chatID,
		logger: logger,
	}, nil
}

// Send отправляет сообщение в чат. Ошибка доставки логируется, но не
// прерывает бизнес-операцию вызывающего
func (t *Telegram) Send(ctx context.Context, text string) error {
	_, err := t.bot.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: t.chatID,
		Text:   text,
	})
	if err != nil {
		t.logger.Warn("Failed to send staff notification", zap.Error(err))
		return fmt.Errorf("send telegram message: %w", err)
	}
	return nil
}
