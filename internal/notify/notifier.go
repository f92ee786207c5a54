package notify

import "context"

// Notifier канал уведомлений персонала о событиях бронирования
type Notifier interface {
	Send(ctx context.Context, text string) error
}

// Nop заглушка, когда канал уведомлений не настроен
type Nop struct{}

func (Nop) Send(ctx context.Context, text string) error {
	return nil
}
