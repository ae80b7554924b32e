package notification

import (
	"context"
	"fmt"

	"github.com/FarHanZzzz/SmartUrban/internal/domain"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/wb-go/wbf/logger"
)

// TelegramNotifier posts reservation events to a municipal operations chat.
type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
	logger logger.Logger
}

func NewTelegramNotifier(token string, chatID int64, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" || chatID == 0 {
		logger.Warn("telegram bot token or chat id is empty, ops notifications disabled")
		return &TelegramNotifier{bot: nil, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, chatID: chatID, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyReservationCreated(ctx context.Context, r *domain.Reservation, spot *domain.ParkingSpot) {
	text := fmt.Sprintf(
		"*New reservation #%d*\n\n"+"Spot: %s %s\n"+"Slot (UTC): %s — %s\n"+"Amount: $%.2f",
		r.ID, spot.Location, spot.SpotNumber,
		r.StartTime.Format("02.01.2006 15:04"), r.EndTime.Format("02.01.2006 15:04"),
		r.TotalAmount,
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) NotifyReservationCancelled(ctx context.Context, r *domain.Reservation) {
	text := fmt.Sprintf(
		"*Reservation #%d cancelled*\n\n"+"Spot id: %d\n"+"Slot (UTC): %s — %s",
		r.ID, r.SpotID,
		r.StartTime.Format("02.01.2006 15:04"), r.EndTime.Format("02.01.2006 15:04"),
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) NotifyReservationNoShow(ctx context.Context, r *domain.Reservation) {
	text := fmt.Sprintf(
		"*Reservation #%d cancelled (no-show)*\n\n"+"Spot id: %d\n"+"Was never confirmed before %s UTC.",
		r.ID, r.SpotID,
		r.StartTime.Format("02.01.2006 15:04"),
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) send(ctx context.Context, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.Int64("chat_id", n.chatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(n.chatID, text)
	msg.ParseMode = "Markdown"

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", n.chatID),
			logger.String("error", err.Error()),
		)
	}
}
