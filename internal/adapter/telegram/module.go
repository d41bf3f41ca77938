package telegram

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/webstudio/internal/config"
)

// Module exposes the Telegram sender to fx graph.
var Module = fx.Provide(newSender)

type senderParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newSender(p senderParams) (Sender, error) {
	if !p.Config.TelegramEnabled() {
		p.Logger.Warn("telegram is not configured, notifications are disabled")
		return NewNopSender(p.Logger), nil
	}
	return NewHTTPClient(p.Config.TelegramAPIURL, p.Config.TelegramBotToken, p.Config.TelegramChatID, p.Logger)
}
