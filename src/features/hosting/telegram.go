package hosting

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/contre95/filepulse/src/features/config"
	"github.com/contre95/filepulse/src/monitor"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Sends run synchronously on the publish path, so every API call must be
// time-bounded: a stalled send would otherwise hold the read-cycle gate.
const telegramSendTimeout = 5 * time.Second

// TelegramNotifier pushes a short message to the configured chats on every
// accepted emission. It implements the publisher sink interface; send
// failures are logged upstream and never stop monitoring.
type TelegramNotifier struct {
	bot *tgbotapi.BotAPI
	cfg *config.Manager
}

// NewTelegramNotifier creates a new Telegram notifier.
func NewTelegramNotifier(cfg *config.Manager) (*TelegramNotifier, error) {
	telegramConfig := cfg.Get().Telegram

	if !telegramConfig.Enabled {
		return nil, fmt.Errorf("telegram notifier is disabled in configuration")
	}
	if telegramConfig.Token == "" {
		return nil, fmt.Errorf("telegram bot token is not configured")
	}
	if len(telegramConfig.ChatIDs) == 0 {
		return nil, fmt.Errorf("no telegram chat ids configured")
	}

	bot, err := tgbotapi.NewBotAPIWithClient(telegramConfig.Token, tgbotapi.APIEndpoint, newTelegramClient())
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}

	slog.Info("Telegram notifier initialized", "username", bot.Self.UserName)
	return &TelegramNotifier{bot: bot, cfg: cfg}, nil
}

// Name identifies the sink in logs.
func (t *TelegramNotifier) Name() string {
	return "telegram"
}

// Update sends the emission summary to every configured chat.
func (t *TelegramNotifier) Update(snap monitor.Snapshot) error {
	text := formatEmission(snap)

	var firstErr error
	for _, chatID := range t.cfg.Get().Telegram.ChatIDs {
		if _, err := t.bot.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
			slog.Warn("Failed to send telegram notification", "chat_id", chatID, "error", err)
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}

func newTelegramClient() *http.Client {
	return &http.Client{Timeout: telegramSendTimeout}
}

func formatEmission(snap monitor.Snapshot) string {
	switch snap.Status {
	case monitor.StatusNotFound:
		return fmt.Sprintf("⚠️ %s disappeared", snap.Path)
	case monitor.StatusError:
		return fmt.Sprintf("❌ %s: %s", snap.Path, snap.ErrorMessage)
	case monitor.StatusTruncated:
		return fmt.Sprintf("📄 %s changed (%d bytes, content truncated)", snap.Path, snap.SizeBytes)
	default:
		return fmt.Sprintf("📄 %s changed (%d bytes)", snap.Path, snap.SizeBytes)
	}
}
