package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"edukamer/bootcamphub/internal/config"
)

const telegramAPIBase = "https://api.telegram.org"

// markdownV2Escaper escapes the characters Telegram treats as markup.
var markdownV2Escaper = strings.NewReplacer(
	"_", "\\_", "*", "\\*", "[", "\\[", "]", "\\]", "(", "\\(", ")", "\\)",
	"~", "\\~", "`", "\\`", ">", "\\>", "#", "\\#", "+", "\\+", "-", "\\-",
	"=", "\\=", "|", "\\|", "{", "\\{", "}", "\\}", ".", "\\.", "!", "\\!",
	"\\", "\\\\",
)

type telegramNotifier struct {
	client *resty.Client
	chatID string
	logger *zap.Logger
}

// NewTelegramNotifier builds a Notifier posting to the Telegram Bot API.
// Falls back to the no-op notifier when credentials are not configured.
func NewTelegramNotifier(cfg config.TelegramConfig, logger *zap.Logger) Notifier {
	if cfg.BotToken == "" || cfg.ChatID == "" {
		logger.Warn("telegram credentials not configured, notifications disabled")
		return NewNoopNotifier()
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	client := resty.New().
		SetBaseURL(fmt.Sprintf("%s/bot%s", telegramAPIBase, cfg.BotToken)).
		SetTimeout(timeout)

	return &telegramNotifier{
		client: client,
		chatID: cfg.ChatID,
		logger: logger,
	}
}

func (n *telegramNotifier) AccountCreated(ev AccountCreatedEvent) {
	phone := ev.Phone
	if phone == "" {
		phone = "not provided"
	}
	text := fmt.Sprintf(
		"*New Account Created*\n\nName: %s\nEmail: %s\nPhone: %s\nReferral code: `%s`\nRole: %s",
		escape(ev.Name), escape(ev.Email), escape(phone), escape(ev.ReferralCode), escape(ev.Role),
	)
	n.dispatch("account created", text)
}

func (n *telegramNotifier) LeadReferred(ev LeadReferredEvent) {
	email := ev.LeadEmail
	if email == "" {
		email = "not provided"
	}
	text := fmt.Sprintf(
		"*New Referral*\n\nLead: %s\nPhone: %s\nEmail: %s\n\nReferred by: %s \\(`%s`\\)\nPromotion: %s\nDiscount: %d%%",
		escape(ev.LeadName), escape(ev.LeadPhone), escape(email),
		escape(ev.ReferrerName), escape(ev.ReferrerCode),
		escape(ev.PromotionName), ev.DiscountPercent,
	)
	n.dispatch("lead referred", text)
}

func (n *telegramNotifier) LeadStatusChanged(ev LeadStatusChangedEvent) {
	text := fmt.Sprintf(
		"*Lead Status Updated*\n\nLead: %s\nReferrer: %s\nPromotion: %s\nStatus: %s \\-\\> %s",
		escape(ev.LeadName), escape(ev.ReferrerName), escape(ev.PromotionName),
		escape(ev.OldStatus), escape(ev.NewStatus),
	)
	n.dispatch("lead status changed", text)
}

// dispatch sends the message on its own goroutine. Failures are logged and
// swallowed so notification problems never reach the caller.
func (n *telegramNotifier) dispatch(kind, text string) {
	go func() {
		resp, err := n.client.R().
			SetBody(map[string]interface{}{
				"chat_id":    n.chatID,
				"text":       text,
				"parse_mode": "MarkdownV2",
			}).
			Post("/sendMessage")
		if err != nil {
			n.logger.Warn("telegram notification failed",
				zap.String("kind", kind), zap.Error(err))
			return
		}
		if resp.IsError() {
			n.logger.Warn("telegram API rejected notification",
				zap.String("kind", kind),
				zap.Int("status", resp.StatusCode()),
				zap.ByteString("body", resp.Body()))
		}
	}()
}

func escape(s string) string {
	return markdownV2Escaper.Replace(s)
}
