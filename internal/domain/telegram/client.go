package telegram

import "gopkg.in/telebot.v3"

// Client sends messages to a Telegram chat. The automation layer pushes
// block-change notifications through this interface and never touches the
// bot library's concrete types.
type Client interface {
	SendMessage(recipientChatID int64, text string, options *telebot.SendOptions) error
}
