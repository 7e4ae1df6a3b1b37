package handler

import (
	"strconv"
	"strings"

	"ratesbot/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// BotTransport implements service.Transport over a telebot bot.
type BotTransport struct {
	bot    *tele.Bot
	logger *zap.Logger
}

// NewBotTransport creates a transport backed by the given bot.
func NewBotTransport(bot *tele.Bot, logger *zap.Logger) *BotTransport {
	return &BotTransport{bot: bot, logger: logger}
}

// Send delivers a new message and returns its id.
func (t *BotTransport) Send(chatID int64, view service.View) (int, error) {
	msg, err := t.bot.Send(tele.ChatID(chatID), view.Text, markupFor(view))
	if err != nil {
		return 0, err
	}
	return msg.ID, nil
}

// Edit replaces the text and keyboard of an existing message. An edit that
// changes nothing is reported as success.
func (t *BotTransport) Edit(chatID int64, messageID int, view service.View) error {
	ref := &tele.StoredMessage{
		MessageID: strconv.Itoa(messageID),
		ChatID:    chatID,
	}
	_, err := t.bot.Edit(ref, view.Text, markupFor(view))
	if err != nil && strings.Contains(err.Error(), "message is not modified") {
		t.logger.Debug("Message already up to date",
			zap.Int64("chat_id", chatID),
			zap.Int("message_id", messageID),
		)
		return nil
	}
	return err
}

// Delete removes a message.
func (t *BotTransport) Delete(chatID int64, messageID int) error {
	return t.bot.Delete(&tele.StoredMessage{
		MessageID: strconv.Itoa(messageID),
		ChatID:    chatID,
	})
}

// markupFor lays out view actions as an inline keyboard, wrapping rows at
// the view's column count.
func markupFor(view service.View) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}

	columns := view.Columns
	if columns < 1 {
		columns = 1
	}

	rows := []tele.Row{}
	row := tele.Row{}
	for _, action := range view.Actions {
		row = append(row, markup.Data(action.Label, action.Data))
		if len(row) == columns {
			rows = append(rows, row)
			row = tele.Row{}
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}

	markup.Inline(rows...)
	return markup
}

// amountKeyboard is the persistent reply keyboard of quick amount shortcuts.
func amountKeyboard() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{ResizeKeyboard: true}
	menu.Reply(
		menu.Row(
			menu.Text("+1"),
			menu.Text("+10"),
			menu.Text("+100"),
			menu.Text("+1000"),
			menu.Text("+1000000"),
		),
		menu.Row(
			menu.Text("×2"),
			menu.Text("/2"),
			menu.Text("Reset"),
		),
	)
	return menu
}
