// Package telegram knows how a Telegram delivery target is written in the jobs file.
package telegram

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/mymmrac/telego"
	tu "github.com/mymmrac/telego/telegoutil"
	"github.com/wasilibs/go-re2"
)

// Channel is the delivery channel identifier used for Telegram jobs.
const Channel = "telegram"

// ErrEmptyRecipient is returned for an empty recipient string.
var ErrEmptyRecipient = errors.New("telegram recipient is empty")

// Public usernames are 5-32 characters: letters, digits and underscores, starting with a letter.
var usernamePattern = re2.MustCompile(`^@[A-Za-z][A-Za-z0-9_]{4,31}$`)

// ParseRecipient converts a delivery "to" value into a chat id.
// Numeric values are user, group or channel ids; values starting with @ are public usernames.
func ParseRecipient(s string) (telego.ChatID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return telego.ChatID{}, ErrEmptyRecipient
	}

	if strings.HasPrefix(s, "@") {
		if !usernamePattern.MatchString(s) {
			return telego.ChatID{}, fmt.Errorf("invalid telegram username %q", s)
		}
		return tu.Username(s), nil
	}

	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id == 0 {
		return telego.ChatID{}, fmt.Errorf("invalid telegram chat id %q (expected a number or @username)", s)
	}
	return tu.ID(id), nil
}

// FormatRecipient renders a chat id the way it is stored in the jobs file.
func FormatRecipient(id telego.ChatID) string {
	if id.Username != "" {
		return id.Username
	}
	return strconv.FormatInt(id.ID, 10)
}
