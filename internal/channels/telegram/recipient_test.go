package telegram

import (
	"testing"

	"github.com/mymmrac/telego"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRecipient(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    telego.ChatID
		wantErr bool
	}{
		{name: "user id", input: "123456789", want: telego.ChatID{ID: 123456789}},
		{name: "group id", input: "-1001234567890", want: telego.ChatID{ID: -1001234567890}},
		{name: "trimmed", input: " 42 ", want: telego.ChatID{ID: 42}},
		{name: "username", input: "@openclaw_owner", want: telego.ChatID{Username: "@openclaw_owner"}},
		{name: "empty", input: "", wantErr: true},
		{name: "zero", input: "0", wantErr: true},
		{name: "placeholder", input: "YOUR_TELEGRAM_ID", wantErr: true},
		{name: "short username", input: "@abc", wantErr: true},
		{name: "username with dash", input: "@bad-name", wantErr: true},
		{name: "bare at", input: "@", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRecipient(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseRecipient_Empty(t *testing.T) {
	_, err := ParseRecipient("  ")
	assert.ErrorIs(t, err, ErrEmptyRecipient)
}

func TestFormatRecipient(t *testing.T) {
	for _, s := range []string{"123456789", "-1001234567890", "@openclaw_owner"} {
		id, err := ParseRecipient(s)
		require.NoError(t, err)
		assert.Equal(t, s, FormatRecipient(id))
	}
}
