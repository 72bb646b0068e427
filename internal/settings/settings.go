package settings

import (
	"errors"
	"strconv"
)

var ErrUnknownKey = errors.New("unknown settings key")

// Key is a known guild setting.
type Key string

const (
	Prefix         Key = "prefix"
	ModLogChannel  Key = "modLogChannel"
	ModRoleName    Key = "modRoleName"
	AdminRoleName  Key = "adminRoleName"
	SystemNotice   Key = "systemNotice"
	WelcomeEnabled Key = "welcomeEnabled"
	WelcomeChannel Key = "welcomeChannel"
	WelcomeMessage Key = "welcomeMessage"
	ByeEnabled     Key = "byeEnabled"
	ByeChannel     Key = "byeChannel"
	ByeMessage     Key = "byeMessage"
)

// keys holds every known key in display order.
var keys = []Key{
	Prefix,
	ModLogChannel,
	ModRoleName,
	AdminRoleName,
	SystemNotice,
	WelcomeEnabled,
	WelcomeChannel,
	WelcomeMessage,
	ByeEnabled,
	ByeChannel,
	ByeMessage,
}

var defaults = map[Key]string{
	Prefix:         "!",
	ModLogChannel:  "mod-log",
	ModRoleName:    "Moderator",
	AdminRoleName:  "Administrator",
	SystemNotice:   "true",
	WelcomeEnabled: "false",
	WelcomeChannel: "general",
	WelcomeMessage: "Welcome {{user}}!",
	ByeEnabled:     "false",
	ByeChannel:     "general",
	ByeMessage:     "Bye {{user}}",
}

// Keys returns every known key in display order.
func Keys() []Key {
	out := make([]Key, len(keys))
	copy(out, keys)
	return out
}

// Default returns the default value of key.
func Default(key Key) (string, bool) {
	v, ok := defaults[key]
	return v, ok
}

// Defaults returns a fresh copy of the default settings.
func Defaults() Settings {
	s := make(Settings, len(defaults))
	for k, v := range defaults {
		s[k] = v
	}
	return s
}

// ParseKey returns the Key named s, or ErrUnknownKey.
func ParseKey(s string) (Key, error) {
	key := Key(s)
	if _, ok := defaults[key]; !ok {
		return "", ErrUnknownKey
	}
	return key, nil
}

// Settings is the effective settings of a guild. It always holds every known key.
type Settings map[Key]string

func (s Settings) Get(key Key) string {
	return s[key]
}

// Bool reports whether the value of key parses as true.
func (s Settings) Bool(key Key) bool {
	b, err := strconv.ParseBool(s[key])
	return err == nil && b
}
