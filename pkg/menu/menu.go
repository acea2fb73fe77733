// Package menu provides the orbit menu configuration: the ordered item list
// and the two-locale string table it is labeled from.
package menu

import (
	"fmt"

	"gitlab.com/tinyland/lab/orbit-reader/pkg/anchor"
)

// Item IDs. Auth is not a menu item; it names the authentication overlay
// that the auth gate activates in place of a navigation target.
const (
	Library  = "library"
	Reader   = "reader"
	Search   = "search"
	Profile  = "profile"
	Settings = "settings"
	Offline  = "offline"
	Auth     = "auth"
)

// Language selects a column of the string table.
type Language string

// Supported languages.
const (
	English Language = "en"
	Chinese Language = "zh"
)

// ParseLanguage validates a language code.
func ParseLanguage(s string) (Language, error) {
	switch Language(s) {
	case English, Chinese:
		return Language(s), nil
	}
	return "", fmt.Errorf("menu: unsupported language %q (want en or zh)", s)
}

// Next cycles to the other language.
func (l Language) Next() Language {
	if l == Chinese {
		return English
	}
	return Chinese
}

// Strings holds every label the shell chrome needs in one language.
type Strings struct {
	Library  string
	Reader   string
	Search   string
	Profile  string
	Settings string
	Offline  string
	Login    string

	StatusOnline  string
	StatusOffline string
	StatusGuest   string
}

var table = map[Language]Strings{
	English: {
		Library: "Library", Reader: "Continue", Search: "Explore",
		Profile: "Profile", Settings: "Settings", Offline: "Offline Mode", Login: "Login",
		StatusOnline: "System Online", StatusOffline: "Offline Mode", StatusGuest: "Guest Access",
	},
	Chinese: {
		Library: "书库", Reader: "继续阅读", Search: "探索",
		Profile: "个人中心", Settings: "设置", Offline: "离线模式", Login: "登录",
		StatusOnline: "系统在线", StatusOffline: "离线模式", StatusGuest: "游客访问",
	},
}

// T returns the string table for lang, falling back to English.
func T(lang Language) Strings {
	if s, ok := table[lang]; ok {
		return s
	}
	return table[English]
}

// Item is one button of the orbit ring. Items are values and never mutated;
// Items rebuilds the list whenever the language changes.
type Item struct {
	ID         string
	Label      string
	Icon       rune
	TargetDock anchor.Position // informational only
	Color      string
	Special    bool // distinct non-navigational item (offline toggle)
}

// Items returns the ring in display order. Order and count are fixed; only
// labels depend on lang.
func Items(lang Language) []Item {
	t := T(lang)
	return []Item{
		{ID: Library, Label: t.Library, Icon: '▤', TargetDock: anchor.Left, Color: "#3b82f6"},
		{ID: Reader, Label: t.Reader, Icon: '❡', TargetDock: anchor.Top, Color: "#10b981"},
		{ID: Search, Label: t.Search, Icon: '⌕', TargetDock: anchor.Left, Color: "#f59e0b"},
		{ID: Profile, Label: t.Profile, Icon: '☺', TargetDock: anchor.Top, Color: "#8b5cf6"},
		{ID: Settings, Label: t.Settings, Icon: '✲', TargetDock: anchor.Left, Color: "#64748b"},
		{ID: Offline, Label: t.Offline, Icon: '⊘', TargetDock: anchor.Center, Color: "#94a3b8", Special: true},
	}
}

// Find returns the item with id from items.
func Find(items []Item, id string) (Item, bool) {
	for _, it := range items {
		if it.ID == id {
			return it, true
		}
	}
	return Item{}, false
}
