package views

import "gitlab.com/tinyland/lab/orbit-reader/pkg/menu"

// text is the per-language string table of the content pages.
type text struct {
	// library
	LibraryTitle string
	BooksFmt     string // "%d books • %d in progress"

	// reader
	Chapter  string
	NoBook   string
	PageOf   string
	Continue string

	// search
	SearchPrompt string
	NoResults    string

	// settings
	SettingsTitle string
	Interface     string
	DockAnchor    string
	DockDesc      string
	DockDescOmni  string
	ActiveAll     string
	Behavior      string
	AutoHide      string
	AutoHideDesc  string
	OmniWake      string
	OmniWakeDesc  string
	Language      string
	Theme         string
	Top           string
	Bottom        string
	Left          string
	Right         string

	// profile
	ChangePass  string
	NewPass     string
	Save        string
	PassUpdated string
	Logout      string
	Avatar      string
	StatRead    string
	StatPub     string
	StatHours   string
	History     string
	Works       string
	Empty       string
	NoProfile   string

	// auth
	LoginTitle     string
	RegisterTitle  string
	Email          string
	Password       string
	Username       string
	LoginBtn       string
	RegisterBtn    string
	SwitchRegister string
	SwitchLogin    string
	ErrCredentials string
	ErrFields      string
	Close          string
}

var texts = map[menu.Language]text{
	menu.English: {
		LibraryTitle: "My Library",
		BooksFmt:     "%d Books • %d In Progress",

		Chapter:  "Chapter 1",
		NoBook:   "Pick a book from the library",
		PageOf:   "1 / 24",
		Continue: "Continue",

		SearchPrompt: "Search titles and authors",
		NoResults:    "Nothing matches.",

		SettingsTitle: "Settings",
		Interface:     "Interface",
		DockAnchor:    "Dock Anchor",
		DockDesc:      "Choose the primary anchor point.",
		DockDescOmni:  "Omni-Wake active: Dock is accessible from all sides.",
		ActiveAll:     "Active Everywhere",
		Behavior:      "Behavior",
		AutoHide:      "Auto-hide Dock",
		AutoHideDesc:  "Automatically hide the orb when not in use. Hover edge to reveal.",
		OmniWake:      "Omni-Directional Wake",
		OmniWakeDesc:  "Allow the dock to be summoned from any screen edge.",
		Language:      "Language",
		Theme:         "Theme",
		Top:           "Top",
		Bottom:        "Bottom",
		Left:          "Left",
		Right:         "Right",

		ChangePass:  "Change Password",
		NewPass:     "New Password",
		Save:        "Save",
		PassUpdated: "Password updated successfully!",
		Logout:      "Disconnect",
		Avatar:      "Avatar",
		StatRead:    "Books Read",
		StatPub:     "Published",
		StatHours:   "Hours Read",
		History:     "Reading History",
		Works:       "Published Works",
		Empty:       "Nothing here yet.",
		NoProfile:   "Sign in to see your profile",

		LoginTitle:     "Identity Verification",
		RegisterTitle:  "New Resident Registration",
		Email:          "Email Address",
		Password:       "Password",
		Username:       "Codename",
		LoginBtn:       "Access System",
		RegisterBtn:    "Initialize Identity",
		SwitchRegister: "No Identity? Request Access",
		SwitchLogin:    "Identity Exists? Verify",
		ErrCredentials: "Access Denied. Try: 1@gmail.com / 1",
		ErrFields:      "All parameters required for initialization.",
		Close:          "close",
	},
	menu.Chinese: {
		LibraryTitle: "我的书库",
		BooksFmt:     "%d 本书 • %d 本阅读中",

		Chapter:  "第一章",
		NoBook:   "请先从书库选择一本书",
		PageOf:   "1 / 24",
		Continue: "继续阅读",

		SearchPrompt: "搜索书名或作者",
		NoResults:    "没有匹配的结果。",

		SettingsTitle: "设置",
		Interface:     "界面布局",
		DockAnchor:    "导航停靠锚点",
		DockDesc:      "选择导航球的主要停靠位置。",
		DockDescOmni:  "全向灵动唤醒已激活：导航球可从屏幕任意边缘唤出。",
		ActiveAll:     "全局激活",
		Behavior:      "交互行为",
		AutoHide:      "自动隐藏导航球",
		AutoHideDesc:  "不使用时自动隐藏，鼠标靠近边缘时显示。",
		OmniWake:      "全向灵动唤醒",
		OmniWakeDesc:  "允许从屏幕的上下左右任意边缘呼出导航球。",
		Language:      "语言",
		Theme:         "主题",
		Top:           "顶部",
		Bottom:        "底部",
		Left:          "左侧",
		Right:         "右侧",

		ChangePass:  "修改密码",
		NewPass:     "输入新密码",
		Save:        "保存",
		PassUpdated: "密码已更新！",
		Logout:      "退出登录",
		Avatar:      "头像",
		StatRead:    "已读数量",
		StatPub:     "发布数量",
		StatHours:   "阅读时长",
		History:     "阅读足迹",
		Works:       "我的作品",
		Empty:       "暂无内容。",
		NoProfile:   "登录后查看个人中心",

		LoginTitle:     "身份验证",
		RegisterTitle:  "新用户注册",
		Email:          "电子邮箱",
		Password:       "访问密钥",
		Username:       "用户代号",
		LoginBtn:       "进入系统",
		RegisterBtn:    "建立档案",
		SwitchRegister: "没有账号？注册新身份",
		SwitchLogin:    "已有账号？立即登录",
		ErrCredentials: "验证失败。测试账号: 1@gmail.com / 1",
		ErrFields:      "请补全所有必填信息。",
		Close:          "关闭",
	},
}

func tr(lang menu.Language) text {
	if s, ok := texts[lang]; ok {
		return s
	}
	return texts[menu.English]
}
