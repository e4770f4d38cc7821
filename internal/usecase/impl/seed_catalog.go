package impl

import (
	"time"

	"clawdeck/internal/domain/entity"
)

// seedMarketSkills returns the marketplace catalog. The catalog is shared
// across users and upserted by ID, so seeding it repeatedly is harmless.
func seedMarketSkills() []*entity.MarketSkill {
	published := func(value string) time.Time {
		t, _ := time.Parse("2006-01-02", value)
		return t
	}

	return []*entity.MarketSkill{
		{
			ID: "s1", Name: "天氣查詢", Icon: "CloudSun", Category: "數據處理",
			Description:     "即時天氣查詢與天氣預報播報",
			LongDescription: "支援全球主要城市的即時天氣查詢，包括溫度、濕度、風速、空氣品質等數據。可設定定時播報，支援自然語言查詢。",
			Version:         "v1.3", Developer: "OpenCLAW 官方", PublishedAt: published("2025-10-15"),
			Rating: 4.7, RatingCount: 328, Installs: 12580, Requirements: "韌體 >= 2.0",
			Features: []string{"即時天氣數據", "7 天天氣預報", "空氣品質指數", "定時播報", "自然語言查詢"},
			Reviews: []entity.SkillReview{
				{User: "小明", Rating: 5, Comment: "非常好用，每天早上定時播報天氣", Date: published("2026-02-01")},
				{User: "張三", Rating: 4, Comment: "功能齊全，偶爾有延遲", Date: published("2026-01-20")},
			},
			ConfigSchema: []entity.ConfigField{
				{Key: "city", Label: "預設城市", Type: entity.ConfigFieldText, DefaultValue: "台北"},
				{Key: "interval", Label: "更新間隔（分鐘）", Type: entity.ConfigFieldNumber, DefaultValue: 60},
			},
		},
		{
			ID: "s2", Name: "音樂播放", Icon: "Music", Category: "娛樂",
			Description:     "線上音樂播放與智慧推薦",
			LongDescription: "整合多個音樂平台的線上播放技能，支援語音點歌、歌單管理、個人化推薦。高品質音訊輸出，支援藍牙連線。",
			Version:         "v2.0", Developer: "OpenCLAW 官方", PublishedAt: published("2025-11-20"),
			Rating: 4.5, RatingCount: 562, Installs: 23400, Requirements: "韌體 >= 2.0，需要音訊輸出",
			Features: []string{"語音點歌", "歌單管理", "個人化推薦", "高品質音訊", "藍牙輸出"},
			Reviews: []entity.SkillReview{
				{User: "李華", Rating: 5, Comment: "音質不錯，推薦很準", Date: published("2026-02-05")},
			},
			ConfigSchema: []entity.ConfigField{
				{Key: "volume", Label: "預設音量", Type: entity.ConfigFieldNumber, DefaultValue: 50},
				{Key: "quality", Label: "音質", Type: entity.ConfigFieldSelect, Options: []string{"標準", "高", "無損"}, DefaultValue: "高"},
			},
		},
		{
			ID: "s3", Name: "日程管理", Icon: "CalendarDays", Category: "自動化",
			Description:     "智慧日程提醒與任務管理",
			LongDescription: "協助管理日常日程和待辦事項。支援自然語言新增日程，智慧提醒，與行事曆同步，支援重複事件設定。",
			Version:         "v2.1", Developer: "OpenCLAW 官方", PublishedAt: published("2025-12-10"),
			Rating: 4.8, RatingCount: 215, Installs: 8930, Requirements: "韌體 >= 2.0",
			Features: []string{"自然語言輸入", "智慧提醒", "行事曆同步", "重複事件", "優先級管理"},
			ConfigSchema: []entity.ConfigField{
				{Key: "reminderAhead", Label: "提前提醒（分鐘）", Type: entity.ConfigFieldNumber, DefaultValue: 15},
			},
		},
		{
			ID: "s4", Name: "會議記錄", Icon: "FileText", Category: "自動化",
			Description:     "自動會議語音轉文字與摘要",
			LongDescription: "會議全程錄音並即時轉寫為文字，會後自動產生重點摘要與待辦清單，支援多語者辨識。",
			Version:         "v1.0", Developer: "OpenCLAW 官方", PublishedAt: published("2026-01-05"),
			Rating: 4.3, RatingCount: 87, Installs: 3200, Requirements: "韌體 >= 2.5，企業方案",
			Features: []string{"即時轉寫", "重點摘要", "多語者辨識", "待辦擷取"},
			ConfigSchema: []entity.ConfigField{
				{Key: "autoSummary", Label: "自動產生摘要", Type: entity.ConfigFieldBoolean, DefaultValue: true},
			},
		},
		{
			ID: "s5", Name: "翻譯助手", Icon: "Languages", Category: "通訊",
			Description:     "即時語音翻譯",
			LongDescription: "支援 40 種語言的即時雙向語音翻譯，適合跨國會議與旅遊情境。",
			Version:         "v3.2", Developer: "OpenCLAW 官方", PublishedAt: published("2025-09-01"),
			Rating: 4.6, RatingCount: 431, Installs: 15800, Requirements: "韌體 >= 2.0",
			Features: []string{"40 種語言", "雙向翻譯", "離線模式"},
			ConfigSchema: []entity.ConfigField{
				{Key: "targetLang", Label: "目標語言", Type: entity.ConfigFieldSelect, Options: []string{"英文", "日文", "韓文"}, DefaultValue: "英文"},
			},
		},
		{
			ID: "s6", Name: "智慧家居", Icon: "Home", Category: "自動化",
			Description:     "家電與感測器的語音控制中樞",
			LongDescription: "連接主流智慧家居裝置，以語音或排程控制燈光、空調、窗簾與感測器。",
			Version:         "v2.0", Developer: "OpenCLAW 官方", PublishedAt: published("2025-10-01"),
			Rating: 4.4, RatingCount: 298, Installs: 11200, Requirements: "韌體 >= 2.0，需要區域網路",
			Features: []string{"語音控制", "排程自動化", "場景模式"},
			ConfigSchema: []entity.ConfigField{
				{Key: "autoDiscover", Label: "自動搜尋裝置", Type: entity.ConfigFieldBoolean, DefaultValue: true},
			},
		},
		{
			ID: "s7", Name: "語音辨識", Icon: "Mic", Category: "開發工具",
			Description:     "開發者語音辨識測試套件",
			LongDescription: "提供喚醒詞與語音指令的辨識測試能力，輸出信心分數與延遲統計，供技能開發者除錯。",
			Version:         "v0.9-beta", Developer: "OpenCLAW Labs", PublishedAt: published("2026-01-20"),
			Rating: 3.9, RatingCount: 23, Installs: 540, Requirements: "韌體 >= 3.0-beta",
			Features: []string{"喚醒詞測試", "信心分數", "延遲統計"},
		},
		{
			ID: "s8", Name: "新聞播報", Icon: "Newspaper", Category: "數據處理",
			Description:     "每日新聞摘要播報",
			LongDescription: "聚合多家媒體的頭條新聞，依興趣分類產生語音摘要，可設定播報時段。",
			Version:         "v1.5", Developer: "OpenCLAW 官方", PublishedAt: published("2025-11-01"),
			Rating: 4.2, RatingCount: 176, Installs: 7600, Requirements: "韌體 >= 2.0",
			Features: []string{"頭條聚合", "興趣分類", "定時播報"},
			ConfigSchema: []entity.ConfigField{
				{Key: "categories", Label: "關注分類", Type: entity.ConfigFieldText, DefaultValue: "科技,財經"},
			},
		},
		{
			ID: "s9", Name: "鬧鐘", Icon: "AlarmClock", Category: "自動化",
			Description:     "語音鬧鐘與起床流程",
			LongDescription: "以語音設定鬧鐘與小睡，起床時可串連天氣播報與新聞摘要。",
			Version:         "v1.1", Developer: "OpenCLAW 官方", PublishedAt: published("2025-08-15"),
			Rating: 4.5, RatingCount: 389, Installs: 18900, Requirements: "韌體 >= 1.5",
			Features: []string{"語音設定", "小睡模式", "起床流程"},
			ConfigSchema: []entity.ConfigField{
				{Key: "snoozeMinutes", Label: "小睡時長（分鐘）", Type: entity.ConfigFieldNumber, DefaultValue: 10},
			},
		},
		{
			ID: "s10", Name: "白噪音", Icon: "Waves", Category: "娛樂",
			Description:     "助眠白噪音與自然音效",
			LongDescription: "內建雨聲、海浪、森林等自然音效，支援定時關閉與漸弱音量。",
			Version:         "v1.0", Developer: "OpenCLAW 官方", PublishedAt: published("2025-12-01"),
			Rating: 4.6, RatingCount: 244, Installs: 9800, Requirements: "韌體 >= 1.5，需要音訊輸出",
			Features: []string{"自然音效", "定時關閉", "漸弱音量"},
			ConfigSchema: []entity.ConfigField{
				{Key: "timer", Label: "定時關閉（分鐘）", Type: entity.ConfigFieldNumber, DefaultValue: 30},
			},
		},
		{
			ID: "s11", Name: "程式助手", Icon: "Code", Category: "開發工具",
			Description:     "語音查詢文件與程式片段",
			LongDescription: "以語音查詢 API 文件與常用程式片段，並推送到綁定的編輯器。",
			Version:         "v0.5-alpha", Developer: "OpenCLAW Labs", PublishedAt: published("2026-02-01"),
			Rating: 4.0, RatingCount: 12, Installs: 310, Requirements: "韌體 >= 3.0-beta",
			Features: []string{"文件查詢", "程式片段", "編輯器整合"},
		},
		{
			ID: "s12", Name: "郵件管理", Icon: "Mail", Category: "通訊",
			Description:     "語音收發與摘要郵件",
			LongDescription: "朗讀重要郵件、語音回覆，並在每日指定時間播報收件匣摘要。",
			Version:         "v1.2", Developer: "OpenCLAW 官方", PublishedAt: published("2025-10-20"),
			Rating: 4.1, RatingCount: 98, Installs: 4200, Requirements: "韌體 >= 2.0",
			Features: []string{"郵件朗讀", "語音回覆", "收件匣摘要"},
			ConfigSchema: []entity.ConfigField{
				{Key: "digestHour", Label: "摘要播報時間", Type: entity.ConfigFieldNumber, DefaultValue: 9},
			},
		},
	}
}
