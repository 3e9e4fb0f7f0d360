package models

// Категории патентов
const (
	PatentCategoryInvention = "invention"
	PatentCategoryUtility   = "utility"
	PatentCategoryDesign    = "design"
)

// Статусы патентов
const (
	PatentStatusPending   = "pending"
	PatentStatusGranted   = "granted"
	PatentStatusPublished = "published"
	PatentStatusRejected  = "rejected"
)

// Значения по умолчанию для конкурсов
const (
	CompetitionDefaultResult   = "participant"
	CompetitionDefaultCategory = "technology"
	CompetitionDefaultTeamSize = 1
)

// Статусы публикаций в СМИ
const (
	ArticleStatusDraft     = "draft"
	ArticleStatusPublished = "published"
)

// Навыки
const (
	SkillDefaultLevel    = 50
	SkillDefaultCategory = "other"
	SkillMinLevel        = 0
	SkillMaxLevel        = 100
)

// Классы устройств в аналитике
const (
	DeviceDesktop = "Desktop"
	DeviceMobile  = "Mobile"
	DeviceTablet  = "Tablet"
)

// Unknown значение для нераспознанного браузера или ОС.
const Unknown = "Unknown"

// KnownPatentCategories известные категории патентов. Другие значения тоже принимаются.
var KnownPatentCategories = map[string]struct{}{
	PatentCategoryInvention: {},
	PatentCategoryUtility:   {},
	PatentCategoryDesign:    {},
}

// KnownPatentStatuses известные статусы патентов.
var KnownPatentStatuses = map[string]struct{}{
	PatentStatusPending:   {},
	PatentStatusGranted:   {},
	PatentStatusPublished: {},
	PatentStatusRejected:  {},
}
