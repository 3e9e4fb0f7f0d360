// Package useragent грубо классифицирует строку User-Agent по подстрокам.
package useragent

import (
	"strings"

	"github.com/ignatzorin/portfolio-backend/internal/models"
)

// Info результат классификации.
type Info struct {
	Browser string
	OS      string
	Device  string
}

type rule struct {
	needles []string
	// unless исключает совпадение, если в строке есть любая из подстрок.
	unless []string
	value  string
}

// Порядок важен: Chrome проверяется раньше Safari, потому что строка Chrome содержит «Safari».
var browserRules = []rule{
	{needles: []string{"Chrome"}, value: "Chrome"},
	{needles: []string{"Firefox"}, value: "Firefox"},
	{needles: []string{"Safari"}, unless: []string{"Chrome"}, value: "Safari"},
	{needles: []string{"Edge"}, value: "Edge"},
	{needles: []string{"Opera"}, value: "Opera"},
}

// Android раньше Linux, iOS раньше macOS: их строки содержат «Linux» и «like Mac OS X».
var osRules = []rule{
	{needles: []string{"Windows"}, value: "Windows"},
	{needles: []string{"Android"}, value: "Android"},
	{needles: []string{"iPhone", "iPad"}, value: "iOS"},
	{needles: []string{"Mac OS X"}, value: "macOS"},
	{needles: []string{"Linux"}, value: "Linux"},
}

var (
	mobileMarkers = []string{"Mobile", "Android", "iPhone"}
	tabletMarkers = []string{"Tablet", "iPad"}
)

// Parse определяет браузер, ОС и класс устройства. Пустая строка даёт Unknown/Unknown/Desktop.
func Parse(ua string) Info {
	info := Info{
		Browser: match(ua, browserRules),
		OS:      match(ua, osRules),
		Device:  models.DeviceDesktop,
	}

	switch {
	case containsAny(ua, mobileMarkers):
		info.Device = models.DeviceMobile
	case containsAny(ua, tabletMarkers):
		info.Device = models.DeviceTablet
	}

	return info
}

func match(ua string, rules []rule) string {
	for _, r := range rules {
		if containsAny(ua, r.needles) && !containsAny(ua, r.unless) {
			return r.value
		}
	}
	return models.Unknown
}

func containsAny(s string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(s, n) {
			return true
		}
	}
	return false
}
