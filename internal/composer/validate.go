package composer

import (
	"strings"

	"listora_admin/internal/catalog"
)

// Adım yüklemleri taslağın saf fonksiyonlarıdır; yan etkileri yoktur ve
// her alan değişiminde yeniden değerlendirilirler.

// TypeNeedComplete 1. adımı kontrol eder: kategori ve need seçili olmalı,
// kategori gerektiriyorsa alt tip de seçili olmalı.
func TypeNeedComplete(d *ListingDraft) bool {
	if !catalog.ValidCategory(d.Category) {
		return false
	}
	if !catalog.ValidNeed(d.Category, d.Need) {
		return false
	}
	if catalog.RequiresSubType(d.Category) && blank(d.SubType) {
		return false
	}
	return true
}

// OverviewComplete 2. adımı kontrol eder. Fiyat ve alan için kesin > 0
// aranır, sıfır "henüz girilmedi" sayılır.
func OverviewComplete(d *ListingDraft) bool {
	if blank(d.Title) {
		return false
	}
	if d.Price <= 0 {
		return false
	}
	if d.Size <= 0 {
		return false
	}
	if blank(d.Location.Country) || blank(d.Location.City) {
		return false
	}
	return true
}

// ServiceOverviewComplete servis sihirbazının 2. adımını kontrol eder.
// Servis ilanlarında alan bilgisi aranmaz.
func ServiceOverviewComplete(d *ListingDraft) bool {
	if blank(d.Title) {
		return false
	}
	if d.Price <= 0 {
		return false
	}
	if blank(d.Location.Country) || blank(d.Location.City) {
		return false
	}
	return true
}

func alwaysComplete(_ *ListingDraft) bool {
	return true
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
