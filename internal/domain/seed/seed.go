// Package seed contiene el dataset fijo inicial del dashboard: se usa para
// sembrar el store en el primer arranque y para auto-repararlo cuando el
// archivo persistido resulta ilegible.
package seed

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/dashboard-api/internal/domain/entity"
	"github.com/jhoicas/dashboard-api/internal/domain/settings"
)

// Users devuelve los usuarios semilla (orden: más reciente primero).
func Users() []entity.User {
	return []entity.User{
		{ID: 5, Avatar: "https://i.pravatar.cc/150?u=aliya.nur%40example.com", Name: "Aliya Nurlanova", Email: "aliya.nur@example.com", Plan: entity.PlanPro, DateCreated: "2024-01-18"},
		{ID: 4, Avatar: "https://i.pravatar.cc/150?u=d.petrov%40example.com", Name: "Dmitry Petrov", Email: "d.petrov@example.com", Plan: entity.PlanFree, DateCreated: "2024-01-12"},
		{ID: 3, Avatar: "https://i.pravatar.cc/150?u=b.asanov%40example.com", Name: "Bakyt Asanov", Email: "b.asanov@example.com", Plan: entity.PlanPro, DateCreated: "2023-12-30"},
		{ID: 2, Avatar: "https://i.pravatar.cc/150?u=m.ivanova%40example.com", Name: "Maria Ivanova", Email: "m.ivanova@example.com", Plan: entity.PlanFree, DateCreated: "2023-12-21"},
		{ID: 1, Avatar: "https://i.pravatar.cc/150?u=j.smith%40example.com", Name: "James Smith", Email: "j.smith@example.com", Plan: entity.PlanPro, DateCreated: "2023-11-02"},
	}
}

// Products devuelve los productos semilla (orden: más reciente primero).
func Products() []entity.Product {
	return []entity.Product{
		{ID: 6, Image: "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?w=200&h=200&fit=crop", Name: "Wireless Headphones Pro", Category: "Electronics", Price: decimal.NewFromFloat(129.99), Stock: 48, Status: entity.StatusInStock, SKU: "ELC-1006"},
		{ID: 5, Image: "https://images.unsplash.com/photo-1542291026-7eec264c27ff?w=200&h=200&fit=crop", Name: "Runner Flex Sneakers", Category: "Footwear", Price: decimal.NewFromFloat(89.5), Stock: 7, Status: entity.StatusLowStock, SKU: "FTW-1005"},
		{ID: 4, Image: "https://images.unsplash.com/photo-1523275335684-37898b6baf30?w=200&h=200&fit=crop", Name: "Classic Silver Watch", Category: "Accessories", Price: decimal.NewFromFloat(199), Stock: 0, Status: entity.StatusOutOfStock, SKU: "ACC-1004"},
		{ID: 3, Image: "https://images.unsplash.com/photo-1553062407-98eeb64c6a62?w=200&h=200&fit=crop", Name: "Urban Commuter Backpack", Category: "Bags", Price: decimal.NewFromFloat(64.9), Stock: 23, Status: entity.StatusInStock, SKU: "BAG-1003"},
		{ID: 2, Image: "https://images.unsplash.com/photo-1521572163474-6864f9cf17ab?w=200&h=200&fit=crop", Name: "Organic Cotton T-Shirt", Category: "Clothing", Price: decimal.NewFromFloat(24.99), Stock: 150, Status: entity.StatusInStock, SKU: "CLT-1002"},
		{ID: 1, Image: "https://images.unsplash.com/photo-1472851294608-062f824d29cc?w=200&h=200&fit=crop", Name: "Ceramic Table Lamp", Category: "Home & Living", Price: decimal.NewFromFloat(45), Stock: 4, Status: entity.StatusLowStock, SKU: "HML-1001"},
	}
}

// Campaigns devuelve el catálogo estático de campañas de marketing.
// Solo lectura: la API no crea ni modifica campañas.
func Campaigns() []entity.Campaign {
	return []entity.Campaign{
		{ID: 1, Name: "Daily App Engagement Boost", Type: entity.CampaignPush, Frequency: entity.FrequencyDaily, Status: entity.CampaignActive, TargetUsers: 450000, LastSent: "2024-01-22", NextSend: "2024-01-23", ConversionRate: 12.5, EngagementRate: 28.3},
		{ID: 2, Name: "New Feature Spotlight - AI Assistant", Type: entity.CampaignInApp, Frequency: entity.FrequencyWeekly, Status: entity.CampaignActive, TargetUsers: 320000, LastSent: "2024-01-20", NextSend: "2024-01-27", ConversionRate: 18.7, EngagementRate: 42.1},
		{ID: 3, Name: "Q1 User Acquisition - iOS", Type: entity.CampaignAcquisition, Status: entity.CampaignActive, TargetUsers: 1200000, LastSent: "2024-01-15", ConversionRate: 5.2, EngagementRate: 15.8},
		{ID: 4, Name: "Abandoned Cart Recovery", Type: entity.CampaignPush, Frequency: entity.FrequencyDaily, Status: entity.CampaignActive, TargetUsers: 85000, LastSent: "2024-01-22", NextSend: "2024-01-23", ConversionRate: 24.3, EngagementRate: 38.7},
		{ID: 5, Name: "Premium Upgrade Promotion", Type: entity.CampaignInApp, Status: entity.CampaignDraft},
		{ID: 6, Name: "Inactive User Re-engagement", Type: entity.CampaignRetargeting, Frequency: entity.FrequencyWeekly, Status: entity.CampaignPaused, TargetUsers: 250000, LastSent: "2024-01-08", NextSend: "2024-01-29", ConversionRate: 8.9, EngagementRate: 22.4},
		{ID: 7, Name: "Weekly Tips & Tricks", Type: entity.CampaignPush, Frequency: entity.FrequencyWeekly, Status: entity.CampaignActive, TargetUsers: 580000, LastSent: "2024-01-21", NextSend: "2024-01-28", ConversionRate: 15.2, EngagementRate: 35.6},
		{ID: 8, Name: "Summer Sale Campaign 2024", Type: entity.CampaignAcquisition, Status: entity.CampaignDraft},
	}
}

// Settings devuelve el registro semilla de configuración.
func Settings() entity.Settings {
	return settings.Default()
}
