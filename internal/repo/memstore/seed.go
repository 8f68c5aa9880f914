package memstore

import (
	"time"

	"github.com/atompoint/storefront/internal/domain"
)

// Seed dataset served when the database is unreachable. Mirrors the shapes
// the persistent backend produces: one admin, one regular user, the curated
// catalog, no orders and the default payment/settings entries.
func seedUsers(now time.Time) []*domain.User {
	return []*domain.User{
		{
			ID:            123456,
			Username:      "tw",
			PasswordHash:  "$2b$12$oWve31DF4cGCa5eJw.9SrOYFrSWkmeun9b2/2wIyepruDoyRJjYXe",
			IsAdmin:       true,
			Credits:       1000000,
			Banned:        false,
			Notifications: []string{"Welcome to Atom Point Web! (Admin Account)"},
			CreatedAt:     now,
		},
		{
			ID:            789012,
			Username:      "testuser",
			PasswordHash:  "$2b$12$rQd5sh6szYGLGDVeFBnI8.2HJT8R8Ue8yF4AkBs.3Rvx5hF5vJ8SZW",
			IsAdmin:       false,
			Credits:       500,
			Banned:        false,
			Notifications: []string{"Welcome to Atom Point Web!"},
			CreatedAt:     now,
		},
	}
}

func seedProducts() []*domain.Product {
	return []*domain.Product{
		{ID: "atom_pts_500", Operator: "ATOM", Category: "Points", Name: "500 Points", PriceMMK: 1500, PriceCr: 15, Available: true},
		{ID: "atom_pts_1000", Operator: "ATOM", Category: "Points", Name: "1000 Points", PriceMMK: 3000, PriceCr: 30, Available: true},
		{ID: "atom_pts_2000", Operator: "ATOM", Category: "Points", Name: "2000 Points", PriceMMK: 5500, PriceCr: 55, Available: true},
		{ID: "atom_min_50", Operator: "ATOM", Category: "Mins", Name: "Any-net 50 Mins", PriceMMK: 800, PriceCr: 8, Available: true},
		{ID: "atom_min_100", Operator: "ATOM", Category: "Mins", Name: "Any-net 100 Mins", PriceMMK: 1550, PriceCr: 16, Available: true},
		{ID: "atom_min_150", Operator: "ATOM", Category: "Mins", Name: "Any-net 150 Mins", PriceMMK: 2300, PriceCr: 23, Available: true},
		{ID: "atom_pkg_15k", Operator: "ATOM", Category: "Internet Packages", Name: "15k Plan", PriceMMK: 10900, PriceCr: 109, Available: true},
		{ID: "atom_pkg_25k", Operator: "ATOM", Category: "Internet Packages", Name: "25k Plan", PriceMMK: 19200, PriceCr: 192, Available: true},
		{ID: "atom_data_1gb", Operator: "ATOM", Category: "Data", Name: "1GB Data", PriceMMK: 1000, PriceCr: 10, Available: true},
		{ID: "mytel_data_1k", Operator: "MYTEL", Category: "Data", Name: "1000MB", PriceMMK: 950, PriceCr: 10, Available: true},
		{ID: "mytel_data_3333", Operator: "MYTEL", Category: "Data", Name: "3333MB", PriceMMK: 3200, PriceCr: 32, Available: true},
		{ID: "mytel_data_5k", Operator: "MYTEL", Category: "Data", Name: "5000MB", PriceMMK: 4500, PriceCr: 45, Available: true},
		{ID: "mytel_min_90", Operator: "MYTEL", Category: "Mins", Name: "90 Mins", PriceMMK: 970, PriceCr: 10, Available: true},
		{ID: "mytel_min_180", Operator: "MYTEL", Category: "Mins", Name: "180 Mins", PriceMMK: 1700, PriceCr: 17, Available: true},
		{ID: "mytel_min_any58", Operator: "MYTEL", Category: "Mins", Name: "Any-net 58", PriceMMK: 1000, PriceCr: 10, Available: true},
		{ID: "mytel_plan_10k", Operator: "MYTEL", Category: "Plan Packages", Name: "10000MB Plan", PriceMMK: 9000, PriceCr: 90, Available: true},
		{ID: "mytel_plan_15k", Operator: "MYTEL", Category: "Plan Packages", Name: "12GB + 1050min", PriceMMK: 13500, PriceCr: 135, Available: true},
		{ID: "mytel_plan_20k", Operator: "MYTEL", Category: "Plan Packages", Name: "20000MB Plan", PriceMMK: 17800, PriceCr: 178, Available: true},
		{ID: "ooredoo_data_1g", Operator: "OOREDOO", Category: "Data", Name: "1GB", PriceMMK: 950, PriceCr: 10, Available: true},
		{ID: "ooredoo_data_2.9g", Operator: "OOREDOO", Category: "Data", Name: "2.9GB", PriceMMK: 2700, PriceCr: 27, Available: true},
		{ID: "ooredoo_data_5.8g", Operator: "OOREDOO", Category: "Data", Name: "5.8GB", PriceMMK: 5400, PriceCr: 54, Available: true},
		{ID: "ooredoo_data_8.7g", Operator: "OOREDOO", Category: "Data", Name: "8.7GB", PriceMMK: 8100, PriceCr: 81, Available: true},
		{ID: "ooredoo_plan_11.6g", Operator: "OOREDOO", Category: "Plan Packages", Name: "11.6GB Plan", PriceMMK: 10000, PriceCr: 100, Available: true},
		{ID: "ooredoo_plan_4.9g", Operator: "OOREDOO", Category: "Plan Packages", Name: "4.9GB + ONNET300", PriceMMK: 5150, PriceCr: 52, Available: true},
		{ID: "ooredoo_plan_9.8g", Operator: "OOREDOO", Category: "Plan Packages", Name: "9.8GB + ONNET300", PriceMMK: 10200, PriceCr: 102, Available: true},
		{ID: "mpt_data_1.1g", Operator: "MPT", Category: "Data", Name: "1.1GB", PriceMMK: 950, PriceCr: 10, Available: true},
		{ID: "mpt_data_2.2g", Operator: "MPT", Category: "Data", Name: "2.2GB", PriceMMK: 1950, PriceCr: 20, Available: true},
		{ID: "mpt_min_any55", Operator: "MPT", Category: "Minutes", Name: "Any-net 55 MIN", PriceMMK: 950, PriceCr: 10, Available: true},
		{ID: "mpt_min_any115", Operator: "MPT", Category: "Minutes", Name: "Any-net 115 MIN", PriceMMK: 1850, PriceCr: 19, Available: true},
		{ID: "mpt_min_on170", Operator: "MPT", Category: "Minutes", Name: "On-net 170 MIN", PriceMMK: 1800, PriceCr: 18, Available: true},
		{ID: "mpt_plan_15k", Operator: "MPT", Category: "Plan Packages", Name: "15K Plan", PriceMMK: 14400, PriceCr: 144, Available: true},
		{ID: "mpt_plan_25k", Operator: "MPT", Category: "Plan Packages", Name: "25K Plan", PriceMMK: 24400, PriceCr: 244, Available: true},
	}
}

func seedPaymentAccounts() map[string]*domain.PaymentAccount {
	return map[string]*domain.PaymentAccount{
		"KPay":     {Provider: "KPay", Name: "ATOM Point Admin", Number: "09 987 654 321", Active: true},
		"Wave Pay": {Provider: "Wave Pay", Name: "ATOM Point Services", Number: "09 123 456 789", Active: true},
	}
}

func seedSettings() map[string]string {
	return map[string]string{
		"adminContact": "https://t.me/CEO_METAVERSE",
	}
}
