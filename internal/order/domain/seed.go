package domain

import "time"

// SeedOrders returns demo orders inserted on first run when the orders key
// is empty. They make the admin dashboard demonstrable before any real
// checkout has happened; the checkout flow is the production path.
func SeedOrders(now time.Time) []Order {
	return []Order{
		{
			ID:        "1001",
			Customer:  "Maria Silva",
			Product:   "Peruca Lace Front Castanha",
			Value:     50000,
			Status:    StatusDelivered,
			CreatedAt: now.AddDate(0, 0, -12),
			UpdatedAt: now.AddDate(0, 0, -8),
			Phone:     "923111222",
		},
		{
			ID:        "1002",
			Customer:  "Ana Costa",
			Product:   "Kit Maquiagem Profissional",
			Value:     45000,
			Status:    StatusShipped,
			CreatedAt: now.AddDate(0, 0, -5),
			UpdatedAt: now.AddDate(0, 0, -2),
			Phone:     "924333444",
		},
		{
			ID:        "1003",
			Customer:  "Joana Mateus",
			Product:   "Peruca Loira Lisa",
			Value:     60000,
			Status:    StatusPending,
			CreatedAt: now.AddDate(0, 0, -1),
			UpdatedAt: now.AddDate(0, 0, -1),
			Phone:     "925555666",
		},
	}
}

// SeedCustomers returns demo customers matching the seed orders.
func SeedCustomers(now time.Time) []Customer {
	return []Customer{
		{
			ID:           "c1",
			Name:         "Maria Silva",
			Email:        "maria.silva@example.com",
			Phone:        "923111222",
			Address:      "Luanda, Maianga",
			Purchases:    1,
			TotalSpent:   50000,
			LastPurchase: now.AddDate(0, 0, -12),
			Active:       true,
		},
		{
			ID:           "c2",
			Name:         "Ana Costa",
			Email:        "ana.costa@example.com",
			Phone:        "924333444",
			Address:      "Luanda, Talatona",
			Purchases:    1,
			TotalSpent:   45000,
			LastPurchase: now.AddDate(0, 0, -5),
			Active:       true,
		},
		{
			ID:           "c3",
			Name:         "Joana Mateus",
			Email:        "joana.mateus@example.com",
			Phone:        "925555666",
			Address:      "Benguela",
			Purchases:    1,
			TotalSpent:   60000,
			LastPurchase: now.AddDate(0, 0, -1),
			Active:       true,
		},
	}
}
