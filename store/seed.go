package store

import (
	"time"

	"github.com/Arnav-0606/Nsut-cater/models"
)

func nutrition(calories, protein, carbs, fat float64) *models.NutritionInfo {
	return &models.NutritionInfo{Calories: calories, Protein: protein, Carbs: carbs, Fat: fat}
}

// Seed loads the demo canteen dataset: the menu catalog, the session
// user, a few in-flight orders and the wallet ledger. Order timestamps
// are placed relative to now so the kitchen display's age and urgency
// figures mean something the moment the server starts.
func Seed(s *Store, now time.Time) {
	for _, item := range seedMenu() {
		s.AddMenuItem(item)
	}

	s.SetUser(models.User{
		ID:            "user1",
		Name:          "Arjun Kumar",
		Email:         "arjun.kumar@nsut.ac.in",
		Role:          models.RoleUser,
		WalletBalance: 450,
	})

	for _, o := range seedOrders(now) {
		s.SeedOrder(o)
	}
	for _, txn := range seedTransactions(now) {
		s.AddTransaction(txn)
	}
}

func seedMenu() []models.MenuItem {
	return []models.MenuItem{
		{
			ID: "1", Name: "Aloo Paratha",
			Description: "Stuffed flatbread with spiced potato filling, served with curd and pickle",
			Price: 40, Category: models.CategoryBreakfast, IsVeg: true, IsAvailable: true,
			Image: "/placeholder.svg", PreparationTime: 10, NutritionInfo: nutrition(320, 8, 45, 12),
		},
		{
			ID: "2", Name: "Poha",
			Description: "Flattened rice with onions, curry leaves and spices",
			Price: 25, Category: models.CategoryBreakfast, IsVeg: true, IsAvailable: true,
			Image: "/placeholder.svg", PreparationTime: 8, NutritionInfo: nutrition(250, 6, 40, 8),
		},
		{
			ID: "3", Name: "Bread Omelette",
			Description: "Fluffy omelette with bread slices",
			Price: 35, Category: models.CategoryBreakfast, IsVeg: false, IsAvailable: true,
			Image: "/placeholder.svg", PreparationTime: 7, NutritionInfo: nutrition(280, 15, 25, 15),
		},
		{
			ID: "4", Name: "Rajma Rice",
			Description: "Red kidney beans curry with steamed rice",
			Price: 50, Category: models.CategoryLunch, IsVeg: true, IsAvailable: true,
			Image: "/placeholder.svg", PreparationTime: 15, NutritionInfo: nutrition(380, 14, 55, 10),
		},
		{
			ID: "5", Name: "Dal Rice",
			Description: "Yellow lentil curry with steamed basmati rice",
			Price: 40, Category: models.CategoryLunch, IsVeg: true, IsAvailable: true,
			Image: "/placeholder.svg", PreparationTime: 12, NutritionInfo: nutrition(320, 12, 50, 8),
		},
		{
			ID: "6", Name: "Chole Bhature",
			Description: "Spicy chickpea curry with fried bread",
			Price: 60, Category: models.CategoryLunch, IsVeg: true, IsAvailable: true,
			Image: "/placeholder.svg", PreparationTime: 18, NutritionInfo: nutrition(450, 15, 60, 18),
		},
		{
			ID: "7", Name: "Chicken Curry Rice",
			Description: "Boneless chicken curry with rice",
			Price: 80, Category: models.CategoryLunch, IsVeg: false, IsAvailable: true,
			Image: "/placeholder.svg", PreparationTime: 20, NutritionInfo: nutrition(420, 25, 45, 15),
		},
		{
			ID: "8", Name: "Paneer Butter Masala",
			Description: "Cottage cheese in rich tomato gravy with roti",
			Price: 70, Category: models.CategoryDinner, IsVeg: true, IsAvailable: true,
			Image: "/placeholder.svg", PreparationTime: 16, NutritionInfo: nutrition(400, 18, 35, 22),
		},
		{
			ID: "9", Name: "Mixed Veg with Roti",
			Description: "Seasonal vegetables curry with fresh roti",
			Price: 45, Category: models.CategoryDinner, IsVeg: true, IsAvailable: true,
			Image: "/placeholder.svg", PreparationTime: 14, NutritionInfo: nutrition(300, 10, 40, 12),
		},
		{
			ID: "10", Name: "Samosa",
			Description: "Crispy triangular pastry with spiced potato filling",
			Price: 15, Category: models.CategorySnacks, IsVeg: true, IsAvailable: true,
			Image: "/placeholder.svg", PreparationTime: 5, NutritionInfo: nutrition(150, 3, 18, 8),
		},
		{
			ID: "11", Name: "Maggi",
			Description: "Instant noodles with vegetables",
			Price: 30, Category: models.CategorySnacks, IsVeg: true, IsAvailable: true,
			Image: "/placeholder.svg", PreparationTime: 8, NutritionInfo: nutrition(290, 8, 35, 12),
		},
		{
			ID: "12", Name: "Chai",
			Description: "Traditional Indian tea with milk and spices",
			Price: 10, Category: models.CategoryBeverages, IsVeg: true, IsAvailable: true,
			Image: "/placeholder.svg", PreparationTime: 3, NutritionInfo: nutrition(50, 2, 8, 2),
		},
		{
			ID: "13", Name: "Lassi",
			Description: "Sweet yogurt drink",
			Price: 25, Category: models.CategoryBeverages, IsVeg: true, IsAvailable: true,
			Image: "/placeholder.svg", PreparationTime: 4, NutritionInfo: nutrition(120, 5, 18, 3),
		},
	}
}

func seedOrders(now time.Time) []models.Order {
	readyAt := now.Add(-5 * time.Minute)
	return []models.Order{
		{
			ID: "NSU001", TokenNumber: 101, UserID: "user1", UserName: "Arjun Kumar",
			Items: []models.OrderItem{
				{MenuItemID: "4", Name: "Rajma Rice", PriceAtTime: 50, Quantity: 1},
				{MenuItemID: "12", Name: "Chai", PriceAtTime: 10, Quantity: 1},
			},
			TotalAmount: 60, Status: models.OrderStatusPreparing,
			OrderTime: now.Add(-25 * time.Minute),
			MealType: models.MealLunch, QRCode: qrPayload("NSU001", 101),
		},
		{
			ID: "NSU002", TokenNumber: 102, UserID: "user2", UserName: "Priya Sharma",
			Items: []models.OrderItem{
				{MenuItemID: "1", Name: "Aloo Paratha", PriceAtTime: 40, Quantity: 2},
			},
			TotalAmount: 80, Status: models.OrderStatusPlaced,
			OrderTime: now.Add(-12 * time.Minute),
			MealType: models.MealBreakfast, QRCode: qrPayload("NSU002", 102),
		},
		{
			ID: "NSU003", TokenNumber: 103, UserID: "user1", UserName: "Arjun Kumar",
			Items: []models.OrderItem{
				{MenuItemID: "8", Name: "Paneer Butter Masala", PriceAtTime: 70, Quantity: 1},
				{MenuItemID: "13", Name: "Lassi", PriceAtTime: 25, Quantity: 1},
			},
			TotalAmount: 95, Status: models.OrderStatusReady,
			OrderTime: now.Add(-35 * time.Minute),
			PickupTime: &readyAt,
			MealType: models.MealDinner, QRCode: qrPayload("NSU003", 103),
		},
	}
}

func seedTransactions(now time.Time) []models.Transaction {
	return []models.Transaction{
		{
			ID: "TXN001", Type: models.TransactionDebit, Amount: 180,
			Description: "Order #ORD001 - Vegetable Biryani + Drinks",
			Date: now.Add(-24 * time.Hour), Status: models.TransactionCompleted,
		},
		{
			ID: "TXN002", Type: models.TransactionCredit, Amount: 500,
			Description: "Wallet Recharge - UPI Payment",
			Date: now.Add(-44 * time.Hour), Status: models.TransactionCompleted,
		},
		{
			ID: "TXN003", Type: models.TransactionDebit, Amount: 190,
			Description: "Order #ORD003 - Masala Dosa + Lime Soda",
			Date: now.Add(-52 * time.Hour), Status: models.TransactionCompleted,
		},
		{
			ID: "TXN004", Type: models.TransactionCredit, Amount: 1000,
			Description: "Wallet Recharge - Card Payment",
			Date: now.Add(-70 * time.Hour), Status: models.TransactionCompleted,
		},
		{
			ID: "TXN005", Type: models.TransactionDebit, Amount: 150,
			Description: "Order #ORD002 - Chicken Curry",
			Date: now.Add(-89 * time.Hour), Status: models.TransactionCompleted,
		},
	}
}
