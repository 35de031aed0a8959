package seed

import "storefront-checkout/internal/model"

// Products is the storefront catalog loaded by cmd/seed.
var Products = []model.Product{
	{
		Name:        "Classic White T-Shirt",
		Price:       29.99,
		Category:    "Clothing",
		Description: "Premium quality cotton t-shirt with a classic fit. Perfect for everyday wear.",
		ImageURL:    "https://images.unsplash.com/photo-1521572163474-6864f9cf17ab?w=500&h=500&fit=crop",
		InStock:     true,
		Rating:      4.5,
		Reviews:     120,
	},
	{
		Name:        "Wireless Headphones",
		Price:       149.99,
		Category:    "Electronics",
		Description: "High-quality wireless headphones with noise cancellation and 30-hour battery life.",
		ImageURL:    "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?w=500&h=500&fit=crop",
		InStock:     true,
		Rating:      4.8,
		Reviews:     89,
	},
	{
		Name:        "Leather Backpack",
		Price:       199.99,
		Category:    "Accessories",
		Description: "Handcrafted genuine leather backpack with multiple compartments and laptop sleeve.",
		ImageURL:    "https://images.unsplash.com/photo-1553062407-98eeb64c6a62?w=500&h=500&fit=crop",
		InStock:     true,
		Rating:      4.7,
		Reviews:     56,
	},
	{
		Name:        "Smart Watch",
		Price:       299.99,
		Category:    "Electronics",
		Description: "Feature-packed smartwatch with fitness tracking, heart rate monitor, and GPS.",
		ImageURL:    "https://images.unsplash.com/photo-1523275335684-37898b6baf30?w=500&h=500&fit=crop",
		InStock:     true,
		Rating:      4.6,
		Reviews:     234,
	},
	{
		Name:        "Running Shoes",
		Price:       129.99,
		Category:    "Footwear",
		Description: "Lightweight running shoes with superior cushioning and breathable mesh upper.",
		ImageURL:    "https://images.unsplash.com/photo-1542291026-7eec264c27ff?w=500&h=500&fit=crop",
		InStock:     true,
		Rating:      4.9,
		Reviews:     345,
	},
	{
		Name:        "Designer Sunglasses",
		Price:       159.99,
		Category:    "Accessories",
		Description: "Stylish designer sunglasses with UV protection and polarized lenses.",
		ImageURL:    "https://images.unsplash.com/photo-1572635196237-14b3f281503f?w=500&h=500&fit=crop",
		InStock:     true,
		Rating:      4.4,
		Reviews:     78,
	},
	{
		Name:        "Cotton Hoodie",
		Price:       79.99,
		Category:    "Clothing",
		Description: "Comfortable cotton hoodie with drawstring hood and kangaroo pocket.",
		ImageURL:    "https://images.unsplash.com/photo-1556821840-3a63f95609a7?w=500&h=500&fit=crop",
		InStock:     true,
		Rating:      4.5,
		Reviews:     167,
	},
	{
		Name:        "Bluetooth Speaker",
		Price:       89.99,
		Category:    "Electronics",
		Description: "Portable Bluetooth speaker with 360-degree sound and waterproof design.",
		ImageURL:    "https://images.unsplash.com/photo-1608043152269-423dbba4e7e1?w=500&h=500&fit=crop",
		InStock:     true,
		Rating:      4.7,
		Reviews:     203,
	},
	{
		Name:        "Denim Jeans",
		Price:       89.99,
		Category:    "Clothing",
		Description: "Classic fit denim jeans made from premium denim with a comfortable stretch.",
		ImageURL:    "https://images.unsplash.com/photo-1542272604-787c3835535d?w=500&h=500&fit=crop",
		InStock:     true,
		Rating:      4.6,
		Reviews:     189,
	},
	{
		Name:        "Leather Wallet",
		Price:       49.99,
		Category:    "Accessories",
		Description: "Slim genuine leather wallet with RFID blocking technology and multiple card slots.",
		ImageURL:    "https://images.unsplash.com/photo-1627123424574-724758594e93?w=500&h=500&fit=crop",
		InStock:     true,
		Rating:      4.8,
		Reviews:     112,
	},
	{
		Name:        "Casual Sneakers",
		Price:       99.99,
		Category:    "Footwear",
		Description: "Versatile casual sneakers perfect for everyday wear with comfortable cushioning.",
		ImageURL:    "https://images.unsplash.com/photo-1460353581641-37baddab0fa2?w=500&h=500&fit=crop",
		InStock:     true,
		Rating:      4.5,
		Reviews:     256,
	},
	{
		Name:        "Laptop Stand",
		Price:       69.99,
		Category:    "Electronics",
		Description: "Ergonomic aluminum laptop stand with adjustable height and ventilation slots.",
		ImageURL:    "https://images.unsplash.com/photo-1527864550417-7fd91fc51a46?w=500&h=500&fit=crop",
		InStock:     true,
		Rating:      4.7,
		Reviews:     94,
	},
}
