package repository

import "github.com/JoseAngelVirgenEslava/proyecto/internal/models"

// seedProducts is the default catalog used when no MongoDB backing store is
// configured. IDs are fixed 24-hex keys so that lookups stay stable across
// restarts.
var seedProducts = []models.Product{
	{
		ID:               "65a1b2c3d4e5f60718290001",
		Name:             "Wireless Headphones",
		Price:            59.99,
		ShortDescription: "Over-ear Bluetooth headphones",
		FullDescription:  "Over-ear Bluetooth headphones with 30-hour battery life and a built-in microphone.",
		Category:         "electronics",
		Units:            25,
		Image:            "/img/headphones.jpg",
	},
	{
		ID:               "65a1b2c3d4e5f60718290002",
		Name:             "Mechanical Keyboard",
		Price:            89.99,
		ShortDescription: "Tenkeyless mechanical keyboard",
		FullDescription:  "Tenkeyless mechanical keyboard with hot-swappable switches and white backlight.",
		Category:         "electronics",
		Units:            12,
		Image:            "/img/keyboard.jpg",
	},
	{
		ID:               "65a1b2c3d4e5f60718290003",
		Name:             "USB-C Charger 65W",
		Price:            29.5,
		ShortDescription: "Compact 65W GaN charger",
		FullDescription:  "Compact 65W GaN wall charger with two USB-C ports and one USB-A port.",
		Category:         "electronics",
		Units:            40,
		Image:            "/img/charger.jpg",
	},
	{
		ID:               "65a1b2c3d4e5f60718290004",
		Name:             "Ceramic Coffee Mug",
		Price:            8.99,
		ShortDescription: "350ml ceramic mug",
		FullDescription:  "350ml ceramic mug, dishwasher and microwave safe.",
		Category:         "home",
		Units:            60,
		Image:            "/img/mug.jpg",
	},
	{
		ID:               "65a1b2c3d4e5f60718290005",
		Name:             "Bamboo Cutting Board",
		Price:            15.75,
		ShortDescription: "Large bamboo cutting board",
		FullDescription:  "Large bamboo cutting board with juice groove, 40x30cm.",
		Category:         "home",
		Units:            18,
		Image:            "/img/board.jpg",
	},
	{
		ID:               "65a1b2c3d4e5f60718290006",
		Name:             "Desk Lamp",
		Price:            24.0,
		ShortDescription: "LED desk lamp",
		FullDescription:  "LED desk lamp with three color temperatures and a USB charging port.",
		Category:         "home",
		Units:            22,
		Image:            "/img/lamp.jpg",
	},
	{
		ID:               "65a1b2c3d4e5f60718290007",
		Name:             "Yoga Mat",
		Price:            19.99,
		ShortDescription: "Non-slip yoga mat",
		FullDescription:  "6mm non-slip yoga mat with carrying strap.",
		Category:         "sports",
		Units:            35,
		Image:            "/img/yogamat.jpg",
	},
	{
		ID:               "65a1b2c3d4e5f60718290008",
		Name:             "Running Shoes",
		Price:            74.9,
		ShortDescription: "Lightweight running shoes",
		FullDescription:  "Lightweight running shoes with breathable mesh upper and cushioned sole.",
		Category:         "sports",
		Units:            8,
		Image:            "/img/shoes.jpg",
	},
	{
		ID:               "65a1b2c3d4e5f60718290009",
		Name:             "Water Bottle 1L",
		Price:            11.25,
		ShortDescription: "Insulated steel bottle",
		FullDescription:  "1-liter insulated stainless steel bottle, keeps drinks cold for 24 hours.",
		Category:         "sports",
		Units:            50,
		Image:            "/img/bottle.jpg",
	},
	{
		ID:               "65a1b2c3d4e5f6071829000a",
		Name:             "Board Game: Settlers",
		Price:            42.0,
		ShortDescription: "Strategy board game",
		FullDescription:  "Classic resource-trading strategy board game for 3 to 4 players.",
		Category:         "toys",
		Units:            10,
		Image:            "/img/boardgame.jpg",
	},
	{
		ID:               "65a1b2c3d4e5f6071829000b",
		Name:             "Building Blocks Set",
		Price:            33.5,
		ShortDescription: "500-piece blocks set",
		FullDescription:  "500-piece building blocks set compatible with major brick brands.",
		Category:         "toys",
		Units:            15,
		Image:            "/img/blocks.jpg",
	},
	{
		ID:               "65a1b2c3d4e5f6071829000c",
		Name:             "Plush Dinosaur",
		Price:            14.0,
		ShortDescription: "30cm plush dinosaur",
		FullDescription:  "Soft 30cm plush dinosaur, machine washable.",
		Category:         "toys",
		Units:            27,
		Image:            "/img/dino.jpg",
	},
}
