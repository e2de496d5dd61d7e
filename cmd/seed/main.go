package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"literinth-be/internal/model"
	"literinth-be/pkg/database"
)

func main() {
	// Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	log.Println("Seeding demo catalog...")

	users := seedUsers(db)
	categories := seedCategories(db)
	tags := seedTags(db)
	seedSchematics(db, users, categories, tags)

	log.Println("Seeding completed!")
	log.Println("Demo accounts: alexey@literinth.com / ivan@literinth.com (password: password123)")
}

func seedUsers(db *gorm.DB) map[string]model.User {
	log.Println("Seeding users...")

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("Error: Failed to hash demo password:", err)
	}

	users := []model.User{
		{Email: "alexey@literinth.com", Username: "alexey_kuzmichev", PasswordHash: string(hash), Role: "admin"},
		{Email: "ivan@literinth.com", Username: "ivan_redstone", PasswordHash: string(hash), Role: "user"},
	}

	out := make(map[string]model.User)
	for _, u := range users {
		var existing model.User
		if err := db.Where("email = ?", u.Email).First(&existing).Error; err == nil {
			log.Printf("User '%s' already exists, skipping...", u.Username)
			out[u.Username] = existing
			continue
		}
		if err := db.Create(&u).Error; err != nil {
			log.Fatalf("Error creating user '%s': %v", u.Username, err)
		}
		out[u.Username] = u
		log.Printf("Created user: %s", u.Username)
	}
	return out
}

type subcategorySeed struct {
	Slug   string
	NameRu string
	NameEn string
}

type categorySeed struct {
	Slug          string
	NameRu        string
	NameEn        string
	DescRu        string
	DescEn        string
	SortOrder     int
	Subcategories []subcategorySeed
}

func seedCategories(db *gorm.DB) map[string]model.Category {
	log.Println("Seeding categories...")

	seeds := []categorySeed{
		{
			Slug: "hostile-mobs", NameRu: "Враждебные мобы", NameEn: "Hostile Mobs",
			DescRu: "Фермы враждебных мобов", DescEn: "Hostile mob farms", SortOrder: 1,
			Subcategories: []subcategorySeed{
				{"zombies", "Зомби", "Zombies"},
				{"skeletons", "Скелеты", "Skeletons"},
				{"creepers", "Криперы", "Creepers"},
			},
		},
		{
			Slug: "neutral-mobs", NameRu: "Нейтральные мобы", NameEn: "Neutral Mobs",
			DescRu: "Фермы нейтральных мобов", DescEn: "Neutral mob farms", SortOrder: 2,
			Subcategories: []subcategorySeed{
				{"iron-golems", "Железные големы", "Iron Golems"},
				{"bees", "Пчелы", "Bees"},
			},
		},
		{
			Slug: "passive-mobs", NameRu: "Пассивные мобы", NameEn: "Passive Mobs",
			DescRu: "Фермы пассивных мобов", DescEn: "Passive mob farms", SortOrder: 3,
			Subcategories: []subcategorySeed{
				{"cows", "Коровы", "Cows"},
				{"chickens", "Курицы", "Chickens"},
				{"sheep", "Овцы", "Sheep"},
			},
		},
		{
			Slug: "agriculture", NameRu: "Агрокультуры", NameEn: "Agriculture",
			DescRu: "Фермы растений и грибов", DescEn: "Crop and mushroom farms", SortOrder: 4,
			Subcategories: []subcategorySeed{
				{"wheat", "Пшеница", "Wheat"},
				{"carrots", "Морковь", "Carrots"},
				{"potatoes", "Картофель", "Potatoes"},
				{"pumpkins", "Тыквы", "Pumpkins"},
				{"melons", "Арбузы", "Melons"},
			},
		},
		{
			Slug: "blocks-items", NameRu: "Блоки и предметы", NameEn: "Blocks & Items",
			DescRu: "Фермы блоков и предметов", DescEn: "Block and item farms", SortOrder: 5,
			Subcategories: []subcategorySeed{
				{"cobblestone", "Булыжник", "Cobblestone"},
				{"obsidian", "Обсидиан", "Obsidian"},
				{"basalt", "Базальт", "Basalt"},
			},
		},
		{
			Slug: "item-processing", NameRu: "Обработка предметов", NameEn: "Item Processing",
			DescRu: "Сортировки, хранилища, транспорт", DescEn: "Sorters, storage and transport", SortOrder: 6,
			Subcategories: []subcategorySeed{
				{"sorters", "Сортировки", "Sorters"},
				{"storage", "Хранилища", "Storage"},
				{"transport", "Транспорт", "Transport"},
			},
		},
		{
			Slug: "infrastructure", NameRu: "Инфраструктура", NameEn: "Infrastructure",
			DescRu: "Дороги, базы, города", DescEn: "Roads, bases and cities", SortOrder: 7,
			Subcategories: []subcategorySeed{
				{"roads", "Дороги", "Roads"},
				{"bases", "Базы", "Bases"},
				{"cities", "Города", "Cities"},
			},
		},
		{
			Slug: "shitpost", NameRu: "Щитпост", NameEn: "Shitpost",
			DescRu: "Мемные и экспериментальные схематики", DescEn: "Meme and experimental schematics", SortOrder: 8,
			Subcategories: []subcategorySeed{
				{"shitpost-archive", "Щитпост", "Shitpost"},
				{"trash", "Мусорка", "Trash"},
			},
		},
	}

	out := make(map[string]model.Category)
	for _, s := range seeds {
		var existing model.Category
		if err := db.Where("slug = ?", s.Slug).First(&existing).Error; err == nil {
			log.Printf("Category '%s' already exists, skipping...", s.Slug)
			out[s.Slug] = existing
			continue
		}

		cat := model.Category{
			Slug:      s.Slug,
			SortOrder: s.SortOrder,
			VisibleRu: true,
			VisibleEn: true,
			Translations: []model.CategoryTranslation{
				{Locale: "ru", Name: s.NameRu, Description: ptr(s.DescRu)},
				{Locale: "en", Name: s.NameEn, Description: ptr(s.DescEn)},
			},
		}
		for i, sub := range s.Subcategories {
			cat.Subcategories = append(cat.Subcategories, model.Subcategory{
				Slug:      sub.Slug,
				SortOrder: i + 1,
				VisibleRu: true,
				VisibleEn: true,
				Translations: []model.SubcategoryTranslation{
					{Locale: "ru", Name: sub.NameRu},
					{Locale: "en", Name: sub.NameEn},
				},
			})
		}

		if err := db.Create(&cat).Error; err != nil {
			log.Fatalf("Error creating category '%s': %v", s.Slug, err)
		}
		out[s.Slug] = cat
		log.Printf("Created category: %s (%d subcategories)", s.Slug, len(cat.Subcategories))
	}
	return out
}

func seedTags(db *gorm.DB) map[string]model.Tag {
	log.Println("Seeding tags...")

	seeds := []struct {
		Slug   string
		NameRu string
		NameEn string
	}{
		{"pechki", "Печки", "Furnaces"},
		{"redstone", "Редстоун", "Redstone"},
		{"litematica", "Лайтматика", "Litematica"},
		{"shitpost", "Щитпост", "Shitpost"},
		{"farms", "Фермы", "Farms"},
		{"efficient", "Эффективные", "Efficient"},
	}

	out := make(map[string]model.Tag)
	for _, s := range seeds {
		var existing model.Tag
		if err := db.Where("slug = ?", s.Slug).First(&existing).Error; err == nil {
			log.Printf("Tag '%s' already exists, skipping...", s.Slug)
			out[s.Slug] = existing
			continue
		}

		tag := model.Tag{
			Slug: s.Slug,
			Translations: []model.TagTranslation{
				{Locale: "ru", Name: s.NameRu},
				{Locale: "en", Name: s.NameEn},
			},
		}
		if err := db.Create(&tag).Error; err != nil {
			log.Fatalf("Error creating tag '%s': %v", s.Slug, err)
		}
		out[s.Slug] = tag
		log.Printf("Created tag: %s", s.Slug)
	}
	return out
}

type schematicSeed struct {
	Slug          string
	TitleRu       string
	TitleEn       string
	DescRu        string
	DescEn        string
	ContentRu     string
	Author        string
	Category      string
	Subcategory   string
	Tags          []string
	Views         int64
	Downloads     int64
	LikedByAuthor bool
}

func seedSchematics(db *gorm.DB, users map[string]model.User, categories map[string]model.Category, tags map[string]model.Tag) {
	log.Println("Seeding schematics...")

	furnaceContent := `# Полное описание схематика

Это экспериментальный дизайн печки с невероятной производительностью!

## Особенности:
- Автоматическая загрузка топлива
- Сортировка готовой продукции
- Компактный дизайн

## Требования:
- Редстоун
- Хопперы
- Печки`

	seeds := []schematicSeed{
		{
			Slug:    "furnace-inferno-12000",
			TitleRu: "Furnace inferno 12000", TitleEn: "Furnace Inferno 12000",
			DescRu: "Мега супер крутая печка с автоматической загрузкой", DescEn: "Super smelter array with automatic fuel loading",
			ContentRu: furnaceContent,
			Author:    "alexey_kuzmichev", Category: "shitpost", Subcategory: "shitpost-archive",
			Tags:  []string{"pechki", "redstone", "litematica", "shitpost"},
			Views: 3400000, Downloads: 620000, LikedByAuthor: true,
		},
		{
			Slug:    "furnace-inferno-16000",
			TitleRu: "Furnace inferno 16000", TitleEn: "Furnace Inferno 16000",
			DescRu: "Ещё больше печек, ещё больше файрвея", DescEn: "Even more furnaces, even more throughput",
			ContentRu: furnaceContent,
			Author:    "ivan_redstone", Category: "shitpost", Subcategory: "shitpost-archive",
			Tags:  []string{"pechki", "redstone", "shitpost"},
			Views: 1800000, Downloads: 240000, LikedByAuthor: true,
		},
		{
			Slug:    "item-sorter-64x",
			TitleRu: "Сортировка предметов 64x", TitleEn: "64x Item Sorter",
			DescRu: "Универсальная сортировка на 64 типа предметов", DescEn: "Universal sorter for 64 item types",
			ContentRu: "Полная инструкция по постройке сортировки...",
			Author:    "ivan_redstone", Category: "item-processing", Subcategory: "sorters",
			Tags:  []string{"redstone", "efficient"},
			Views: 1200000, Downloads: 450000, LikedByAuthor: true,
		},
		{
			Slug:    "auto-pumpkin-farm",
			TitleRu: "Автоматическая ферма тыкв", TitleEn: "Automatic Pumpkin Farm",
			DescRu: "Полностью автоматическая ферма тыкв с обсервером", DescEn: "Fully automatic observer-based pumpkin farm",
			ContentRu: "Инструкция по постройке фермы...",
			Author:    "alexey_kuzmichev", Category: "agriculture", Subcategory: "pumpkins",
			Tags:  []string{"farms", "efficient"},
			Views: 2100000, Downloads: 780000,
		},
	}

	for _, s := range seeds {
		var existing model.Schematic
		if err := db.Where("slug = ?", s.Slug).First(&existing).Error; err == nil {
			log.Printf("Schematic '%s' already exists, skipping...", s.Slug)
			continue
		}

		author, ok := users[s.Author]
		if !ok {
			log.Fatalf("Error: Unknown seed author '%s'", s.Author)
		}
		category, ok := categories[s.Category]
		if !ok {
			log.Fatalf("Error: Unknown seed category '%s'", s.Category)
		}

		sch := model.Schematic{
			Slug:       s.Slug,
			AuthorId:   author.Id,
			CategoryId: category.Id,
			Published:  true,
			VisibleRu:  true,
			VisibleEn:  true,
			Views:      s.Views,
			Downloads:  s.Downloads,
			Translations: []model.SchematicTranslation{
				{Locale: "ru", Title: s.TitleRu, Description: ptr(s.DescRu), Content: ptr(s.ContentRu)},
				{Locale: "en", Title: s.TitleEn, Description: ptr(s.DescEn)},
			},
		}

		if s.Subcategory != "" {
			var sub model.Subcategory
			if err := db.Where("category_id = ? AND slug = ?", category.Id, s.Subcategory).First(&sub).Error; err != nil {
				log.Fatalf("Error: Subcategory '%s' not found in '%s': %v", s.Subcategory, s.Category, err)
			}
			sch.SubcategoryId = &sub.Id
		}

		for _, tagSlug := range s.Tags {
			tag, ok := tags[tagSlug]
			if !ok {
				log.Fatalf("Error: Unknown seed tag '%s'", tagSlug)
			}
			sch.Tags = append(sch.Tags, tag)
		}

		if err := db.Create(&sch).Error; err != nil {
			log.Fatalf("Error creating schematic '%s': %v", s.Slug, err)
		}
		log.Printf("Created schematic: %s", s.Slug)

		if s.LikedByAuthor {
			like := model.SchematicLike{UserId: users["alexey_kuzmichev"].Id, SchematicId: sch.Id}
			if err := db.Create(&like).Error; err != nil {
				log.Printf("Warn: Failed to create like for '%s': %v", s.Slug, err)
			}
		}
	}
}

func ptr(s string) *string {
	return &s
}
