package main

import (
	"encoding/csv"
	"log"
	"os"
	"strconv"
	"strings"

	"coursehub/config"
	"coursehub/database"
	"coursehub/models"
	courseModels "coursehub/models/course"
	"coursehub/utils"
)

// Imports a course catalog from Catalog.csv. Expected columns:
// title, category, instructor_email, price, short_desc, published.
// Rows are upserted by slug, so re-running the import is safe.
func main() {
	// Load config and connect to database
	config.LoadConfig()
	database.ConnectDb()

	db := database.Database.Db

	// Open CSV file
	file, err := os.Open("Catalog.csv")
	if err != nil {
		log.Fatalf("Failed to open CSV file: %v", err)
	}
	defer file.Close()

	// Create CSV reader
	reader := csv.NewReader(file)

	// Read all records
	records, err := reader.ReadAll()
	if err != nil {
		log.Fatalf("Failed to read CSV: %v", err)
	}

	if len(records) < 2 {
		log.Fatal("CSV file is empty or has only headers")
	}

	// Skip header row
	header := records[0]
	log.Printf("CSV Headers: %v", header)
	log.Printf("Total rows to import: %d", len(records)-1)

	// Map header indices
	headerIndex := make(map[string]int)
	for i, h := range header {
		headerIndex[strings.TrimSpace(h)] = i
	}

	field := func(row []string, name string) string {
		idx, ok := headerIndex[name]
		if !ok || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	inserted := 0
	updated := 0
	skipped := 0

	for i, row := range records[1:] {
		title := field(row, "title")
		if title == "" {
			log.Printf("Row %d: missing title, skipping", i+1)
			skipped++
			continue
		}

		var instructor models.User
		if err := db.Where("email = ? AND is_deleted = ?", field(row, "instructor_email"), false).First(&instructor).Error; err != nil {
			log.Printf("Row %d: unknown instructor %q, skipping", i+1, field(row, "instructor_email"))
			skipped++
			continue
		}

		categoryName := field(row, "category")
		category := models.Category{Name: categoryName, Slug: utils.Slugify(categoryName)}
		if err := db.Where("slug = ?", category.Slug).FirstOrCreate(&category).Error; err != nil {
			log.Printf("Row %d: failed to resolve category %q: %v", i+1, categoryName, err)
			skipped++
			continue
		}

		price, err := strconv.ParseFloat(field(row, "price"), 64)
		if err != nil {
			price = 0
		}
		published := strings.EqualFold(field(row, "published"), "true")

		slug := utils.Slugify(title)

		var existing courseModels.Course
		err = db.Where("slug = ?", slug).First(&existing).Error
		if err == nil {
			existing.Title = title
			existing.InstructorID = instructor.ID
			existing.CategoryID = category.ID
			existing.Price = price
			existing.ShortDesc = field(row, "short_desc")
			existing.IsPublished = published
			if err := db.Save(&existing).Error; err != nil {
				log.Printf("Row %d: failed to update course %q: %v", i+1, title, err)
				skipped++
				continue
			}
			updated++
			continue
		}

		course := courseModels.Course{
			Title:        title,
			Slug:         slug,
			InstructorID: instructor.ID,
			CategoryID:   category.ID,
			Price:        price,
			ShortDesc:    field(row, "short_desc"),
			IsPublished:  published,
		}
		if err := db.Create(&course).Error; err != nil {
			log.Printf("Row %d: failed to insert course %q: %v", i+1, title, err)
			skipped++
			continue
		}
		inserted++
	}

	log.Printf("Import finished: %d inserted, %d updated, %d skipped", inserted, updated, skipped)
}
