package main

import (
	"log"
	"os"
	"time"

	"ai-grading-be/internal/model"
	"ai-grading-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

// Seeds a minimal classroom setup so grading can be exercised right after
// migration: one teacher, one class, one term, one subject, one folder and
// two students.
func main() {
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

	now := time.Now()

	teacher := model.Teacher{
		Id:        uuid.New(),
		Name:      "Demo Teacher",
		Email:     "teacher@example.com",
		CreatedAt: now,
	}
	if err := db.Where(model.Teacher{Email: teacher.Email}).FirstOrCreate(&teacher).Error; err != nil {
		log.Fatalf("Error: Failed to seed teacher: %v", err)
	}

	class := model.Class{
		Id:           uuid.New(),
		ClassName:    "M.6/1",
		AcademicYear: "2025",
		TeacherId:    teacher.Id,
		CreatedAt:    now,
	}
	if err := db.Where(model.Class{ClassName: class.ClassName, TeacherId: teacher.Id}).FirstOrCreate(&class).Error; err != nil {
		log.Fatalf("Error: Failed to seed class: %v", err)
	}

	term := model.Term{
		Id:        uuid.New(),
		TermName:  "Term 1/2025",
		StartDate: time.Date(2025, 5, 15, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 10, 10, 0, 0, 0, 0, time.UTC),
		CreatedAt: now,
	}
	if err := db.Where(model.Term{TermName: term.TermName}).FirstOrCreate(&term).Error; err != nil {
		log.Fatalf("Error: Failed to seed term: %v", err)
	}

	subject := model.Subject{
		Id:          uuid.New(),
		SubjectName: "Biology",
		SubjectCode: "BIO-101",
		TeacherId:   teacher.Id,
		ClassId:     class.Id,
		CreatedAt:   now,
	}
	if err := db.Where(model.Subject{SubjectCode: subject.SubjectCode}).FirstOrCreate(&subject).Error; err != nil {
		log.Fatalf("Error: Failed to seed subject: %v", err)
	}

	folder := model.Folder{
		Id:         uuid.New(),
		FolderName: "Midterm Essays",
		TeacherId:  teacher.Id,
		SubjectId:  subject.Id,
		CreatedAt:  now,
	}
	if err := db.Where(model.Folder{FolderName: folder.FolderName, SubjectId: subject.Id}).FirstOrCreate(&folder).Error; err != nil {
		log.Fatalf("Error: Failed to seed folder: %v", err)
	}

	students := []model.Student{
		{Id: uuid.New(), Name: "Student A", Email: "student.a@example.com", ClassId: class.Id, CreatedAt: now},
		{Id: uuid.New(), Name: "Student B", Email: "student.b@example.com", ClassId: class.Id, CreatedAt: now},
	}
	for i := range students {
		if err := db.Where(model.Student{Email: students[i].Email}).FirstOrCreate(&students[i]).Error; err != nil {
			log.Fatalf("Error: Failed to seed student: %v", err)
		}
	}

	log.Println("✅ Success: Seed data is in place.")
}
