// Package seed loads the demo workers, seekers and jobs used for local runs.
package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"she-fix/internal/data/entity"
	"she-fix/internal/data/repository"
	"she-fix/pkg/utils"
)

// DemoPassword is shared by every seeded account.
const DemoPassword = "123456"

type demoUser struct {
	name       string
	email      string
	phone      string
	role       entity.UserRole
	profession string
	language   string
}

type demoJob struct {
	title          string
	location       string
	pay            float64
	unit           entity.PayUnit
	serviceType    entity.ServiceType
	category       string
	duration       string
	description    string
	poster         string // seeker email
	safetyVerified bool
}

var demoUsers = []demoUser{
	{"Savita Devi", "savita@example.com", "9876543210", entity.RoleWorker, "Cleaner", "hi"},
	{"Riya Patel", "riya@example.com", "9876543211", entity.RoleWorker, "Electrician", "en"},
	{"Sunita Sharma", "sunita@example.com", "9876543212", entity.RoleWorker, "Cook", "hi"},
	{"Laxmi Singh", "laxmi@example.com", "9876543213", entity.RoleWorker, "Gardener", "mr"},
	{"Anjali Gupta", "anjali@example.com", "9123456780", entity.RoleSeeker, "", "en"},
	{"Priya Nair", "priya@example.com", "9123456781", entity.RoleSeeker, "", "en"},
}

var demoJobs = []demoJob{
	{"Deep House Cleaning", "Sector 12, Navi Mumbai", 350, entity.PayUnitHour, entity.ServiceTypeShortTerm,
		"Cleaning", "4 Hours (Today)", "Need deep cleaning for 2 BHK apartment before festival.", "anjali@example.com", true},
	{"Fan Repair & Switch Fixing", "Vashi, Navi Mumbai", 500, entity.PayUnitTask, entity.ServiceTypeShortTerm,
		"Electrician", "1-2 Hours", "Ceiling fan making noise, one switch board replacement.", "priya@example.com", true},
	{"Balcony Garden Trimming", "Nerul, Mumbai", 400, entity.PayUnitHour, entity.ServiceTypeShortTerm,
		"Gardener", "2 Hours", "Trimming plants and changing soil for 10 pots.", "anjali@example.com", true},
	{"Utensil Cleaning (One Day)", "Kharghar, Mumbai", 200, entity.PayUnitHour, entity.ServiceTypeShortTerm,
		"Cleaning", "1 Hour", "", "priya@example.com", false},
	{"Full-Time Cook (Morning/Evening)", "Belapur, Mumbai", 15000, entity.PayUnitMonth, entity.ServiceTypeLongTerm,
		"Cooking", "6 Months Contract", "Cooking for family of 4. North Indian food preferred.", "anjali@example.com", true},
	{"Elderly Caretaker (Night Shift)", "Seawoods, Mumbai", 18000, entity.PayUnitMonth, entity.ServiceTypeLongTerm,
		"Caregiver", "1 Year Contract", "Need female caretaker for elderly mother. 8PM to 8AM.", "priya@example.com", true},
	{"Daily House Maid", "Panvel, Mumbai", 8000, entity.PayUnitMonth, entity.ServiceTypeLongTerm,
		"Cleaning", "Ongoing", "Sweeping, mopping, and dusting daily.", "anjali@example.com", true},
}

// Result counts what Run inserted.
type Result struct {
	Users int
	Jobs  int
}

// Run inserts the demo data. Users whose email already exists are reused, and
// jobs are only inserted when at least one demo user was new.
func Run(ctx context.Context, repo *repository.Repository, log *zap.Logger) (Result, error) {
	var result Result

	hash, err := utils.HashPassword(DemoPassword)
	if err != nil {
		return result, fmt.Errorf("hash demo password: %w", err)
	}

	base := time.Now().Add(-time.Hour)
	byEmail := make(map[string]uuid.UUID, len(demoUsers))

	for i, du := range demoUsers {
		existing, err := repo.User.FindByEmail(ctx, du.email)
		if err != nil {
			return result, fmt.Errorf("seed user %s: %w", du.email, err)
		}
		if existing != nil {
			byEmail[du.email] = existing.ID
			continue
		}

		created := base.Add(time.Duration(i) * time.Minute)
		phone := du.phone
		user := &entity.User{
			Base: entity.Base{
				ID:        uuid.New(),
				CreatedAt: created,
				UpdatedAt: created,
			},
			Name:         du.name,
			Email:        du.email,
			Phone:        &phone,
			PasswordHash: hash,
			Role:         du.role,
			TrustScore:   0.9,
			KYCStatus:    entity.KYCStatusVerified,
			Language:     du.language,
		}
		if du.profession != "" {
			profession := du.profession
			user.Profession = &profession
		}

		if err := repo.User.Create(ctx, user); err != nil {
			return result, fmt.Errorf("seed user %s: %w", du.email, err)
		}
		byEmail[du.email] = user.ID
		result.Users++
	}

	if result.Users == 0 {
		log.Info("Demo data already present, skipping jobs")
		return result, nil
	}

	for i, dj := range demoJobs {
		created := base.Add(time.Duration(len(demoUsers)+i) * time.Minute)
		job := &entity.Job{
			Base: entity.Base{
				ID:        uuid.New(),
				CreatedAt: created,
				UpdatedAt: created,
			},
			Title:          dj.title,
			Location:       dj.location,
			Category:       dj.category,
			Pay:            dj.pay,
			Unit:           dj.unit,
			ServiceType:    dj.serviceType,
			Duration:       dj.duration,
			Status:         entity.JobStatusOpen,
			SafetyVerified: dj.safetyVerified,
			PostedBy:       byEmail[dj.poster],
		}
		if dj.description != "" {
			desc := dj.description
			job.Description = &desc
		}

		if err := repo.Job.Create(ctx, job); err != nil {
			return result, fmt.Errorf("seed job %q: %w", dj.title, err)
		}
		result.Jobs++
	}

	log.Info("Demo data seeded",
		zap.Int("users", result.Users),
		zap.Int("jobs", result.Jobs))

	return result, nil
}
