package db

import (
	"recruitment-backend/config"
	"recruitment-backend/models"
	dbmodels "recruitment-backend/models/db"

	"github.com/lib/pq"
	log "github.com/sirupsen/logrus"
)

func InitPreload() {
	addAdmin()
	fillInterviewRounds()
}

func addAdmin() {
	if config.Conf.Admin.Email == "" {
		log.Warn("admin account not created, ADMIN_EMAIL is not set")
		return
	}
	existed := dbmodels.AppUser{}
	err := DB.Where("email = ?", config.Conf.Admin.Email).Limit(1).Find(&existed).Error
	if err != nil {
		log.WithError(err).Error("admin account lookup failed")
		return
	}
	if existed.ID != "" {
		return
	}
	rec := dbmodels.AppUser{
		Email:     config.Conf.Admin.Email,
		FirstName: config.Conf.Admin.FirstName,
		LastName:  config.Conf.Admin.LastName,
		Role:      models.AdminRole,
		IsActive:  true,
	}
	if err := DB.Create(&rec).Error; err != nil {
		log.WithError(err).Error("admin account creation failed")
	}
}

var defaultRounds = []dbmodels.InterviewRound{
	{
		Name:                   "HR Screening",
		Description:            "Introductory call with a recruiter",
		TypicalDurationMinutes: 30,
		SequenceOrder:          1,
		MaxScore:               5,
		EvaluationCriteria:     pq.StringArray{"communication", "motivation", "culture_fit"},
		IsActive:               true,
	},
	{
		Name:                   "Technical Interview",
		Description:            "Deep dive into professional skills",
		TypicalDurationMinutes: 90,
		SequenceOrder:          2,
		MaxScore:               5,
		EvaluationCriteria:     pq.StringArray{"technical_depth", "problem_solving", "communication"},
		IsActive:               true,
	},
	{
		Name:                   "Final Interview",
		Description:            "Interview with the hiring manager",
		TypicalDurationMinutes: 60,
		SequenceOrder:          3,
		MaxScore:               5,
		EvaluationCriteria:     pq.StringArray{"leadership", "culture_fit", "expectations"},
		IsActive:               true,
	},
}

func fillInterviewRounds() {
	var count int64
	if err := DB.Model(&dbmodels.InterviewRound{}).Count(&count).Error; err != nil {
		log.WithError(err).Error("interview round lookup failed")
		return
	}
	if count > 0 {
		return
	}
	for _, round := range defaultRounds {
		if err := DB.Create(&round).Error; err != nil {
			log.WithError(err).Error("interview round preload failed")
			return
		}
	}
	log.Info("default interview rounds created")
}
