package db

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	dbmodels "recruitment-backend/models/db"
)

func AutoMigrateDB() error {
	DB.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")
	log.Info("running migrations")
	migrations := []struct {
		name  string
		model interface{}
	}{
		{"AppUser", &dbmodels.AppUser{}},
		{"Job", &dbmodels.Job{}},
		{"Location", &dbmodels.Location{}},
		{"OrganizationalUnit", &dbmodels.OrganizationalUnit{}},
		{"Employee", &dbmodels.Employee{}},
		{"Recruiter", &dbmodels.Recruiter{}},
		{"Manager", &dbmodels.Manager{}},
		{"BudgetHolder", &dbmodels.BudgetHolder{}},
		{"BudgetSponsor", &dbmodels.BudgetSponsor{}},
		{"MPR", &dbmodels.MPR{}},
		{"MPRComment", &dbmodels.MPRComment{}},
		{"MPRStatusHistory", &dbmodels.MPRStatusHistory{}},
		{"Candidate", &dbmodels.Candidate{}},
		{"CandidateAttachment", &dbmodels.CandidateAttachment{}},
		{"CandidateStatusUpdate", &dbmodels.CandidateStatusUpdate{}},
		{"CandidateMPR", &dbmodels.CandidateMPR{}},
		{"InterviewRound", &dbmodels.InterviewRound{}},
		{"Interview", &dbmodels.Interview{}},
		{"InterviewParticipant", &dbmodels.InterviewParticipant{}},
		{"InterviewCriteriaEvaluation", &dbmodels.InterviewCriteriaEvaluation{}},
		{"InterviewReschedule", &dbmodels.InterviewReschedule{}},
		{"EmailAccount", &dbmodels.EmailAccount{}},
		{"EmailMessage", &dbmodels.EmailMessage{}},
		{"EmailAttachment", &dbmodels.EmailAttachment{}},
		{"EmailSyncLog", &dbmodels.EmailSyncLog{}},
		{"CandidateEmailLink", &dbmodels.CandidateEmailLink{}},
	}
	for _, m := range migrations {
		if err := DB.AutoMigrate(m.model); err != nil {
			return errors.Wrapf(err, "migration failed for %v", m.name)
		}
	}
	log.Info("migrations finished")
	return nil
}
