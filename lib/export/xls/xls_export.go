package xlsexport

import (
	"bytes"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
	dbmodels "recruitment-backend/models/db"
)

type Provider interface {
	ExportCandidateList(list []dbmodels.Candidate) (*bytes.Buffer, error)
	ExportMPRList(list []dbmodels.MPR) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

var candidateHeaders = []string{"Name", "Contacts", "Location", "Current position", "Experience, years", "Status", "Overall score", "Skill match, %", "Applied at"}

func (i impl) ExportCandidateList(list []dbmodels.Candidate) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("xlsx close error")
		}
	}()
	sheet := "Sheet1"
	row := 0
	row, err := writeHeader(f, sheet, row, candidateHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "xlsx header error")
	}
	if len(list) != 0 {
		row, err = writeCandidateData(f, sheet, list, row)
		if err != nil {
			return nil, errors.Wrap(err, "xlsx data error")
		}
	}
	f.SetSheetName(sheet, "Candidates")
	return f.WriteToBuffer()
}

func writeCandidateData(f *excelize.File, sheet string, list []dbmodels.Candidate, row int) (int, error) {
	if err := applyDataCellStyle(f, sheet, 1, row+1, len(candidateHeaders), len(list)+1); err != nil {
		return row, err
	}
	for _, item := range list {
		row++
		// "Name"
		col := 1
		if err := writeColumn(f, sheet, col, row, item.Name); err != nil {
			return row, err
		}

		// "Contacts"
		col++
		if err := writeColumn(f, sheet, col, row, item.Email+"\r"+item.Phone); err != nil {
			return row, err
		}

		// "Location"
		col++
		if err := writeColumn(f, sheet, col, row, item.Location); err != nil {
			return row, err
		}

		// "Current position"
		col++
		position := item.CurrentPosition
		if item.CurrentCompany != "" {
			position = position + " @ " + item.CurrentCompany
		}
		if err := writeColumn(f, sheet, col, row, position); err != nil {
			return row, err
		}

		// "Experience, years"
		col++
		if item.ExperienceYears != nil {
			if err := writeColumn(f, sheet, col, row, *item.ExperienceYears); err != nil {
				return row, err
			}
		}

		// "Status"
		col++
		if err := writeColumn(f, sheet, col, row, item.HiringStatus.ToHuman()); err != nil {
			return row, err
		}

		// "Overall score"
		col++
		if item.OverallScore != nil {
			if err := writeColumn(f, sheet, col, row, *item.OverallScore); err != nil {
				return row, err
			}
		}

		// "Skill match, %"
		col++
		if item.SkillMatchPercentage != nil {
			if err := writeColumn(f, sheet, col, row, *item.SkillMatchPercentage); err != nil {
				return row, err
			}
		}

		// "Applied at"
		col++
		if !item.AppliedAt.IsZero() {
			if err := writeColumn(f, sheet, col, row, item.AppliedAt.Format("02.01.2006")); err != nil {
				return row, err
			}
		}
	}
	return row, nil
}

var mprHeaders = []string{"Number", "Status", "Priority", "Job title", "Department", "Location", "Required skills", "Recruiter", "Created at"}

func (i impl) ExportMPRList(list []dbmodels.MPR) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("xlsx close error")
		}
	}()
	sheet := "Sheet1"
	row := 0
	row, err := writeHeader(f, sheet, row, mprHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "xlsx header error")
	}
	if len(list) != 0 {
		row, err = writeMPRData(f, sheet, list, row)
		if err != nil {
			return nil, errors.Wrap(err, "xlsx data error")
		}
	}
	f.SetSheetName(sheet, "Requisitions")
	return f.WriteToBuffer()
}

func writeMPRData(f *excelize.File, sheet string, list []dbmodels.MPR, row int) (int, error) {
	if err := applyDataCellStyle(f, sheet, 1, row+1, len(mprHeaders), len(list)+1); err != nil {
		return row, err
	}
	for _, item := range list {
		row++
		// "Number"
		col := 1
		if err := writeColumn(f, sheet, col, row, item.MPRNumber); err != nil {
			return row, err
		}

		// "Status"
		col++
		if err := writeColumn(f, sheet, col, row, item.Status.ToHuman()); err != nil {
			return row, err
		}

		// "Priority"
		col++
		if err := writeColumn(f, sheet, col, row, string(item.Priority)); err != nil {
			return row, err
		}

		// "Job title"
		col++
		if item.JobTitle != nil {
			if err := writeColumn(f, sheet, col, row, item.JobTitle.Title); err != nil {
				return row, err
			}
		}

		// "Department"
		col++
		if item.Department != nil {
			if err := writeColumn(f, sheet, col, row, item.Department.Name); err != nil {
				return row, err
			}
		}

		// "Location"
		col++
		if item.Location != nil {
			if err := writeColumn(f, sheet, col, row, item.Location.Name); err != nil {
				return row, err
			}
		}

		// "Required skills"
		col++
		if err := writeColumn(f, sheet, col, row, strings.Join(item.RequiredSkills, ", ")); err != nil {
			return row, err
		}

		// "Recruiter"
		col++
		if item.Recruiter != nil {
			if err := writeColumn(f, sheet, col, row, item.Recruiter.GetFullName()); err != nil {
				return row, err
			}
		}

		// "Created at"
		col++
		if err := writeColumn(f, sheet, col, row, item.CreatedAt.Format("02.01.2006")); err != nil {
			return row, err
		}
	}
	return row, nil
}
