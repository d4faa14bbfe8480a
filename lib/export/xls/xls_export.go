package xlsexport

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
	dbmodels "talentflow-backend/models/db"
)

type Provider interface {
	ExportCandidateList(postName string, list []dbmodels.Candidate, scores map[string]int) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

var candidateHeaders = []string{"Name", "Contacts", "Role", "Experience", "Skills", "Source", "Pipeline status", "Current round", "Expected salary", "Joining date", "Match score"}

func (i impl) ExportCandidateList(postName string, list []dbmodels.Candidate, scores map[string]int) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("failed to close xlsx file")
		}
	}()
	sheet := "Sheet1"
	row := 0
	row, err := writeHeader(f, sheet, row, candidateHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "failed to write xlsx header")
	}
	if len(list) != 0 {
		row, err = writeCandidateData(f, sheet, list, scores, row)
		if err != nil {
			return nil, errors.Wrap(err, "failed to write xlsx data rows")
		}
	}
	sheetName := "Candidates"
	if postName != "" {
		sheetName = postName
	}
	f.SetSheetName(sheet, sheetName)
	return f.WriteToBuffer()
}

func writeCandidateData(f *excelize.File, sheet string, list []dbmodels.Candidate, scores map[string]int, row int) (int, error) {
	if err := applyDataCellStyle(f, sheet, 1, row+1, len(candidateHeaders), len(list)+1); err != nil {
		return row, err
	}
	for _, item := range list {
		row++
		// "Name"
		col := 1
		if err := writeColumn(f, sheet, col, row, item.GetFullName()); err != nil {
			return row, err
		}

		// "Contacts"
		col++
		if err := writeColumn(f, sheet, col, row, fmt.Sprintf("%v\r%v", item.Phone, item.Email)); err != nil {
			return row, err
		}

		// "Role"
		col++
		if err := writeColumn(f, sheet, col, row, item.Role); err != nil {
			return row, err
		}

		// "Experience"
		col++
		if err := writeColumn(f, sheet, col, row, fmt.Sprintf("%d years", item.ExperienceYears)); err != nil {
			return row, err
		}

		// "Skills"
		col++
		if err := writeColumn(f, sheet, col, row, strings.Join(item.Skills, ", ")); err != nil {
			return row, err
		}

		// "Source"
		col++
		if err := writeColumn(f, sheet, col, row, string(item.Source)); err != nil {
			return row, err
		}

		// "Pipeline status"
		col++
		if err := writeColumn(f, sheet, col, row, string(item.Status)); err != nil {
			return row, err
		}

		// "Current round"
		col++
		if err := writeColumn(f, sheet, col, row, item.Interview.RoundType); err != nil {
			return row, err
		}

		// "Expected salary"
		col++
		if err := writeColumn(f, sheet, col, row, item.Interview.ExpectedSalary); err != nil {
			return row, err
		}

		// "Joining date"
		col++
		if err := writeColumn(f, sheet, col, row, item.Interview.JoiningDate); err != nil {
			return row, err
		}

		// "Match score"
		col++
		if score, ok := scores[item.ID]; ok {
			if err := writeColumn(f, sheet, col, row, score); err != nil {
				return row, err
			}
		}
	}
	return row, nil
}
