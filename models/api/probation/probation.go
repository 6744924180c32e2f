package probationapimodels

import (
	"time"

	"github.com/pkg/errors"

	"onboard-backend/models"
	dbmodels "onboard-backend/models/db"
)

type TaskCreateData struct {
	AssignedToMember string     `json:"assigned_to_member"`
	Title            string     `json:"title"`
	Description      string     `json:"description"`
	DueAt            *time.Time `json:"due_at"`
}

func (r TaskCreateData) Validate() error {
	if r.AssignedToMember == "" {
		return errors.Wrap(models.ErrInvalidInput, "не указан исполнитель задачи")
	}
	if r.Title == "" {
		return errors.Wrap(models.ErrInvalidInput, "не указано название задачи")
	}
	return nil
}

type TaskStatusData struct {
	Status     models.ProbationTaskStatus `json:"status"`
	ResultText string                     `json:"result_text"`
}

type ReviewData struct {
	Score    *float64              `json:"score"`
	Decision models.ReviewDecision `json:"decision"`
	Comments string                `json:"comments"`
}

func (r ReviewData) Validate() error {
	switch r.Decision {
	case models.ReviewPass, models.ReviewExtend, models.ReviewFail:
		return nil
	}
	return errors.Wrap(models.ErrInvalidInput, "некорректное решение по задаче")
}

type ReviewView struct {
	ID             string    `json:"id"`
	ReviewerMember string    `json:"reviewer_member"`
	Score          *float64  `json:"score,omitempty"`
	Decision       string    `json:"decision"`
	Comments       string    `json:"comments,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

type TaskView struct {
	ID               string       `json:"id"`
	CompanyID        string       `json:"company_id"`
	CreatedByMember  string       `json:"created_by_member"`
	AssignedToMember string       `json:"assigned_to_member"`
	Title            string       `json:"title"`
	Description      string       `json:"description,omitempty"`
	DueAt            *time.Time   `json:"due_at,omitempty"`
	Status           string       `json:"status"`
	CompletedAt      *time.Time   `json:"completed_at,omitempty"`
	ResultText       string       `json:"result_text,omitempty"`
	Reviews          []ReviewView `json:"reviews,omitempty"`
}

func ReviewConvert(rec dbmodels.ProbationReview) ReviewView {
	return ReviewView{
		ID:             rec.ID,
		ReviewerMember: rec.ReviewerMember,
		Score:          rec.Score,
		Decision:       rec.Decision.ToHuman(),
		Comments:       rec.Comments,
		CreatedAt:      rec.CreatedAt,
	}
}

func TaskConvert(rec dbmodels.ProbationTask) TaskView {
	view := TaskView{
		ID:               rec.ID,
		CompanyID:        rec.CompanyID,
		CreatedByMember:  rec.CreatedByMember,
		AssignedToMember: rec.AssignedToMember,
		Title:            rec.Title,
		Description:      rec.Description,
		DueAt:            rec.DueAt,
		Status:           rec.Status.ToHuman(),
		CompletedAt:      rec.CompletedAt,
		ResultText:       rec.ResultText,
	}
	for _, review := range rec.Reviews {
		view.Reviews = append(view.Reviews, ReviewConvert(review))
	}
	return view
}
