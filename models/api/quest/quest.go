package questapimodels

import (
	"time"

	"github.com/pkg/errors"

	"onboard-backend/models"
	dbmodels "onboard-backend/models/db"
)

type QuestCreateData struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	DurationDays *int   `json:"duration_days"`
	IsMandatory  *bool  `json:"is_mandatory"`
}

func (r QuestCreateData) Validate() error {
	if r.Title == "" {
		return errors.Wrap(models.ErrInvalidInput, "не указано название квеста")
	}
	if r.DurationDays != nil && *r.DurationDays <= 0 {
		return errors.Wrap(models.ErrInvalidInput, "срок прохождения должен быть положительным")
	}
	return nil
}

type QuestUpdateData struct {
	Title        *string `json:"title"`
	Description  *string `json:"description"`
	DurationDays *int    `json:"duration_days"`
	IsMandatory  *bool   `json:"is_mandatory"`
}

type StepData struct {
	SortOrder    int                     `json:"sort_order"`
	Title        string                  `json:"title"`
	StepType     models.StepType         `json:"step_type"`
	Required     *bool                   `json:"required"`
	Content      dbmodels.StepContent    `json:"content"`
	ApprovalRole models.StepApprovalRole `json:"approval_role"`
}

func (r StepData) Validate() error {
	if r.Title == "" {
		return errors.Wrap(models.ErrInvalidInput, "не указано название шага")
	}
	if r.SortOrder < 0 {
		return errors.Wrap(models.ErrInvalidInput, "некорректный порядковый номер шага")
	}
	return nil
}

type StepView struct {
	ID           string               `json:"id"`
	SortOrder    int                  `json:"sort_order"`
	Title        string               `json:"title"`
	StepType     string               `json:"step_type"`
	Required     bool                 `json:"required"`
	Content      dbmodels.StepContent `json:"content,omitempty"`
	ApprovalRole string               `json:"approval_role"`
}

type QuestView struct {
	ID           string     `json:"id"`
	CompanyID    string     `json:"company_id"`
	Title        string     `json:"title"`
	Description  string     `json:"description,omitempty"`
	DurationDays *int       `json:"duration_days,omitempty"`
	IsMandatory  bool       `json:"is_mandatory"`
	Status       string     `json:"status"`
	Steps        []StepView `json:"steps,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

func StepConvert(rec dbmodels.QuestStep) StepView {
	return StepView{
		ID:           rec.ID,
		SortOrder:    rec.SortOrder,
		Title:        rec.Title,
		StepType:     string(rec.StepType),
		Required:     rec.Required,
		Content:      rec.Content,
		ApprovalRole: string(rec.ApprovalRole),
	}
}

func QuestConvert(rec dbmodels.Quest) QuestView {
	view := QuestView{
		ID:           rec.ID,
		CompanyID:    rec.CompanyID,
		Title:        rec.Title,
		Description:  rec.Description,
		DurationDays: rec.DurationDays,
		IsMandatory:  rec.IsMandatory,
		Status:       rec.Status.ToHuman(),
		CreatedAt:    rec.CreatedAt,
	}
	for _, step := range rec.Steps {
		view.Steps = append(view.Steps, StepConvert(step))
	}
	return view
}

type AssignData struct {
	QuestID      string `json:"quest_id"`
	MembershipID string `json:"membership_id"`
	// срок в днях только для этого назначения
	OverrideDurationDays *int `json:"override_duration_days"`
}

func (r AssignData) Validate() error {
	if r.QuestID == "" || r.MembershipID == "" {
		return errors.Wrap(models.ErrInvalidInput, "не указан квест или участник")
	}
	if r.OverrideDurationDays != nil && *r.OverrideDurationDays <= 0 {
		return errors.Wrap(models.ErrInvalidInput, "срок прохождения должен быть положительным")
	}
	return nil
}

type CompleteStepData struct {
	Status models.SubmissionStatus `json:"status"`
	Data   dbmodels.SubmissionData `json:"data"`
}

func (r CompleteStepData) Validate() error {
	switch r.Status {
	case models.SubmissionSubmitted, models.SubmissionApproved,
		models.SubmissionRejected, models.SubmissionSkipped:
		return nil
	}
	return errors.Wrap(models.ErrInvalidInput, "некорректный статус шага")
}

type SubmissionView struct {
	ID          string                  `json:"id"`
	QuestStepID string                  `json:"quest_step_id"`
	StepTitle   string                  `json:"step_title,omitempty"`
	Status      string                  `json:"status"`
	SubmittedAt *time.Time              `json:"submitted_at,omitempty"`
	ReviewedBy  string                  `json:"reviewed_by,omitempty"`
	ReviewedAt  *time.Time              `json:"reviewed_at,omitempty"`
	Data        dbmodels.SubmissionData `json:"data,omitempty"`
}

type AssignmentView struct {
	ID              string           `json:"id"`
	QuestID         string           `json:"quest_id"`
	QuestTitle      string           `json:"quest_title,omitempty"`
	MembershipID    string           `json:"membership_id"`
	AssignedBy      string           `json:"assigned_by,omitempty"`
	AssignedAt      time.Time        `json:"assigned_at"`
	DueAt           time.Time        `json:"due_at"`
	CompletedAt     *time.Time       `json:"completed_at,omitempty"`
	Status          string           `json:"status"`
	ProgressPercent float64          `json:"progress_percent"`
	Submissions     []SubmissionView `json:"submissions,omitempty"`
}

func SubmissionConvert(rec dbmodels.QuestStepSubmission) SubmissionView {
	view := SubmissionView{
		ID:          rec.ID,
		QuestStepID: rec.QuestStepID,
		Status:      rec.Status.ToHuman(),
		SubmittedAt: rec.SubmittedAt,
		ReviewedBy:  rec.ReviewedByMember,
		ReviewedAt:  rec.ReviewedAt,
		Data:        rec.Data,
	}
	if rec.Step != nil {
		view.StepTitle = rec.Step.Title
	}
	return view
}

// AssignmentConvert формирует представление назначения,
// статус "просрочен" вычисляется на чтении по displayStatus.
func AssignmentConvert(rec dbmodels.QuestAssignment, displayStatus models.AssignmentStatus) AssignmentView {
	view := AssignmentView{
		ID:              rec.ID,
		QuestID:         rec.QuestID,
		MembershipID:    rec.MembershipID,
		AssignedBy:      rec.AssignedByMember,
		AssignedAt:      rec.AssignedAt,
		DueAt:           rec.DueAt,
		CompletedAt:     rec.CompletedAt,
		Status:          displayStatus.ToHuman(),
		ProgressPercent: rec.ProgressPercent,
	}
	if rec.Quest != nil {
		view.QuestTitle = rec.Quest.Title
	}
	for _, sub := range rec.Submissions {
		view.Submissions = append(view.Submissions, SubmissionConvert(sub))
	}
	return view
}
