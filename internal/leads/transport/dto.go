package transport

import "time"

// Request DTOs

// ListLeadsRequest is the query surface of the aggregated lead view. The
// same parameters accompany mutation requests so the coupled refresh can
// rebuild the exact view the dashboard is showing.
type ListLeadsRequest struct {
	View      string `form:"view,default=overview" validate:"omitempty,oneof=overview pipeline archive"`
	Search    string `form:"search" validate:"max=100"`
	Grade     string `form:"grade" validate:"max=20"`
	Status    string `form:"status" validate:"omitempty,oneof=New Contacted 'In Process' Qualified Finalized Archived Converted Lost"`
	Source    string `form:"source" validate:"omitempty,oneof=ContactForm Chatbot ScheduleMeeting SDR LeadScoring"`
	SortTime  string `form:"sortTime" validate:"omitempty,oneof=newest oldest"`
	SortScore string `form:"sortScore" validate:"omitempty,oneof=highest lowest"`
	Page      int    `form:"page,default=1" validate:"min=1"`
	PageSize  int    `form:"pageSize,default=20" validate:"min=1,max=100"`
}

type UpdateLeadRequest struct {
	Status        *string `json:"status,omitempty" validate:"omitempty,oneof=New Contacted 'In Process' Qualified Finalized Archived Converted Lost"`
	Notes         *string `json:"notes,omitempty" validate:"omitempty,max=2000"`
	FollowUpDate  *string `json:"followUpDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	FollowUpNotes *string `json:"followUpNotes,omitempty" validate:"omitempty,max=2000"`
}

type UpdateLeadStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=New Contacted 'In Process' Qualified Finalized Archived Converted Lost"`
}

type BulkStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=New Contacted 'In Process' Qualified Finalized Archived Converted Lost"`
}

type SelectionToggleRequest struct {
	LeadIDs  []string `json:"leadIds" validate:"required,min=1,dive,required"`
	Selected *bool    `json:"selected" validate:"required"`
}

// Response DTOs

type LeadResponse struct {
	ID             string     `json:"id"`
	FirstName      string     `json:"firstName"`
	LastName       string     `json:"lastName"`
	Email          string     `json:"email"`
	Phone          string     `json:"phone"`
	CompanyName    string     `json:"companyName"`
	CompanySize    string     `json:"companySize,omitempty"`
	LeadScore      int        `json:"leadScore"`
	LeadGrade      string     `json:"leadGrade"`
	Status         string     `json:"status"`
	Source         string     `json:"source"`
	SourceLabel    string     `json:"sourceLabel"`
	CreatedAt      time.Time  `json:"createdAt"`
	LastActivityAt time.Time  `json:"lastActivityAt"`
	LastEmailSent  *time.Time `json:"lastEmailSent,omitempty"`
}

type StatsResponse struct {
	TotalLeads         int     `json:"totalLeads"`
	HotLeads           int     `json:"hotLeads"`
	WarmLeads          int     `json:"warmLeads"`
	ColdLeads          int     `json:"coldLeads"`
	FrozenLeads        int     `json:"frozenLeads"`
	ArchivedLeads      int     `json:"archivedLeads"`
	LeadsThisWeek      int     `json:"leadsThisWeek"`
	AverageScore       float64 `json:"averageScore"`
	HotLeadsPercentage int     `json:"hotLeadsPercentage"`
	WeekOverWeekGrowth float64 `json:"weekOverWeekGrowth"`
	ScoreImprovement   float64 `json:"scoreImprovement"`
}

type LeadListResponse struct {
	Items      []LeadResponse `json:"items"`
	Page       int            `json:"page"`
	PageSize   int            `json:"pageSize"`
	TotalItems int            `json:"totalItems"`
	TotalPages int            `json:"totalPages"`
	Stats      StatsResponse  `json:"stats"`
	Warnings   []string       `json:"warnings,omitempty"`
}

type SelectionResponse struct {
	View    string   `json:"view"`
	LeadIDs []string `json:"leadIds"`
	Count   int      `json:"count"`
}
