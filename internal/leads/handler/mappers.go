package handler

import (
	"leaddesk_backend/internal/leads/domain"
	"leaddesk_backend/internal/leads/service"
	"leaddesk_backend/internal/leads/transport"
)

func toLeadResponse(lead domain.Lead) transport.LeadResponse {
	return transport.LeadResponse{
		ID:             lead.ID,
		FirstName:      lead.FirstName,
		LastName:       lead.LastName,
		Email:          lead.Email,
		Phone:          lead.Phone,
		CompanyName:    lead.CompanyName,
		CompanySize:    lead.CompanySize,
		LeadScore:      lead.LeadScore,
		LeadGrade:      string(lead.LeadGrade),
		Status:         string(lead.Status),
		Source:         string(lead.Source),
		SourceLabel:    lead.SourceLabel,
		CreatedAt:      lead.CreatedAt,
		LastActivityAt: lead.LastActivityAt,
		LastEmailSent:  lead.LastEmailSent,
	}
}

func toStatsResponse(stats domain.AggregatedStats) transport.StatsResponse {
	return transport.StatsResponse{
		TotalLeads:         stats.TotalLeads,
		HotLeads:           stats.HotLeads,
		WarmLeads:          stats.WarmLeads,
		ColdLeads:          stats.ColdLeads,
		FrozenLeads:        stats.FrozenLeads,
		ArchivedLeads:      stats.ArchivedLeads,
		LeadsThisWeek:      stats.LeadsThisWeek,
		AverageScore:       stats.AverageScore,
		HotLeadsPercentage: stats.HotLeadsPercentage,
		WeekOverWeekGrowth: stats.WeekOverWeekGrowth,
		ScoreImprovement:   stats.ScoreImprovement,
	}
}

func toListResponse(result service.ViewResult) transport.LeadListResponse {
	items := make([]transport.LeadResponse, 0, len(result.Page.Items))
	for _, lead := range result.Page.Items {
		items = append(items, toLeadResponse(lead))
	}

	return transport.LeadListResponse{
		Items:      items,
		Page:       result.Page.Page,
		PageSize:   result.Page.PageSize,
		TotalItems: result.Page.TotalItems,
		TotalPages: result.Page.TotalPages,
		Stats:      toStatsResponse(result.Stats),
		Warnings:   result.Warnings,
	}
}

func toViewRequest(req transport.ListLeadsRequest) service.ViewRequest {
	return service.ViewRequest{
		View:      req.View,
		Source:    req.Source,
		Search:    req.Search,
		Grade:     req.Grade,
		Status:    req.Status,
		SortTime:  req.SortTime,
		SortScore: req.SortScore,
		Page:      req.Page,
		PageSize:  req.PageSize,
	}
}
