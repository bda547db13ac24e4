package domain

import "math"

// TrendSnapshot holds the trend fields the upstream stats-summary endpoint
// owns. They are surfaced verbatim and never recomputed locally, so a single
// source of truth exists per field (the counts below are always derived from
// the aggregated collection, the trends always from upstream).
type TrendSnapshot struct {
	LeadsThisWeek      int
	WeekOverWeekGrowth float64
	ScoreImprovement   float64
}

// AggregatedStats is derived and transient. It is recomputed on every refresh
// and is consistent only as of the aggregation pass it was derived from.
type AggregatedStats struct {
	TotalLeads         int
	HotLeads           int
	WarmLeads          int
	ColdLeads          int
	FrozenLeads        int
	ArchivedLeads      int
	LeadsThisWeek      int
	AverageScore       float64
	HotLeadsPercentage int
	WeekOverWeekGrowth float64
	ScoreImprovement   float64
}

// ComputeStats derives aggregate statistics from a status-scoped collection.
// An empty collection yields zero values rather than dividing by zero.
func ComputeStats(leads []Lead, trend TrendSnapshot) AggregatedStats {
	stats := AggregatedStats{
		TotalLeads:         len(leads),
		LeadsThisWeek:      trend.LeadsThisWeek,
		WeekOverWeekGrowth: trend.WeekOverWeekGrowth,
		ScoreImprovement:   trend.ScoreImprovement,
	}

	if len(leads) == 0 {
		return stats
	}

	scoreSum := 0
	for _, lead := range leads {
		scoreSum += lead.LeadScore

		switch lead.LeadGrade {
		case GradeHot:
			stats.HotLeads++
		case GradeWarm:
			stats.WarmLeads++
		case GradeCold:
			stats.ColdLeads++
		case GradeFrozen:
			stats.FrozenLeads++
		}

		if lead.Status == StatusArchived {
			stats.ArchivedLeads++
		}
	}

	stats.AverageScore = float64(scoreSum) / float64(len(leads))
	stats.HotLeadsPercentage = int(math.Round(float64(stats.HotLeads) / float64(stats.TotalLeads) * 100))

	return stats
}
