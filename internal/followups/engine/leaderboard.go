package engine

import (
	"sort"
	"time"

	"github.com/AmrAnter44/sys-body-sub004/internal/followups/domain"
)

// SalesStat aggregates conversion and workload metrics for one salesperson.
type SalesStat struct {
	SalesName      string
	TotalFollowUps int
	Conversions    int
	ConversionRate float64
	OverdueCount   int
	TodayCount     int
	ContactedToday int
}

// Leaderboard computes per-salesperson stats. The input is the consolidated,
// attributed lead set BEFORE conversion filtering: conversion credit needs
// exactly the leads the worklist would hide. Conversion here uses the plain
// phone-match rule without the expiring-member exception, so a renewal close
// to expiry still counts for the salesperson who ran the follow-up.
//
// Leads attributed to the system placeholder are excluded; only real
// salesperson names accrue stats. Ranking is descending by conversion rate;
// ties keep first-seen order.
func Leaderboard(leads []domain.Lead, interactions []domain.FollowUpInteraction, activePhones map[string]struct{}, now time.Time) []SalesStat {
	order := make([]string, 0)
	statsByName := make(map[string]*SalesStat)

	stat := func(name string) *SalesStat {
		existing, ok := statsByName[name]
		if ok {
			return existing
		}
		created := &SalesStat{SalesName: name}
		statsByName[name] = created
		order = append(order, name)
		return created
	}

	for _, lead := range leads {
		if lead.SalesName == "" || lead.SalesName == domain.SystemSalesName {
			continue
		}

		s := stat(lead.SalesName)
		s.TotalFollowUps++
		if isConverted(lead, activePhones) {
			s.Conversions++
		}
		switch lead.Priority {
		case domain.PriorityOverdue:
			s.OverdueCount++
		case domain.PriorityToday:
			s.TodayCount++
		}
	}

	today := domain.StartOfDay(now)
	for _, interaction := range interactions {
		if interaction.SalesName == "" || interaction.SalesName == domain.SystemSalesName {
			continue
		}
		if !interaction.Contacted {
			continue
		}
		if !domain.StartOfDay(interaction.CreatedAt).Equal(today) {
			continue
		}
		stat(interaction.SalesName).ContactedToday++
	}

	ranked := make([]SalesStat, 0, len(order))
	for _, name := range order {
		s := statsByName[name]
		if s.TotalFollowUps > 0 {
			s.ConversionRate = float64(s.Conversions) / float64(s.TotalFollowUps) * 100
		}
		ranked = append(ranked, *s)
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].ConversionRate > ranked[j].ConversionRate
	})
	return ranked
}
